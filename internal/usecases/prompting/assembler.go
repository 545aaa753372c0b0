package prompting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nvieira96/aicrm-api/internal/domain"
)

// Orçamentos de caracteres por template. O corte com "..." é controle
// deliberado de orçamento de tokens, não um bug.
const (
	summaryInteractionLimit  = 5
	summaryProductLimit      = 10
	summaryDescriptionBudget = 100

	adviceInteractionLimit  = 3
	adviceContentBudget     = 100
	adviceProductLimit      = 8
	adviceDescriptionBudget = 150

	briefInteractionLimit = 3
	briefContentBudget    = 100
	briefPurchaseLimit    = 5
)

func customerFields(customer *domain.Customer) map[string]string {
	stage := customer.Stage
	if stage == "" {
		stage = domain.StageLead
	}

	return map[string]string{
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
		"company":    orFallback(customer.Company, notAvailable),
		"email":      orFallback(customer.Email, notAvailable),
		"phone":      orFallback(customer.Phone, notAvailable),
		"stage":      string(stage),
		"notes":      orFallback(customer.Notes, "None"),
	}
}

// CustomerSummary monta a instrução de resumo completo do cliente: perfil,
// últimas 5 interações, interesses, totais de compras e até 10 produtos
func CustomerSummary(
	customer *domain.Customer,
	interactions []*domain.Interaction,
	interests []*domain.Interest,
	transactions []*domain.Transaction,
	products []*domain.Product,
) string {
	fields := customerFields(customer)
	fields["interaction_count"] = strconv.Itoa(len(interactions))
	fields["interactions"] = formatInteractionsDetailed(interactions, summaryInteractionLimit)
	fields["product_interests"] = formatInterestsDetailed(interests)
	fields["transaction_history"] = formatTransactionHistory(transactions)
	fields["available_products"] = formatProducts(products, summaryProductLimit, summaryDescriptionBudget, false)

	return render(customerSummaryTemplate, fields)
}

// EmailDraft monta a instrução de rascunho de email para o vendedor
func EmailDraft(customer *domain.Customer, context, emailType string, interests []*domain.Interest) string {
	fields := customerFields(customer)
	fields["context"] = context
	fields["email_type"] = emailType
	fields["product_interests"] = formatInterestsBrief(interests, false)

	return render(emailDraftTemplate, fields)
}

// SentimentClassification monta a instrução de resposta em uma única palavra
func SentimentClassification(text string) string {
	return render(sentimentTemplate, map[string]string{"text": text})
}

// SalesAdvice monta a instrução de consultoria de vendas: perfil, últimas 3
// interações, interesses, até 8 produtos com descrição truncada e a pergunta
// livre do vendedor
func SalesAdvice(
	customer *domain.Customer,
	interactions []*domain.Interaction,
	interests []*domain.Interest,
	products []*domain.Product,
	question string,
) string {
	fields := customerFields(customer)
	fields["interactions"] = formatInteractionsBrief(interactions, adviceInteractionLimit, adviceContentBudget)
	fields["product_interests"] = formatInterestsBrief(interests, true)
	fields["available_products"] = formatProducts(products, adviceProductLimit, adviceDescriptionBudget, true)
	fields["question"] = question

	return render(salesAdviceTemplate, fields)
}

// WebIntelligence monta a instrução de análise de presença web e social
func WebIntelligence(customer *domain.Customer, interactions []*domain.Interaction, transactions []*domain.Transaction) string {
	fields := customerFields(customer)
	fields["interactions"] = formatInteractionsBrief(interactions, briefInteractionLimit, briefContentBudget)
	fields["transaction_history"] = formatTransactionsBrief(transactions, briefPurchaseLimit)

	return render(webIntelligenceTemplate, fields)
}

// BehavioralAnalysis monta a instrução de análise comportamental, com a
// contagem de sentimentos do histórico completo de interações
func BehavioralAnalysis(customer *domain.Customer, interactions []*domain.Interaction, transactions []*domain.Transaction) string {
	counts := map[domain.Sentiment]int{}
	var b strings.Builder
	for _, interaction := range interactions {
		counts[interaction.Sentiment]++
		fmt.Fprintf(&b, "- %s (%s): %s\n", interaction.Type, interaction.Sentiment, domain.TruncateText(interaction.Content, briefContentBudget))
	}

	history := "No interactions recorded yet."
	if b.Len() > 0 {
		history = strings.TrimRight(b.String(), "\n")
	}

	behavior := NoPurchasesSentinel
	if len(transactions) > 0 {
		purchase := domain.NewPurchaseHistory(transactions)
		categories := make([]string, 0, len(purchase.FavoriteCategories))
		for _, category := range purchase.FavoriteCategories {
			categories = append(categories, category.Category)
		}
		behavior = fmt.Sprintf(
			"Purchase Behavior:\n- Total Transactions: %d\n- Total Spent: %s\n- Average Transaction: %s\n- Preferred Categories: %s",
			purchase.TotalTransactions,
			formatMoney(purchase.TotalSpent),
			formatMoney(purchase.AverageTransaction),
			strings.Join(categories, ", "),
		)
	}

	fields := customerFields(customer)
	fields["interactions"] = history
	fields["positive_count"] = strconv.Itoa(counts[domain.SentimentPositive])
	fields["neutral_count"] = strconv.Itoa(counts[domain.SentimentNeutral])
	fields["negative_count"] = strconv.Itoa(counts[domain.SentimentNegative])
	fields["transaction_behavior"] = behavior

	return render(behavioralAnalysisTemplate, fields)
}

// MenuAssistant monta a instrução do assistente de cardápio: o cardápio
// completo agrupado por categoria e, quando um prato está selecionado, um
// bloco extra que direciona as recomendações para combinações com ele
func MenuAssistant(catalog []domain.MenuCategory, selected *domain.MenuItem) string {
	var b strings.Builder
	b.WriteString(menuHeader)

	for _, category := range catalog {
		fmt.Fprintf(&b, "\n%s:\n", category.Name)
		for _, item := range category.Items {
			fmt.Fprintf(&b, "- %s (%s)\n", item.Name, item.Price)
			fmt.Fprintf(&b, "  Spice Level: %s\n", item.Spice)
			fmt.Fprintf(&b, "  Portion: %s\n", item.Portion)
			fmt.Fprintf(&b, "  Description: %s\n\n", item.Description)
		}
	}

	if selected != nil {
		fmt.Fprintf(&b, "\nThe customer has selected: %s (%s, Spice: %s, Portion: %s)\n",
			selected.Name, selected.Price, selected.Spice, selected.Portion)
		fmt.Fprintf(&b, "\nProvide combo recommendations that pair well with %s. ", selected.Name)
		b.WriteString("Consider complementary flavors, spice levels, and complete meal balance. ")
		b.WriteString("Suggest appetizers, sides, beverages, and desserts that would enhance the dining experience.")
	}

	b.WriteString(menuClosing)
	return b.String()
}
