package prompting

import (
	"fmt"
	"strings"

	"github.com/nvieira96/aicrm-api/internal/domain"
)

// Frases-sentinela para campos opcionais ausentes. São frases completas, e
// não strings vazias, para que o prompt renderizado continue gramatical.
const (
	NoInterestsSentinel = "No specific product interests identified yet."
	NoPurchasesSentinel = "No purchase history available."
	NoProductsSentinel  = "No product information available."

	notAvailable  = "N/A"
	noDescription = "No description"
	defaultBrand  = "Luxe Couture"
)

// render substitui cada placeholder {campo} pelo valor correspondente
func render(template string, fields map[string]string) string {
	pairs := make([]string, 0, len(fields)*2)
	for key, value := range fields {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func orFallback(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

// formatMoney formata valores como $1,234.56, com separador de milhar
func formatMoney(amount float64) string {
	raw := fmt.Sprintf("%.2f", amount)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	whole := raw[:len(raw)-3]
	cents := raw[len(raw)-3:]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return sign + "$" + grouped.String() + cents
}

// formatInteractionsDetailed monta o bloco detalhado das últimas interações
func formatInteractionsDetailed(interactions []*domain.Interaction, limit int) string {
	if len(interactions) == 0 {
		return "No interactions recorded yet."
	}

	if len(interactions) > limit {
		interactions = interactions[:limit]
	}

	var b strings.Builder
	for _, interaction := range interactions {
		fmt.Fprintf(&b, "- %s on %s\n", interaction.Type, interaction.Date.Format("2006-01-02"))
		fmt.Fprintf(&b, "  Subject: %s\n", interaction.Subject)
		fmt.Fprintf(&b, "  Content: %s\n", interaction.Content)
		fmt.Fprintf(&b, "  Sentiment: %s\n", interaction.Sentiment)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatInteractionsBrief monta o bloco resumido (tipo + conteúdo truncado)
func formatInteractionsBrief(interactions []*domain.Interaction, limit, contentBudget int) string {
	if len(interactions) == 0 {
		return "No interactions recorded yet."
	}

	if len(interactions) > limit {
		interactions = interactions[:limit]
	}

	var b strings.Builder
	for _, interaction := range interactions {
		fmt.Fprintf(&b, "- %s: %s\n", interaction.Type, domain.TruncateText(interaction.Content, contentBudget))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatInterestsDetailed monta o bloco de interesses com preço e contexto
func formatInterestsDetailed(interests []*domain.Interest) string {
	if len(interests) == 0 {
		return NoInterestsSentinel
	}

	var b strings.Builder
	for _, interest := range interests {
		product := interest.Product
		fmt.Fprintf(&b, "- %s (%s)\n", product.Name, product.Category)
		fmt.Fprintf(&b, "  Price: %s\n", formatMoney(product.Price))
		fmt.Fprintf(&b, "  Context: %s\n", interest.Context)
		fmt.Fprintf(&b, "  Sentiment: %s\n", interest.Sentiment)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatInterestsBrief monta o bloco compacto de interesses (nome + categoria)
func formatInterestsBrief(interests []*domain.Interest, withSentiment bool) string {
	if len(interests) == 0 {
		return NoInterestsSentinel
	}

	var b strings.Builder
	for _, interest := range interests {
		product := interest.Product
		if withSentiment {
			fmt.Fprintf(&b, "- %s (%s) - %s\n", product.Name, product.Category, interest.Sentiment)
		} else {
			fmt.Fprintf(&b, "- %s (%s)\n", product.Name, product.Category)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatTransactionHistory monta o resumo de compras com totais e médias
func formatTransactionHistory(transactions []*domain.Transaction) string {
	if len(transactions) == 0 {
		return NoPurchasesSentinel
	}

	history := domain.NewPurchaseHistory(transactions)

	var b strings.Builder
	b.WriteString("Purchase Summary:\n")
	fmt.Fprintf(&b, "- Total Transactions: %d\n", history.TotalTransactions)
	fmt.Fprintf(&b, "- Total Spent: %s\n", formatMoney(history.TotalSpent))
	fmt.Fprintf(&b, "- Average Transaction: %s\n", formatMoney(history.AverageTransaction))
	b.WriteString("\nRecent Purchases:\n")

	for _, transaction := range history.RecentPurchases {
		name := "Unknown Product"
		if transaction.Product != nil {
			name = transaction.Product.Name
		}
		fmt.Fprintf(&b, "- %s (%s) - %s\n", name, formatMoney(transaction.TotalAmount), transaction.Date.Format("2006-01-02"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatTransactionsBrief lista as compras recentes em uma linha cada
func formatTransactionsBrief(transactions []*domain.Transaction, limit int) string {
	if len(transactions) == 0 {
		return NoPurchasesSentinel
	}

	if len(transactions) > limit {
		transactions = transactions[:limit]
	}

	var b strings.Builder
	for _, transaction := range transactions {
		name := "Unknown Product"
		if transaction.Product != nil {
			name = transaction.Product.Name
		}
		fmt.Fprintf(&b, "- %s (%s) - %s\n", name, formatMoney(transaction.TotalAmount), transaction.Date.Format("2006-01-02"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatProducts monta o bloco de produtos disponíveis, com a descrição
// truncada ao orçamento de caracteres do template
func formatProducts(products []*domain.Product, limit, descriptionBudget int, withBrand bool) string {
	if len(products) == 0 {
		return NoProductsSentinel
	}

	if len(products) > limit {
		products = products[:limit]
	}

	var b strings.Builder
	if withBrand {
		b.WriteString("Our Luxe Couture Collection:\n")
	}
	for _, product := range products {
		fmt.Fprintf(&b, "- %s (%s)\n", product.Name, product.Category)
		fmt.Fprintf(&b, "  Price: %s\n", formatMoney(product.Price))
		fmt.Fprintf(&b, "  Description: %s\n", domain.TruncateText(orFallback(product.Description, noDescription), descriptionBudget))
		if withBrand {
			fmt.Fprintf(&b, "  Brand: %s\n", orFallback(product.Brand, defaultBrand))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
