package prompting

import (
	"strings"
	"testing"
	"time"

	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        1,
		FirstName: "Sarah",
		LastName:  "Johnson",
		Company:   strPtr("TechVision Inc"),
		Email:     strPtr("sarah@techvision.com"),
		Stage:     domain.StageProspect,
	}
}

func TestCustomerSummary(t *testing.T) {
	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	interactions := []*domain.Interaction{
		{Type: domain.InteractionCall, Date: date, Subject: "Follow-up", Content: "Ligação de acompanhamento", Sentiment: domain.SentimentPositive},
	}

	prompt := CustomerSummary(testCustomer(), interactions, nil, nil, nil)

	// Nenhum placeholder sobra no prompt renderizado
	assert.NotContains(t, prompt, "{first_name}")
	assert.NotContains(t, prompt, "{interactions}")
	assert.NotContains(t, prompt, "{transaction_history}")

	assert.Contains(t, prompt, "Sarah Johnson")
	assert.Contains(t, prompt, "TechVision Inc")
	assert.Contains(t, prompt, "Recent Interactions (1 total)")
	assert.Contains(t, prompt, "call on 2025-05-20")
	assert.Contains(t, prompt, "Sentiment: positive")
}

func TestCustomerSummary_CamposAusentes(t *testing.T) {
	customer := &domain.Customer{FirstName: "Ana"}

	prompt := CustomerSummary(customer, nil, nil, nil, nil)

	// Opcionais ausentes viram N/A e estágio vazio assume lead
	assert.Contains(t, prompt, "Company: N/A")
	assert.Contains(t, prompt, "Phone: N/A")
	assert.Contains(t, prompt, "Stage: lead")
	assert.Contains(t, prompt, "Notes: None")

	// Cenários vazios usam as frases-sentinela, nunca string vazia
	assert.Contains(t, prompt, "Recent Interactions (0 total)")
	assert.Contains(t, prompt, "No interactions recorded yet.")
	assert.Contains(t, prompt, NoInterestsSentinel)
	assert.Contains(t, prompt, NoPurchasesSentinel)
	assert.Contains(t, prompt, NoProductsSentinel)
}

func TestCustomerSummary_LimiteDeInteracoes(t *testing.T) {
	interactions := make([]*domain.Interaction, 8)
	for i := range interactions {
		interactions[i] = &domain.Interaction{
			Type:    domain.InteractionNote,
			Subject: "note-" + string(rune('A'+i)),
		}
	}

	prompt := CustomerSummary(testCustomer(), interactions, nil, nil, nil)

	// Só as 5 primeiras interações entram no prompt
	assert.Contains(t, prompt, "note-E")
	assert.NotContains(t, prompt, "note-F")
	assert.Contains(t, prompt, "Recent Interactions (8 total)")
}

func TestEmailDraft(t *testing.T) {
	prompt := EmailDraft(testCustomer(), "renovação anual", "follow_up", nil)

	assert.Contains(t, prompt, "Context: renovação anual")
	assert.Contains(t, prompt, "Email Type: follow_up")
	assert.Contains(t, prompt, "Sarah Johnson")
	assert.NotContains(t, prompt, "{context}")
}

func TestSalesAdvice(t *testing.T) {
	prompt := SalesAdvice(testCustomer(), nil, nil, nil, "Como abordar a renovação?")

	assert.Contains(t, prompt, "Sales Rep's Question: Como abordar a renovação?")
	assert.Contains(t, prompt, "Sarah Johnson")
	assert.NotContains(t, prompt, "{question}")
}

func TestSentimentClassification(t *testing.T) {
	prompt := SentimentClassification("Cliente adorou a proposta")

	assert.Contains(t, prompt, "Text: Cliente adorou a proposta")
	assert.Contains(t, prompt, "only one word")
}

func TestBehavioralAnalysis_ContagemDeSentimentos(t *testing.T) {
	interactions := []*domain.Interaction{
		{Type: domain.InteractionCall, Sentiment: domain.SentimentPositive, Content: "ótimo"},
		{Type: domain.InteractionEmail, Sentiment: domain.SentimentPositive, Content: "bom"},
		{Type: domain.InteractionNote, Sentiment: domain.SentimentNegative, Content: "reclamação"},
	}

	prompt := BehavioralAnalysis(testCustomer(), interactions, nil)

	assert.Contains(t, prompt, "Positive: 2")
	assert.Contains(t, prompt, "Neutral: 0")
	assert.Contains(t, prompt, "Negative: 1")
	assert.Contains(t, prompt, NoPurchasesSentinel)
}

func TestMenuAssistant(t *testing.T) {
	catalog := []domain.MenuCategory{
		{
			Name: "Appetizers",
			Items: []domain.MenuItem{
				{Name: "Samosa", Price: "₹80", Spice: "Medium", Portion: "2 pieces", Description: "Crispy pastry"},
			},
		},
	}

	t.Run("Sem prato selecionado", func(t *testing.T) {
		prompt := MenuAssistant(catalog, nil)

		assert.Contains(t, prompt, "Appetizers:")
		assert.Contains(t, prompt, "Samosa (₹80)")
		assert.Contains(t, prompt, "Spice Level: Medium")
		assert.NotContains(t, prompt, "The customer has selected")
	})

	t.Run("Com prato selecionado - adiciona bloco de combos", func(t *testing.T) {
		prompt := MenuAssistant(catalog, &catalog[0].Items[0])

		assert.Contains(t, prompt, "The customer has selected: Samosa (₹80, Spice: Medium, Portion: 2 pieces)")
		assert.Contains(t, prompt, "pair well with Samosa")
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Valor pequeno", 42.5, "$42.50"},
		{"Separador de milhar", 1234.56, "$1,234.56"},
		{"Milhões", 1234567.89, "$1,234,567.89"},
		{"Zero", 0, "$0.00"},
		{"Negativo", -950.1, "-$950.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatMoney(tt.amount))
		})
	}
}

func TestRender_PlaceholderSemValorPermanece(t *testing.T) {
	out := render("Hello {name}, stage {stage}", map[string]string{"name": "Ana"})
	assert.Equal(t, "Hello Ana, stage {stage}", out)
	assert.True(t, strings.Contains(out, "{stage}"))
}
