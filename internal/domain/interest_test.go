package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractInterests(t *testing.T) {
	products := []*Product{
		{ID: 1, Name: "CRM Professional", Category: "Software"},
		{ID: 2, Name: "Training Workshop", Category: "Services"},
		{ID: 3, Name: "Premium Support", Category: "Support"},
	}

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		interactions []*Interaction
		validate     func(t *testing.T, interests []*Interest)
	}{
		{
			name:         "Sem interações - retorna lista vazia, não nil",
			interactions: []*Interaction{},
			validate: func(t *testing.T, interests []*Interest) {
				assert.NotNil(t, interests)
				assert.Empty(t, interests)
			},
		},
		{
			name: "Menção ao nome do produto no conteúdo",
			interactions: []*Interaction{
				{ID: 10, Type: InteractionCall, Date: date, Sentiment: SentimentPositive,
					Content: "Cliente perguntou sobre o crm professional e prazos"},
			},
			validate: func(t *testing.T, interests []*Interest) {
				assert.Len(t, interests, 1)
				assert.Equal(t, 1, interests[0].Product.ID)
				assert.Equal(t, 10, interests[0].InteractionID)
				assert.Equal(t, SentimentPositive, interests[0].Sentiment)
			},
		},
		{
			name: "Menção à categoria no assunto",
			interactions: []*Interaction{
				{ID: 11, Type: InteractionEmail, Date: date, Subject: "Proposta de services",
					Content: "Detalhes no anexo"},
			},
			validate: func(t *testing.T, interests []*Interest) {
				assert.Len(t, interests, 1)
				assert.Equal(t, 2, interests[0].Product.ID)
			},
		},
		{
			name: "Busca é case-insensitive",
			interactions: []*Interaction{
				{ID: 12, Type: InteractionNote, Date: date, Content: "Interessado em PREMIUM SUPPORT"},
			},
			validate: func(t *testing.T, interests []*Interest) {
				assert.Len(t, interests, 1)
				assert.Equal(t, 3, interests[0].Product.ID)
			},
		},
		{
			name: "Produto mencionado duas vezes - a interação mais recente vence",
			interactions: []*Interaction{
				{ID: 20, Type: InteractionCall, Date: date, Content: "Falamos do training workshop de novo"},
				{ID: 21, Type: InteractionEmail, Date: date.AddDate(0, 0, -7), Content: "Primeiro contato sobre o training workshop"},
			},
			validate: func(t *testing.T, interests []*Interest) {
				assert.Len(t, interests, 1)
				assert.Equal(t, 20, interests[0].InteractionID)
			},
		},
		{
			name: "Uma interação pode gerar interesse em mais de um produto",
			interactions: []*Interaction{
				{ID: 30, Type: InteractionMeeting, Date: date,
					Content: "Cliente quer o crm professional junto com premium support"},
			},
			validate: func(t *testing.T, interests []*Interest) {
				assert.Len(t, interests, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ExtractInterests(tt.interactions, products))
		})
	}
}

func TestExtractInterests_ContextoTruncado(t *testing.T) {
	products := []*Product{{ID: 1, Name: "CRM Starter", Category: "Software"}}

	long := "crm starter "
	for len(long) < 300 {
		long += "detalhes adicionais da conversa "
	}

	interests := ExtractInterests([]*Interaction{
		{ID: 1, Content: long},
	}, products)

	assert.Len(t, interests, 1)
	assert.Len(t, []rune(interests[0].Context), 203)
	assert.True(t, len(interests[0].Context) < len(long))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abc", TruncateText("abc", 5))
	assert.Equal(t, "abcde", TruncateText("abcde", 5))
	assert.Equal(t, "abcde...", TruncateText("abcdef", 5))
}

func TestNormalizeSentiment(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Sentiment
	}{
		{"Valor exato", "positive", SentimentPositive},
		{"Maiúsculas e espaços", "  NEGATIVE \n", SentimentNegative},
		{"Texto fora do enum vira neutral", "very happy", SentimentNeutral},
		{"Vazio vira neutral", "", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSentiment(tt.raw))
		})
	}
}
