package domain

import (
	"time"
)

// InteractionType representa o tipo de contato registrado com o cliente
type InteractionType string

const (
	InteractionCall    InteractionType = "call"
	InteractionEmail   InteractionType = "email"
	InteractionMeeting InteractionType = "meeting"
	InteractionNote    InteractionType = "note"
)

// IsValid verifica se o tipo de interação pertence ao enum fixo
func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionCall, InteractionEmail, InteractionMeeting, InteractionNote:
		return true
	}
	return false
}

// Sentiment representa a classificação de humor de uma interação
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// IsValid verifica se o sentimento pertence ao enum de três valores
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// NormalizeSentiment converte a saída livre do modelo para o enum de três
// valores. Qualquer texto não reconhecido vira "neutral" silenciosamente.
func NormalizeSentiment(raw string) Sentiment {
	s := Sentiment(normalizeEnumText(raw))
	if s.IsValid() {
		return s
	}
	return SentimentNeutral
}

// Interaction é imutável depois de registrada: não existe caminho de edição
// ou exclusão individual, apenas a exclusão em cascata junto com o cliente.
type Interaction struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	Type       InteractionType `json:"type"`
	Subject    string          `json:"subject"`
	Content    string          `json:"content"`
	Date       time.Time       `json:"date"`
	Sentiment  Sentiment       `json:"sentiment"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RecentInteraction é uma interação da timeline global com os campos do
// cliente expandidos via join, para o feed de atividade recente.
type RecentInteraction struct {
	Interaction
	CustomerFirstName string  `json:"customer_first_name"`
	CustomerLastName  string  `json:"customer_last_name"`
	CustomerCompany   *string `json:"customer_company"`
}
