package insighting

import (
	"context"

	"github.com/nvieira96/aicrm-api/internal/domain"
)

// Insighter define a interface dos recursos de IA do CRM sobre um cliente
type Insighter interface {
	// GenerateCustomerSummary gera (ou retorna do cache) o resumo de IA do cliente
	GenerateCustomerSummary(ctx context.Context, customerID int, force bool) (string, error)

	// DraftEmail gera um rascunho de email personalizado para o cliente
	DraftEmail(ctx context.Context, customerID int, emailContext, emailType string) (string, error)

	// SalesAdvice responde uma pergunta livre do vendedor sobre o cliente
	SalesAdvice(ctx context.Context, customerID int, question string) (string, error)

	// WebIntelligence gera a análise de presença web e social do cliente
	WebIntelligence(ctx context.Context, customerID int) (string, error)

	// BehavioralAnalysis gera a análise comportamental do cliente
	BehavioralAnalysis(ctx context.Context, customerID int) (string, error)

	// ClassifySentiment classifica o humor de um texto em positive, neutral ou negative
	ClassifySentiment(ctx context.Context, text string) domain.Sentiment

	// CustomerInterests deriva os interesses do cliente a partir das interações
	CustomerInterests(customerID int) ([]*domain.Interest, error)

	// PurchaseHistory resume o comportamento de compra do cliente
	PurchaseHistory(customerID int) (*domain.PurchaseHistory, error)
}
