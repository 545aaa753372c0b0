package insighting

import (
	"context"
	"errors"

	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	"github.com/nvieira96/aicrm-api/infrastructure/repository"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/prompting"
	"github.com/nvieira96/aicrm-api/pkg/log"
)

// ErrCustomerNotFound é retornado quando o cliente alvo do insight não existe
var ErrCustomerNotFound = errors.New("cliente não encontrado")

// Orçamentos de tokens por operação. A classificação de sentimento usa
// temperatura reduzida porque a resposta precisa ser uma única palavra.
const (
	summaryMaxTokens     = 600
	emailMaxTokens       = 500
	adviceMaxTokens      = 400
	analysisMaxTokens    = 600
	sentimentMaxTokens   = 10
	sentimentTemperature = 0.3
)

type Service struct {
	customerRepo    repository.CustomerRepository
	interactionRepo repository.InteractionRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	completer       llm.Gateway
}

func NewService(
	customerRepo repository.CustomerRepository,
	interactionRepo repository.InteractionRepository,
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	completer llm.Gateway,
) Insighter {
	return &Service{
		customerRepo:    customerRepo,
		interactionRepo: interactionRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		completer:       completer,
	}
}

// GenerateCustomerSummary gera o resumo de IA do cliente e o persiste junto
// ao cadastro. Com force=false, um resumo já salvo é retornado sem nova
// chamada ao modelo.
func (s *Service) GenerateCustomerSummary(ctx context.Context, customerID int, force bool) (string, error) {
	customer, err := s.getCustomer(customerID)
	if err != nil {
		return "", err
	}

	if !force && customer.AISummary != nil && *customer.AISummary != "" {
		return *customer.AISummary, nil
	}

	interactions, err := s.interactionRepo.ListByCustomer(customerID)
	if err != nil {
		return "", err
	}

	transactions, err := s.transactionRepo.ListByCustomer(customerID)
	if err != nil {
		return "", err
	}

	products, err := s.productRepo.ListProducts("")
	if err != nil {
		return "", err
	}

	interests := domain.ExtractInterests(interactions, products)

	prompt := prompting.CustomerSummary(customer, interactions, interests, transactions, products)

	summary, err := s.completer.Complete(ctx, "", nil, prompt, llm.Options{MaxTokens: summaryMaxTokens})
	if err != nil {
		return "", err
	}

	// Falha ao persistir não invalida o resumo gerado, apenas perde o cache
	if err := s.customerRepo.UpdateAISummary(customerID, summary); err != nil {
		log.L.WithError(err).Warnf("Erro ao salvar resumo de IA do cliente %d", customerID)
	}

	return summary, nil
}

func (s *Service) DraftEmail(ctx context.Context, customerID int, emailContext, emailType string) (string, error) {
	customer, err := s.getCustomer(customerID)
	if err != nil {
		return "", err
	}

	interests, err := s.interestsFor(customerID)
	if err != nil {
		return "", err
	}

	prompt := prompting.EmailDraft(customer, emailContext, emailType, interests)

	return s.completer.Complete(ctx, "", nil, prompt, llm.Options{MaxTokens: emailMaxTokens})
}

func (s *Service) SalesAdvice(ctx context.Context, customerID int, question string) (string, error) {
	customer, err := s.getCustomer(customerID)
	if err != nil {
		return "", err
	}

	interactions, err := s.interactionRepo.ListByCustomer(customerID)
	if err != nil {
		return "", err
	}

	products, err := s.productRepo.ListProducts("")
	if err != nil {
		return "", err
	}

	interests := domain.ExtractInterests(interactions, products)

	prompt := prompting.SalesAdvice(customer, interactions, interests, products, question)

	return s.completer.Complete(ctx, "", nil, prompt, llm.Options{MaxTokens: adviceMaxTokens})
}

func (s *Service) WebIntelligence(ctx context.Context, customerID int) (string, error) {
	customer, interactions, transactions, err := s.customerWithHistory(customerID)
	if err != nil {
		return "", err
	}

	prompt := prompting.WebIntelligence(customer, interactions, transactions)

	return s.completer.Complete(ctx, "", nil, prompt, llm.Options{MaxTokens: analysisMaxTokens})
}

func (s *Service) BehavioralAnalysis(ctx context.Context, customerID int) (string, error) {
	customer, interactions, transactions, err := s.customerWithHistory(customerID)
	if err != nil {
		return "", err
	}

	prompt := prompting.BehavioralAnalysis(customer, interactions, transactions)

	return s.completer.Complete(ctx, "", nil, prompt, llm.Options{MaxTokens: analysisMaxTokens})
}

// ClassifySentiment pede ao modelo uma única palavra e normaliza a resposta.
// Qualquer falha (credencial ausente, erro do provedor, resposta fora do
// formato) vira "neutral" silenciosamente: a classificação é melhoria, nunca
// bloqueia o registro da interação.
func (s *Service) ClassifySentiment(ctx context.Context, text string) domain.Sentiment {
	prompt := prompting.SentimentClassification(text)

	raw, err := s.completer.Complete(ctx, "", nil, prompt, llm.Options{
		Temperature: sentimentTemperature,
		MaxTokens:   sentimentMaxTokens,
	})
	if err != nil {
		log.L.WithError(err).Warn("Erro ao classificar sentimento, usando neutral")
		return domain.SentimentNeutral
	}

	return domain.NormalizeSentiment(raw)
}

func (s *Service) CustomerInterests(customerID int) ([]*domain.Interest, error) {
	if _, err := s.getCustomer(customerID); err != nil {
		return nil, err
	}

	return s.interestsFor(customerID)
}

func (s *Service) PurchaseHistory(customerID int) (*domain.PurchaseHistory, error) {
	if _, err := s.getCustomer(customerID); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	return domain.NewPurchaseHistory(transactions), nil
}

func (s *Service) getCustomer(customerID int) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Service) interestsFor(customerID int) ([]*domain.Interest, error) {
	interactions, err := s.interactionRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProducts("")
	if err != nil {
		return nil, err
	}

	return domain.ExtractInterests(interactions, products), nil
}

func (s *Service) customerWithHistory(customerID int) (*domain.Customer, []*domain.Interaction, []*domain.Transaction, error) {
	customer, err := s.getCustomer(customerID)
	if err != nil {
		return nil, nil, nil, err
	}

	interactions, err := s.interactionRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, nil, nil, err
	}

	transactions, err := s.transactionRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, nil, nil, err
	}

	return customer, interactions, transactions, nil
}
