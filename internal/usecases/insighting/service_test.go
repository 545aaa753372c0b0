package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	llmmocks "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/mocks"
	"github.com/nvieira96/aicrm-api/infrastructure/repository/mocks"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

type serviceMocks struct {
	customerRepo    *mocks.MockCustomerRepository
	interactionRepo *mocks.MockInteractionRepository
	productRepo     *mocks.MockProductRepository
	transactionRepo *mocks.MockTransactionRepository
	completer       *llmmocks.MockGateway
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		customerRepo:    mocks.NewMockCustomerRepository(ctrl),
		interactionRepo: mocks.NewMockInteractionRepository(ctrl),
		productRepo:     mocks.NewMockProductRepository(ctrl),
		transactionRepo: mocks.NewMockTransactionRepository(ctrl),
		completer:       llmmocks.NewMockGateway(ctrl),
	}

	service := &Service{
		customerRepo:    m.customerRepo,
		interactionRepo: m.interactionRepo,
		productRepo:     m.productRepo,
		transactionRepo: m.transactionRepo,
		completer:       m.completer,
	}

	return service, m
}

func TestGenerateCustomerSummary(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		force    bool
		setup    func(m serviceMocks)
		expected string
		wantErr  error
	}{
		{
			name:  "Resumo em cache - retorna sem chamar o modelo",
			force: false,
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().
					GetCustomerByID(1).
					Return(&domain.Customer{ID: 1, FirstName: "Sarah", AISummary: strPtr("resumo salvo")}, nil)
			},
			expected: "resumo salvo",
		},
		{
			name:  "Force ignora o cache e persiste o novo resumo",
			force: true,
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().
					GetCustomerByID(1).
					Return(&domain.Customer{ID: 1, FirstName: "Sarah", AISummary: strPtr("resumo velho")}, nil)
				m.interactionRepo.EXPECT().ListByCustomer(1).Return(nil, nil)
				m.transactionRepo.EXPECT().ListByCustomer(1).Return(nil, nil)
				m.productRepo.EXPECT().ListProducts("").Return(nil, nil)
				m.completer.EXPECT().
					Complete(ctx, "", nil, gomock.Any(), llm.Options{MaxTokens: 600}).
					Return("resumo novo", nil)
				m.customerRepo.EXPECT().UpdateAISummary(1, "resumo novo").Return(nil)
			},
			expected: "resumo novo",
		},
		{
			name:  "Sem cache - gera e persiste",
			force: false,
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().
					GetCustomerByID(1).
					Return(&domain.Customer{ID: 1, FirstName: "Sarah"}, nil)
				m.interactionRepo.EXPECT().ListByCustomer(1).Return(nil, nil)
				m.transactionRepo.EXPECT().ListByCustomer(1).Return(nil, nil)
				m.productRepo.EXPECT().ListProducts("").Return(nil, nil)
				m.completer.EXPECT().
					Complete(ctx, "", nil, gomock.Any(), llm.Options{MaxTokens: 600}).
					Return("primeiro resumo", nil)
				m.customerRepo.EXPECT().UpdateAISummary(1, "primeiro resumo").Return(nil)
			},
			expected: "primeiro resumo",
		},
		{
			name:  "Falha ao persistir não invalida o resumo gerado",
			force: true,
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().
					GetCustomerByID(1).
					Return(&domain.Customer{ID: 1, FirstName: "Sarah"}, nil)
				m.interactionRepo.EXPECT().ListByCustomer(1).Return(nil, nil)
				m.transactionRepo.EXPECT().ListByCustomer(1).Return(nil, nil)
				m.productRepo.EXPECT().ListProducts("").Return(nil, nil)
				m.completer.EXPECT().
					Complete(ctx, "", nil, gomock.Any(), gomock.Any()).
					Return("resumo", nil)
				m.customerRepo.EXPECT().
					UpdateAISummary(1, "resumo").
					Return(errors.New("conexão perdida"))
			},
			expected: "resumo",
		},
		{
			name:  "Cliente inexistente",
			force: false,
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().GetCustomerByID(1).Return(nil, nil)
			},
			wantErr: ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)
			tt.setup(m)

			summary, err := service.GenerateCustomerSummary(ctx, 1, tt.force)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, summary)
		})
	}
}

func TestClassifySentiment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		reply    string
		err      error
		expected domain.Sentiment
	}{
		{"Resposta limpa", "positive", nil, domain.SentimentPositive},
		{"Resposta com espaços e maiúsculas", " Negative\n", nil, domain.SentimentNegative},
		{"Resposta fora do formato vira neutral", "the sentiment is positive", nil, domain.SentimentNeutral},
		{"Erro do provedor vira neutral, nunca propaga", "", errors.New("timeout"), domain.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)

			m.completer.EXPECT().
				Complete(ctx, "", nil, gomock.Any(), llm.Options{Temperature: 0.3, MaxTokens: 10}).
				Return(tt.reply, tt.err)

			assert.Equal(t, tt.expected, service.ClassifySentiment(ctx, "texto da interação"))
		})
	}
}

func TestSalesAdvice(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.customerRepo.EXPECT().
		GetCustomerByID(7).
		Return(&domain.Customer{ID: 7, FirstName: "Michael"}, nil)
	m.interactionRepo.EXPECT().ListByCustomer(7).Return(nil, nil)
	m.productRepo.EXPECT().ListProducts("").Return(nil, nil)
	m.completer.EXPECT().
		Complete(ctx, "", nil, gomock.Any(), llm.Options{MaxTokens: 400}).
		DoAndReturn(func(_ context.Context, _ string, _ []domain.ConversationMessage, prompt string, _ llm.Options) (string, error) {
			assert.Contains(t, prompt, "Como fechar a venda?")
			assert.Contains(t, prompt, "Michael")
			return "conselho", nil
		})

	advice, err := service.SalesAdvice(ctx, 7, "Como fechar a venda?")
	assert.NoError(t, err)
	assert.Equal(t, "conselho", advice)
}

func TestPurchaseHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.customerRepo.EXPECT().
		GetCustomerByID(3).
		Return(&domain.Customer{ID: 3, FirstName: "Emily"}, nil)
	m.transactionRepo.EXPECT().ListByCustomer(3).Return([]*domain.Transaction{
		{TotalAmount: 100, Product: &domain.Product{Category: "Software"}},
		{TotalAmount: 50, Product: &domain.Product{Category: "Software"}},
	}, nil)

	history, err := service.PurchaseHistory(3)
	assert.NoError(t, err)
	assert.Equal(t, 2, history.TotalTransactions)
	assert.Equal(t, 150.0, history.TotalSpent)
	assert.Equal(t, 75.0, history.AverageTransaction)
	assert.Equal(t, "Software", history.FavoriteCategories[0].Category)
}

func TestCustomerInterests_ClienteInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.customerRepo.EXPECT().GetCustomerByID(99).Return(nil, nil)

	_, err := service.CustomerInterests(99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
