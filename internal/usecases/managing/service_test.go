package managing

import (
	"context"
	"testing"
	"time"

	"github.com/nvieira96/aicrm-api/infrastructure/repository/mocks"
	"github.com/nvieira96/aicrm-api/internal/domain"
	insightmocks "github.com/nvieira96/aicrm-api/internal/usecases/insighting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	customerRepo    *mocks.MockCustomerRepository
	interactionRepo *mocks.MockInteractionRepository
	productRepo     *mocks.MockProductRepository
	transactionRepo *mocks.MockTransactionRepository
	insighter       *insightmocks.MockInsighter
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		customerRepo:    mocks.NewMockCustomerRepository(ctrl),
		interactionRepo: mocks.NewMockInteractionRepository(ctrl),
		productRepo:     mocks.NewMockProductRepository(ctrl),
		transactionRepo: mocks.NewMockTransactionRepository(ctrl),
		insighter:       insightmocks.NewMockInsighter(ctrl),
	}

	service := &Service{
		customerRepo:    m.customerRepo,
		interactionRepo: m.interactionRepo,
		productRepo:     m.productRepo,
		transactionRepo: m.transactionRepo,
		insighter:       m.insighter,
	}

	return service, m
}

func TestCreateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		customer *domain.Customer
		setup    func(m serviceMocks)
		wantErr  error
	}{
		{
			name:     "Primeiro nome obrigatório",
			customer: &domain.Customer{},
			setup:    func(m serviceMocks) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "Estágio vazio assume lead",
			customer: &domain.Customer{FirstName: "Ana"},
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().
					CreateCustomer(gomock.Any()).
					DoAndReturn(func(c *domain.Customer) (*domain.Customer, error) {
						assert.Equal(t, domain.StageLead, c.Stage)
						c.ID = 1
						return c, nil
					})
			},
		},
		{
			name:     "Estágio inválido é rejeitado",
			customer: &domain.Customer{FirstName: "Ana", Stage: domain.Stage("vip")},
			setup:    func(m serviceMocks) {},
			wantErr:  ErrInvalidStage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)
			tt.setup(m)

			created, err := service.CreateCustomer(tt.customer)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotZero(t, created.ID)
		})
	}
}

func TestLogInteraction(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{ID: 5, FirstName: "Sarah"}
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		interaction *domain.Interaction
		setup       func(m serviceMocks)
		validate    func(t *testing.T, created *domain.Interaction)
		wantErr     error
	}{
		{
			name:        "Conteúdo obrigatório",
			interaction: &domain.Interaction{CustomerID: 5, Type: domain.InteractionCall},
			setup:       func(m serviceMocks) {},
			wantErr:     ErrMissingRequiredData,
		},
		{
			name:        "Tipo de interação inválido",
			interaction: &domain.Interaction{CustomerID: 5, Type: "fax", Content: "oi"},
			setup:       func(m serviceMocks) {},
			wantErr:     ErrInvalidInteractionType,
		},
		{
			name:        "Cliente inexistente",
			interaction: &domain.Interaction{CustomerID: 5, Type: domain.InteractionCall, Content: "oi"},
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().GetCustomerByID(5).Return(nil, nil)
			},
			wantErr: ErrCustomerNotFound,
		},
		{
			name: "Sem sentimento - classifica pelo modelo e avança o último contato",
			interaction: &domain.Interaction{
				CustomerID: 5,
				Type:       domain.InteractionCall,
				Content:    "Cliente muito satisfeito",
				Date:       date,
			},
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().GetCustomerByID(5).Return(customer, nil)
				m.insighter.EXPECT().
					ClassifySentiment(ctx, "Cliente muito satisfeito").
					Return(domain.SentimentPositive)
				m.interactionRepo.EXPECT().
					CreateInteraction(gomock.Any()).
					DoAndReturn(func(i *domain.Interaction) (*domain.Interaction, error) {
						i.ID = 10
						return i, nil
					})
				m.customerRepo.EXPECT().UpdateLastContact(5, date).Return(nil)
			},
			validate: func(t *testing.T, created *domain.Interaction) {
				assert.Equal(t, domain.SentimentPositive, created.Sentiment)
				assert.Equal(t, 10, created.ID)
			},
		},
		{
			name: "Sentimento informado não dispara classificação",
			interaction: &domain.Interaction{
				CustomerID: 5,
				Type:       domain.InteractionEmail,
				Content:    "Proposta enviada",
				Date:       date,
				Sentiment:  domain.SentimentNeutral,
			},
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().GetCustomerByID(5).Return(customer, nil)
				m.interactionRepo.EXPECT().
					CreateInteraction(gomock.Any()).
					DoAndReturn(func(i *domain.Interaction) (*domain.Interaction, error) {
						return i, nil
					})
				m.customerRepo.EXPECT().UpdateLastContact(5, date).Return(nil)
			},
			validate: func(t *testing.T, created *domain.Interaction) {
				assert.Equal(t, domain.SentimentNeutral, created.Sentiment)
			},
		},
		{
			name: "Sentimento fora do enum é normalizado para neutral",
			interaction: &domain.Interaction{
				CustomerID: 5,
				Type:       domain.InteractionNote,
				Content:    "Anotação",
				Date:       date,
				Sentiment:  domain.Sentiment("Feliz"),
			},
			setup: func(m serviceMocks) {
				m.customerRepo.EXPECT().GetCustomerByID(5).Return(customer, nil)
				m.interactionRepo.EXPECT().
					CreateInteraction(gomock.Any()).
					DoAndReturn(func(i *domain.Interaction) (*domain.Interaction, error) {
						return i, nil
					})
				m.customerRepo.EXPECT().UpdateLastContact(5, date).Return(nil)
			},
			validate: func(t *testing.T, created *domain.Interaction) {
				assert.Equal(t, domain.SentimentNeutral, created.Sentiment)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)
			tt.setup(m)

			created, err := service.LogInteraction(ctx, tt.interaction)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			tt.validate(t, created)
		})
	}
}

func TestRecordTransaction(t *testing.T) {
	customer := &domain.Customer{ID: 5, FirstName: "Sarah"}
	product := &domain.Product{ID: 2, Name: "CRM Professional", Price: 899}

	t.Run("Valor zerado assume o preço do produto e data vazia assume agora", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.customerRepo.EXPECT().GetCustomerByID(5).Return(customer, nil)
		m.productRepo.EXPECT().GetProductByID(2).Return(product, nil)
		m.transactionRepo.EXPECT().
			CreateTransaction(gomock.Any()).
			DoAndReturn(func(tr *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, 899.0, tr.TotalAmount)
				assert.False(t, tr.Date.IsZero())
				tr.ID = 1
				return tr, nil
			})

		created, err := service.RecordTransaction(&domain.Transaction{CustomerID: 5, ProductID: 2})
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.customerRepo.EXPECT().GetCustomerByID(5).Return(customer, nil)
		m.productRepo.EXPECT().GetProductByID(99).Return(nil, nil)

		_, err := service.RecordTransaction(&domain.Transaction{CustomerID: 5, ProductID: 99})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Valor negativo é rejeitado antes de tocar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newServiceWithMocks(ctrl)

		_, err := service.RecordTransaction(&domain.Transaction{CustomerID: 5, ProductID: 2, TotalAmount: -50})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Produto existente é removido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.productRepo.EXPECT().GetProductByID(2).Return(&domain.Product{ID: 2, Name: "CRM Professional"}, nil)
		m.productRepo.EXPECT().DeleteProduct(2).Return(nil)

		assert.NoError(t, service.DeleteProduct(2))
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.productRepo.EXPECT().GetProductByID(99).Return(nil, nil)

		assert.ErrorIs(t, service.DeleteProduct(99), ErrProductNotFound)
	})
}

func TestDashboardOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.customerRepo.EXPECT().CountByStage().Return(map[domain.Stage]int{
		domain.StageLead:     3,
		domain.StageProspect: 2,
		domain.StageCustomer: 1,
	}, nil)
	m.transactionRepo.EXPECT().TotalRevenue().Return(4500.0, nil)
	m.interactionRepo.EXPECT().ListRecent(10).Return([]*domain.RecentInteraction{}, nil)
	m.transactionRepo.EXPECT().ListRecent(10).Return([]*domain.Transaction{}, nil)

	overview, err := service.DashboardOverview()
	assert.NoError(t, err)
	assert.Equal(t, 6, overview.TotalCustomers)
	assert.Equal(t, 4500.0, overview.TotalRevenue)
	assert.Equal(t, 3, overview.StageCounts[domain.StageLead])
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.customerRepo.EXPECT().GetCustomerByID(5).Return(&domain.Customer{ID: 5, FirstName: "Sarah"}, nil)
	m.customerRepo.EXPECT().DeleteCustomer(ctx, 5).Return(nil)

	assert.NoError(t, service.DeleteCustomer(ctx, 5))
}
