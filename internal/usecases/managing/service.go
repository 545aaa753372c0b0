package managing

import (
	"context"
	"time"

	"github.com/nvieira96/aicrm-api/infrastructure/repository"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/insighting"
	"github.com/nvieira96/aicrm-api/pkg/log"
)

// Limites do feed de atividade do painel
const (
	dashboardInteractionLimit = 10
	dashboardTransactionLimit = 10
)

// Manager define as operações de cadastro do CRM: clientes, interações,
// produtos, transações e o painel
type Manager interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(customerID int) (*domain.Customer, error)
	ListCustomers(filters domain.CustomerFilters) ([]*domain.Customer, error)
	UpdateCustomer(customer *domain.UpdateCustomerRequest) error
	DeleteCustomer(ctx context.Context, customerID int) error
	DashboardOverview() (*domain.DashboardOverview, error)

	LogInteraction(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error)
	ListInteractions(customerID int) ([]*domain.Interaction, error)

	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProduct(productID int) (*domain.Product, error)
	ListProducts(category string) ([]*domain.Product, error)
	ListCategories() ([]string, error)
	UpdateProduct(product *domain.UpdateProductRequest) error
	DeleteProduct(productID int) error

	RecordTransaction(transaction *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(customerID int) ([]*domain.Transaction, error)
}

type Service struct {
	customerRepo    repository.CustomerRepository
	interactionRepo repository.InteractionRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	insighter       insighting.Insighter
}

func NewService(
	customerRepo repository.CustomerRepository,
	interactionRepo repository.InteractionRepository,
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	insighter insighting.Insighter,
) Manager {
	return &Service{
		customerRepo:    customerRepo,
		interactionRepo: interactionRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		insighter:       insighter,
	}
}

func (s *Service) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if customer.FirstName == "" {
		return nil, ErrMissingRequiredData
	}

	if customer.Stage == "" {
		customer.Stage = domain.StageLead
	}

	if !customer.Stage.IsValid() {
		return nil, ErrInvalidStage
	}

	return s.customerRepo.CreateCustomer(customer)
}

func (s *Service) GetCustomer(customerID int) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Service) ListCustomers(filters domain.CustomerFilters) ([]*domain.Customer, error) {
	if filters.Stage != nil && !filters.Stage.IsValid() {
		return nil, ErrInvalidStage
	}

	return s.customerRepo.ListCustomers(filters)
}

func (s *Service) UpdateCustomer(customer *domain.UpdateCustomerRequest) error {
	if customer.ID == 0 {
		return ErrCustomerIDRequired
	}

	if customer.Stage != nil && !customer.Stage.IsValid() {
		return ErrInvalidStage
	}

	return s.customerRepo.UpdateCustomer(customer)
}

// DeleteCustomer remove o cliente e, em cascata, suas interações e transações
func (s *Service) DeleteCustomer(ctx context.Context, customerID int) error {
	if _, err := s.GetCustomer(customerID); err != nil {
		return err
	}

	return s.customerRepo.DeleteCustomer(ctx, customerID)
}

// DashboardOverview agrega os números do painel: funil por estágio, receita
// total e os feeds de atividade recente
func (s *Service) DashboardOverview() (*domain.DashboardOverview, error) {
	stageCounts, err := s.customerRepo.CountByStage()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range stageCounts {
		total += count
	}

	revenue, err := s.transactionRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	interactions, err := s.interactionRepo.ListRecent(dashboardInteractionLimit)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListRecent(dashboardTransactionLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardOverview{
		TotalCustomers:     total,
		StageCounts:        stageCounts,
		TotalRevenue:       revenue,
		RecentInteractions: interactions,
		RecentTransactions: transactions,
	}, nil
}

// LogInteraction registra uma interação na timeline do cliente. Sem
// sentimento informado, o texto é classificado pelo modelo; a data de último
// contato do cliente avança para a data da interação.
func (s *Service) LogInteraction(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error) {
	if interaction.CustomerID == 0 {
		return nil, ErrCustomerIDRequired
	}

	if interaction.Content == "" {
		return nil, ErrMissingRequiredData
	}

	if !interaction.Type.IsValid() {
		return nil, ErrInvalidInteractionType
	}

	if _, err := s.GetCustomer(interaction.CustomerID); err != nil {
		return nil, err
	}

	if interaction.Date.IsZero() {
		interaction.Date = time.Now()
	}

	if interaction.Sentiment == "" {
		interaction.Sentiment = s.insighter.ClassifySentiment(ctx, interaction.Content)
	} else if !interaction.Sentiment.IsValid() {
		interaction.Sentiment = domain.NormalizeSentiment(string(interaction.Sentiment))
	}

	created, err := s.interactionRepo.CreateInteraction(interaction)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.UpdateLastContact(interaction.CustomerID, interaction.Date); err != nil {
		log.L.WithError(err).Warnf("Erro ao atualizar último contato do cliente %d", interaction.CustomerID)
	}

	return created, nil
}

func (s *Service) ListInteractions(customerID int) ([]*domain.Interaction, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}

	return s.interactionRepo.ListByCustomer(customerID)
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" || product.Category == "" {
		return nil, ErrMissingRequiredData
	}

	return s.productRepo.CreateProduct(product)
}

func (s *Service) GetProduct(productID int) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) ListProducts(category string) ([]*domain.Product, error) {
	return s.productRepo.ListProducts(category)
}

func (s *Service) ListCategories() ([]string, error) {
	return s.productRepo.ListCategories()
}

func (s *Service) UpdateProduct(product *domain.UpdateProductRequest) error {
	return s.productRepo.UpdateProduct(product)
}

// DeleteProduct remove o produto do catálogo. Transações já registradas
// continuam referenciando o produto, então a exclusão falha se houver vendas.
func (s *Service) DeleteProduct(productID int) error {
	if _, err := s.GetProduct(productID); err != nil {
		return err
	}

	return s.productRepo.DeleteProduct(productID)
}

// RecordTransaction registra uma venda. Sem valor informado, o preço de
// catálogo do produto é usado; valores negativos são rejeitados.
func (s *Service) RecordTransaction(transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.CustomerID == 0 {
		return nil, ErrCustomerIDRequired
	}

	if transaction.TotalAmount < 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.GetCustomer(transaction.CustomerID); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(transaction.ProductID)
	if err != nil {
		return nil, err
	}

	if transaction.TotalAmount == 0 {
		transaction.TotalAmount = product.Price
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Now()
	}

	return s.transactionRepo.CreateTransaction(transaction)
}

func (s *Service) ListTransactions(customerID int) ([]*domain.Transaction, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}

	return s.transactionRepo.ListByCustomer(customerID)
}
