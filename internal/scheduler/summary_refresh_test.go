package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nvieira96/aicrm-api/infrastructure/repository/mocks"
	"github.com/nvieira96/aicrm-api/internal/domain"
	insightmocks "github.com/nvieira96/aicrm-api/internal/usecases/insighting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func newTestService(
	customerRepo *mocks.MockCustomerRepository,
	insighter *insightmocks.MockInsighter,
) *SummaryRefreshService {
	return &SummaryRefreshService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       SummaryRefreshConfig{RefreshEnabled: true, CronSchedule: "0 3 * * *"},
		customerRepo: customerRepo,
		insighter:    insighter,
	}
}

func TestRefreshAllSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)
	service := newTestService(customerRepo, insighter)

	customerRepo.EXPECT().ListCustomers(domain.CustomerFilters{}).Return([]*domain.Customer{
		{ID: 1, FirstName: "Sarah", AISummary: strPtr("resumo antigo")},
		{ID: 2, FirstName: "Michael"},                     // sem resumo: não entra
		{ID: 3, FirstName: "Emily", AISummary: strPtr("")}, // resumo vazio: não entra
		{ID: 4, FirstName: "David", AISummary: strPtr("outro resumo")},
	}, nil)

	// Só os clientes 1 e 4 são regenerados, sempre com force=true
	insighter.EXPECT().GenerateCustomerSummary(gomock.Any(), 1, true).Return("novo resumo", nil)
	insighter.EXPECT().GenerateCustomerSummary(gomock.Any(), 4, true).Return("novo resumo", nil)

	service.refreshAllSummaries(context.Background())

	assert.False(t, service.lastRefreshStartedAt.IsZero())
	assert.False(t, service.lastRefreshCompletedAt.IsZero())
}

func TestRefreshAllSummaries_ErroEmUmClienteNaoInterrompeOsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)
	service := newTestService(customerRepo, insighter)

	customerRepo.EXPECT().ListCustomers(domain.CustomerFilters{}).Return([]*domain.Customer{
		{ID: 1, FirstName: "Sarah", AISummary: strPtr("resumo")},
		{ID: 2, FirstName: "David", AISummary: strPtr("resumo")},
	}, nil)

	insighter.EXPECT().
		GenerateCustomerSummary(gomock.Any(), 1, true).
		Return("", errors.New("provedor fora do ar"))
	insighter.EXPECT().
		GenerateCustomerSummary(gomock.Any(), 2, true).
		Return("novo resumo", nil)

	service.refreshAllSummaries(context.Background())
}

func TestRefreshAllSummaries_ErroAoListarClientes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)
	service := newTestService(customerRepo, insighter)

	customerRepo.EXPECT().
		ListCustomers(domain.CustomerFilters{}).
		Return(nil, errors.New("conexão perdida"))

	// Nenhuma regeneração é tentada
	service.refreshAllSummaries(context.Background())
}

func TestStart_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)
	service := newTestService(customerRepo, insighter)
	service.config.RefreshEnabled = false

	// Desabilitado: Start retorna sem agendar nada
	assert.NoError(t, service.Start(context.Background()))
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)
	service := newTestService(customerRepo, insighter)

	status := service.GetStatus()
	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, "0 3 * * *", status["refresh_cron"])
	assert.True(t, status["last_refresh_started_at"].(time.Time).IsZero())
}

func TestGetStatus_RefleteAExecucaoConcluida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)
	service := newTestService(customerRepo, insighter)

	customerRepo.EXPECT().ListCustomers(domain.CustomerFilters{}).Return([]*domain.Customer{
		{ID: 1, FirstName: "Sarah", AISummary: strPtr("resumo")},
	}, nil)
	insighter.EXPECT().GenerateCustomerSummary(gomock.Any(), 1, true).Return("novo resumo", nil)

	service.refreshAllSummaries(context.Background())

	status := service.GetStatus()
	assert.False(t, status["last_refresh_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
}
