package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nvieira96/aicrm-api/infrastructure/repository"
	"github.com/nvieira96/aicrm-api/internal/config"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/insighting"
	"github.com/sirupsen/logrus"
)

// SummaryRefreshConfig representa a configuração do agendador de resumos de IA
type SummaryRefreshConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	RefreshEnabled      bool
}

// SummaryRefreshService regenera periodicamente os resumos de IA dos clientes
// que já têm um resumo salvo, para que não fiquem defasados em relação às
// interações e compras novas. Clientes sem resumo não entram: o primeiro
// resumo é sempre gerado sob demanda.
type SummaryRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 SummaryRefreshConfig
	customerRepo           repository.CustomerRepository
	insighter              insighting.Insighter
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewSummaryRefreshService cria uma nova instância do serviço de regeneração de resumos
func NewSummaryRefreshService(
	customerRepo repository.CustomerRepository,
	insighter insighting.Insighter,
	appConfig *config.Config,
) *SummaryRefreshService {
	refreshConfig := SummaryRefreshConfig{
		CronSchedule:        appConfig.SummaryRefresh.CronSchedule,
		RequestDelaySeconds: appConfig.SummaryRefresh.RequestDelaySeconds,
		RefreshEnabled:      appConfig.SummaryRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         refreshConfig.CronSchedule,
		"request_delay_seconds": refreshConfig.RequestDelaySeconds,
		"refresh_enabled":       refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de resumos de IA carregada")

	return &SummaryRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		customerRepo:   customerRepo,
		insighter:      insighter,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *SummaryRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Regeneração de resumos de IA desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de regeneração de resumos de IA")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllSummaries(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração de resumos de IA: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de regeneração de resumos de IA")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllSummaries regenera o resumo de cada cliente que já tem um salvo
func (s *SummaryRefreshService) refreshAllSummaries(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Regeneração de resumos de IA já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.refreshRunning = true
	s.lastRefreshStartedAt = startTime
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando regeneração de resumos de IA")

	customers, err := s.customerRepo.ListCustomers(domain.CustomerFilters{})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes para regeneração de resumos de IA")
		return
	}

	refreshed := 0
	for _, customer := range customers {
		if customer.AISummary == nil || *customer.AISummary == "" {
			continue
		}

		if _, err := s.insighter.GenerateCustomerSummary(ctx, customer.ID, true); err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customer.ID,
				"customer":    customer.FullName(),
				"error":       err.Error(),
			}).Error("Erro ao regenerar resumo de IA do cliente")
			continue
		}

		refreshed++

		// Aguardar antes da próxima requisição para evitar sobrecarga no provedor
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"refreshed": refreshed,
		"customers": len(customers),
	}).Info("Regeneração de resumos de IA concluída")

	s.refreshMutex.Lock()
	s.lastRefreshCompletedAt = time.Now()
	s.refreshMutex.Unlock()
}

// TriggerManualRefresh inicia manualmente uma regeneração de resumos
func (s *SummaryRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Regeneração de resumos de IA já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando regeneração manual de resumos de IA")
	go s.refreshAllSummaries(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SummaryRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	startedAt := s.lastRefreshStartedAt
	completedAt := s.lastRefreshCompletedAt
	s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_request_delay_s":   s.config.RequestDelaySeconds,
		"last_refresh_started_at":   startedAt,
		"last_refresh_completed_at": completedAt,
	}
}
