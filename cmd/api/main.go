package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/nvieira96/aicrm-api/infrastructure/database/postgres"
	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/llmclient"
	"github.com/nvieira96/aicrm-api/infrastructure/repository"
	"github.com/nvieira96/aicrm-api/internal/api"
	"github.com/nvieira96/aicrm-api/internal/config"
	"github.com/nvieira96/aicrm-api/internal/scheduler"
	"github.com/nvieira96/aicrm-api/internal/usecases/authenticating"
	"github.com/nvieira96/aicrm-api/internal/usecases/chatting"
	"github.com/nvieira96/aicrm-api/internal/usecases/dining"
	"github.com/nvieira96/aicrm-api/internal/usecases/insighting"
	"github.com/nvieira96/aicrm-api/internal/usecases/managing"
	"github.com/nvieira96/aicrm-api/internal/usecases/persona"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	interactionRepo := repository.NewInteractionRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Integrador de completions do CRM (OpenAI) e do assistente de cardápio (Groq)
	openAIProvider := cfg.OpenAIProvider()
	crmCompleter := llm.New(openAIProvider, llmclient.NewClient(openAIProvider))

	groqProvider := cfg.GroqProvider()
	menuCompleter := llm.New(groqProvider, llmclient.NewClient(groqProvider))

	insightService := insighting.NewService(
		customerRepo,
		interactionRepo,
		productRepo,
		transactionRepo,
		crmCompleter,
	)

	managerService := managing.NewService(
		customerRepo,
		interactionRepo,
		productRepo,
		transactionRepo,
		insightService,
	)

	// Sessões de conversa em memória, compartilhadas pelos três assistentes
	chatService := chatting.NewService()

	menuService := dining.NewService(chatService, menuCompleter)
	personaService := persona.NewService(chatService, crmCompleter)

	// Inicializa o agendador de regeneração de resumos de IA
	summaryRefreshService := scheduler.NewSummaryRefreshService(
		customerRepo,
		insightService,
		cfg,
	)

	if err := summaryRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de regeneração de resumos")
	} else {
		logrus.Info("Agendador de regeneração de resumos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		managerService,
		insightService,
		menuService,
		personaService,
		chatService,
		authenticator,
		summaryRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
