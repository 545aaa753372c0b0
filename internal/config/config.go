package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	Groq           Groq           `mapstructure:",squash"`
	Chat           Chat           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SummaryRefresh SummaryRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// OpenAI configura o provedor de completions do CRM
type OpenAI struct {
	BaseURL string `mapstructure:"openai_base_url"`
	APIKey  string `mapstructure:"openai_api_key"`
	Model   string `mapstructure:"openai_model"`
}

// Groq configura o provedor de completions do assistente de cardápio
type Groq struct {
	BaseURL string `mapstructure:"groq_base_url"`
	APIKey  string `mapstructure:"groq_api_key"`
	Model   string `mapstructure:"groq_model"`
}

// Chat agrupa os parâmetros de amostragem padrão das chamadas ao modelo
type Chat struct {
	Temperature float64 `mapstructure:"chat_temperature"`
	MaxTokens   int     `mapstructure:"chat_max_tokens"`
	TopP        float64 `mapstructure:"chat_top_p"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// SummaryRefresh configura o agendador de regeneração de resumos de IA
type SummaryRefresh struct {
	CronSchedule        string `mapstructure:"summary_refresh_cron"`
	RequestDelaySeconds int    `mapstructure:"summary_refresh_request_delay_seconds"`
	Enabled             bool   `mapstructure:"summary_refresh_enabled"`
}

// LLMProvider é a visão de um provedor já resolvida com os padrões de chat,
// consumida pelo integrador de completions
type LLMProvider struct {
	Name        string
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// OpenAIProvider resolve a configuração do provedor usado pelo CRM
func (c *Config) OpenAIProvider() LLMProvider {
	return LLMProvider{
		Name:        "openai",
		BaseURL:     c.OpenAI.BaseURL,
		APIKey:      c.OpenAI.APIKey,
		Model:       c.OpenAI.Model,
		Temperature: c.Chat.Temperature,
		MaxTokens:   c.Chat.MaxTokens,
		TopP:        c.Chat.TopP,
	}
}

// GroqProvider resolve a configuração do provedor do assistente de cardápio
func (c *Config) GroqProvider() LLMProvider {
	return LLMProvider{
		Name:        "groq",
		BaseURL:     c.Groq.BaseURL,
		APIKey:      c.Groq.APIKey,
		Model:       c.Groq.Model,
		Temperature: c.Chat.Temperature,
		MaxTokens:   c.Chat.MaxTokens,
		TopP:        c.Chat.TopP,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/aicrm")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_MODEL", "openai/gpt-oss-20b")

	viper.SetDefault("CHAT_TEMPERATURE", 0.7)
	viper.SetDefault("CHAT_MAX_TOKENS", 1024)
	viper.SetDefault("CHAT_TOP_P", 1.0)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do agendador de regeneração de resumos
	viper.SetDefault("SUMMARY_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SUMMARY_REFRESH_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("SUMMARY_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Carrega o arquivo .env antes do viper, para desenvolvimento local
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	// Credencial ausente é avisada uma única vez aqui; cada chamada falha
	// individualmente com erro etiquetado, sem derrubar a sessão
	if config.OpenAI.APIKey == "" {
		logrus.Warn("OPENAI_API_KEY não configurada; os recursos de IA do CRM ficarão indisponíveis")
	}
	if config.Groq.APIKey == "" {
		logrus.Warn("GROQ_API_KEY não configurada; o assistente de cardápio ficará indisponível")
	}

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
