package llmclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
	"github.com/nvieira96/aicrm-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fala com um endpoint de chat completions compatível com a API da
// OpenAI. O mesmo cliente cobre a OpenAI e a Groq, que expõem o mesmo
// contrato, mudando apenas a URL base, a chave e o modelo padrão.
type Client interface {
	ChatCompletion(ctx context.Context, req llmdomain.CompletionRequest) (string, error)
	ChatCompletionStream(ctx context.Context, req llmdomain.CompletionRequest) (*Stream, error)
}

type LLMClient struct {
	provider   config.LLMProvider
	httpClient *http.Client
}

func NewClient(provider config.LLMProvider) Client {
	return &LLMClient{
		provider: provider,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// chatRequest é o corpo enviado ao endpoint /chat/completions
type chatRequest struct {
	Model       string                  `json:"model"`
	Messages    []llmdomain.ChatMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens,omitempty"`
	TopP        float64                 `json:"top_p,omitempty"`
	Stream      bool                    `json:"stream,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message llmdomain.ChatMessage `json:"message"`
	} `json:"choices"`
}

// errorResponse é o envelope de erro padrão da API da OpenAI/Groq
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
