package llm

import (
	"context"

	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/llmclient"
	"github.com/nvieira96/aicrm-api/internal/config"
	"github.com/nvieira96/aicrm-api/internal/domain"
)

// Options ajusta uma chamada específica ao modelo. Campos zerados caem nos
// padrões configurados do provedor.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Gateway é a fachada de completions usada pelos casos de uso: recebe a
// instrução de sistema, o histórico ordenado e o novo turno do usuário, e
// devolve o texto final (ou a sequência de fragmentos, no modo streaming).
type Gateway interface {
	Complete(ctx context.Context, system string, history []domain.ConversationMessage, userTurn string, opts Options) (string, error)
	CompleteStream(ctx context.Context, system string, history []domain.ConversationMessage, userTurn string, opts Options) (*llmclient.Stream, error)
}

type LLMIntegrator struct {
	cfg    config.LLMProvider
	client llmclient.Client
}

func New(cfg config.LLMProvider, client llmclient.Client) *LLMIntegrator {
	return &LLMIntegrator{
		cfg:    cfg,
		client: client,
	}
}

// Complete envia o prompt montado e devolve o texto completo da resposta
func (s *LLMIntegrator) Complete(
	ctx context.Context,
	system string,
	history []domain.ConversationMessage,
	userTurn string,
	opts Options,
) (string, error) {
	return s.client.ChatCompletion(ctx, s.buildRequest(system, history, userTurn, opts))
}

// CompleteStream envia o prompt montado e devolve o stream de fragmentos
func (s *LLMIntegrator) CompleteStream(
	ctx context.Context,
	system string,
	history []domain.ConversationMessage,
	userTurn string,
	opts Options,
) (*llmclient.Stream, error) {
	return s.client.ChatCompletionStream(ctx, s.buildRequest(system, history, userTurn, opts))
}

// buildRequest prefixa a instrução de sistema como turno zero quando houver
// uma. Ela nunca vem do histórico armazenado, é recomputada a cada chamada.
// Campos não informados em opts caem nos padrões configurados.
func (s *LLMIntegrator) buildRequest(
	system string,
	history []domain.ConversationMessage,
	userTurn string,
	opts Options,
) llmdomain.CompletionRequest {
	messages := make([]llmdomain.ChatMessage, 0, len(history)+2)
	if system != "" {
		messages = append(messages, llmdomain.ChatMessage{
			Role:    llmdomain.RoleSystem,
			Content: system,
		})
	}

	for _, turn := range history {
		messages = append(messages, llmdomain.ChatMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	if userTurn != "" {
		messages = append(messages, llmdomain.ChatMessage{
			Role:    llmdomain.RoleUser,
			Content: userTurn,
		})
	}

	model := opts.Model
	if model == "" {
		model = s.cfg.Model
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = s.cfg.Temperature
	}

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = s.cfg.MaxTokens
	}

	topP := opts.TopP
	if topP == 0 {
		topP = s.cfg.TopP
	}

	return llmdomain.CompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
	}
}
