package llmclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
)

// ChatCompletion envia a requisição e devolve o texto completo da resposta.
// Falhas do provedor viram *UpstreamError com a mensagem bruta preservada.
func (c *LLMClient) ChatCompletion(ctx context.Context, req llmdomain.CompletionRequest) (string, error) {
	resp, err := c.send(ctx, req, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta do provedor: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.upstreamError(resp.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta do provedor de completions")
		return "", fmt.Errorf("erro ao decodificar resposta do provedor: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", &llmdomain.UpstreamError{
			Provider: c.provider.Name,
			Message:  "resposta sem choices",
		}
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// send monta e dispara a requisição HTTP comum aos dois modos
func (c *LLMClient) send(ctx context.Context, req llmdomain.CompletionRequest, stream bool) (*http.Response, error) {
	if c.provider.APIKey == "" {
		return nil, llmdomain.ErrMissingCredential
	}

	model := req.Model
	if model == "" {
		model = c.provider.Model
	}

	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
		Stream:      stream,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição de completion: %w", err)
	}

	url := strings.TrimRight(c.provider.BaseURL, "/") + "/chat/completions"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição para o provedor: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.provider.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logrus.WithError(err).WithField("provider", c.provider.Name).Error("Erro ao chamar o provedor de completions")
		return nil, &llmdomain.UpstreamError{
			Provider: c.provider.Name,
			Message:  err.Error(),
		}
	}

	return resp, nil
}

// upstreamError extrai a mensagem do envelope de erro do provedor; se o
// corpo não for o envelope esperado, preserva o texto bruto truncado
func (c *LLMClient) upstreamError(statusCode int, body []byte) error {
	message := strings.TrimSpace(string(body))
	if len(message) > 400 {
		message = message[:400]
	}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		message = parsed.Error.Message
	}

	return &llmdomain.UpstreamError{
		Provider:   c.provider.Name,
		StatusCode: statusCode,
		Message:    message,
	}
}
