package llmclient

import (
	"bufio"
	"context"
	"io"
	"strings"

	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
)

// Stream é a sequência preguiçosa e finita de fragmentos de texto de uma
// resposta em streaming. Não é reiniciável: cada fragmento é consumido uma
// única vez. Quem quiser cancelar no meio basta parar de consumir e chamar
// Close.
type Stream struct {
	body   io.ReadCloser
	reader *bufio.Reader
	done   bool
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// ChatCompletionStream abre uma resposta em streaming (server-sent events).
// O chamador é responsável por concatenar os fragmentos e por fechar o
// stream quando terminar ou desistir.
func (c *LLMClient) ChatCompletionStream(ctx context.Context, req llmdomain.CompletionRequest) (*Stream, error) {
	resp, err := c.send(ctx, req, true)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, c.upstreamError(resp.StatusCode, body)
	}

	return &Stream{
		body:   resp.Body,
		reader: bufio.NewReader(resp.Body),
	}, nil
}

// Recv devolve o próximo fragmento de texto não vazio. Retorna io.EOF quando
// o provedor sinaliza o fim da sequência.
func (s *Stream) Recv() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			s.done = true
			if err == io.EOF {
				return "", io.EOF
			}
			return "", err
		}

		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}

		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			s.done = true
			return "", io.EOF
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Linha malformada não encerra o stream, apenas é descartada
			continue
		}

		if len(chunk.Choices) == 0 {
			continue
		}

		if content := chunk.Choices[0].Delta.Content; content != "" {
			return content, nil
		}

		if chunk.Choices[0].FinishReason != nil {
			s.done = true
			return "", io.EOF
		}
	}
}

// Close libera a conexão subjacente
func (s *Stream) Close() error {
	s.done = true
	return s.body.Close()
}
