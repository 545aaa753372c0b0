package llmclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
	"github.com/nvieira96/aicrm-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(baseURL string) config.LLMProvider {
	return config.LLMProvider{
		Name:        "openai",
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   600,
		TopP:        1,
	}
}

func TestChatCompletion(t *testing.T) {
	var captured struct {
		path  string
		auth  string
		model string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")

		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		require.NoError(t, json.Unmarshal(body, &req))
		captured.model = req.Model

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"  Olá, mundo!  "}}]}`)
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	content, err := client.ChatCompletion(context.Background(), llmdomain.CompletionRequest{
		Messages: []llmdomain.ChatMessage{{Role: llmdomain.RoleUser, Content: "oi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Olá, mundo!", content)
	assert.Equal(t, "/chat/completions", captured.path)
	assert.Equal(t, "Bearer test-key", captured.auth)
	assert.Equal(t, "gpt-3.5-turbo", captured.model)
}

func TestChatCompletion_ModeloDaRequisicaoSobrepoeOPadrao(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "gpt-4o-mini", req.Model)

		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	_, err := client.ChatCompletion(context.Background(), llmdomain.CompletionRequest{
		Model:    "gpt-4o-mini",
		Messages: []llmdomain.ChatMessage{{Role: llmdomain.RoleUser, Content: "oi"}},
	})
	require.NoError(t, err)
}

func TestChatCompletion_SemChaveDeAPI(t *testing.T) {
	provider := testProvider("http://localhost:0")
	provider.APIKey = ""

	client := NewClient(provider)

	_, err := client.ChatCompletion(context.Background(), llmdomain.CompletionRequest{})
	assert.ErrorIs(t, err, llmdomain.ErrMissingCredential)
}

func TestChatCompletion_ErroDoProvedor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"Rate limit reached","type":"rate_limit_error"}}`)
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	_, err := client.ChatCompletion(context.Background(), llmdomain.CompletionRequest{
		Messages: []llmdomain.ChatMessage{{Role: llmdomain.RoleUser, Content: "oi"}},
	})

	var upstream *llmdomain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "openai", upstream.Provider)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, "Rate limit reached", upstream.Message)
}

func TestChatCompletion_RespostaSemChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	_, err := client.ChatCompletion(context.Background(), llmdomain.CompletionRequest{
		Messages: []llmdomain.ChatMessage{{Role: llmdomain.RoleUser, Content: "oi"}},
	})
	assert.True(t, llmdomain.IsUpstream(err))
}

func TestChatCompletionStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hello\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\", \"}}]}\n\n")
		fmt.Fprint(w, ": comentário ignorado\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"world\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	stream, err := client.ChatCompletionStream(context.Background(), llmdomain.CompletionRequest{
		Messages: []llmdomain.ChatMessage{{Role: llmdomain.RoleUser, Content: "oi"}},
	})
	require.NoError(t, err)
	defer stream.Close()

	var chunks []string
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}

	assert.Equal(t, []string{"Hello", ", ", "world"}, chunks)

	// Depois do fim, Recv continua devolvendo EOF
	_, err = stream.Recv()
	assert.Equal(t, io.EOF, err)
}

func TestChatCompletionStream_ErroDoProvedor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Invalid API key"}}`)
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	_, err := client.ChatCompletionStream(context.Background(), llmdomain.CompletionRequest{})

	var upstream *llmdomain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Equal(t, "Invalid API key", upstream.Message)
}

func TestChatCompletionStream_EncerraNoFinishReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"fim\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{},\"finish_reason\":\"stop\"}]}\n\n")
	}))
	defer server.Close()

	client := NewClient(testProvider(server.URL))

	stream, err := client.ChatCompletionStream(context.Background(), llmdomain.CompletionRequest{})
	require.NoError(t, err)
	defer stream.Close()

	chunk, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "fim", chunk)

	_, err = stream.Recv()
	assert.Equal(t, io.EOF, err)
}
