package domain

// ChatMessage é um turno no formato aceito pelo endpoint de chat completions
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionRequest agrupa os parâmetros de uma chamada ao modelo hospedado
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
	TopP        float64
}
