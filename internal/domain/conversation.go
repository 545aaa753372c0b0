package domain

// Role identifica o autor de um turno da conversa
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage é um turno da transcrição. O turno de sistema nunca é
// armazenado na transcrição: ele é recalculado a cada chamada, porque o
// contexto do qual depende (cliente ou prato selecionado) pode ter mudado.
type ConversationMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
