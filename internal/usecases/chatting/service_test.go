package chatting

import (
	"testing"

	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestService_StartSession(t *testing.T) {
	service := NewService()

	first, err := service.StartSession()
	assert.NoError(t, err)
	assert.Len(t, first, 6)

	second, err := service.StartSession()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestService_AppendEHistory(t *testing.T) {
	service := NewService()
	sessionID, _ := service.StartSession()

	service.Append(sessionID, "menu", domain.RoleUser, "O que é picante?")
	service.Append(sessionID, "menu", domain.RoleAssistant, "O Paneer Tikka é picante.")

	history := service.History(sessionID, "menu")
	assert.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "O que é picante?", history[0].Content)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
}

func TestService_HistoryRetornaCopia(t *testing.T) {
	service := NewService()
	sessionID, _ := service.StartSession()

	service.Append(sessionID, "menu", domain.RoleUser, "original")

	history := service.History(sessionID, "menu")
	history[0].Content = "alterado"

	again := service.History(sessionID, "menu")
	assert.Equal(t, "original", again[0].Content)
}

func TestService_MudancaDeAssuntoDescartaTranscricao(t *testing.T) {
	service := NewService()
	sessionID, _ := service.StartSession()

	service.Append(sessionID, "customer-1", domain.RoleUser, "pergunta sobre o cliente 1")
	service.Append(sessionID, "customer-1", domain.RoleAssistant, "resposta")

	// Mesmo assunto preserva o histórico
	assert.Len(t, service.History(sessionID, "customer-1"), 2)

	// Assunto novo zera a transcrição
	assert.Empty(t, service.History(sessionID, "customer-2"))

	// E a transcrição anterior não volta mais
	assert.Empty(t, service.History(sessionID, "customer-1"))
}

func TestService_Clear(t *testing.T) {
	service := NewService()
	sessionID, _ := service.StartSession()

	service.Append(sessionID, "menu", domain.RoleUser, "pergunta")
	service.Clear(sessionID)

	assert.Empty(t, service.History(sessionID, "menu"))
}

func TestService_SessaoDesconhecidaECriadaSobDemanda(t *testing.T) {
	service := NewService()

	service.Append("nunca-criada", "menu", domain.RoleUser, "oi")
	assert.Len(t, service.History("nunca-criada", "menu"), 1)
}
