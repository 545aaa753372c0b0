package dining

import (
	"context"
	"testing"

	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	llmmocks "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/mocks"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/chatting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenu(t *testing.T) {
	service := NewService(chatting.NewService(), nil)

	menu := service.Menu()
	assert.NotEmpty(t, menu)

	names := make(map[string]bool)
	for _, category := range menu {
		names[category.Name] = true
		assert.NotEmpty(t, category.Items)
	}
	assert.True(t, names["Appetizers"])
	assert.True(t, names["Main Courses"])
	assert.True(t, names["Desserts"])
}

func TestFindItem(t *testing.T) {
	service := NewService(chatting.NewService(), nil)

	t.Run("Busca exata", func(t *testing.T) {
		item := service.FindItem("Paneer Tikka")
		require.NotNil(t, item)
		assert.Equal(t, "Paneer Tikka", item.Name)
	})

	t.Run("Busca sem diferenciar maiúsculas", func(t *testing.T) {
		item := service.FindItem("paneer tikka")
		require.NotNil(t, item)
		assert.Equal(t, "Paneer Tikka", item.Name)
	})

	t.Run("Prato inexistente", func(t *testing.T) {
		assert.Nil(t, service.FindItem("Feijoada"))
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llmmocks.NewMockGateway(ctrl)
	conversations := chatting.NewService()
	service := NewService(conversations, completer)

	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), "O que é picante?", llm.Options{}).
		DoAndReturn(func(_ context.Context, system string, history []domain.ConversationMessage, _ string, _ llm.Options) (string, error) {
			// O turno de sistema carrega o cardápio completo
			assert.Contains(t, system, "Paneer Tikka")
			assert.Empty(t, history)
			return "O Paneer Tikka é picante.", nil
		})

	reply, err := service.Chat(ctx, "sess-1", "O que é picante?", "")
	require.NoError(t, err)
	assert.Equal(t, "O Paneer Tikka é picante.", reply)

	// Os dois turnos entraram na transcrição
	history := conversations.History("sess-1", "menu")
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
}

func TestChat_HistoricoSobreviveATrocaDePrato(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llmmocks.NewMockGateway(ctrl)
	conversations := chatting.NewService()
	service := NewService(conversations, completer)

	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), gomock.Any(), llm.Options{}).
		Return("primeira resposta", nil)

	_, err := service.Chat(ctx, "sess-1", "primeira pergunta", "")
	require.NoError(t, err)

	// Na segunda chamada, com prato selecionado, o histórico anterior
	// continua presente e o turno de sistema ganha o bloco do prato
	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), gomock.Any(), llm.Options{}).
		DoAndReturn(func(_ context.Context, system string, history []domain.ConversationMessage, _ string, _ llm.Options) (string, error) {
			assert.Len(t, history, 2)
			assert.Contains(t, system, "The customer has selected: Paneer Tikka")
			return "segunda resposta", nil
		})

	_, err = service.Chat(ctx, "sess-1", "segunda pergunta", "Paneer Tikka")
	require.NoError(t, err)
}

func TestChat_PratoSelecionadoInexistente(t *testing.T) {
	service := NewService(chatting.NewService(), nil)

	_, err := service.Chat(context.Background(), "sess-1", "oi", "Feijoada")
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestRecommendCombos(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llmmocks.NewMockGateway(ctrl)
	service := NewService(chatting.NewService(), completer)

	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(),
			"I'm ordering Paneer Tikka. What appetizers, sides, beverages, and desserts would you recommend to go with it?",
			llm.Options{}).
		Return("Sugiro o lassi de manga.", nil)

	reply, err := service.RecommendCombos(ctx, "sess-1", "paneer tikka")
	require.NoError(t, err)
	assert.Equal(t, "Sugiro o lassi de manga.", reply)
}

func TestRecommendCombos_PratoInexistente(t *testing.T) {
	service := NewService(chatting.NewService(), nil)

	_, err := service.RecommendCombos(context.Background(), "sess-1", "Feijoada")
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestRecordReply(t *testing.T) {
	conversations := chatting.NewService()
	service := NewService(conversations, nil)

	service.RecordReply("sess-1", "resposta em streaming completa")

	history := conversations.History("sess-1", "menu")
	assert.Len(t, history, 1)
	assert.Equal(t, domain.RoleAssistant, history[0].Role)
}
