package persona

import (
	"context"
	"errors"
	"testing"

	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	llmmocks "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/mocks"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/chatting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChat(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llmmocks.NewMockGateway(ctrl)
	conversations := chatting.NewService()
	service := NewService(conversations, completer)

	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), "What is the UCF?", llm.Options{Model: "gpt-4o-mini"}).
		DoAndReturn(func(_ context.Context, system string, history []domain.ConversationMessage, _ string, _ llm.Options) (string, error) {
			assert.Contains(t, system, "Captain Jack Sparrow")
			assert.Empty(t, history)
			return "Ahoy! The UCF, savvy?", nil
		})

	reply, err := service.Chat(ctx, "sess-1", "What is the UCF?")
	require.NoError(t, err)
	assert.Equal(t, "Ahoy! The UCF, savvy?", reply)

	// O histórico acumulado entra na chamada seguinte
	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), "Tell me more", llm.Options{Model: "gpt-4o-mini"}).
		DoAndReturn(func(_ context.Context, _ string, history []domain.ConversationMessage, _ string, _ llm.Options) (string, error) {
			assert.Len(t, history, 2)
			return "Aye, more it is.", nil
		})

	_, err = service.Chat(ctx, "sess-1", "Tell me more")
	require.NoError(t, err)
}

func TestChat_ErroDoProvedorNaoEntraNaTranscricao(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := llmmocks.NewMockGateway(ctrl)
	conversations := chatting.NewService()
	service := NewService(conversations, completer)

	completer.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("provedor fora do ar"))

	_, err := service.Chat(ctx, "sess-1", "oi")
	assert.Error(t, err)
	assert.Empty(t, conversations.History("sess-1", "persona"))
}
