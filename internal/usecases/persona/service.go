package persona

import (
	"context"

	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/chatting"
	"github.com/nvieira96/aicrm-api/internal/usecases/prompting"
)

// personaSubject é o assunto fixo das conversas do tutor de personagem
const personaSubject = "persona"

// personaModel é fixo: o tom do personagem foi calibrado neste modelo e não
// acompanha o modelo padrão configurado para o CRM
const personaModel = "gpt-4o-mini"

// Guide é o tutor de personagem: um chat educacional sobre o framework de
// competências UCF, conduzido na voz do Capitão Jack Sparrow
type Guide interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
}

type Service struct {
	conversations chatting.Conversationalist
	completer     llm.Gateway
}

func NewService(conversations chatting.Conversationalist, completer llm.Gateway) Guide {
	return &Service{
		conversations: conversations,
		completer:     completer,
	}
}

// Chat responde na voz do personagem, mantendo o histórico da sessão. A
// instrução de personagem é recolocada como turno de sistema a cada chamada.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (string, error) {
	history := s.conversations.History(sessionID, personaSubject)

	reply, err := s.completer.Complete(ctx, prompting.PersonaInstruction, history, message, llm.Options{
		Model: personaModel,
	})
	if err != nil {
		return "", err
	}

	s.conversations.Append(sessionID, personaSubject, domain.RoleUser, message)
	s.conversations.Append(sessionID, personaSubject, domain.RoleAssistant, reply)

	return reply, nil
}
