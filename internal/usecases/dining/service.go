package dining

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm"
	"github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/llmclient"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/chatting"
	"github.com/nvieira96/aicrm-api/internal/usecases/prompting"
)

// ErrDishNotFound é retornado quando o prato selecionado não está no cardápio
var ErrDishNotFound = errors.New("prato não encontrado no cardápio")

// menuSubject é o assunto fixo das conversas do assistente de cardápio. A
// transcrição sobrevive à troca de prato selecionado: só o turno de sistema
// muda, recalculado a cada chamada.
const menuSubject = "menu"

// MenuAssistant é o assistente de cardápio do restaurante
type MenuAssistant interface {
	// Menu retorna o cardápio completo, agrupado por categoria
	Menu() []domain.MenuCategory

	// FindItem localiza um prato pelo nome, sem diferenciar maiúsculas
	FindItem(name string) *domain.MenuItem

	// Chat responde uma pergunta sobre o cardápio, com o histórico da sessão
	Chat(ctx context.Context, sessionID, message, selectedDish string) (string, error)

	// ChatStream é a variante em streaming de Chat. O chamador consome o
	// stream e registra a resposta completa com RecordReply.
	ChatStream(ctx context.Context, sessionID, message, selectedDish string) (*llmclient.Stream, error)

	// RecommendCombos gera recomendações de combinações para um prato
	RecommendCombos(ctx context.Context, sessionID, dishName string) (string, error)

	// RecordReply registra a resposta do assistente na transcrição da sessão
	RecordReply(sessionID, reply string)
}

type Service struct {
	catalog       []domain.MenuCategory
	conversations chatting.Conversationalist
	completer     llm.Gateway
}

func NewService(conversations chatting.Conversationalist, completer llm.Gateway) MenuAssistant {
	return &Service{
		catalog:       Catalog(),
		conversations: conversations,
		completer:     completer,
	}
}

func (s *Service) Menu() []domain.MenuCategory {
	return s.catalog
}

func (s *Service) FindItem(name string) *domain.MenuItem {
	for _, category := range s.catalog {
		for i := range category.Items {
			if strings.EqualFold(category.Items[i].Name, name) {
				item := category.Items[i]
				return &item
			}
		}
	}
	return nil
}

func (s *Service) Chat(ctx context.Context, sessionID, message, selectedDish string) (string, error) {
	system, history, err := s.prepareTurn(sessionID, message, selectedDish)
	if err != nil {
		return "", err
	}

	reply, err := s.completer.Complete(ctx, system, history, message, llm.Options{})
	if err != nil {
		return "", err
	}

	s.conversations.Append(sessionID, menuSubject, domain.RoleUser, message)
	s.conversations.Append(sessionID, menuSubject, domain.RoleAssistant, reply)

	return reply, nil
}

func (s *Service) ChatStream(ctx context.Context, sessionID, message, selectedDish string) (*llmclient.Stream, error) {
	system, history, err := s.prepareTurn(sessionID, message, selectedDish)
	if err != nil {
		return nil, err
	}

	stream, err := s.completer.CompleteStream(ctx, system, history, message, llm.Options{})
	if err != nil {
		return nil, err
	}

	// O turno do usuário entra na transcrição já na abertura do stream; a
	// resposta só entra quando o chamador a registrar completa
	s.conversations.Append(sessionID, menuSubject, domain.RoleUser, message)

	return stream, nil
}

// RecommendCombos monta a pergunta de combinações para o prato e responde
// como se o cliente a tivesse feito
func (s *Service) RecommendCombos(ctx context.Context, sessionID, dishName string) (string, error) {
	item := s.FindItem(dishName)
	if item == nil {
		return "", ErrDishNotFound
	}

	message := fmt.Sprintf(
		"I'm ordering %s. What appetizers, sides, beverages, and desserts would you recommend to go with it?",
		item.Name,
	)

	return s.Chat(ctx, sessionID, message, item.Name)
}

func (s *Service) RecordReply(sessionID, reply string) {
	s.conversations.Append(sessionID, menuSubject, domain.RoleAssistant, reply)
}

// prepareTurn valida o prato selecionado (quando houver), monta o turno de
// sistema e recupera o histórico da sessão
func (s *Service) prepareTurn(sessionID, message, selectedDish string) (string, []domain.ConversationMessage, error) {
	var selected *domain.MenuItem
	if selectedDish != "" {
		selected = s.FindItem(selectedDish)
		if selected == nil {
			return "", nil, ErrDishNotFound
		}
	}

	system := prompting.MenuAssistant(s.catalog, selected)
	history := s.conversations.History(sessionID, menuSubject)

	return system, history, nil
}
