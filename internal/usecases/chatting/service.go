package chatting

import (
	"sync"

	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/pkg/utils"
)

// Conversationalist guarda as transcrições das conversas em memória, por
// sessão. A transcrição vive apenas enquanto o processo estiver de pé: não há
// persistência nem réplica, e um restart zera todas as conversas.
type Conversationalist interface {
	// StartSession cria uma nova sessão de conversa e retorna seu ID
	StartSession() (string, error)

	// History retorna uma cópia da transcrição da sessão para o assunto dado
	History(sessionID, subject string) []domain.ConversationMessage

	// Append registra um turno na transcrição da sessão
	Append(sessionID, subject string, role domain.Role, content string)

	// Clear descarta a transcrição da sessão, mantendo a sessão viva
	Clear(sessionID string)
}

// session é a transcrição de uma sessão. O campo subject identifica sobre o
// que a conversa é (um cliente do CRM, um prato selecionado); quando o
// assunto muda, a transcrição anterior é descartada, porque o contexto que a
// produziu não vale mais.
type session struct {
	subject  string
	messages []domain.ConversationMessage
}

type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewService() *Service {
	return &Service{
		sessions: make(map[string]*session),
	}
}

func (s *Service) StartSession() (string, error) {
	sessionID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &session{}

	return sessionID, nil
}

func (s *Service) History(sessionID, subject string) []domain.ConversationMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.resolve(sessionID, subject)

	history := make([]domain.ConversationMessage, len(sess.messages))
	copy(history, sess.messages)

	return history
}

func (s *Service) Append(sessionID, subject string, role domain.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.resolve(sessionID, subject)
	sess.messages = append(sess.messages, domain.ConversationMessage{
		Role:    role,
		Content: content,
	})
}

func (s *Service) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		sess.messages = nil
		sess.subject = ""
	}
}

// resolve devolve a sessão, criando-a se necessário e zerando a transcrição
// quando o assunto mudou. Chamar com o lock já adquirido.
func (s *Service) resolve(sessionID, subject string) *session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	if sess.subject != subject {
		sess.subject = subject
		sess.messages = nil
	}

	return sess
}
