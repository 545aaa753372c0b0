package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nvieira96/aicrm-api/internal/usecases/chatting"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// StartChatSession cria uma nova sessão de conversa e retorna seu ID
func StartChatSession(service chatting.Conversationalist) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StartChatSession")

		sessionID, err := service.StartSession()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar sessão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"session_id": sessionID,
		})
	}
}

// ClearChatSession descarta a transcrição da sessão, mantendo-a utilizável
func ClearChatSession(service chatting.Conversationalist) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ClearChatSession")

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão não fornecido", nil)
			return
		}

		service.Clear(sessionID)

		w.WriteHeader(http.StatusNoContent)
	}
}
