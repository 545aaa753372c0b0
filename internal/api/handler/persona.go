package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nvieira96/aicrm-api/internal/usecases/persona"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type PersonaChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// PersonaChat conversa com o tutor de personagem sobre o framework UCF
func PersonaChat(service persona.Guide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PersonaChat")

		var req PersonaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.SessionID == "" || req.Message == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sessão e mensagem são obrigatórias", nil)
			return
		}

		reply, err := service.Chat(r.Context(), req.SessionID, req.Message)
		if err != nil {
			logrus.Error(err)
			writeChatError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"reply": reply,
		})
	}
}
