package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/dining"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type MenuChatRequest struct {
	SessionID    string `json:"session_id"`
	Message      string `json:"message"`
	SelectedDish string `json:"selected_dish"`
	Stream       bool   `json:"stream"`
}

type MenuCombosRequest struct {
	SessionID string `json:"session_id"`
	Dish      string `json:"dish"`
}

// GetMenu retorna o cardápio completo, agrupado por categoria
func GetMenu(service dining.MenuAssistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Menu())
	}
}

// MenuChat responde uma pergunta sobre o cardápio. Com stream=true a resposta
// é enviada como server-sent events, fragmento a fragmento.
func MenuChat(service dining.MenuAssistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MenuChat")

		var req MenuChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.SessionID == "" || req.Message == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sessão e mensagem são obrigatórias", nil)
			return
		}

		if req.Stream {
			streamMenuChat(w, r, service, req)
			return
		}

		reply, err := service.Chat(r.Context(), req.SessionID, req.Message, req.SelectedDish)
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

// MenuCombos sugere acompanhamentos para o prato escolhido
func MenuCombos(service dining.MenuAssistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MenuCombos")

		var req MenuCombosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.SessionID == "" || req.Dish == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sessão e prato são obrigatórios", nil)
			return
		}

		reply, err := service.RecommendCombos(r.Context(), req.SessionID, req.Dish)
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

// streamMenuChat consome o stream do provedor e reenvia cada fragmento como
// um evento SSE. A resposta completa é registrada na transcrição ao final.
func streamMenuChat(w http.ResponseWriter, r *http.Request, service dining.MenuAssistant, req MenuChatRequest) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
		return
	}

	stream, err := service.ChatStream(r.Context(), req.SessionID, req.Message, req.SelectedDish)
	if err != nil {
		logrus.Error(err)
		writeChatError(w, err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	var reply strings.Builder

	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.Error(err)
			// Headers já enviados: só resta encerrar o stream
			break
		}

		reply.WriteString(chunk)

		payload, _ := json.Marshal(map[string]string{"content": chunk})
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	if reply.Len() > 0 {
		service.RecordReply(req.SessionID, reply.String())
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

// writeChatError converte os erros dos assistentes de conversa em respostas
// padronizadas
func writeChatError(w http.ResponseWriter, err error) {
	var upstream *llmdomain.UpstreamError

	switch {
	case errors.Is(err, dining.ErrDishNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Prato não encontrado no cardápio", nil)

	case errors.Is(err, llmdomain.ErrMissingCredential):
		apiErrors.WriteError(w, apiErrors.ErrLLMMissingCredential, "Chave de API do provedor não configurada", nil)

	case errors.As(err, &upstream):
		apiErrors.WriteError(w, apiErrors.ErrLLMUpstream, "Provedor de IA retornou erro", map[string]any{
			"provider": upstream.Provider,
			"status":   upstream.StatusCode,
			"message":  upstream.Message,
		})

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar conversa", nil)
	}
}
