package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/managing"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/nvieira96/aicrm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// LogInteractionRequest aceita a data como string no formato YYYY-MM-DD,
// igual ao seletor de datas do frontend. Vazia, assume a data atual.
type LogInteractionRequest struct {
	Type      string `json:"type"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Sentiment string `json:"sentiment"`
}

// LogInteraction registra uma interação com o cliente. Quando o sentimento
// não é informado, ele é classificado automaticamente pela IA.
func LogInteraction(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LogInteraction")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		var req LogInteractionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		interaction := &domain.Interaction{
			CustomerID: customerID,
			Type:       domain.InteractionType(req.Type),
			Subject:    req.Subject,
			Content:    req.Content,
			Date:       *date,
			Sentiment:  domain.Sentiment(req.Sentiment),
		}

		interaction, err = service.LogInteraction(r.Context(), interaction)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(interaction)
	}
}

// ListInteractions lista as interações de um cliente, da mais recente para a
// mais antiga
func ListInteractions(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		interactions, err := service.ListInteractions(customerID)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(interactions)
	}
}
