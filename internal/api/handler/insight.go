package handler

import (
	"encoding/json"
	"net/http"

	llmdomain "github.com/nvieira96/aicrm-api/infrastructure/integrator/llm/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/insighting"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type DraftEmailRequest struct {
	Context string `json:"context"`
	Type    string `json:"type"`
}

type SalesAdviceRequest struct {
	Question string `json:"question"`
}

type ClassifySentimentRequest struct {
	Text string `json:"text"`
}

// GenerateCustomerSummary retorna o resumo de IA do cliente. O parâmetro
// force=true ignora o resumo em cache e gera um novo.
func GenerateCustomerSummary(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateCustomerSummary")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		force := r.URL.Query().Get("force") == "true"

		summary, err := service.GenerateCustomerSummary(r.Context(), customerID, force)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"summary": summary,
		})
	}
}

// DraftEmail gera um rascunho de email personalizado para o cliente
func DraftEmail(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DraftEmail")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		var req DraftEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		email, err := service.DraftEmail(r.Context(), customerID, req.Context, req.Type)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"email": email,
		})
	}
}

// SalesAdvice responde uma pergunta livre do vendedor sobre o cliente
func SalesAdvice(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SalesAdvice")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		var req SalesAdviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pergunta não fornecida", nil)
			return
		}

		advice, err := service.SalesAdvice(r.Context(), customerID, req.Question)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"advice": advice,
		})
	}
}

// WebIntelligence gera a análise de presença web e social do cliente
func WebIntelligence(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - WebIntelligence")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		analysis, err := service.WebIntelligence(r.Context(), customerID)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"analysis": analysis,
		})
	}
}

// BehavioralAnalysis gera a análise comportamental do cliente
func BehavioralAnalysis(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BehavioralAnalysis")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		analysis, err := service.BehavioralAnalysis(r.Context(), customerID)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"analysis": analysis,
		})
	}
}

// GetCustomerInterests deriva os interesses do cliente a partir das interações
func GetCustomerInterests(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		interests, err := service.CustomerInterests(customerID)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(interests)
	}
}

// GetPurchaseHistory resume o comportamento de compra do cliente
func GetPurchaseHistory(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		history, err := service.PurchaseHistory(customerID)
		if err != nil {
			logrus.Error(err)
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

// ClassifySentiment classifica o humor de um texto livre. Falhas do provedor
// resultam em neutral, nunca em erro.
func ClassifySentiment(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClassifySentimentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Texto não fornecido", nil)
			return
		}

		sentiment := service.ClassifySentiment(r.Context(), req.Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"sentiment": string(sentiment),
		})
	}
}

// writeInsightError converte os erros dos casos de uso de IA em respostas
// padronizadas, preservando os detalhes do provedor quando houver
func writeInsightError(w http.ResponseWriter, err error) {
	var upstream *llmdomain.UpstreamError

	switch {
	case errors.Is(err, insighting.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, llmdomain.ErrMissingCredential):
		apiErrors.WriteError(w, apiErrors.ErrLLMMissingCredential, "Chave de API do provedor não configurada", nil)

	case errors.As(err, &upstream):
		apiErrors.WriteError(w, apiErrors.ErrLLMUpstream, "Provedor de IA retornou erro", map[string]any{
			"provider": upstream.Provider,
			"status":   upstream.StatusCode,
			"message":  upstream.Message,
		})

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar insight", nil)
	}
}
