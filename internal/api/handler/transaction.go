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

// RecordTransactionRequest aceita a data como string no formato YYYY-MM-DD.
// Vazia, assume a data atual. Valor total zerado assume o preço do produto.
type RecordTransactionRequest struct {
	ProductID     int     `json:"product_id"`
	TotalAmount   float64 `json:"total_amount"`
	Date          string  `json:"date"`
	PaymentMethod *string `json:"payment_method"`
	Notes         *string `json:"notes"`
}

// RecordTransaction registra uma venda para o cliente. O valor total assume o
// preço do produto quando não informado.
func RecordTransaction(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordTransaction")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		var req RecordTransactionRequest
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

		transaction := &domain.Transaction{
			CustomerID:    customerID,
			ProductID:     req.ProductID,
			TotalAmount:   req.TotalAmount,
			Date:          *date,
			PaymentMethod: req.PaymentMethod,
			Notes:         req.Notes,
		}

		transaction, err = service.RecordTransaction(transaction)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(transaction)
	}
}

// ListTransactions lista as vendas de um cliente, da mais recente para a mais
// antiga
func ListTransactions(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		transactions, err := service.ListTransactions(customerID)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}
