package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/managing"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListCustomers lista os clientes, com busca textual e filtro por estágio
func ListCustomers(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.CustomerFilters{
			Search: r.URL.Query().Get("search"),
		}

		if stageStr := r.URL.Query().Get("stage"); stageStr != "" {
			stage := domain.Stage(stageStr)
			filters.Stage = &stage
		}

		customers, err := service.ListCustomers(filters)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(customers)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateCustomer cria um novo cliente
func CreateCustomer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCustomer")

		var customer *domain.Customer

		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		customer, err := service.CreateCustomer(customer)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(customer)
	}
}

// GetCustomer retorna um cliente por ID
func GetCustomer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		customer, err := service.GetCustomer(customerID)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(customer)
	}
}

// UpdateCustomer atualiza os campos fornecidos de um cliente
func UpdateCustomer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCustomer")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		var req *domain.UpdateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = customerID

		if err := service.UpdateCustomer(req); err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteCustomer remove um cliente e todos os seus registros vinculados
func DeleteCustomer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCustomer")

		customerID, ok := customerIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteCustomer(r.Context(), customerID); err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetDashboard retorna os números agregados do painel do CRM
func GetDashboard(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.DashboardOverview()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o painel", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}

// customerIDFromRequest extrai e valida o ID do cliente da URL. Em caso de
// erro, a resposta já foi escrita.
func customerIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
		return 0, false
	}

	return id, true
}

// writeManagingError converte os erros dos casos de uso de cadastro em
// respostas padronizadas
func writeManagingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, managing.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, managing.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)

	case errors.Is(err, managing.ErrInvalidStage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Estágio de funil inválido", nil)

	case errors.Is(err, managing.ErrInvalidInteractionType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de interação inválido", nil)

	case errors.Is(err, managing.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor da transação não pode ser negativo", nil)

	case errors.Is(err, managing.ErrMissingRequiredData), errors.Is(err, managing.ErrCustomerIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao realizar operação", nil)
	}
}
