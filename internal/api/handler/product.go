package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/nvieira96/aicrm-api/internal/usecases/managing"
	"github.com/nvieira96/aicrm-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CreateProduct cadastra um novo produto no catálogo
func CreateProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var product *domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		product, err := service.CreateProduct(product)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	}
}

// GetProduct retorna um produto por ID
func GetProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		product, err := service.GetProduct(productID)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	}
}

// ListProducts lista os produtos do catálogo, com filtro opcional de categoria
func ListProducts(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		products, err := service.ListProducts(category)
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

// ListProductCategories lista as categorias distintas do catálogo
func ListProductCategories(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories()
		if err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

// UpdateProduct atualiza os campos fornecidos de um produto
func UpdateProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProduct")

		productID, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		var req *domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = productID

		if err := service.UpdateProduct(req); err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteProduct remove um produto do catálogo
func DeleteProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProduct")

		productID, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProduct(productID); err != nil {
			logrus.Error(err)
			writeManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func productIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
		return 0, false
	}

	return id, true
}
