package managing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cadastros do CRM
var (
	// Erros de validação
	ErrCustomerIDRequired     = errors.New("customer ID is required")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrInvalidStage           = errors.New("invalid pipeline stage")
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
	ErrMissingRequiredData    = errors.New("missing required data")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ManagingError é um erro com contexto adicional para cadastros
type ManagingError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CustomerID int    // ID do cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ManagingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ManagingError) Unwrap() error {
	return e.Err
}

// NewManagingError cria um novo ManagingError
func NewManagingError(err error, code string, details string) *ManagingError {
	return &ManagingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
