package domain

import (
	"errors"
	"fmt"
)

// ErrMissingCredential indica que a chave de API do provedor não foi
// configurada. Detectado no primeiro uso, nunca derruba o processo.
var ErrMissingCredential = errors.New("chave de API do provedor não configurada")

// UpstreamError é um erro etiquetado do endpoint de completions: preserva a
// mensagem bruta do provedor para exibição, mas permite que o chamador
// ramifique por tipo em vez de comparar strings.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s retornou status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// IsUpstream verifica se o erro (ou sua cadeia) é um UpstreamError
func IsUpstream(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}
