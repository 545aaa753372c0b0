package domain

import (
	"time"
)

// Stage representa a posição do cliente no funil de vendas
type Stage string

const (
	StageLead     Stage = "lead"
	StageProspect Stage = "prospect"
	StageCustomer Stage = "customer"
)

// Stages lista os estágios válidos do funil, na ordem do pipeline
var Stages = []Stage{StageLead, StageProspect, StageCustomer}

// IsValid verifica se o estágio pertence ao enum fixo
func (s Stage) IsValid() bool {
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

type Customer struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Company     *string    `json:"company"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Stage       Stage      `json:"stage"`
	Notes       *string    `json:"notes"`
	AISummary   *string    `json:"ai_summary"`
	LastContact *time.Time `json:"last_contact"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FullName retorna o nome completo do cliente para exibição e prompts
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type UpdateCustomerRequest struct {
	ID        int     `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Stage     *Stage  `json:"stage"`
	Notes     *string `json:"notes"`
}

// CustomerFilters representa os filtros aceitos na listagem de clientes.
// Search faz busca por substring (case-insensitive) em nome, email e empresa.
type CustomerFilters struct {
	Search string
	Stage  *Stage
}
