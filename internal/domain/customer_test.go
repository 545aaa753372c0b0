package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		want     string
	}{
		{
			name:     "Nome e sobrenome",
			customer: Customer{FirstName: "Sarah", LastName: "Johnson"},
			want:     "Sarah Johnson",
		},
		{
			name:     "Apenas primeiro nome",
			customer: Customer{FirstName: "Sarah"},
			want:     "Sarah",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.customer.FullName())
		})
	}
}
