package domain

import (
	"time"
)

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description *string   `json:"description"`
	Brand       *string   `json:"brand"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateProductRequest struct {
	ID          int      `json:"id"`
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Brand       *string  `json:"brand"`
}
