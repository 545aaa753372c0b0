package domain

import (
	"time"

	"github.com/nvieira96/aicrm-api/pkg/utils"
)

// Transaction é somente leitura neste serviço depois de criada. As consultas
// expandem os campos do produto e do cliente vinculados via join.
type Transaction struct {
	ID            int       `json:"id"`
	CustomerID    int       `json:"customer_id"`
	ProductID     int       `json:"product_id"`
	TotalAmount   float64   `json:"total_amount"`
	Date          time.Time `json:"transaction_date"`
	PaymentMethod *string   `json:"payment_method"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`

	Product  *Product  `json:"product,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}

// CategoryCount agrupa a contagem de compras por categoria de produto
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PurchaseHistory resume o comportamento de compra de um cliente
type PurchaseHistory struct {
	TotalTransactions  int             `json:"total_transactions"`
	TotalSpent         float64         `json:"total_spent"`
	AverageTransaction float64         `json:"average_transaction"`
	FavoriteCategories []CategoryCount `json:"favorite_categories"`
	RecentPurchases    []*Transaction  `json:"recent_purchases"`
}

// NewPurchaseHistory calcula o resumo de compras a partir das transações do
// cliente, já ordenadas da mais recente para a mais antiga.
func NewPurchaseHistory(transactions []*Transaction) *PurchaseHistory {
	history := &PurchaseHistory{
		FavoriteCategories: []CategoryCount{},
		RecentPurchases:    []*Transaction{},
	}

	if len(transactions) == 0 {
		return history
	}

	total := 0.0
	categoryCounts := make(map[string]int)

	for _, transaction := range transactions {
		total += transaction.TotalAmount

		category := "Unknown"
		if transaction.Product != nil && transaction.Product.Category != "" {
			category = transaction.Product.Category
		}
		categoryCounts[category]++
	}

	history.TotalTransactions = len(transactions)
	history.TotalSpent = utils.RoundWithTwoDecimalPlace(total)
	history.AverageTransaction = utils.RoundWithTwoDecimalPlace(total / float64(len(transactions)))

	for category, count := range categoryCounts {
		history.FavoriteCategories = append(history.FavoriteCategories, CategoryCount{
			Category: category,
			Count:    count,
		})
	}

	// Ordena por contagem decrescente para que a categoria favorita venha primeiro
	for i := 0; i < len(history.FavoriteCategories); i++ {
		for j := i + 1; j < len(history.FavoriteCategories); j++ {
			if history.FavoriteCategories[j].Count > history.FavoriteCategories[i].Count {
				history.FavoriteCategories[i], history.FavoriteCategories[j] = history.FavoriteCategories[j], history.FavoriteCategories[i]
			}
		}
	}

	limit := 5
	if len(transactions) < limit {
		limit = len(transactions)
	}
	history.RecentPurchases = transactions[:limit]

	return history
}
