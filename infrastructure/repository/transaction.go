package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/nvieira96/aicrm-api/infrastructure/database/postgres"
	"github.com/nvieira96/aicrm-api/internal/domain"
)

const transactionsTable = "transactions t"

type TransactionRepository interface {
	CreateTransaction(transaction *domain.Transaction) (*domain.Transaction, error)
	ListByCustomer(customerID int) ([]*domain.Transaction, error)
	ListRecent(limit int) ([]*domain.Transaction, error)
	TotalRevenue() (float64, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) CreateTransaction(transaction *domain.Transaction) (*domain.Transaction, error) {
	queryBuilder := squirrel.
		Insert("transactions").
		Columns("customer_id", "product_id", "total_amount", "transaction_date", "payment_method", "notes").
		Values(
			transaction.CustomerID,
			transaction.ProductID,
			transaction.TotalAmount,
			transaction.Date,
			transaction.PaymentMethod,
			transaction.Notes,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	transactionsSQL, transactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(transactionsSQL, transactionsArgs...).Scan(
		&transaction.ID,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar transação: %w", err)
	}

	return transaction, nil
}

// ListByCustomer retorna as compras do cliente com o produto expandido, da
// mais recente para a mais antiga. O left join preserva transações cujo
// produto foi removido do catálogo.
func (r *transactionRepository) ListByCustomer(customerID int) ([]*domain.Transaction, error) {
	queryBuilder := r.selectWithProduct().
		Where(squirrel.Eq{"t.customer_id": customerID})

	transactionsSQL, transactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(transactionsSQL, transactionsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		transaction, err := r.deserializeWithProduct(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// ListRecent retorna as últimas vendas de todos os clientes, com produto e
// cliente expandidos, para o painel
func (r *transactionRepository) ListRecent(limit int) ([]*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select("t.id, t.customer_id, t.product_id, t.total_amount, t.transaction_date, t.payment_method, t.notes, t.created_at",
			"p.id, p.name, p.category, p.price, p.description, p.brand",
			"c.id, c.first_name, c.last_name, c.company").
		From(transactionsTable).
		LeftJoin("products p ON t.product_id = p.id").
		Join("customers c ON t.customer_id = c.id").
		OrderBy("t.transaction_date DESC", "t.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	transactionsSQL, transactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(transactionsSQL, transactionsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		transaction := &domain.Transaction{}
		var productID *int
		var productName, productCategory *string
		var productPrice *float64
		var productDescription, productBrand *string
		customer := &domain.Customer{}

		if err := rows.Scan(
			&transaction.ID,
			&transaction.CustomerID,
			&transaction.ProductID,
			&transaction.TotalAmount,
			&transaction.Date,
			&transaction.PaymentMethod,
			&transaction.Notes,
			&transaction.CreatedAt,
			&productID,
			&productName,
			&productCategory,
			&productPrice,
			&productDescription,
			&productBrand,
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Company,
		); err != nil {
			return nil, err
		}

		if productID != nil {
			product := &domain.Product{ID: *productID}
			if productName != nil {
				product.Name = *productName
			}
			if productCategory != nil {
				product.Category = *productCategory
			}
			if productPrice != nil {
				product.Price = *productPrice
			}
			product.Description = productDescription
			product.Brand = productBrand
			transaction.Product = product
		}

		transaction.Customer = customer
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// TotalRevenue soma o valor de todas as transações registradas
func (r *transactionRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.conn.QueryRow("SELECT COALESCE(SUM(total_amount), 0) FROM transactions").Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *transactionRepository) selectWithProduct() squirrel.SelectBuilder {
	return squirrel.
		Select("t.id, t.customer_id, t.product_id, t.total_amount, t.transaction_date, t.payment_method, t.notes, t.created_at",
			"p.id, p.name, p.category, p.price, p.description, p.brand").
		From(transactionsTable).
		LeftJoin("products p ON t.product_id = p.id").
		OrderBy("t.transaction_date DESC", "t.id DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *transactionRepository) deserializeWithProduct(rows rowScanner) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}
	var productID *int
	var productName, productCategory *string
	var productPrice *float64
	var productDescription, productBrand *string

	if err := rows.Scan(
		&transaction.ID,
		&transaction.CustomerID,
		&transaction.ProductID,
		&transaction.TotalAmount,
		&transaction.Date,
		&transaction.PaymentMethod,
		&transaction.Notes,
		&transaction.CreatedAt,
		&productID,
		&productName,
		&productCategory,
		&productPrice,
		&productDescription,
		&productBrand,
	); err != nil {
		return nil, err
	}

	if productID != nil {
		product := &domain.Product{ID: *productID}
		if productName != nil {
			product.Name = *productName
		}
		if productCategory != nil {
			product.Category = *productCategory
		}
		if productPrice != nil {
			product.Price = *productPrice
		}
		product.Description = productDescription
		product.Brand = productBrand
		transaction.Product = product
	}

	return transaction, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
