package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/nvieira96/aicrm-api/infrastructure/database/postgres"
	"github.com/nvieira96/aicrm-api/internal/domain"
)

const customersTable = "customers"

type CustomerRepository interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(customerID int) (*domain.Customer, error)
	ListCustomers(filters domain.CustomerFilters) ([]*domain.Customer, error)
	UpdateCustomer(customer *domain.UpdateCustomerRequest) error
	UpdateAISummary(customerID int, summary string) error
	UpdateLastContact(customerID int, lastContact time.Time) error
	DeleteCustomer(ctx context.Context, customerID int) error
	CountByStage() (map[domain.Stage]int, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	queryBuilder := squirrel.
		Insert(customersTable).
		Columns("first_name", "last_name", "company", "email", "phone", "stage", "notes").
		Values(
			customer.FirstName,
			customer.LastName,
			customer.Company,
			customer.Email,
			customer.Phone,
			customer.Stage,
			customer.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(customersSQL, customersArgs...).Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) GetCustomerByID(customerID int) (*domain.Customer, error) {
	customersSQL, customersArgs, err := squirrel.
		Select("id, first_name, last_name, company, email, phone, stage, notes, ai_summary, last_contact, created_at, updated_at").
		From(customersTable).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(customersSQL, customersArgs...)

	customer, err := r.deserializeCustomer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) deserializeCustomer(row *sql.Row) (*domain.Customer, error) {
	customer := &domain.Customer{}

	if err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Company,
		&customer.Email,
		&customer.Phone,
		&customer.Stage,
		&customer.Notes,
		&customer.AISummary,
		&customer.LastContact,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) ListCustomers(filters domain.CustomerFilters) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select("id, first_name, last_name, company, email, phone, stage, notes, ai_summary, last_contact, created_at, updated_at").
		From(customersTable).
		OrderBy("first_name ASC", "last_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	// Busca por substring (case-insensitive) em nome, email e empresa
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"company": pattern},
		})
	}

	if filters.Stage != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"stage": *filters.Stage})
	}

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(customersSQL, customersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)

	for rows.Next() {
		customer := &domain.Customer{}
		if err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Company,
			&customer.Email,
			&customer.Phone,
			&customer.Stage,
			&customer.Notes,
			&customer.AISummary,
			&customer.LastContact,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *customerRepository) UpdateCustomer(customer *domain.UpdateCustomerRequest) error {
	if customer.ID == 0 {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(customersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
		PlaceholderFormat(squirrel.Dollar)

	// Atualiza apenas os campos fornecidos na requisição
	if customer.FirstName != nil {
		queryBuilder = queryBuilder.Set("first_name", *customer.FirstName)
	}

	if customer.LastName != nil {
		queryBuilder = queryBuilder.Set("last_name", *customer.LastName)
	}

	if customer.Company != nil {
		queryBuilder = queryBuilder.Set("company", *customer.Company)
	}

	if customer.Email != nil {
		queryBuilder = queryBuilder.Set("email", *customer.Email)
	}

	if customer.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", *customer.Phone)
	}

	if customer.Stage != nil {
		queryBuilder = queryBuilder.Set("stage", *customer.Stage)
	}

	if customer.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", *customer.Notes)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("customer not found")
	}

	return nil
}

// UpdateAISummary persiste o resumo gerado pela IA junto ao cliente, para
// reaproveitamento entre sessões sem nova chamada ao modelo
func (r *customerRepository) UpdateAISummary(customerID int, summary string) error {
	sqlQuery, args, err := squirrel.
		Update(customersTable).
		Set("ai_summary", summary).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	return err
}

// UpdateLastContact avança a data de último contato do cliente quando uma
// nova interação é registrada
func (r *customerRepository) UpdateLastContact(customerID int, lastContact time.Time) error {
	sqlQuery, args, err := squirrel.
		Update(customersTable).
		Set("last_contact", lastContact).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	return err
}

// DeleteCustomer remove o cliente e todos os registros dependentes na mesma
// transação. Interações e transações não têm exclusão individual, então a
// cascata acontece somente aqui.
func (r *customerRepository) DeleteCustomer(ctx context.Context, customerID int) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM interactions WHERE customer_id = $1", customerID); err != nil {
			return fmt.Errorf("erro ao excluir interações do cliente: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE customer_id = $1", customerID); err != nil {
			return fmt.Errorf("erro ao excluir transações do cliente: %w", err)
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", customerID)
		if err != nil {
			return fmt.Errorf("erro ao excluir cliente: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if rowsAffected == 0 {
			return errors.New("customer not found")
		}

		return nil
	})
}

// CountByStage agrupa a contagem de clientes por estágio do funil. Estágios
// sem clientes entram com contagem zero.
func (r *customerRepository) CountByStage() (map[domain.Stage]int, error) {
	countsSQL, countsArgs, err := squirrel.
		Select("stage, COUNT(*)").
		From(customersTable).
		GroupBy("stage").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(countsSQL, countsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Stage]int, len(domain.Stages))
	for _, stage := range domain.Stages {
		counts[stage] = 0
	}

	for rows.Next() {
		var stage domain.Stage
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		counts[stage] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
