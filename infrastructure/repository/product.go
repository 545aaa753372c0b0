package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/nvieira96/aicrm-api/infrastructure/database/postgres"
	"github.com/nvieira96/aicrm-api/internal/domain"
)

const productsTable = "products"

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(productID int) (*domain.Product, error)
	ListProducts(category string) ([]*domain.Product, error)
	ListCategories() ([]string, error)
	UpdateProduct(product *domain.UpdateProductRequest) error
	DeleteProduct(productID int) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("name", "category", "price", "description", "brand").
		Values(product.Name, product.Category, product.Price, product.Description, product.Brand).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(productsSQL, productsArgs...).Scan(
		&product.ID,
		&product.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return product, nil
}

func (r *productRepository) GetProductByID(productID int) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow(
		"SELECT id, name, category, price, description, brand, created_at FROM products WHERE id = $1",
		productID,
	).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Description,
		&product.Brand,
		&product.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListProducts(category string) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("id", "name", "category", "price", "description", "brand", "created_at").
		From(productsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": category})
	}

	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(productsSQL, productsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)

	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Description,
			&product.Brand,
			&product.CreatedAt,
		); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// ListCategories retorna as categorias distintas do catálogo, para os filtros
// da listagem
func (r *productRepository) ListCategories() ([]string, error) {
	rows, err := r.conn.Query("SELECT DISTINCT category FROM products ORDER BY category ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *productRepository) UpdateProduct(product *domain.UpdateProductRequest) error {
	if product.ID == 0 {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(productsTable).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if product.Name != nil {
		queryBuilder = queryBuilder.Set("name", *product.Name)
	}

	if product.Category != nil {
		queryBuilder = queryBuilder.Set("category", *product.Category)
	}

	if product.Price != nil {
		queryBuilder = queryBuilder.Set("price", *product.Price)
	}

	if product.Description != nil {
		queryBuilder = queryBuilder.Set("description", *product.Description)
	}

	if product.Brand != nil {
		queryBuilder = queryBuilder.Set("brand", *product.Brand)
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
		return errors.New("product not found")
	}

	return nil
}

func (r *productRepository) DeleteProduct(productID int) error {
	result, err := r.conn.Exec("DELETE FROM products WHERE id = $1", productID)
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
		return errors.New("product not found")
	}

	return nil
}
