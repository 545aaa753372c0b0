package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/nvieira96/aicrm-api/infrastructure/database/postgres"
	"github.com/nvieira96/aicrm-api/internal/domain"
)

const interactionsTable = "interactions i"

type InteractionRepository interface {
	CreateInteraction(interaction *domain.Interaction) (*domain.Interaction, error)
	ListByCustomer(customerID int) ([]*domain.Interaction, error)
	ListRecent(limit int) ([]*domain.RecentInteraction, error)
}

type interactionRepository struct {
	conn *postgres.Connection
}

func NewInteractionRepository(conn *postgres.Connection) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

func (r *interactionRepository) CreateInteraction(interaction *domain.Interaction) (*domain.Interaction, error) {
	queryBuilder := squirrel.
		Insert("interactions").
		Columns("customer_id", "type", "subject", "content", "date", "sentiment").
		Values(
			interaction.CustomerID,
			interaction.Type,
			interaction.Subject,
			interaction.Content,
			interaction.Date,
			interaction.Sentiment,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	interactionsSQL, interactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(interactionsSQL, interactionsArgs...).Scan(
		&interaction.ID,
		&interaction.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar interação: %w", err)
	}

	return interaction, nil
}

// ListByCustomer retorna a timeline do cliente, da interação mais recente
// para a mais antiga
func (r *interactionRepository) ListByCustomer(customerID int) ([]*domain.Interaction, error) {
	interactionsSQL, interactionsArgs, err := squirrel.
		Select("i.id, i.customer_id, i.type, i.subject, i.content, i.date, i.sentiment, i.created_at").
		From(interactionsTable).
		Where(squirrel.Eq{"i.customer_id": customerID}).
		OrderBy("i.date DESC", "i.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(interactionsSQL, interactionsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	interactions := make([]*domain.Interaction, 0)

	for rows.Next() {
		interaction := &domain.Interaction{}
		if err := rows.Scan(
			&interaction.ID,
			&interaction.CustomerID,
			&interaction.Type,
			&interaction.Subject,
			&interaction.Content,
			&interaction.Date,
			&interaction.Sentiment,
			&interaction.CreatedAt,
		); err != nil {
			return nil, err
		}

		interactions = append(interactions, interaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interactions, nil
}

// ListRecent retorna o feed global de atividade, com os campos do cliente
// expandidos via join
func (r *interactionRepository) ListRecent(limit int) ([]*domain.RecentInteraction, error) {
	queryBuilder := squirrel.
		Select("i.id, i.customer_id, i.type, i.subject, i.content, i.date, i.sentiment, i.created_at, c.first_name, c.last_name, c.company").
		From(interactionsTable).
		Join("customers c ON i.customer_id = c.id").
		OrderBy("i.date DESC", "i.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	interactionsSQL, interactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(interactionsSQL, interactionsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := make([]*domain.RecentInteraction, 0)

	for rows.Next() {
		interaction := &domain.RecentInteraction{}
		if err := rows.Scan(
			&interaction.ID,
			&interaction.CustomerID,
			&interaction.Type,
			&interaction.Subject,
			&interaction.Content,
			&interaction.Date,
			&interaction.Sentiment,
			&interaction.CreatedAt,
			&interaction.CustomerFirstName,
			&interaction.CustomerLastName,
			&interaction.CustomerCompany,
		); err != nil {
			return nil, err
		}

		interactions = append(interactions, interaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interactions, nil
}
