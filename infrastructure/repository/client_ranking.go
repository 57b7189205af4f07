package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ecoclean/fidelidade-api/infrastructure/database/postgres"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

const clientRankingTable = "client_ranking cr"

type ClientRankingRepository interface {
	GetByClientCNPJ(clientCNPJ string, month string) (*domain.ClientRankingItem, error)
	GetClientRanking(month string) (*domain.ClientRankingResponse, error)
	SaveOrUpdateClientRanking(rankings []*domain.ClientRankingItem) error
}

type clientRankingRepository struct {
	conn *postgres.Connection
}

func NewClientRankingRepository(conn *postgres.Connection) ClientRankingRepository {
	return &clientRankingRepository{
		conn: conn,
	}
}

func (r *clientRankingRepository) GetClientRanking(month string) (*domain.ClientRankingResponse, error) {
	queryBuilder := squirrel.
		Select(
			"cr.id",
			"cr.client_cnpj",
			"cr.month",
			"cr.client_name",
			"cr.total_spent",
			"cr.purchase_count",
			"cr.position",
			"cr.position_change",
			"cr.previous_position",
			"cr.created_at",
			"cr.updated_at",
		).
		From(clientRankingTable).
		Where(squirrel.Eq{"cr.month": month}).
		OrderBy("cr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.ClientRankingResponse{
				Ranking:    []domain.ClientRankingItem{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.ClientRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := r.scanClientRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.ClientRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *clientRankingRepository) GetByClientCNPJ(clientCNPJ string, month string) (*domain.ClientRankingItem, error) {
	query, args, err := squirrel.
		Select("cr.id, cr.client_cnpj, cr.month, cr.client_name, cr.total_spent, cr.purchase_count, cr.position, cr.position_change, cr.previous_position, cr.created_at, cr.updated_at").
		From(clientRankingTable).
		Where(squirrel.Eq{"cr.client_cnpj": clientCNPJ, "cr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	item := &domain.ClientRankingItem{}
	err = row.Scan(
		&item.ID,
		&item.ClientCNPJ,
		&item.Month,
		&item.ClientName,
		&item.TotalSpent,
		&item.PurchaseCount,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return item, nil
}

func (r *clientRankingRepository) SaveOrUpdateClientRanking(rankings []*domain.ClientRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("client_ranking").
		Columns(
			"client_cnpj",
			"month",
			"client_name",
			"total_spent",
			"purchase_count",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.ClientCNPJ,
			ranking.Month,
			ranking.ClientName,
			ranking.TotalSpent,
			ranking.PurchaseCount,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// Upsert por cliente e mês
	query = query.Suffix(`
		ON CONFLICT (client_cnpj, month) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			total_spent = EXCLUDED.total_spent,
			purchase_count = EXCLUDED.purchase_count,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *clientRankingRepository) scanClientRankingItem(rows *sql.Rows) (*domain.ClientRankingItem, error) {
	item := &domain.ClientRankingItem{}

	err := rows.Scan(
		&item.ID,
		&item.ClientCNPJ,
		&item.Month,
		&item.ClientName,
		&item.TotalSpent,
		&item.PurchaseCount,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
