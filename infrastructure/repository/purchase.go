package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ecoclean/fidelidade-api/infrastructure/database/postgres"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

const purchasesTable = "purchases p"

// PurchaseRepository é o livro de compras: registros são criados uma única
// vez e nunca atualizados ou removidos.
type PurchaseRepository interface {
	Create(purchase *domain.Purchase) (*domain.Purchase, error)
	List(filter domain.PurchaseFilter) ([]*domain.Purchase, error)
	SummarizeByClient(start, end time.Time) ([]*domain.ClientSpendSummary, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

func (r *purchaseRepository) Create(purchase *domain.Purchase) (*domain.Purchase, error) {
	// purchased_at é atribuído pelo banco, não pelo chamador
	query, args, err := squirrel.
		Insert("purchases").
		Columns("id", "client_name", "client_cnpj", "amount").
		Values(purchase.ID, purchase.ClientName, purchase.ClientCNPJ, purchase.Amount).
		Suffix("RETURNING purchased_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&purchase.PurchasedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar compra: %w", err)
	}

	return purchase, nil
}

func (r *purchaseRepository) List(filter domain.PurchaseFilter) ([]*domain.Purchase, error) {
	queryBuilder := squirrel.
		Select("p.id", "p.client_name", "p.client_cnpj", "p.amount", "p.purchased_at").
		From(purchasesTable).
		OrderBy("p.purchased_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ClientName != "" {
		queryBuilder = queryBuilder.Where(squirrel.Expr("LOWER(p.client_name) = LOWER(?)", filter.ClientName))
	}

	if filter.StartDate != nil && !filter.StartDate.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"p.purchased_at": *filter.StartDate})
	}

	if filter.EndDate != nil && !filter.EndDate.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"p.purchased_at": *filter.EndDate})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	purchases := make([]*domain.Purchase, 0)

	for rows.Next() {
		purchase := &domain.Purchase{}

		if err := rows.Scan(
			&purchase.ID,
			&purchase.ClientName,
			&purchase.ClientCNPJ,
			&purchase.Amount,
			&purchase.PurchasedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear compra: %w", err)
		}

		purchases = append(purchases, purchase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return purchases, nil
}

// SummarizeByClient agrega o total gasto e a quantidade de compras por
// cliente no período, agrupando pela cópia desnormalizada de CNPJ.
func (r *purchaseRepository) SummarizeByClient(start, end time.Time) ([]*domain.ClientSpendSummary, error) {
	query, args, err := squirrel.
		Select(
			"p.client_cnpj",
			"MAX(p.client_name) AS client_name",
			"SUM(p.amount) AS total_spent",
			"COUNT(*) AS purchase_count",
		).
		From(purchasesTable).
		Where(squirrel.GtOrEq{"p.purchased_at": start}).
		Where(squirrel.Lt{"p.purchased_at": end}).
		GroupBy("p.client_cnpj").
		OrderBy("total_spent DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.ClientSpendSummary, 0)

	for rows.Next() {
		summary := &domain.ClientSpendSummary{}

		if err := rows.Scan(
			&summary.ClientCNPJ,
			&summary.ClientName,
			&summary.TotalSpent,
			&summary.PurchaseCount,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de compras: %w", err)
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
