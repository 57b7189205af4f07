package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClientRankingResponse struct {
	Ranking    []ClientRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}

// ClientSpendSummary é o agregado de compras de um cliente em um período,
// calculado direto do livro de compras.
type ClientSpendSummary struct {
	ClientCNPJ    string
	ClientName    string
	TotalSpent    decimal.Decimal
	PurchaseCount int
}

type ClientRankingItem struct {
	ID               int             `json:"id"`
	ClientCNPJ       string          `json:"client_cnpj"`
	Month            string          `json:"month"` // Formato mm-yyyy (ex: 01-2026)
	ClientName       string          `json:"client_name"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	PurchaseCount    int             `json:"purchase_count"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
