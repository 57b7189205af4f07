package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase é um registro imutável do livro de compras. Nome e CNPJ são
// cópias desnormalizadas do cliente no momento da compra: edições
// posteriores no cadastro não alteram o histórico.
type Purchase struct {
	ID          string          `json:"id"`
	ClientName  string          `json:"client_name"`
	ClientCNPJ  string          `json:"client_cnpj"`
	Amount      decimal.Decimal `json:"amount"`
	PurchasedAt time.Time       `json:"purchased_at"`
}

type CreatePurchaseRequest struct {
	ClientName string `json:"client_name"`
	ClientCNPJ string `json:"client_cnpj"`
	Amount     string `json:"amount"`
}

type CreatePurchaseResponse struct {
	Message  string    `json:"message"`
	Purchase *Purchase `json:"purchase"`
}

// PreviewPurchaseRequest carrega o buffer bruto digitado no campo de
// valor. O preview recalcula exibição e valor canônico do zero a cada
// chamada, então qualquer edição no buffer (backspace, colar) produz
// um resultado consistente.
type PreviewPurchaseRequest struct {
	ClientID string `json:"client_id"`
	RawValue string `json:"raw_value"`
}

type PreviewPurchaseResponse struct {
	Display   string         `json:"display"`
	Canonical string         `json:"canonical"`
	Discount  *DiscountQuote `json:"discount,omitempty"`
}

type PurchaseFilter struct {
	ClientName string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      uint64
}
