package domain

import "github.com/shopspring/decimal"

// DiscountQuote é a faixa de preço sugerida para negociação, derivada do
// valor da compra para clientes com o benefício de desconto em produtos.
// Nunca é persistida.
//
// A nomenclatura segue a magnitude do desconto, não do preço:
// LeastDiscounted (3% off) é numericamente maior que MostDiscounted
// (8% off).
type DiscountQuote struct {
	LeastDiscounted decimal.Decimal `json:"least_discounted"`
	MostDiscounted  decimal.Decimal `json:"most_discounted"`
	Suggested       decimal.Decimal `json:"suggested"`

	// Valores formatados em BRL para exibição direta.
	LeastDiscountedDisplay string `json:"least_discounted_display"`
	MostDiscountedDisplay  string `json:"most_discounted_display"`
	SuggestedDisplay       string `json:"suggested_display"`
}
