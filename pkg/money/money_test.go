package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseRawDigits(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantDisplay   string
		wantCanonical string
	}{
		{
			name:          "Valor típico digitado em centavos",
			raw:           "150000",
			wantDisplay:   "R$ 1.500,00",
			wantCanonical: "1500.00",
		},
		{
			name:          "Valor pequeno vira centavos",
			raw:           "7",
			wantDisplay:   "R$ 0,07",
			wantCanonical: "0.07",
		},
		{
			name:          "Caracteres não numéricos são descartados",
			raw:           "R$ 1.500,00",
			wantDisplay:   "R$ 1.500,00",
			wantCanonical: "1500.00",
		},
		{
			name:          "Zeros à esquerda não mudam o valor",
			raw:           "000123",
			wantDisplay:   "R$ 1,23",
			wantCanonical: "1.23",
		},
		{
			name:          "Entrada vazia retorna vazio, não zero",
			raw:           "",
			wantDisplay:   "",
			wantCanonical: "",
		},
		{
			name:          "Entrada sem nenhum dígito retorna vazio",
			raw:           "abc-.,",
			wantDisplay:   "",
			wantCanonical: "",
		},
		{
			name:          "Valor com agrupamento de milhões",
			raw:           "123456789",
			wantDisplay:   "R$ 1.234.567,89",
			wantCanonical: "1234567.89",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, canonical := ParseRawDigits(tt.raw)
			assert.Equal(t, tt.wantDisplay, display)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}

func TestParseRawDigitsIsIdempotent(t *testing.T) {
	// A formatação não guarda estado: repetir a mesma entrada produz
	// exatamente a mesma saída, inclusive quando a entrada é a própria
	// saída formatada.
	display1, canonical1 := ParseRawDigits("98765")
	display2, canonical2 := ParseRawDigits("98765")
	assert.Equal(t, display1, display2)
	assert.Equal(t, canonical1, canonical2)

	display3, canonical3 := ParseRawDigits(display1)
	assert.Equal(t, display1, display3)
	assert.Equal(t, canonical1, canonical3)
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "Zero", amount: "0", want: "R$ 0,00"},
		{name: "Sem agrupamento", amount: "920", want: "R$ 920,00"},
		{name: "Com centavos", amount: "9.7", want: "R$ 9,70"},
		{name: "Milhar", amount: "1500", want: "R$ 1.500,00"},
		{name: "Negativo", amount: "-12.34", want: "-R$ 12,34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FormatBRL(amount))
		})
	}
}
