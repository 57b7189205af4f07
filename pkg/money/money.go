// Package money concentra a interpretação e formatação de valores
// monetários em BRL. O campo de valor da compra é tratado como um buffer
// de dígitos em centavos: qualquer caractere não numérico é descartado
// antes da interpretação.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRawDigits interpreta a entrada bruta do campo de valor como
// centavos e retorna o valor formatado para exibição ("R$ 1.500,00") e o
// valor canônico com duas casas decimais ("1500.00").
//
// Entrada sem nenhum dígito retorna ("", ""): significa "nenhum valor
// informado", não zero.
func ParseRawDigits(raw string) (display string, canonical string) {
	digits := stripNonDigits(raw)
	if digits == "" {
		return "", ""
	}

	cents, err := decimal.NewFromString(digits)
	if err != nil {
		// Inalcançável para strings só de dígitos, mas não propagamos:
		// entrada malformada equivale a "nenhum valor informado".
		return "", ""
	}

	amount := cents.Shift(-2)

	return FormatBRL(amount), amount.StringFixed(2)
}

// FormatBRL formata um valor decimal no padrão pt-BR: prefixo "R$ ",
// ponto como separador de milhar e vírgula como separador decimal.
func FormatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var grouped strings.Builder
	prefix := len(intPart) % 3
	if prefix > 0 {
		grouped.WriteString(intPart[:prefix])
	}
	for i := prefix; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(intPart[i : i+3])
	}

	formatted := "R$ " + grouped.String() + "," + fracPart
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}

func stripNonDigits(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}
