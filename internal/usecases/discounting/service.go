// Package discounting calcula a faixa de desconto sugerida para clientes
// com o benefício de desconto em produtos.
package discounting

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/ecoclean/fidelidade-api/internal/domain"
	"github.com/ecoclean/fidelidade-api/pkg/money"
)

var (
	leastDiscountFactor = decimal.NewFromFloat(0.97) // 3% de desconto
	mostDiscountFactor  = decimal.NewFromFloat(0.92) // 8% de desconto
)

type Quoter interface {
	Quote(amount decimal.Decimal, benefits []string) *domain.DiscountQuote
}

type Service struct {
	random func() float64
}

func NewService() Quoter {
	return &Service{random: rand.Float64}
}

// NewServiceWithRandom permite injetar a fonte de aleatoriedade. Usado em
// testes que precisam de sugestões reprodutíveis; em produção a sugestão
// é intencionalmente não determinística (apoio à negociação no balcão,
// não um preço armazenado).
func NewServiceWithRandom(random func() float64) Quoter {
	return &Service{random: random}
}

// Quote retorna nil quando o cliente não possui o benefício de desconto.
// Para clientes elegíveis, calcula o preço com menor desconto (3%), o
// preço com maior desconto (8%) e um valor sugerido inteiro sorteado
// dentro da faixa [floor(maior desconto), floor(menor desconto)).
func (s *Service) Quote(amount decimal.Decimal, benefits []string) *domain.DiscountQuote {
	if !hasDiscountBenefit(benefits) {
		return nil
	}

	leastDiscounted := amount.Mul(leastDiscountFactor)
	mostDiscounted := amount.Mul(mostDiscountFactor)

	// Largura inteira da faixa de negociação. Sempre >= 0, já que a
	// faixa vai do preço com 8% ao preço com 3% de desconto.
	span := leastDiscounted.Sub(mostDiscounted).Floor().IntPart()

	suggested := mostDiscounted.Floor()
	if span > 0 {
		offset := int64(s.random() * float64(span))
		suggested = suggested.Add(decimal.NewFromInt(offset))
	}

	return &domain.DiscountQuote{
		LeastDiscounted:        leastDiscounted,
		MostDiscounted:         mostDiscounted,
		Suggested:              suggested,
		LeastDiscountedDisplay: money.FormatBRL(leastDiscounted),
		MostDiscountedDisplay:  money.FormatBRL(mostDiscounted),
		SuggestedDisplay:       money.FormatBRL(suggested),
	}
}

func hasDiscountBenefit(benefits []string) bool {
	for _, b := range benefits {
		if b == domain.BenefitProductDiscount {
			return true
		}
	}
	return false
}
