package discounting

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoclean/fidelidade-api/internal/domain"
)

var eligibleBenefits = []string{
	domain.BenefitProductDiscount,
	domain.BenefitFreeShipping,
	domain.BenefitLoyaltyPoints,
}

func TestQuoteClienteSemBeneficioDeDesconto(t *testing.T) {
	service := NewService()

	quote := service.Quote(decimal.NewFromInt(1000), []string{
		domain.BenefitFreeShipping,
		domain.BenefitLoyaltyPoints,
		domain.BenefitPriorityService,
	})

	assert.Nil(t, quote)

	quote = service.Quote(decimal.NewFromInt(1000), nil)
	assert.Nil(t, quote)
}

func TestQuoteFaixaDeDesconto(t *testing.T) {
	// random = 0 fixa a sugestão no piso da faixa
	service := NewServiceWithRandom(func() float64 { return 0 })

	quote := service.Quote(decimal.NewFromInt(1000), eligibleBenefits)
	require.NotNil(t, quote)

	// Atenção à nomenclatura: o preço com MENOR desconto (3%) é o MAIOR
	// valor da faixa, e o preço com MAIOR desconto (8%) é o MENOR.
	assert.True(t, quote.LeastDiscounted.Equal(decimal.NewFromInt(970)))
	assert.True(t, quote.MostDiscounted.Equal(decimal.NewFromInt(920)))
	assert.True(t, quote.Suggested.Equal(decimal.NewFromInt(920)))

	assert.Equal(t, "R$ 970,00", quote.LeastDiscountedDisplay)
	assert.Equal(t, "R$ 920,00", quote.MostDiscountedDisplay)
	assert.Equal(t, "R$ 920,00", quote.SuggestedDisplay)
}

func TestQuoteSugestaoDentroDaFaixa(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	service := NewServiceWithRandom(random.Float64)

	amount := decimal.NewFromInt(1000)
	floor := decimal.NewFromInt(920)
	ceiling := decimal.NewFromInt(970)

	// span = 50 para R$ 1.000,00; a sugestão é um inteiro em [920, 970)
	for i := 0; i < 200; i++ {
		quote := service.Quote(amount, eligibleBenefits)
		require.NotNil(t, quote)

		assert.True(t, quote.Suggested.GreaterThanOrEqual(floor),
			"sugestão %s abaixo do piso da faixa", quote.Suggested)
		assert.True(t, quote.Suggested.LessThan(ceiling),
			"sugestão %s acima do teto da faixa", quote.Suggested)
		assert.True(t, quote.Suggested.Equal(quote.Suggested.Floor()),
			"sugestão deve ser um valor inteiro, sem centavos")
	}
}

func TestQuoteOrdemDosValores(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	service := NewServiceWithRandom(random.Float64)

	amounts := []string{"12.50", "99.99", "150.00", "1500.00", "123456.78"}

	for _, raw := range amounts {
		amount := decimal.RequireFromString(raw)

		quote := service.Quote(amount, eligibleBenefits)
		require.NotNil(t, quote)

		assert.True(t, quote.MostDiscounted.LessThan(quote.LeastDiscounted))
		assert.True(t, quote.LeastDiscounted.LessThan(amount))
		assert.True(t, quote.Suggested.GreaterThanOrEqual(quote.MostDiscounted.Floor()))
		assert.True(t, quote.Suggested.LessThanOrEqual(quote.LeastDiscounted))
	}
}

func TestQuoteFaixaDegenerada(t *testing.T) {
	// Mesmo com random no teto, valores pequenos têm faixa de largura
	// zero e a sugestão cai deterministicamente no piso.
	service := NewServiceWithRandom(func() float64 { return 0.999999 })

	quote := service.Quote(decimal.RequireFromString("10.00"), eligibleBenefits)
	require.NotNil(t, quote)

	assert.True(t, quote.LeastDiscounted.Equal(decimal.RequireFromString("9.70")))
	assert.True(t, quote.MostDiscounted.Equal(decimal.RequireFromString("9.20")))
	assert.True(t, quote.Suggested.Equal(decimal.NewFromInt(9)))
	assert.Equal(t, "R$ 9,00", quote.SuggestedDisplay)
}
