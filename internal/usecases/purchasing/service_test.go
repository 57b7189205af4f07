package purchasing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository/mocks"
	"github.com/ecoclean/fidelidade-api/internal/domain"
	"github.com/ecoclean/fidelidade-api/internal/usecases/discounting"
)

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockPurchaseRepository, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)

	purchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)

	service := &Service{
		purchaseRepository: purchaseRepo,
		clientRepository:   clientRepo,
		quoter:             discounting.NewServiceWithRandom(func() float64 { return 0 }),
	}

	return service, purchaseRepo, clientRepo
}

func TestRegisterPurchaseSemClienteSelecionado(t *testing.T) {
	// Nenhuma chamada é esperada nos mocks: a rejeição acontece antes
	// de qualquer acesso ao banco.
	service, _, _ := newServiceWithMocks(t)

	response, err := service.RegisterPurchase(&domain.CreatePurchaseRequest{
		Amount: "1500.00",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrNoClientSelected)
}

func TestRegisterPurchaseSemValor(t *testing.T) {
	service, _, _ := newServiceWithMocks(t)

	response, err := service.RegisterPurchase(&domain.CreatePurchaseRequest{
		ClientName: "EcoClean Piscinas",
		ClientCNPJ: "12345678000190",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrNoAmountEntered)
}

func TestRegisterPurchaseValorInvalido(t *testing.T) {
	service, _, _ := newServiceWithMocks(t)

	tests := []struct {
		name   string
		amount string
	}{
		{name: "Valor não numérico", amount: "abc"},
		{name: "Valor negativo", amount: "-10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := service.RegisterPurchase(&domain.CreatePurchaseRequest{
				ClientName: "EcoClean Piscinas",
				ClientCNPJ: "12345678000190",
				Amount:     tt.amount,
			})

			assert.Nil(t, response)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestRegisterPurchaseComSucesso(t *testing.T) {
	service, purchaseRepo, _ := newServiceWithMocks(t)

	// O valor canônico "1500.00" (digitado como "150000") chega ao
	// repositório junto com as cópias desnormalizadas de nome e CNPJ.
	purchaseRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(purchase *domain.Purchase) (*domain.Purchase, error) {
			assert.NotEmpty(t, purchase.ID)
			assert.Equal(t, "EcoClean Piscinas", purchase.ClientName)
			assert.Equal(t, "12345678000190", purchase.ClientCNPJ)
			assert.True(t, purchase.Amount.Equal(decimal.RequireFromString("1500.00")))
			return purchase, nil
		})

	response, err := service.RegisterPurchase(&domain.CreatePurchaseRequest{
		ClientName: "EcoClean Piscinas",
		ClientCNPJ: "12345678000190",
		Amount:     "1500.00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Compra registrada com sucesso", response.Message)
	assert.NotNil(t, response.Purchase)
}

func TestRegisterPurchaseFalhaDoBanco(t *testing.T) {
	service, purchaseRepo, _ := newServiceWithMocks(t)

	// A mensagem do repositório é preservada para que o operador veja a
	// causa e possa reenviar sem digitar tudo de novo.
	purchaseRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	response, err := service.RegisterPurchase(&domain.CreatePurchaseRequest{
		ClientName: "EcoClean Piscinas",
		ClientCNPJ: "12345678000190",
		Amount:     "1500.00",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPreviewPurchaseClienteElegivel(t *testing.T) {
	service, _, clientRepo := newServiceWithMocks(t)

	clientRepo.EXPECT().
		GetByID("CLI001").
		Return(&domain.Client{
			ID:   "CLI001",
			Name: "EcoClean Piscinas",
			CNPJ: "12345678000190",
			Benefits: []string{
				domain.BenefitProductDiscount,
				domain.BenefitFreeShipping,
				domain.BenefitLoyaltyPoints,
			},
		}, nil)

	response, err := service.PreviewPurchase(&domain.PreviewPurchaseRequest{
		ClientID: "CLI001",
		RawValue: "100000",
	})

	require.NoError(t, err)
	assert.Equal(t, "R$ 1.000,00", response.Display)
	assert.Equal(t, "1000.00", response.Canonical)

	require.NotNil(t, response.Discount)
	assert.Equal(t, "R$ 970,00", response.Discount.LeastDiscountedDisplay)
	assert.Equal(t, "R$ 920,00", response.Discount.MostDiscountedDisplay)
}

func TestPreviewPurchaseClienteSemBeneficio(t *testing.T) {
	service, _, clientRepo := newServiceWithMocks(t)

	clientRepo.EXPECT().
		GetByID("CLI002").
		Return(&domain.Client{
			ID:   "CLI002",
			Name: "Condomínio Águas Claras",
			CNPJ: "98765432000109",
			Benefits: []string{
				domain.BenefitFreeShipping,
				domain.BenefitLoyaltyPoints,
				domain.BenefitPriorityService,
			},
		}, nil)

	response, err := service.PreviewPurchase(&domain.PreviewPurchaseRequest{
		ClientID: "CLI002",
		RawValue: "100000",
	})

	require.NoError(t, err)
	assert.Equal(t, "R$ 1.000,00", response.Display)
	assert.Nil(t, response.Discount)
}

func TestPreviewPurchaseSemValorDigitado(t *testing.T) {
	service, _, clientRepo := newServiceWithMocks(t)

	clientRepo.EXPECT().
		GetByID("CLI001").
		Return(&domain.Client{ID: "CLI001", Benefits: []string{domain.BenefitProductDiscount}}, nil)

	// Buffer sem dígitos: exibição e valor canônico voltam vazios, não
	// zerados, e nenhuma sugestão é calculada.
	response, err := service.PreviewPurchase(&domain.PreviewPurchaseRequest{
		ClientID: "CLI001",
		RawValue: "abc",
	})

	require.NoError(t, err)
	assert.Empty(t, response.Display)
	assert.Empty(t, response.Canonical)
	assert.Nil(t, response.Discount)
}

func TestPreviewPurchaseClienteNaoEncontrado(t *testing.T) {
	service, _, clientRepo := newServiceWithMocks(t)

	clientRepo.EXPECT().
		GetByID("CLI404").
		Return(nil, nil)

	response, err := service.PreviewPurchase(&domain.PreviewPurchaseRequest{
		ClientID: "CLI404",
		RawValue: "100000",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrNoClientSelected)
}

func TestListLatestPurchasesUsaLimitePadrao(t *testing.T) {
	service, purchaseRepo, _ := newServiceWithMocks(t)

	purchaseRepo.EXPECT().
		List(domain.PurchaseFilter{Limit: 10}).
		Return([]*domain.Purchase{}, nil)

	_, err := service.ListLatestPurchases(0)
	assert.NoError(t, err)
}
