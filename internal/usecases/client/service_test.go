package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository"
	"github.com/ecoclean/fidelidade-api/infrastructure/repository/mocks"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

func validClient() *domain.Client {
	return &domain.Client{
		Name:         "EcoClean Piscinas",
		City:         "Florianópolis",
		Neighborhood: "Centro",
		Street:       "Rua das Palmeiras",
		Number:       "123",
		Phone:        "48999990000",
		CNPJ:         "12345678000190",
		Benefits: []string{
			domain.BenefitProductDiscount,
			domain.BenefitFreeShipping,
			domain.BenefitLoyaltyPoints,
		},
	}
}

func TestCreateClientComSucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *domain.Client) (*domain.Client, error) {
			assert.NotEmpty(t, c.ID)
			return c, nil
		})

	created, err := service.CreateClient(validClient())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateClientCamposObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	c := validClient()
	c.City = ""

	created, err := service.CreateClient(c)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateClientValidacaoDeBeneficios(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	tests := []struct {
		name     string
		benefits []string
	}{
		{
			name: "Menos de três benefícios",
			benefits: []string{
				domain.BenefitProductDiscount,
				domain.BenefitFreeShipping,
			},
		},
		{
			name: "Mais de três benefícios",
			benefits: []string{
				domain.BenefitProductDiscount,
				domain.BenefitFreeShipping,
				domain.BenefitLoyaltyPoints,
				domain.BenefitPriorityService,
			},
		},
		{
			name: "Benefícios repetidos",
			benefits: []string{
				domain.BenefitProductDiscount,
				domain.BenefitProductDiscount,
				domain.BenefitFreeShipping,
			},
		},
		{
			name: "Benefício fora da lista",
			benefits: []string{
				domain.BenefitProductDiscount,
				domain.BenefitFreeShipping,
				"Cashback de 50%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClient()
			c.Benefits = tt.benefits

			created, err := service.CreateClient(c)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, ErrInvalidBenefits)
		})
	}
}

func TestCreateClientCNPJDuplicado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().
		Create(gomock.Any()).
		Return(nil, repository.ErrDuplicateCNPJ)

	created, err := service.CreateClient(validClient())
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrDuplicateCNPJ)
}

func TestSearchClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	clients := []*domain.Client{
		{ID: "CLI001", Name: "EcoClean Piscinas", CNPJ: "12345678000190"},
		{ID: "CLI002", Name: "Condomínio Águas Claras", CNPJ: "98765432000109"},
		{ID: "CLI003", Name: "Hotel Beira-Mar", CNPJ: "11222333000144"},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "Substring do nome sem diferenciar maiúsculas", term: "ecoclean", wantIDs: []string{"CLI001"}},
		{name: "Substring de CNPJ", term: "98765", wantIDs: []string{"CLI002"}},
		{name: "Termo vazio retorna todos", term: "", wantIDs: []string{"CLI001", "CLI002", "CLI003"}},
		{name: "Sem correspondência", term: "padaria", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().List().Return(clients, nil)

			matched, err := service.SearchClients(tt.term)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(matched))
			for _, c := range matched {
				gotIDs = append(gotIDs, c.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestUpdateClientParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	existing := validClient()
	existing.ID = "CLI001"

	repo.EXPECT().GetByID("CLI001").Return(existing, nil)
	repo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(c *domain.Client) error {
			assert.Equal(t, "48988887777", c.Phone)
			// Campos não enviados permanecem intactos
			assert.Equal(t, "EcoClean Piscinas", c.Name)
			return nil
		})

	phone := "48988887777"
	updated, err := service.UpdateClient(&domain.UpdateClientRequest{
		ID:    "CLI001",
		Phone: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "48988887777", updated.Phone)
}

func TestUpdateClientNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByID("CLI404").Return(nil, nil)

	updated, err := service.UpdateClient(&domain.UpdateClientRequest{ID: "CLI404"})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetClientByNameCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	service := NewService(repo)

	expected := validClient()
	expected.ID = "CLI001"

	repo.EXPECT().GetByName("ecoclean piscinas").Return(expected, nil)

	found, err := service.GetClientByName("ecoclean piscinas")
	require.NoError(t, err)
	assert.Equal(t, "CLI001", found.ID)
}
