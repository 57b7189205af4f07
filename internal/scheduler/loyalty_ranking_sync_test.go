package scheduler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository/mocks"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

func TestLoyaltyRankingService_processLoyaltyRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	mockRankingRepo := mocks.NewMockClientRankingRepository(ctrl)

	service := &LoyaltyRankingService{
		purchaseRepo: mockPurchaseRepo,
		rankingRepo:  mockRankingRepo,
	}

	// Data de referência do teste: 16 de janeiro
	processingDate := time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)
	month := "01-2026"

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result []*domain.ClientRankingItem)
	}{
		{
			name: "Clientes novos sem ranking anterior - posições pelo total gasto",
			setup: func() {
				mockPurchaseRepo.EXPECT().
					SummarizeByClient(gomock.Any(), gomock.Any()).
					Return([]*domain.ClientSpendSummary{
						{ClientCNPJ: "11111111000111", ClientName: "Hotel Beira-Mar", TotalSpent: decimal.NewFromInt(500), PurchaseCount: 2},
						{ClientCNPJ: "22222222000122", ClientName: "Condomínio Águas Claras", TotalSpent: decimal.NewFromInt(1500), PurchaseCount: 3},
					}, nil)

				mockRankingRepo.EXPECT().
					GetByClientCNPJ("11111111000111", month).
					Return(nil, nil)
				mockRankingRepo.EXPECT().
					GetByClientCNPJ("22222222000122", month).
					Return(nil, nil)

				mockRankingRepo.EXPECT().
					SaveOrUpdateClientRanking(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result []*domain.ClientRankingItem) {
				require.Len(t, result, 2)

				// Maior gasto em primeiro
				assert.Equal(t, "22222222000122", result[0].ClientCNPJ)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 0, result[0].PositionChange)
				assert.Equal(t, month, result[0].Month)
				assert.True(t, result[0].TotalSpent.Equal(decimal.NewFromInt(1500)))

				assert.Equal(t, "11111111000111", result[1].ClientCNPJ)
				assert.Equal(t, 2, result[1].Position)
				assert.Equal(t, 2, result[1].PurchaseCount)
			},
		},
		{
			name: "Cliente com ranking anterior - calcula variação de posição",
			setup: func() {
				mockPurchaseRepo.EXPECT().
					SummarizeByClient(gomock.Any(), gomock.Any()).
					Return([]*domain.ClientSpendSummary{
						{ClientCNPJ: "11111111000111", ClientName: "Hotel Beira-Mar", TotalSpent: decimal.NewFromInt(3000), PurchaseCount: 5},
						{ClientCNPJ: "22222222000122", ClientName: "Condomínio Águas Claras", TotalSpent: decimal.NewFromInt(1500), PurchaseCount: 3},
					}, nil)

				// Ontem o hotel estava em segundo
				mockRankingRepo.EXPECT().
					GetByClientCNPJ("11111111000111", month).
					Return(&domain.ClientRankingItem{ClientCNPJ: "11111111000111", Month: month, Position: 2}, nil)
				mockRankingRepo.EXPECT().
					GetByClientCNPJ("22222222000122", month).
					Return(&domain.ClientRankingItem{ClientCNPJ: "22222222000122", Month: month, Position: 1}, nil)

				mockRankingRepo.EXPECT().
					SaveOrUpdateClientRanking(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result []*domain.ClientRankingItem) {
				require.Len(t, result, 2)

				assert.Equal(t, "11111111000111", result[0].ClientCNPJ)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 1, result[0].PositionChange) // Subiu uma posição
				assert.Equal(t, 2, result[0].PreviousPosition)

				assert.Equal(t, "22222222000122", result[1].ClientCNPJ)
				assert.Equal(t, 2, result[1].Position)
				assert.Equal(t, -1, result[1].PositionChange) // Caiu uma posição
				assert.Equal(t, 1, result[1].PreviousPosition)
			},
		},
		{
			name: "Mês sem compras - nada a salvar",
			setup: func() {
				mockPurchaseRepo.EXPECT().
					SummarizeByClient(gomock.Any(), gomock.Any()).
					Return([]*domain.ClientSpendSummary{}, nil)
			},
			validate: func(t *testing.T, result []*domain.ClientRankingItem) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.processLoyaltyRankingWithDate(processingDate)
			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestLoyaltyRankingService_getFirstDayOfMonth(t *testing.T) {
	date := time.Date(2026, 1, 16, 15, 30, 0, 0, time.UTC)
	first := getFirstDayOfMonth(date)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), first)
}
