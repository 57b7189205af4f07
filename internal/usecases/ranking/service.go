package ranking

import (
	"time"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

type RankingService interface {
	GetClientRanking(month string) (*domain.ClientRankingResponse, error)
}

type ClientRankingService struct {
	ClientRankingRepository repository.ClientRankingRepository
}

func NewClientRankingService(clientRankingRepository repository.ClientRankingRepository) RankingService {
	return &ClientRankingService{
		ClientRankingRepository: clientRankingRepository,
	}
}

// GetClientRanking retorna o ranking de fidelidade do mês informado no
// formato "01-2006". Quando o mês não é informado, usa o mês corrente.
func (s *ClientRankingService) GetClientRanking(month string) (*domain.ClientRankingResponse, error) {
	if month == "" {
		month = time.Now().Format("01-2006")
	}

	ranking, err := s.ClientRankingRepository.GetClientRanking(month)
	if err != nil {
		return nil, err
	}

	return ranking, nil
}
