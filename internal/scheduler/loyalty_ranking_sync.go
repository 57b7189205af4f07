// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository"
	"github.com/ecoclean/fidelidade-api/internal/config"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

type LoyaltyRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// LoyaltyRankingService recalcula diariamente o ranking mensal de fidelidade
// a partir do livro de compras.
type LoyaltyRankingService struct {
	scheduler           *gocron.Scheduler
	purchaseRepo        repository.PurchaseRepository
	rankingRepo         repository.ClientRankingRepository
	config              LoyaltyRankingConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLoyaltyRankingService(
	purchaseRepo repository.PurchaseRepository,
	rankingRepo repository.ClientRankingRepository,
	cfg *config.Config,
) *LoyaltyRankingService {
	rankingConfig := LoyaltyRankingConfig{
		CronSchedule: cfg.RankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.RankingSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de fidelidade carregada")

	return &LoyaltyRankingService{
		scheduler:    scheduler,
		purchaseRepo: purchaseRepo,
		rankingRepo:  rankingRepo,
		config:       rankingConfig,
	}
}

func (s *LoyaltyRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de fidelidade desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de fidelidade")

	// Agendar a sincronização do ranking de fidelidade
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateLoyaltyRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de fidelidade")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do ranking de fidelidade: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de fidelidade")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LoyaltyRankingService) UpdateLoyaltyRanking() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização do ranking de fidelidade já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do ranking de fidelidade")

	if _, err := s.processLoyaltyRankingWithDate(time.Now()); err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de fidelidade concluída")

	return nil
}

// processLoyaltyRankingWithDate recalcula o ranking do mês da data informada,
// agregando todas as compras entre o primeiro dia do mês e a data de
// processamento (exclusiva no fim do dia corrente).
func (s *LoyaltyRankingService) processLoyaltyRankingWithDate(processingDate time.Time) ([]*domain.ClientRankingItem, error) {
	month := processingDate.Format("01-2006")
	firstDayOfMonth := getFirstDayOfMonth(processingDate)
	endOfRange := firstDayOfMonth.AddDate(0, 1, 0)

	summaries, err := s.purchaseRepo.SummarizeByClient(firstDayOfMonth, endOfRange)
	if err != nil {
		logrus.WithError(err).Error("LoyaltyRankingService: Erro ao agregar compras do mês")
		return nil, err
	}

	if len(summaries) == 0 {
		logrus.WithField("month", month).Info("LoyaltyRankingService: Nenhuma compra encontrada no mês")
		return []*domain.ClientRankingItem{}, nil
	}

	rankingsBeforeUpdate := make(map[string]*domain.ClientRankingItem, len(summaries))
	updatedRankings := make([]*domain.ClientRankingItem, 0, len(summaries))

	for _, summary := range summaries {
		// Buscar posição anterior do cliente no mês
		previous, err := s.rankingRepo.GetByClientCNPJ(summary.ClientCNPJ, month)
		if err != nil {
			logrus.WithError(err).Error("LoyaltyRankingService: Erro ao buscar ranking anterior do cliente")
			return nil, err
		}

		if previous != nil {
			rankingsBeforeUpdate[previous.ClientCNPJ] = previous
		}

		updatedRankings = append(updatedRankings, &domain.ClientRankingItem{
			ClientCNPJ:    summary.ClientCNPJ,
			Month:         month,
			ClientName:    summary.ClientName,
			TotalSpent:    summary.TotalSpent,
			PurchaseCount: summary.PurchaseCount,
		})
	}

	s.updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdateClientRanking(updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking de fidelidade atualizado")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"month":   month,
		"clients": len(updatedRankings),
	}).Info("Ranking de fidelidade atualizado")

	return updatedRankings, nil
}

func (*LoyaltyRankingService) updatePositions(
	updatedRankings []*domain.ClientRankingItem,
	rankingsBeforeUpdate map[string]*domain.ClientRankingItem,
) {
	sort.Slice(updatedRankings, func(i, j int) bool {
		return updatedRankings[i].TotalSpent.GreaterThan(updatedRankings[j].TotalSpent)
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.ClientCNPJ]
		if exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente uma sincronização do ranking de fidelidade
func (s *LoyaltyRankingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do ranking de fidelidade já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do ranking de fidelidade")
	go func() {
		if err := s.UpdateLoyaltyRanking(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do ranking de fidelidade")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *LoyaltyRankingService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func getFirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
