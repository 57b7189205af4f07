package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/infrastructure/database/postgres"
	"github.com/ecoclean/fidelidade-api/infrastructure/repository"
	"github.com/ecoclean/fidelidade-api/internal/api"
	"github.com/ecoclean/fidelidade-api/internal/config"
	"github.com/ecoclean/fidelidade-api/internal/scheduler"
	"github.com/ecoclean/fidelidade-api/internal/usecases/authenticating"
	"github.com/ecoclean/fidelidade-api/internal/usecases/client"
	"github.com/ecoclean/fidelidade-api/internal/usecases/discounting"
	"github.com/ecoclean/fidelidade-api/internal/usecases/purchasing"
	"github.com/ecoclean/fidelidade-api/internal/usecases/ranking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clientRepo := repository.NewClientRepository(pgConn)
	purchaseRepo := repository.NewPurchaseRepository(pgConn)
	clientRankingRepo := repository.NewClientRankingRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	clientService := client.NewService(clientRepo)

	quoter := discounting.NewService()
	purchaseService := purchasing.NewService(purchaseRepo, clientRepo, quoter)

	rankingService := ranking.NewClientRankingService(clientRankingRepo)

	// Inicializa o agendador de sincronização do ranking de fidelidade
	loyaltyRankingSyncService := scheduler.NewLoyaltyRankingService(
		purchaseRepo,
		clientRankingRepo,
		cfg,
	)

	if err := loyaltyRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do ranking de fidelidade")
	} else {
		logrus.Info("Agendador de sincronização do ranking de fidelidade iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		clientService,
		purchaseService,
		rankingService,
		authenticator,
		loyaltyRankingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
