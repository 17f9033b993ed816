package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-health-api/infrastructure/repository"
	"github.com/vfg2006/customer-health-api/internal/api"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/scheduler"
	"github.com/vfg2006/customer-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-health-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-health-api/internal/usecases/generating"
	"github.com/vfg2006/customer-health-api/internal/usecases/predicting"
	"github.com/vfg2006/customer-health-api/internal/usecases/reporting"
	"github.com/vfg2006/customer-health-api/internal/usecases/scoring"
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

	customerRepo := repository.NewCustomerRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	ticketRepo := repository.NewSupportTicketRepository(pgConn)
	feedbackRepo := repository.NewFeedbackRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	scorer := scoring.NewService()
	analyzer := analyzing.NewService()

	reporter := reporting.NewService(customerRepo, orderRepo, ticketRepo, feedbackRepo, analyzer)
	predictor := predicting.NewService(customerRepo)
	generator := generating.NewService(&cfg.SampleData, customerRepo, orderRepo, ticketRepo, feedbackRepo, scorer)

	// Inicializa o agendador de recálculo de health scores
	healthScoreSyncService := scheduler.NewHealthScoreSyncService(
		customerRepo,
		orderRepo,
		ticketRepo,
		feedbackRepo,
		scorer,
		cfg,
	)

	if err := healthScoreSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de health scores")
	} else {
		logrus.Info("Agendador de recálculo de health scores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		predictor,
		generator,
		authenticator,
		healthScoreSyncService,
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
