package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-insights-api/infrastructure/repository"
	"github.com/vfg2006/retail-insights-api/internal/api"
	"github.com/vfg2006/retail-insights-api/internal/config"
	"github.com/vfg2006/retail-insights-api/internal/scheduler"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/retail-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-insights-api/pkg/log"
)

func main() {
	chdirToSource()

	// Valores monetários saem como número JSON
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	aggregateRepo := repository.NewSalesAggregateRepository(pgConn)

	dashboardService := dashboard.NewService(
		aggregateRepo,
		dashboard.WithThresholds(cfg.Analytics.Thresholds()),
		dashboard.WithForecastEngine(forecasting.NewEngine(cfg.Forecast.EngineConfig())),
	)

	digestService := scheduler.NewStrategicDigestService(dashboardService, cfg)
	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo estratégico")
	}

	server, err := api.New(cfg, pgConn, dashboardService, digestService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do main para encontrar o .env local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório da aplicação")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
