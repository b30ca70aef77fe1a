package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ipay-report-api/infrastructure/repository"
	"github.com/vfg2006/ipay-report-api/internal/api"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/internal/scheduler"
	"github.com/vfg2006/ipay-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ipay-report-api/internal/usecases/dataset"
	"github.com/vfg2006/ipay-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ipay-report-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Formato e nível do log dependem do ambiente
	log.Setup(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsRepo, err := repository.NewProductMetricsRepository(pgConn, cfg.Dataset.Table)
	if err != nil {
		logrus.WithError(err).Fatal("Tabela de métricas inválida")
	}

	loader := dataset.NewLoader(metricsRepo, cfg.Dataset.CacheTTL)

	reportService := reporting.NewService(loader, reporting.Options{
		RevenueTarget: cfg.Report.RevenueTarget,
		Pages:         reporting.DefaultPages(cfg.Report.PolicyFees, cfg.Report.DefaultPolicyFee),
	})

	authenticator, err := authenticating.NewService(cfg.Auth, cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a autenticação")
	}

	datasetRefreshService := scheduler.NewDatasetRefreshService(loader, cfg.DatasetRefresh)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do conjunto de dados")
	} else {
		logrus.Info("Agendador de atualização do conjunto de dados iniciado com sucesso")
	}

	// Aquece o cache; uma falha aqui não impede a subida
	go func() {
		if _, err := loader.Load(ctx); err != nil {
			logrus.WithError(err).Warn("Não foi possível pré-carregar o conjunto de dados")
		}
	}()

	server, err := api.New(cfg, api.Dependencies{
		Database:       pgConn,
		Reporter:       reportService,
		Authenticator:  authenticator,
		DatasetRefresh: datasetRefreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
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
