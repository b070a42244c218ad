package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-report-api/infrastructure/repository"
	"github.com/vfg2006/traffic-report-api/internal/api"
	"github.com/vfg2006/traffic-report-api/internal/api/handler"
	"github.com/vfg2006/traffic-report-api/internal/config"
	"github.com/vfg2006/traffic-report-api/internal/scheduler"
	"github.com/vfg2006/traffic-report-api/internal/usecases/analytics"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting"
	"github.com/vfg2006/traffic-report-api/pkg/log"
	"github.com/vfg2006/traffic-report-api/pkg/metrics"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reportMetrics := metrics.NewReportMetrics(registry)

	adRecordRepo := repository.NewAdRecordRepository(pgConn)

	reportService := reporting.NewService(cfg, adRecordRepo, analytics.NewSumAggregator(), reportMetrics)

	reportDigestService := scheduler.NewReportDigestService(adRecordRepo, reportService, cfg)
	if err := reportDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		logrus.Info("Agendador de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Reports: reportService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeReportDigest: reportDigestService,
		},
		DB:      pgConn,
		Metrics: registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource muda para o diretório do main para que o .env local seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
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
