// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-report-api/infrastructure/repository"
	"github.com/vfg2006/traffic-report-api/internal/config"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting"
)

const (
	digestSource            = "digest"
	defaultMaxConcurrentJob = 4
)

type ReportDigestConfig struct {
	CronSchedule      string
	Enabled           bool
	AccountIDs        []string
	MaxConcurrentJobs int
}

// ReportDigestService gera periodicamente o relatório de cada conta e emite as linhas no log
type ReportDigestService struct {
	scheduler          *gocron.Scheduler
	repository         repository.AdRecordRepository
	generator          reporting.ReportGenerator
	config             ReportDigestConfig
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunReports     int
	lastRunFailures    int
	sinkFor            func(accountID, reportID string) reporting.LineSink
}

func NewReportDigestService(
	repo repository.AdRecordRepository,
	generator reporting.ReportGenerator,
	cfg *config.Config,
) *ReportDigestService {
	digestConfig := ReportDigestConfig{
		CronSchedule:      cfg.ReportDigest.CronSchedule,
		Enabled:           cfg.ReportDigest.Enabled,
		AccountIDs:        cfg.ReportDigest.AccountIDs,
		MaxConcurrentJobs: cfg.ReportDigest.MaxConcurrentJobs,
	}
	if digestConfig.MaxConcurrentJobs <= 0 {
		digestConfig.MaxConcurrentJobs = defaultMaxConcurrentJob
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"accounts":      len(digestConfig.AccountIDs),
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportDigestService{
		scheduler:  gocron.NewScheduler(time.UTC),
		repository: repo,
		generator:  generator,
		config:     digestConfig,
		sinkFor:    logSinkFor,
	}
}

func logSinkFor(accountID, reportID string) reporting.LineSink {
	return reporting.LogSink(logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"report_id":  reportID,
	}))
}

func (s *ReportDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest gera o relatório de todas as contas configuradas. Execuções sobrepostas são ignoradas.
func (s *ReportDigestService) RunDigest(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório agendado já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startedAt := time.Now()
	s.lastRunStartedAt = startedAt
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	accountIDs, err := s.accountsToProcess(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para o relatório agendado")
		return
	}

	if len(accountIDs) == 0 {
		logrus.Info("Nenhuma conta encontrada para o relatório agendado")
		return
	}

	reports, failures := s.processAccounts(ctx, accountIDs)

	s.syncMutex.Lock()
	s.lastRunCompletedAt = time.Now()
	s.lastRunReports = reports
	s.lastRunFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startedAt).String(),
		"accounts": len(accountIDs),
		"reports":  reports,
		"failures": failures,
	}).Info("Relatório agendado concluído")
}

// TriggerManualRun dispara o relatório fora do horário agendado
func (s *ReportDigestService) TriggerManualRun(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Relatório agendado já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando relatório agendado manualmente")
	go s.RunDigest(context.WithoutCancel(ctx))
	return true
}

func (s *ReportDigestService) accountsToProcess(ctx context.Context) ([]string, error) {
	if len(s.config.AccountIDs) > 0 {
		return s.config.AccountIDs, nil
	}
	return s.repository.ListAccountIDs(ctx)
}

// processAccounts gera os relatórios com no máximo MaxConcurrentJobs contas em paralelo.
// Cada relatório é renderizado por inteiro antes de ir para o log.
func (s *ReportDigestService) processAccounts(ctx context.Context, accountIDs []string) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reports  int
		failures int
	)

	for _, accountID := range accountIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(accountID string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			report, err := s.generator.Generate(ctx, accountID, &domain.ReportFilters{Source: digestSource})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failures++
				logrus.WithError(err).WithField("account_id", accountID).Warn("Erro ao gerar relatório agendado")
				return
			}

			reports++
			sink := s.sinkFor(accountID, report.ID)
			for _, line := range report.Lines {
				sink(line)
			}
		}(accountID)
	}

	wg.Wait()
	return reports, failures
}

// GetStatus retorna o status atual do agendador
func (s *ReportDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"accounts":              s.config.AccountIDs,
		"max_concurrent":        s.config.MaxConcurrentJobs,
		"running":               s.syncRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_reports":      s.lastRunReports,
		"last_run_failures":     s.lastRunFailures,
	}
}
