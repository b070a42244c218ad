package reporting

//go:generate mockgen -source=service.go -destination=mocks/report_generator_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/traffic-report-api/infrastructure/repository"
	"github.com/vfg2006/traffic-report-api/internal/config"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/analytics"
	"github.com/vfg2006/traffic-report-api/pkg/apiErrors"
	"github.com/vfg2006/traffic-report-api/pkg/log"
	"github.com/vfg2006/traffic-report-api/pkg/metrics"
	"github.com/vfg2006/traffic-report-api/pkg/utils"
)

const defaultSource = "api"

// ReportGenerator gera o relatório e as visões parciais de uma conta
type ReportGenerator interface {
	Generate(ctx context.Context, accountID string, filters *domain.ReportFilters) (*domain.Report, error)
	Rules(ctx context.Context, accountID string, filters *domain.ReportFilters) (*domain.RulesResult, error)
	Fatigue(ctx context.Context, accountID string, filters *domain.ReportFilters) (*domain.FatigueResult, error)
}

type Service struct {
	cfg        config.Report
	repository repository.AdRecordRepository
	aggregator analytics.PeriodAggregator
	metrics    *metrics.ReportMetrics
	now        func() time.Time
}

// NewService cria o serviço. Um agregador nulo usa o agregador padrão.
func NewService(
	cfg *config.Config,
	repo repository.AdRecordRepository,
	aggregator analytics.PeriodAggregator,
	reportMetrics *metrics.ReportMetrics,
) *Service {
	if aggregator == nil {
		aggregator = analytics.NewSumAggregator()
	}

	return &Service{
		cfg:        cfg.Report,
		repository: repo,
		aggregator: aggregator,
		metrics:    reportMetrics,
		now:        time.Now,
	}
}

func (s *Service) Generate(ctx context.Context, accountID string, filters *domain.ReportFilters) (*domain.Report, error) {
	startedAt := s.now()
	source := sourceOf(filters)

	series, asOf, err := s.load(ctx, accountID, filters)
	if err != nil {
		s.metrics.ObserveReport(source, metrics.StatusError, startedAt)
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		s.metrics.ObserveReport(source, metrics.StatusError, startedAt)
		return nil, newReportError(ErrGenerateID, apiErrors.ErrInternalServer, accountID, err.Error())
	}

	currency := s.cfg.Currency
	if filters != nil && filters.Currency != "" {
		currency = filters.Currency
	}

	builder := s.builder(asOf, currency)

	lines := make([]string, 0, 64)
	for i, section := range builder.Sections() {
		if i > 0 {
			lines = append(lines, "")
		}

		buf := NewBufferSink()
		section.Build(series, buf.Sink())

		sectionLines := buf.Lines()
		if n := len(sectionLines); n > 0 && sectionLines[n-1] == Placeholder {
			s.metrics.ObservePlaceholder(section.Name)
		}
		lines = append(lines, sectionLines...)
	}

	status := metrics.StatusSuccess
	if series.IsEmpty() {
		status = metrics.StatusEmpty
	}
	s.metrics.ObserveReport(source, status, startedAt)
	s.metrics.SetFatiguedAds(accountID, countFatigued(analytics.ClassifyFatigue(series, asOf, builder.recentDays)))

	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": accountID,
		"report_id":  id,
		"as_of":      asOf.Format(utils.DateLayout),
		"rows":       len(series),
	}).Info("reporting: relatório gerado")

	return &domain.Report{
		ID:          id,
		AccountID:   accountID,
		AsOf:        asOf,
		Currency:    currency,
		GeneratedAt: s.now(),
		Lines:       lines,
	}, nil
}

func (s *Service) Rules(ctx context.Context, accountID string, filters *domain.ReportFilters) (*domain.RulesResult, error) {
	series, asOf, err := s.load(ctx, accountID, filters)
	if err != nil {
		return nil, err
	}

	evaluator := analytics.NewRuleEvaluator(s.aggregator)
	if s.cfg.TargetCPA > 0 {
		evaluator.TargetCPA = domain.Present(s.cfg.TargetCPA)
	}

	return &domain.RulesResult{
		AccountID: accountID,
		AsOf:      asOf,
		Rules:     evaluator.Evaluate(series, asOf),
	}, nil
}

func (s *Service) Fatigue(ctx context.Context, accountID string, filters *domain.ReportFilters) (*domain.FatigueResult, error) {
	series, asOf, err := s.load(ctx, accountID, filters)
	if err != nil {
		return nil, err
	}

	recentDays := s.recentDays()
	rows := analytics.ClassifyFatigue(series, asOf, recentDays)
	s.metrics.SetFatiguedAds(accountID, countFatigued(rows))

	return &domain.FatigueResult{
		AccountID:        accountID,
		AsOf:             asOf,
		RecentWindowDays: recentDays,
		Ads:              rows,
	}, nil
}

// load busca a janela de histórico que termina na data de referência
func (s *Service) load(ctx context.Context, accountID string, filters *domain.ReportFilters) (domain.Series, time.Time, error) {
	if accountID == "" {
		return nil, time.Time{}, newReportError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	latest, err := s.repository.GetLatestDate(ctx, accountID)
	if err != nil {
		return nil, time.Time{}, newReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}
	if latest == nil {
		return nil, time.Time{}, newReportError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
	}

	asOf := *latest
	if filters != nil && filters.AsOf != nil {
		asOf = domain.NormalizeDate(*filters.AsOf)
		if asOf.After(*latest) {
			return nil, time.Time{}, newReportError(ErrInvalidAsOf, apiErrors.ErrInvalidAsOf, accountID,
				"última data disponível: "+latest.Format(utils.DateLayout))
		}
	}

	start := asOf.AddDate(0, 0, -(s.lookbackDays() - 1))

	series, err := s.repository.GetByDateRange(ctx, accountID, start, asOf)
	if err != nil {
		return nil, time.Time{}, newReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": accountID,
		"as_of":      asOf.Format(utils.DateLayout),
		"start":      start.Format(utils.DateLayout),
		"rows":       len(series),
	}).Debug("reporting: série carregada")

	return series, asOf, nil
}

func (s *Service) builder(asOf time.Time, currency string) *Builder {
	return NewBuilder(s.aggregator,
		WithAsOf(asOf),
		WithCurrency(currency),
		WithRecentWindowDays(s.recentDays()),
		WithTargetCPA(s.cfg.TargetCPA),
	)
}

// lookbackDays cobre a semana atual e as duas semanas de comparação
func (s *Service) lookbackDays() int {
	if s.cfg.LookbackDays < 3*analytics.TrendWindowDays {
		return 3 * analytics.TrendWindowDays
	}
	return s.cfg.LookbackDays
}

func (s *Service) recentDays() int {
	if s.cfg.FatigueRecentDays <= 0 {
		return analytics.DefaultRecentWindowDays
	}
	return s.cfg.FatigueRecentDays
}

func sourceOf(filters *domain.ReportFilters) string {
	if filters == nil || filters.Source == "" {
		return defaultSource
	}
	return filters.Source
}

func countFatigued(rows []domain.AdFatigueRow) int {
	n := 0
	for _, r := range rows {
		if r.Fatigued {
			n++
		}
	}
	return n
}
