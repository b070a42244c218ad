package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/traffic-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-report-api/internal/config"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/traffic-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

// lineRecorder guarda as linhas emitidas por conta
type lineRecorder struct {
	mu    sync.Mutex
	lines map[string][]string
}

func newLineRecorder() *lineRecorder {
	return &lineRecorder{lines: map[string][]string{}}
}

func (r *lineRecorder) sinkFor(accountID, _ string) reporting.LineSink {
	return func(line string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.lines[accountID] = append(r.lines[accountID], line)
	}
}

func TestReportDigestService_RunDigest(t *testing.T) {
	tests := []struct {
		name         string
		accountIDs   []string
		setup        func(repo *mocks.MockAdRecordRepository, gen *reportingmocks.MockReportGenerator)
		wantReports  int
		wantFailures int
		validate     func(t *testing.T, rec *lineRecorder)
	}{
		{
			name: "sem contas configuradas usa as contas armazenadas",
			setup: func(repo *mocks.MockAdRecordRepository, gen *reportingmocks.MockReportGenerator) {
				repo.EXPECT().ListAccountIDs(gomock.Any()).Return([]string{"act_1", "act_2"}, nil)
				gen.EXPECT().
					Generate(gomock.Any(), "act_1", &domain.ReportFilters{Source: digestSource}).
					Return(&domain.Report{ID: "r1", Lines: []string{"## Resumen Ejecutivo", "- linha"}}, nil)
				gen.EXPECT().
					Generate(gomock.Any(), "act_2", &domain.ReportFilters{Source: digestSource}).
					Return(&domain.Report{ID: "r2", Lines: []string{"## Resumen Ejecutivo"}}, nil)
			},
			wantReports: 2,
			validate: func(t *testing.T, rec *lineRecorder) {
				assert.Equal(t, []string{"## Resumen Ejecutivo", "- linha"}, rec.lines["act_1"])
				assert.Len(t, rec.lines["act_2"], 1)
			},
		},
		{
			name:       "contas configuradas não consultam o banco",
			accountIDs: []string{"act_9"},
			setup: func(repo *mocks.MockAdRecordRepository, gen *reportingmocks.MockReportGenerator) {
				gen.EXPECT().Generate(gomock.Any(), "act_9", gomock.Any()).Return(&domain.Report{ID: "r9"}, nil)
			},
			wantReports: 1,
		},
		{
			name:       "falha em uma conta não interrompe as demais",
			accountIDs: []string{"act_1", "act_2"},
			setup: func(repo *mocks.MockAdRecordRepository, gen *reportingmocks.MockReportGenerator) {
				gen.EXPECT().Generate(gomock.Any(), "act_1", gomock.Any()).Return(nil, errors.New("sem dados"))
				gen.EXPECT().Generate(gomock.Any(), "act_2", gomock.Any()).Return(&domain.Report{ID: "r2"}, nil)
			},
			wantReports:  1,
			wantFailures: 1,
		},
		{
			name: "erro ao listar contas",
			setup: func(repo *mocks.MockAdRecordRepository, gen *reportingmocks.MockReportGenerator) {
				repo.EXPECT().ListAccountIDs(gomock.Any()).Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAdRecordRepository(ctrl)
			gen := reportingmocks.NewMockReportGenerator(ctrl)
			tt.setup(repo, gen)

			cfg := &config.Config{ReportDigest: config.ReportDigest{
				CronSchedule: "0 7 * * *",
				AccountIDs:   tt.accountIDs,
			}}
			svc := NewReportDigestService(repo, gen, cfg)
			rec := newLineRecorder()
			svc.sinkFor = rec.sinkFor

			svc.RunDigest(context.Background())

			status := svc.GetStatus()
			assert.Equal(t, tt.wantReports, status["last_run_reports"])
			assert.Equal(t, tt.wantFailures, status["last_run_failures"])
			assert.Equal(t, false, status["running"])
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestReportDigestService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewReportDigestService(
		mocks.NewMockAdRecordRepository(ctrl),
		reportingmocks.NewMockReportGenerator(ctrl),
		&config.Config{ReportDigest: config.ReportDigest{Enabled: false}},
	)

	assert.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, defaultMaxConcurrentJob, svc.GetStatus()["max_concurrent"])
}

func TestReportDigestService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewReportDigestService(
		mocks.NewMockAdRecordRepository(ctrl),
		reportingmocks.NewMockReportGenerator(ctrl),
		&config.Config{ReportDigest: config.ReportDigest{Enabled: true, CronSchedule: "não é cron"}},
	)

	assert.Error(t, svc.Start(context.Background()))
}
