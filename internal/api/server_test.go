package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-report-api/internal/config"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/traffic-report-api/pkg/metrics"
	"github.com/vfg2006/traffic-report-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

const secret = "segredo-de-teste"

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportGenerator(ctrl)
	reports.EXPECT().
		Generate(gomock.Any(), "act_1", gomock.Any()).
		Return(&domain.Report{ID: "abc", Lines: []string{"## Resumen Ejecutivo"}}, nil).
		AnyTimes()

	reg := prometheus.NewRegistry()
	metrics.NewReportMetrics(reg)

	cfg := &config.Config{Auth: config.Auth{Enabled: true, Secret: secret}}
	h := NewHandler(cfg, Dependencies{Reports: reports, Metrics: reg})

	token, err := middleware.SignToken(secret, domain.Claims{UserAccounts: []string{"act_1"}}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{name: "healthcheck sem token", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "metrics sem token", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "relatório sem token", method: http.MethodGet, path: "/v1/adAccount/act_1/report", wantStatus: http.StatusUnauthorized},
		{name: "relatório autorizado", method: http.MethodGet, path: "/v1/adAccount/act_1/report", token: token, wantStatus: http.StatusOK, wantBody: "## Resumen Ejecutivo"},
		{name: "conta não vinculada", method: http.MethodGet, path: "/v1/adAccount/act_2/report", token: token, wantStatus: http.StatusForbidden},
		{name: "cron exige operador", method: http.MethodGet, path: "/v1/cron/status", token: token, wantStatus: http.StatusForbidden},
		{name: "rota inexistente", method: http.MethodGet, path: "/v1/nada", token: token, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody), rec.Body.String())
			}
		})
	}
}

func TestNew_RequiresReports(t *testing.T) {
	_, err := New(&config.Config{}, Dependencies{})
	assert.Error(t, err)
}
