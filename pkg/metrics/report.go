// Package metrics registra as métricas Prometheus da geração de relatórios.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusError   = "error"
)

// ReportMetrics agrupa os coletores usados pelo serviço de relatórios
type ReportMetrics struct {
	ReportsGenerated    *prometheus.CounterVec
	PlaceholderSections *prometheus.CounterVec
	GenerationDuration  *prometheus.HistogramVec
	FatiguedAds         *prometheus.GaugeVec
}

// NewReportMetrics cria e registra os coletores. Um registrador nulo deixa os coletores fora de qualquer registro.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	m := &ReportMetrics{
		ReportsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traffic_report_generated_total",
				Help: "Total de relatórios gerados por origem e status",
			},
			[]string{"source", "status"},
		),

		PlaceholderSections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traffic_report_placeholder_sections_total",
				Help: "Seções emitidas com o texto de dados insuficientes",
			},
			[]string{"section"},
		),

		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traffic_report_generation_duration_seconds",
				Help:    "Duração da geração do relatório em segundos",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"source"},
		),

		FatiguedAds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "traffic_report_fatigued_ads",
				Help: "Anúncios marcados com fadiga no último relatório da conta",
			},
			[]string{"account_id"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.ReportsGenerated,
			m.PlaceholderSections,
			m.GenerationDuration,
			m.FatiguedAds,
		)
	}

	return m
}

// ObserveReport registra status e duração de uma geração
func (m *ReportMetrics) ObserveReport(source, status string, startedAt time.Time) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(source, status).Inc()
	m.GenerationDuration.WithLabelValues(source).Observe(time.Since(startedAt).Seconds())
}

// ObservePlaceholder conta uma seção sem dados suficientes
func (m *ReportMetrics) ObservePlaceholder(section string) {
	if m == nil {
		return
	}
	m.PlaceholderSections.WithLabelValues(section).Inc()
}

// SetFatiguedAds atualiza o total de anúncios com fadiga da conta
func (m *ReportMetrics) SetFatiguedAds(accountID string, count int) {
	if m == nil {
		return
	}
	m.FatiguedAds.WithLabelValues(accountID).Set(float64(count))
}
