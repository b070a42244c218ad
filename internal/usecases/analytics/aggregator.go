package analytics

import (
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

// PeriodAggregator reduz as linhas de uma janela a um mapa de métricas nomeadas
type PeriodAggregator interface {
	Aggregate(rows domain.Series, windowDays int) domain.PeriodMetrics
}

// SumAggregator é o agregador padrão: soma os contadores e deriva as razões do período
type SumAggregator struct{}

// NewSumAggregator cria o agregador padrão
func NewSumAggregator() *SumAggregator {
	return &SumAggregator{}
}

// Aggregate agrega as linhas. Uma janela sem linhas produz um mapa vazio (todas as métricas ausentes).
// Razões com denominador zero ficam ausentes.
func (a *SumAggregator) Aggregate(rows domain.Series, windowDays int) domain.PeriodMetrics {
	metrics := domain.PeriodMetrics{}
	if len(rows) == 0 {
		return metrics
	}

	var spend, value, impressions, clicks, visits, purchases, views3s float64
	for _, r := range rows {
		spend += r.Spend
		value += r.Value
		impressions += r.Impressions
		clicks += r.Clicks
		visits += r.Visits
		purchases += r.Purchases
		views3s += r.VideoViews3s
	}

	metrics[domain.MetricSpend] = domain.Present(spend)
	metrics[domain.MetricRevenue] = domain.Present(value)
	metrics[domain.MetricImpressions] = domain.Present(impressions)
	metrics[domain.MetricClicks] = domain.Present(clicks)
	metrics[domain.MetricVisits] = domain.Present(visits)
	metrics[domain.MetricPurchases] = domain.Present(purchases)

	if spend > 0 {
		metrics[domain.MetricROAS] = domain.Present(value / spend)
	}

	if impressions > 0 {
		metrics[domain.MetricCTR] = domain.Present(clicks / impressions * 100)
		metrics[domain.MetricThumbStop] = domain.Present(views3s / impressions * 100)
	}

	if purchases > 0 {
		metrics[domain.MetricCPA] = domain.Present(spend / purchases)
	}

	// Frecuencia é a média das frequências de cada linha, a mesma estatística usada pelas regras
	if frequency, ok := meanRowFrequency(rows); ok {
		metrics[domain.MetricFrequency] = domain.Present(frequency)
	}

	if windowDays > 0 {
		metrics[domain.MetricDailySpend] = domain.Present(spend / float64(windowDays))
	}

	return metrics
}

// AggregateWindow seleciona a janela e a agrega
func AggregateWindow(agg PeriodAggregator, series domain.Series, asOf time.Time, lengthDays, offsetDays int) domain.PeriodMetrics {
	return agg.Aggregate(TrailingRows(series, asOf, lengthDays, offsetDays), lengthDays)
}
