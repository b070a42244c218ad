package analytics

import (
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

const (
	TrendWindowDays = 7
	// ThumbStopMinRate é a taxa mínima de thumb-stop (%) antes de recomendar a troca do gancho do vídeo
	ThumbStopMinRate = 20.0
)

// PeriodComparison guarda a semana atual e as duas semanas anteriores, sem sobreposição
type PeriodComparison struct {
	Current     domain.PeriodMetrics
	OneWeekAgo  domain.PeriodMetrics
	TwoWeeksAgo domain.PeriodMetrics
}

// ComparePeriods agrega os últimos 7 dias e as janelas de 7 dias com deslocamento de 7 e 14 dias
func ComparePeriods(series domain.Series, asOf time.Time, agg PeriodAggregator) PeriodComparison {
	return PeriodComparison{
		Current:     AggregateWindow(agg, series, asOf, TrendWindowDays, 0),
		OneWeekAgo:  AggregateWindow(agg, series, asOf, TrendWindowDays, TrendWindowDays),
		TwoWeeksAgo: AggregateWindow(agg, series, asOf, TrendWindowDays, 2*TrendWindowDays),
	}
}

// VersusOneWeek compara a métrica atual com a semana anterior
func (p PeriodComparison) VersusOneWeek(key domain.MetricKey) domain.Variation {
	return Compare(p.Current.Get(key), p.OneWeekAgo.Get(key))
}

// VersusTwoWeeks compara a métrica atual com a janela de duas semanas atrás
func (p PeriodComparison) VersusTwoWeeks(key domain.MetricKey) domain.Variation {
	return Compare(p.Current.Get(key), p.TwoWeeksAgo.Get(key))
}

// MainTrend é a variação do ROAS dos últimos 7 dias contra os 7 dias anteriores
func MainTrend(series domain.Series, asOf time.Time, agg PeriodAggregator) domain.Variation {
	return ComparePeriods(series, asOf, agg).VersusOneWeek(domain.MetricROAS)
}

// AdvancedMetrics são as métricas derivadas da seção de métricas avançadas
type AdvancedMetrics struct {
	// CTRFirstImpression e CTRRepeatImpressions são uma aproximação (probabilidade de clique
	// uniforme entre repetições), não uma medição
	CTRFirstImpression   domain.MetricValue
	CTRRepeatImpressions domain.MetricValue
	ThumbStopRate        domain.MetricValue
	DailyROASDelta       domain.Variation
}

// ComputeAdvancedMetrics calcula as métricas avançadas sobre os últimos 7 dias
func ComputeAdvancedMetrics(series domain.Series, asOf time.Time, agg PeriodAggregator) AdvancedMetrics {
	week := AggregateWindow(agg, series, asOf, TrendWindowDays, 0)

	out := AdvancedMetrics{
		CTRFirstImpression:   domain.Absent(),
		CTRRepeatImpressions: domain.Absent(),
		ThumbStopRate:        ThumbStopRate(series, asOf),
		DailyROASDelta:       DailyROASDelta(series, asOf, agg),
	}

	ctr, okCTR := week.Get(domain.MetricCTR).Get()
	frequency, okFreq := week.Get(domain.MetricFrequency).Get()
	if okCTR && okFreq {
		if first, repeat, ok := CTRSplit(ctr, frequency); ok {
			out.CTRFirstImpression = domain.Present(first)
			out.CTRRepeatImpressions = domain.Present(repeat)
		}
	}

	return out
}

// CTRSplit divide o CTR entre primeira impressão (ctr / frequência) e repetições (o restante)
func CTRSplit(ctr, frequency float64) (first float64, repeat float64, ok bool) {
	if frequency <= 0 || !isFinite(ctr) || !isFinite(frequency) {
		return 0, 0, false
	}

	first = ctr / frequency
	return first, ctr - first, true
}

// ThumbStopRate é sum(visualizações de 3s) / sum(impressões) * 100 nos últimos 7 dias
func ThumbStopRate(series domain.Series, asOf time.Time) domain.MetricValue {
	week := TrailingRows(series, asOf, TrendWindowDays, 0)

	impressions := week.TotalImpressions()
	if impressions <= 0 {
		return domain.Absent()
	}

	return domain.Present(week.TotalVideoViews3s() / impressions * 100)
}

// DailyROASDelta compara o ROAS do último dia com o ROAS dos últimos 7 dias
func DailyROASDelta(series domain.Series, asOf time.Time, agg PeriodAggregator) domain.Variation {
	lastDay := AggregateWindow(agg, series, asOf, 1, 0)
	week := AggregateWindow(agg, series, asOf, TrendWindowDays, 0)

	return Compare(lastDay.Get(domain.MetricROAS), week.Get(domain.MetricROAS))
}

// DecisionMatrix é o resultado das regras de decisão exibidas ao final do relatório
type DecisionMatrix struct {
	RefreshCreative bool `json:"refresh_creative"`
	PauseAd         bool `json:"pause_ad"`
	ChangeVideoHook bool `json:"change_video_hook"`
}

// EvaluateDecisions deriva a matriz de decisão das regras e da taxa de thumb-stop
func EvaluateDecisions(rules domain.RuleChecklist, thumbStop domain.MetricValue) DecisionMatrix {
	rate, ok := thumbStop.Get()

	return DecisionMatrix{
		RefreshCreative: rules.FrequencyAndCTRDrop,
		PauseAd:         rules.NoConversionDespiteSpend,
		ChangeVideoHook: ok && rate < ThumbStopMinRate,
	}
}
