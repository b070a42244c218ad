package analytics

import (
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

const (
	LowActivityMinDays          = 5
	LowActivityMinImpressions   = 1000.0
	NoConversionSpendMultiplier = 1.5
	RuleWindowDays              = 7
)

// RuleEvaluator aplica as regras de alerta sobre a série
type RuleEvaluator struct {
	Aggregator PeriodAggregator
	// TargetCPA, quando presente e positivo, substitui o CPA do próprio período como base da regra de conversão
	TargetCPA domain.MetricValue
}

// NewRuleEvaluator cria um avaliador usando o CPA do próprio período
func NewRuleEvaluator(agg PeriodAggregator) *RuleEvaluator {
	return &RuleEvaluator{Aggregator: agg}
}

// EvaluateRules avalia as regras com o agregador informado e sem CPA objetivo
func EvaluateRules(series domain.Series, asOf time.Time, agg PeriodAggregator) domain.RuleChecklist {
	return NewRuleEvaluator(agg).Evaluate(series, asOf)
}

// Evaluate avalia as três regras de forma independente
func (e *RuleEvaluator) Evaluate(series domain.Series, asOf time.Time) domain.RuleChecklist {
	current := AggregateWindow(e.Aggregator, series, asOf, RuleWindowDays, 0)
	previous := AggregateWindow(e.Aggregator, series, asOf, RuleWindowDays, RuleWindowDays)

	return domain.RuleChecklist{
		LowActivity:              lowActivity(series),
		NoConversionDespiteSpend: e.noConversionDespiteSpend(current),
		FrequencyAndCTRDrop:      frequencyAndCTRDrop(current, previous),
	}
}

// lowActivity considera a série inteira, sem janela
func lowActivity(series domain.Series) bool {
	return series.DistinctDates() < LowActivityMinDays || series.TotalImpressions() < LowActivityMinImpressions
}

// noConversionDespiteSpend nunca dispara sem uma base de CPA positiva
func (e *RuleEvaluator) noConversionDespiteSpend(current domain.PeriodMetrics) bool {
	baseline := current.Get(domain.MetricCPA)
	if target, ok := e.TargetCPA.Get(); ok && target > 0 {
		baseline = e.TargetCPA
	}

	cpa, ok := baseline.Get()
	if !ok || cpa <= 0 {
		return false
	}

	purchases, ok := current.Get(domain.MetricPurchases).Get()
	if !ok || purchases != 0 {
		return false
	}

	spend, ok := current.Get(domain.MetricSpend).Get()
	if !ok {
		return false
	}

	return spend >= NoConversionSpendMultiplier*cpa
}

// frequencyAndCTRDrop compara os últimos 7 dias com os 7 dias imediatamente anteriores, sem sobreposição
func frequencyAndCTRDrop(current, previous domain.PeriodMetrics) bool {
	frequency, ok := current.Get(domain.MetricFrequency).Get()
	if !ok || frequency <= FatigueFrequencyThreshold {
		return false
	}

	currentCTR, ok := current.Get(domain.MetricCTR).Get()
	if !ok {
		return false
	}

	previousCTR, ok := previous.Get(domain.MetricCTR).Get()
	if !ok {
		return false
	}

	return currentCTR < previousCTR
}
