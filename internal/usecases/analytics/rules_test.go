package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/traffic-report-api/internal/domain"
)

func TestEvaluateRules_Sample(t *testing.T) {
	got := EvaluateRules(sampleSeries(), day(14), NewSumAggregator())

	// 210 impressões no total
	assert.True(t, got.LowActivity)
	// houve compras nos últimos 7 dias
	assert.False(t, got.NoConversionDespiteSpend)
	// frequência 5 não ultrapassa 6, mesmo com o CTR caindo de 20% para 8.33%
	assert.False(t, got.FrequencyAndCTRDrop)
}

func TestEvaluateRules_LowActivity(t *testing.T) {
	tests := []struct {
		name   string
		series domain.Series
		want   bool
	}{
		{name: "menos de 5 dias com muitas impressões", series: adDays("A", 1, 4, 10000, 5000, 10), want: true},
		{name: "muitos dias com poucas impressões", series: adDays("A", 1, 10, 50, 25, 1), want: true},
		{name: "5 dias e 1000 impressões", series: adDays("A", 1, 5, 200, 100, 1), want: false},
		{name: "série vazia", series: domain.Series{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRules(tt.series, day(14), NewSumAggregator())
			assert.Equal(t, tt.want, got.LowActivity)
		})
	}
}

func TestEvaluateRules_NoConversionDespiteSpend(t *testing.T) {
	tests := []struct {
		name    string
		current domain.PeriodMetrics
		want    bool
	}{
		{
			name: "sem compras e gasto acima de 1.5x CPA",
			current: domain.PeriodMetrics{
				domain.MetricPurchases: domain.Present(0),
				domain.MetricSpend:     domain.Present(100),
				domain.MetricCPA:       domain.Present(50),
			},
			want: true,
		},
		{
			name: "gasto exatamente 1.5x CPA dispara",
			current: domain.PeriodMetrics{
				domain.MetricPurchases: domain.Present(0),
				domain.MetricSpend:     domain.Present(75),
				domain.MetricCPA:       domain.Present(50),
			},
			want: true,
		},
		{
			name: "gasto abaixo de 1.5x CPA",
			current: domain.PeriodMetrics{
				domain.MetricPurchases: domain.Present(0),
				domain.MetricSpend:     domain.Present(60),
				domain.MetricCPA:       domain.Present(50),
			},
			want: false,
		},
		{
			name: "CPA zero nunca dispara",
			current: domain.PeriodMetrics{
				domain.MetricPurchases: domain.Present(0),
				domain.MetricSpend:     domain.Present(0),
				domain.MetricCPA:       domain.Present(0),
			},
			want: false,
		},
		{
			name: "CPA ausente nunca dispara",
			current: domain.PeriodMetrics{
				domain.MetricPurchases: domain.Present(0),
				domain.MetricSpend:     domain.Present(500),
			},
			want: false,
		},
		{
			name: "com compras não dispara",
			current: domain.PeriodMetrics{
				domain.MetricPurchases: domain.Present(1),
				domain.MetricSpend:     domain.Present(500),
				domain.MetricCPA:       domain.Present(50),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &fixedAggregator{current: tt.current, previous: domain.PeriodMetrics{}}
			got := EvaluateRules(sampleSeries(), day(14), agg)
			assert.Equal(t, tt.want, got.NoConversionDespiteSpend)
		})
	}
}

func TestRuleEvaluator_TargetCPA(t *testing.T) {
	// 7 dias sem compras e com 10 de gasto por dia
	series := adDays("A", 8, 14, 100, 50, 2)

	withoutTarget := NewRuleEvaluator(NewSumAggregator()).Evaluate(series, day(14))
	assert.False(t, withoutTarget.NoConversionDespiteSpend, "sem compras o CPA do período é ausente")

	evaluator := &RuleEvaluator{Aggregator: NewSumAggregator(), TargetCPA: domain.Present(20)}
	assert.True(t, evaluator.Evaluate(series, day(14)).NoConversionDespiteSpend)

	evaluator.TargetCPA = domain.Present(100)
	assert.False(t, evaluator.Evaluate(series, day(14)).NoConversionDespiteSpend)
}

func TestEvaluateRules_FrequencyAndCTRDrop(t *testing.T) {
	tests := []struct {
		name   string
		series domain.Series
		want   bool
	}{
		{
			name:   "frequência 8 e CTR caindo de 5% para 2%",
			series: append(adDays("A", 1, 7, 80, 10, 4), adDays("A", 8, 14, 80, 10, 1.6)...),
			want:   true,
		},
		{
			name:   "frequência 8 e CTR subindo",
			series: append(adDays("A", 1, 7, 80, 10, 1.6), adDays("A", 8, 14, 80, 10, 4)...),
			want:   false,
		},
		{
			name:   "frequência exatamente 6 não dispara",
			series: append(adDays("A", 1, 7, 60, 10, 3), adDays("A", 8, 14, 60, 10, 1)...),
			want:   false,
		},
		{
			name:   "sem janela anterior não dispara",
			series: adDays("A", 8, 14, 80, 10, 1),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRules(tt.series, day(14), NewSumAggregator())
			assert.Equal(t, tt.want, got.FrequencyAndCTRDrop)
		})
	}
}

func TestEvaluateRules_Independent(t *testing.T) {
	// poucas impressões e queda de CTR com frequência alta: as duas regras disparam juntas
	series := append(adDays("A", 1, 7, 8, 1, 1), adDays("A", 8, 14, 8, 1, 0.5)...)

	got := EvaluateRules(series, day(14), NewSumAggregator())

	assert.True(t, got.LowActivity)
	assert.True(t, got.FrequencyAndCTRDrop)
	assert.False(t, got.NoConversionDespiteSpend)
	assert.True(t, got.AnyTriggered())
}
