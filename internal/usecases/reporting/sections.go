package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/analytics"
	"github.com/vfg2006/traffic-report-api/pkg/format"
)

const (
	HeaderExecutiveSummary = "## Resumen Ejecutivo"
	HeaderKeyMetrics       = "## Métricas Clave Simplificadas"
	HeaderAdvancedMetrics  = "## Métricas Avanzadas"
	HeaderAlerts           = "## Alertas & Reglas Aplicadas"
	HeaderFatigue          = "## Detección de Fatiga"
	HeaderDecisionMatrix   = "## Matriz de Decisión"
)

// Section é uma seção nomeada do relatório
type Section struct {
	Name  string
	Build func(series domain.Series, sink LineSink)
}

// Sections retorna as seções na ordem do relatório
func (b *Builder) Sections() []Section {
	return []Section{
		{Name: "resumen_ejecutivo", Build: b.ExecutiveSummary},
		{Name: "metricas_clave", Build: b.KeyMetrics},
		{Name: "metricas_avanzadas", Build: b.AdvancedMetrics},
		{Name: "alertas_reglas", Build: b.Alerts},
		{Name: "deteccion_fatiga", Build: b.Fatigue},
		{Name: "matriz_decision", Build: b.DecisionMatrix},
	}
}

// Render emite todas as seções, separadas por uma linha em branco
func (b *Builder) Render(series domain.Series, sink LineSink) {
	for i, s := range b.Sections() {
		if i > 0 {
			sink("")
		}
		s.Build(series, sink)
	}
}

// ExecutiveSummary emite tendência principal, alerta chave e recomendação curta
func (b *Builder) ExecutiveSummary(series domain.Series, sink LineSink) {
	b.section("resumen_ejecutivo", HeaderExecutiveSummary, series, sink, func(asOf time.Time) {
		trend := analytics.MainTrend(series, asOf, b.aggregator)
		alerts := analytics.KeyAlertCount(series, asOf)
		rules := b.rules.Evaluate(series, asOf)
		decisions := analytics.EvaluateDecisions(rules, analytics.ThumbStopRate(series, asOf))

		sink(fmt.Sprintf("- Tendencia principal: ROAS %s vs. semana anterior", format.VariationString(trend)))
		sink(fmt.Sprintf("- Alerta clave: %d anuncios con frecuencia > 6 y CTR ↓", alerts))
		sink(fmt.Sprintf("- Recomendación corta: %s", recommendation(alerts, rules, decisions)))
	})
}

func recommendation(alerts int, rules domain.RuleChecklist, decisions analytics.DecisionMatrix) string {
	switch {
	case decisions.RefreshCreative || alerts > 0:
		return "Refrescar creativos fatigados"
	case decisions.PauseAd:
		return "Pausar anuncios sin conversiones"
	case decisions.ChangeVideoHook:
		return "Cambiar el hook de los videos"
	case rules.LowActivity:
		return "Acumular más datos antes de optimizar"
	default:
		return "Mantener la estrategia actual"
	}
}

// KeyMetrics emite a tabela dos últimos 7 dias contra as duas semanas anteriores
func (b *Builder) KeyMetrics(series domain.Series, sink LineSink) {
	b.section("metricas_clave", HeaderKeyMetrics, series, sink, func(asOf time.Time) {
		cmp := analytics.ComparePeriods(series, asOf, b.aggregator)

		money := func(v float64) string { return format.Currency(v, b.currency) }
		ratio := func(v float64) string { return format.Float(v, 2) }

		rows := []struct {
			label  string
			key    domain.MetricKey
			render func(float64) string
		}{
			{label: "Spend", key: domain.MetricSpend, render: money},
			{label: "ROAS", key: domain.MetricROAS, render: ratio},
			{label: "CTR", key: domain.MetricCTR, render: format.Percent},
			{label: "CPA", key: domain.MetricCPA, render: money},
			{label: "Frecuencia", key: domain.MetricFrequency, render: ratio},
			{label: "Visitas LP", key: domain.MetricVisits, render: format.Int},
		}

		sink("| Métrica | Actual | Δ vs. 1 Semana | Δ vs. 2 Semanas |")
		sink("|---------|--------|----------------|-----------------|")
		for _, r := range rows {
			sink(fmt.Sprintf("| %s | %s | %s | %s |",
				r.label,
				format.Metric(cmp.Current.Get(r.key), r.render),
				format.VariationString(cmp.VersusOneWeek(r.key)),
				format.VariationString(cmp.VersusTwoWeeks(r.key)),
			))
		}
	})
}

// AdvancedMetrics emite o split de CTR, a taxa de thumb-stop e o delta diário de ROAS
func (b *Builder) AdvancedMetrics(series domain.Series, sink LineSink) {
	b.section("metricas_avanzadas", HeaderAdvancedMetrics, series, sink, func(asOf time.Time) {
		m := analytics.ComputeAdvancedMetrics(series, asOf, b.aggregator)

		split := format.NotAvailable
		if m.CTRFirstImpression.IsPresent() && m.CTRRepeatImpressions.IsPresent() {
			split = fmt.Sprintf("%s / %s",
				format.Metric(m.CTRFirstImpression, format.Percent),
				format.Metric(m.CTRRepeatImpressions, format.Percent),
			)
		}

		sink("| Métrica | Valor |")
		sink("|---------|-------|")
		sink(fmt.Sprintf("| CTR 1ª impresión vs. repeticiones (aprox.) | %s |", split))
		sink(fmt.Sprintf("| Thumb‑Stop Rate (3 s Views/Imp.) | %s |", format.Metric(m.ThumbStopRate, format.Percent)))
		sink(fmt.Sprintf("| Delta diario de ROAS (%%) vs. 7 d | %s |", format.VariationString(m.DailyROASDelta)))
	})
}

// Alerts emite o checklist das regras aplicadas
func (b *Builder) Alerts(series domain.Series, sink LineSink) {
	b.section("alertas_reglas", HeaderAlerts, series, sink, func(asOf time.Time) {
		rules := b.rules.Evaluate(series, asOf)

		sink(fmt.Sprintf("- [%s] Días activos < 5 o impresiones < 1 000", format.Check(rules.LowActivity)))
		sink(fmt.Sprintf("- [%s] Sin conversiones tras gasto ≥ 1.5× CPA_objetivo", format.Check(rules.NoConversionDespiteSpend)))
		sink(fmt.Sprintf("- [%s] Frecuencia > 6 y CTR ↓", format.Check(rules.FrequencyAndCTRDrop)))
	})
}

// Fatigue emite a tabela de detecção de fadiga
func (b *Builder) Fatigue(series domain.Series, sink LineSink) {
	b.section("deteccion_fatiga", HeaderFatigue, series, sink, func(asOf time.Time) {
		rows := analytics.ClassifyFatigue(series, asOf, b.recentDays)
		if len(rows) == 0 {
			sink(Placeholder)
			return
		}

		sink(fmt.Sprintf("| Anuncio | Frecuencia | CTR %d d | CTR Hist. | Fatiga |", b.recentDays))
		sink("|---------|------------|---------|-----------|--------|")
		for _, r := range rows {
			name := r.AdName
			if name == "" {
				name = r.AdID
			}
			sink(fmt.Sprintf("| %s | %s | %s | %s | %s |",
				name,
				format.Float(r.Frequency, 2),
				format.Percent(r.CTRRecent),
				format.Percent(r.CTRHistorical),
				format.YesNo(r.Fatigued),
			))
		}
	})
}

// DecisionMatrix emite as regras de decisão com o marcador de acionamento
func (b *Builder) DecisionMatrix(series domain.Series, sink LineSink) {
	b.section("matriz_decision", HeaderDecisionMatrix, series, sink, func(asOf time.Time) {
		rules := b.rules.Evaluate(series, asOf)
		d := analytics.EvaluateDecisions(rules, analytics.ThumbStopRate(series, asOf))

		sink(fmt.Sprintf("- [%s] Si (Frecuencia > 6 Y CTR ↓) → Refrescar creativo", format.Check(d.RefreshCreative)))
		sink(fmt.Sprintf("- [%s] Si (CPA > 1.5×CPA_obj Y compras = 0) → Pausar anuncio", format.Check(d.PauseAd)))
		sink(fmt.Sprintf("- [%s] Si (TSR < 20 %%) → Cambiar hook de video", format.Check(d.ChangeVideoHook)))
	})
}
