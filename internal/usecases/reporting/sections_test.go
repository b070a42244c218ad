package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-report-api/internal/domain"
)

func TestSections_EmptySeries(t *testing.T) {
	b := NewBuilder(nil)

	headers := map[string]string{
		"resumen_ejecutivo":  HeaderExecutiveSummary,
		"metricas_clave":     HeaderKeyMetrics,
		"metricas_avanzadas": HeaderAdvancedMetrics,
		"alertas_reglas":     HeaderAlerts,
		"deteccion_fatiga":   HeaderFatigue,
		"matriz_decision":    HeaderDecisionMatrix,
	}

	for _, s := range b.Sections() {
		t.Run(s.Name, func(t *testing.T) {
			lines := render(b, s.Build, domain.Series{})
			assert.Equal(t, []string{headers[s.Name], Placeholder}, lines)
		})
	}
}

func TestRender_Order(t *testing.T) {
	b := NewBuilder(nil)
	buf := NewBufferSink()

	b.Render(nil, buf.Sink())

	assert.Equal(t, []string{
		HeaderExecutiveSummary, Placeholder, "",
		HeaderKeyMetrics, Placeholder, "",
		HeaderAdvancedMetrics, Placeholder, "",
		HeaderAlerts, Placeholder, "",
		HeaderFatigue, Placeholder, "",
		HeaderDecisionMatrix, Placeholder,
	}, buf.Lines())
}

func TestExecutiveSummary(t *testing.T) {
	b := NewBuilder(nil, WithAsOf(day(14)))

	lines := render(b, b.ExecutiveSummary, sampleSeries())

	require.Len(t, lines, 4)
	assert.Equal(t, HeaderExecutiveSummary, lines[0])
	assert.Equal(t, "- Tendencia principal: ROAS ↓ 42.50 % vs. semana anterior", lines[1])
	assert.Equal(t, "- Alerta clave: 0 anuncios con frecuencia > 6 y CTR ↓", lines[2])
	assert.Equal(t, "- Recomendación corta: Acumular más datos antes de optimizar", lines[3])
}

func TestExecutiveSummary_DefaultsToLatestDate(t *testing.T) {
	withAsOf := NewBuilder(nil, WithAsOf(day(14)))
	withoutAsOf := NewBuilder(nil)

	assert.Equal(t,
		render(withAsOf, withAsOf.ExecutiveSummary, sampleSeries()),
		render(withoutAsOf, withoutAsOf.ExecutiveSummary, sampleSeries()),
	)
}

func TestKeyMetrics(t *testing.T) {
	b := NewBuilder(nil, WithAsOf(day(14)), WithCurrency("€"))

	lines := render(b, b.KeyMetrics, sampleSeries())

	require.Len(t, lines, 9)
	assert.Equal(t, HeaderKeyMetrics, lines[0])
	// a janela de duas semanas atrás não tem dados
	assert.Equal(t, "| Spend | €105.00 | = 0.00 % | N/D |", lines[3])
	assert.Equal(t, "| ROAS | 1.53 | ↓ 42.50 % | N/D |", lines[4])
	// o CTR dos últimos 7 dias cai de 20 % para 8.33 %
	assert.Equal(t, "| CTR | 8.33 % | ↓ 58.33 % | N/D |", lines[5])
	assert.True(t, strings.HasPrefix(lines[8], "| Visitas LP | 9 |"))
}

func TestAdvancedMetrics(t *testing.T) {
	b := NewBuilder(nil, WithAsOf(day(14)))

	lines := render(b, b.AdvancedMetrics, sampleSeries())

	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "(aprox.)")
	assert.Equal(t, "| Thumb‑Stop Rate (3 s Views/Imp.) | 50.00 % |", lines[4])
}

func TestAlerts(t *testing.T) {
	b := NewBuilder(nil, WithAsOf(day(14)))

	lines := render(b, b.Alerts, sampleSeries())

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "- [✔︎]"), "baixa atividade deve ser acionada")
	assert.True(t, strings.HasPrefix(lines[2], "- [✖︎]"))
	assert.True(t, strings.HasPrefix(lines[3], "- [✖︎]"))
}

func TestFatigue(t *testing.T) {
	b := NewBuilder(nil, WithAsOf(day(14)))

	lines := render(b, b.Fatigue, sampleSeries())

	require.Len(t, lines, 5)
	assert.Equal(t, "| Anuncio | Frecuencia | CTR 3 d | CTR Hist. | Fatiga |", lines[1])
	assert.Equal(t, "| A1 | 5.00 | 10.00 % | 15.00 % | No |", lines[3])
	assert.Equal(t, "| A2 | 5.00 | 5.00 % | 12.50 % | No |", lines[4])
}

func TestFatigue_NoJoinedAds(t *testing.T) {
	// alcance zero deixa a frequência indefinida para todos os anúncios
	series := domain.Series{
		{Date: day(1), AdID: "A", Impressions: 10, Clicks: 1},
	}
	b := NewBuilder(nil)

	lines := render(b, b.Fatigue, series)

	assert.Equal(t, []string{HeaderFatigue, Placeholder}, lines)
}

func TestDecisionMatrix(t *testing.T) {
	b := NewBuilder(nil, WithAsOf(day(14)))

	lines := render(b, b.DecisionMatrix, sampleSeries())

	require.Len(t, lines, 4)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "- [✖︎]"), line)
	}
}

func TestSection_RecoversFromPanic(t *testing.T) {
	b := NewBuilder(panicAggregator{})

	lines := render(b, b.KeyMetrics, sampleSeries())

	assert.Equal(t, []string{HeaderKeyMetrics, Placeholder}, lines)
}

func TestWithTargetCPA_TriggersPause(t *testing.T) {
	// gasto de 20 sem compras e CPA objetivo 10: 20 ≥ 1.5 × 10
	series := domain.Series{}
	for i := 1; i <= 7; i++ {
		series = append(series, domain.DailyAdRecord{
			Date: day(i), AdID: "A", Spend: 20.0 / 7, Impressions: 500, Reach: 250, Clicks: 5,
			VideoViews3s: 200,
		})
	}

	b := NewBuilder(nil, WithTargetCPA(10))
	lines := render(b, b.DecisionMatrix, series)

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "- [✔︎]"), lines[2])
}
