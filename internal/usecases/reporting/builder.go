package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/analytics"
)

// Placeholder é a linha emitida por uma seção quando não há dados suficientes
const Placeholder = "Datos insuficientes para esta sección."

const defaultCurrency = "$"

// Builder monta as seções do relatório a partir de uma série somente leitura.
// Cada seção recalcula as janelas de que precisa; nenhuma depende de outra.
type Builder struct {
	aggregator analytics.PeriodAggregator
	rules      *analytics.RuleEvaluator
	asOf       *time.Time
	currency   string
	recentDays int
}

// BuilderOption configura o Builder
type BuilderOption func(b *Builder)

// WithAsOf fixa a data de referência. Sem ela, a maior data da série é usada.
func WithAsOf(asOf time.Time) BuilderOption {
	return func(b *Builder) {
		d := domain.NormalizeDate(asOf)
		b.asOf = &d
	}
}

// WithCurrency define o símbolo monetário das colunas de valores
func WithCurrency(symbol string) BuilderOption {
	return func(b *Builder) {
		if symbol != "" {
			b.currency = symbol
		}
	}
}

// WithRecentWindowDays define a janela recente da tabela de fadiga
func WithRecentWindowDays(days int) BuilderOption {
	return func(b *Builder) {
		if days > 0 {
			b.recentDays = days
		}
	}
}

// WithTargetCPA define o CPA objetivo usado pela regra de conversão
func WithTargetCPA(cpa float64) BuilderOption {
	return func(b *Builder) {
		if cpa > 0 {
			b.rules.TargetCPA = domain.Present(cpa)
		}
	}
}

// NewBuilder cria o Builder. Um agregador nulo é substituído pelo agregador padrão.
func NewBuilder(aggregator analytics.PeriodAggregator, opts ...BuilderOption) *Builder {
	if aggregator == nil {
		aggregator = analytics.NewSumAggregator()
	}

	b := &Builder{
		aggregator: aggregator,
		rules:      analytics.NewRuleEvaluator(aggregator),
		currency:   defaultCurrency,
		recentDays: analytics.DefaultRecentWindowDays,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// anchor retorna a data de referência das janelas. ok é falso para série vazia.
func (b *Builder) anchor(series domain.Series) (time.Time, bool) {
	latest, ok := series.LatestDate()
	if !ok {
		return time.Time{}, false
	}

	if b.asOf != nil {
		return *b.asOf, true
	}

	return latest, true
}

// section emite o cabeçalho e delega o corpo. Série vazia ou pânico no corpo viram o placeholder.
func (b *Builder) section(name, header string, series domain.Series, sink LineSink, body func(asOf time.Time)) {
	sink(header)

	asOf, ok := b.anchor(series)
	if !ok {
		logrus.WithField("section", name).Debug("Série vazia, emitindo placeholder")
		sink(Placeholder)
		return
	}

	defer func() {
		if err := recover(); err != nil {
			logrus.WithFields(logrus.Fields{
				"section": name,
				"error":   err,
			}).Error("Erro ao montar seção do relatório, emitindo placeholder")
			sink(Placeholder)
		}
	}()

	body(asOf)
}
