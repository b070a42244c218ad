package domain

// MetricKey identifica uma métrica agregada de um período
type MetricKey string

const (
	MetricSpend       MetricKey = "Inversion"
	MetricROAS        MetricKey = "ROAS"
	MetricCTR         MetricKey = "CTR"
	MetricCPA         MetricKey = "CPA"
	MetricFrequency   MetricKey = "Frecuencia"
	MetricVisits      MetricKey = "Visitas"
	MetricPurchases   MetricKey = "Compras"
	MetricThumbStop   MetricKey = "RV3_%"
	MetricImpressions MetricKey = "Impresiones"
	MetricClicks      MetricKey = "Clics"
	MetricRevenue     MetricKey = "Valor"
	MetricDailySpend  MetricKey = "Inversion_Diaria"
)

// MetricValue é um valor opcional: Present(v) ou Absent().
// A ausência significa "sem dados" e nunca deve ser lida como zero.
type MetricValue struct {
	value   float64
	present bool
}

// Present cria um valor presente
func Present(v float64) MetricValue {
	return MetricValue{value: v, present: true}
}

// Absent cria um valor ausente
func Absent() MetricValue {
	return MetricValue{}
}

// Get retorna o valor e se ele está presente
func (m MetricValue) Get() (float64, bool) {
	return m.value, m.present
}

// IsPresent indica se existe valor
func (m MetricValue) IsPresent() bool {
	return m.present
}

// OrZero retorna o valor ou zero. Usar apenas onde a regra define explicitamente esse padrão.
func (m MetricValue) OrZero() float64 {
	if !m.present {
		return 0
	}
	return m.value
}

// PeriodMetrics é o resultado da agregação de uma janela
type PeriodMetrics map[MetricKey]MetricValue

// Get retorna o valor da métrica, ou Absent() quando a chave não existe
func (p PeriodMetrics) Get(key MetricKey) MetricValue {
	if p == nil {
		return Absent()
	}
	v, ok := p[key]
	if !ok {
		return Absent()
	}
	return v
}
