// Package format contém os formatadores usados apenas no momento de emitir as linhas do relatório.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

// NotAvailable é o texto exibido quando um valor não pode ser calculado
const NotAvailable = "N/D"

// Float formata um número com a quantidade de casas decimais informada
func Float(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Percent formata um valor já em pontos percentuais
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f %%", v)
}

// Int formata um número arredondado para inteiro com separador de milhar
func Int(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return groupThousands(strconv.FormatInt(int64(math.Round(v)), 10))
}

// Currency formata um valor monetário com o símbolo informado
func Currency(v float64, symbol string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := math.Floor(v)
	cents := math.Round((v - whole) * 100)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, groupThousands(strconv.FormatInt(int64(whole), 10)), int64(cents))
}

// Metric formata um MetricValue, retornando N/D quando ausente
func Metric(v domain.MetricValue, render func(float64) string) string {
	value, ok := v.Get()
	if !ok {
		return NotAvailable
	}
	return render(value)
}

// SafeDivPercent calcula numerator / denominator * 100. ok é falso quando o denominador é zero.
func SafeDivPercent(numerator, denominator float64) (float64, bool) {
	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator * 100, true
}

// VariationString converte uma variação em texto legível, ex.: "↑ 25.00 %"
func VariationString(v domain.Variation) string {
	if !v.Available {
		return NotAvailable
	}

	switch v.Direction {
	case domain.DirectionUp:
		return fmt.Sprintf("↑ %.2f %%", math.Abs(v.Percentage))
	case domain.DirectionDown:
		return fmt.Sprintf("↓ %.2f %%", math.Abs(v.Percentage))
	default:
		return fmt.Sprintf("= %.2f %%", 0.0)
	}
}

// Check retorna o marcador do checklist
func Check(triggered bool) string {
	if triggered {
		return "✔︎"
	}
	return "✖︎"
}

// YesNo retorna "Sí" ou "No"
func YesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

func groupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
