package analytics

import (
	"math"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

// Compare compara duas métricas de período. Qualquer lado ausente resulta em variação indisponível.
func Compare(current, previous domain.MetricValue) domain.Variation {
	cur, ok := current.Get()
	if !ok {
		return domain.Unavailable()
	}

	prev, ok := previous.Get()
	if !ok {
		return domain.Unavailable()
	}

	return CompareValues(cur, prev)
}

// CompareValues calcula (current - previous) / |previous| * 100.
// Com base zero: 0 -> 0 é estável; qualquer outro valor é indisponível.
func CompareValues(current, previous float64) domain.Variation {
	if !isFinite(current) || !isFinite(previous) {
		return domain.Unavailable()
	}

	if previous == 0 {
		if current == 0 {
			return domain.Delta(0, domain.DirectionFlat)
		}
		return domain.Unavailable()
	}

	pct := (current - previous) / math.Abs(previous) * 100

	switch {
	case pct > 0:
		return domain.Delta(pct, domain.DirectionUp)
	case pct < 0:
		return domain.Delta(pct, domain.DirectionDown)
	default:
		return domain.Delta(0, domain.DirectionFlat)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
