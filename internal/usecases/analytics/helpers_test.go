package analytics

import (
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

var baseDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// day retorna a data do n-ésimo dia da amostra (1 = 01/06/2024)
func day(n int) time.Time {
	return baseDate.AddDate(0, 0, n-1)
}

// sampleSeries reproduz a amostra de 14 dias com dois anúncios:
// A1 tem frequência 5 e CTR de 20% na primeira semana e 10% na segunda;
// A2 tem frequência 5 e CTR de 20% e depois 5%.
func sampleSeries() domain.Series {
	series := make(domain.Series, 0, 28)
	for i := 1; i <= 14; i++ {
		firstWeek := i <= 7
		d := day(i)

		purchases := 0.0
		if d.Day()%3 == 0 {
			purchases = 1
		}

		a1Clicks, a1Value := 1.0, 15.0
		a2Clicks, a2Value := 0.25, 8.0
		if firstWeek {
			a1Clicks, a1Value = 2, 20
			a2Clicks, a2Value = 1, 20
		}

		series = append(series,
			domain.DailyAdRecord{
				Date: d, AdID: "A1", Spend: 10, Value: a1Value, Impressions: 10, Reach: 2,
				Clicks: a1Clicks, Visits: a1Clicks, Purchases: purchases, VideoViews3s: 5,
			},
			domain.DailyAdRecord{
				Date: d, AdID: "A2", Spend: 5, Value: a2Value, Impressions: 5, Reach: 1,
				Clicks: a2Clicks, Visits: a2Clicks, Purchases: purchases, VideoViews3s: 2.5,
			},
		)
	}
	return series
}

// fixedAggregator devolve sempre as mesmas métricas, para testar as regras isoladamente
type fixedAggregator struct {
	current  domain.PeriodMetrics
	previous domain.PeriodMetrics
	calls    int
}

func (f *fixedAggregator) Aggregate(rows domain.Series, windowDays int) domain.PeriodMetrics {
	f.calls++
	if f.calls%2 == 1 {
		return f.current
	}
	return f.previous
}
