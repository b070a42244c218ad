package reporting

import (
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

var baseDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseDate.AddDate(0, 0, n-1)
}

// sampleSeries tem 14 dias e dois anúncios com frequência 5; o CTR cai na segunda semana
func sampleSeries() domain.Series {
	series := make(domain.Series, 0, 28)
	for i := 1; i <= 14; i++ {
		d := day(i)

		purchases := 0.0
		if d.Day()%3 == 0 {
			purchases = 1
		}

		a1Clicks, a1Value := 1.0, 15.0
		a2Clicks, a2Value := 0.25, 8.0
		if i <= 7 {
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

// panicAggregator simula um agregador externo com defeito
type panicAggregator struct{}

func (panicAggregator) Aggregate(domain.Series, int) domain.PeriodMetrics {
	panic("agregador indisponível")
}

func render(b *Builder, build func(domain.Series, LineSink), series domain.Series) []string {
	buf := NewBufferSink()
	build(series, buf.Sink())
	return buf.Lines()
}
