package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeries_DistinctDates(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name   string
		series Series
		want   int
	}{
		{
			name:   "série vazia",
			series: Series{},
			want:   0,
		},
		{
			name: "vários anúncios no mesmo dia",
			series: Series{
				{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AdID: "A1"},
				{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AdID: "A2"},
				{Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), AdID: "A1"},
			},
			want: 2,
		},
		{
			name: "horário e fuso diferentes no mesmo dia do calendário",
			series: Series{
				{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AdID: "A1"},
				{Date: time.Date(2024, 6, 1, 23, 30, 0, 0, saoPaulo), AdID: "A2"},
				{Date: time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC), AdID: "A3"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.series.DistinctDates())
		})
	}
}

func TestSeries_DistinctDatesMatchesWindowing(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	series := Series{
		{Date: time.Date(2024, 6, 1, 23, 30, 0, 0, saoPaulo), AdID: "A1"},
		{Date: time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC), AdID: "A1"},
	}

	day1 := DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, series.DistinctDates())
	assert.Len(t, series.Between(day1), 1)
	latest, ok := series.LatestDate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), latest)
}
