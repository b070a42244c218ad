package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	asOf := time.Date(2024, 6, 14, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		length    int
		offset    int
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
	}{
		{name: "últimos 7 dias", length: 7, offset: 0, wantStart: day(8), wantEnd: day(14), wantDays: 7},
		{name: "7 dias anteriores", length: 7, offset: 7, wantStart: day(1), wantEnd: day(7), wantDays: 7},
		{name: "último dia", length: 1, offset: 0, wantStart: day(14), wantEnd: day(14), wantDays: 1},
		{name: "últimos 3 dias", length: 3, offset: 0, wantStart: day(12), wantEnd: day(14), wantDays: 3},
		{name: "janela de tamanho zero é vazia", length: 0, offset: 0, wantStart: day(15), wantEnd: day(14), wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Window(asOf, tt.length, tt.offset)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
			assert.Equal(t, tt.wantDays, w.Days())
		})
	}
}

func TestTrailingRows(t *testing.T) {
	series := sampleSeries()

	assert.Len(t, TrailingRows(series, day(14), 7, 0), 14)
	assert.Len(t, TrailingRows(series, day(14), 7, 7), 14)
	assert.Len(t, TrailingRows(series, day(14), 7, 14), 0)
	assert.Len(t, TrailingRows(series, day(14), 1, 0), 2)

	// a série original não é alterada
	assert.Len(t, series, 28)
}
