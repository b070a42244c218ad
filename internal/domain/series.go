package domain

import (
	"time"
)

// Series é o conjunto de linhas diárias de uma conta. É tratado como somente leitura.
type Series []DailyAdRecord

// DateRange é um intervalo fechado de datas [Start, End]
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains indica se a data está dentro do intervalo, comparando apenas o dia
func (r DateRange) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(r.Start)) && !d.After(NormalizeDate(r.End))
}

// Days retorna a quantidade de dias do intervalo
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(NormalizeDate(r.End).Sub(NormalizeDate(r.Start)).Hours()/24) + 1
}

// IsEmpty indica se a série não possui linhas
func (s Series) IsEmpty() bool {
	return len(s) == 0
}

// LatestDate retorna a maior data da série
func (s Series) LatestDate() (time.Time, bool) {
	if len(s) == 0 {
		return time.Time{}, false
	}

	latest := NormalizeDate(s[0].Date)
	for _, r := range s[1:] {
		if d := NormalizeDate(r.Date); d.After(latest) {
			latest = d
		}
	}
	return latest, true
}

// Between retorna uma nova série apenas com as linhas dentro do intervalo
func (s Series) Between(r DateRange) Series {
	out := make(Series, 0, len(s))
	for _, rec := range s {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// OnDate retorna as linhas de um único dia
func (s Series) OnDate(date time.Time) Series {
	out := make(Series, 0)
	for _, rec := range s {
		if isSameDate(rec.Date, date) {
			out = append(out, rec)
		}
	}
	return out
}

// DistinctDates conta os dias distintos presentes na série
func (s Series) DistinctDates() int {
	seen := make(map[time.Time]struct{}, len(s))
	for _, rec := range s {
		seen[NormalizeDate(rec.Date)] = struct{}{}
	}
	return len(seen)
}

// TotalImpressions soma as impressões de toda a série
func (s Series) TotalImpressions() float64 {
	total := 0.0
	for _, rec := range s {
		total += rec.Impressions
	}
	return total
}

// TotalClicks soma os cliques de toda a série
func (s Series) TotalClicks() float64 {
	total := 0.0
	for _, rec := range s {
		total += rec.Clicks
	}
	return total
}

// TotalVideoViews3s soma as visualizações de 3 segundos de toda a série
func (s Series) TotalVideoViews3s() float64 {
	total := 0.0
	for _, rec := range s {
		total += rec.VideoViews3s
	}
	return total
}
