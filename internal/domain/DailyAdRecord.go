package domain

import (
	"time"
)

// DailyAdRecord representa uma linha diária de métricas de um anúncio
type DailyAdRecord struct {
	Date         time.Time `json:"date"`
	AdID         string    `json:"ad_id"`
	AdName       string    `json:"ad_name,omitempty"`
	Spend        float64   `json:"spend"`
	Value        float64   `json:"value"`
	Impressions  float64   `json:"impressions"`
	Reach        float64   `json:"reach"`
	Clicks       float64   `json:"clicks"`
	Visits       float64   `json:"visits"`
	Purchases    float64   `json:"purchases"`
	VideoViews3s float64   `json:"video_views_3s"`
}

// Frequency retorna impressões / alcance. ok é falso quando o alcance é zero.
func (r DailyAdRecord) Frequency() (float64, bool) {
	if r.Reach <= 0 {
		return 0, false
	}
	return r.Impressions / r.Reach, true
}

// CTR retorna cliques / impressões em pontos percentuais. ok é falso sem impressões.
func (r DailyAdRecord) CTR() (float64, bool) {
	if r.Impressions <= 0 {
		return 0, false
	}
	return r.Clicks / r.Impressions * 100, true
}

// Label retorna o nome do anúncio, ou o ID quando o nome não está preenchido
func (r DailyAdRecord) Label() string {
	if r.AdName != "" {
		return r.AdName
	}
	return r.AdID
}

// NormalizeDate remove a parte de horário, mantendo apenas a data do calendário em UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isSameDate(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
