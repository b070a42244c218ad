package domain

// AdFatigueRow é uma linha da tabela de detecção de fadiga
type AdFatigueRow struct {
	AdID          string  `json:"ad_id"`
	AdName        string  `json:"ad_name"`
	Frequency     float64 `json:"frequency"`
	CTRRecent     float64 `json:"ctr_recent"`
	CTRHistorical float64 `json:"ctr_historical"`
	Fatigued      bool    `json:"is_fatigued"`
}
