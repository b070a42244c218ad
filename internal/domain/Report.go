package domain

import "time"

// Report é o relatório renderizado de uma conta. Não é persistido.
type Report struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	AsOf        time.Time `json:"as_of"`
	Currency    string    `json:"currency"`
	GeneratedAt time.Time `json:"generated_at"`
	Lines       []string  `json:"lines"`
}

// ReportFilters representa os parâmetros de geração de um relatório
type ReportFilters struct {
	AsOf     *time.Time
	Currency string
	// Source identifica quem pediu o relatório (api, digest, cli) nas métricas
	Source string
}

// RulesResult é o checklist de regras de uma conta em uma data de referência
type RulesResult struct {
	AccountID string        `json:"account_id"`
	AsOf      time.Time     `json:"as_of"`
	Rules     RuleChecklist `json:"rules"`
}

// FatigueResult é a tabela de fadiga de uma conta em uma data de referência
type FatigueResult struct {
	AccountID        string         `json:"account_id"`
	AsOf             time.Time      `json:"as_of"`
	RecentWindowDays int            `json:"recent_window_days"`
	Ads              []AdFatigueRow `json:"ads"`
}
