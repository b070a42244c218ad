package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

const (
	// FatigueFrequencyThreshold é a frequência a partir da qual (estritamente maior) um anúncio pode estar fatigado
	FatigueFrequencyThreshold = 6.0
	// DefaultRecentWindowDays é a janela recente padrão da tabela de fadiga
	DefaultRecentWindowDays = 3
	// MaxFatigueRows limita o tamanho da tabela exibida
	MaxFatigueRows = 5
)

// recentAdStats são as médias de um anúncio na janela recente
type recentAdStats struct {
	AdID      string
	AdName    string
	Frequency float64
	CTR       float64
}

// ClassifyFatigue classifica os anúncios quanto à fadiga de criativo.
//
// O CTR histórico usa a série inteira; frequência e CTR recentes usam os últimos recentDays
// terminando em asOf. Só tem histórico o anúncio com ao menos uma linha de CTR definido antes
// da janela recente, então anúncios recém-lançados ficam de fora. Apenas anúncios presentes
// dos dois lados entram na tabela, que é ordenada por frequência decrescente e limitada a
// MaxFatigueRows.
func ClassifyFatigue(series domain.Series, asOf time.Time, recentDays int) []domain.AdFatigueRow {
	if series.IsEmpty() {
		return []domain.AdFatigueRow{}
	}

	if recentDays <= 0 {
		recentDays = DefaultRecentWindowDays
	}

	recentWindow := Window(asOf, recentDays, 0)
	historical := historicalCTRByAd(series, recentWindow.Start)
	recent := recentStatsByAd(series.Between(recentWindow))

	return joinFatigue(recent, historical)
}

// historicalCTRByAd calcula o CTR médio de cada anúncio sobre a série inteira, apenas para
// anúncios que já tinham linhas com CTR definido antes de recentStart
func historicalCTRByAd(series domain.Series, recentStart time.Time) map[string]float64 {
	out := make(map[string]float64)
	for _, g := range groupByAd(series) {
		if !hasCTRBefore(g.Rows, recentStart) {
			continue
		}
		if ctr, ok := meanRowCTR(g.Rows); ok {
			out[g.AdID] = ctr
		}
	}
	return out
}

func hasCTRBefore(rows domain.Series, start time.Time) bool {
	for _, r := range rows {
		if !domain.NormalizeDate(r.Date).Before(start) {
			continue
		}
		if _, ok := r.CTR(); ok {
			return true
		}
	}
	return false
}

func recentStatsByAd(rows domain.Series) []recentAdStats {
	stats := make([]recentAdStats, 0)
	for _, g := range groupByAd(rows) {
		freq, okFreq := meanRowFrequency(g.Rows)
		ctr, okCTR := meanRowCTR(g.Rows)
		if !okFreq || !okCTR {
			continue
		}

		stats = append(stats, recentAdStats{
			AdID:      g.AdID,
			AdName:    g.AdName,
			Frequency: freq,
			CTR:       ctr,
		})
	}
	return stats
}

// joinFatigue faz o inner join, classifica, ordena e trunca. A ordem das etapas é fixa.
func joinFatigue(recent []recentAdStats, historical map[string]float64) []domain.AdFatigueRow {
	rows := make([]domain.AdFatigueRow, 0, len(recent))

	for _, s := range recent {
		hist, ok := historical[s.AdID]
		if !ok {
			continue
		}

		rows = append(rows, domain.AdFatigueRow{
			AdID:          s.AdID,
			AdName:        s.AdName,
			Frequency:     s.Frequency,
			CTRRecent:     s.CTR,
			CTRHistorical: hist,
			Fatigued:      s.Frequency > FatigueFrequencyThreshold && s.CTR < hist,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Frequency != rows[j].Frequency {
			return rows[i].Frequency > rows[j].Frequency
		}
		return rows[i].AdID < rows[j].AdID
	})

	if len(rows) > MaxFatigueRows {
		rows = rows[:MaxFatigueRows]
	}

	return rows
}

// KeyAlertCount conta os anúncios da janela dos últimos 3 dias com frequência média > 6 e
// CTR médio abaixo do CTR global da série (soma de cliques / soma de impressões).
func KeyAlertCount(series domain.Series, asOf time.Time) int {
	globalCTR, ok := ratioOfSumsCTR(series)
	if !ok {
		return 0
	}

	count := 0
	for _, s := range recentStatsByAd(TrailingRows(series, asOf, DefaultRecentWindowDays, 0)) {
		if s.Frequency > FatigueFrequencyThreshold && s.CTR < globalCTR {
			count++
		}
	}

	return count
}
