package analytics

import (
	"github.com/vfg2006/traffic-report-api/internal/domain"
)

// adGroup agrupa as linhas de um anúncio preservando a ordem de primeira aparição
type adGroup struct {
	AdID   string
	AdName string
	Rows   domain.Series
}

func groupByAd(series domain.Series) []*adGroup {
	index := make(map[string]*adGroup)
	groups := make([]*adGroup, 0)

	for _, r := range series {
		g, exists := index[r.AdID]
		if !exists {
			g = &adGroup{AdID: r.AdID}
			index[r.AdID] = g
			groups = append(groups, g)
		}
		if g.AdName == "" && r.AdName != "" {
			g.AdName = r.AdName
		}
		g.Rows = append(g.Rows, r)
	}

	return groups
}

// meanRowCTR é a média aritmética do CTR de cada linha (média de razões).
// Linhas sem impressões são ignoradas. Não confundir com ratioOfSumsCTR.
func meanRowCTR(rows domain.Series) (float64, bool) {
	sum, n := 0.0, 0
	for _, r := range rows {
		if ctr, ok := r.CTR(); ok {
			sum += ctr
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// meanRowFrequency é a média aritmética da frequência de cada linha. Linhas sem alcance são ignoradas.
func meanRowFrequency(rows domain.Series) (float64, bool) {
	sum, n := 0.0, 0
	for _, r := range rows {
		if freq, ok := r.Frequency(); ok {
			sum += freq
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ratioOfSumsCTR é sum(clicks) / sum(impressions) * 100 sobre todas as linhas
func ratioOfSumsCTR(rows domain.Series) (float64, bool) {
	impressions := rows.TotalImpressions()
	if impressions <= 0 {
		return 0, false
	}
	return rows.TotalClicks() / impressions * 100, true
}
