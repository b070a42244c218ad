// Package analytics contém o motor de análise comparativa por período e de detecção de fadiga.
//
// Todas as funções são puras e síncronas: recebem a série somente leitura e uma data de
// referência (asOf) explícita, e nunca alteram a série.
package analytics

import (
	"time"

	"github.com/vfg2006/traffic-report-api/internal/domain"
)

// Window retorna o intervalo fechado dos "últimos lengthDays dias" terminando em
// asOf - offsetDays. Com lengthDays <= 0 o intervalo resultante é vazio (Start > End).
func Window(asOf time.Time, lengthDays, offsetDays int) domain.DateRange {
	end := domain.NormalizeDate(asOf).AddDate(0, 0, -offsetDays)
	start := end.AddDate(0, 0, -(lengthDays - 1))

	return domain.DateRange{Start: start, End: end}
}

// TrailingRows filtra a série para a janela definida por Window
func TrailingRows(series domain.Series, asOf time.Time, lengthDays, offsetDays int) domain.Series {
	return series.Between(Window(asOf, lengthDays, offsetDays))
}
