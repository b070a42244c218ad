// Package csvsource lê exportações diárias por anúncio em CSV.
package csvsource

import (
	"encoding/csv"
	"io"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/pkg/utils"
)

// aliases mapeia os nomes de coluna aceitos para o campo da linha diária
var aliases = map[string]string{
	"date":               "date",
	"fecha":              "date",
	"ad_id":              "ad_id",
	"anuncio":            "ad_id",
	"ad_name":            "ad_name",
	"nombre":             "ad_name",
	"spend":              "spend",
	"inversion":          "spend",
	"value":              "value",
	"valor":              "value",
	"impr":               "impressions",
	"impressions":        "impressions",
	"reach":              "reach",
	"alcance":            "reach",
	"clicks":             "clicks",
	"visits":             "visits",
	"landing_page_views": "visits",
	"purchases":          "purchases",
	"compras":            "purchases",
	"rv3":                "video_views_3s",
	"video_views_3s":     "video_views_3s",
}

var required = []string{"date", "ad_id", "spend", "impressions", "reach", "clicks"}

// ReadSeries lê o CSV com cabeçalho. Colunas desconhecidas são ignoradas e numéricas vazias valem zero.
func ReadSeries(r io.Reader) (domain.Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "csv: erro ao ler cabeçalho")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if field, ok := aliases[key]; ok {
			index[field] = i
		}
	}

	for _, field := range required {
		if _, ok := index[field]; !ok {
			return nil, errors.Errorf("csv: coluna obrigatória ausente: %s", field)
		}
	}

	series := make(domain.Series, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "csv: linha %d", line)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return nil, errors.Wrapf(err, "csv: linha %d", line)
		}
		series = append(series, row)
	}

	return series, nil
}

func parseRow(record []string, index map[string]int) (domain.DailyAdRecord, error) {
	get := func(field string) string {
		i, ok := index[field]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := parseDate(get("date"))
	if err != nil {
		return domain.DailyAdRecord{}, err
	}

	row := domain.DailyAdRecord{
		Date:   date,
		AdID:   get("ad_id"),
		AdName: get("ad_name"),
	}

	numbers := []struct {
		field string
		dst   *float64
	}{
		{"spend", &row.Spend},
		{"value", &row.Value},
		{"impressions", &row.Impressions},
		{"reach", &row.Reach},
		{"clicks", &row.Clicks},
		{"visits", &row.Visits},
		{"purchases", &row.Purchases},
		{"video_views_3s", &row.VideoViews3s},
	}
	for _, n := range numbers {
		v, err := utils.ParseFloat(get(n.field))
		if err != nil {
			return domain.DailyAdRecord{}, errors.Wrapf(err, "valor inválido em %s", n.field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.DailyAdRecord{}, errors.Errorf("valor não finito em %s: %v", n.field, v)
		}
		if v < 0 {
			return domain.DailyAdRecord{}, errors.Errorf("valor negativo em %s: %v", n.field, v)
		}
		*n.dst = v
	}

	return row, nil
}

// dateLayouts são os formatos de data aceitos, na ordem em que são tentados
var dateLayouts = []string{
	utils.DateLayout,
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseDate aceita AAAA-MM-DD, DD/MM/AAAA, o formato com horário do pandas e RFC3339
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("data vazia")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.NormalizeDate(t), nil
		}
	}

	return time.Time{}, errors.Errorf("data inválida: %q", s)
}
