package csvsource

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeries(t *testing.T) {
	input := `date,Anuncio,spend,value,impr,reach,clicks,visits,purchases,rv3,extra
2024-06-01,A1,10,20,10,2,2,2,0,5,x
2024-06-02 00:00:00,A2,5,20,5,1,1,,1,2.5,y
`

	series, err := ReadSeries(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), series[0].Date)
	assert.Equal(t, "A1", series[0].AdID)
	assert.Equal(t, 10.0, series[0].Impressions)
	assert.Equal(t, 5.0, series[0].VideoViews3s)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), series[1].Date)
	assert.Equal(t, 0.0, series[1].Visits)
	assert.Equal(t, 1.0, series[1].Purchases)
}

func TestReadSeries_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "vazio", input: "", wantErr: "cabeçalho"},
		{name: "coluna obrigatória ausente", input: "date,Anuncio,spend\n", wantErr: "impressions"},
		{name: "data inválida", input: "date,ad_id,spend,impr,reach,clicks\n06/31/2024,A1,1,1,1,1\n", wantErr: "linha 2"},
		{name: "data vazia", input: "date,ad_id,spend,impr,reach,clicks\n,A1,1,1,1,1\n", wantErr: "data vazia"},
		{name: "número inválido", input: "date,ad_id,spend,impr,reach,clicks\n2024-06-01,A1,abc,1,1,1\n", wantErr: "spend"},
		{name: "NaN", input: "date,ad_id,spend,impr,reach,clicks\n2024-06-01,A1,1,NaN,1,1\n", wantErr: "não finito em impressions"},
		{name: "infinito", input: "date,ad_id,spend,impr,reach,clicks\n2024-06-01,A1,Inf,1,1,1\n", wantErr: "não finito em spend"},
		{name: "número negativo", input: "date,ad_id,spend,impr,reach,clicks\n2024-06-01,A1,-1,1,1,1\n", wantErr: "negativo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSeries(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReadSeries_DateLayouts(t *testing.T) {
	want := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
	}{
		{name: "ISO", date: "2024-06-02"},
		{name: "dia/mês/ano", date: "02/06/2024"},
		{name: "pandas com horário", date: "2024-06-02 00:00:00"},
		{name: "RFC3339", date: "2024-06-02T15:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "fecha,ad_id,spend,impr,reach,clicks\n" + tt.date + ",A1,1,1,1,1\n"

			series, err := ReadSeries(strings.NewReader(input))

			require.NoError(t, err)
			require.Len(t, series, 1)
			assert.Equal(t, want, series[0].Date)
		})
	}
}
