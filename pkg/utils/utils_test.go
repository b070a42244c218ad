package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{name: "vazio", input: "", want: nil},
		{name: "data válida", input: "2024-06-14", want: ptr(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC))},
		{name: "formato errado", input: "14/06/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = ParseFloat("12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = ParseFloat("abc")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, idLength)
	assert.NotEqual(t, a, b)
}

func ptr(t time.Time) *time.Time { return &t }
