package utils

import "strconv"

// ParseFloat converte um campo numérico de exportação; vazio vale zero
func ParseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
