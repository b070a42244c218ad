package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate retorna nil para texto vazio
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use o formato AAAA-MM-DD: %w", dateStr, err)
	}

	return &date, nil
}
