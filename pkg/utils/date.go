package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato yyyy-mm-dd. Vazia ou inválida retorna false.
func ParseDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
