package pao

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinNumber = 0
	MaxNumber = 99
)

// FormatNumber renders n as a two-digit numeral ("07", "42").
func FormatNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

// ParseNumber parses a numeral in the 00-99 range. Surrounding whitespace
// and leading zeros are accepted.
func ParseNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < MinNumber || n > MaxNumber {
		return 0, false
	}
	return n, true
}
