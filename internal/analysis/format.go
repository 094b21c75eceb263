package analysis

import (
	"fmt"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/persian"
)

// formatInt renders n with comma thousands separators for the English bullets.
func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}

// formatFloat renders v with separators and the given decimals.
func formatFloat(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		i = len(s)
	}
	intPart := s[:i]
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	if len(intPart) > 3 {
		var parts []string
		for len(intPart) > 3 {
			parts = append([]string{intPart[len(intPart)-3:]}, parts...)
			intPart = intPart[:len(intPart)-3]
		}
		parts = append([]string{intPart}, parts...)
		intPart = strings.Join(parts, ",")
	}
	if neg {
		intPart = "-" + intPart
	}
	return intPart + s[i:]
}

// formatPercent renders a percentage with one decimal for the English bullets.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// faInt, faFloat and faPercent are the Persian-numeral twins.
func faInt(n int) string              { return persian.FormatInt(n) }
func faFloat(v float64, d int) string { return persian.FormatFloat(v, d) }
func faPercent(v float64) string      { return persian.FormatPercent(v) }
