// Package persian provides Persian (Farsi) text formatting helpers for report rendering.
package persian

import (
	"fmt"
	"strings"
)

var digitMap = map[rune]rune{
	'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
	'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
}

// Digits converts every ASCII digit in s to its Persian numeral.
// Non-digit runes pass through unchanged.
func Digits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if p, ok := digitMap[r]; ok {
			sb.WriteRune(p)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatInt formats n with comma thousands separators and Persian numerals.
func FormatInt(n int) string {
	return Digits(groupThousands(fmt.Sprintf("%d", n)))
}

// FormatFloat formats v with the given number of decimal places and Persian numerals.
func FormatFloat(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return Digits(groupThousands(s[:i]) + "." + s[i+1:])
	}
	return Digits(groupThousands(s))
}

// FormatPercent formats a percentage value as "۱۲.۳٪".
func FormatPercent(v float64) string {
	return Digits(fmt.Sprintf("%.1f", v)) + "٪"
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}
