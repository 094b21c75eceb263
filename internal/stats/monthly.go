package stats

import "sort"

// MonthPoint is one month of a time series, keyed "YYYY-MM".
type MonthPoint struct {
	Month string  `json:"month"`
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"`
}

// MonthlyCounts counts items per month, sorted chronologically.
// Items with an empty month key are excluded.
func MonthlyCounts[T any](items []T, month func(T) string) []MonthPoint {
	counts := make(map[string]int)
	for _, item := range items {
		m := month(item)
		if m == "" {
			continue
		}
		counts[m]++
	}
	return sortedPoints(counts, nil)
}

// MonthlyShare computes, per month, the percentage of items matching pred.
func MonthlyShare[T any](items []T, month func(T) string, pred func(T) bool) []MonthPoint {
	totals := make(map[string]int)
	matches := make(map[string]int)
	for _, item := range items {
		m := month(item)
		if m == "" {
			continue
		}
		totals[m]++
		if pred(item) {
			matches[m]++
		}
	}

	shares := make(map[string]float64, len(totals))
	for m, total := range totals {
		shares[m] = float64(matches[m]) / float64(total) * 100
	}
	return sortedPoints(totals, shares)
}

func sortedPoints(counts map[string]int, values map[string]float64) []MonthPoint {
	points := make([]MonthPoint, 0, len(counts))
	for m, n := range counts {
		p := MonthPoint{Month: m, Count: n}
		if values != nil {
			p.Value = values[m]
		}
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}
