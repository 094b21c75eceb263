// Package stats provides the grouping and aggregation primitives used by the analysis sections.
package stats

import (
	"math"
	"sort"
)

// Group is one aggregated bucket of records.
type Group struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"` // aggregate value (mean, sum) when applicable
	Share float64 `json:"share,omitempty"` // percentage of the grouped total
}

// CountBy groups items by key and counts them. Groups keep first-seen order.
func CountBy[T any](items []T, key func(T) string) []Group {
	counts := make(map[string]int)
	var order []string

	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, Group{Key: k, Count: counts[k]})
	}
	return groups
}

// MeanBy groups items by key and averages the values produced by value.
// Items for which ok is false are excluded from their group's mean.
func MeanBy[T any](items []T, key func(T) string, value func(T) (float64, bool)) []Group {
	type acc struct {
		sum   float64
		count int
	}
	accs := make(map[string]*acc)
	var order []string

	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		v, ok := value(item)
		if !ok {
			continue
		}
		a, seen := accs[k]
		if !seen {
			a = &acc{}
			accs[k] = a
			order = append(order, k)
		}
		a.sum += v
		a.count++
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		a := accs[k]
		groups = append(groups, Group{Key: k, Count: a.count, Value: a.sum / float64(a.count)})
	}
	return groups
}

// WithShares fills in each group's percentage share of the total count.
// Shares sum to 100 up to rounding when the total is non-zero.
func WithShares(groups []Group) []Group {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	if total == 0 {
		return groups
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		g.Share = float64(g.Count) / float64(total) * 100
		out[i] = g
	}
	return out
}

// SortByCount sorts groups by count, descending.
func SortByCount(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
}

// SortByValue sorts groups by aggregate value, descending.
func SortByValue(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
}

// SortByKey sorts groups by key, ascending.
func SortByKey(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
}

// TopN returns the first n groups, or all of them when n <= 0 or exceeds the length.
func TopN(groups []Group, n int) []Group {
	if n <= 0 || n >= len(groups) {
		return groups
	}
	return groups[:n]
}

// Keys returns the group keys in order.
func Keys(groups []Group) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

// TotalCount sums the group counts.
func TotalCount(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

// Quantile returns the q-th quantile of values using linear interpolation
// between closest ranks. q is clamped to [0, 1]; an empty input yields 0.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// Mean averages the values; empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MinMax returns the smallest and largest value; empty input yields zeros.
func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
