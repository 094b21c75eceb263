package stats

import "math"

// Bin is one equal-width histogram bucket.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram buckets values into equal-width bins spanning [min, max].
// Values on a boundary fall into the higher bin, except the maximum which
// stays in the last bin.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	min, max := MinMax(values)
	if min == max {
		return []Bin{{Low: min, High: max, Count: len(values)}}
	}

	width := (max - min) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Low: min + float64(i)*width, High: min + float64(i+1)*width}
	}

	for _, v := range values {
		idx := int(math.Floor((v - min) / width))
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
