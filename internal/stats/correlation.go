package stats

import "math"

// CorrelationMatrix holds a Pearson correlation matrix over named series.
type CorrelationMatrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"` // Values[i][j] = corr(series i, series j)
}

// Series is a named numeric column extracted from the dataset.
type Series struct {
	Label  string
	Values []float64
}

// Correlate computes the pairwise Pearson correlation of the given series.
// All series must have the same length; pairs with zero variance yield 0.
func Correlate(series []Series) *CorrelationMatrix {
	n := len(series)
	m := &CorrelationMatrix{
		Labels: make([]string, n),
		Values: make([][]float64, n),
	}
	for i, s := range series {
		m.Labels[i] = s.Label
		m.Values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m.Values[i][i] = 1
		for j := i + 1; j < n; j++ {
			r := Pearson(series[i].Values, series[j].Values)
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

// Pearson computes the Pearson correlation coefficient of x and y.
// Mismatched lengths or zero variance yield 0.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
