package analysis

import (
	"fmt"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// numericFields are the columns entering the correlation matrix.
var numericFields = []struct {
	labelEN string
	labelFA string
	value   func(dataset.JobPosting) float64
}{
	{"Min salary", "حداقل حقوق", func(p dataset.JobPosting) float64 { return p.MinSalary }},
	{"Max salary", "حداکثر حقوق", func(p dataset.JobPosting) float64 { return p.MaxSalary }},
	{"Experience (years)", "سابقه کار", func(p dataset.JobPosting) float64 { return p.RequiredExperienceYears }},
	{"Min age", "حداقل سن", func(p dataset.JobPosting) float64 { return p.RequiredMinAge }},
	{"Max age", "حداکثر سن", func(p dataset.JobPosting) float64 { return p.RequiredMaxAge }},
	{"Company age", "عمر شرکت", func(p dataset.JobPosting) float64 { return p.CompanyAgeYears }},
}

// correlationMatrix computes the Pearson matrix over complete numeric rows.
func correlationMatrix(posts []dataset.JobPosting, _ Options) SectionResult {
	// Complete cases only: a zero means the field was absent in the export.
	var complete []dataset.JobPosting
	for _, p := range posts {
		ok := true
		for _, f := range numericFields {
			if f.value(p) <= 0 {
				ok = false
				break
			}
		}
		if ok {
			complete = append(complete, p)
		}
	}
	if len(complete) < 3 {
		return SectionResult{Bullets: noData()}
	}

	series := make([]stats.Series, len(numericFields))
	for i, f := range numericFields {
		values := make([]float64, len(complete))
		for j, p := range complete {
			values[j] = f.value(p)
		}
		series[i] = stats.Series{Label: f.labelEN, Values: values}
	}
	matrix := stats.Correlate(series)

	// Strongest off-diagonal pair.
	bi, bj, best := 0, 1, matrix.Values[0][1]
	for i := range matrix.Values {
		for j := i + 1; j < len(matrix.Values); j++ {
			if abs(matrix.Values[i][j]) > abs(best) {
				bi, bj, best = i, j, matrix.Values[i][j]
			}
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Across %s complete rows, the strongest correlation is %s ↔ %s at %.2f.",
				formatInt(len(complete)), numericFields[bi].labelEN, numericFields[bj].labelEN, best),
			FA: fmt.Sprintf("در %s ردیف کامل، قوی‌ترین همبستگی میان «%s» و «%s» با ضریب %s است.",
				faInt(len(complete)), numericFields[bi].labelFA, numericFields[bj].labelFA, faFloat(best, 2)),
		},
	}

	return SectionResult{Bullets: bullets, Matrix: matrix}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
