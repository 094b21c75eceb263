package analysis

import (
	"fmt"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// provinceDistribution counts postings per province and reports the busiest ones.
func provinceDistribution(posts []dataset.JobPosting, opts Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.Province == dataset.Unknown {
			return ""
		}
		return p.Province
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	total := stats.TotalCount(groups)
	stats.SortByCount(groups)
	top := stats.WithShares(groups)
	top = stats.TopN(top, opts.TopProvinces)

	leader := top[0]
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s leads the market with %s postings, %s of all located ads.",
				leader.Key, formatInt(leader.Count), formatPercent(leader.Share)),
			FA: fmt.Sprintf("%s با %s آگهی (%s از کل آگهی‌های دارای استان) در صدر بازار قرار دارد.",
				leader.Key, faInt(leader.Count), faPercent(leader.Share)),
		},
		{
			EN: fmt.Sprintf("The top %d provinces account for %s of the %s located postings.",
				len(top), formatPercent(shareSum(top)), formatInt(total)),
			FA: fmt.Sprintf("%s استان برتر، %s از %s آگهی دارای استان را در بر می‌گیرند.",
				faInt(len(top)), faPercent(shareSum(top)), faInt(total)),
		},
	}
	if len(top) > 1 {
		second := top[1]
		bullets = append(bullets, Bullet{
			EN: fmt.Sprintf("%s is a distant second with %s postings (%s).",
				second.Key, formatInt(second.Count), formatPercent(second.Share)),
			FA: fmt.Sprintf("%s با %s آگهی (%s) در جایگاه دوم و با فاصله قرار دارد.",
				second.Key, faInt(second.Count), faPercent(second.Share)),
		})
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// topProvinceIndustries pivots industry mentions across the busiest
// provinces. A company may list several industries in one cell.
func topProvinceIndustries(posts []dataset.JobPosting, opts Options) SectionResult {
	type mention struct {
		province string
		industry string
	}
	var mentions []mention
	for _, p := range posts {
		if p.Province == dataset.Unknown {
			continue
		}
		for _, ind := range splitIndustries(p.CompanyIndustry) {
			mentions = append(mentions, mention{province: p.Province, industry: ind})
		}
	}

	pivot := stats.PivotBy(mentions,
		func(m mention) string { return m.province },
		func(m mention) string { return m.industry })
	if len(pivot.RowKeys) == 0 || len(pivot.ColKeys) == 0 {
		return SectionResult{Bullets: noData()}
	}
	trimmed := pivot.Trim(opts.TopPivotProvinces, opts.TopIndustries)

	lead := 0
	for r := range trimmed.RowKeys {
		if trimmed.RowTotal(r) > trimmed.RowTotal(lead) {
			lead = r
		}
	}
	best := 0
	for c, n := range trimmed.Counts[lead] {
		if n > trimmed.Counts[lead][best] {
			best = c
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("In %s, the busiest province, the %s industry leads with %s mentions.",
				trimmed.RowKeys[lead], trimmed.ColKeys[best], formatInt(trimmed.Counts[lead][best])),
			FA: fmt.Sprintf("در %s، پرتقاضاترین استان، صنعت «%s» با %s اشاره پیشتاز است.",
				trimmed.RowKeys[lead], trimmed.ColKeys[best], faInt(trimmed.Counts[lead][best])),
		},
	}

	return SectionResult{Bullets: bullets, Pivot: trimmed}
}

// splitIndustries splits a multi-industry cell on Persian or Latin commas.
func splitIndustries(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == dataset.Unknown {
		return nil
	}
	parts := strings.FieldsFunc(cell, func(r rune) bool { return r == '،' || r == ',' })
	var out []string
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// demandHeatmap crosses province against job category and reports the hottest cell.
func demandHeatmap(posts []dataset.JobPosting, opts Options) SectionResult {
	pivot := stats.PivotBy(posts,
		func(p dataset.JobPosting) string {
			if p.Province == dataset.Unknown {
				return ""
			}
			return p.Province
		},
		func(p dataset.JobPosting) string {
			if p.JobCategory == dataset.Unknown {
				return ""
			}
			return p.JobCategory
		})
	if len(pivot.RowKeys) == 0 || len(pivot.ColKeys) == 0 {
		return SectionResult{Bullets: noData()}
	}

	trimmed := pivot.Trim(opts.HeatmapRows, opts.HeatmapCols)

	maxR, maxC, maxN := 0, 0, 0
	for r := range trimmed.Counts {
		for c, n := range trimmed.Counts[r] {
			if n > maxN {
				maxR, maxC, maxN = r, c, n
			}
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("The strongest demand cell is %s × %s with %s postings.",
				trimmed.RowKeys[maxR], trimmed.ColKeys[maxC], formatInt(maxN)),
			FA: fmt.Sprintf("بیشترین تمرکز تقاضا در تقاطع %s و %s با %s آگهی دیده می‌شود.",
				trimmed.RowKeys[maxR], trimmed.ColKeys[maxC], faInt(maxN)),
		},
		{
			EN: fmt.Sprintf("The heatmap covers the %d busiest provinces against the %d largest categories.",
				len(trimmed.RowKeys), len(trimmed.ColKeys)),
			FA: fmt.Sprintf("نقشه حرارتی، %s استان پرتقاضا را در برابر %s دسته‌بندی بزرگ نشان می‌دهد.",
				faInt(len(trimmed.RowKeys)), faInt(len(trimmed.ColKeys))),
		},
	}

	return SectionResult{Bullets: bullets, Pivot: trimmed}
}

// shareSum adds up the Share column of groups.
func shareSum(groups []stats.Group) float64 {
	var sum float64
	for _, g := range groups {
		sum += g.Share
	}
	return sum
}
