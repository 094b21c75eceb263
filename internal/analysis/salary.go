package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// salaried returns the postings with usable salary figures, capped at the
// given quantile of the average salary to strip outliers.
func salaried(posts []dataset.JobPosting, capQuantile float64) ([]dataset.JobPosting, []float64) {
	var values []float64
	for _, p := range posts {
		if p.HasSalary() {
			values = append(values, p.AvgSalary())
		}
	}
	if len(values) == 0 {
		return nil, nil
	}

	ceiling := stats.Quantile(values, capQuantile)
	var kept []dataset.JobPosting
	var keptValues []float64
	for _, p := range posts {
		if p.HasSalary() && p.AvgSalary() <= ceiling {
			kept = append(kept, p)
			keptValues = append(keptValues, p.AvgSalary())
		}
	}
	return kept, keptValues
}

// salaryDistribution summarizes the overall salary spread.
func salaryDistribution(posts []dataset.JobPosting, opts Options) SectionResult {
	kept, values := salaried(posts, opts.HistogramCapQuantile)
	if len(kept) == 0 {
		return SectionResult{Bullets: noData()}
	}

	mean := stats.Mean(values)
	median := stats.Quantile(values, 0.5)
	min, max := stats.MinMax(values)
	bins := stats.Histogram(values, opts.HistogramBins)

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s postings advertise a salary; the mean offer is %s and the median %s (Toman/month).",
				formatInt(len(kept)), formatFloat(mean, 0), formatFloat(median, 0)),
			FA: fmt.Sprintf("%s آگهی حقوق اعلام کرده‌اند؛ میانگین پیشنهاد %s و میانه %s تومان در ماه است.",
				faInt(len(kept)), faFloat(mean, 0), faFloat(median, 0)),
		},
		{
			EN: fmt.Sprintf("Advertised salaries below the outlier cap span %s to %s.",
				formatFloat(min, 0), formatFloat(max, 0)),
			FA: fmt.Sprintf("حقوق‌های اعلام‌شده (پس از حذف مقادیر پرت) از %s تا %s متغیرند.",
				faFloat(min, 0), faFloat(max, 0)),
		},
	}

	return SectionResult{Bullets: bullets, Bins: bins}
}

// salaryByCategory compares mean salaries across the busiest job categories.
func salaryByCategory(posts []dataset.JobPosting, opts Options) SectionResult {
	kept, _ := salaried(posts, opts.SalaryCapQuantile)
	if len(kept) == 0 {
		return SectionResult{Bullets: noData()}
	}

	// Restrict to the highest-volume categories so thin groups don't skew the comparison.
	byVolume := stats.CountBy(kept, func(p dataset.JobPosting) string {
		if p.JobCategory == dataset.Unknown {
			return ""
		}
		return p.JobCategory
	})
	stats.SortByCount(byVolume)
	topSet := make(map[string]bool)
	for _, g := range stats.TopN(byVolume, opts.TopCategories) {
		topSet[g.Key] = true
	}

	groups := stats.MeanBy(kept,
		func(p dataset.JobPosting) string {
			if !topSet[p.JobCategory] {
				return ""
			}
			return p.JobCategory
		},
		func(p dataset.JobPosting) (float64, bool) { return p.AvgSalary(), true })
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}
	stats.SortByValue(groups)
	best := groups[0]
	last := groups[len(groups)-1]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Among high-volume categories, %s pays best with a mean of %s Toman/month.",
				best.Key, formatFloat(best.Value, 0)),
			FA: fmt.Sprintf("در میان دسته‌های پرتقاضا، «%s» با میانگین %s تومان در ماه بالاترین حقوق را دارد.",
				best.Key, faFloat(best.Value, 0)),
		},
		{
			EN: fmt.Sprintf("The gap to the lowest-paying busy category (%s, %s) is %s.",
				last.Key, formatFloat(last.Value, 0), formatFloat(best.Value-last.Value, 0)),
			FA: fmt.Sprintf("فاصله تا کم‌درآمدترین دسته پرتقاضا («%s» با %s) برابر %s است.",
				last.Key, faFloat(last.Value, 0), faFloat(best.Value-last.Value, 0)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValueSalary}
}

// salaryByProvince compares mean salaries across the busiest provinces.
func salaryByProvince(posts []dataset.JobPosting, opts Options) SectionResult {
	kept, _ := salaried(posts, opts.SalaryCapQuantile)
	if len(kept) == 0 {
		return SectionResult{Bullets: noData()}
	}

	byVolume := stats.CountBy(kept, func(p dataset.JobPosting) string {
		if p.Province == dataset.Unknown {
			return ""
		}
		return p.Province
	})
	stats.SortByCount(byVolume)
	topSet := make(map[string]bool)
	for _, g := range stats.TopN(byVolume, opts.TopSalaryProvinces) {
		topSet[g.Key] = true
	}

	groups := stats.MeanBy(kept,
		func(p dataset.JobPosting) string {
			if !topSet[p.Province] {
				return ""
			}
			return p.Province
		},
		func(p dataset.JobPosting) (float64, bool) { return p.AvgSalary(), true })
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}
	stats.SortByValue(groups)
	best := groups[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Among the %d busiest provinces, %s offers the highest mean salary at %s Toman/month.",
				len(groups), best.Key, formatFloat(best.Value, 0)),
			FA: fmt.Sprintf("در میان %s استان پرتقاضا، %s با میانگین %s تومان در ماه بالاترین حقوق را پیشنهاد می‌دهد.",
				faInt(len(groups)), best.Key, faFloat(best.Value, 0)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValueSalary}
}

// salaryByCompanySize compares mean salaries across standardized size brackets.
func salaryByCompanySize(posts []dataset.JobPosting, opts Options) SectionResult {
	kept, _ := salaried(posts, opts.SalaryCapQuantile)
	if len(kept) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.MeanBy(kept,
		func(p dataset.JobPosting) string {
			size := p.StandardCompanySize()
			if size == dataset.Unknown {
				return ""
			}
			return size
		},
		func(p dataset.JobPosting) (float64, bool) { return p.AvgSalary(), true })
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	orderByBracket(groups)
	var best stats.Group
	for _, g := range groups {
		if g.Value > best.Value {
			best = g
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Companies in the %q bracket pay the most on average: %s Toman/month.",
				best.Key, formatFloat(best.Value, 0)),
			FA: fmt.Sprintf("شرکت‌های «%s» به طور میانگین بالاترین حقوق را می‌پردازند: %s تومان در ماه.",
				best.Key, faFloat(best.Value, 0)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValueSalary}
}

// salaryBySeniority compares mean salaries across title-derived seniority levels.
func salaryBySeniority(posts []dataset.JobPosting, opts Options) SectionResult {
	kept, _ := salaried(posts, opts.SalaryCapQuantile)
	if len(kept) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.MeanBy(kept,
		func(p dataset.JobPosting) string { return p.SeniorityFromTitle() },
		func(p dataset.JobPosting) (float64, bool) { return p.AvgSalary(), true })
	stats.SortByValue(groups)
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}
	best := groups[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Titles at the %q level command the highest mean salary, %s Toman/month.",
				best.Key, formatFloat(best.Value, 0)),
			FA: fmt.Sprintf("عنوان‌های سطح «%s» بالاترین میانگین حقوق را دارند: %s تومان در ماه.",
				best.Key, faFloat(best.Value, 0)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValueSalary}
}

// itRoles maps title keywords to standardized Persian role labels,
// checked in order.
var itRoles = []struct {
	keywords []string
	label    string
}{
	{[]string{"back end", "backend", "بک اند"}, "توسعه دهنده بک-اند"},
	{[]string{"front end", "frontend", "فرانت اند"}, "توسعه دهنده فرانت-اند"},
	{[]string{"full stack", "fullstack", "فول استک"}, "توسعه دهنده فول-استک"},
	{[]string{"android", "اندروید"}, "توسعه دهنده اندروید"},
	{[]string{"ios"}, "توسعه دهنده iOS"},
	{[]string{"devops", "دواپس"}, "مهندس DevOps"},
	{[]string{"data scientist", "دانشمند داده", "تحلیلگر داده"}, "دانشمند / تحلیلگر داده"},
	{[]string{"network", "شبکه"}, "مهندس شبکه"},
}

// ITRoleOther is the bucket for IT titles matching no role keyword.
const ITRoleOther = "سایر"

// standardizeITRole maps a raw IT job title onto a common role label.
func standardizeITRole(title string) string {
	title = strings.ToLower(title)
	title = strings.NewReplacer("-", " ", "_", " ").Replace(title)
	for _, role := range itRoles {
		for _, k := range role.keywords {
			if strings.Contains(title, k) {
				return role.label
			}
		}
	}
	return ITRoleOther
}

// itRoleSalaries compares mean salaries across standardized IT roles.
// Roles with fewer than MinRoleCount salaried postings are dropped.
func itRoleSalaries(posts []dataset.JobPosting, opts Options) SectionResult {
	var it []dataset.JobPosting
	for _, p := range posts {
		if isITSector(p) {
			it = append(it, p)
		}
	}
	kept, _ := salaried(it, opts.SalaryCapQuantile)
	if len(kept) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.MeanBy(kept,
		func(p dataset.JobPosting) string { return standardizeITRole(p.Title) },
		func(p dataset.JobPosting) (float64, bool) { return p.AvgSalary(), true })

	var solid []stats.Group
	for _, g := range groups {
		if g.Count >= opts.MinRoleCount {
			solid = append(solid, g)
		}
	}
	if len(solid) == 0 {
		return SectionResult{Bullets: noData()}
	}
	stats.SortByValue(solid)
	best := solid[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Among IT roles with enough data, %s pays best: a mean of %s Toman/month over %s postings.",
				best.Key, formatFloat(best.Value, 0), formatInt(best.Count)),
			FA: fmt.Sprintf("در میان نقش‌های فناوری اطلاعات با داده کافی، «%s» با میانگین %s تومان در ماه در %s آگهی بالاترین حقوق را دارد.",
				best.Key, faFloat(best.Value, 0), faInt(best.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: solid, ValueKind: ValueSalary}
}

// orderByBracket sorts size-bracket groups smallest company first.
func orderByBracket(groups []stats.Group) {
	rank := make(map[string]int, len(dataset.CompanySizeBrackets))
	for i, b := range dataset.CompanySizeBrackets {
		rank[b] = i
	}
	sort.SliceStable(groups, func(i, j int) bool { return rank[groups[i].Key] < rank[groups[j].Key] })
}
