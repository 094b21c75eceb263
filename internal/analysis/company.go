package analysis

import (
	"fmt"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// companySize counts postings per standardized company size bracket.
func companySize(posts []dataset.JobPosting, _ Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		size := p.StandardCompanySize()
		if size == dataset.Unknown {
			return ""
		}
		return size
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups = stats.WithShares(groups)
	orderByBracket(groups)

	leader := groups[0]
	for _, g := range groups[1:] {
		if g.Count > leader.Count {
			leader = g
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Most hiring comes from %q companies: %s postings, %s of ads with a known size.",
				leader.Key, formatInt(leader.Count), formatPercent(leader.Share)),
			FA: fmt.Sprintf("بیشترین استخدام از شرکت‌های «%s» است: %s آگهی، %s از آگهی‌های دارای اندازه.",
				leader.Key, faInt(leader.Count), faPercent(leader.Share)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// companyIndustry ranks the hiring industries.
func companyIndustry(posts []dataset.JobPosting, opts Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.CompanyIndustry == "" || p.CompanyIndustry == dataset.Unknown {
			return ""
		}
		return p.CompanyIndustry
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	top := stats.TopN(stats.WithShares(groups), opts.TopIndustries)
	leader := top[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s hires the most, with %s postings (%s of ads naming an industry).",
				leader.Key, formatInt(leader.Count), formatPercent(leader.Share)),
			FA: fmt.Sprintf("صنعت «%s» با %s آگهی (%s از آگهی‌های دارای صنعت) بیشترین استخدام را دارد.",
				leader.Key, faInt(leader.Count), faPercent(leader.Share)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// companyActivity splits postings by the advertising company's activity type.
func companyActivity(posts []dataset.JobPosting, _ Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.CompanyActivityType == "" || p.CompanyActivityType == dataset.Unknown {
			return ""
		}
		return p.CompanyActivityType
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	groups = stats.WithShares(groups)
	leader := groups[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%q companies post the most ads: %s postings, %s of ads naming an activity type.",
				leader.Key, formatInt(leader.Count), formatPercent(leader.Share)),
			FA: fmt.Sprintf("شرکت‌های «%s» بیشترین آگهی را دارند: %s آگهی، %s از آگهی‌های دارای نوع فعالیت.",
				leader.Key, faInt(leader.Count), faPercent(leader.Share)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// companyAge summarizes how old the advertising companies are.
func companyAge(posts []dataset.JobPosting, _ Options) SectionResult {
	var ages []float64
	for _, p := range posts {
		if p.CompanyAgeYears > 0 {
			ages = append(ages, p.CompanyAgeYears)
		}
	}
	if len(ages) == 0 {
		return SectionResult{Bullets: noData()}
	}

	mean := stats.Mean(ages)
	median := stats.Quantile(ages, 0.5)

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Advertising companies are %.1f years old on average (median %.0f years).",
				mean, median),
			FA: fmt.Sprintf("شرکت‌های آگهی‌دهنده به طور میانگین %s سال عمر دارند (میانه %s سال).",
				faFloat(mean, 1), faFloat(median, 0)),
		},
	}

	return SectionResult{Bullets: bullets}
}

// jobBenefits ranks the advertised benefits. A posting may list several,
// separated by the Persian comma.
func jobBenefits(posts []dataset.JobPosting, opts Options) SectionResult {
	var mentions []string
	for _, p := range posts {
		mentions = append(mentions, splitBenefits(p.Benefits)...)
	}
	groups := stats.CountBy(mentions, func(s string) string { return s })
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	top := stats.TopN(groups, opts.TopBenefits)
	leader := top[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%q is the most advertised benefit, appearing in %s postings.",
				leader.Key, formatInt(leader.Count)),
			FA: fmt.Sprintf("«%s» رایج‌ترین مزیت اعلام‌شده است و در %s آگهی دیده می‌شود.",
				leader.Key, faInt(leader.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// splitBenefits splits a benefits cell on the Persian comma.
func splitBenefits(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == dataset.Unknown {
		return nil
	}
	var out []string
	for _, part := range strings.Split(cell, "،") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
