package analysis

import (
	"fmt"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// contractTypes reports the share of each work contract type.
func contractTypes(posts []dataset.JobPosting, _ Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.ContractType == dataset.Unknown {
			return ""
		}
		return p.ContractType
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	groups = stats.WithShares(groups)
	leader := groups[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s contracts dominate with %s of the postings that state a contract type.",
				leader.Key, formatPercent(leader.Share)),
			FA: fmt.Sprintf("قرارداد «%s» با %s از آگهی‌های دارای نوع قرارداد، رایج‌ترین گزینه است.",
				leader.Key, faPercent(leader.Share)),
		},
		{
			EN: fmt.Sprintf("%d distinct contract types appear across %s postings.",
				len(groups), formatInt(stats.TotalCount(groups))),
			FA: fmt.Sprintf("%s نوع قرارداد متفاوت در %s آگهی دیده می‌شود.",
				faInt(len(groups)), faInt(stats.TotalCount(groups))),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// remoteWork reports the remote vs on-site split.
func remoteWork(posts []dataset.JobPosting, _ Options) SectionResult {
	if len(posts) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.WithShares(stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.IsRemote {
			return "دورکاری"
		}
		return "حضوری"
	}))
	stats.SortByCount(groups)

	var remoteShare float64
	var remoteCount int
	for _, g := range groups {
		if g.Key == "دورکاری" {
			remoteShare = g.Share
			remoteCount = g.Count
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Remote positions make up %s of the market (%s postings); the rest are on-site.",
				formatPercent(remoteShare), formatInt(remoteCount)),
			FA: fmt.Sprintf("موقعیت‌های دورکاری %s از بازار (%s آگهی) را تشکیل می‌دهند و باقی حضوری هستند.",
				faPercent(remoteShare), faInt(remoteCount)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// internships reports the internship share of the market.
func internships(posts []dataset.JobPosting, _ Options) SectionResult {
	if len(posts) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.WithShares(stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.IsInternship {
			return "کارآموزی"
		}
		return "استخدام عادی"
	}))
	stats.SortByCount(groups)

	var internShare float64
	var internCount int
	for _, g := range groups {
		if g.Key == "کارآموزی" {
			internShare = g.Share
			internCount = g.Count
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Internships are rare: %s postings, only %s of the market.",
				formatInt(internCount), formatPercent(internShare)),
			FA: fmt.Sprintf("کارآموزی سهم اندکی دارد: %s آگهی، تنها %s از بازار.",
				faInt(internCount), faPercent(internShare)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// militaryService reports how many postings require a completed service card.
func militaryService(posts []dataset.JobPosting, _ Options) SectionResult {
	if len(posts) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.WithShares(stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.RequiredMilitaryServiceCard {
			return "الزامی"
		}
		return "بدون الزام"
	}))
	stats.SortByCount(groups)

	var requiredShare float64
	for _, g := range groups {
		if g.Key == "الزامی" {
			requiredShare = g.Share
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s of postings require a completed military service card.",
				formatPercent(requiredShare)),
			FA: fmt.Sprintf("%s از آگهی‌ها کارت پایان خدمت را الزامی می‌دانند.",
				faPercent(requiredShare)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// genderPreference reports the declared gender preference split.
func genderPreference(posts []dataset.JobPosting, _ Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.PreferredGender == dataset.Unknown {
			return ""
		}
		return p.PreferredGender
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	groups = stats.WithShares(groups)
	leader := groups[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("The most common stated preference is %q at %s of postings that declare one.",
				leader.Key, formatPercent(leader.Share)),
			FA: fmt.Sprintf("رایج‌ترین ترجیح اعلام‌شده «%s» است با %s از آگهی‌های دارای ترجیح.",
				leader.Key, faPercent(leader.Share)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}
