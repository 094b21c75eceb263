package analysis

import (
	"fmt"
	"sort"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/persian"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// marketTrends reports monthly posting volume over the dataset's timeline.
func marketTrends(posts []dataset.JobPosting, _ Options) SectionResult {
	points := stats.MonthlyCounts(posts, func(p dataset.JobPosting) string { return p.MonthKey() })
	if len(points) == 0 {
		return SectionResult{Bullets: noData()}
	}

	busiest := points[0]
	for _, pt := range points[1:] {
		if pt.Count > busiest.Count {
			busiest = pt
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("The dataset spans %s through %s; the busiest month was %s with %s postings.",
				points[0].Month, points[len(points)-1].Month, busiest.Month, formatInt(busiest.Count)),
			FA: fmt.Sprintf("داده‌ها از %s تا %s را پوشش می‌دهند؛ پررونق‌ترین ماه %s با %s آگهی بود.",
				persianMonth(points[0].Month), persianMonth(points[len(points)-1].Month),
				persianMonth(busiest.Month), faInt(busiest.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Series: points}
}

// remoteWorkTrends reports the monthly remote share of the market.
func remoteWorkTrends(posts []dataset.JobPosting, _ Options) SectionResult {
	points := stats.MonthlyShare(posts,
		func(p dataset.JobPosting) string { return p.MonthKey() },
		func(p dataset.JobPosting) bool { return p.IsRemote })
	if len(points) == 0 {
		return SectionResult{Bullets: noData()}
	}

	first := points[0]
	last := points[len(points)-1]
	direction := "held steady"
	directionFA := "ثابت مانده است"
	switch {
	case last.Value > first.Value+0.5:
		direction = "grown"
		directionFA = "رشد کرده است"
	case last.Value < first.Value-0.5:
		direction = "shrunk"
		directionFA = "کاهش یافته است"
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("The remote share has %s over the period: %s in %s vs %s in %s.",
				direction, formatPercent(first.Value), first.Month, formatPercent(last.Value), last.Month),
			FA: fmt.Sprintf("سهم دورکاری در این بازه %s: از %s در %s به %s در %s.",
				directionFA, faPercent(first.Value), persianMonth(first.Month),
				faPercent(last.Value), persianMonth(last.Month)),
		},
	}

	return SectionResult{Bullets: bullets, Series: points}
}

// remoteWorkSeasonality reports the remote share per month of the year,
// pooled across years.
func remoteWorkSeasonality(posts []dataset.JobPosting, _ Options) SectionResult {
	points := stats.MonthlyShare(posts,
		func(p dataset.JobPosting) string {
			if p.ActivationMonth.IsZero() {
				return ""
			}
			return fmt.Sprintf("%02d", int(p.ActivationMonth.Month()))
		},
		func(p dataset.JobPosting) bool { return p.IsRemote })
	if len(points) == 0 {
		return SectionResult{Bullets: noData()}
	}

	peak := points[0]
	for _, pt := range points[1:] {
		if pt.Value > peak.Value {
			peak = pt
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Remote hiring peaks in month %s of the year, when %s of postings are remote.",
				peak.Month, formatPercent(peak.Value)),
			FA: fmt.Sprintf("تقاضای دورکاری در ماه %s سال به اوج می‌رسد و %s آگهی‌ها دورکاری هستند.",
				persian.Digits(peak.Month), faPercent(peak.Value)),
		},
	}

	return SectionResult{Bullets: bullets, Series: points}
}

// genderTrends pivots monthly posting volume against the stated gender
// preference.
func genderTrends(posts []dataset.JobPosting, _ Options) SectionResult {
	type mention struct {
		month  string
		gender string
	}
	var mentions []mention
	for _, p := range posts {
		if p.MonthKey() == "" || p.PreferredGender == "" || p.PreferredGender == dataset.Unknown {
			continue
		}
		mentions = append(mentions, mention{month: p.MonthKey(), gender: p.PreferredGender})
	}
	// Month keys sort lexically; pre-sorting fixes the pivot row order.
	sort.SliceStable(mentions, func(i, j int) bool { return mentions[i].month < mentions[j].month })

	pivot := stats.PivotBy(mentions,
		func(m mention) string { return m.month },
		func(m mention) string { return m.gender })
	if len(pivot.RowKeys) == 0 || len(pivot.ColKeys) == 0 {
		return SectionResult{Bullets: noData()}
	}

	lead := 0
	for c := range pivot.ColKeys {
		if pivot.ColTotal(c) > pivot.ColTotal(lead) {
			lead = c
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Across %d months, %q stays the dominant stated preference with %s postings in total.",
				len(pivot.RowKeys), pivot.ColKeys[lead], formatInt(pivot.ColTotal(lead))),
			FA: fmt.Sprintf("در طول %s ماه، «%s» با مجموع %s آگهی ترجیح غالب باقی می‌ماند.",
				faInt(len(pivot.RowKeys)), pivot.ColKeys[lead], faInt(pivot.ColTotal(lead))),
		},
	}

	return SectionResult{Bullets: bullets, Pivot: pivot}
}

// itMarketComparison tracks IT vs non-IT monthly volume.
func itMarketComparison(posts []dataset.JobPosting, _ Options) SectionResult {
	var it, other []dataset.JobPosting
	for _, p := range posts {
		if p.IsIT() {
			it = append(it, p)
		} else {
			other = append(other, p)
		}
	}
	itPoints := stats.MonthlyCounts(it, func(p dataset.JobPosting) string { return p.MonthKey() })
	if len(itPoints) == 0 {
		return SectionResult{Bullets: noData()}
	}

	itShare := float64(len(it)) / float64(len(posts)) * 100
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("IT postings account for %s of the market (%s of %s ads).",
				formatPercent(itShare), formatInt(len(it)), formatInt(len(posts))),
			FA: fmt.Sprintf("آگهی‌های فناوری اطلاعات %s از بازار را تشکیل می‌دهند (%s از %s آگهی).",
				faPercent(itShare), faInt(len(it)), faInt(len(posts))),
		},
		{
			EN: fmt.Sprintf("Non-IT sectors posted %s ads over the same period.",
				formatInt(len(other))),
			FA: fmt.Sprintf("سایر بخش‌ها در همین بازه %s آگهی منتشر کرده‌اند.",
				faInt(len(other))),
		},
	}

	return SectionResult{Bullets: bullets, Series: itPoints}
}

// itRemoteComparison compares the remote share of the broad IT sector with
// every other sector combined.
func itRemoteComparison(posts []dataset.JobPosting, _ Options) SectionResult {
	var itTotal, itRemote, otherTotal, otherRemote int
	for _, p := range posts {
		if isITSector(p) {
			itTotal++
			if p.IsRemote {
				itRemote++
			}
		} else {
			otherTotal++
			if p.IsRemote {
				otherRemote++
			}
		}
	}
	if itTotal == 0 && otherTotal == 0 {
		return SectionResult{Bullets: noData()}
	}

	share := func(remote, total int) float64 {
		if total == 0 {
			return 0
		}
		return float64(remote) / float64(total) * 100
	}
	groups := []stats.Group{
		{Key: "فناوری اطلاعات", Count: itTotal, Value: share(itRemote, itTotal)},
		{Key: "سایر مشاغل", Count: otherTotal, Value: share(otherRemote, otherTotal)},
	}
	stats.SortByValue(groups)

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("IT postings are remote %s of the time, against %s across all other sectors.",
				formatPercent(share(itRemote, itTotal)), formatPercent(share(otherRemote, otherTotal))),
			FA: fmt.Sprintf("آگهی‌های فناوری اطلاعات در %s موارد دورکاری هستند، در برابر %s در سایر بخش‌ها.",
				faPercent(share(itRemote, itTotal)), faPercent(share(otherRemote, otherTotal))),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValuePercent}
}

// persianMonth renders a "YYYY-MM" key with Persian digits.
func persianMonth(key string) string {
	return persian.Digits(key)
}
