package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// workExperience buckets postings into career-level brackets.
func workExperience(posts []dataset.JobPosting, opts Options) SectionResult {
	var capped []dataset.JobPosting
	for _, p := range posts {
		if p.RequiredExperienceYears <= opts.ExperienceCapYears {
			capped = append(capped, p)
		}
	}
	if len(capped) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.WithShares(stats.CountBy(capped,
		func(p dataset.JobPosting) string { return p.ExperienceBracket() }))
	orderByExperience(groups)

	// Brackets partition the capped records.
	leader := groups[0]
	for _, g := range groups[1:] {
		if g.Count > leader.Count {
			leader = g
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("The %q bracket is the largest: %s postings, %s of the market.",
				leader.Key, formatInt(leader.Count), formatPercent(leader.Share)),
			FA: fmt.Sprintf("بزرگ‌ترین گروه، «%s» است: %s آگهی، %s از بازار.",
				leader.Key, faInt(leader.Count), faPercent(leader.Share)),
		},
		{
			EN: fmt.Sprintf("Postings asking for more than %.0f years of experience were excluded as outliers.",
				opts.ExperienceCapYears),
			FA: fmt.Sprintf("آگهی‌های با بیش از %s سال سابقه به عنوان داده پرت کنار گذاشته شدند.",
				faFloat(opts.ExperienceCapYears, 0)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups}
}

// degreeOrder lists the recognized education levels, lowest first.
var degreeOrder = []string{"کاردانی", "کارشناسی", "کارشناسی ارشد", "دکتری"}

// experienceVsEducation relates required education to mean required
// experience. Postings without a recognized degree or with no stated
// experience are excluded, as are experience outliers above the cap quantile.
func experienceVsEducation(posts []dataset.JobPosting, opts Options) SectionResult {
	rank := make(map[string]int, len(degreeOrder))
	for i, d := range degreeOrder {
		rank[d] = i
	}

	var candidates []dataset.JobPosting
	var years []float64
	for _, p := range posts {
		if _, known := rank[p.DegreeLevel]; !known || p.RequiredExperienceYears <= 0 {
			continue
		}
		candidates = append(candidates, p)
		years = append(years, p.RequiredExperienceYears)
	}
	if len(candidates) == 0 {
		return SectionResult{Bullets: noData()}
	}

	ceiling := stats.Quantile(years, opts.ExperienceCapQuantile)
	groups := stats.MeanBy(candidates,
		func(p dataset.JobPosting) string {
			if p.RequiredExperienceYears > ceiling {
				return ""
			}
			return p.DegreeLevel
		},
		func(p dataset.JobPosting) (float64, bool) { return p.RequiredExperienceYears, true })
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}
	sort.SliceStable(groups, func(i, j int) bool { return rank[groups[i].Key] < rank[groups[j].Key] })

	lowest := groups[0]
	highest := groups[len(groups)-1]
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Experience expectations rise with education: %s postings ask for %.1f years on average, %s postings for %.1f.",
				lowest.Key, lowest.Value, highest.Key, highest.Value),
			FA: fmt.Sprintf("انتظار سابقه با تحصیلات بالا می‌رود: آگهی‌های «%s» به طور میانگین %s سال و آگهی‌های «%s» %s سال سابقه می‌خواهند.",
				lowest.Key, faFloat(lowest.Value, 1), highest.Key, faFloat(highest.Value, 1)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValueYears}
}

// ageRequirements summarizes the stated age windows.
func ageRequirements(posts []dataset.JobPosting, _ Options) SectionResult {
	var ages []float64
	for _, p := range posts {
		if age := p.AvgRequiredAge(); age > 0 {
			ages = append(ages, age)
		}
	}
	if len(ages) == 0 {
		return SectionResult{Bullets: noData()}
	}

	mean := stats.Mean(ages)
	min, max := stats.MinMax(ages)
	share := float64(len(ages)) / float64(len(posts)) * 100

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s of postings state an age window; the midpoint averages %.1f years (range %.0f–%.0f).",
				formatPercent(share), mean, min, max),
			FA: fmt.Sprintf("%s از آگهی‌ها بازه سنی اعلام کرده‌اند؛ میانگین نقطه میانی %s سال است (از %s تا %s).",
				faPercent(share), faFloat(mean, 1), faFloat(min, 0), faFloat(max, 0)),
		},
	}

	return SectionResult{Bullets: bullets}
}

// academicFields counts the requested fields of study.
func academicFields(posts []dataset.JobPosting, opts Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		f := strings.TrimSpace(p.AcademicFields)
		if f == "" || f == dataset.Unknown {
			return ""
		}
		return f
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	top := stats.TopN(stats.WithShares(groups), opts.TopFields)
	leader := top[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s is the most requested field of study with %s mentions.",
				leader.Key, formatInt(leader.Count)),
			FA: fmt.Sprintf("رشته «%s» با %s اشاره، پرتقاضاترین رشته تحصیلی است.",
				leader.Key, faInt(leader.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// orderByExperience sorts bracket groups from least to most experienced.
func orderByExperience(groups []stats.Group) {
	rank := make(map[string]int, len(dataset.ExperienceBrackets))
	for i, b := range dataset.ExperienceBrackets {
		rank[b] = i
	}
	sort.SliceStable(groups, func(i, j int) bool { return rank[groups[i].Key] < rank[groups[j].Key] })
}
