package analysis

import (
	"fmt"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// jobCategories ranks the main job categories by posting volume.
func jobCategories(posts []dataset.JobPosting, opts Options) SectionResult {
	groups := stats.CountBy(posts, func(p dataset.JobPosting) string {
		if p.JobCategory == dataset.Unknown {
			return ""
		}
		return p.JobCategory
	})
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}

	stats.SortByCount(groups)
	top := stats.TopN(stats.WithShares(groups), opts.TopCategories)
	leader := top[0]

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s is the most advertised category with %s postings (%s of categorized ads).",
				leader.Key, formatInt(leader.Count), formatPercent(leader.Share)),
			FA: fmt.Sprintf("دسته «%s» با %s آگهی (%s از آگهی‌های دسته‌بندی‌شده) پرتقاضاترین دسته شغلی است.",
				leader.Key, faInt(leader.Count), faPercent(leader.Share)),
		},
		{
			EN: fmt.Sprintf("The top %d categories together hold %s of the categorized postings.",
				len(top), formatPercent(shareSum(top))),
			FA: fmt.Sprintf("%s دسته برتر در مجموع %s از آگهی‌های دسته‌بندی‌شده را پوشش می‌دهند.",
				faInt(len(top)), faPercent(shareSum(top))),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// newGraduateJobs counts entry-level postings (low experience requirement) per category.
func newGraduateJobs(posts []dataset.JobPosting, opts Options) SectionResult {
	var juniors []dataset.JobPosting
	for _, p := range posts {
		if p.RequiredExperienceYears <= opts.NewGraduateMaxYears && p.JobCategory != dataset.Unknown {
			juniors = append(juniors, p)
		}
	}
	if len(juniors) == 0 {
		return SectionResult{Bullets: noData()}
	}

	groups := stats.CountBy(juniors, func(p dataset.JobPosting) string { return p.JobCategory })
	stats.SortByCount(groups)
	top := stats.TopN(stats.WithShares(groups), opts.TopCategories)

	share := float64(len(juniors)) / float64(len(posts)) * 100
	leader := top[0]
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s postings (%s of the market) ask for at most %.0f years of experience.",
				formatInt(len(juniors)), formatPercent(share), opts.NewGraduateMaxYears),
			FA: fmt.Sprintf("%s آگهی (%s از بازار) حداکثر %s سال سابقه می‌خواهند.",
				faInt(len(juniors)), faPercent(share), faFloat(opts.NewGraduateMaxYears, 0)),
		},
		{
			EN: fmt.Sprintf("For new graduates, %s offers the most openings with %s entry-level postings.",
				leader.Key, formatInt(leader.Count)),
			FA: fmt.Sprintf("برای تازه فارغ‌التحصیلان، دسته «%s» با %s آگهی بیشترین فرصت را دارد.",
				leader.Key, faInt(leader.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}
