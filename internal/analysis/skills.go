package analysis

import (
	"fmt"
	"sort"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// keyITSkills are the dataset's Persian labels for the core web/programming
// skills whose experience demand is tracked, in display order.
var keyITSkills = []string{
	"اچ تی ام ال,سی اس اس", "جاوا اسکریپت", "ری اکت", "انگولار", "ویو",
	"پایتون", "پی اچ پی", "جاوا", "اس کیو ال", "گیت",
}

// countSkills flattens per-posting skill lists into a frequency ranking.
func countSkills(posts []dataset.JobPosting, pick func(dataset.JobPosting) []string, topN int) []stats.Group {
	var mentions []string
	for _, p := range posts {
		mentions = append(mentions, pick(p)...)
	}
	groups := stats.CountBy(mentions, func(s string) string { return s })
	stats.SortByCount(groups)
	return stats.TopN(groups, topN)
}

// topSkills ranks the software skills demanded across postings.
func topSkills(posts []dataset.JobPosting, opts Options) SectionResult {
	top := countSkills(posts, func(p dataset.JobPosting) []string { return p.SoftwareSkills }, opts.TopSkills)
	if len(top) == 0 {
		return SectionResult{Bullets: noData()}
	}

	leader := top[0]
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s is the most demanded software skill, named in %s postings.",
				leader.Key, formatInt(leader.Count)),
			FA: fmt.Sprintf("«%s» پرتقاضاترین مهارت نرم‌افزاری است و در %s آگهی ذکر شده است.",
				leader.Key, faInt(leader.Count)),
		},
	}
	if len(top) > 2 {
		bullets = append(bullets, Bullet{
			EN: fmt.Sprintf("%s and %s round out the top three demanded skills.",
				top[1].Key, top[2].Key),
			FA: fmt.Sprintf("«%s» و «%s» رتبه‌های دوم و سوم مهارت‌های پرتقاضا هستند.",
				top[1].Key, top[2].Key),
		})
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// topPayingSkills ranks the skills demanded inside the highest-paying slice
// of the market.
func topPayingSkills(posts []dataset.JobPosting, opts Options) SectionResult {
	var values []float64
	for _, p := range posts {
		if p.HasSalary() {
			values = append(values, p.AvgSalary())
		}
	}
	if len(values) == 0 {
		return SectionResult{Bullets: noData()}
	}

	threshold := stats.Quantile(values, opts.HighSalaryQuantile)
	var rich []dataset.JobPosting
	for _, p := range posts {
		if p.HasSalary() && p.AvgSalary() >= threshold {
			rich = append(rich, p)
		}
	}

	top := countSkills(rich, func(p dataset.JobPosting) []string { return p.SoftwareSkills }, opts.TopSkills)
	if len(top) == 0 {
		return SectionResult{Bullets: noData()}
	}

	leader := top[0]
	percentile := opts.HighSalaryQuantile * 100
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("Among jobs paying above the %.0fth salary percentile (%s Toman/month), %s is the most demanded skill with %s mentions.",
				percentile, formatFloat(threshold, 0), leader.Key, formatInt(leader.Count)),
			FA: fmt.Sprintf("در مشاغل بالای صدک %s حقوق (%s تومان در ماه)، «%s» با %s اشاره پرتقاضاترین مهارت است.",
				faFloat(percentile, 0), faFloat(threshold, 0), leader.Key, faInt(leader.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}

// experienceBySkill reports the mean required experience for each key skill.
func experienceBySkill(posts []dataset.JobPosting, opts Options) SectionResult {
	keySet := make(map[string]bool, len(keyITSkills))
	for _, s := range keyITSkills {
		keySet[s] = true
	}

	type mention struct {
		skill string
		years float64
	}
	var mentions []mention
	for _, p := range posts {
		if p.RequiredExperienceYears <= 0 || p.RequiredExperienceYears > opts.SkillExperienceCapYears {
			continue
		}
		for _, s := range p.SoftwareSkills {
			if keySet[s] {
				mentions = append(mentions, mention{skill: s, years: p.RequiredExperienceYears})
			}
		}
	}

	groups := stats.MeanBy(mentions,
		func(m mention) string { return m.skill },
		func(m mention) (float64, bool) { return m.years, true })
	if len(groups) == 0 {
		return SectionResult{Bullets: noData()}
	}
	orderBySkillList(groups)

	most := groups[0]
	for _, g := range groups[1:] {
		if g.Value > most.Value {
			most = g
		}
	}

	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s carries the steepest experience demand among key skills: %.1f years on average across %s mentions.",
				most.Key, most.Value, formatInt(most.Count)),
			FA: fmt.Sprintf("«%s» سنگین‌ترین انتظار سابقه را در میان مهارت‌های کلیدی دارد: به طور میانگین %s سال در %s اشاره.",
				most.Key, faFloat(most.Value, 1), faInt(most.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: groups, ValueKind: ValueYears}
}

// itSkillsByProvince pivots skill demand of the IT sector across the
// busiest provinces.
func itSkillsByProvince(posts []dataset.JobPosting, opts Options) SectionResult {
	type mention struct {
		province string
		skill    string
	}
	var mentions []mention
	for _, p := range posts {
		if !isITSector(p) || p.Province == dataset.Unknown {
			continue
		}
		for _, s := range p.SoftwareSkills {
			mentions = append(mentions, mention{province: p.Province, skill: s})
		}
	}

	pivot := stats.PivotBy(mentions,
		func(m mention) string { return m.province },
		func(m mention) string { return m.skill })
	if len(pivot.RowKeys) == 0 || len(pivot.ColKeys) == 0 {
		return SectionResult{Bullets: noData()}
	}
	trimmed := pivot.Trim(opts.TopPivotProvinces, opts.TopProvinceSkills)

	// Busiest province, then its most mentioned skill.
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
			EN: fmt.Sprintf("%s hosts the largest IT skill demand; %s leads there with %s mentions.",
				trimmed.RowKeys[lead], trimmed.ColKeys[best], formatInt(trimmed.Counts[lead][best])),
			FA: fmt.Sprintf("بیشترین تقاضای مهارت‌های فناوری اطلاعات در %s است و «%s» با %s اشاره در صدر قرار دارد.",
				trimmed.RowKeys[lead], trimmed.ColKeys[best], faInt(trimmed.Counts[lead][best])),
		},
	}

	return SectionResult{Bullets: bullets, Pivot: trimmed}
}

// orderBySkillList sorts skill groups into the keyITSkills display order.
func orderBySkillList(groups []stats.Group) {
	rank := make(map[string]int, len(keyITSkills))
	for i, s := range keyITSkills {
		rank[s] = i
	}
	sort.SliceStable(groups, func(i, j int) bool { return rank[groups[i].Key] < rank[groups[j].Key] })
}

// languageSkills ranks the foreign language requirements.
func languageSkills(posts []dataset.JobPosting, opts Options) SectionResult {
	top := countSkills(posts, func(p dataset.JobPosting) []string { return p.LanguageSkills }, opts.TopLanguages)
	if len(top) == 0 {
		return SectionResult{Bullets: noData()}
	}

	leader := top[0]
	bullets := []Bullet{
		{
			EN: fmt.Sprintf("%s dominates language requirements with %s mentions.",
				leader.Key, formatInt(leader.Count)),
			FA: fmt.Sprintf("زبان «%s» با %s اشاره، صدرنشین الزامات زبانی است.",
				leader.Key, faInt(leader.Count)),
		},
	}

	return SectionResult{Bullets: bullets, Groups: top}
}
