// Package analysis implements the descriptive report sections computed over the JobVision dataset.
package analysis

import (
	"fmt"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// Bullet is one narrative finding, carried in both report languages.
type Bullet struct {
	EN string `json:"en"`
	FA string `json:"fa"`
}

// ValueKind describes what a section's group Value column holds.
type ValueKind string

const (
	ValueNone    ValueKind = ""
	ValueSalary  ValueKind = "salary"
	ValuePercent ValueKind = "percent"
	ValueYears   ValueKind = "years"
)

// SectionResult is the computed output of one analysis section.
// Exactly the populated aggregate fields are rendered; Bullets always are.
type SectionResult struct {
	Slug    string   `json:"slug"`
	TitleEN string   `json:"titleEn"`
	TitleFA string   `json:"titleFa"`
	Bullets []Bullet `json:"bullets"`

	Groups    []stats.Group            `json:"groups,omitempty"`
	ValueKind ValueKind                `json:"valueKind,omitempty"`
	Series    []stats.MonthPoint       `json:"series,omitempty"`
	Bins      []stats.Bin              `json:"bins,omitempty"`
	Pivot     *stats.Pivot             `json:"pivot,omitempty"`
	Matrix    *stats.CorrelationMatrix `json:"matrix,omitempty"`
}

// Section is a registered analysis with its runner.
type Section struct {
	Slug    string
	TitleEN string
	TitleFA string
	Run     func(posts []dataset.JobPosting, opts Options) SectionResult
}

// Catalog returns every section in report order.
func Catalog() []Section {
	return []Section{
		{Slug: "province-distribution", TitleEN: "Geographic Distribution of Postings", TitleFA: "توزیع جغرافیایی موقعیت‌های شغلی", Run: provinceDistribution},
		{Slug: "job-categories", TitleEN: "Most In-Demand Job Categories", TitleFA: "پرتقاضاترین دسته‌بندی‌های شغلی", Run: jobCategories},
		{Slug: "contract-types", TitleEN: "Contract Types", TitleFA: "انواع قراردادهای کاری رایج", Run: contractTypes},
		{Slug: "work-experience", TitleEN: "Required Work Experience", TitleFA: "سابقه کاری مورد نیاز", Run: workExperience},
		{Slug: "experience-vs-education", TitleEN: "Experience by Education Level", TitleFA: "سابقه کار مورد نیاز بر اساس سطح تحصیلات", Run: experienceVsEducation},
		{Slug: "company-size", TitleEN: "Postings by Company Size", TitleFA: "توزیع آگهی‌ها بر اساس اندازه شرکت", Run: companySize},
		{Slug: "remote-work", TitleEN: "Remote vs. On-Site Work", TitleFA: "دورکاری در مقابل کار حضوری", Run: remoteWork},
		{Slug: "salary-distribution", TitleEN: "Salary Distribution", TitleFA: "توزیع حقوق پیشنهادی", Run: salaryDistribution},
		{Slug: "salary-by-category", TitleEN: "Average Salary by Job Category", TitleFA: "میانگین حقوق در دسته‌بندی‌های شغلی پرتقاضا", Run: salaryByCategory},
		{Slug: "salary-by-province", TitleEN: "Average Salary by Province", TitleFA: "میانگین حقوق در استان‌های پرتقاضا", Run: salaryByProvince},
		{Slug: "salary-by-company-size", TitleEN: "Average Salary by Company Size", TitleFA: "میانگین حقوق بر اساس اندازه شرکت", Run: salaryByCompanySize},
		{Slug: "salary-by-seniority", TitleEN: "Average Salary by Seniority", TitleFA: "میانگین حقوق بر اساس سطح ارشدیت", Run: salaryBySeniority},
		{Slug: "it-role-salaries", TitleEN: "Salaries of Key IT Roles", TitleFA: "حقوق نقش‌های کلیدی فناوری اطلاعات", Run: itRoleSalaries},
		{Slug: "top-skills", TitleEN: "Key Software Skills", TitleFA: "مهارت‌های نرم‌افزاری کلیدی مورد نیاز", Run: topSkills},
		{Slug: "top-paying-skills", TitleEN: "Skills of the Highest-Paying Jobs", TitleFA: "مهارت‌های کلیدی در مشاغل پردرآمد", Run: topPayingSkills},
		{Slug: "experience-by-skill", TitleEN: "Experience Demanded per Skill", TitleFA: "سابقه کار مورد نیاز مهارت‌های کلیدی", Run: experienceBySkill},
		{Slug: "language-skills", TitleEN: "Language Requirements", TitleFA: "مهارت‌های زبانی مورد نیاز", Run: languageSkills},
		{Slug: "academic-fields", TitleEN: "Requested Academic Fields", TitleFA: "رشته‌های تحصیلی مورد تقاضا", Run: academicFields},
		{Slug: "gender-preference", TitleEN: "Gender Preference", TitleFA: "ترجیح جنسیتی آگهی‌ها", Run: genderPreference},
		{Slug: "military-service", TitleEN: "Military Service Requirement", TitleFA: "الزام کارت پایان خدمت", Run: militaryService},
		{Slug: "internships", TitleEN: "Internship Openings", TitleFA: "فرصت‌های کارآموزی", Run: internships},
		{Slug: "new-graduate-jobs", TitleEN: "Openings for New Graduates", TitleFA: "فرصت‌های شغلی تازه فارغ‌التحصیلان", Run: newGraduateJobs},
		{Slug: "age-requirements", TitleEN: "Age Requirements", TitleFA: "محدودیت‌های سنی آگهی‌ها", Run: ageRequirements},
		{Slug: "company-industry", TitleEN: "Hiring Industries", TitleFA: "صنایع پیشرو در استخدام", Run: companyIndustry},
		{Slug: "company-activity", TitleEN: "Company Activity Types", TitleFA: "نوع فعالیت شرکت‌های آگهی‌دهنده", Run: companyActivity},
		{Slug: "top-province-industries", TitleEN: "Leading Industries per Province", TitleFA: "صنایع پیشرو در استان‌های پرتقاضا", Run: topProvinceIndustries},
		{Slug: "company-age", TitleEN: "Company Age", TitleFA: "عمر شرکت‌های آگهی‌دهنده", Run: companyAge},
		{Slug: "job-benefits", TitleEN: "Advertised Benefits", TitleFA: "مزایای اعلام‌شده در آگهی‌ها", Run: jobBenefits},
		{Slug: "market-trends", TitleEN: "Monthly Posting Volume", TitleFA: "روند ماهانه آگهی‌های شغلی", Run: marketTrends},
		{Slug: "remote-work-trends", TitleEN: "Remote Work Trend", TitleFA: "روند ماهانه دورکاری", Run: remoteWorkTrends},
		{Slug: "remote-work-seasonality", TitleEN: "Remote Work Seasonality", TitleFA: "روند فصلی تقاضا برای دورکاری", Run: remoteWorkSeasonality},
		{Slug: "gender-trends", TitleEN: "Gender Preference Trend", TitleFA: "روند ماهانه ترجیح جنسیتی", Run: genderTrends},
		{Slug: "it-market-comparison", TitleEN: "IT vs. Non-IT Postings", TitleFA: "مقایسه بازار فناوری اطلاعات با سایر بخش‌ها", Run: itMarketComparison},
		{Slug: "it-remote-comparison", TitleEN: "Remote Share: IT vs. Other Sectors", TitleFA: "مقایسه سهم دورکاری فناوری اطلاعات با سایر بخش‌ها", Run: itRemoteComparison},
		{Slug: "it-skills-by-province", TitleEN: "IT Skills by Province", TitleFA: "مهارت‌های فناوری اطلاعات در استان‌های پرتقاضا", Run: itSkillsByProvince},
		{Slug: "demand-heatmap", TitleEN: "Demand by Province and Category", TitleFA: "نقشه تقاضا بر اساس استان و دسته‌بندی", Run: demandHeatmap},
		{Slug: "correlation-matrix", TitleEN: "Correlation of Numeric Fields", TitleFA: "همبستگی متغیرهای عددی", Run: correlationMatrix},
	}
}

// Slugs lists the catalog slugs in order.
func Slugs() []string {
	catalog := Catalog()
	slugs := make([]string, len(catalog))
	for i, s := range catalog {
		slugs[i] = s.Slug
	}
	return slugs
}

// Run executes the requested sections (all of them when only is empty)
// against the dataset. Unknown slugs produce an error.
func Run(posts []dataset.JobPosting, opts Options, only []string) ([]SectionResult, error) {
	catalog := Catalog()

	selected := make(map[string]bool, len(only))
	if len(only) > 0 {
		known := make(map[string]bool, len(catalog))
		for _, s := range catalog {
			known[s.Slug] = true
		}
		for _, slug := range only {
			slug = strings.TrimSpace(slug)
			if !known[slug] {
				return nil, fmt.Errorf("unknown section %q (run the sections command for the list)", slug)
			}
			selected[slug] = true
		}
	}

	var results []SectionResult
	for _, s := range catalog {
		if len(selected) > 0 && !selected[s.Slug] {
			continue
		}
		r := s.Run(posts, opts)
		r.Slug = s.Slug
		r.TitleEN = s.TitleEN
		r.TitleFA = s.TitleFA
		results = append(results, r)
	}
	return results, nil
}

// isITSector widens IsIT with the DevOps/sys-admin category. The broader
// IT analyses (role salaries, remote share, provincial skills) include it,
// the IT-vs-market comparison does not.
func isITSector(p dataset.JobPosting) bool {
	return p.IsIT() || p.JobCategory == dataset.CategoryDevOps
}

// noData is the shared placeholder bullet for sections with nothing to report.
func noData() []Bullet {
	return []Bullet{{
		EN: "No records carry the fields this section needs.",
		FA: "هیچ رکوردی فیلدهای مورد نیاز این بخش را ندارد.",
	}}
}
