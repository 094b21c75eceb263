// Package dataset provides the JobPosting record type and CSV loading for the JobVision export.
package dataset

import (
	"strings"
	"time"
)

// JobPosting is a single row of the cleaned JobVision dataset.
// Categorical text fields hold Persian labels; «نامشخص» marks a missing value.
type JobPosting struct {
	Title        string
	Province     string
	City         string
	JobCategory  string
	ContractType string

	MinSalary        float64
	MaxSalary        float64
	SalaryCanBeShown bool

	RequiredExperienceYears float64
	RequiredMinAge          float64
	RequiredMaxAge          float64

	DegreeLevel    string
	AcademicFields string
	SoftwareSkills []string
	LanguageSkills []string
	Benefits       string

	PreferredGender             string
	IsRemote                    bool
	IsInternship                bool
	RequiredMilitaryServiceCard bool

	CompanySize         string
	CompanyIndustry     string
	CompanyActivityType string
	CompanyAgeYears     float64

	ActivationMonth time.Time
}

// Unknown is the placeholder the cleaning step writes for missing categorical values.
const Unknown = "نامشخص"

// HasSalary reports whether the posting carries a usable salary figure.
func (p JobPosting) HasSalary() bool {
	return p.AvgSalary() > 0
}

// AvgSalary is the midpoint of the advertised salary range.
func (p JobPosting) AvgSalary() float64 {
	return (p.MinSalary + p.MaxSalary) / 2
}

// AvgRequiredAge is the midpoint of the required age range, 0 when unset.
func (p JobPosting) AvgRequiredAge() float64 {
	if p.RequiredMinAge <= 0 || p.RequiredMaxAge <= 0 {
		return 0
	}
	return (p.RequiredMinAge + p.RequiredMaxAge) / 2
}

// Experience bracket labels, ordered from least to most experienced.
const (
	BracketIntern          = "کارآموز / بدون سابقه"
	BracketJunior          = "کم‌تجربه (۱ تا ۳ سال)"
	BracketMid             = "باتجربه (۳ تا ۷ سال)"
	BracketSenior          = "ارشد (۷ تا ۱۰ سال)"
	BracketVeryExperienced = "بسیار باتجربه (بیش از ۱۰ سال)"
)

// ExperienceBrackets lists the bracket labels in their logical order.
var ExperienceBrackets = []string{
	BracketIntern,
	BracketJunior,
	BracketMid,
	BracketSenior,
	BracketVeryExperienced,
}

// ExperienceBracket buckets the required experience years into a career level.
func (p JobPosting) ExperienceBracket() string {
	years := p.RequiredExperienceYears
	switch {
	case years <= 1:
		return BracketIntern
	case years <= 3:
		return BracketJunior
	case years <= 7:
		return BracketMid
	case years <= 10:
		return BracketSenior
	default:
		return BracketVeryExperienced
	}
}

// Seniority labels derived from job titles.
const (
	SeniorityManager = "مدیر / سرپرست"
	SenioritySenior  = "ارشد"
	SeniorityJunior  = "مقدماتی / کارآموز"
	SeniorityMid     = "سطح میانی"
)

var (
	managerKeywords = []string{"manager", "مدیر", "head", "سرپرست", "chief", "رئیس"}
	seniorKeywords  = []string{"senior", "ارشد"}
	juniorKeywords  = []string{"junior", "کارآموز", "intern", "تازه"}
)

// SeniorityFromTitle infers a seniority level from keywords in the raw title.
// Manager keywords win over senior, senior over junior; anything else is mid-level.
func (p JobPosting) SeniorityFromTitle() string {
	title := strings.ToLower(p.Title)
	if containsAny(title, managerKeywords) {
		return SeniorityManager
	}
	if containsAny(title, seniorKeywords) {
		return SenioritySenior
	}
	if containsAny(title, juniorKeywords) {
		return SeniorityJunior
	}
	return SeniorityMid
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Standardized company size brackets.
const (
	SizeUnder10  = "زیر ۱۰ نفر"
	Size11to50   = "۱۱ تا ۵۰ نفر"
	Size51to200  = "۵۱ تا ۲۰۰ نفر"
	Size201to500 = "۲۰۱ تا ۵۰۰ نفر"
	Size501to1k  = "۵۰۱ تا ۱۰۰۰ نفر"
	SizeOver1k   = "بیش از ۱۰۰۰ نفر"
)

// CompanySizeBrackets lists the standardized brackets from smallest to largest.
var CompanySizeBrackets = []string{
	SizeUnder10, Size11to50, Size51to200, Size201to500, Size501to1k, SizeOver1k,
}

// StandardCompanySize canonicalizes the free-form company size label.
// The raw export varies in spacing, digit script, and wording.
func (p JobPosting) StandardCompanySize() string {
	s := p.CompanySize
	if s == "" {
		return Unknown
	}
	normalized := strings.NewReplacer(" ", "", "تا", "", "نفر", "",
		"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
		"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	).Replace(s)

	switch {
	case strings.Contains(normalized, "زیر10"):
		return SizeUnder10
	case strings.Contains(normalized, "1150"):
		return Size11to50
	case strings.Contains(normalized, "51200"):
		return Size51to200
	case strings.Contains(normalized, "201500"):
		return Size201to500
	case strings.Contains(normalized, "5011000"):
		return Size501to1k
	case strings.Contains(normalized, "بیشاز1000"):
		return SizeOver1k
	default:
		return Unknown
	}
}

// CategoryDevOps is the DevOps/sys-admin job category. It sits outside the
// core IT set but joins it for the broader IT-sector analyses.
const CategoryDevOps = "دواپس و ادمین سیستم"

// itCategories are the MainJobCategory values counted as the IT sector.
var itCategories = map[string]bool{
	"توسعه نرم افزار و برنامه نویسی":        true,
	"فناوری اطلاعات٬ نرم افزار و سخت افزار": true,
	"شبکه٬ امنیت و زیرساخت":                 true,
}

// IsIT reports whether the posting belongs to the IT sector.
func (p JobPosting) IsIT() bool {
	return itCategories[p.JobCategory]
}

// MonthKey returns the activation month as "YYYY-MM", empty when unknown.
func (p JobPosting) MonthKey() string {
	if p.ActivationMonth.IsZero() {
		return ""
	}
	return p.ActivationMonth.Format("2006-01")
}
