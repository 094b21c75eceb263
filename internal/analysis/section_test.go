package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
)

const (
	catSoftware = "توسعه نرم افزار و برنامه نویسی"
	catSales    = "فروش و بازاریابی"
	catFinance  = "مالی و حسابداری"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// fixturePostings is a small market: Tehran-heavy, two active months,
// one salary outlier and one row with every categorical field missing.
func fixturePostings() []dataset.JobPosting {
	return []dataset.JobPosting{
		{
			Title: "کارشناس برنامه نویس", Province: "تهران", JobCategory: catSoftware,
			ContractType: "تمام وقت", MinSalary: 20_000_000, MaxSalary: 20_000_000,
			SoftwareSkills: []string{"Python", "SQL"}, LanguageSkills: []string{"انگلیسی"},
			AcademicFields: "مهندسی کامپیوتر", Benefits: "بیمه، پاداش",
			PreferredGender: "مهم نیست", CompanySize: "۱۱ تا ۵۰ نفر",
			CompanyIndustry: "فناوری اطلاعات", CompanyActivityType: "خدماتی",
			ActivationMonth: month(2024, time.January),
		},
		{
			Title: "Senior Python Developer", Province: "تهران", JobCategory: catSoftware,
			ContractType: "تمام وقت", MinSalary: 30_000_000, MaxSalary: 30_000_000,
			RequiredExperienceYears: 2, RequiredMinAge: 25, RequiredMaxAge: 35,
			SoftwareSkills: []string{"Python"}, LanguageSkills: []string{"انگلیسی", "آلمانی"},
			AcademicFields: "مهندسی کامپیوتر", IsRemote: true,
			CompanySize: "۵۱ تا ۲۰۰ نفر", CompanyAgeYears: 8,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.February),
		},
		{
			Title: "کارشناس فروش", Province: "تهران", JobCategory: catSales,
			ContractType: "پاره وقت", MinSalary: 15_000_000, MaxSalary: 15_000_000,
			RequiredExperienceYears: 5, RequiredMinAge: 22, RequiredMaxAge: 30,
			AcademicFields: "مدیریت", CompanyIndustry: "خرده‌فروشی", CompanyAgeYears: 4,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.January),
		},
		{
			Title: "Senior DevOps Engineer", Province: "تهران", JobCategory: catSoftware,
			ContractType: "تمام وقت", MinSalary: 40_000_000, MaxSalary: 40_000_000,
			RequiredExperienceYears: 3, RequiredMinAge: 28, RequiredMaxAge: 40,
			SoftwareSkills: []string{"Docker"}, IsRemote: true, CompanyAgeYears: 12,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.February),
		},
		{
			Title: "کارشناس فروش", Province: "اصفهان", JobCategory: catSales,
			ContractType: "تمام وقت", MinSalary: 18_000_000, MaxSalary: 18_000_000,
			RequiredExperienceYears: 1, RequiredMinAge: 20, RequiredMaxAge: 28,
			Benefits: "بیمه", CompanySize: "۱۱ تا ۵۰ نفر",
			CompanyIndustry: "خرده‌فروشی", CompanyActivityType: "تولیدی", CompanyAgeYears: 3,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.January),
		},
		{
			Title: "مدیر فروش منطقه", Province: "اصفهان", JobCategory: catSales,
			ContractType: "قراردادی", RequiredExperienceYears: 8,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.February),
		},
		{
			Title: "حسابدار", Province: "فارس", JobCategory: catFinance,
			ContractType: "تمام وقت", MinSalary: 500_000_000, MaxSalary: 500_000_000,
			RequiredExperienceYears: 20, RequiredMilitaryServiceCard: true,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.January),
		},
		{
			Title: "کارآموز اداری", Province: dataset.Unknown, JobCategory: dataset.Unknown,
			ContractType: dataset.Unknown, IsInternship: true,
			PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.February),
		},
	}
}

func TestRunAllSections(t *testing.T) {
	results, err := Run(fixturePostings(), DefaultOptions(), nil)
	require.NoError(t, err)
	require.Len(t, results, len(Catalog()))

	assert.Equal(t, Slugs(), resultSlugs(results), "results keep catalog order")
	for _, r := range results {
		assert.NotEmpty(t, r.TitleEN, r.Slug)
		assert.NotEmpty(t, r.TitleFA, r.Slug)
		require.NotEmpty(t, r.Bullets, r.Slug)
		for _, b := range r.Bullets {
			assert.NotEmpty(t, b.EN, r.Slug)
			assert.NotEmpty(t, b.FA, r.Slug)
		}
	}
}

func TestRunSelectedSections(t *testing.T) {
	results, err := Run(fixturePostings(), DefaultOptions(), []string{"remote-work", "province-distribution"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Selection never reorders: the catalog order wins.
	assert.Equal(t, "province-distribution", results[0].Slug)
	assert.Equal(t, "remote-work", results[1].Slug)
}

func TestRunUnknownSlug(t *testing.T) {
	_, err := Run(fixturePostings(), DefaultOptions(), []string{"salary-forecast"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salary-forecast")
}

func TestRunEmptyDataset(t *testing.T) {
	results, err := Run(nil, DefaultOptions(), nil)
	require.NoError(t, err)
	require.Len(t, results, len(Catalog()))
	for _, r := range results {
		require.NotEmpty(t, r.Bullets, r.Slug)
		assert.Empty(t, r.Groups, r.Slug)
	}
}

func TestProvinceDistribution(t *testing.T) {
	r := provinceDistribution(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "تهران", r.Groups[0].Key)
	assert.Equal(t, 4, r.Groups[0].Count)
	assert.Len(t, r.Groups, 3, "the unknown province is excluded")
	assert.InDelta(t, 100, shareSum(r.Groups), 0.1)
}

func TestJobCategories(t *testing.T) {
	r := jobCategories(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, catSoftware, r.Groups[0].Key)
	assert.Equal(t, 3, r.Groups[0].Count)
	assert.InDelta(t, 100, shareSum(r.Groups), 0.1)
}

func TestContractTypes(t *testing.T) {
	r := contractTypes(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "تمام وقت", r.Groups[0].Key)
	assert.Equal(t, 5, r.Groups[0].Count)
	assert.InDelta(t, 100, shareSum(r.Groups), 0.1)
}

func TestWorkExperienceBrackets(t *testing.T) {
	r := workExperience(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	// The 20-year posting sits exactly on the outlier cap and stays in.
	total := 0
	for _, g := range r.Groups {
		total += g.Count
	}
	assert.Equal(t, 8, total)
	assert.Equal(t, dataset.BracketIntern, r.Groups[0].Key, "brackets come least-experienced first")
	assert.Equal(t, 3, r.Groups[0].Count)
	assert.InDelta(t, 100, shareSum(r.Groups), 0.1)
}

func TestCompanySize(t *testing.T) {
	r := companySize(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2)
	assert.Equal(t, dataset.Size11to50, r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count)
	assert.Equal(t, dataset.Size51to200, r.Groups[1].Key)
}

func TestRemoteWork(t *testing.T) {
	r := remoteWork(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2)
	for _, g := range r.Groups {
		if g.Key == "دورکاری" {
			assert.Equal(t, 2, g.Count)
			assert.InDelta(t, 25, g.Share, 0.01)
		}
	}
}

func TestSalaryDistributionCapsOutliers(t *testing.T) {
	r := salaryDistribution(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Bins)
	binned := 0
	for _, b := range r.Bins {
		binned += b.Count
	}
	assert.Equal(t, 5, binned, "the 500M outlier falls above the cap quantile")
}

func TestSalaryByCategory(t *testing.T) {
	r := salaryByCategory(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, ValueSalary, r.ValueKind)
	assert.Equal(t, catSoftware, r.Groups[0].Key)
	assert.InDelta(t, 30_000_000, r.Groups[0].Value, 1)
	for i := 1; i < len(r.Groups); i++ {
		assert.GreaterOrEqual(t, r.Groups[i-1].Value, r.Groups[i].Value)
	}
}

func TestSalaryByProvince(t *testing.T) {
	r := salaryByProvince(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "تهران", r.Groups[0].Key)
	assert.InDelta(t, 26_250_000, r.Groups[0].Value, 1)
}

func TestSalaryByCompanySize(t *testing.T) {
	r := salaryByCompanySize(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2)
	assert.Equal(t, dataset.Size11to50, r.Groups[0].Key, "brackets come smallest company first")
	assert.InDelta(t, 30_000_000, r.Groups[1].Value, 1)
}

func TestSalaryBySeniority(t *testing.T) {
	r := salaryBySeniority(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, dataset.SenioritySenior, r.Groups[0].Key)
	assert.InDelta(t, 35_000_000, r.Groups[0].Value, 1)
}

func TestTopSkills(t *testing.T) {
	r := topSkills(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "Python", r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count)
}

func TestLanguageSkills(t *testing.T) {
	r := languageSkills(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "انگلیسی", r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count)
}

func TestAcademicFields(t *testing.T) {
	r := academicFields(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "مهندسی کامپیوتر", r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count)
}

func TestGenderPreference(t *testing.T) {
	r := genderPreference(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 1, "only one posting declares a preference")
	assert.Equal(t, "مهم نیست", r.Groups[0].Key)
	assert.InDelta(t, 100, r.Groups[0].Share, 0.01)
}

func TestMilitaryService(t *testing.T) {
	r := militaryService(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2)
	for _, g := range r.Groups {
		if g.Key == "الزامی" {
			assert.Equal(t, 1, g.Count)
			assert.InDelta(t, 12.5, g.Share, 0.01)
		}
	}
}

func TestInternships(t *testing.T) {
	r := internships(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2)
	for _, g := range r.Groups {
		if g.Key == "کارآموزی" {
			assert.Equal(t, 1, g.Count)
		}
	}
}

func TestNewGraduateJobs(t *testing.T) {
	r := newGraduateJobs(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, catSoftware, r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count, "two software postings ask for at most two years")
}

func TestAgeRequirements(t *testing.T) {
	r := ageRequirements(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Bullets)
	assert.Contains(t, r.Bullets[0].EN, "28.5", "midpoints average to 28.5 years")
}

func TestCompanyIndustry(t *testing.T) {
	r := companyIndustry(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "خرده‌فروشی", r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count)
}

func TestCompanyAge(t *testing.T) {
	r := companyAge(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Bullets)
	// Ages 8, 4, 12 and 3 average to 6.75 with a median of 6.
	assert.Contains(t, r.Bullets[0].EN, "6.8")
}

func TestJobBenefits(t *testing.T) {
	r := jobBenefits(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "بیمه", r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count, "the comma-separated cell splits into mentions")
}

func TestSplitBenefits(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{name: "two benefits", cell: "بیمه، پاداش", want: []string{"بیمه", "پاداش"}},
		{name: "single", cell: "بیمه", want: []string{"بیمه"}},
		{name: "empty", cell: "", want: nil},
		{name: "unknown", cell: dataset.Unknown, want: nil},
		{name: "stray spaces", cell: " بیمه ، پاداش ", want: []string{"بیمه", "پاداش"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitBenefits(tt.cell))
		})
	}
}

func TestMarketTrends(t *testing.T) {
	r := marketTrends(fixturePostings(), DefaultOptions())

	require.Len(t, r.Series, 2)
	assert.Equal(t, "2024-01", r.Series[0].Month)
	assert.Equal(t, "2024-02", r.Series[1].Month)
	assert.Equal(t, 4, r.Series[0].Count)
}

func TestRemoteWorkTrends(t *testing.T) {
	r := remoteWorkTrends(fixturePostings(), DefaultOptions())

	require.Len(t, r.Series, 2)
	assert.InDelta(t, 0, r.Series[0].Value, 0.01)
	assert.InDelta(t, 50, r.Series[1].Value, 0.01)
	assert.Contains(t, r.Bullets[0].EN, "grown")
}

func TestITMarketComparison(t *testing.T) {
	r := itMarketComparison(fixturePostings(), DefaultOptions())

	require.NotEmpty(t, r.Bullets)
	assert.Contains(t, r.Bullets[0].EN, "37.5%", "three of eight postings are IT")
	require.Len(t, r.Series, 2)
}

func TestDemandHeatmap(t *testing.T) {
	r := demandHeatmap(fixturePostings(), DefaultOptions())

	require.NotNil(t, r.Pivot)
	assert.Len(t, r.Pivot.RowKeys, 3)
	assert.Len(t, r.Pivot.ColKeys, 3)
	assert.Contains(t, r.Bullets[0].EN, "تهران")
	assert.Contains(t, r.Bullets[0].EN, catSoftware)
}

func TestCorrelationMatrix(t *testing.T) {
	r := correlationMatrix(fixturePostings(), DefaultOptions())

	require.NotNil(t, r.Matrix)
	require.Len(t, r.Matrix.Labels, 6)
	for i := range r.Matrix.Values {
		assert.InDelta(t, 1, r.Matrix.Values[i][i], 1e-9)
		for j := range r.Matrix.Values {
			assert.InDelta(t, r.Matrix.Values[j][i], r.Matrix.Values[i][j], 1e-9)
		}
	}
	// Min and max salary coincide in the fixture, so they correlate perfectly.
	assert.InDelta(t, 1, r.Matrix.Values[0][1], 1e-9)
}

func TestCorrelationMatrixNeedsCompleteRows(t *testing.T) {
	posts := fixturePostings()[:1]
	r := correlationMatrix(posts, DefaultOptions())
	assert.Nil(t, r.Matrix)
	require.NotEmpty(t, r.Bullets)
}

func TestTopPayingSkills(t *testing.T) {
	var posts []dataset.JobPosting
	for i := 1; i <= 9; i++ {
		v := float64(i) * 10_000_000
		posts = append(posts, dataset.JobPosting{MinSalary: v, MaxSalary: v, SoftwareSkills: []string{"اکسل"}})
	}
	for i := 0; i < 2; i++ {
		posts = append(posts, dataset.JobPosting{
			MinSalary: 100_000_000, MaxSalary: 100_000_000, SoftwareSkills: []string{"گو"},
		})
	}

	r := topPayingSkills(posts, DefaultOptions())

	// The 90th percentile of the eleven salaries is exactly 100M, so only
	// the two top earners survive the filter.
	require.NotEmpty(t, r.Groups)
	assert.Equal(t, "گو", r.Groups[0].Key)
	assert.Equal(t, 2, r.Groups[0].Count)
	assert.Contains(t, r.Bullets[0].EN, "90th")
	assert.Contains(t, r.Bullets[0].EN, "100,000,000")
}

func TestStandardizeITRole(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Senior Back-End Developer", want: "توسعه دهنده بک-اند"},
		{title: "برنامه نویس بک اند", want: "توسعه دهنده بک-اند"},
		{title: "fullstack engineer", want: "توسعه دهنده فول-استک"},
		{title: "iOS Developer", want: "توسعه دهنده iOS"},
		{title: "مهندس دواپس", want: "مهندس DevOps"},
		{title: "Data Scientist", want: "دانشمند / تحلیلگر داده"},
		{title: "کارشناس امنیت شبکه", want: "مهندس شبکه"},
		{title: "کارشناس پشتیبانی", want: ITRoleOther},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, standardizeITRole(tt.title))
		})
	}
}

func TestITRoleSalaries(t *testing.T) {
	posts := []dataset.JobPosting{
		{Title: "Senior Backend Developer", JobCategory: catSoftware, MinSalary: 40_000_000, MaxSalary: 40_000_000},
		{Title: "برنامه نویس بک اند", JobCategory: catSoftware, MinSalary: 20_000_000, MaxSalary: 20_000_000},
		{Title: "Frontend Developer", JobCategory: catSoftware, MinSalary: 24_000_000, MaxSalary: 24_000_000},
		{Title: "کارشناس پشتیبانی", JobCategory: catSoftware, MinSalary: 18_000_000, MaxSalary: 18_000_000},
		{Title: "مدیر فروش", JobCategory: catSales, MinSalary: 50_000_000, MaxSalary: 50_000_000},
	}
	opts := DefaultOptions().Merge(Options{MinRoleCount: 1, SalaryCapQuantile: 1})

	r := itRoleSalaries(posts, opts)

	require.NotEmpty(t, r.Groups)
	assert.Equal(t, ValueSalary, r.ValueKind)
	assert.Equal(t, "توسعه دهنده بک-اند", r.Groups[0].Key, "best-paid role comes first")
	assert.Equal(t, 2, r.Groups[0].Count)
	assert.InDelta(t, 30_000_000, r.Groups[0].Value, 1)
	assert.Len(t, r.Groups, 3, "the sales posting never enters the IT pool")
}

func TestITRoleSalariesNeedsEnoughPostings(t *testing.T) {
	r := itRoleSalaries(fixturePostings(), DefaultOptions())

	// No role reaches 500 salaried postings in a market this small.
	assert.Empty(t, r.Groups)
	require.NotEmpty(t, r.Bullets)
}

func TestExperienceBySkill(t *testing.T) {
	posts := []dataset.JobPosting{
		{SoftwareSkills: []string{"پایتون"}, RequiredExperienceYears: 2},
		{SoftwareSkills: []string{"پایتون"}, RequiredExperienceYears: 4},
		{SoftwareSkills: []string{"جاوا"}, RequiredExperienceYears: 6},
		{SoftwareSkills: []string{"پایتون"}},
		{SoftwareSkills: []string{"جاوا"}, RequiredExperienceYears: 16},
		{SoftwareSkills: []string{"اکسل"}, RequiredExperienceYears: 3},
	}

	r := experienceBySkill(posts, DefaultOptions())

	require.Len(t, r.Groups, 2, "zero, capped and non-key mentions drop out")
	assert.Equal(t, ValueYears, r.ValueKind)
	assert.Equal(t, "پایتون", r.Groups[0].Key, "groups follow the key-skill display order")
	assert.InDelta(t, 3, r.Groups[0].Value, 1e-9)
	assert.Equal(t, "جاوا", r.Groups[1].Key)
	assert.InDelta(t, 6, r.Groups[1].Value, 1e-9)
	assert.Contains(t, r.Bullets[0].EN, "جاوا", "the steepest skill leads the bullet")
}

func TestExperienceVsEducation(t *testing.T) {
	posts := []dataset.JobPosting{
		{DegreeLevel: "دکتری", RequiredExperienceYears: 10},
		{DegreeLevel: "کارشناسی", RequiredExperienceYears: 3},
		{DegreeLevel: "کارشناسی ارشد", RequiredExperienceYears: 6},
		{DegreeLevel: "کارشناسی"},
		{DegreeLevel: dataset.Unknown, RequiredExperienceYears: 5},
	}
	opts := DefaultOptions().Merge(Options{ExperienceCapQuantile: 1})

	r := experienceVsEducation(posts, opts)

	require.Len(t, r.Groups, 3)
	assert.Equal(t, ValueYears, r.ValueKind)
	assert.Equal(t, "کارشناسی", r.Groups[0].Key, "groups come lowest degree first")
	assert.InDelta(t, 3, r.Groups[0].Value, 1e-9)
	assert.Equal(t, "دکتری", r.Groups[2].Key)
	assert.InDelta(t, 10, r.Groups[2].Value, 1e-9)
	assert.Contains(t, r.Bullets[0].EN, "10.0")
}

func TestCompanyActivity(t *testing.T) {
	r := companyActivity(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2, "postings without an activity type drop out")
	assert.Equal(t, "خدماتی", r.Groups[0].Key)
	assert.Equal(t, 1, r.Groups[0].Count)
	assert.InDelta(t, 50, r.Groups[0].Share, 0.01)
	assert.Contains(t, r.Bullets[0].EN, "خدماتی")
}

func TestTopProvinceIndustries(t *testing.T) {
	posts := []dataset.JobPosting{
		{Province: "تهران", CompanyIndustry: "فناوری اطلاعات، فروشگاه های انلاین"},
		{Province: "تهران", CompanyIndustry: "فناوری اطلاعات"},
		{Province: "اصفهان", CompanyIndustry: "خرده‌فروشی"},
		{Province: dataset.Unknown, CompanyIndustry: "خرده‌فروشی"},
	}

	r := topProvinceIndustries(posts, DefaultOptions())

	require.NotNil(t, r.Pivot)
	assert.Equal(t, []string{"تهران", "اصفهان"}, r.Pivot.RowKeys)
	assert.Len(t, r.Pivot.ColKeys, 3, "the multi-industry cell splits into two mentions")
	assert.Contains(t, r.Bullets[0].EN, "تهران")
	assert.Contains(t, r.Bullets[0].EN, "فناوری اطلاعات")
}

func TestSplitIndustries(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{name: "persian comma", cell: "فناوری اطلاعات، خرده‌فروشی", want: []string{"فناوری اطلاعات", "خرده‌فروشی"}},
		{name: "latin comma", cell: "بیمه,بانکداری", want: []string{"بیمه", "بانکداری"}},
		{name: "single", cell: "بیمه", want: []string{"بیمه"}},
		{name: "empty", cell: "", want: nil},
		{name: "unknown", cell: dataset.Unknown, want: nil},
		{name: "stray spaces", cell: " بیمه ، بانکداری ", want: []string{"بیمه", "بانکداری"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitIndustries(tt.cell))
		})
	}
}

func TestGenderTrends(t *testing.T) {
	posts := []dataset.JobPosting{
		{PreferredGender: "فقط آقا", ActivationMonth: month(2024, time.February)},
		{PreferredGender: "فقط آقا", ActivationMonth: month(2024, time.January)},
		{PreferredGender: "فقط آقا", ActivationMonth: month(2024, time.January)},
		{PreferredGender: "فقط خانم", ActivationMonth: month(2024, time.January)},
		{PreferredGender: dataset.Unknown, ActivationMonth: month(2024, time.February)},
	}

	r := genderTrends(posts, DefaultOptions())

	require.NotNil(t, r.Pivot)
	assert.Equal(t, []string{"2024-01", "2024-02"}, r.Pivot.RowKeys, "rows come in month order")
	assert.Equal(t, []string{"فقط آقا", "فقط خانم"}, r.Pivot.ColKeys)
	assert.Equal(t, 2, r.Pivot.Counts[0][0])
	assert.Contains(t, r.Bullets[0].EN, "فقط آقا")
}

func TestRemoteWorkSeasonality(t *testing.T) {
	posts := []dataset.JobPosting{
		{IsRemote: true, ActivationMonth: month(2023, time.January)},
		{ActivationMonth: month(2024, time.January)},
		{ActivationMonth: month(2024, time.March)},
	}

	r := remoteWorkSeasonality(posts, DefaultOptions())

	require.Len(t, r.Series, 2, "the two calendar years pool into months of the year")
	assert.Equal(t, "01", r.Series[0].Month)
	assert.InDelta(t, 50, r.Series[0].Value, 0.01)
	assert.Equal(t, "03", r.Series[1].Month)
	assert.InDelta(t, 0, r.Series[1].Value, 0.01)
	assert.Contains(t, r.Bullets[0].EN, "50.0%")
}

func TestITRemoteComparison(t *testing.T) {
	r := itRemoteComparison(fixturePostings(), DefaultOptions())

	require.Len(t, r.Groups, 2)
	assert.Equal(t, ValuePercent, r.ValueKind)
	assert.Equal(t, "فناوری اطلاعات", r.Groups[0].Key, "the more remote sector comes first")
	assert.Equal(t, 3, r.Groups[0].Count)
	assert.InDelta(t, 66.67, r.Groups[0].Value, 0.01)
	assert.InDelta(t, 0, r.Groups[1].Value, 0.01)
}

func TestITSkillsByProvince(t *testing.T) {
	r := itSkillsByProvince(fixturePostings(), DefaultOptions())

	require.NotNil(t, r.Pivot)
	assert.Equal(t, []string{"تهران"}, r.Pivot.RowKeys, "only IT postings feed the pivot")
	assert.Len(t, r.Pivot.ColKeys, 3)
	assert.Equal(t, 2, r.Pivot.Counts[0][0], "Python leads the busiest province")
	assert.Contains(t, r.Bullets[0].EN, "Python")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 12, opts.TopProvinces)
	assert.Equal(t, 5, opts.TopSalaryProvinces)
	assert.Equal(t, 10, opts.TopCategories)
	assert.Equal(t, 40, opts.HistogramBins)
	assert.Equal(t, 5, opts.HeatmapRows)
	assert.Equal(t, 500, opts.MinRoleCount)
	assert.InDelta(t, 0.98, opts.SalaryCapQuantile, 1e-9)
	assert.InDelta(t, 0.99, opts.HistogramCapQuantile, 1e-9)
	assert.InDelta(t, 0.90, opts.HighSalaryQuantile, 1e-9)
	assert.InDelta(t, 20, opts.ExperienceCapYears, 1e-9)
	assert.InDelta(t, 15, opts.SkillExperienceCapYears, 1e-9)
}

func TestOptionsMerge(t *testing.T) {
	merged := DefaultOptions().Merge(Options{TopSkills: 3, SalaryCapQuantile: 0.95})

	assert.Equal(t, 3, merged.TopSkills)
	assert.InDelta(t, 0.95, merged.SalaryCapQuantile, 1e-9)
	assert.Equal(t, 12, merged.TopProvinces, "untouched fields keep their defaults")
	assert.Equal(t, 40, merged.HistogramBins)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "1,234,567", formatInt(1234567))
	assert.Equal(t, "987", formatInt(987))
	assert.Equal(t, "12,345.6", formatFloat(12345.61, 1))
	assert.Equal(t, "42.5%", formatPercent(42.51))
}

func resultSlugs(results []SectionResult) []string {
	slugs := make([]string, len(results))
	for i, r := range results {
		slugs[i] = r.Slug
	}
	return slugs
}
