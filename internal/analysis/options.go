package analysis

// Options are the tunable analysis parameters. The defaults mirror the
// constants used across the published JobVision EDA figures; a JSON
// options file may override any subset.
type Options struct {
	TopProvinces       int `json:"top_provinces,omitempty"`
	TopSalaryProvinces int `json:"top_salary_provinces,omitempty"`
	TopCategories      int `json:"top_categories,omitempty"`
	TopSkills          int `json:"top_skills,omitempty"`
	TopLanguages       int `json:"top_languages,omitempty"`
	TopFields          int `json:"top_fields,omitempty"`
	TopIndustries      int `json:"top_industries,omitempty"`
	TopBenefits        int `json:"top_benefits,omitempty"`

	HistogramBins int `json:"histogram_bins,omitempty"`

	// Quantile caps strip extreme outliers before salary aggregation.
	SalaryCapQuantile    float64 `json:"salary_cap_quantile,omitempty"`
	HistogramCapQuantile float64 `json:"histogram_cap_quantile,omitempty"`

	// HighSalaryQuantile is the floor of the high-earner slice used by the
	// top-paying-skills section.
	HighSalaryQuantile float64 `json:"high_salary_quantile,omitempty"`

	ExperienceCapYears      float64 `json:"experience_cap_years,omitempty"`
	ExperienceCapQuantile   float64 `json:"experience_cap_quantile,omitempty"`
	SkillExperienceCapYears float64 `json:"skill_experience_cap_years,omitempty"`
	NewGraduateMaxYears     float64 `json:"new_graduate_max_years,omitempty"`

	// MinRoleCount hides IT roles with too few salaried postings to compare.
	MinRoleCount int `json:"min_role_count,omitempty"`

	HeatmapRows int `json:"heatmap_rows,omitempty"`
	HeatmapCols int `json:"heatmap_cols,omitempty"`

	// Limits for the per-province pivots (IT skills, industries).
	TopPivotProvinces int `json:"top_pivot_provinces,omitempty"`
	TopProvinceSkills int `json:"top_province_skills,omitempty"`
}

// DefaultOptions returns the analysis defaults used by the published figures.
func DefaultOptions() Options {
	return Options{
		TopProvinces:       12,
		TopSalaryProvinces: 5,
		TopCategories:      10,
		TopSkills:          15,
		TopLanguages:       5,
		TopFields:          15,
		TopIndustries:      12,
		TopBenefits:        10,

		HistogramBins: 40,

		SalaryCapQuantile:    0.98,
		HistogramCapQuantile: 0.99,
		HighSalaryQuantile:   0.90,

		ExperienceCapYears:      20,
		ExperienceCapQuantile:   0.98,
		SkillExperienceCapYears: 15,
		NewGraduateMaxYears:     2,

		MinRoleCount: 500,

		HeatmapRows: 5,
		HeatmapCols: 10,

		TopPivotProvinces: 5,
		TopProvinceSkills: 10,
	}
}

// Merge overlays non-zero fields of override onto o and returns the result.
func (o Options) Merge(override Options) Options {
	merged := o
	if override.TopProvinces > 0 {
		merged.TopProvinces = override.TopProvinces
	}
	if override.TopSalaryProvinces > 0 {
		merged.TopSalaryProvinces = override.TopSalaryProvinces
	}
	if override.TopCategories > 0 {
		merged.TopCategories = override.TopCategories
	}
	if override.TopSkills > 0 {
		merged.TopSkills = override.TopSkills
	}
	if override.TopLanguages > 0 {
		merged.TopLanguages = override.TopLanguages
	}
	if override.TopFields > 0 {
		merged.TopFields = override.TopFields
	}
	if override.TopIndustries > 0 {
		merged.TopIndustries = override.TopIndustries
	}
	if override.TopBenefits > 0 {
		merged.TopBenefits = override.TopBenefits
	}
	if override.HistogramBins > 0 {
		merged.HistogramBins = override.HistogramBins
	}
	if override.SalaryCapQuantile > 0 {
		merged.SalaryCapQuantile = override.SalaryCapQuantile
	}
	if override.HistogramCapQuantile > 0 {
		merged.HistogramCapQuantile = override.HistogramCapQuantile
	}
	if override.HighSalaryQuantile > 0 {
		merged.HighSalaryQuantile = override.HighSalaryQuantile
	}
	if override.ExperienceCapYears > 0 {
		merged.ExperienceCapYears = override.ExperienceCapYears
	}
	if override.ExperienceCapQuantile > 0 {
		merged.ExperienceCapQuantile = override.ExperienceCapQuantile
	}
	if override.SkillExperienceCapYears > 0 {
		merged.SkillExperienceCapYears = override.SkillExperienceCapYears
	}
	if override.NewGraduateMaxYears > 0 {
		merged.NewGraduateMaxYears = override.NewGraduateMaxYears
	}
	if override.MinRoleCount > 0 {
		merged.MinRoleCount = override.MinRoleCount
	}
	if override.HeatmapRows > 0 {
		merged.HeatmapRows = override.HeatmapRows
	}
	if override.HeatmapCols > 0 {
		merged.HeatmapCols = override.HeatmapCols
	}
	if override.TopPivotProvinces > 0 {
		merged.TopPivotProvinces = override.TopPivotProvinces
	}
	if override.TopProvinceSkills > 0 {
		merged.TopProvinceSkills = override.TopProvinceSkills
	}
	return merged
}
