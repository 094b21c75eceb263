package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column names in the cleaned JobVision CSV.
const (
	colTitle           = "RawTitle"
	colProvince        = "ProvinceFa"
	colCity            = "CityFa"
	colCategory        = "MainJobCategory"
	colContract        = "WorkTypeFa"
	colMinSalary       = "MinSalary"
	colMaxSalary       = "MaxSalary"
	colSalaryShown     = "SalaryCanBeShown"
	colExperience      = "RequiredExperienceYears"
	colMinAge          = "RequiredMinAge"
	colMaxAge          = "RequiredMaxAge"
	colDegree          = "DegreeLevel"
	colAcademicFields  = "AcademicFields"
	colSoftwareSkills  = "SoftwareSkills"
	colLanguageSkills  = "LanguageSkills"
	colBenefits        = "BenefitFa"
	colGender          = "PreferredGender"
	colRemote          = "IsRemote"
	colInternship      = "IsInternship"
	colMilitary        = "RequiredMilitaryServiceCard"
	colCompanySize     = "Company_SizeFa"
	colCompanyIndustry = "Company_IndustryFa"
	colCompanyActivity = "Company_ActivityTypeFa"
	colCompanyAge      = "Company_AgeFromEstablishmentYear"
	colActivation      = "ActivationTime_YEAR_MONTH"
)

// requiredColumns must be present in the header for the analysis to run.
var requiredColumns = []string{colTitle, colProvince, colCategory, colContract}

// LoadResult carries the parsed postings plus loading diagnostics.
type LoadResult struct {
	Postings    []JobPosting
	RowCount    int // data rows seen, including skipped ones
	SkippedRows int // rows dropped because they were malformed
}

// LoadFile reads a cleaned JobVision CSV from disk.
func LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load parses a cleaned JobVision CSV stream into JobPosting records.
// Malformed rows are skipped and counted; a missing required column aborts.
func Load(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &SchemaError{Column: col}
		}
	}

	result := &LoadResult{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.RowCount++
			result.SkippedRows++
			continue
		}
		result.RowCount++

		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		if field(colTitle) == "" && field(colCategory) == "" {
			result.SkippedRows++
			continue
		}

		result.Postings = append(result.Postings, JobPosting{
			Title:        field(colTitle),
			Province:     field(colProvince),
			City:         field(colCity),
			JobCategory:  field(colCategory),
			ContractType: field(colContract),

			MinSalary:        parseFloat(field(colMinSalary)),
			MaxSalary:        parseFloat(field(colMaxSalary)),
			SalaryCanBeShown: parseBool(field(colSalaryShown)),

			RequiredExperienceYears: parseFloat(field(colExperience)),
			RequiredMinAge:          parseFloat(field(colMinAge)),
			RequiredMaxAge:          parseFloat(field(colMaxAge)),

			DegreeLevel:    field(colDegree),
			AcademicFields: field(colAcademicFields),
			SoftwareSkills: ParseSkills(field(colSoftwareSkills)),
			LanguageSkills: ParseSkills(field(colLanguageSkills)),
			Benefits:       field(colBenefits),

			PreferredGender:             field(colGender),
			IsRemote:                    parseBool(field(colRemote)),
			IsInternship:                parseBool(field(colInternship)),
			RequiredMilitaryServiceCard: parseBool(field(colMilitary)),

			CompanySize:         field(colCompanySize),
			CompanyIndustry:     field(colCompanyIndustry),
			CompanyActivityType: field(colCompanyActivity),
			CompanyAgeYears:     parseFloat(field(colCompanyAge)),

			ActivationMonth: parseMonth(field(colActivation)),
		})
	}

	return result, nil
}

// skillEntry matches one element of the SoftwareSkills / LanguageSkills JSON cells.
type skillEntry struct {
	TitleFa string `json:"TitleFa"`
}

// ParseSkills parses a skills cell into skill names.
// The export stores a Python-style list with single quotes; unparsable cells yield nil.
func ParseSkills(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "[]" || cell == "nan" {
		return nil
	}

	var entries []skillEntry
	if err := json.Unmarshal([]byte(cell), &entries); err != nil {
		fixed := strings.ReplaceAll(cell, "'", `"`)
		if err := json.Unmarshal([]byte(fixed), &entries); err != nil {
			return nil
		}
	}

	var skills []string
	for _, e := range entries {
		title := strings.TrimSpace(e.TitleFa)
		if title != "" {
			skills = append(skills, title)
		}
	}
	return skills
}

func parseFloat(s string) float64 {
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "1.0", "yes":
		return true
	default:
		return false
	}
}

var monthFormats = []string{"2006-01", "2006-01-02", "2006/01"}

func parseMonth(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range monthFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
