// Package cleaning transforms the raw JobVision export into the cleaned CSV the analysis consumes.
package cleaning

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// replacements maps stray English terms inside Persian text columns to
// their Persian equivalents. Applied case-insensitively, longest first.
var replacements = []struct {
	from string
	to   string
}{
	{"net core", "دات نت کر"},
	{"coremvc", "دات‌نت کر ام‌وی‌سی"},
	{".net", "دات نت"},
	{"net.", "دات نت"},
	{"HSE", "بهداشت، ایمنی و محیط زیست"},
	{"UI/UX", "رابط و تجربه کاربری"},
	{"DevOps", "دواپس"},
	{"Sys-Admin", "ادمین سیستم"},
	{"MDF", "ام‌دی‌اف"},
	{"Back-End", "بک-اند"},
	{"Front-End", "فرانت-اند"},
	{"Full-Stack", "فول-استک"},
	{"IT", "فناوری اطلاعات"},
}

// textColumns receive the term replacement pass.
var textColumns = map[string]bool{
	"MainJobCategory":    true,
	"IndustryFa":         true,
	"Company_IndustryFa": true,
	"RawTitle":           true,
}

// droppedColumns are redundant English-label twins of the Persian columns.
var droppedColumns = map[string]bool{
	"RowNumber":               true,
	"ProvinceEn":              true,
	"WorkTypeEn":              true,
	"IndustryEn":              true,
	"BenefitEn":               true,
	"CityEn":                  true,
	"CompanyOwnershipTypesEn": true,
	"SizeEn":                  true,
	"ActivityTypeEn":          true,
	"Company_ProvinceEn":      true,
}

// categoricalFills are written into empty cells of the named columns.
var categoricalFills = map[string]string{
	"ProvinceFa":              "نامشخص",
	"WorkTypeFa":              "نامشخص",
	"MainJobCategory":         "نامشخص",
	"RequiredExperienceYears": "0",
}

// booleanColumns are normalized to "True"/"False".
var booleanColumns = map[string]bool{
	"SalaryCanBeShown":                        true,
	"RequiredRelatedExperienceInThisIndustry": true,
	"HasDisabilitySupport":                    true,
	"IsRemote":                                true,
	"IsInternship":                            true,
	"PriorityWithLocalCandidate":              true,
	"RequiredMilitaryServiceCard":             true,
}

// PreprocessFile cleans the raw export at inputPath and writes the result to outputPath.
func PreprocessFile(inputPath, outputPath string) (*Stats, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open raw dataset %s: %w", inputPath, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer func() { _ = out.Close() }()

	stats, err := Preprocess(in, out)
	if err != nil {
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush output file %s: %w", outputPath, err)
	}
	return stats, nil
}

// Stats summarizes a preprocessing run.
type Stats struct {
	Rows           int // data rows written
	DroppedColumns int
	RenamedColumns int
}

// Preprocess reads the raw CSV from r and writes the cleaned CSV to w.
//
// Steps, in order: rename columns (strip the Jobpost_ prefix, fix the
// Comany_ typo), drop the redundant *En columns, replace English terms in
// the text columns, fill missing categorical values, and normalize the
// boolean columns to True/False.
func Preprocess(r io.Reader, w io.Writer) (*Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(w)

	rawHeader, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read raw CSV header: %w", err)
	}

	stats := &Stats{}

	// keep[i] is false for dropped columns; header holds the renamed survivors.
	keep := make([]bool, len(rawHeader))
	var header []string
	for i, name := range rawHeader {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		renamed := RenameColumn(name)
		if renamed != name {
			stats.RenamedColumns++
		}
		if droppedColumns[renamed] {
			stats.DroppedColumns++
			continue
		}
		keep[i] = true
		header = append(header, renamed)
	}

	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read raw CSV row: %w", err)
		}

		cleaned := make([]string, 0, len(header))
		col := 0
		for i, cell := range row {
			if i >= len(keep) || !keep[i] {
				continue
			}
			name := header[col]
			col++
			cleaned = append(cleaned, cleanCell(name, cell))
		}
		// Short rows still need the fills applied positionally.
		for col < len(header) {
			cleaned = append(cleaned, cleanCell(header[col], ""))
			col++
		}

		if err := writer.Write(cleaned); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
		stats.Rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush cleaned CSV: %w", err)
	}
	return stats, nil
}

// RenameColumn maps a raw header name to its cleaned name.
func RenameColumn(name string) string {
	if strings.HasPrefix(name, "Jobpost_") {
		return strings.TrimPrefix(name, "Jobpost_")
	}
	if strings.HasPrefix(name, "Comany_") {
		return "Company_" + strings.TrimPrefix(name, "Comany_")
	}
	return name
}

func cleanCell(column, cell string) string {
	cell = strings.TrimSpace(cell)

	if textColumns[column] {
		cell = ReplaceTerms(cell)
	}
	if cell == "" || strings.EqualFold(cell, "nan") {
		if fill, ok := categoricalFills[column]; ok {
			return fill
		}
		cell = ""
	}
	if booleanColumns[column] {
		return normalizeBool(cell)
	}
	return cell
}

// ReplaceTerms rewrites English terms and slash separators to Persian inside a text cell.
func ReplaceTerms(s string) string {
	s = strings.ReplaceAll(s, " / ", "، ")
	for _, r := range replacements {
		s = replaceFold(s, r.from, r.to)
	}
	return s
}

// replaceFold is a case-insensitive strings.ReplaceAll.
func replaceFold(s, from, to string) string {
	if from == "" {
		return s
	}
	lower := strings.ToLower(s)
	target := strings.ToLower(from)

	var sb strings.Builder
	for {
		i := strings.Index(lower, target)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:i])
		sb.WriteString(to)
		s = s[i+len(from):]
		lower = lower[i+len(target):]
	}
}

func normalizeBool(cell string) string {
	switch strings.ToLower(cell) {
	case "true", "1", "1.0", "yes":
		return "True"
	default:
		return "False"
	}
}
