package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Sample(t *testing.T) {
	result, err := LoadFile("testdata/cleaned_sample.csv")
	require.NoError(t, err)

	assert.Equal(t, 5, result.RowCount)
	assert.Equal(t, 0, result.SkippedRows)
	require.Len(t, result.Postings, 5)

	first := result.Postings[0]
	assert.Equal(t, "برنامه نویس ارشد بک-اند", first.Title)
	assert.Equal(t, "تهران", first.Province)
	assert.Equal(t, "توسعه نرم افزار و برنامه نویسی", first.JobCategory)
	assert.Equal(t, "تمام وقت", first.ContractType)
	assert.Equal(t, 30000000.0, first.MinSalary)
	assert.Equal(t, 50000000.0, first.MaxSalary)
	assert.True(t, first.SalaryCanBeShown)
	assert.True(t, first.IsRemote)
	assert.True(t, first.RequiredMilitaryServiceCard)
	assert.Equal(t, []string{"php", "دات نت"}, first.SoftwareSkills)
	assert.Equal(t, []string{"انگلیسی"}, first.LanguageSkills)
	assert.Equal(t, "2023-04", first.MonthKey())
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	csvData := "RawTitle,ProvinceFa,MainJobCategory\nx,y,z\n"

	_, err := Load(strings.NewReader(csvData))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "WorkTypeFa", schemaErr.Column)
}

func TestLoad_SkipsEmptyRows(t *testing.T) {
	csvData := strings.Join([]string{
		"RawTitle,ProvinceFa,MainJobCategory,WorkTypeFa",
		"برنامه نویس,تهران,فناوری اطلاعات,تمام وقت",
		",,,",
		"کارشناس فروش,اصفهان,فروش و بازاریابی,پاره وقت",
	}, "\n")

	result, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowCount)
	assert.Equal(t, 1, result.SkippedRows)
	assert.Len(t, result.Postings, 2)
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected []string
	}{
		{
			name:     "single quoted python list",
			cell:     "[{'TitleFa': 'php'}, {'TitleFa': 'لاراول'}]",
			expected: []string{"php", "لاراول"},
		},
		{
			name:     "proper json",
			cell:     `[{"TitleFa": "اکسل"}]`,
			expected: []string{"اکسل"},
		},
		{name: "empty list", cell: "[]", expected: nil},
		{name: "empty cell", cell: "", expected: nil},
		{name: "nan cell", cell: "nan", expected: nil},
		{name: "garbage", cell: "not a list", expected: nil},
		{
			name:     "blank titles filtered",
			cell:     "[{'TitleFa': ''}, {'TitleFa': 'python'}]",
			expected: []string{"python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSkills(tt.cell))
		})
	}
}
