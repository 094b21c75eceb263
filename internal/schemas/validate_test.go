package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptionsJSON_Valid(t *testing.T) {
	content := `{
		"top_provinces": 8,
		"salary_cap_quantile": 0.95,
		"high_salary_quantile": 0.9,
		"histogram_bins": 30,
		"min_role_count": 200
	}`

	err := ValidateOptionsJSON(content)
	assert.NoError(t, err)
}

func TestValidateOptionsJSON_Empty(t *testing.T) {
	err := ValidateOptionsJSON(`{}`)
	assert.NoError(t, err)
}

func TestValidateOptionsJSON_UnknownField(t *testing.T) {
	err := ValidateOptionsJSON(`{"top_cities": 3}`)

	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected a ValidationError, got %T", err)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "top_cities")
}

func TestValidateOptionsJSON_BadTypes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "string count", content: `{"top_skills": "many"}`, field: "top_skills"},
		{name: "zero count", content: `{"top_provinces": 0}`, field: "top_provinces"},
		{name: "quantile above one", content: `{"salary_cap_quantile": 1.5}`, field: "salary_cap_quantile"},
		{name: "negative years", content: `{"experience_cap_years": -3}`, field: "experience_cap_years"},
		{name: "zero role count", content: `{"min_role_count": 0}`, field: "min_role_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptionsJSON(tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadOptionsFile(t *testing.T) {
	content := `{"top_provinces": 6, "histogram_bins": 40}`
	tmpFile := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	opts, err := LoadOptionsFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 6, opts.TopProvinces)
	assert.Equal(t, 40, opts.HistogramBins)
	assert.Zero(t, opts.TopSkills, "unset fields stay zero for merging")
}

func TestLoadOptionsFile_NotFound(t *testing.T) {
	_, err := LoadOptionsFile("/nonexistent/options.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read options file")
}

func TestLoadOptionsFile_Invalid(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"histogram_bins": 0}`), 0644))

	_, err := LoadOptionsFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "histogram_bins")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
