package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
		contains string
	}{
		{"generation.json", "tailor-resume", "JOB DESCRIPTION"},
		{"generation.json", "cover-letter", "under 400 words"},
		{"roast.json", "roast-resume", "shortlist_probability"},
		{"parsing.json", "extract-profile", "RESUME TEXT TO PARSE"},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.key, func(t *testing.T) {
			template, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.Contains(t, template, tt.contains)
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("roast.json", "no-such-prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-prompt")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	require.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("roast.json", "no-such-prompt") })
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, job: {{.Job}}"
	result := Format(template, map[string]string{"Name": "Jane", "Job": "SRE"})
	assert.Equal(t, "Hello Jane, job: SRE", result)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}

func TestTemplatesHaveNoStrayPlaceholderTypos(t *testing.T) {
	for _, tt := range []struct {
		filename, key string
		placeholders  []string
	}{
		{"generation.json", "tailor-resume", []string{"{{.ContactBlock}}", "{{.JobDescription}}", "{{.CandidateData}}", "{{.TemplateStyle}}"}},
		{"generation.json", "cover-letter", []string{"{{.ContactBlock}}", "{{.JobDescription}}", "{{.Background}}"}},
		{"roast.json", "roast-resume", []string{"{{.ResumeContent}}", "{{.JobDescription}}"}},
		{"parsing.json", "extract-profile", []string{"{{.ResumeText}}"}},
	} {
		template := MustGet(tt.filename, tt.key)
		for _, ph := range tt.placeholders {
			assert.True(t, strings.Contains(template, ph), "%s/%s missing %s", tt.filename, tt.key, ph)
		}
	}
}
