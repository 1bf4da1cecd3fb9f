package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-roaster/internal/types"
)

func sampleProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Contact: types.Contact{
			FullName:    "Jane Doe",
			Email:       "jane@example.com",
			Phone:       "+1-555-0100",
			LinkedInURL: "https://linkedin.com/in/janedoe",
		},
		Summary: "Backend engineer with 6 years of Go and Postgres.",
		Experience: []types.Experience{
			{Company: "Acme", Title: "Senior Engineer", StartDate: "March 2021", EndDate: "Present", IsCurrent: true,
				Achievements: []string{"Cut p99 latency by 40%"}},
			{Company: "Globex", Title: "Engineer", StartDate: "June 2018", EndDate: "February 2021"},
			{Company: "Initech", Title: "Junior Engineer", StartDate: "July 2016", EndDate: "May 2018"},
		},
		Skills: map[string][]string{"languages": {"Go", "Python"}},
	}
}

func TestBuildResumePromptIncludesRequiredBlocks(t *testing.T) {
	jd := "Looking for a Go engineer with Kubernetes experience"
	prompt := BuildResumePrompt(sampleProfile(), jd, types.TemplateModern)

	assert.Contains(t, prompt, jd, "job description is never omitted")
	assert.Contains(t, prompt, "Jane Doe", "contact block is never omitted")
	assert.Contains(t, prompt, "jane@example.com | +1-555-0100")
	assert.Contains(t, prompt, "MODERN")
	assert.Contains(t, prompt, "Cut p99 latency by 40%")
}

func TestBuildResumePromptDeterministic(t *testing.T) {
	jd := "Go engineer role"
	first := BuildResumePrompt(sampleProfile(), jd, types.TemplateClassic)
	second := BuildResumePrompt(sampleProfile(), jd, types.TemplateClassic)

	assert.Equal(t, first, second)
}

func TestBuildResumePromptSkipsEmptyFields(t *testing.T) {
	profile := &types.CandidateProfile{
		Contact: types.Contact{FullName: "Max Payne"},
		Summary: "Engineer",
	}
	prompt := BuildResumePrompt(profile, "Some job description", types.TemplateModern)

	assert.NotContains(t, prompt, "null")
	assert.NotContains(t, prompt, `"email"`)
	assert.NotContains(t, prompt, `"portfolio_url"`)
}

func TestBuildResumePromptUnknownTemplateDefaultsToModern(t *testing.T) {
	prompt := BuildResumePrompt(sampleProfile(), "A job description", types.TemplateTag("bogus"))
	assert.Contains(t, prompt, "MODERN")
}

func TestBuildCoverLetterPromptBoundsExperience(t *testing.T) {
	jd := "Platform engineer position"
	prompt := BuildCoverLetterPrompt(sampleProfile(), jd)

	assert.Contains(t, prompt, jd)
	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "Globex")
	assert.NotContains(t, prompt, "Initech", "only the two most recent experience entries are included")
	assert.Contains(t, prompt, "under 400 words")
}

func TestContactBlockFormatting(t *testing.T) {
	tests := []struct {
		name     string
		contact  types.Contact
		expected string
	}{
		{
			"Full contact",
			types.Contact{FullName: "A B", Email: "a@b.c", Phone: "123", Location: "NYC", LinkedInURL: "li"},
			"A B\na@b.c | 123 | NYC\nli",
		},
		{"Name only", types.Contact{FullName: "A B"}, "A B"},
		{"Empty", types.Contact{}, ""},
		{"Partial inline", types.Contact{Email: "a@b.c", Location: "NYC"}, "a@b.c | NYC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contactBlock(tt.contact))
		})
	}
}

func TestParseGenerated(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantResume string
		wantCover  string
	}{
		{
			"Fenced JSON payload",
			"```json\n{\"resume\":\"X\"}\n```",
			"X", "",
		},
		{
			"JSON with cover letter",
			`{"resume":"body","cover_letter":"dear team"}`,
			"body", "dear team",
		},
		{
			"Plain text fallback",
			"JANE DOE\nSUMMARY\n• Engineer",
			"JANE DOE\nSUMMARY\n• Engineer", "",
		},
		{
			"Garbage braces fallback",
			"not json { broken",
			"not json { broken", "",
		},
		{
			"JSON without resume key falls back to raw",
			`{"unexpected":"shape"}`,
			`{"unexpected":"shape"}`, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, cover := ParseGenerated(tt.input)
			assert.Equal(t, tt.wantResume, resume)
			assert.Equal(t, tt.wantCover, cover)
		})
	}
}

func TestSerializeProfileSortsMapKeys(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills: map[string][]string{"tools": {"Docker"}, "languages": {"Go"}, "cloud": {"AWS"}},
	}

	out := serializeProfile(profile)

	cloud := strings.Index(out, "cloud")
	languages := strings.Index(out, "languages")
	tools := strings.Index(out, "tools")
	assert.True(t, cloud < languages && languages < tools, "map keys serialize sorted for determinism")
}
