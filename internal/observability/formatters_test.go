package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-roaster/internal/types"
)

func TestPrintRoastResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.RoastResult{
		ShortlistProbability: 35,
		Verdict:              types.VerdictMaybe,
		VerdictReason:        "Needs sharper evidence.",
		TopRejectionReasons:  []string{"No metrics", "Generic summary"},
		ATSScore:             62,
		KeywordMatchPercent:  48,
		KeywordGaps:          []string{"kubernetes", "terraform"},
		Sections: types.RoastSections{
			Summary: types.SectionRoast{Score: 40, Roast: "Vague."},
			Skills:  types.SectionRoast{Score: 55, Roast: "Buzzwords."},
		},
		OverallRoast: "Tailor it or shelve it.",
	}

	p.PrintRoastResult(result)
	output := buf.String()

	assert.Contains(t, output, "ROAST RESULT")
	assert.Contains(t, output, "MAYBE")
	assert.Contains(t, output, "35%")
	assert.Contains(t, output, "No metrics")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "Tailor it or shelve it.")
}

func TestPrintRoastResultNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoastResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintGeneratedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGeneratedResume(&types.GeneratedResume{
		Template: types.TemplateModern,
		ATSScore: 88,
		Content:  "resume body",
		Analysis: &types.ATSAnalysis{
			MatchScore:      "75%",
			MissingKeywords: []string{"graphql"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "TAILORED RESUME")
	assert.Contains(t, output, "modern")
	assert.Contains(t, output, "88")
	assert.Contains(t, output, "graphql")
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.CandidateProfile{
		Contact: types.Contact{FullName: "Jane Doe", Email: "jane@example.com"},
		Skills:  map[string][]string{"languages": {"Go"}},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
}
