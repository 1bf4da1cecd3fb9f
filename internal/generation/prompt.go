// Package generation builds tailored resumes and cover letters from a
// candidate profile and a job description.
package generation

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-roaster/internal/prompts"
	"github.com/jonathan/resume-roaster/internal/types"
)

// templateStyles describes the visual treatment per template tag,
// injected into the resume prompt.
var templateStyles = map[types.TemplateTag]string{
	types.TemplateModern:   "MODERN - clean, minimalist design with blue accents and subtle borders.",
	types.TemplateClassic:  "CLASSIC - traditional, professional design with green accents and clear sections.",
	types.TemplateCreative: "CREATIVE - dynamic sections and modern styling with purple accents.",
}

// BuildResumePrompt assembles the tailored-resume instruction block.
// Pure and deterministic: identical inputs always yield an identical
// prompt. Empty profile fields are skipped, never placeholder-filled.
func BuildResumePrompt(profile *types.CandidateProfile, jobDescription string, template types.TemplateTag) string {
	tmpl := prompts.MustGet("generation.json", "tailor-resume")
	return prompts.Format(tmpl, map[string]string{
		"ContactBlock":   contactBlock(profile.Contact),
		"TemplateStyle":  templateStyles[types.ParseTemplateTag(string(template))],
		"JobDescription": jobDescription,
		"CandidateData":  serializeProfile(profile),
	})
}

// BuildCoverLetterPrompt assembles the independent cover-letter
// instruction block. Only the summary and the two most recent
// experience entries are included, keeping the prompt bounded
// regardless of profile size.
func BuildCoverLetterPrompt(profile *types.CandidateProfile, jobDescription string) string {
	var background strings.Builder
	if profile.Summary != "" {
		background.WriteString("Summary: " + profile.Summary + "\n")
	}
	if len(profile.Skills) > 0 {
		background.WriteString("Key Skills: " + mustJSON(profile.Skills) + "\n")
	}
	if recent := profile.RecentExperience(2); len(recent) > 0 {
		background.WriteString("Recent Experience: " + mustJSON(recent) + "\n")
	}

	tmpl := prompts.MustGet("generation.json", "cover-letter")
	return prompts.Format(tmpl, map[string]string{
		"ContactBlock":   contactBlock(profile.Contact),
		"JobDescription": jobDescription,
		"Background":     strings.TrimSpace(background.String()),
	})
}

// contactBlock renders the candidate's contact details, one logical
// line each, skipping empty fields entirely.
func contactBlock(c types.Contact) string {
	var lines []string
	if c.FullName != "" {
		lines = append(lines, c.FullName)
	}

	var inline []string
	for _, field := range []string{c.Email, c.Phone, c.Location} {
		if field != "" {
			inline = append(inline, field)
		}
	}
	if len(inline) > 0 {
		lines = append(lines, strings.Join(inline, " | "))
	}

	for _, link := range []string{c.LinkedInURL, c.GitHubURL, c.PortfolioURL} {
		if link != "" {
			lines = append(lines, link)
		}
	}

	return strings.Join(lines, "\n")
}

// serializeProfile renders the candidate profile as indented JSON.
// Map keys serialize in sorted order, so the output is deterministic.
// omitempty tags keep absent fields out of the prompt.
func serializeProfile(profile *types.CandidateProfile) string {
	return mustJSON(profile)
}

func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// All profile types are plain data; marshaling cannot fail.
		return "{}"
	}
	return string(data)
}
