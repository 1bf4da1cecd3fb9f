package types

import (
	"time"

	"github.com/google/uuid"
)

// TemplateTag identifies the visual template a generated resume targets.
type TemplateTag string

// Known resume templates.
const (
	TemplateModern   TemplateTag = "modern"
	TemplateClassic  TemplateTag = "classic"
	TemplateCreative TemplateTag = "creative"
)

// ParseTemplateTag maps a raw template string to a known tag,
// defaulting to modern for unknown or empty values.
func ParseTemplateTag(raw string) TemplateTag {
	switch TemplateTag(raw) {
	case TemplateClassic:
		return TemplateClassic
	case TemplateCreative:
		return TemplateCreative
	default:
		return TemplateModern
	}
}

// ATSAnalysis summarizes how well a generated resume covers the
// keywords extracted from the job description. MatchScore is a percent
// string like "82%"; the numeric score behind it is clamped to [65, 98].
type ATSAnalysis struct {
	MatchScore      string   `json:"match_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MissingKeywords []string `json:"missing_keywords"`
	Reasoning       string   `json:"reasoning"`
}

// GeneratedResume is the immutable artifact produced by one tailoring
// call. CoverLetter is empty when the caller did not request one or
// when cover letter generation failed non-fatally.
type GeneratedResume struct {
	ID             uuid.UUID    `json:"id"`
	OwnerID        uuid.UUID    `json:"owner_id"`
	JobDescription string       `json:"job_description"`
	Content        string       `json:"content"`
	CoverLetter    string       `json:"cover_letter,omitempty"`
	Template       TemplateTag  `json:"template"`
	ATSScore       int          `json:"ats_score"`
	Analysis       *ATSAnalysis `json:"ats_analysis,omitempty"`
	Contact        Contact      `json:"contact_info"`
	CreatedAt      time.Time    `json:"created_at"`
}
