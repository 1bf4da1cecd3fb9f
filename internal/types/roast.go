package types

import "strings"

// Verdict is the roast's bottom-line recommendation.
type Verdict string

// Verdict values. These mirror the strings the roast prompt instructs
// the model to emit.
const (
	VerdictApply    Verdict = "APPLY"
	VerdictDontAply Verdict = "DON'T APPLY"
	VerdictMaybe    Verdict = "MAYBE"
)

// NormalizeVerdict maps a raw verdict string to a known value,
// defaulting to MAYBE for anything unrecognized.
func NormalizeVerdict(raw string) Verdict {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "APPLY":
		return VerdictApply
	case "DON'T APPLY", "DONT APPLY", "DO NOT APPLY":
		return VerdictDontAply
	default:
		return VerdictMaybe
	}
}

// SectionRoast is the scored feedback for one resume section.
// The extra fields are populated per-section: Severity for summary,
// MissingSkills for skills, WeakBullets for experience, Issues for
// formatting.
type SectionRoast struct {
	Score         int      `json:"score"`
	Roast         string   `json:"roast"`
	Severity      string   `json:"severity,omitempty"`
	MissingSkills []string `json:"missing_skills,omitempty"`
	WeakBullets   []string `json:"weak_bullets,omitempty"`
	Issues        []string `json:"issues,omitempty"`
}

// RoastSections groups the fixed set of per-section roasts.
type RoastSections struct {
	Summary    SectionRoast `json:"summary"`
	Skills     SectionRoast `json:"skills"`
	Experience SectionRoast `json:"experience"`
	Projects   SectionRoast `json:"projects"`
	Formatting SectionRoast `json:"formatting"`
}

// JDMismatch captures the gap between the job description and the resume.
type JDMismatch struct {
	MissingRequirements []string `json:"missing_requirements"`
	IrrelevantContent   []string `json:"irrelevant_content"`
}

// RoastResult is the full scored critique of a resume against a job
// description. ShortlistProbability and ATSScore are independent fields
// on a 0-100 scale; neither is derived from the other.
// TopRejectionReasons is expected to hold exactly three entries but
// callers must tolerate fewer or more, since only the prompt enforces
// the count.
type RoastResult struct {
	ShortlistProbability int           `json:"shortlist_probability"`
	Verdict              Verdict       `json:"verdict"`
	VerdictReason        string        `json:"verdict_reason"`
	TopRejectionReasons  []string      `json:"top_3_rejection_reasons"`
	ATSScore             int           `json:"ats_score"`
	KeywordMatchPercent  int           `json:"keyword_match_percent"`
	KeywordGaps          []string      `json:"keyword_gaps"`
	Sections             RoastSections `json:"sections"`
	JDMismatch           JDMismatch    `json:"jd_mismatch"`
	OverallRoast         string        `json:"overall_roast"`
}

// ClampScores forces every score field onto the 0-100 roast scale.
// The model occasionally emits out-of-range values despite the prompt.
func (r *RoastResult) ClampScores() {
	r.ShortlistProbability = clamp100(r.ShortlistProbability)
	r.ATSScore = clamp100(r.ATSScore)
	r.KeywordMatchPercent = clamp100(r.KeywordMatchPercent)
	r.Sections.Summary.Score = clamp100(r.Sections.Summary.Score)
	r.Sections.Skills.Score = clamp100(r.Sections.Skills.Score)
	r.Sections.Experience.Score = clamp100(r.Sections.Experience.Score)
	r.Sections.Projects.Score = clamp100(r.Sections.Projects.Score)
	r.Sections.Formatting.Score = clamp100(r.Sections.Formatting.Score)
}

func clamp100(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
