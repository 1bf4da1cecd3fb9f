package roast

import (
	"encoding/json"
	"log"

	"github.com/jonathan/resume-roaster/internal/llm"
	"github.com/jonathan/resume-roaster/internal/schemas"
	"github.com/jonathan/resume-roaster/internal/types"
)

// ParseResult decodes a raw roast response into a RoastResult. It
// strips code fences, locates the first balanced JSON object, validates
// it against the roast schema and decodes it. Any failure along the way
// yields the fallback critique; this path never errors. Scores are
// clamped to 0-100 and the verdict normalized before returning.
func ParseResult(raw string) *types.RoastResult {
	cleaned := llm.CleanJSONBlock(raw)

	jsonText, ok := llm.ExtractJSONObject(cleaned)
	if !ok {
		log.Printf("roast response contained no JSON object, using fallback")
		return FallbackResult()
	}

	if err := schemas.ValidateRoastResult(jsonText); err != nil {
		log.Printf("roast response failed schema validation, using fallback: %v", err)
		return FallbackResult()
	}

	var result types.RoastResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		log.Printf("roast response JSON did not decode, using fallback: %v", err)
		return FallbackResult()
	}

	result.Verdict = types.NormalizeVerdict(string(result.Verdict))
	result.ClampScores()
	return &result
}

// FallbackResult is the generic critique returned when the model's
// response cannot be parsed. Mid-range scores, MAYBE verdict, advice
// that applies to almost any resume.
func FallbackResult() *types.RoastResult {
	return &types.RoastResult{
		ShortlistProbability: 35,
		Verdict:              types.VerdictMaybe,
		VerdictReason:        "Your resume has potential but needs significant work to stand out.",
		TopRejectionReasons: []string{
			"Missing key skills mentioned in the job description",
			"Bullets don't demonstrate measurable impact",
			"Resume doesn't tell a clear career story",
		},
		ATSScore:            50,
		KeywordMatchPercent: 40,
		KeywordGaps:         []string{"Unable to analyze specific keywords"},
		Sections: types.RoastSections{
			Summary: types.SectionRoast{
				Score:    50,
				Roast:    "Your summary needs work - it should sell you in 2-3 lines.",
				Severity: "harsh",
			},
			Skills: types.SectionRoast{
				Score:         50,
				Roast:         "Skills section needs better alignment with job requirements.",
				MissingSkills: []string{},
			},
			Experience: types.SectionRoast{
				Score:       50,
				Roast:       "Experience bullets lack impact metrics.",
				WeakBullets: []string{},
			},
			Projects: types.SectionRoast{
				Score: 50,
				Roast: "Projects section could better showcase relevant work.",
			},
			Formatting: types.SectionRoast{
				Score:  60,
				Roast:  "Formatting appears acceptable but could be cleaner.",
				Issues: []string{},
			},
		},
		JDMismatch: types.JDMismatch{
			MissingRequirements: []string{"Review job description for specific requirements"},
			IrrelevantContent:   []string{},
		},
		OverallRoast: "This resume needs optimization to compete effectively. Focus on tailoring content to the specific job requirements and quantifying your achievements.",
	}
}
