// Package scoring computes the ATS match analysis for a generated
// resume against the keyword set extracted from a job description.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-roaster/internal/types"
)

// Score bounds for the generation path. Raw match percentages are
// clamped into this window so end users never see a demoralizingly low
// or suspiciously perfect score. The roast path uses the full 0-100
// scale and is scored by the model, not here.
const (
	MinATSScore = 65
	MaxATSScore = 98
)

// defaultMatchPercent is reported when the keyword set is empty, which
// would otherwise divide by zero.
const defaultMatchPercent = 75

// Output list caps, applied after deduplication in first-seen order.
const (
	maxMatchedSkills   = 15
	maxMissingSkills   = 10
	maxMissingKeywords = 8
)

// skillPattern decides whether a keyword looks like a concrete skill
// or tool name rather than a generic phrase.
var skillPattern = regexp.MustCompile(`^[a-z0-9+#.\-/]+$`)

// Result carries the full partitioned match data alongside the
// user-facing analysis.
type Result struct {
	ATSScore        int
	MatchPercent    int
	MatchedKeywords []string
	MissingKeywords []string
	MatchedSkills   []string
	MissingSkills   []string
}

// Score checks each keyword for substring containment in the generated
// text and partitions the set into matched/missing and skill-like/
// generic groups. Pure function; never fails.
func Score(kws []string, generatedText string) Result {
	textLower := strings.ToLower(generatedText)

	var res Result
	for _, keyword := range kws {
		matched := keyword != "" && strings.Contains(textLower, strings.ToLower(keyword))
		skill := isSkillLike(keyword)

		if matched {
			res.MatchedKeywords = append(res.MatchedKeywords, keyword)
			if skill {
				res.MatchedSkills = append(res.MatchedSkills, keyword)
			}
		} else {
			res.MissingKeywords = append(res.MissingKeywords, keyword)
			if skill {
				res.MissingSkills = append(res.MissingSkills, keyword)
			}
		}
	}

	total := len(res.MatchedKeywords) + len(res.MissingKeywords)
	if total > 0 {
		res.MatchPercent = int(math.Round(float64(len(res.MatchedKeywords)) / float64(total) * 100))
	} else {
		res.MatchPercent = defaultMatchPercent
	}
	res.ATSScore = clampATS(res.MatchPercent)

	return res
}

// Analysis converts a scoring result into the bounded, user-facing
// ATS analysis record.
func (r Result) Analysis() *types.ATSAnalysis {
	return &types.ATSAnalysis{
		MatchScore:      fmt.Sprintf("%d%%", r.ATSScore),
		MatchedSkills:   capped(dedupe(r.MatchedSkills), maxMatchedSkills),
		MissingSkills:   capped(dedupe(r.MissingSkills), maxMissingSkills),
		MissingKeywords: capped(dedupe(r.MissingKeywords), maxMissingKeywords),
		Reasoning:       reasoningFor(r.ATSScore),
	}
}

func isSkillLike(keyword string) bool {
	return len(keyword) > 3 && skillPattern.MatchString(keyword)
}

func clampATS(score int) int {
	if score < MinATSScore {
		return MinATSScore
	}
	if score > MaxATSScore {
		return MaxATSScore
	}
	return score
}

func reasoningFor(score int) string {
	switch {
	case score >= 85:
		return "Excellent match! Your resume aligns well with the job requirements."
	case score >= 70:
		return "Good match. Consider adding missing skills if you have experience with them."
	default:
		return "Moderate match. Focus on highlighting more relevant experience."
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result
}

func capped(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
