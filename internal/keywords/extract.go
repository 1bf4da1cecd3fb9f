// Package keywords extracts ATS-relevant keywords from free-text job
// descriptions. It combines a generic stop-word-filtered token pass with
// a whitelist of known multi-word technology and methodology phrases, so
// that punctuation-bearing names like "c#", "node.js" or "ci/cd" survive
// tokenization intact.
package keywords

import (
	"regexp"
	"strings"
)

// cleanPattern matches every character outside the retained class.
// Hyphen, slash, plus, hash and dot are kept so tech tokens like
// "c++", "node.js" and "ci/cd" are not split apart.
var cleanPattern = regexp.MustCompile(`[^a-z0-9\s\-/+#.]`)

// phrasePatterns is the fixed ordered list of recognized multi-word
// technology and methodology phrases, scanned case-insensitively over
// the original (uncleaned) text. All patterns are single-pass and free
// of nested quantifiers, so extraction stays linear in input size.
var phrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(machine learning|deep learning|data science|data engineering|software engineer|full stack|front end|back end|devops|cloud computing|project management|product management|business analysis|data analysis|web development|mobile development|api development|database management|system design|agile methodology|scrum master|ci/cd|version control|unit testing|integration testing)\b`),
	regexp.MustCompile(`(?i)\b(react\.?js?|node\.?js?|vue\.?js?|angular\.?js?|next\.?js?|express\.?js?|spring boot|ruby on rails|django|flask|asp\.net|\.net core)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|google cloud|amazon web services|microsoft azure)\b`),
	regexp.MustCompile(`(?i)\b(python|javascript|typescript|java|ruby|go|rust|kotlin|swift|php|scala)\b`),
	regexp.MustCompile(`(?i)\b(sql|nosql|mongodb|postgresql|mysql|redis|elasticsearch|dynamodb|cassandra)\b`),
	regexp.MustCompile(`(?i)\b(docker|kubernetes|terraform|jenkins|github actions|gitlab ci|ansible|puppet|chef)\b`),
}

// Extract returns the deduplicated, lowercased keyword set for a job
// description, preserving first-seen order: filtered single tokens
// first, then whitelist phrase matches. Empty or whitespace-only input
// yields an empty result.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var result []string
	add := func(keyword string) {
		if !seen[keyword] {
			seen[keyword] = true
			result = append(result, keyword)
		}
	}

	// Pass 1: generic tokens from the cleaned lowercase text.
	cleaned := cleanPattern.ReplaceAllString(strings.ToLower(text), " ")
	for _, token := range strings.Fields(cleaned) {
		if !keepToken(token) {
			continue
		}
		add(token)
	}

	// Pass 2: whitelist phrases scanned over the original text, so
	// punctuation removed by the cleaning pass cannot break a match.
	for _, pattern := range phrasePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			add(strings.ToLower(match))
		}
	}

	return result
}

// keepToken decides whether a cleaned token is a candidate keyword.
// Symbol-bearing short tokens like "c#" and "c++" are kept even below
// the length cutoff; everything else must beat the cutoff and miss the
// stop-word list.
func keepToken(token string) bool {
	if IsStopWord(token) {
		return false
	}
	if len(token) > 2 {
		return true
	}
	if !strings.ContainsAny(token, "+#") {
		return false
	}
	return token[0] >= 'a' && token[0] <= 'z'
}
