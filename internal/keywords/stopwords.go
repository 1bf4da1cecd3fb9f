package keywords

// stopWords holds common English words and generic resume filler that
// carry no signal for ATS matching. Tokens found here are discarded by
// the extractor regardless of length.
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
		"for", "of", "with", "by", "from", "as", "is", "was", "are",
		"were", "been", "be", "have", "has", "had", "do", "does", "did",
		"will", "would", "could", "should", "may", "might", "must",
		"can", "this", "that", "these", "those", "it", "its", "they",
		"them", "their", "we", "our", "you", "your", "i", "me", "my",
		"he", "she", "him", "her", "who", "which", "what", "when",
		"where", "why", "how", "all", "each", "every", "both", "few",
		"more", "most", "other", "some", "such", "no", "not", "only",
		"same", "so", "than", "too", "very", "just", "also", "now",
		"here", "there", "about", "after", "before", "between", "into",
		"through", "during", "above", "below", "up", "down", "out",
		"off", "over", "under", "again", "further", "then", "once",
		"any", "well", "work", "working", "experience", "years", "year",
		"team", "ability", "strong", "looking", "seeking", "role",
		"position", "including", "etc", "job", "candidate", "skills",
		"skill", "required", "requirements", "preferred", "plus",
		"responsibilities", "qualifications", "knowledge", "develop",
		"developer", "communication", "excellent", "good", "great",
		"new", "use", "using", "used", "within", "across", "able",
		"help", "join", "company", "opportunity", "day", "per", "via",
		"like", "based", "related", "relevant", "ideal", "environment",
	} {
		stopWords[w] = true
	}
}

// IsStopWord reports whether the lowercase token is on the stop-word list.
func IsStopWord(token string) bool {
	return stopWords[token]
}
