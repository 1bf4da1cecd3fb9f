package generation

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-roaster/internal/llm"
)

// generatedPayload is the JSON shape the model is expected to embed in
// its response. Responses that are not JSON at all are handled by the
// fallback below.
type generatedPayload struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

// ParseGenerated extracts the resume (and optional cover letter) from
// a raw generation response. It strips code fences, locates the first
// balanced JSON object and decodes it. On any parse or structural
// failure it degrades gracefully: the raw text itself becomes the
// resume and the cover letter stays empty. This path never fails, so
// callers always receive usable content.
func ParseGenerated(raw string) (resume, coverLetter string) {
	cleaned := llm.CleanJSONBlock(raw)

	jsonText, ok := llm.ExtractJSONObject(cleaned)
	if ok {
		var payload generatedPayload
		if err := json.Unmarshal([]byte(jsonText), &payload); err == nil && strings.TrimSpace(payload.Resume) != "" {
			return payload.Resume, payload.CoverLetter
		} else if err != nil {
			log.Printf("generated response JSON did not decode, using raw text: %v", err)
		}
	}

	return strings.TrimSpace(cleaned), ""
}
