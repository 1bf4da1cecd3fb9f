// Package profile extracts a structured candidate profile from raw
// resume text.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/resume-roaster/internal/llm"
	"github.com/jonathan/resume-roaster/internal/prompts"
	"github.com/jonathan/resume-roaster/internal/types"
)

// MinResumeTextLen is the shortest resume text worth extracting from.
const MinResumeTextLen = 10

// Extraction runs cold. The output is structured data, not prose.
var parseOpts = llm.Options{Temperature: 0.1, MaxOutputTokens: 4096}

// ParseError indicates the model's response could not be decoded into a
// candidate profile. Unlike the tolerant generation and roast paths,
// extraction has no useful fallback: a partial profile silently poisons
// every later tailoring run, so the caller should retry instead.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse extracted profile: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates the resume text was rejected before any
// external call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Store persists parsed profiles, one per owner, replacing any earlier
// version.
type Store interface {
	SaveMasterCV(ctx context.Context, ownerID uuid.UUID, profile *types.CandidateProfile, rawText string) error
}

// Service extracts and persists candidate profiles. Stateless; safe
// for concurrent use.
type Service struct {
	client llm.Client
	store  Store
}

// NewService creates a profile service. store may be nil when callers
// only need extraction.
func NewService(client llm.Client, store Store) *Service {
	return &Service{client: client, store: store}
}

// Parse extracts a candidate profile from resume text and persists it
// for the owner. Malformed model output is an error here, never a
// fallback.
func (s *Service) Parse(ctx context.Context, ownerID uuid.UUID, resumeText string) (*types.CandidateProfile, error) {
	if len(resumeText) < MinResumeTextLen {
		return nil, &ValidationError{Field: "resume_text", Message: "too short"}
	}

	prompt := prompts.Format(prompts.MustGet("parsing.json", "extract-profile"), map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := s.client.GenerateContent(ctx, llm.TaskParse, prompt, parseOpts)
	if err != nil {
		return nil, err
	}

	parsed, err := decodeProfile(raw)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.SaveMasterCV(ctx, ownerID, parsed, resumeText); err != nil {
			return nil, fmt.Errorf("failed to store master cv: %w", err)
		}
	}

	log.Printf("parsed profile for owner %s: %d experience entries, %d skill groups",
		ownerID, len(parsed.Experience), len(parsed.Skills))
	return parsed, nil
}

// decodeProfile strips fences, locates the JSON object and decodes it
// strictly.
func decodeProfile(raw string) (*types.CandidateProfile, error) {
	cleaned := llm.CleanJSONBlock(raw)

	jsonText, ok := llm.ExtractJSONObject(cleaned)
	if !ok {
		return nil, &ParseError{Cause: fmt.Errorf("no JSON object in response")}
	}

	var parsed types.CandidateProfile
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, &ParseError{Cause: err}
	}
	if parsed.IsEmpty() {
		return nil, &ParseError{Cause: fmt.Errorf("decoded profile is empty")}
	}

	return &parsed, nil
}
