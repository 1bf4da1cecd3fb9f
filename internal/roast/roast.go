// Package roast produces a brutally honest, scored critique of a resume
// against a job description.
package roast

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-roaster/internal/llm"
	"github.com/jonathan/resume-roaster/internal/prompts"
	"github.com/jonathan/resume-roaster/internal/types"
)

// Validation bounds for inbound text.
const (
	MinResumeLen         = 10
	MaxResumeLen         = 100000
	MinJobDescriptionLen = 10
	MaxJobDescriptionLen = 50000
)

// Roasts run hot. Snark needs sampling room, and the full JSON critique
// is large.
var roastOpts = llm.Options{Temperature: 0.7, MaxOutputTokens: 4096}

// ValidationError indicates a request was rejected before any external
// call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Request carries one roast invocation's inputs.
type Request struct {
	ResumeText     string
	JobDescription string
}

// Validate checks the request's length bounds.
func (r Request) Validate() error {
	if len(r.ResumeText) < MinResumeLen {
		return &ValidationError{Field: "resume_text", Message: "too short"}
	}
	if len(r.ResumeText) > MaxResumeLen {
		return &ValidationError{Field: "resume_text", Message: "too long"}
	}
	if len(r.JobDescription) < MinJobDescriptionLen {
		return &ValidationError{Field: "job_description", Message: "too short"}
	}
	if len(r.JobDescription) > MaxJobDescriptionLen {
		return &ValidationError{Field: "job_description", Message: "too long"}
	}
	return nil
}

// Service runs the roast pipeline. Stateless; safe for concurrent use.
type Service struct {
	client llm.Client
}

// NewService creates a roast service backed by the given model client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Roast critiques the resume against the job description. Generation
// failures propagate to the caller; a response that cannot be parsed
// into the expected shape degrades to a generic fallback critique
// rather than failing the request.
func (s *Service) Roast(ctx context.Context, req Request) (*types.RoastResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := prompts.Format(prompts.MustGet("roast.json", "roast-resume"), map[string]string{
		"ResumeContent":  req.ResumeText,
		"JobDescription": req.JobDescription,
	})

	raw, err := s.client.GenerateContent(ctx, llm.TaskRoast, prompt, roastOpts)
	if err != nil {
		return nil, err
	}

	result := ParseResult(raw)
	log.Printf("roast complete: verdict=%s shortlist_probability=%d",
		result.Verdict, result.ShortlistProbability)
	return result, nil
}
