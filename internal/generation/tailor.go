package generation

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-roaster/internal/keywords"
	"github.com/jonathan/resume-roaster/internal/llm"
	"github.com/jonathan/resume-roaster/internal/scoring"
	"github.com/jonathan/resume-roaster/internal/types"
)

// Sampling parameters per call site. Resume generation runs cool for
// format discipline; cover letters get a little more freedom.
var (
	resumeOpts      = llm.Options{Temperature: 0.2, MaxOutputTokens: 3000}
	coverLetterOpts = llm.Options{Temperature: 0.4, MaxOutputTokens: 1500}
)

// Store persists generated artifacts.
type Store interface {
	SaveGeneratedResume(ctx context.Context, resume *types.GeneratedResume) error
}

// Request carries one tailoring invocation's inputs.
type Request struct {
	OwnerID            uuid.UUID
	Profile            *types.CandidateProfile
	JobDescription     string
	Template           types.TemplateTag
	IncludeCoverLetter bool
}

// Service orchestrates the tailoring pipeline: keyword extraction,
// prompt construction, generation, match scoring and persistence.
// Stateless per invocation; safe for concurrent use.
type Service struct {
	client llm.Client
	store  Store
}

// NewService creates a tailoring service. store may be nil for
// preview-only deployments.
func NewService(client llm.Client, store Store) *Service {
	return &Service{client: client, store: store}
}

// Preview runs the full tailoring pipeline without persisting the
// artifact.
func (s *Service) Preview(ctx context.Context, req Request) (*types.GeneratedResume, error) {
	if err := ValidateJobDescription(req.JobDescription); err != nil {
		return nil, err
	}
	if req.Profile.IsEmpty() {
		return nil, &ValidationError{Field: "profile", Message: "candidate profile is empty"}
	}

	template := types.ParseTemplateTag(string(req.Template))
	jdKeywords := keywords.Extract(req.JobDescription)
	log.Printf("extracted %d job description keywords", len(jdKeywords))

	var resumeRaw, coverLetter string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := s.client.GenerateContent(gctx, llm.TaskTailor,
			BuildResumePrompt(req.Profile, req.JobDescription, template), resumeOpts)
		if err != nil {
			return err
		}
		resumeRaw = raw
		return nil
	})
	if req.IncludeCoverLetter {
		g.Go(func() error {
			raw, err := s.client.GenerateContent(gctx, llm.TaskTailor,
				BuildCoverLetterPrompt(req.Profile, req.JobDescription), coverLetterOpts)
			if err != nil {
				// Cover letter failure is non-fatal; the resume alone
				// is still a complete result.
				log.Printf("cover letter generation failed: %v", err)
				return nil
			}
			coverLetter = strings.TrimSpace(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resumeText, embeddedCover := ParseGenerated(resumeRaw)
	if coverLetter == "" {
		coverLetter = embeddedCover
	}

	result := scoring.Score(jdKeywords, resumeText)

	return &types.GeneratedResume{
		ID:             uuid.New(),
		OwnerID:        req.OwnerID,
		JobDescription: req.JobDescription,
		Content:        resumeText,
		CoverLetter:    coverLetter,
		Template:       template,
		ATSScore:       result.ATSScore,
		Analysis:       result.Analysis(),
		Contact:        req.Profile.Contact,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Tailor runs the pipeline and persists the resulting artifact.
// A persistence failure is terminal and never retried here.
func (s *Service) Tailor(ctx context.Context, req Request) (*types.GeneratedResume, error) {
	resume, err := s.Preview(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.SaveGeneratedResume(ctx, resume); err != nil {
			return nil, &PersistenceError{Cause: err}
		}
	}

	return resume, nil
}
