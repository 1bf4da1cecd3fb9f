package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-roaster/internal/types"
)

// SaveGeneratedResume stores a generated artifact. Artifacts are
// immutable; there is no update path.
func (db *DB) SaveGeneratedResume(ctx context.Context, resume *types.GeneratedResume) error {
	analysisJSON, err := json.Marshal(resume.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	contactJSON, err := json.Marshal(resume.Contact)
	if err != nil {
		return fmt.Errorf("failed to marshal contact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO generated_resumes
		   (id, owner_id, job_description, content, cover_letter, template, ats_score, analysis, contact, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		resume.ID, resume.OwnerID, resume.JobDescription, resume.Content,
		resume.CoverLetter, string(resume.Template), resume.ATSScore,
		analysisJSON, contactJSON, resume.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save generated resume: %w", err)
	}
	return nil
}

// GetGeneratedResume retrieves a generated artifact by ID. Returns
// nil (not an error) when no row matches.
func (db *DB) GetGeneratedResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error) {
	var resume types.GeneratedResume
	var template string
	var analysisJSON, contactJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, job_description, content, cover_letter, template, ats_score, analysis, contact, created_at
		 FROM generated_resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.OwnerID, &resume.JobDescription, &resume.Content,
		&resume.CoverLetter, &template, &resume.ATSScore,
		&analysisJSON, &contactJSON, &resume.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get generated resume: %w", err)
	}

	resume.Template = types.ParseTemplateTag(template)
	if len(analysisJSON) > 0 {
		var analysis types.ATSAnalysis
		if err := json.Unmarshal(analysisJSON, &analysis); err == nil {
			resume.Analysis = &analysis
		}
	}
	if len(contactJSON) > 0 {
		if err := json.Unmarshal(contactJSON, &resume.Contact); err != nil {
			return nil, fmt.Errorf("failed to decode contact: %w", err)
		}
	}

	return &resume, nil
}

// ListGeneratedResumes retrieves an owner's recent artifacts, newest
// first, without the full content bodies.
func (db *DB) ListGeneratedResumes(ctx context.Context, ownerID uuid.UUID, limit int) ([]ResumeSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, template, ats_score, created_at
		 FROM generated_resumes WHERE owner_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		var template string
		if err := rows.Scan(&s.ID, &template, &s.ATSScore, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated resume: %w", err)
		}
		s.Template = types.ParseTemplateTag(template)
		summaries = append(summaries, s)
	}
	return summaries, nil
}
