package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-roaster/internal/types"
)

// MasterCV is a stored profile record with its source text.
type MasterCV struct {
	OwnerID   uuid.UUID               `json:"owner_id"`
	Profile   *types.CandidateProfile `json:"profile"`
	RawText   string                  `json:"raw_text,omitempty"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// ResumeSummary is a lightweight view of a generated artifact for
// listing.
type ResumeSummary struct {
	ID        uuid.UUID         `json:"id"`
	Template  types.TemplateTag `json:"template"`
	ATSScore  int               `json:"ats_score"`
	CreatedAt time.Time         `json:"created_at"`
}

// SaveMasterCV stores an owner's parsed profile, replacing any
// previous version. One profile per owner.
func (db *DB) SaveMasterCV(ctx context.Context, ownerID uuid.UUID, profile *types.CandidateProfile, rawText string) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO master_cvs (owner_id, profile, raw_text, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (owner_id) DO UPDATE SET profile = $2, raw_text = $3, updated_at = NOW()`,
		ownerID, profileJSON, rawText,
	)
	if err != nil {
		return fmt.Errorf("failed to save master cv: %w", err)
	}
	return nil
}

// GetMasterCV retrieves an owner's stored profile. Returns nil (not an
// error) when the owner has none.
func (db *DB) GetMasterCV(ctx context.Context, ownerID uuid.UUID) (*MasterCV, error) {
	var cv MasterCV
	var profileJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT owner_id, profile, raw_text, updated_at FROM master_cvs WHERE owner_id = $1`,
		ownerID,
	).Scan(&cv.OwnerID, &profileJSON, &cv.RawText, &cv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get master cv: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	cv.Profile = &profile

	return &cv, nil
}
