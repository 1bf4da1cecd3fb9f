package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-roaster/internal/fetch"
)

// JobDescriptionFromURL fetches a job posting page and returns its
// cleaned text. Platform detection picks selectors tuned to the major
// job boards; unknown hosts fall back to the generic ones. Pages that
// render entirely client side yield little or no text; callers see
// that as a validation failure downstream.
func JobDescriptionFromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract job posting text: %w", err)
	}

	cleaned := CleanText(text)
	log.Printf("ingested job posting from %s (%s): %d chars", urlStr, platform, len(cleaned))

	metadata := NewMetadata(cleaned, urlStr)
	metadata.Platform = string(platform)
	return cleaned, metadata, nil
}
