package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-roaster/internal/ingestion"
	"github.com/jonathan/resume-roaster/internal/llm"
)

// newGenerationClient builds the retrying Gemini client CLI commands
// share. The caller owns Close.
func newGenerationClient(ctx context.Context) (llm.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	gemini, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	return llm.NewRetryClient(gemini), nil
}

// loadJobDescription reads a job description from a text file or a
// job posting URL. Exactly one of the two sources must be set.
func loadJobDescription(ctx context.Context, file, url string) (string, error) {
	if file == "" && url == "" {
		return "", fmt.Errorf("either --jd-file or --jd-url must be provided")
	}
	if file != "" && url != "" {
		return "", fmt.Errorf("--jd-file and --jd-url are mutually exclusive; provide only one")
	}

	if file != "" {
		text, _, err := ingestion.IngestFromFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return text, nil
	}

	text, _, err := ingestion.JobDescriptionFromURL(ctx, url)
	if err != nil {
		return "", err
	}
	return text, nil
}
