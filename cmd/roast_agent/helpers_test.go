package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobDescription_NeitherSource(t *testing.T) {
	_, err := loadJobDescription(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --jd-file or --jd-url must be provided")
}

func TestLoadJobDescription_BothSources(t *testing.T) {
	_, err := loadJobDescription(context.Background(), "jd.txt", "https://example.com/job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadJobDescription_FromFile(t *testing.T) {
	jdFile := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jdFile, []byte("Senior Go Engineer\r\n\r\n5+ years of Go"), 0644))

	text, err := loadJobDescription(context.Background(), jdFile, "")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer\n\n5+ years of Go", text)
}

func TestLoadJobDescription_FileNotFound(t *testing.T) {
	_, err := loadJobDescription(context.Background(), "/nonexistent/jd.txt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job description")
}

func TestNewGenerationClient_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := newGenerationClient(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
