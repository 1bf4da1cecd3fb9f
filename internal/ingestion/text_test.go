package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"Only whitespace", "   \n  \n  ", ""},
		{"CRLF normalized", "Line 1\r\nLine 2\rLine 3", "Line 1\nLine 2\nLine 3"},
		{"Spaces collapsed", "Line    with    spaces", "Line with spaces"},
		{"Blank lines capped", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"Heading preserved", "   ## Requirements   \nBody", "## Requirements\nBody"},
		{"Bullets preserved", "- Item 1\n  - Nested\n* Item 2", "- Item 1\n  - Nested\n* Item 2"},
		{"Unicode preserved", "émojis 🚀 and spéciàl chàracters", "émojis 🚀 and spéciàl chàracters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanTextDeterministic(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestIngestFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "posting.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("# Job Title\r\n\r\nDescription here"), 0644))

	cleaned, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "# Job Title\n\nDescription here", cleaned)
	require.NotNil(t, metadata)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, len(cleaned), metadata.Chars)
	assert.NotEmpty(t, metadata.Timestamp)
}

func TestIngestFromFileNotFound(t *testing.T) {
	_, _, err := IngestFromFile("/nonexistent/file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestMetadataHashTracksContent(t *testing.T) {
	a := NewMetadata("Content 1", "")
	b := NewMetadata("Content 2", "")
	same := NewMetadata("Content 1", "")

	assert.NotEqual(t, a.Hash, b.Hash)
	assert.Equal(t, a.Hash, same.Hash)
}

func TestResumeFromFilePlainText(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("JANE DOE\nEngineer"), 0644))

	text, metadata, err := ResumeFromFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "JANE DOE\nEngineer", text)
	assert.NotNil(t, metadata)
}

func TestResumeFromFileBrokenPDF(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "resume.pdf")
	require.NoError(t, os.WriteFile(testFile, []byte("not actually a pdf"), 0644))

	_, _, err := ResumeFromFile(testFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}
