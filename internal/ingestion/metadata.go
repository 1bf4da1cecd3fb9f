package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes an ingested document.
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned content
	Platform  string `json:"platform,omitempty"`
	Chars     int    `json:"chars"`
}

// NewMetadata creates metadata for cleaned content.
func NewMetadata(content string, url string) *Metadata {
	sum := sha256.Sum256([]byte(content))
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(sum[:]),
		Chars:     len(content),
	}
}
