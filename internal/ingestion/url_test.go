package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `
<html>
	<body>
		<nav>Jobs Home About</nav>
		<div class="cookie-banner">We use cookies</div>
		<div class="job-description">
			<h2>Senior Go Engineer</h2>
			<p>We need   5+ years of Go   and Kubernetes experience.</p>
			<form id="application-form">Apply now</form>
		</div>
		<footer>Copyright</footer>
	</body>
</html>`

func TestJobDescriptionFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	text, metadata, err := JobDescriptionFromURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "5+ years of Go and Kubernetes experience")
	assert.NotContains(t, text, "cookies")
	assert.NotContains(t, text, "Apply now")
	assert.NotContains(t, text, "Copyright")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, "unknown", metadata.Platform)
	assert.Len(t, metadata.Hash, 64)
}

func TestJobDescriptionFromURLFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := JobDescriptionFromURL(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch job posting")
}

func TestJobDescriptionFromURLInvalidURL(t *testing.T) {
	_, _, err := JobDescriptionFromURL(context.Background(), "not-a-url")
	require.Error(t, err)
}
