package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements politext.Fetcher at compile time.
var _ politext.Fetcher = (*rod.Fetcher)(nil)

// TestFetcher_Fetch_Integration exercises a real headless browser.
// Set POLITEXT_BROWSER_TESTS=1 to run it.
func TestFetcher_Fetch_Integration(t *testing.T) {
	if os.Getenv("POLITEXT_BROWSER_TESTS") == "" {
		t.Skip("set POLITEXT_BROWSER_TESTS=1 to run browser integration tests")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<div id="out"></div>
			<script>document.getElementById("out").textContent = "rendered by script";</script>
		</body></html>`))
	}))
	defer srv.Close()

	f, err := rod.NewFetcher()
	require.NoError(t, err)
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "rendered by script")
}
