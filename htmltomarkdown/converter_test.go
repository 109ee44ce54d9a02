package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/goquery"
	"github.com/fwojciec/politext/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements politext.Converter at compile time.
var _ politext.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Election Night</h1><h2>Results</h2><p>Turnout was high.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Election Night")
		assert.Contains(t, md, "## Results")
		assert.Contains(t, md, "Turnout was high.")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ol><li>Count votes</li><li>Publish results</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "1. Count votes")
		assert.Contains(t, md, "2. Publish results")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table>
			<thead><tr><th>Region</th><th>Support</th></tr></thead>
			<tbody><tr><td>Urban</td><td>65</td></tr></tbody>
		</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Region")
		assert.Contains(t, md, "Urban")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<blockquote><p>We will rebuild.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> We will rebuild.")
	})

	t.Run("returns EEMPTY for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, politext.EEMPTY, politext.ErrorCode(err))
	})

	t.Run("works downstream of the technical filter", func(t *testing.T) {
		t.Parallel()

		cleaned, err := goquery.Clean(`<body>
			<nav><a href="/">Home</a></nav>
			<h1>Manifesto</h1>
			<p>Ten point plan for the economy.</p>
		</body>`)
		require.NoError(t, err)

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(cleaned)

		require.NoError(t, err)
		assert.Contains(t, md, "# Manifesto")
		assert.Contains(t, md, "Ten point plan for the economy.")
		assert.NotContains(t, md, "Home")
	})
}
