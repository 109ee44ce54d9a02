package goquery_test

import (
	"testing"

	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetadataService implements politext.MetadataService at compile time.
var _ politext.MetadataService = (*goquery.MetadataService)(nil)

func TestMetadataService_Metadata(t *testing.T) {
	t.Parallel()

	t.Run("counts elements in the raw tree", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewMetadataService()
		got, err := s.Metadata(`<html><head><title>Policy Review</title></head><body>
			<h1>Main</h1><h2>Sub</h2>
			<p>One</p><p>Two</p><p>Three</p>
			<ul><li>A</li></ul><ol><li>B</li></ol>
			<table><tr><td>x</td></tr></table>
			<a href="/a">a</a><a href="/b">b</a>
		</body></html>`)

		require.NoError(t, err)
		assert.Equal(t, &politext.Metadata{
			Title:      "Policy Review",
			Headings:   2,
			Paragraphs: 3,
			Lists:      2,
			Tables:     1,
			Links:      2,
		}, got)
	})

	t.Run("falls back to first h1 for title", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewMetadataService()
		got, err := s.Metadata(`<body><h1>Headline Title</h1></body>`)

		require.NoError(t, err)
		assert.Equal(t, "Headline Title", got.Title)
	})

	t.Run("default title when none found", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewMetadataService()
		got, err := s.Metadata(`<body><p>No title anywhere.</p></body>`)

		require.NoError(t, err)
		assert.Equal(t, "No title found", got.Title)
	})

	t.Run("counts include elements the extractor would filter", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewMetadataService()
		got, err := s.Metadata(`<body>
			<nav><a href="/">Home</a></nav>
			<div class="advertisement"><p>Promo</p></div>
			<p>Real content.</p>
		</body>`)

		require.NoError(t, err)
		assert.Equal(t, 2, got.Paragraphs)
		assert.Equal(t, 1, got.Links)
	})
}
