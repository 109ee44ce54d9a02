package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/politext"
	main "github.com/fwojciec/politext/cmd/politext"
	"github.com/fwojciec/politext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored documents", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter politext.DocumentFilter) ([]*politext.Document, error) {
				return []*politext.Document{
					{ID: "doc-1", Title: "Budget Speech", SourceURL: "https://example.com/speech"},
					{ID: "doc-2", SourceURL: "https://example.com/untitled"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: docs,
		}

		cmd := &main.DocsCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Documents (2 total):")
		assert.Contains(t, output, "Budget Speech")
		// Untitled documents fall back to the source URL
		assert.Contains(t, output, "https://example.com/untitled")
	})

	t.Run("prints full content with --full", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter politext.DocumentFilter) ([]*politext.Document, error) {
				return []*politext.Document{
					{ID: "doc-1", Title: "Budget Speech", Content: "Paragraph: The budget passed."},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: docs,
		}

		cmd := &main.DocsCmd{Full: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Document: Budget Speech")
		assert.Contains(t, stdout.String(), "Paragraph: The budget passed.")
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter politext.DocumentFilter
		docs := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter politext.DocumentFilter) ([]*politext.Document, error) {
				gotFilter = filter
				return []*politext.Document{{ID: "doc-1", SourceURL: "https://example.com/speech"}}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Documents: docs,
		}

		cmd := &main.DocsCmd{Source: "https://example.com/speech"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.SourceURL)
		assert.Equal(t, "https://example.com/speech", *gotFilter.SourceURL)
	})

	t.Run("returns ENOTFOUND when nothing stored", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter politext.DocumentFilter) ([]*politext.Document, error) {
				return []*politext.Document{}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Documents: docs,
		}

		cmd := &main.DocsCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, politext.ENOTFOUND, politext.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no documents stored")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes document by ID", func(t *testing.T) {
		t.Parallel()

		var deleted string
		docs := &mock.DocumentService{
			DeleteDocumentFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: docs,
		}

		cmd := &main.DeleteCmd{ID: "doc-1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "doc-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted document doc-1")
	})

	t.Run("reports unknown ID", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			DeleteDocumentFn: func(_ context.Context, id string) error {
				return politext.Errorf(politext.ENOTFOUND, "document not found: %s", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Documents: docs,
		}

		cmd := &main.DeleteCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, politext.ENOTFOUND, politext.ErrorCode(err))
		assert.Contains(t, stderr.String(), "document not found")
	})
}
