package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/politext"
	main "github.com/fwojciec/politext/cmd/politext"
	"github.com/fwojciec/politext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints metadata as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("<html><head><title>Speech</title></head><body><h1>One</h1><p>Text</p><p>More</p><a href='/x'>link</a></body></html>"),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Metadata: goquery.NewMetadataService(),
		}

		cmd := &main.MetaCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)

		var meta politext.Metadata
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &meta))
		assert.Equal(t, "Speech", meta.Title)
		assert.Equal(t, 1, meta.Headings)
		assert.Equal(t, 2, meta.Paragraphs)
		assert.Equal(t, 1, meta.Links)
	})
}
