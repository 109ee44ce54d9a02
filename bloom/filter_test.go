package bloom_test

import (
	"testing"

	"github.com/fwojciec/politext/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added hashes test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("a1b2c3")

		assert.True(t, f.Test("a1b2c3"))
	})

	t.Run("unseen hashes test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("a1b2c3")

		assert.False(t, f.Test("d4e5f6"))
	})

	t.Run("estimated count tracks additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("one")
		f.Add("two")
		f.Add("three")

		count := f.EstimatedCount()
		assert.InDelta(t, 3, float64(count), 1)
	})
}
