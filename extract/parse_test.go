package extract_test

import (
	"testing"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	t.Parallel()

	t.Run("bare array", func(t *testing.T) {
		t.Parallel()

		records, err := extract.DecodeRecords(`[{"name": "Jane Doe", "age": 45}]`)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("fenced code block", func(t *testing.T) {
		t.Parallel()

		response := "Here you go:\n```json\n[{\"name\": \"Jane Doe\"}]\n```\nLet me know!"
		records, err := extract.DecodeRecords(response)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("prose-wrapped array", func(t *testing.T) {
		t.Parallel()

		response := `Sure! Based on the website I found: [{"name": "Jane Doe"}, {"name": "John Smith"}] Hope that helps.`
		records, err := extract.DecodeRecords(response)
		require.NoError(t, err)
		require.Len(t, records, 2)
	})

	t.Run("bare object promoted to list", func(t *testing.T) {
		t.Parallel()

		records, err := extract.DecodeRecords(`{"name": "Jane Doe"}`)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("brackets inside strings do not confuse the matcher", func(t *testing.T) {
		t.Parallel()

		records, err := extract.DecodeRecords(`noise [{"name": "Jane Doe", "bio": "loves [gardening] a lot"}] noise`)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("age as numeric string", func(t *testing.T) {
		t.Parallel()

		records, err := extract.DecodeRecords(`[{"name": "Jane Doe", "age": "45"}]`)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("null and junk ages are absent, not failures", func(t *testing.T) {
		t.Parallel()

		records, err := extract.DecodeRecords(`[{"name": "A", "age": null}, {"name": "B", "age": "unknown"}]`)
		require.NoError(t, err)
		require.Len(t, records, 2)
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		records, err := extract.DecodeRecords(`[]`)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("garbage returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := extract.DecodeRecords("I could not find any doctors on this page.")
		assert.Equal(t, docscout.EINVALID, docscout.ErrorCode(err))
	})

	t.Run("empty response returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := extract.DecodeRecords("   ")
		assert.Equal(t, docscout.EINVALID, docscout.ErrorCode(err))
	})
}
