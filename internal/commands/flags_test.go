package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	assert.Nil(t, parseTags(""))
	assert.Nil(t, parseTags(" , ,"))
	assert.Equal(t, []string{"bills"}, parseTags("bills"))
	assert.Equal(t, []string{"bills", "home"}, parseTags(" bills , home "))
	// Dedup is the caller's concern; raw input passes through.
	assert.Equal(t, []string{"a", "a"}, parseTags("a,a"))
}

func TestParseDueDate(t *testing.T) {
	t.Run("empty means no deadline", func(t *testing.T) {
		got, err := parseDueDate("  ")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("date only", func(t *testing.T) {
		got, err := parseDueDate("2026-09-01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), *got)
	})

	t.Run("date and time", func(t *testing.T) {
		got, err := parseDueDate("2026-09-01 14:30")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 14, got.Hour())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := parseDueDate("next tuesday")
		require.Error(t, err)
	})
}
