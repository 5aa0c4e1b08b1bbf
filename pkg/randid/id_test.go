package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]*$`)

	for _, length := range []int{0, 1, 8, 16} {
		id := Generate(length)
		assert.Len(t, id, length)
		assert.True(t, pattern.MatchString(id), "Generate(%d) = %q, want lowercase alphanumeric", length, id)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	// Statistical check: with 36^8 possibilities, repeats across 100
	// draws would indicate broken randomness.
	seen := make(map[string]bool)
	for range 100 {
		seen[Generate(8)] = true
	}
	assert.GreaterOrEqual(t, len(seen), 90)
}
