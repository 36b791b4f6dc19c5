package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalDay(t *testing.T) {
	t.Run("Lowercase Input", func(t *testing.T) {
		assert.Equal(t, "Friday", CanonicalDay("friday"))
	})

	t.Run("Uppercase Input", func(t *testing.T) {
		assert.Equal(t, "Monday", CanonicalDay("MONDAY"))
	})

	t.Run("Already Canonical", func(t *testing.T) {
		assert.Equal(t, "Tuesday", CanonicalDay("Tuesday"))
	})

	t.Run("Surrounding Whitespace", func(t *testing.T) {
		assert.Equal(t, "Wednesday", CanonicalDay("  wednesday "))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", CanonicalDay(""))
	})
}

func TestSanitizeSubjectNames(t *testing.T) {
	t.Run("Trims Each Name", func(t *testing.T) {
		result := SanitizeSubjectNames([]string{" Mathematics ", "Physics"})
		assert.Equal(t, []string{"Mathematics", "Physics"}, result)
	})

	t.Run("Drops Empty Names", func(t *testing.T) {
		result := SanitizeSubjectNames([]string{"Urdu", "  ", ""})
		assert.Equal(t, []string{"Urdu"}, result)
	})

	t.Run("Empty Input", func(t *testing.T) {
		result := SanitizeSubjectNames(nil)
		assert.Empty(t, result)
	})
}
