package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CaseAndPunctuation(t *testing.T) {
	assert.Equal(t, Normalize("stupid"), Normalize("STUPID!"))
	assert.Equal(t, "hello world", Normalize("Hello, world."))
}

func TestNormalize_Leetspeak(t *testing.T) {
	assert.Contains(t, Normalize("stup1d"), "stupid")
	assert.Contains(t, Normalize("b1g0t"), "bigot")
	assert.Contains(t, Normalize("$tupid"), "stupid")
}

func TestNormalize_UnicodeEscapes(t *testing.T) {
	assert.Contains(t, Normalize(`b\u0069got`), "bigot")
}

func TestNormalize_InvalidEscapeLeftAlone(t *testing.T) {
	// An escape that does not decode falls through to the later steps, where
	// the backslash itself is punctuation and becomes a space.
	assert.Equal(t, "hello  q world", Normalize(`hello \q world`))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"plain ascii words",
		"hello world",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalize_WordBoundariesPreserved(t *testing.T) {
	// Punctuation turns into spaces so boundary matching still works.
	assert.Equal(t, "you are a bigot ", Normalize("You are a bigot!"))
}
