package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BlockedWord(t *testing.T) {
	result := Classify("You are a bigot!")
	assert.True(t, result.Hateful)
	assert.Equal(t, ReasonWordList, result.Reason)
	assert.Equal(t, "bigot", result.Term)
}

func TestClassify_EmbeddedSubstringDoesNotMatch(t *testing.T) {
	// "rat" is blocklisted but must not match inside unrelated words.
	for _, msg := range []string{
		"I am grateful for this decoration",
		"the operation was a success",
		"scattered thoughts about strategy",
	} {
		result := Classify(msg)
		assert.False(t, result.Hateful, "message %q should pass", msg)
		assert.Empty(t, result.Reason)
	}
}

func TestClassify_MultiWordPhraseWinsOverSingleWord(t *testing.T) {
	// "i hate you" contains "hate"; the phrase should be reported.
	result := Classify("Honestly, I hate you")
	assert.True(t, result.Hateful)
	assert.Equal(t, "i hate you", result.Term)
}

func TestClassify_LeetspeakEvasion(t *testing.T) {
	result := Classify("you are stup1d")
	assert.True(t, result.Hateful)
	assert.Equal(t, "stupid", result.Term)
}

func TestClassify_UnicodeEscapeEvasion(t *testing.T) {
	result := Classify(`you are a b\u0069got`)
	assert.True(t, result.Hateful)
	assert.Equal(t, "bigot", result.Term)
}

func TestClassify_CleanMessage(t *testing.T) {
	result := Classify("what a lovely day on the board")
	assert.False(t, result.Hateful)
	assert.Empty(t, result.Reason)
	assert.Empty(t, result.Term)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	result := Classify("BIGOT")
	assert.True(t, result.Hateful)
	assert.Equal(t, "bigot", result.Term)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind("Thank you for being here"))
	assert.True(t, IsKind("you got this!"))
	assert.False(t, IsKind("the weather is mild today"))
}
