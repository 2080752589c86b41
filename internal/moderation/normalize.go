package moderation

import (
	"strconv"
	"strings"
)

// Substitutions that fold common leetspeak/homoglyph characters back to the
// letter they imitate. Applied in a single pass, not to a fixpoint.
var homoglyphs = map[rune]rune{
	'1': 'i',
	'0': 'o',
	'3': 'e',
	'@': 'a',
	'$': 's',
	'|': 'i',
	'5': 's',
	'7': 't',
	'4': 'a',
	'8': 'b',
}

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize canonicalizes text for blocklist matching: decodes backslash
// escape sequences (best effort), lowercases, folds homoglyphs, and replaces
// punctuation with spaces so word boundaries stay detectable. The input
// text is what gets persisted; this output is used only for matching.
func Normalize(text string) string {
	text = decodeEscapes(text)
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if sub, ok := homoglyphs[r]; ok {
			return sub
		}
		return r
	}, text)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, text)
}

// decodeEscapes interprets sequences like \u0069 so that escaped characters
// cannot slip past the blocklist. Text that does not unquote cleanly is
// returned unchanged.
func decodeEscapes(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	quoted := `"` + strings.ReplaceAll(text, `"`, `\"`) + `"`
	decoded, err := strconv.Unquote(quoted)
	if err != nil {
		return text
	}
	return decoded
}
