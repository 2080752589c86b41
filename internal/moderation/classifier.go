package moderation

import (
	"log"
	"regexp"
	"strings"
)

const ReasonWordList = "word_list"

// Result is the outcome of classifying a message.
type Result struct {
	Hateful bool
	Reason  string
	Term    string
}

type phraseRule struct {
	term string
	re   *regexp.Regexp
}

var (
	phraseRules     []phraseRule
	singleWordRegex *regexp.Regexp
)

func init() {
	var singles []string
	for _, term := range hatefulWords {
		if strings.Contains(term, " ") {
			phraseRules = append(phraseRules, phraseRule{
				term: term,
				re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`),
			})
		} else {
			singles = append(singles, regexp.QuoteMeta(term))
		}
	}
	singleWordRegex = regexp.MustCompile(`\b(` + strings.Join(singles, "|") + `)\b`)
}

// Classify decides whether a message contains blocklisted content. Matching
// runs over the normalized text with word-boundary anchoring, so blocked
// terms embedded inside longer unrelated words do not trigger a rejection.
// Multi-word phrases are checked first so a phrase match wins over any single
// hateful word it contains.
func Classify(text string) Result {
	normalized := Normalize(text)
	for _, rule := range phraseRules {
		if rule.re.MatchString(normalized) {
			log.Printf("[MODERATION] post rejected by word_list: %q", rule.term)
			return Result{Hateful: true, Reason: ReasonWordList, Term: rule.term}
		}
	}
	if match := singleWordRegex.FindString(normalized); match != "" {
		log.Printf("[MODERATION] post rejected by word_list: %q", match)
		return Result{Hateful: true, Reason: ReasonWordList, Term: match}
	}
	return Result{}
}

// IsKind reports whether the message contains any uplifting word. Substring
// containment is intentional here; this only feeds a log line.
func IsKind(message string) bool {
	lowered := strings.ToLower(message)
	for _, word := range kindWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
