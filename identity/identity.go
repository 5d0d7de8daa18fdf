// Package identity extracts display names from free conversational text via
// an ordered strategy cascade: phrasal templates first, then a conservative
// bare-name rule. The first matching strategy wins; there is no backtracking.
package identity

import (
	"regexp"
	"strings"
)

// templates are evaluated in order; earlier entries take precedence when
// multiple would match. Each captures the trailing alphabetic phrase.
var templates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is\s+([a-z][a-z' ]*)$`),
	regexp.MustCompile(`(?i)\b(?:i am|i'm)\s+([a-z][a-z' ]*)$`),
	regexp.MustCompile(`(?i)\b(?:call me|name me)\s+([a-z][a-z' ]*)$`),
	regexp.MustCompile(`(?i)\b(?:it's|its)\s+([a-z][a-z' ]*)$`),
	regexp.MustCompile(`(?i)\bhi\s+([a-z][a-z' ]*)$`),
}

// stopWords disqualify bare text from being treated as a name.
var stopWords = map[string]struct{}{
	"hi": {}, "hello": {}, "how": {}, "what": {}, "where": {},
	"when": {}, "why": {}, "can": {}, "could": {}, "would": {}, "will": {},
}

// Extract runs the full cascade against text: phrasal templates, then the
// bare-name rule. It returns the title-cased, trimmed name and true on
// success, or "" and false when both stages fail.
func Extract(text string) (string, bool) {
	if name, ok := FromTemplate(text); ok {
		return name, ok
	}
	return fromBareText(text)
}

// FromTemplate matches text against the phrasal templates only ("my name is
// X", "call me X", ...). Used outside onboarding, where arbitrary free text
// must not be mistaken for a name.
func FromTemplate(text string) (string, bool) {
	for _, re := range templates {
		if m := re.FindStringSubmatch(text); m != nil {
			if name := titleCase(m[1]); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// fromBareText accepts text as a name iff it has 1-3 tokens, none of which is
// a stop word, and every token (apostrophes stripped) is purely alphabetic.
func fromBareText(text string) (string, bool) {
	tokens := strings.Fields(text)
	if len(tokens) < 1 || len(tokens) > 3 {
		return "", false
	}
	for _, tok := range tokens {
		if _, stop := stopWords[strings.ToLower(tok)]; stop {
			return "", false
		}
		if !alphabetic(strings.ReplaceAll(tok, "'", "")) {
			return "", false
		}
	}
	return titleCase(text), true
}

func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		lower := r | 0x20
		if lower < 'a' || lower > 'z' {
			return false
		}
	}
	return true
}

// titleCase upper-cases the first letter of each whitespace-separated token
// and lower-cases the rest, collapsing surrounding whitespace.
func titleCase(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	for i, tok := range tokens {
		tokens[i] = strings.ToUpper(tok[:1]) + tok[1:]
	}
	return strings.Join(tokens, " ")
}
