package eval

import "strings"

// stopWords are common English function words excluded from keyword
// extraction. Korean has no equivalent list here: particles attach to
// the word they follow, so filtering happens by token length instead.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true,
	"and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "it": true, "this": true,
	"that": true, "not": true, "no": true,
	"as": true, "if": true, "its": true, "has": true, "have": true,
	"had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "can": true,
	"could": true, "should": true, "may": true,
}

// ExtractKeywords tokenizes text into lowercase keywords: maximal runs
// of ASCII alphanumerics or Korean syllables, with everything else as
// a separator. Tokens shorter than two characters (rune count, so
// multi-byte Hangul is not penalized) and English stop words are
// dropped; the result is deduplicated preserving first-seen order.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	var current []rune
	for _, r := range lower {
		if isKeywordRune(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}

	seen := make(map[string]bool, len(tokens))
	var keywords []string
	for _, tok := range tokens {
		if seen[tok] || stopWords[tok] {
			continue
		}
		if len([]rune(tok)) < 2 {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// isKeywordRune reports whether r belongs inside a keyword token:
// lowercase ASCII letters, digits, or precomposed Hangul syllables.
func isKeywordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0xAC00 && r <= 0xD7A3:
		return true
	}
	return false
}
