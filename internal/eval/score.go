package eval

import "strings"

// minPartialLen is the minimum keyword length (runes) on both sides
// before a substring counts as a partial match. Shorter tokens overlap
// too coincidentally to mean anything.
const minPartialLen = 3

// Score computes the keyword-overlap correctness score in [0,100].
// Each unique model keyword earns the exact weight when present
// verbatim among the student keywords, otherwise the partial weight
// for the first student keyword it partially matches. The score is
// the earned weight over the unique model keyword count, scaled to
// 100 and clamped.
//
// An empty model keyword list scores 0: there is nothing to match
// against, and it guards the division.
func Score(studentKeywords, modelKeywords []string, w Weights) float64 {
	unique := dedupe(modelKeywords)
	if len(unique) == 0 {
		return 0.0
	}

	studentSet := make(map[string]bool, len(studentKeywords))
	for _, kw := range studentKeywords {
		studentSet[kw] = true
	}

	total := 0.0
	for _, modelKW := range unique {
		if studentSet[modelKW] {
			total += w.ExactMatch
			continue
		}
		for _, studentKW := range studentKeywords {
			if partialMatch(modelKW, studentKW) {
				total += w.PartialMatch
				break
			}
		}
	}

	score := total / float64(len(unique)) * 100
	if score > 100.0 {
		// Unreachable with one match type per keyword; kept as an
		// invariant against future weight changes.
		score = 100.0
	}
	return score
}

// partialMatch reports whether one keyword contains the other, with
// both at least minPartialLen runes long.
//
// Known imprecision: short coincidental substrings ("can" inside
// "scan") still count. The 80/40 thresholds and 1.0/0.5 weights were
// tuned against this matcher, so it stays as is.
func partialMatch(a, b string) bool {
	if len([]rune(a)) < minPartialLen || len([]rune(b)) < minPartialLen {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// dedupe returns the unique keywords preserving first-seen order.
func dedupe(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	var out []string
	for _, kw := range keywords {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
