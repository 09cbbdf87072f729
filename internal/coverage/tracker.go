// Package coverage tracks which concepts have been tested by which
// questions and decides what to study next.
package coverage

import (
	"sort"

	"github.com/ideal-jiwon/gongbu/internal/content"
)

// Strategy names a next-concept selection policy.
type Strategy string

// StrategyUntestedFirst prioritizes concepts with no coverage entry,
// falling back to least-recently-tested once everything is covered.
const StrategyUntestedFirst Strategy = "untested_first"

// Tracker owns the concept→question coverage map. It is the only
// mutable state in the core and assumes a single goroutine: a host
// running parallel sessions must give each its own Tracker.
//
// The tracker does not validate ids against the concept list; marking
// an unknown concept or question id simply records it. Referential
// integrity is the loader's concern.
type Tracker struct {
	concepts []content.Concept
	covered  map[string][]string
}

// NewTracker creates a Tracker over the given concepts, optionally
// resuming from a previously persisted coverage map. The prior map is
// deep-copied so later mutations of the argument are not observed.
func NewTracker(concepts []content.Concept, prior map[string][]string) *Tracker {
	covered := make(map[string][]string, len(prior))
	for cid, qids := range prior {
		covered[cid] = append([]string(nil), qids...)
	}
	return &Tracker{concepts: concepts, covered: covered}
}

// MarkCovered records that a question tested a concept. Marking the
// same (concept, question) pair twice is a no-op.
func (t *Tracker) MarkCovered(conceptID, questionID string) {
	for _, qid := range t.covered[conceptID] {
		if qid == questionID {
			return
		}
	}
	t.covered[conceptID] = append(t.covered[conceptID], questionID)
}

// Covered reports whether the concept has at least one coverage entry.
func (t *Tracker) Covered(conceptID string) bool {
	_, ok := t.covered[conceptID]
	return ok
}

// Untested returns the tracked concepts with no coverage entry, in the
// tracker's original concept order.
func (t *Tracker) Untested() []content.Concept {
	var out []content.Concept
	for _, c := range t.concepts {
		if !t.Covered(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// CoverageMap returns a deep copy of the coverage map for persistence.
func (t *Tracker) CoverageMap() map[string][]string {
	out := make(map[string][]string, len(t.covered))
	for cid, qids := range t.covered {
		out[cid] = append([]string(nil), qids...)
	}
	return out
}

// Stats computes coverage statistics over all tracked concepts. An
// empty concept list yields all-zero stats with no topic entries.
func (t *Tracker) Stats() Stats {
	total := len(t.concepts)
	if total == 0 {
		return Stats{ByTopic: map[string]float64{}}
	}

	tested := 0
	byTopicTotal := make(map[string]int)
	byTopicTested := make(map[string]int)
	for _, c := range t.concepts {
		byTopicTotal[c.TopicArea]++
		if t.Covered(c.ID) {
			tested++
			byTopicTested[c.TopicArea]++
		}
	}

	byTopic := make(map[string]float64, len(byTopicTotal))
	var untestedTopics []string
	for topic, topicTotal := range byTopicTotal {
		byTopic[topic] = float64(byTopicTested[topic]) / float64(topicTotal) * 100
		if byTopicTested[topic] == 0 {
			untestedTopics = append(untestedTopics, topic)
		}
	}
	sort.Strings(untestedTopics)

	return Stats{
		TotalConcepts:   total,
		TestedConcepts:  tested,
		CoveragePercent: float64(tested) / float64(total) * 100,
		ByTopic:         byTopic,
		UntestedTopics:  untestedTopics,
	}
}

// StatsForTopic computes coverage statistics scoped to one topic area.
// A topic with no matching concepts yields zero stats with that topic
// listed as untested.
func (t *Tracker) StatsForTopic(topic string) Stats {
	total := 0
	tested := 0
	for _, c := range t.concepts {
		if c.TopicArea != topic {
			continue
		}
		total++
		if t.Covered(c.ID) {
			tested++
		}
	}

	if total == 0 {
		return Stats{
			ByTopic:        map[string]float64{},
			UntestedTopics: []string{topic},
		}
	}

	pct := float64(tested) / float64(total) * 100
	var untested []string
	if tested == 0 {
		untested = []string{topic}
	}
	return Stats{
		TotalConcepts:   total,
		TestedConcepts:  tested,
		CoveragePercent: pct,
		ByTopic:         map[string]float64{topic: pct},
		UntestedTopics:  untested,
	}
}

// SelectNext picks the next concept to test. With topicFilter set, the
// candidate pool is restricted to that topic area; an empty pool
// yields nil. Under StrategyUntestedFirst the first uncovered pool
// member (original order) wins; once the pool is fully covered the
// least-recently-tested concept is chosen. Unknown strategies fall
// back to the pool's first element.
func (t *Tracker) SelectNext(strategy Strategy, topicFilter string) *content.Concept {
	pool := t.concepts
	if topicFilter != "" {
		pool = nil
		for _, c := range t.concepts {
			if c.TopicArea == topicFilter {
				pool = append(pool, c)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	if strategy == StrategyUntestedFirst {
		for i := range pool {
			if !t.Covered(pool[i].ID) {
				return &pool[i]
			}
		}
		return t.leastRecentlyTested(pool)
	}

	return &pool[0]
}

// leastRecentlyTested selects the pool concept whose most recent test
// is oldest. Recency comes from a global index: every tracked
// concept's coverage list is scanned in tracker order and each
// distinct question id gets the next integer on first sight, which
// approximates global test chronology. A concept's key is the maximum
// index among its own recorded questions; no recorded questions means
// key -1, the highest priority. Ties go to the earliest pool member.
func (t *Tracker) leastRecentlyTested(pool []content.Concept) *content.Concept {
	if len(pool) == 0 {
		return nil
	}

	recency := make(map[string]int)
	next := 0
	for _, c := range t.concepts {
		for _, qid := range t.covered[c.ID] {
			if _, ok := recency[qid]; !ok {
				recency[qid] = next
				next++
			}
		}
	}

	key := func(c content.Concept) int {
		qids := t.covered[c.ID]
		if len(qids) == 0 {
			return -1
		}
		maxIdx := 0
		for _, qid := range qids {
			if idx := recency[qid]; idx > maxIdx {
				maxIdx = idx
			}
		}
		return maxIdx
	}

	best := &pool[0]
	bestKey := key(pool[0])
	for i := 1; i < len(pool); i++ {
		if k := key(pool[i]); k < bestKey {
			best = &pool[i]
			bestKey = k
		}
	}
	return best
}
