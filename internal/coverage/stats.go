package coverage

// Stats is a derived snapshot of coverage progress. It is recomputed
// on demand and safe to serialize, but the coverage map remains the
// authoritative state.
type Stats struct {
	TotalConcepts   int                `json:"total_concepts"`
	TestedConcepts  int                `json:"tested_concepts"`
	CoveragePercent float64            `json:"coverage_percentage"`
	ByTopic         map[string]float64 `json:"coverage_by_topic"`
	UntestedTopics  []string           `json:"untested_topics"`
}

// Complete reports whether every tracked concept has been tested.
func (s Stats) Complete() bool {
	return s.TotalConcepts > 0 && s.TestedConcepts == s.TotalConcepts
}
