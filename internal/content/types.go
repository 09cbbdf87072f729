package content

// Concept is an atomic unit of course knowledge extracted from lecture
// materials. Concepts are immutable once loaded; the rest of the app
// only ever reads them.
type Concept struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Definition      string   `json:"definition"`
	Context         string   `json:"context"`
	SourceFile      string   `json:"source_file"`
	TopicArea       string   `json:"topic_area"`
	RelatedConcepts []string `json:"related_concepts,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	ExtractedAt     string   `json:"extraction_timestamp,omitempty"`
}

// Question is a scenario-based practice question. ConceptIDs lists the
// concepts the question tests; ModelAnswer is the ground truth used for
// keyword-overlap scoring.
type Question struct {
	ID          string   `json:"id"`
	ConceptIDs  []string `json:"concept_ids"`
	Scenario    string   `json:"scenario"`
	Text        string   `json:"question_text"`
	ModelAnswer string   `json:"model_answer"`
	Difficulty  string   `json:"difficulty"`
	TopicArea   string   `json:"topic_area"`
	GeneratedAt string   `json:"generation_timestamp,omitempty"`
}
