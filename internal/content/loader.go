package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Loader reads the pre-generated study data files from a data directory.
type Loader struct {
	dir string
}

// NewLoader creates a Loader rooted at the given data directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// ConceptsPath returns the path of the concepts file.
func (l *Loader) ConceptsPath() string { return filepath.Join(l.dir, "concepts.json") }

// QuestionsPath returns the path of the questions file.
func (l *Loader) QuestionsPath() string { return filepath.Join(l.dir, "questions.json") }

// TemplatesPath returns the path of the feedback templates file.
func (l *Loader) TemplatesPath() string { return filepath.Join(l.dir, "feedback_templates.json") }

// LoadConcepts reads and validates concepts.json. Records that fail
// schema validation are skipped and reported as warnings.
func (l *Loader) LoadConcepts() ([]Concept, []string, error) {
	if err := compileSchemas(); err != nil {
		return nil, nil, err
	}
	raws, err := readArray(l.ConceptsPath())
	if err != nil {
		return nil, nil, err
	}

	var concepts []Concept
	var warnings []string
	for i, raw := range raws {
		if err := validateRecord(compiledConcept, raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("concept at index %d: %v", i, err))
			continue
		}
		var c Concept
		if err := json.Unmarshal(raw, &c); err != nil {
			warnings = append(warnings, fmt.Sprintf("concept at index %d: %v", i, err))
			continue
		}
		concepts = append(concepts, c)
	}
	return concepts, warnings, nil
}

// LoadQuestions reads and validates questions.json. Records that fail
// schema validation are skipped and reported as warnings.
func (l *Loader) LoadQuestions() ([]Question, []string, error) {
	if err := compileSchemas(); err != nil {
		return nil, nil, err
	}
	raws, err := readArray(l.QuestionsPath())
	if err != nil {
		return nil, nil, err
	}

	var questions []Question
	var warnings []string
	for i, raw := range raws {
		if err := validateRecord(compiledQuestion, raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("question at index %d: %v", i, err))
			continue
		}
		var q Question
		if err := json.Unmarshal(raw, &q); err != nil {
			warnings = append(warnings, fmt.Sprintf("question at index %d: %v", i, err))
			continue
		}
		questions = append(questions, q)
	}
	return questions, warnings, nil
}

// Load reads both data files, builds the Library, and runs
// referential-integrity checks. Integrity problems are warnings, not
// errors: dangling references degrade gracefully at evaluation time.
func (l *Loader) Load() (*Library, []string, error) {
	concepts, warnings, err := l.LoadConcepts()
	if err != nil {
		return nil, nil, fmt.Errorf("load concepts: %w", err)
	}
	questions, qWarnings, err := l.LoadQuestions()
	if err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}
	warnings = append(warnings, qWarnings...)

	lib := NewLibrary(concepts, questions)
	warnings = append(warnings, CheckIntegrity(concepts, questions)...)
	return lib, warnings, nil
}

// CheckIntegrity validates the relationships between concepts and
// questions: every question concept_id and every related_concepts
// entry should resolve to a loaded concept.
func CheckIntegrity(concepts []Concept, questions []Question) []string {
	var warnings []string

	ids := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		ids[c.ID] = true
	}

	for _, q := range questions {
		for _, cid := range q.ConceptIDs {
			if !ids[cid] {
				warnings = append(warnings, fmt.Sprintf("question %s references unknown concept: %s", q.ID, cid))
			}
		}
	}
	for _, c := range concepts {
		for _, rid := range c.RelatedConcepts {
			if !ids[rid] {
				warnings = append(warnings, fmt.Sprintf("concept %s references unknown related concept: %s", c.ID, rid))
			}
		}
	}
	return warnings
}

// readArray reads a JSON file expected to hold a top-level array and
// returns its raw elements.
func readArray(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return raws, nil
}

// validateRecord checks one raw record against a compiled schema.
func validateRecord(sch *jsonschema.Schema, raw json.RawMessage) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	return sch.Validate(doc)
}
