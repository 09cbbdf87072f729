package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConcepts = `[
	{
		"id": "c1",
		"name": "TCP",
		"definition": "Reliable transport protocol",
		"context": "Networking basics lecture",
		"source_file": "week3.md",
		"topic_area": "Networking",
		"related_concepts": ["c2"],
		"keywords": ["reliable", "transport"]
	},
	{
		"id": "c2",
		"name": "UDP",
		"definition": "Connectionless transport protocol",
		"context": "Networking basics lecture",
		"source_file": "week3.md",
		"topic_area": "Networking"
	}
]`

const validQuestions = `[
	{
		"id": "q1",
		"concept_ids": ["c1"],
		"scenario": "A file transfer must not lose data.",
		"question_text": "Which transport protocol fits and why?",
		"model_answer": "TCP, because it provides reliable ordered delivery.",
		"difficulty": "medium",
		"topic_area": "Networking"
	}
]`

func writeDataDir(t *testing.T, concepts, questions string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "concepts.json"), []byte(concepts), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "questions.json"), []byte(questions), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadValidData(t *testing.T) {
	dir := writeDataDir(t, validConcepts, validQuestions)

	lib, warnings, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(lib.Concepts) != 2 || len(lib.Questions) != 1 {
		t.Errorf("loaded %d concepts, %d questions", len(lib.Concepts), len(lib.Questions))
	}
	if c := lib.Concept("c1"); c == nil || c.Name != "TCP" {
		t.Errorf("Concept(c1) = %v", c)
	}
	if q := lib.Question("q1"); q == nil || q.TopicArea != "Networking" {
		t.Errorf("Question(q1) = %v", q)
	}
}

func TestLoadSkipsInvalidRecords(t *testing.T) {
	concepts := `[
		{"id": "c1", "name": "TCP", "definition": "d", "context": "x", "source_file": "f", "topic_area": "Networking"},
		{"id": "", "name": "broken"}
	]`
	dir := writeDataDir(t, concepts, validQuestions)

	lib, warnings, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lib.Concepts) != 1 {
		t.Errorf("loaded %d concepts, want the valid one only", len(lib.Concepts))
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "concept at index 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want one for concept at index 1", warnings)
	}
}

func TestLoadReportsDanglingReferences(t *testing.T) {
	questions := `[
		{
			"id": "q1",
			"concept_ids": ["nope"],
			"scenario": "",
			"question_text": "t",
			"model_answer": "m",
			"difficulty": "easy",
			"topic_area": "Networking"
		}
	]`
	dir := writeDataDir(t, validConcepts, questions)

	_, warnings, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "unknown concept: nope") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want a dangling-reference warning", warnings)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := NewLoader(dir).Load(); err == nil {
		t.Error("expected an error for a missing data directory")
	}
}

func TestLoadRejectsNonArrayFile(t *testing.T) {
	dir := writeDataDir(t, `{"not": "an array"}`, validQuestions)
	if _, _, err := NewLoader(dir).Load(); err == nil {
		t.Error("expected an error for a non-array concepts file")
	}
}

func TestCheckIntegrityRelatedConcepts(t *testing.T) {
	concepts := []Concept{
		{ID: "c1", RelatedConcepts: []string{"c2", "ghost"}},
		{ID: "c2"},
	}
	warnings := CheckIntegrity(concepts, nil)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "ghost") {
		t.Errorf("warnings = %v, want one for ghost", warnings)
	}
}

func TestLibraryTopics(t *testing.T) {
	dir := writeDataDir(t, validConcepts, validQuestions)
	lib, _, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatal(err)
	}

	topics := lib.Topics()
	if len(topics) != 1 || topics[0] != "Networking" {
		t.Errorf("topics = %v, want [Networking]", topics)
	}
	if got := lib.ConceptsByTopic("Networking"); len(got) != 2 {
		t.Errorf("concepts in topic = %d, want 2", len(got))
	}
	if got := lib.QuestionsByTopic("Nowhere"); len(got) != 0 {
		t.Errorf("questions in unknown topic = %d, want 0", len(got))
	}
}
