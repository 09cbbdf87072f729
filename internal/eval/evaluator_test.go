package eval

import (
	"strings"
	"testing"

	"github.com/ideal-jiwon/gongbu/internal/content"
)

func testConcepts() []content.Concept {
	return []content.Concept{
		{ID: "c1", Name: "TCP", Definition: "연결 지향 전송 프로토콜", RelatedConcepts: []string{"c2", "missing"}},
		{ID: "c2", Name: "UDP", Definition: "비연결 전송 프로토콜"},
		{ID: "c3", Name: "IP", Definition: "네트워크 계층 프로토콜", RelatedConcepts: []string{"c1"}},
	}
}

func testQuestion() *content.Question {
	return &content.Question{
		ID:          "q1",
		ConceptIDs:  []string{"c1", "c3"},
		Text:        "Explain TCP.",
		ModelAnswer: "tcp provides reliable ordered delivery over connections",
		TopicArea:   "Networking",
	}
}

func TestEvaluatePerfectAnswer(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), testConcepts())
	fb := e.Evaluate(testQuestion(), "TCP provides reliable ordered delivery over connections")

	if fb.Score != 100.0 {
		t.Errorf("score = %v, want 100.0", fb.Score)
	}
	if fb.Category != CategoryCorrect {
		t.Errorf("category = %v, want correct", fb.Category)
	}
	if len(fb.Gaps) != 0 {
		t.Errorf("gaps = %v, want none", fb.Gaps)
	}
	if len(fb.Strengths) == 0 {
		t.Error("expected strengths for a perfect answer")
	}
}

func TestEvaluateEmptyAnswer(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), testConcepts())
	fb := e.Evaluate(testQuestion(), "")

	if fb.Score != 0.0 {
		t.Errorf("score = %v, want 0.0", fb.Score)
	}
	if fb.Category != CategoryIncorrect {
		t.Errorf("category = %v, want incorrect", fb.Category)
	}
	if len(fb.Strengths) != 0 {
		t.Errorf("strengths = %v, want none", fb.Strengths)
	}
	// Every model keyword is a gap.
	if len(fb.Gaps) != len(ExtractKeywords(testQuestion().ModelAnswer)) {
		t.Errorf("gaps = %v, want all model keywords", fb.Gaps)
	}
}

func TestEvaluateRelatedConcepts(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), testConcepts())
	fb := e.Evaluate(testQuestion(), "something")

	// c1 -> TCP plus its related UDP (unresolvable id skipped),
	// then c3 -> IP; TCP already seen.
	want := []string{"TCP", "UDP", "IP"}
	if len(fb.RelatedConcepts) != len(want) {
		t.Fatalf("related = %v, want %v", fb.RelatedConcepts, want)
	}
	for i, name := range want {
		if fb.RelatedConcepts[i] != name {
			t.Errorf("related[%d] = %q, want %q", i, fb.RelatedConcepts[i], name)
		}
	}
}

func TestEvaluateDefinitionsDirectOnly(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), testConcepts())
	fb := e.Evaluate(testQuestion(), "something")

	// Definitions cover directly referenced concepts only, in order.
	if len(fb.Definitions) != 2 {
		t.Fatalf("definitions = %v, want 2 entries", fb.Definitions)
	}
	if fb.Definitions[0].Name != "TCP" || fb.Definitions[1].Name != "IP" {
		t.Errorf("definition order = %q, %q", fb.Definitions[0].Name, fb.Definitions[1].Name)
	}
}

func TestEvaluateUnresolvableConceptIDs(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), nil)
	fb := e.Evaluate(testQuestion(), "tcp reliable")

	if len(fb.RelatedConcepts) != 0 || len(fb.Definitions) != 0 {
		t.Errorf("unresolvable ids must be skipped silently: related=%v defs=%v",
			fb.RelatedConcepts, fb.Definitions)
	}
	if fb.Score == 0 {
		t.Error("scoring must still work without a concept index")
	}
}

func TestStrengthsExactOnly(t *testing.T) {
	// "connection" partially matches "connectionless" but is not an
	// exact member, so it counts against gaps yet never as a strength.
	student := []string{"connection"}
	model := []string{"connectionless"}

	if gaps := identifyGaps(student, model); len(gaps) != 0 {
		t.Errorf("gaps = %v, want none (partial coverage)", gaps)
	}
	if strengths := identifyStrengths(student, model); len(strengths) != 0 {
		t.Errorf("strengths = %v, want none (exact only)", strengths)
	}
}

func TestFeedbackTextBlockOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopicTemplates = map[string]TopicTemplate{
		"Networking": {KeyPoints: []string{"3-way handshake", "flow control"}},
	}
	e := NewEvaluator(cfg, testConcepts())

	// Half coverage lands partially_correct, which enables every block.
	fb := e.Evaluate(testQuestion(), "tcp reliable delivery")
	if fb.Category != CategoryPartiallyCorrect {
		t.Fatalf("category = %v, want partially_correct", fb.Category)
	}

	text := fb.Text
	markers := []string{
		"점수:",
		cfg.PartiallyCorrect.Message,
		cfg.Explanations.StrengthsHeader,
		cfg.Explanations.GapsHeader,
		cfg.PartiallyCorrect.Guidance,
		cfg.Explanations.RelatedHeader,
		cfg.Explanations.ModelAnswerHeader,
		cfg.Explanations.KeyPointsHeader,
	}
	pos := -1
	for _, marker := range markers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			t.Fatalf("marker %q missing from feedback text:\n%s", marker, text)
		}
		if idx <= pos {
			t.Errorf("marker %q out of order in feedback text", marker)
		}
		pos = idx
	}
}

func TestFeedbackTextRespectsStructureFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PartiallyCorrect.Structure = StructureFlags{} // everything off
	e := NewEvaluator(cfg, testConcepts())

	fb := e.Evaluate(testQuestion(), "tcp reliable delivery")
	if fb.Category != CategoryPartiallyCorrect {
		t.Fatalf("category = %v, want partially_correct", fb.Category)
	}

	for _, header := range []string{
		cfg.Explanations.StrengthsHeader,
		cfg.Explanations.GapsHeader,
		cfg.Explanations.RelatedHeader,
		cfg.Explanations.ModelAnswerHeader,
	} {
		if strings.Contains(fb.Text, header) {
			t.Errorf("flag-disabled block %q present in text", header)
		}
	}
	// Score line and message always appear.
	if !strings.Contains(fb.Text, "점수:") {
		t.Error("score line missing")
	}
}

func TestFeedbackTextCapsLists(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEvaluator(cfg, nil)

	q := &content.Question{
		ID:          "q-many",
		ModelAnswer: "alpha bravo charlie delta echo foxtrot golf hotel india juliett",
	}
	fb := e.Evaluate(q, "nothing useful here whatsoever")

	if len(fb.Gaps) <= maxGapsShown {
		t.Fatalf("test needs more than %d gaps, got %d", maxGapsShown, len(fb.Gaps))
	}
	// The record keeps everything; the text shows at most the cap.
	gapsLine := ""
	for _, line := range strings.Split(fb.Text, "\n") {
		if strings.Contains(line, "alpha") {
			gapsLine = line
			break
		}
	}
	if gapsLine == "" {
		t.Fatal("gaps line not found in feedback text")
	}
	if got := len(strings.Split(gapsLine, ", ")); got != maxGapsShown {
		t.Errorf("gaps shown = %d, want %d", got, maxGapsShown)
	}
}

func TestEvaluateScoreRounding(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), nil)
	q := &content.Question{ID: "q", ModelAnswer: "alpha bravo charlie"}

	fb := e.Evaluate(q, "alpha")
	// 1/3 keywords -> 33.333... rounds to one decimal.
	if fb.Score != 33.3 {
		t.Errorf("score = %v, want 33.3", fb.Score)
	}
}

func TestEvaluateHasNoSideEffects(t *testing.T) {
	e := NewEvaluator(DefaultConfig(), testConcepts())
	q := testQuestion()

	first := e.Evaluate(q, "tcp reliable")
	second := e.Evaluate(q, "tcp reliable")
	if first.Score != second.Score || first.Category != second.Category {
		t.Errorf("repeat evaluation differs: %v/%v vs %v/%v",
			first.Score, first.Category, second.Score, second.Category)
	}
}
