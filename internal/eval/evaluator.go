package eval

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ideal-jiwon/gongbu/internal/content"
)

// Display caps for the composed feedback text. Absence of data
// suppresses a block entirely; presence is trimmed to these limits.
const (
	maxStrengthsShown   = 5
	maxGapsShown        = 5
	maxRelatedShown     = 5
	maxDefinitionsShown = 3
	maxKeyPointsShown   = 3
)

// Definition pairs a concept name with its definition, in the order
// the concepts are referenced by the question.
type Definition struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// Feedback is the result of evaluating one answer. It is plain data,
// created fresh per evaluation and never mutated afterwards.
type Feedback struct {
	QuestionID      string       `json:"question_id"`
	StudentAnswer   string       `json:"student_answer"`
	Score           float64      `json:"correctness_score"`
	Category        Category     `json:"category"`
	RelatedConcepts []string     `json:"related_concepts"`
	Definitions     []Definition `json:"definitions"`
	Rationale       string       `json:"explanation"`
	ModelAnswer     string       `json:"model_answer"`
	Gaps            []string     `json:"gaps_identified"`
	Strengths       []string     `json:"strengths"`
	Text            string       `json:"feedback_text"`
	Timestamp       time.Time    `json:"timestamp"`
}

// Evaluator scores free-text answers against model answers and
// assembles structured feedback. It holds a concept index for
// related-concept and definition lookup; ids that do not resolve are
// silently skipped, never an error.
type Evaluator struct {
	cfg  *Config
	byID map[string]*content.Concept
}

// NewEvaluator creates an Evaluator. cfg must be non-nil; concepts may
// be empty, in which case related concepts and definitions come back
// empty.
func NewEvaluator(cfg *Config, concepts []content.Concept) *Evaluator {
	e := &Evaluator{
		cfg:  cfg,
		byID: make(map[string]*content.Concept, len(concepts)),
	}
	for i := range concepts {
		e.byID[concepts[i].ID] = &concepts[i]
	}
	return e
}

// Evaluate scores the student answer against the question's model
// answer and returns the full Feedback record. It has no side effects:
// marking coverage is the caller's separate step.
func (e *Evaluator) Evaluate(q *content.Question, studentAnswer string) *Feedback {
	studentKW := ExtractKeywords(studentAnswer)
	modelKW := ExtractKeywords(q.ModelAnswer)

	score := Score(studentKW, modelKW, e.cfg.Weights)
	category := e.cfg.Categorize(score)

	related := e.relatedConcepts(q)
	definitions := e.definitions(q)
	gaps := identifyGaps(studentKW, modelKW)
	strengths := identifyStrengths(studentKW, modelKW)

	rationale := formatTemplate(e.cfg.Explanations.RationaleFormat, map[string]string{
		"count": fmt.Sprintf("%d", len(dedupe(modelKW))),
	})

	fb := &Feedback{
		QuestionID:      q.ID,
		StudentAnswer:   studentAnswer,
		Score:           math.Round(score*10) / 10,
		Category:        category,
		RelatedConcepts: related,
		Definitions:     definitions,
		Rationale:       rationale,
		ModelAnswer:     q.ModelAnswer,
		Gaps:            gaps,
		Strengths:       strengths,
		Timestamp:       time.Now(),
	}
	fb.Text = e.composeText(fb, q)
	return fb
}

// relatedConcepts collects the names of the question's concepts and
// their own related concepts, deduplicated in first-seen order.
func (e *Evaluator) relatedConcepts(q *content.Question) []string {
	var related []string
	seen := make(map[string]bool)
	for _, cid := range q.ConceptIDs {
		c, ok := e.byID[cid]
		if !ok {
			continue
		}
		if !seen[c.Name] {
			seen[c.Name] = true
			related = append(related, c.Name)
		}
		for _, rid := range c.RelatedConcepts {
			rc, ok := e.byID[rid]
			if !ok {
				continue
			}
			if !seen[rc.Name] {
				seen[rc.Name] = true
				related = append(related, rc.Name)
			}
		}
	}
	return related
}

// definitions collects name/definition pairs for the directly
// referenced concepts only, not transitively related ones.
func (e *Evaluator) definitions(q *content.Question) []Definition {
	var defs []Definition
	seen := make(map[string]bool)
	for _, cid := range q.ConceptIDs {
		c, ok := e.byID[cid]
		if !ok || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		defs = append(defs, Definition{Name: c.Name, Definition: c.Definition})
	}
	return defs
}

// identifyGaps returns the model keywords the student answer covers
// neither exactly nor partially.
func identifyGaps(studentKeywords, modelKeywords []string) []string {
	studentSet := make(map[string]bool, len(studentKeywords))
	for _, kw := range studentKeywords {
		studentSet[kw] = true
	}

	var gaps []string
	for _, kw := range modelKeywords {
		if studentSet[kw] {
			continue
		}
		covered := false
		for _, skw := range studentKeywords {
			if partialMatch(kw, skw) {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, kw)
		}
	}
	return gaps
}

// identifyStrengths returns the student keywords that are exact
// members of the model keyword set. Unlike gap detection this is
// deliberately exact-only: a partially matching student keyword is
// not claimed as a strength.
func identifyStrengths(studentKeywords, modelKeywords []string) []string {
	modelSet := make(map[string]bool, len(modelKeywords))
	for _, kw := range modelKeywords {
		modelSet[kw] = true
	}

	var strengths []string
	for _, kw := range studentKeywords {
		if modelSet[kw] {
			strengths = append(strengths, kw)
		}
	}
	return strengths
}

// composeText assembles the natural-language feedback block in fixed
// order: score, category message, strengths, gaps, guidance, related
// concepts, definitions, model answer, topic key points.
func (e *Evaluator) composeText(fb *Feedback, q *content.Question) string {
	catCfg := e.cfg.CategoryConfigFor(fb.Category)
	exp := e.cfg.Explanations

	var parts []string
	parts = append(parts, formatTemplate(exp.ScoreFormat, map[string]string{
		"score": fmt.Sprintf("%.0f", fb.Score),
	}))

	if catCfg.Message != "" {
		parts = append(parts, catCfg.Message)
	}

	if catCfg.Structure.IncludeStrengths && len(fb.Strengths) > 0 {
		parts = append(parts, "\n"+exp.StrengthsHeader)
		parts = append(parts, strings.Join(capped(fb.Strengths, maxStrengthsShown), ", "))
	}

	if catCfg.Structure.IncludeGaps && len(fb.Gaps) > 0 {
		parts = append(parts, "\n"+exp.GapsHeader)
		parts = append(parts, strings.Join(capped(fb.Gaps, maxGapsShown), ", "))
	}

	if catCfg.Guidance != "" {
		parts = append(parts, "\n"+catCfg.Guidance)
	}

	if catCfg.Structure.IncludeRelatedConcepts && len(fb.RelatedConcepts) > 0 {
		parts = append(parts, "\n"+exp.RelatedHeader)
		for _, name := range capped(fb.RelatedConcepts, maxRelatedShown) {
			parts = append(parts, "- "+name)
		}
	}

	if catCfg.Structure.IncludeDefinitions && len(fb.Definitions) > 0 {
		for _, d := range fb.Definitions[:min(len(fb.Definitions), maxDefinitionsShown)] {
			parts = append(parts, formatTemplate(exp.DefinitionFormat, map[string]string{
				"concept_name": d.Name,
				"definition":   d.Definition,
			}))
		}
	}

	if catCfg.Structure.IncludeModelAnswer {
		parts = append(parts, "\n"+exp.ModelAnswerHeader)
		parts = append(parts, fb.ModelAnswer)
	}

	if tpl, ok := e.cfg.TopicTemplates[q.TopicArea]; ok && len(tpl.KeyPoints) > 0 {
		parts = append(parts, "\n"+exp.KeyPointsHeader)
		for _, point := range capped(tpl.KeyPoints, maxKeyPointsShown) {
			parts = append(parts, "- "+point)
		}
	}

	return strings.Join(parts, "\n")
}

// formatTemplate substitutes {name} placeholders in a template string.
func formatTemplate(tpl string, values map[string]string) string {
	out := tpl
	for name, val := range values {
		out = strings.ReplaceAll(out, "{"+name+"}", val)
	}
	return out
}

func capped(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
