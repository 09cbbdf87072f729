package eval

import (
	"encoding/json"
	"fmt"
	"os"
)

// Category classifies a scored answer.
type Category string

const (
	CategoryCorrect          Category = "correct"
	CategoryPartiallyCorrect Category = "partially_correct"
	CategoryIncorrect        Category = "incorrect"
)

// StructureFlags gates the optional blocks of the composed feedback
// text. Each block is also suppressed when it has no data.
type StructureFlags struct {
	IncludeStrengths       bool `json:"include_strengths"`
	IncludeGaps            bool `json:"include_gaps"`
	IncludeRelatedConcepts bool `json:"include_related_concepts"`
	IncludeDefinitions     bool `json:"include_definitions"`
	IncludeModelAnswer     bool `json:"include_model_answer"`
}

// CategoryConfig holds the per-category message, optional guidance
// line, and feedback structure flags.
type CategoryConfig struct {
	Message   string         `json:"message_korean"`
	Guidance  string         `json:"guidance_korean,omitempty"`
	Structure StructureFlags `json:"feedback_structure"`
}

// Band is an inclusive [Min,Max] score range.
type Band struct {
	Min float64 `json:"min_score"`
	Max float64 `json:"max_score"`
}

// Contains reports whether score falls inside the band.
func (b Band) Contains(score float64) bool {
	return score >= b.Min && score <= b.Max
}

// Thresholds maps each category to its score band.
type Thresholds struct {
	Correct          Band `json:"correct"`
	PartiallyCorrect Band `json:"partially_correct"`
	Incorrect        Band `json:"incorrect"`
}

// Weights holds the keyword match weights used by the scorer.
type Weights struct {
	ExactMatch   float64 `json:"exact_match"`
	PartialMatch float64 `json:"partial_match"`
}

// Explanations holds the labeled header and format strings used when
// composing feedback text. Format strings use {name} placeholders.
type Explanations struct {
	ScoreFormat       string `json:"score_format_korean"`
	StrengthsHeader   string `json:"strengths_header_korean"`
	GapsHeader        string `json:"gaps_header_korean"`
	RelatedHeader     string `json:"related_concepts_header_korean"`
	DefinitionFormat  string `json:"definition_format_korean"`
	ModelAnswerHeader string `json:"model_answer_header_korean"`
	KeyPointsHeader   string `json:"key_points_header_korean"`
	RationaleFormat   string `json:"rationale_format_korean"`
}

// TopicTemplate carries optional per-topic study key points appended
// to feedback for questions in that topic area.
type TopicTemplate struct {
	KeyPoints []string `json:"key_points_korean"`
}

// Config is the typed feedback-template configuration. The data file
// is a JSON object with the same keys; any key the file omits keeps
// its default.
type Config struct {
	Correct          CategoryConfig           `json:"correct"`
	PartiallyCorrect CategoryConfig           `json:"partially_correct"`
	Incorrect        CategoryConfig           `json:"incorrect"`
	Thresholds       Thresholds               `json:"scoring_thresholds"`
	Weights          Weights                  `json:"keyword_weights"`
	Explanations     Explanations             `json:"explanation_templates"`
	TopicTemplates   map[string]TopicTemplate `json:"feedback_templates_by_topic"`
}

// DefaultConfig returns the built-in configuration: bands 80/40,
// weights 1.0/0.5, Korean template strings.
func DefaultConfig() *Config {
	return &Config{
		Correct: CategoryConfig{
			Message: "정답입니다! 핵심 개념을 잘 이해하고 있습니다.",
			Structure: StructureFlags{
				IncludeStrengths:       true,
				IncludeRelatedConcepts: true,
				IncludeDefinitions:     true,
				IncludeModelAnswer:     true,
			},
		},
		PartiallyCorrect: CategoryConfig{
			Message:  "부분적으로 맞았습니다. 몇 가지 핵심 내용이 빠져 있습니다.",
			Guidance: "모범 답안과 비교하여 빠진 내용을 확인해보세요.",
			Structure: StructureFlags{
				IncludeStrengths:       true,
				IncludeGaps:            true,
				IncludeRelatedConcepts: true,
				IncludeDefinitions:     true,
				IncludeModelAnswer:     true,
			},
		},
		Incorrect: CategoryConfig{
			Message:  "아쉽지만 다시 학습이 필요합니다.",
			Guidance: "개념 정의부터 차근차근 복습해보세요.",
			Structure: StructureFlags{
				IncludeGaps:            true,
				IncludeRelatedConcepts: true,
				IncludeDefinitions:     true,
				IncludeModelAnswer:     true,
			},
		},
		Thresholds: Thresholds{
			Correct:          Band{Min: 80, Max: 100},
			PartiallyCorrect: Band{Min: 40, Max: 79},
			Incorrect:        Band{Min: 0, Max: 39},
		},
		Weights: Weights{ExactMatch: 1.0, PartialMatch: 0.5},
		Explanations: Explanations{
			ScoreFormat:       "점수: {score}/100",
			StrengthsHeader:   "잘한 점:",
			GapsHeader:        "보완할 점:",
			RelatedHeader:     "관련 개념:",
			DefinitionFormat:  "{concept_name}: {definition}",
			ModelAnswerHeader: "모범 답안:",
			KeyPointsHeader:   "학습 포인트:",
			RationaleFormat:   "키워드 매칭 기반 평가: 모범 답안의 {count}개 키워드 중 매칭된 키워드를 기반으로 점수를 산출했습니다.",
		},
	}
}

// LoadConfig reads a feedback-template JSON file and merges it over
// the defaults. A missing file is not an error: defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read feedback templates: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse feedback templates: %w", err)
	}
	return cfg, nil
}

// CategoryConfigFor returns the configuration block for a category.
func (c *Config) CategoryConfigFor(cat Category) CategoryConfig {
	switch cat {
	case CategoryCorrect:
		return c.Correct
	case CategoryPartiallyCorrect:
		return c.PartiallyCorrect
	default:
		return c.Incorrect
	}
}

// Categorize maps a score onto a category by checking the bands in
// fixed order. A score no band contains (misconfigured thresholds)
// falls back to incorrect.
func (c *Config) Categorize(score float64) Category {
	switch {
	case c.Thresholds.Correct.Contains(score):
		return CategoryCorrect
	case c.Thresholds.PartiallyCorrect.Contains(score):
		return CategoryPartiallyCorrect
	case c.Thresholds.Incorrect.Contains(score):
		return CategoryIncorrect
	default:
		return CategoryIncorrect
	}
}
