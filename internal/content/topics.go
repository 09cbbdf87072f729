package content

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// The course topic list (classtopics.md) is exported from the LMS and
// carries web artifacts. Sub-items that never appear as standalone
// topic_area values in the data map to their parent topic.
var subtopicParent = map[string]string{
	"Amazon Web Services (AWS)":   "Overview of Public Cloud Providers",
	"Google Cloud Platform (GCP)": "Overview of Public Cloud Providers",
}

var danglingParen = regexp.MustCompile(`\s*\([^)]*$`)

// ParseTopicsFile reads the required course topics from a topic list
// file. Lines are cleaned of LMS export artifacts, mapped through
// subtopicParent, and deduplicated preserving first-seen order.
// A missing file yields no topics and no error: topic-coverage
// validation is optional.
func ParseTopicsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}

	seen := make(map[string]bool)
	var topics []string
	for _, line := range strings.Split(string(data), "\n") {
		cleaned := strings.TrimSpace(line)
		cleaned = strings.ReplaceAll(cleaned, "Links to an external site.", "")
		cleaned = strings.TrimSpace(danglingParen.ReplaceAllString(cleaned, ""))
		if cleaned == "" {
			continue
		}
		if parent, ok := subtopicParent[cleaned]; ok {
			cleaned = parent
		}
		if !seen[cleaned] {
			seen[cleaned] = true
			topics = append(topics, cleaned)
		}
	}
	return topics, nil
}

// TopicDetail is the per-topic entry of a TopicReport.
type TopicDetail struct {
	Topic         string
	ConceptCount  int
	QuestionCount int
}

// Covered reports whether the topic has both concepts and questions.
func (d TopicDetail) Covered() bool {
	return d.ConceptCount > 0 && d.QuestionCount > 0
}

// TopicReport summarizes how well the loaded data covers the required
// course topics.
type TopicReport struct {
	RequiredTopics   int
	WithConcepts     int
	WithQuestions    int
	FullyCovered     int
	Details          []TopicDetail
	MissingConcepts  []string
	MissingQuestions []string
}

// BuildTopicReport checks each required topic for concepts and
// questions in the loaded data.
func BuildTopicReport(required []string, concepts []Concept, questions []Question) TopicReport {
	conceptCounts := make(map[string]int)
	for _, c := range concepts {
		conceptCounts[c.TopicArea]++
	}
	questionCounts := make(map[string]int)
	for _, q := range questions {
		questionCounts[q.TopicArea]++
	}

	report := TopicReport{RequiredTopics: len(required)}
	for _, topic := range required {
		d := TopicDetail{
			Topic:         topic,
			ConceptCount:  conceptCounts[topic],
			QuestionCount: questionCounts[topic],
		}
		report.Details = append(report.Details, d)

		if d.ConceptCount > 0 {
			report.WithConcepts++
		} else {
			report.MissingConcepts = append(report.MissingConcepts, topic)
		}
		if d.QuestionCount > 0 {
			report.WithQuestions++
		} else {
			report.MissingQuestions = append(report.MissingQuestions, topic)
		}
		if d.Covered() {
			report.FullyCovered++
		}
	}
	return report
}
