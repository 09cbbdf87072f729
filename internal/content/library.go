package content

import "sort"

// Library holds the loaded study data with precomputed indices.
// Concepts and Questions keep their file order, which question
// selection depends on.
type Library struct {
	Concepts  []Concept
	Questions []Question

	conceptByID  map[string]*Concept
	questionByID map[string]*Question
	byTopic      map[string][]Concept
}

// NewLibrary builds a Library from loaded concepts and questions.
func NewLibrary(concepts []Concept, questions []Question) *Library {
	lib := &Library{
		Concepts:     concepts,
		Questions:    questions,
		conceptByID:  make(map[string]*Concept, len(concepts)),
		questionByID: make(map[string]*Question, len(questions)),
		byTopic:      make(map[string][]Concept),
	}
	for i := range lib.Concepts {
		c := &lib.Concepts[i]
		lib.conceptByID[c.ID] = c
		lib.byTopic[c.TopicArea] = append(lib.byTopic[c.TopicArea], *c)
	}
	for i := range lib.Questions {
		lib.questionByID[lib.Questions[i].ID] = &lib.Questions[i]
	}
	return lib
}

// Concept returns the concept with the given ID, or nil if not loaded.
func (l *Library) Concept(id string) *Concept {
	return l.conceptByID[id]
}

// Question returns the question with the given ID, or nil if not loaded.
func (l *Library) Question(id string) *Question {
	return l.questionByID[id]
}

// Topics returns every distinct concept topic area, sorted.
func (l *Library) Topics() []string {
	topics := make([]string, 0, len(l.byTopic))
	for t := range l.byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// ConceptsByTopic returns the concepts in a topic area, in file order.
func (l *Library) ConceptsByTopic(topic string) []Concept {
	return l.byTopic[topic]
}

// QuestionsByTopic returns the questions whose topic area matches,
// in file order.
func (l *Library) QuestionsByTopic(topic string) []Question {
	var out []Question
	for _, q := range l.Questions {
		if q.TopicArea == topic {
			out = append(out, q)
		}
	}
	return out
}
