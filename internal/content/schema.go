package content

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Record schemas for the pre-generated data files. Validation runs
// per record so that one malformed entry is skipped with a warning
// instead of rejecting the whole file.

const conceptSchema = `{
	"type": "object",
	"required": ["id", "name", "definition", "context", "source_file", "topic_area"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"name": {"type": "string", "minLength": 1},
		"definition": {"type": "string", "minLength": 1},
		"context": {"type": "string", "minLength": 1},
		"source_file": {"type": "string", "minLength": 1},
		"topic_area": {"type": "string", "minLength": 1},
		"related_concepts": {"type": "array", "items": {"type": "string"}},
		"keywords": {"type": "array", "items": {"type": "string"}},
		"extraction_timestamp": {"type": "string"}
	}
}`

const questionSchema = `{
	"type": "object",
	"required": ["id", "concept_ids", "scenario", "question_text", "model_answer", "difficulty", "topic_area"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"concept_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1},
		"scenario": {"type": "string"},
		"question_text": {"type": "string", "minLength": 1},
		"model_answer": {"type": "string", "minLength": 1},
		"difficulty": {"type": "string"},
		"topic_area": {"type": "string", "minLength": 1},
		"generation_timestamp": {"type": "string"}
	}
}`

var (
	schemaOnce       sync.Once
	schemaErr        error
	compiledConcept  *jsonschema.Schema
	compiledQuestion *jsonschema.Schema
)

// compileSchemas compiles both record schemas exactly once.
func compileSchemas() error {
	schemaOnce.Do(func() {
		compiledConcept, schemaErr = compile("concept.json", conceptSchema)
		if schemaErr != nil {
			return
		}
		compiledQuestion, schemaErr = compile("question.json", questionSchema)
	})
	return schemaErr
}

func compile(name, raw string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return sch, nil
}
