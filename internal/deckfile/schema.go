package deckfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// snapshotSchema is the structural contract for persisted decks. Field names
// are stable across versions; optional fields absent from a document get the
// defaults documented in decode.
const snapshotSchema = `{
	"type": "object",
	"required": ["cards"],
	"properties": {
		"mastery_threshold": {
			"type": "number",
			"exclusiveMinimum": 0
		},
		"cards": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["prompt", "answer"],
				"properties": {
					"kind": {"type": "string"},
					"prompt": {"type": "string"},
					"answer": {"type": "integer"},
					"responses": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["correct", "answer", "elapsed"],
							"properties": {
								"correct": {"type": "boolean"},
								"answer": {"type": "string"},
								"elapsed": {"type": "number", "minimum": 0}
							}
						}
					}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the snapshot schema once and caches it.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		var parsed any
		if err := json.Unmarshal([]byte(snapshotSchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://deck-snapshot.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
