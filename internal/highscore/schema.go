package highscore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://high-scores.json"

// recordSchema describes the persisted record: an object keyed by category ID.
var recordSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{"type": "integer", "minimum": 0},
			"date":  map[string]any{"type": "string"},
		},
		"required": []any{"score", "date"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateRecord checks a decoded JSON value against recordSchema.
func validateRecord(doc any) error {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go literals.
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile high score schema: %w", compileErr)
	}
	return compiled.Validate(doc)
}
