package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// matrixSchema constrains CLI input to a non-empty 2D array of numbers.
// Squareness and invertibility are left to the solver.
const matrixSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "array",
    "minItems": 1,
    "items": { "type": "number" }
  }
}`

// validateMatrixDocument checks raw input against the matrix schema before
// any decoding happens.
func validateMatrixDocument(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("input is not valid JSON")
	}

	schemaLoader := gojsonschema.NewStringLoader(matrixSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, verr := range result.Errors() {
			problems = append(problems, verr.String())
		}
		return fmt.Errorf("schema validation errors: %s", strings.Join(problems, "; "))
	}

	return nil
}
