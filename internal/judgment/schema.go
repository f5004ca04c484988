package judgment

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema is the contract a provider response must satisfy before
// the pipeline trusts it. Extra fields pass through; a missing or
// mis-typed judgment score does not.
const payloadSchema = `{
  "type": "object",
  "required": ["ai_judgment_score"],
  "properties": {
    "ai_judgment_score": {
      "type": "object",
      "required": ["total"],
      "properties": {
        "total": {"type": "integer", "minimum": 0, "maximum": 35},
        "breakdown": {
          "type": "object",
          "additionalProperties": {"type": "integer"}
        }
      }
    },
    "industry": {"type": "string"},
    "company_tier": {"type": "string", "enum": ["enterprise", "growth", "local", "unknown"]},
    "detected_issues": {
      "type": "array",
      "items": {"type": "string"}
    },
    "fix_list": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string"},
          "priority": {"type": "string"},
          "description": {"type": "string"},
          "impact_metric": {"type": "string"},
          "status": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = gojsonschema.NewStringLoader(payloadSchema)

// validatePayload checks a raw provider response against the payload
// schema.
func validatePayload(raw string) error {
	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("validate judgment payload: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("judgment payload rejected: %v", result.Errors())
	}
	return nil
}
