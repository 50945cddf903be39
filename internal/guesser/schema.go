package guesser

import "encoding/json"

// guessResponseSchema is the canonical JSON schema for solver.GuessResponse.
// It MUST stay field-for-field aligned with that struct; keeping it as a
// single constant next to the decode path is what guarantees the request and
// response sides cannot drift.
const guessResponseSchema = `{
  "type": "object",
  "properties": {
    "reasoning": {
      "type": "string",
      "description": "Chain of thought reasoning leading to the final answer"
    },
    "final_answer": {
      "type": "string",
      "description": "The final 5-letter word guess, in all uppercase"
    }
  },
  "additionalProperties": false,
  "required": ["reasoning", "final_answer"]
}`

// responseFormat enforces structured output (JSON schema).
type responseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *jsonSchema `json:"json_schema,omitempty"`
}

// jsonSchema defines the structured output schema.
type jsonSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// guessResponseFormat builds the strict response_format for the chat request.
func guessResponseFormat() *responseFormat {
	var raw map[string]any
	if err := json.Unmarshal([]byte(guessResponseSchema), &raw); err != nil {
		// The constant is malformed; fall back to plain JSON mode rather
		// than sending a broken schema.
		return &responseFormat{Type: "json_object"}
	}
	return &responseFormat{
		Type: "json_schema",
		JSONSchema: &jsonSchema{
			Name:   "quordle_guess_response",
			Strict: true,
			Schema: raw,
		},
	}
}
