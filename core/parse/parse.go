package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// OutputField is the JSON field the structured-generation prompt instructs
// the model to populate.
const OutputField = "output"

// Extraction failure taxonomy. Both mark the attempt as a parse failure for
// the retry engine; they are distinct so logs can tell a garbled payload from
// a well-formed one that answered the wrong question.
var (
	// ErrNoJSON means the text contains no closing brace, so no JSON object
	// candidate could be located.
	ErrNoJSON = errors.New("no JSON object found in text")

	// ErrMissingField means the text decoded to a JSON object that lacks the
	// requested field.
	ErrMissingField = errors.New("expected field missing from JSON object")
)

// Field recovers the value of the named field from text that is expected to
// contain a JSON object, possibly wrapped in prose.
//
// The candidate object is isolated between the first opening brace and the
// last closing brace, which defends against leading and trailing commentary
// the model may wrap around valid JSON. The heuristic misfires when a '}'
// belonging to a nested or quoted structure follows the intended terminator;
// that is a documented limitation, not special-cased further.
//
// Decoding is layered: strict JSON first, then an automatic repair pass for
// the almost-JSON models frequently emit (single quotes, unquoted keys,
// markdown fences). Non-string field values are re-encoded as compact JSON
// text so the caller always receives a string.
func Field(text, field string) (string, error) {
	end := strings.LastIndex(text, "}")
	if end == -1 {
		return "", fmt.Errorf("%w: %q", ErrNoJSON, preview(text))
	}
	start := strings.Index(text, "{")
	if start == -1 || start > end {
		return "", fmt.Errorf("%w: %q", ErrNoJSON, preview(text))
	}
	candidate := text[start : end+1]

	object, err := decodeObject(candidate)
	if err != nil {
		return "", err
	}

	value, ok := object[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, field)
	}

	if s, ok := value.(string); ok {
		return s, nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to re-encode field %q: %w", field, err)
	}
	return string(encoded), nil
}

// Output extracts the fixed "output" field used by the structured-generation
// prompt wrapper.
func Output(text string) (string, error) {
	return Field(text, OutputField)
}

// decodeObject unmarshals candidate into a JSON object, attempting a repair
// pass when strict decoding fails.
func decodeObject(candidate string) (map[string]any, error) {
	var object map[string]any
	if err := json.Unmarshal([]byte(candidate), &object); err == nil {
		return object, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(candidate)
	if repairErr != nil {
		return nil, fmt.Errorf("failed to decode JSON candidate %q: %w", preview(candidate), repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &object); err != nil {
		return nil, fmt.Errorf("failed to decode repaired JSON %q: %w", preview(repaired), err)
	}
	return object, nil
}

// preview shortens s for inclusion in error messages.
func preview(s string) string {
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
