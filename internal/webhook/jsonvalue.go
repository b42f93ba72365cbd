package webhook

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONValue is the tagged result of resolving a value that may be a
// file path or an inline JSON literal. OK is false when the input was
// absent.
type JSONValue struct {
	Value any
	OK    bool
}

// ParseError reports a value that is neither a readable JSON file nor a
// valid JSON literal.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is neither a JSON file nor valid JSON: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResolveJSONValue interprets raw as a path to a JSON file when such a
// file exists, and as a JSON literal otherwise. An empty string resolves
// to no value.
func ResolveJSONValue(raw string) (JSONValue, error) {
	if raw == "" {
		return JSONValue{}, nil
	}

	if info, err := os.Stat(raw); err == nil && !info.IsDir() {
		data, err := os.ReadFile(raw)
		if err != nil {
			return JSONValue{}, &ParseError{Value: raw, Err: err}
		}
		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return JSONValue{}, &ParseError{Value: raw, Err: err}
		}
		return JSONValue{Value: value, OK: true}, nil
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return JSONValue{}, &ParseError{Value: raw, Err: err}
	}
	return JSONValue{Value: value, OK: true}, nil
}
