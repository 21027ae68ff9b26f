package activity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeError reports a payload that could not be parsed as an
// activity. The turn dispatcher maps it to an HTTP 400.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding activity: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decoding activity: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses an activity from its JSON wire form. It fails when the
// payload is not valid JSON or lacks an activity type.
func Decode(data []byte) (Activity, error) {
	var a Activity
	if err := json.Unmarshal(data, &a); err != nil {
		return Activity{}, &DecodeError{Reason: "invalid JSON", Err: err}
	}
	if strings.TrimSpace(a.Type) == "" {
		return Activity{}, &DecodeError{Reason: "missing activity type"}
	}
	return a, nil
}

// Encode renders an activity to its JSON wire form. It is the
// structural inverse of Decode.
func Encode(a Activity) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encoding activity: %w", err)
	}
	return data, nil
}
