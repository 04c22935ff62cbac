package services

import (
	"encoding/json"
	"fmt"
)

// DownstreamError is returned when the evaluator or a completion API answers
// with a non-success status. Error returns the upstream message only, since
// that is what gets relayed to the caller.
type DownstreamError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *DownstreamError) Error() string {
	return e.Message
}

func (e *DownstreamError) Unwrap() error { return e.Err }

// MalformedResponseError means the completion output could not be turned into
// a question list. Raw keeps the payload for diagnostics.
type MalformedResponseError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

const (
	msgParseFailed       = "Failed to parse AI response as JSON"
	msgExpectedArray     = "Invalid response format: expected array"
	msgExpectedObjects   = "Invalid response format: expected array of question objects"
	msgGenerationFailed  = "Failed to generate questions"
	msgEvaluatorBadJSON  = "Evaluation service returned invalid JSON"
	rawPayloadLogMaxSize = 2000
)

// errorDetail extracts the message FastAPI-style services put under "detail".
// A string detail is used as is; any other JSON value is rendered compactly.
func errorDetail(body []byte) (string, bool) {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}
	if len(payload.Detail) == 0 || string(payload.Detail) == "null" {
		return "", false
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		if text == "" {
			return "", false
		}
		return text, true
	}

	return string(payload.Detail), true
}

func truncateForLog(s string, n int) string {
	if len(s) > n {
		return s[:n] + fmt.Sprintf("... (%d bytes)", len(s))
	}
	return s
}
