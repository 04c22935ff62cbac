package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EvaluationRequest is the body accepted by the evaluation proxy. Answers is
// kept raw so that "missing" and "not an array" can be told apart.
type EvaluationRequest struct {
	SubmissionID OpaqueID        `json:"submissionId"`
	Answers      json.RawMessage `json:"answers"`
}

// OpaqueID is an identifier the gateway never interprets. Clients may send it
// as a JSON string or a JSON number.
type OpaqueID string

func (id *OpaqueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OpaqueID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("submissionId must be a string or number")
	}
	*id = OpaqueID(n.String())
	return nil
}

func (id OpaqueID) String() string {
	return string(id)
}

type AnswerInput struct {
	QuestionID json.RawMessage `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
	Confidence json.RawMessage `json:"confidence,omitempty"`
}

// SubmitAnswer is one element of the payload the evaluator expects on
// /quizzes/{id}/submit.
type SubmitAnswer struct {
	QuestionNumber int             `json:"question_number"`
	Answer         json.RawMessage `json:"answer"`
	Confidence     json.RawMessage `json:"confidence,omitempty"`
}

// HasAnswersArray reports whether answers was supplied as a JSON array.
func (r *EvaluationRequest) HasAnswersArray() bool {
	trimmed := bytes.TrimSpace(r.Answers)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// QuestionIDError marks an answer whose questionId is not integer-coercible.
type QuestionIDError struct {
	Index int
}

func (e *QuestionIDError) Error() string {
	return fmt.Sprintf("answers[%d].questionId must be an integer", e.Index)
}

// ToSubmitAnswers decodes the answers array and reshapes every element for
// the evaluator. Answer and confidence bytes are carried over untouched.
func (r *EvaluationRequest) ToSubmitAnswers() ([]SubmitAnswer, error) {
	var inputs []AnswerInput
	if err := json.Unmarshal(r.Answers, &inputs); err != nil {
		return nil, fmt.Errorf("invalid answers array: %w", err)
	}

	out := make([]SubmitAnswer, 0, len(inputs))
	for i, in := range inputs {
		number, err := ParseQuestionNumber(in.QuestionID)
		if err != nil {
			return nil, &QuestionIDError{Index: i}
		}

		answer := in.Answer
		if len(answer) == 0 {
			answer = json.RawMessage("null")
		}

		out = append(out, SubmitAnswer{
			QuestionNumber: number,
			Answer:         answer,
			Confidence:     in.Confidence,
		})
	}

	return out, nil
}

// ParseQuestionNumber coerces a JSON number or numeric string to an int.
// Fractional values truncate toward zero.
func ParseQuestionNumber(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("questionId is missing")
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
	} else {
		text = string(raw)
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("questionId %q is not numeric", text)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("questionId %q is out of range", text)
	}

	return int(f), nil
}
