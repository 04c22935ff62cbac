package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"integer", `3`, 3, false},
		{"numeric string", `"12"`, 12, false},
		{"padded string", `" 7 "`, 7, false},
		{"fractional truncates", `2.9`, 2, false},
		{"fractional string truncates", `"4.5"`, 4, false},
		{"negative", `-1`, -1, false},
		{"non numeric string", `"q1"`, 0, true},
		{"empty string", `""`, 0, true},
		{"null", `null`, 0, true},
		{"missing", ``, 0, true},
		{"boolean", `true`, 0, true},
		{"object", `{"id":1}`, 0, true},
		{"huge", `1e20`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuestionNumber(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAnswersArray(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`[]`, true},
		{`  [{"questionId":1}]`, true},
		{``, false},
		{`null`, false},
		{`{"questionId":1}`, false},
		{`"answers"`, false},
	}

	for _, tt := range tests {
		req := EvaluationRequest{Answers: json.RawMessage(tt.raw)}
		assert.Equal(t, tt.want, req.HasAnswersArray(), "answers=%q", tt.raw)
	}
}

func TestToSubmitAnswers_PassesValuesThrough(t *testing.T) {
	req := EvaluationRequest{
		SubmissionID: "sub-1",
		Answers: json.RawMessage(`[
			{"questionId": "1", "answer": "Paris", "confidence": 0.8},
			{"questionId": 2, "answer": {"choice": ["a", "b"]}},
			{"questionId": 3, "answer": true, "confidence": null}
		]`),
	}

	out, err := req.ToSubmitAnswers()
	require.NoError(t, err)
	require.Len(t, out, 3)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"question_number": 1, "answer": "Paris", "confidence": 0.8},
		{"question_number": 2, "answer": {"choice": ["a", "b"]}},
		{"question_number": 3, "answer": true, "confidence": null}
	]`, string(body))
}

func TestToSubmitAnswers_Empty(t *testing.T) {
	req := EvaluationRequest{SubmissionID: "sub-1", Answers: json.RawMessage(`[]`)}

	out, err := req.ToSubmitAnswers()
	require.NoError(t, err)
	assert.Empty(t, out)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
}

func TestToSubmitAnswers_BadQuestionID(t *testing.T) {
	req := EvaluationRequest{
		SubmissionID: "sub-1",
		Answers:      json.RawMessage(`[{"questionId": 1, "answer": "a"}, {"questionId": "abc", "answer": "b"}]`),
	}

	_, err := req.ToSubmitAnswers()
	require.Error(t, err)

	var idErr *QuestionIDError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, 1, idErr.Index)
	assert.Equal(t, "answers[1].questionId must be an integer", err.Error())
}

func TestToSubmitAnswers_MissingAnswerBecomesNull(t *testing.T) {
	req := EvaluationRequest{Answers: json.RawMessage(`[{"questionId": 5}]`)}

	out, err := req.ToSubmitAnswers()
	require.NoError(t, err)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"question_number": 5, "answer": null}]`, string(body))
}

func TestEvaluationRequest_SubmissionIDForms(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"string", `{"submissionId": "abc-123"}`, "abc-123", false},
		{"number", `{"submissionId": 42}`, "42", false},
		{"trimmed", `{"submissionId": "  s1 "}`, "s1", false},
		{"null", `{"submissionId": null}`, "", false},
		{"missing", `{}`, "", false},
		{"object", `{"submissionId": {"id": 1}}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EvaluationRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.SubmissionID.String())
		})
	}
}
