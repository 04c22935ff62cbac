package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/assessment-gateway/internal/models"
)

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          []byte
}

// evaluatorStub serves a fixed status/body and records what it receives.
func evaluatorStub(t *testing.T, status int, body string) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var mu sync.Mutex
	var received []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		received = append(received, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          b,
		})
		mu.Unlock()

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), received...)
	}
}

func TestEvaluatorClientSubmit(t *testing.T) {
	srv, received := evaluatorStub(t, http.StatusOK, `{"score": 85, "feedback": [{"question_number": 1, "correct": true}]}`)
	client := NewEvaluatorClient(srv.URL+"/", 5*time.Second)

	answers := []models.SubmitAnswer{
		{QuestionNumber: 1, Answer: json.RawMessage(`"B"`), Confidence: json.RawMessage(`0.8`)},
		{QuestionNumber: 2, Answer: json.RawMessage(`"photosynthesis"`)},
	}

	result, err := client.Submit(context.Background(), "sub-123", "Bearer token-abc", answers)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 85, "feedback": [{"question_number": 1, "correct": true}]}`, string(result))

	reqs := received()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/quizzes/sub-123/submit", reqs[0].Path)
	assert.Equal(t, "Bearer token-abc", reqs[0].Authorization)
	assert.Contains(t, reqs[0].ContentType, "application/json")
	assert.JSONEq(t, `[
		{"question_number": 1, "answer": "B", "confidence": 0.8},
		{"question_number": 2, "answer": "photosynthesis"}
	]`, string(reqs[0].Body))
}

func TestEvaluatorClientEmptyAnswers(t *testing.T) {
	srv, received := evaluatorStub(t, http.StatusOK, `{"score": 0}`)
	client := NewEvaluatorClient(srv.URL, 5*time.Second)

	_, err := client.Submit(context.Background(), "42", "Bearer t", nil)
	require.NoError(t, err)

	reqs := received()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `[]`, string(reqs[0].Body))
}

func TestEvaluatorClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"string detail", http.StatusNotFound, `{"detail": "Quiz not found"}`, "Quiz not found"},
		{"structured detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body",0],"msg":"field required"}]}`, `[{"loc":["body",0],"msg":"field required"}]`},
		{"json without detail", http.StatusBadRequest, `{"message": "nope"}`, `{"message": "nope"}`},
		{"plain text", http.StatusBadGateway, "upstream unavailable", "upstream unavailable"},
		{"empty body", http.StatusInternalServerError, "", "Evaluation service returned status 500"},
		{"invalid success body", http.StatusOK, "<html>ok</html>", "Evaluation service returned invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, received := evaluatorStub(t, tt.status, tt.body)
			client := NewEvaluatorClient(srv.URL, 5*time.Second)

			result, err := client.Submit(context.Background(), "sub-1", "Bearer t", nil)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, err.Error())
			assert.Len(t, received(), 1)

			var downstream *DownstreamError
			require.True(t, errors.As(err, &downstream))
			assert.Equal(t, tt.status, downstream.StatusCode)
		})
	}
}

func TestEvaluatorClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewEvaluatorClient(url, 2*time.Second)

	_, err := client.Submit(context.Background(), "sub-1", "Bearer t", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation service request failed")
}

func TestEvaluatorClientCancelledContext(t *testing.T) {
	srv, received := evaluatorStub(t, http.StatusOK, `{}`)
	client := NewEvaluatorClient(srv.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Submit(ctx, "sub-1", "Bearer t", nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, received())
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{"string", `{"detail": "bad"}`, "bad", true},
		{"empty string", `{"detail": ""}`, "", false},
		{"null", `{"detail": null}`, "", false},
		{"object", `{"detail": {"code": 1}}`, `{"code": 1}`, true},
		{"missing", `{"error": "x"}`, "", false},
		{"not json", `oops`, "", false},
		{"array body", `[1]`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := errorDetail([]byte(tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
