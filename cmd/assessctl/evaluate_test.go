package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasScheme(t *testing.T) {
	assert.True(t, hasScheme("Bearer abc"))
	assert.True(t, hasScheme(" Bearer abc "))
	assert.False(t, hasScheme("abc"))
	assert.False(t, hasScheme(""))
}

func TestEvaluateCommand(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"score":3}`)
	}))
	defer srv.Close()

	answersPath := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`[{"questionId":"1","answer":"A"},{"questionId":2,"answer":"B","confidence":0.5}]`), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"evaluate",
		"--evaluator-url", srv.URL,
		"--submission", "quiz-1",
		"--token", "abc",
		"--answers", answersPath,
	})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "/quizzes/quiz-1/submit", gotPath)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.JSONEq(t, `[{"question_number":1,"answer":"A"},{"question_number":2,"answer":"B","confidence":0.5}]`, string(gotBody))
	assert.JSONEq(t, `{"score":3}`, out.String())
}
