package services

import (
	"context"
	"sync"
)

// MockCompletion is a canned reply for MockCompletionProvider.
type MockCompletion struct {
	Content string
	Err     error
}

// MockCompletionProvider returns canned replies in FIFO order and records
// every request. Once the queue is drained it answers with Fallback, or with
// a DownstreamError when Fallback is empty.
type MockCompletionProvider struct {
	mu        sync.Mutex
	responses []MockCompletion
	Fallback  string
	Calls     []CompletionRequest
}

// sampleQuestions is what the "mock" provider setting replies with, so a
// gateway running without an API key still serves well-formed questions.
const sampleQuestions = `[
	{"question": "Which gas do plants absorb during photosynthesis?", "options": ["Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"], "correctAnswer": "Carbon dioxide", "explanation": "Carbon dioxide is fixed into sugars in the Calvin cycle.", "points": 10},
	{"question": "Water boils at 100 degrees Celsius at sea level.", "correctAnswer": "True", "explanation": "At 1 atm the boiling point of water is 100 C.", "points": 10}
]`

// NewSampleCompletionProvider returns a mock that always answers with sample questions.
func NewSampleCompletionProvider() *MockCompletionProvider {
	return &MockCompletionProvider{Fallback: sampleQuestions}
}

func NewMockCompletionProvider(responses ...MockCompletion) *MockCompletionProvider {
	return &MockCompletionProvider{responses: responses}
}

// Complete implements CompletionProvider.
func (m *MockCompletionProvider) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		if m.Fallback != "" {
			return m.Fallback, nil
		}
		return "", &DownstreamError{Service: "mock", Message: msgGenerationFailed}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	return resp.Content, resp.Err
}

func (m *MockCompletionProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Complete calls made.
func (m *MockCompletionProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
