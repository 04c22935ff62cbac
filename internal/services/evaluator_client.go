package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/assessment-gateway/internal/models"
)

// EvaluatorClient forwards graded submissions to the external evaluation
// backend. The caller's Authorization header is passed through untouched.
type EvaluatorClient interface {
	Submit(ctx context.Context, submissionID, authorization string, answers []models.SubmitAnswer) (json.RawMessage, error)
}

type evaluatorClient struct {
	baseURL string
	timeout time.Duration
}

func NewEvaluatorClient(baseURL string, timeout time.Duration) EvaluatorClient {
	return &evaluatorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// SubmitURL returns the evaluator endpoint for a submission.
func (e *evaluatorClient) SubmitURL(submissionID string) string {
	return fmt.Sprintf("%s/quizzes/%s/submit", e.baseURL, url.PathEscape(submissionID))
}

// Submit implements EvaluatorClient.
func (e *evaluatorClient) Submit(ctx context.Context, submissionID, authorization string, answers []models.SubmitAnswer) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if answers == nil {
		answers = []models.SubmitAnswer{}
	}

	endpoint := e.SubmitURL(submissionID)
	log.Printf("📤 Forwarding %d answers for submission %s", len(answers), submissionID)

	agent := fiber.Post(endpoint).
		Set(fiber.HeaderAuthorization, authorization).
		JSON(answers)
	if e.timeout > 0 {
		agent.Timeout(e.timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		log.Printf("❌ Evaluation service request failed: %v", errs[0])
		return nil, fmt.Errorf("evaluation service request failed: %w", errors.Join(errs...))
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		msg := string(body)
		if detail, ok := errorDetail(body); ok {
			msg = detail
		}
		if strings.TrimSpace(msg) == "" {
			msg = fmt.Sprintf("Evaluation service returned status %d", code)
		}
		log.Printf("⚠️  Evaluation service returned %d for submission %s: %s", code, submissionID, truncateForLog(msg, rawPayloadLogMaxSize))
		return nil, &DownstreamError{Service: "evaluator", StatusCode: code, Message: msg}
	}

	if !json.Valid(body) {
		log.Printf("❌ Evaluation service returned invalid JSON: %s", truncateForLog(string(body), rawPayloadLogMaxSize))
		return nil, &DownstreamError{Service: "evaluator", StatusCode: code, Message: msgEvaluatorBadJSON}
	}

	log.Printf("✅ Evaluation received for submission %s", submissionID)
	return json.RawMessage(body), nil
}
