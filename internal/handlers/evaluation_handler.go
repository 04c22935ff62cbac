package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/assessment-gateway/internal/models"
	"alfredoptarigan/assessment-gateway/internal/services"
)

const (
	msgAuthorizationRequired = "Authorization header is required"
	msgEvaluationInvalid     = "submissionId and a valid answers array are required"
	msgInvalidPayload        = "Invalid request payload"
)

type EvaluationHandler struct {
	evaluator services.EvaluatorClient
}

func NewEvaluationHandler(evaluator services.EvaluatorClient) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
	}
}

// HandleEvaluate handles POST /evaluate-submission
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	authorization := c.Get(fiber.HeaderAuthorization)
	if strings.TrimSpace(authorization) == "" {
		return respondError(c, fiber.StatusUnauthorized, msgAuthorizationRequired)
	}

	var req models.EvaluationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgInvalidPayload)
	}

	if req.SubmissionID == "" || !req.HasAnswersArray() {
		return respondError(c, fiber.StatusBadRequest, msgEvaluationInvalid)
	}

	answers, err := req.ToSubmitAnswers()
	if err != nil {
		var idErr *models.QuestionIDError
		if errors.As(err, &idErr) {
			return respondError(c, fiber.StatusBadRequest, idErr.Error())
		}
		return respondError(c, fiber.StatusBadRequest, msgEvaluationInvalid)
	}

	// Forward to the evaluator; every failure from here on is a 500
	result, err := h.evaluator.Submit(c.UserContext(), req.SubmissionID.String(), authorization, answers)
	if err != nil {
		log.Printf("❌ [%v] Evaluation of submission %s failed: %v", c.Locals("requestid"), req.SubmissionID, err)
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(result)
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}
