package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/assessment-gateway/internal/models"
	"alfredoptarigan/assessment-gateway/internal/services"
)

type GenerationHandler struct {
	generator services.QuestionGenerator
}

func NewGenerationHandler(generator services.QuestionGenerator) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
	}
}

// HandleGenerate handles POST /generate-questions. Every failure, including
// validation, is reported as 500 to match what existing clients expect.
func (h *GenerationHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Printf("❌ [%v] Invalid generation payload: %v", c.Locals("requestid"), err)
		return respondError(c, fiber.StatusInternalServerError, msgInvalidPayload)
	}

	questions, err := h.generator.Generate(c.UserContext(), req)
	if err != nil {
		log.Printf("❌ [%v] Question generation failed: %v", c.Locals("requestid"), err)
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.GenerationResponse{Questions: questions})
}
