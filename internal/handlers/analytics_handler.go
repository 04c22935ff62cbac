package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/assessment-gateway/internal/repositories"
	"alfredoptarigan/assessment-gateway/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
	}
}

// HandleGetAnalytics handles GET /assignments/:id/analytics
func (h *AnalyticsHandler) HandleGetAnalytics(c *fiber.Ctx) error {
	assignmentID, done, err := h.parseRequest(c)
	if done {
		return err
	}

	result, err := h.analytics.AssignmentAnalytics(assignmentID)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	return c.JSON(result)
}

// HandleGetLeaderboard handles GET /assignments/:id/leaderboard
func (h *AnalyticsHandler) HandleGetLeaderboard(c *fiber.Ctx) error {
	assignmentID, done, err := h.parseRequest(c)
	if done {
		return err
	}

	limit := c.QueryInt("limit", services.DefaultLeaderboardLimit)

	result, err := h.analytics.Leaderboard(assignmentID, limit)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	return c.JSON(result)
}

// parseRequest checks the credential and assignment id. When done is true a
// response has already been written and err is what the handler returns.
func (h *AnalyticsHandler) parseRequest(c *fiber.Ctx) (uuid.UUID, bool, error) {
	if strings.TrimSpace(c.Get(fiber.HeaderAuthorization)) == "" {
		return uuid.Nil, true, respondError(c, fiber.StatusUnauthorized, msgAuthorizationRequired)
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, true, respondError(c, fiber.StatusBadRequest, "Invalid assignment ID format")
	}

	return assignmentID, false, nil
}

func (h *AnalyticsHandler) respondLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return respondError(c, fiber.StatusNotFound, "Assignment not found")
	}

	log.Printf("❌ [%v] Analytics lookup failed: %v", c.Locals("requestid"), err)
	return respondError(c, fiber.StatusInternalServerError, "Failed to load assignment analytics")
}
