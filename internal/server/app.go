package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/assessment-gateway/internal/config"
	"alfredoptarigan/assessment-gateway/internal/handlers"
	"alfredoptarigan/assessment-gateway/internal/middleware"
)

// Handlers groups what the router mounts. Analytics is optional and only set
// when the relational store is enabled.
type Handlers struct {
	Evaluation *handlers.EvaluationHandler
	Generation *handlers.GenerationHandler
	Analytics  *handlers.AnalyticsHandler
	ModelID    string
}

func New(cfg *config.Config, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Assessment Gateway",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: cfg.CORS.AllowMethods,
		AllowHeaders: cfg.CORS.AllowHeaders,
	}))
	app.Use(middleware.Preflight(middleware.PreflightConfig{
		AllowOrigin:  cfg.CORS.AllowOrigins,
		AllowHeaders: cfg.CORS.AllowHeaders,
		AllowMethods: cfg.CORS.AllowMethods,
	}))

	endpoints := []string{
		"POST /api/v1/evaluate-submission",
		"POST /api/v1/generate-questions",
	}

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now(),
			"provider": cfg.Completion.Provider,
			"model":    h.ModelID,
		})
	})

	api.Post("/evaluate-submission", h.Evaluation.HandleEvaluate)
	api.Post("/generate-questions", h.Generation.HandleGenerate)

	// Paths used by clients written against the hosted functions
	functions := app.Group("/functions/v1")
	functions.Post("/evaluate-submission", h.Evaluation.HandleEvaluate)
	functions.Post("/generate-questions", h.Generation.HandleGenerate)

	if h.Analytics != nil {
		api.Get("/assignments/:id/analytics", h.Analytics.HandleGetAnalytics)
		api.Get("/assignments/:id/leaderboard", h.Analytics.HandleGetLeaderboard)
		endpoints = append(endpoints,
			"GET /api/v1/assignments/:id/analytics",
			"GET /api/v1/assignments/:id/leaderboard",
		)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "AI Assessment Gateway",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
