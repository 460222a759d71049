// Package server builds the Fiber application and its routes.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/job-analyzer/internal/handlers"
	"alfredoptarigan/job-analyzer/internal/models"
)

const (
	AppName    = "Job Analyzer API"
	AppVersion = "1.0.0"
)

type Options struct {
	BodyLimit     int
	AccessLogging bool
}

// Handlers groups the route handlers. History is nil when the audit log is
// disabled, in which case its route is not registered.
type Handlers struct {
	Analyze *handlers.AnalyzeHandler
	History *handlers.HistoryHandler
}

func New(opts Options, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLogging {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze/resume", h.Analyze.HandleResume)
	api.Post("/analyze/job", h.Analyze.HandleJob)
	api.Post("/analyze/compatibility", h.Analyze.HandleCompatibility)

	endpoints := []string{
		"POST /api/v1/analyze/resume",
		"POST /api/v1/analyze/job",
		"POST /api/v1/analyze/compatibility",
	}

	if h.History != nil {
		api.Get("/analyses", h.History.HandleList)
		endpoints = append(endpoints, "GET /api/v1/analyses")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   AppName,
			"version":   AppVersion,
			"endpoints": endpoints,
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An internal error occurred. Please try again later."

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Message: message,
	})
}
