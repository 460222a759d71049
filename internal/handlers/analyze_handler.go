package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/services"
)

// ResumeFormField is the multipart field carrying the résumé PDF.
const ResumeFormField = "resume"

const (
	resumeInternalErrorMessage = "An internal error occurred while processing your résumé. Please try again later."
	jobInternalErrorMessage    = "An internal error occurred while analyzing the job posting. Please try again later."
	compatInternalErrorMessage = "An internal error occurred while running the compatibility analysis. Please try again later."
	invalidPayloadMessage      = "Invalid request payload."
)

type AnalyzeHandler struct {
	analyzer      services.AnalyzerService
	uploadService services.UploadService
	log           logrus.FieldLogger
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	uploadService services.UploadService,
	log logrus.FieldLogger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:      analyzer,
		uploadService: uploadService,
		log:           log,
	}
}

// HandleResume handles POST /analyze/resume
func (h *AnalyzeHandler) HandleResume(c *fiber.Ctx) error {
	// A missing field is reported by the analyzer as an empty upload.
	file, err := c.FormFile(ResumeFormField)
	if err != nil {
		file = nil
	}

	upload, err := h.uploadService.ReadUpload(file)
	if err != nil {
		return respondError(c, h.log, err, resumeInternalErrorMessage, "")
	}

	resp, err := h.analyzer.AnalyzeResume(c.UserContext(), upload)
	if err != nil {
		return respondError(c, h.log, err, resumeInternalErrorMessage, "")
	}

	return c.JSON(resp)
}

// HandleJob handles POST /analyze/job
func (h *AnalyzeHandler) HandleJob(c *fiber.Ctx) error {
	var req models.JobPostingRequest

	if err := c.BodyParser(&req); err != nil {
		h.log.WithError(err).Warn("⚠️ Invalid job posting payload")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: invalidPayloadMessage,
			Code:    models.CodeInvalidRequest,
		})
	}

	resp, err := h.analyzer.AnalyzeJob(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.log, err, jobInternalErrorMessage, models.CodeInternalServerErr)
	}

	return c.JSON(resp)
}

// HandleCompatibility handles POST /analyze/compatibility
func (h *AnalyzeHandler) HandleCompatibility(c *fiber.Ctx) error {
	var req models.CompatibilityRequest

	if err := c.BodyParser(&req); err != nil {
		h.log.WithError(err).Warn("⚠️ Invalid compatibility payload")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: invalidPayloadMessage,
			Code:    models.CodeInvalidRequest,
		})
	}

	resp, err := h.analyzer.AnalyzeCompatibility(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.log, err, compatInternalErrorMessage, models.CodeInternalServerErr)
	}

	return c.JSON(resp)
}
