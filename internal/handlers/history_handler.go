package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/repositories"
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
	log          logrus.FieldLogger
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository, log logrus.FieldLogger) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
		log:          log,
	}
}

// HandleList handles GET /analyses
func (h *HistoryHandler) HandleList(c *fiber.Ctx) error {
	limit := repositories.ClampHistoryLimit(c.QueryInt("limit", repositories.DefaultHistoryLimit))

	records, err := h.analysisRepo.FindRecent(c.UserContext(), limit)
	if err != nil {
		h.log.WithError(err).Error("❌ Failed to load analysis history")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Message: "Failed to load analysis history.",
			Code:    models.CodeInternalServerErr,
		})
	}

	if records == nil {
		records = []models.AnalysisRecord{}
	}

	return c.JSON(models.HistoryResponse{
		Count:   len(records),
		Records: records,
	})
}
