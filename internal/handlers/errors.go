package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/services"
)

// respondError writes a 400 for validation failures and a generic 500 for
// everything else. internalCode is attached to 500 responses when non-empty.
func respondError(c *fiber.Ctx, log logrus.FieldLogger, err error, internalMessage, internalCode string) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: verr.Message,
			Code:    verr.Code,
		})
	}

	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("❌ Request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Message: internalMessage,
		Code:    internalCode,
	})
}
