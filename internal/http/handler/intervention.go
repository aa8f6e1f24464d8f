package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// InterventionRecommendations returns the personalized intervention set per category.
// @Summary Intervention recommendations
// @Tags interventions
// @Produce json
// @Success 200 {object} map[string][]model.Intervention
// @Router /interventions/recommendations [get]
func InterventionRecommendations(svc service.InterventionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := svc.Recommendations(c.UserContext())
		if err != nil {
			return serviceError(c, err, "intervention")
		}
		return c.JSON(recs)
	}
}

// TrackIntervention starts tracking an intervention.
// @Summary Track an intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Param intervention body model.Intervention true "intervention"
// @Success 201 {object} model.TrackedIntervention
// @Router /interventions [post]
func TrackIntervention(svc service.InterventionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var iv model.Intervention
		if err := c.BodyParser(&iv); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		tracked, err := svc.Track(c.UserContext(), &iv)
		if err != nil {
			return serviceError(c, err, "intervention")
		}
		return c.Status(fiber.StatusCreated).JSON(tracked)
	}
}

// ListInterventions returns tracked interventions, optionally filtered by status.
// @Summary List tracked interventions
// @Tags interventions
// @Produce json
// @Param status query string false "active, completed or abandoned"
// @Success 200 {array} model.TrackedIntervention
// @Router /interventions [get]
func ListInterventions(svc service.InterventionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ivs, err := svc.List(c.UserContext(), c.Query("status"))
		if err != nil {
			return serviceError(c, err, "intervention")
		}
		return c.JSON(ivs)
	}
}

// UpdateInterventionProgress applies a progress mutation to a tracked intervention.
// @Summary Update intervention progress
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "intervention id"
// @Param progress body model.ProgressUpdate true "progress update"
// @Success 200 {object} model.TrackedIntervention
// @Router /interventions/{id}/progress [patch]
func UpdateInterventionProgress(svc service.InterventionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var upd model.ProgressUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		tracked, err := svc.UpdateProgress(c.UserContext(), id, &upd)
		if err != nil {
			return serviceError(c, err, "intervention")
		}
		return c.JSON(tracked)
	}
}

// DeleteIntervention stops tracking an intervention.
// @Summary Delete a tracked intervention
// @Tags interventions
// @Param id path string true "intervention id"
// @Success 204
// @Router /interventions/{id} [delete]
func DeleteIntervention(svc service.InterventionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err, "intervention")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
