package handler

import (
	"github.com/gofiber/fiber/v2"

	"healthtrack/internal/service"
)

// ListAlerts evaluates the history and returns triggered alerts by severity.
// @Summary Health alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} model.Alert
// @Router /alerts [get]
func ListAlerts(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alerts, err := svc.Check(c.UserContext())
		if err != nil {
			return serviceError(c, err, "alert")
		}
		return c.JSON(alerts)
	}
}

// AlertSummary aggregates the current alert state.
// @Summary Alert summary
// @Tags alerts
// @Produce json
// @Success 200 {object} model.AlertSummary
// @Router /alerts/summary [get]
func AlertSummary(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Summary(c.UserContext())
		if err != nil {
			return serviceError(c, err, "alert")
		}
		return c.JSON(s)
	}
}

// AlertRecommendations consolidates alerts into one recommendation per metric.
// @Summary Alert recommendations
// @Tags alerts
// @Produce json
// @Success 200 {array} model.AlertRecommendation
// @Router /alerts/recommendations [get]
func AlertRecommendations(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := svc.Recommendations(c.UserContext())
		if err != nil {
			return serviceError(c, err, "alert")
		}
		return c.JSON(recs)
	}
}
