package handler

import (
	"github.com/gofiber/fiber/v2"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// AssessRisk scores every condition from the latest measurement.
// @Summary Risk assessment
// @Tags assessment
// @Produce json
// @Success 200 {object} model.Assessment
// @Router /assessment [get]
func AssessRisk(svc service.AssessmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.Assess(c.UserContext())
		if err != nil {
			return serviceError(c, err, "assessment")
		}
		return c.JSON(a)
	}
}

// AssessCondition returns the per-criterion breakdown for one condition.
// @Summary Condition analysis
// @Tags assessment
// @Produce json
// @Param condition path string true "pre_diabetes, hypertension or metabolic_syndrome"
// @Success 200 {object} model.ConditionAnalysis
// @Router /assessment/conditions/{condition} [get]
func AssessCondition(svc service.AssessmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cond := model.Condition(c.Params("condition"))
		if !knownCondition(cond) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CONDITION", "unknown condition")
		}

		a, err := svc.Condition(c.UserContext(), cond)
		if err != nil {
			return serviceError(c, err, "assessment")
		}
		return c.JSON(a)
	}
}

// AssessTrends analyzes how key metrics moved across the history.
// @Summary Metric trends
// @Tags assessment
// @Produce json
// @Success 200 {array} model.Trend
// @Router /assessment/trends [get]
func AssessTrends(svc service.AssessmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trends, err := svc.Trends(c.UserContext())
		if err != nil {
			return serviceError(c, err, "assessment")
		}
		return c.JSON(trends)
	}
}

func knownCondition(cond model.Condition) bool {
	for _, known := range model.Conditions {
		if cond == known {
			return true
		}
	}
	return false
}
