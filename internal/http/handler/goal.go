package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"healthtrack/internal/service"
)

// CreateGoal stores a new goal.
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.GoalInput true "goal"
// @Success 201 {object} model.Goal
// @Router /goals [post]
func CreateGoal(svc service.GoalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GoalInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		g, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return serviceError(c, err, "goal")
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	}
}

// ListGoals returns goals, optionally filtered by status.
// @Summary List goals
// @Tags goals
// @Produce json
// @Param status query string false "active, achieved or abandoned"
// @Success 200 {array} model.Goal
// @Router /goals [get]
func ListGoals(svc service.GoalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		goals, err := svc.List(c.UserContext(), c.Query("status"))
		if err != nil {
			return serviceError(c, err, "goal")
		}
		return c.JSON(goals)
	}
}

// GoalProgress evaluates every active goal against the latest measurement.
// @Summary Goal progress
// @Tags goals
// @Produce json
// @Success 200 {array} model.GoalProgress
// @Router /goals/progress [get]
func GoalProgress(svc service.GoalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		progress, err := svc.Progress(c.UserContext())
		if err != nil {
			return serviceError(c, err, "goal")
		}
		return c.JSON(progress)
	}
}

// UpdateGoalStatus sets the status of a goal.
// @Summary Update goal status
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "goal id"
// @Success 200 {object} model.Goal
// @Router /goals/{id}/status [patch]
func UpdateGoalStatus(svc service.GoalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		g, err := svc.UpdateStatus(c.UserContext(), id, body.Status)
		if err != nil {
			return serviceError(c, err, "goal")
		}
		return c.JSON(g)
	}
}

// DeleteGoal removes a goal.
// @Summary Delete a goal
// @Tags goals
// @Param id path string true "goal id"
// @Success 204
// @Router /goals/{id} [delete]
func DeleteGoal(svc service.GoalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err, "goal")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
