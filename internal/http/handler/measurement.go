package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

// CreateMeasurement stores a new measurement.
// @Summary Record a health measurement
// @Tags measurements
// @Accept json
// @Produce json
// @Param measurement body model.MeasurementInput true "measurement"
// @Success 201 {object} model.Measurement
// @Router /measurements [post]
func CreateMeasurement(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.MeasurementInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		m, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// ListMeasurements returns a measurement page with limit, offset and an
// optional recorded_at window (from/to, RFC3339 or YYYY-MM-DD).
// @Summary List measurements
// @Tags measurements
// @Produce json
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} service.MeasurementListResult
// @Router /measurements [get]
func ListMeasurements(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		var from, to time.Time
		if v := c.Query("from"); v != "" {
			if from, err = parseQueryTime(v); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_RANGE", "invalid from timestamp")
			}
		}
		if v := c.Query("to"); v != "" {
			if to, err = parseQueryTime(v); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_RANGE", "invalid to timestamp")
			}
		}

		res, err := svc.List(c.UserContext(), limit, offset, from, to)
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.JSON(res)
	}
}

// LatestMeasurement returns the most recent measurement.
// @Summary Latest measurement
// @Tags measurements
// @Produce json
// @Success 200 {object} model.Measurement
// @Router /measurements/latest [get]
func LatestMeasurement(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := svc.Latest(c.UserContext())
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.JSON(m)
	}
}

// MeasurementStatistics summarizes the whole history per metric.
// @Summary Measurement statistics
// @Tags measurements
// @Produce json
// @Success 200 {object} model.HealthStatistics
// @Router /measurements/statistics [get]
func MeasurementStatistics(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Statistics(c.UserContext())
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.JSON(stats)
	}
}

// GetMeasurement returns a single measurement by ID.
// @Summary Get a measurement
// @Tags measurements
// @Produce json
// @Param id path string true "measurement id"
// @Success 200 {object} model.Measurement
// @Router /measurements/{id} [get]
func GetMeasurement(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.JSON(m)
	}
}

// UpdateMeasurement revalidates and replaces an existing measurement.
// @Summary Update a measurement
// @Tags measurements
// @Accept json
// @Produce json
// @Param id path string true "measurement id"
// @Param measurement body model.MeasurementInput true "measurement"
// @Success 200 {object} model.Measurement
// @Router /measurements/{id} [put]
func UpdateMeasurement(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.MeasurementInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		m, err := svc.Update(c.UserContext(), id, &in)
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.JSON(m)
	}
}

// DeleteMeasurement removes a measurement by ID.
// @Summary Delete a measurement
// @Tags measurements
// @Param id path string true "measurement id"
// @Success 204
// @Router /measurements/{id} [delete]
func DeleteMeasurement(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ImportMeasurements bulk-imports measurements from an uploaded CSV or JSON
// file (multipart/form-data, field name: file). The format query parameter
// defaults to csv.
// @Summary Import measurements
// @Tags measurements
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "csv or json file"
// @Param format query string false "csv or json"
// @Success 201 {object} map[string]int
// @Router /measurements/import [post]
func ImportMeasurements(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		n, err := svc.Import(c.UserContext(), f, c.Query("format", service.FormatCSV))
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"imported": n})
	}
}

// ExportMeasurements renders the history as CSV or JSON, uploads it to object
// storage and returns a presigned download URL.
// @Summary Export measurements
// @Tags measurements
// @Produce json
// @Param format query string false "csv or json"
// @Success 201 {object} service.ExportResult
// @Router /measurements/export [post]
func ExportMeasurements(svc service.MeasurementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext(), c.Query("format", service.FormatCSV))
		if err != nil {
			return serviceError(c, err, "measurement")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func parseQueryTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
