package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"healthtrack/internal/service"
)

// Services bundles the application services the HTTP layer depends on.
type Services struct {
	Measurements  service.MeasurementService
	Assessments   service.AssessmentService
	Alerts        service.AlertService
	Interventions service.InterventionService
	Goals         service.GoalService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Health endpoint checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Static routes must be registered before /measurements/:id
	app.Post("/measurements", CreateMeasurement(svcs.Measurements))
	app.Get("/measurements", ListMeasurements(svcs.Measurements))
	app.Get("/measurements/latest", LatestMeasurement(svcs.Measurements))
	app.Get("/measurements/statistics", MeasurementStatistics(svcs.Measurements))
	app.Post("/measurements/import", ImportMeasurements(svcs.Measurements))
	app.Post("/measurements/export", ExportMeasurements(svcs.Measurements))
	app.Get("/measurements/:id", GetMeasurement(svcs.Measurements))
	app.Put("/measurements/:id", UpdateMeasurement(svcs.Measurements))
	app.Delete("/measurements/:id", DeleteMeasurement(svcs.Measurements))

	app.Get("/assessment", AssessRisk(svcs.Assessments))
	app.Get("/assessment/trends", AssessTrends(svcs.Assessments))
	app.Get("/assessment/conditions/:condition", AssessCondition(svcs.Assessments))

	app.Get("/alerts", ListAlerts(svcs.Alerts))
	app.Get("/alerts/summary", AlertSummary(svcs.Alerts))
	app.Get("/alerts/recommendations", AlertRecommendations(svcs.Alerts))

	app.Get("/interventions/recommendations", InterventionRecommendations(svcs.Interventions))
	app.Post("/interventions", TrackIntervention(svcs.Interventions))
	app.Get("/interventions", ListInterventions(svcs.Interventions))
	app.Patch("/interventions/:id/progress", UpdateInterventionProgress(svcs.Interventions))
	app.Delete("/interventions/:id", DeleteIntervention(svcs.Interventions))

	app.Post("/goals", CreateGoal(svcs.Goals))
	app.Get("/goals", ListGoals(svcs.Goals))
	app.Get("/goals/progress", GoalProgress(svcs.Goals))
	app.Patch("/goals/:id/status", UpdateGoalStatus(svcs.Goals))
	app.Delete("/goals/:id", DeleteGoal(svcs.Goals))
}
