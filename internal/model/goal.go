package model

import "time"

// Goal types supported by the progress tracker.
const (
	GoalWeightLoss    = "weight_loss"
	GoalBloodPressure = "blood_pressure"
	GoalGlucose       = "glucose"
	GoalCholesterol   = "cholesterol"
	GoalExercise      = "exercise"
	GoalCustom        = "custom"
)

// Goal statuses.
const (
	GoalActive    = "active"
	GoalAchieved  = "achieved"
	GoalAbandoned = "abandoned"
)

// Goal is a user-defined health target. Blood pressure goals use the
// TargetSystolic/TargetDiastolic pair; every other type uses TargetValue.
type Goal struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Metric          string    `json:"metric"`
	StartValue      float64   `json:"start_value,omitempty"`
	TargetValue     float64   `json:"target_value,omitempty"`
	TargetSystolic  float64   `json:"target_systolic,omitempty"`
	TargetDiastolic float64   `json:"target_diastolic,omitempty"`
	TargetDate      time.Time `json:"target_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// GoalProgress evaluates a goal against the latest measurement.
type GoalProgress struct {
	GoalID        string  `json:"goal_id"`
	Type          string  `json:"type"`
	CurrentValue  float64 `json:"current_value"`
	ProgressPct   float64 `json:"progress_pct"`
	Achieved      bool    `json:"achieved"`
	DaysRemaining int     `json:"days_remaining"`
}
