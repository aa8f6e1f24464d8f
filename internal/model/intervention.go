package model

import "time"

// Intervention categories.
const (
	CategoryDietary    = "dietary_interventions"
	CategoryExercise   = "exercise_interventions"
	CategoryLifestyle  = "lifestyle_interventions"
	CategoryMonitoring = "monitoring_interventions"
)

// Intervention priorities, from least to most urgent.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Intervention is one recommendation from the intervention library,
// optionally annotated with a personalization note.
type Intervention struct {
	Title            string      `json:"title"`
	Category         string      `json:"category"`
	Priority         string      `json:"priority"`
	EvidenceLevel    string      `json:"evidence_level"`
	Description      string      `json:"description"`
	ExpectedOutcome  string      `json:"expected_outcome"`
	ActionSteps      []string    `json:"action_steps"`
	TargetConditions []Condition `json:"target_conditions"`
	Duration         string      `json:"duration"`
	PersonalizedNote string      `json:"personalized_note,omitempty"`
}

// WeeklyGoal is one week of an intervention's tracking plan.
type WeeklyGoal struct {
	Week      int    `json:"week"`
	Goal      string `json:"goal"`
	Completed bool   `json:"completed"`
}

// TrackedIntervention is an intervention the user committed to, with
// progress state persisted across measurements.
type TrackedIntervention struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Category        string       `json:"category"`
	Priority        string       `json:"priority"`
	Duration        string       `json:"duration"`
	StartDate       time.Time    `json:"start_date"`
	Status          string       `json:"status"`
	OverallProgress int          `json:"overall_progress"`
	Notes           string       `json:"notes"`
	WeeklyGoals     []WeeklyGoal `json:"weekly_goals"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ProgressTemplate seeds the tracking state for a newly started intervention.
type ProgressTemplate struct {
	InterventionTitle string       `json:"intervention_title"`
	StartDate         time.Time    `json:"start_date"`
	TargetDuration    string       `json:"target_duration"`
	ProgressMetrics   []string     `json:"progress_metrics"`
	WeeklyGoals       []WeeklyGoal `json:"weekly_goals"`
	CompletionStatus  string       `json:"completion_status"`
}

// ProgressUpdate carries a progress mutation for a tracked intervention.
type ProgressUpdate struct {
	OverallProgress *int    `json:"overall_progress"`
	Notes           *string `json:"notes"`
	CompletedWeeks  []int   `json:"completed_weeks"`
}
