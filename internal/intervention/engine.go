package intervention

import (
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/model"
)

// Engine personalizes the intervention catalog against the latest
// measurement and the current risk scores.
type Engine struct{}

// NewEngine constructs an intervention Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Categories lists the catalog categories in a stable order.
var Categories = []string{
	model.CategoryDietary,
	model.CategoryExercise,
	model.CategoryLifestyle,
	model.CategoryMonitoring,
}

// Recommend builds the personalized recommendation set. Interventions
// targeting a high-risk condition are promoted to Critical; ones targeting a
// medium-risk condition keep their priority with a note; the rest are kept
// only when already High or Critical, as general maintenance.
func (e *Engine) Recommend(latest *model.Measurement, scores []model.RiskScore) map[string][]model.Intervention {
	var highRisk, mediumRisk []model.Condition
	for _, s := range scores {
		switch {
		case s.Score > 0.7:
			highRisk = append(highRisk, s.Condition)
		case s.Score > 0.4:
			mediumRisk = append(mediumRisk, s.Condition)
		}
	}

	out := make(map[string][]model.Intervention, len(Categories))
	for _, category := range Categories {
		selected := make([]model.Intervention, 0, len(library[category]))
		for _, iv := range library[category] {
			switch {
			case targetsAny(iv, highRisk):
				iv.Priority = model.PriorityCritical
				iv.PersonalizedNote = fmt.Sprintf("High priority due to elevated risk in %s", joinConditions(highRisk))
			case targetsAny(iv, mediumRisk):
				iv.PersonalizedNote = fmt.Sprintf("Recommended due to moderate risk in %s", joinConditions(mediumRisk))
			case iv.Priority == model.PriorityHigh || iv.Priority == model.PriorityCritical:
				iv.PersonalizedNote = "General health maintenance"
			default:
				continue
			}
			selected = append(selected, iv)
		}
		out[category] = selected
	}

	e.addSpecific(out, latest)
	return out
}

// addSpecific appends metric-triggered interventions for the individual profile.
func (e *Engine) addSpecific(out map[string][]model.Intervention, latest *model.Measurement) {
	if latest.BMI > 30 {
		out[model.CategoryDietary] = append(out[model.CategoryDietary], model.Intervention{
			Title:           "Calorie Restriction for Weight Loss",
			Category:        model.CategoryDietary,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Implement moderate calorie restriction to achieve healthy weight loss.",
			ExpectedOutcome: "Lose 1-2 pounds per week, improve metabolic health",
			ActionSteps: []string{
				"Reduce daily calorie intake by 500-750 calories",
				"Focus on portion control",
				"Use smaller plates and bowls",
				"Eat slowly and mindfully",
				"Track food intake with app or journal",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionMetabolicSyndrome},
			Duration:         "3-6 months",
			PersonalizedNote: fmt.Sprintf("Recommended due to BMI of %.1f", latest.BMI),
		})
	}

	if latest.SystolicBP > 130 {
		out[model.CategoryLifestyle] = append(out[model.CategoryLifestyle], model.Intervention{
			Title:           "Sodium Reduction Protocol",
			Category:        model.CategoryLifestyle,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Aggressive sodium reduction to lower blood pressure.",
			ExpectedOutcome: "Reduce systolic BP by 2-8 mmHg",
			ActionSteps: []string{
				"Limit sodium to less than 1,500mg daily",
				"Read nutrition labels carefully",
				"Cook meals at home more often",
				"Use herbs and spices instead of salt",
				"Avoid processed and restaurant foods",
			},
			TargetConditions: []model.Condition{model.ConditionHypertension},
			Duration:         "2-4 weeks",
			PersonalizedNote: fmt.Sprintf("Recommended due to systolic BP of %.0f mmHg", latest.SystolicBP),
		})
	}

	if latest.GlucoseFasting > 100 {
		out[model.CategoryDietary] = append(out[model.CategoryDietary], model.Intervention{
			Title:           "Glycemic Index Management",
			Category:        model.CategoryDietary,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Moderate",
			Description:     "Focus on low glycemic index foods to improve glucose control.",
			ExpectedOutcome: "Stabilize blood glucose levels, reduce post-meal spikes",
			ActionSteps: []string{
				"Choose foods with GI less than 55",
				"Pair carbohydrates with protein or healthy fats",
				"Avoid high-GI foods (white bread, sugary drinks)",
				"Eat regular, smaller meals throughout the day",
				"Monitor blood glucose response to different foods",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes},
			Duration:         "4-6 weeks",
			PersonalizedNote: fmt.Sprintf("Recommended due to fasting glucose of %.0f mg/dL", latest.GlucoseFasting),
		})
	}

	if latest.ExerciseMinutesPerWeek < 150 {
		out[model.CategoryExercise] = append(out[model.CategoryExercise], model.Intervention{
			Title:           "Physical Activity Increase Plan",
			Category:        model.CategoryExercise,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Gradual increase in physical activity to meet recommended guidelines.",
			ExpectedOutcome: "Improve cardiovascular health, enhance insulin sensitivity",
			ActionSteps: []string{
				fmt.Sprintf("Increase weekly exercise from %.0f to 150 minutes", latest.ExerciseMinutesPerWeek),
				"Add 10-15 minutes of activity every week",
				"Include activities you enjoy (dancing, hiking, sports)",
				"Use fitness tracker or app to monitor progress",
				"Find exercise buddy for accountability",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionHypertension, model.ConditionMetabolicSyndrome},
			Duration:         "6-8 weeks",
			PersonalizedNote: fmt.Sprintf("Current activity level: %.0f minutes/week", latest.ExerciseMinutesPerWeek),
		})
	}
}

// Template seeds a progress-tracking plan for an intervention. The first four
// action steps become the weekly goals.
func (e *Engine) Template(iv *model.Intervention, now time.Time) model.ProgressTemplate {
	duration := iv.Duration
	if duration == "" {
		duration = "Ongoing"
	}

	metrics, ok := progressMetrics[iv.Category]
	if !ok {
		metrics = []string{"weight_kg", "bmi"}
	}

	var goals []model.WeeklyGoal
	for i, step := range iv.ActionSteps {
		if i == 4 {
			break
		}
		goals = append(goals, model.WeeklyGoal{Week: i + 1, Goal: step})
	}

	return model.ProgressTemplate{
		InterventionTitle: iv.Title,
		StartDate:         now,
		TargetDuration:    duration,
		ProgressMetrics:   metrics,
		WeeklyGoals:       goals,
		CompletionStatus:  "Not Started",
	}
}

func targetsAny(iv model.Intervention, conditions []model.Condition) bool {
	for _, target := range iv.TargetConditions {
		for _, c := range conditions {
			if target == c {
				return true
			}
		}
	}
	return false
}

func joinConditions(conditions []model.Condition) string {
	names := make([]string, len(conditions))
	for i, c := range conditions {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
