package intervention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/model"
)

func lowRiskScores() []model.RiskScore {
	return []model.RiskScore{
		{Condition: model.ConditionPreDiabetes, Score: 0.1, Level: model.RiskLow},
		{Condition: model.ConditionHypertension, Score: 0.1, Level: model.RiskLow},
		{Condition: model.ConditionMetabolicSyndrome, Score: 0.1, Level: model.RiskLow},
	}
}

func healthyMeasurement() model.Measurement {
	return model.Measurement{
		BMI:                    22,
		SystolicBP:             115,
		GlucoseFasting:         85,
		ExerciseMinutesPerWeek: 180,
	}
}

func TestRecommendLowRiskKeepsHighPriorityOnly(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()

	recs := e.Recommend(&m, lowRiskScores())
	require.Len(t, recs, len(Categories))

	for _, category := range Categories {
		for _, iv := range recs[category] {
			assert.Contains(t, []string{model.PriorityHigh, model.PriorityCritical}, iv.Priority)
			assert.Equal(t, "General health maintenance", iv.PersonalizedNote)
		}
	}

	// Medium-priority catalog entries are filtered out at low risk.
	for _, iv := range recs[model.CategoryDietary] {
		assert.NotEqual(t, "Carbohydrate Counting", iv.Title)
	}
}

func TestRecommendPromotesHighRiskToCritical(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()

	scores := lowRiskScores()
	scores[0].Score = 0.85 // pre_diabetes
	scores[0].Level = model.RiskHigh

	recs := e.Recommend(&m, scores)

	var carb *model.Intervention
	for i := range recs[model.CategoryDietary] {
		if recs[model.CategoryDietary][i].Title == "Carbohydrate Counting" {
			carb = &recs[model.CategoryDietary][i]
		}
	}
	require.NotNil(t, carb)
	assert.Equal(t, model.PriorityCritical, carb.Priority)
	assert.Contains(t, carb.PersonalizedNote, "pre_diabetes")
}

func TestRecommendMediumRiskKeepsPriority(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()

	scores := lowRiskScores()
	scores[0].Score = 0.55 // pre_diabetes
	scores[0].Level = model.RiskMedium

	recs := e.Recommend(&m, scores)

	var carb *model.Intervention
	for i := range recs[model.CategoryDietary] {
		if recs[model.CategoryDietary][i].Title == "Carbohydrate Counting" {
			carb = &recs[model.CategoryDietary][i]
		}
	}
	require.NotNil(t, carb)
	assert.Equal(t, model.PriorityMedium, carb.Priority)
	assert.Contains(t, carb.PersonalizedNote, "moderate risk")
}

func TestRecommendSpecificAdditions(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()
	m.BMI = 32
	m.SystolicBP = 145
	m.GlucoseFasting = 110
	m.ExerciseMinutesPerWeek = 60

	recs := e.Recommend(&m, lowRiskScores())

	titles := func(category string) []string {
		var out []string
		for _, iv := range recs[category] {
			out = append(out, iv.Title)
		}
		return out
	}

	assert.Contains(t, titles(model.CategoryDietary), "Calorie Restriction for Weight Loss")
	assert.Contains(t, titles(model.CategoryDietary), "Glycemic Index Management")
	assert.Contains(t, titles(model.CategoryLifestyle), "Sodium Reduction Protocol")
	assert.Contains(t, titles(model.CategoryExercise), "Physical Activity Increase Plan")

	for _, iv := range recs[model.CategoryExercise] {
		if iv.Title == "Physical Activity Increase Plan" {
			assert.Contains(t, iv.ActionSteps[0], "from 60 to 150 minutes")
			assert.Equal(t, "Current activity level: 60 minutes/week", iv.PersonalizedNote)
		}
	}
}

func TestRecommendHealthyProfileSkipsSpecificAdditions(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()

	recs := e.Recommend(&m, lowRiskScores())
	for _, category := range Categories {
		for _, iv := range recs[category] {
			assert.NotContains(t, []string{
				"Calorie Restriction for Weight Loss",
				"Sodium Reduction Protocol",
				"Glycemic Index Management",
				"Physical Activity Increase Plan",
			}, iv.Title)
		}
	}
}

func TestTemplate(t *testing.T) {
	e := NewEngine()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	iv := library[model.CategoryDietary][0] // Mediterranean Diet Adoption
	tpl := e.Template(&iv, now)

	assert.Equal(t, "Mediterranean Diet Adoption", tpl.InterventionTitle)
	assert.Equal(t, now, tpl.StartDate)
	assert.Equal(t, "3-6 months", tpl.TargetDuration)
	assert.Equal(t, []string{"weight_kg", "waist_cm", "glucose_fasting", "total_cholesterol"}, tpl.ProgressMetrics)
	assert.Equal(t, "Not Started", tpl.CompletionStatus)

	require.Len(t, tpl.WeeklyGoals, 4)
	for i, goal := range tpl.WeeklyGoals {
		assert.Equal(t, i+1, goal.Week)
		assert.Equal(t, iv.ActionSteps[i], goal.Goal)
		assert.False(t, goal.Completed)
	}
}

func TestTemplateDefaults(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	iv := model.Intervention{Title: "Custom Plan", Category: "unknown", ActionSteps: []string{"step one"}}
	tpl := e.Template(&iv, now)

	assert.Equal(t, "Ongoing", tpl.TargetDuration)
	assert.Equal(t, []string{"weight_kg", "bmi"}, tpl.ProgressMetrics)
	require.Len(t, tpl.WeeklyGoals, 1)
}
