package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/model"
)

func healthyMeasurement() model.Measurement {
	return model.Measurement{
		ID:                     "m-1",
		RecordedAt:             time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Age:                    35,
		BMI:                    22,
		WaistCm:                75,
		SystolicBP:             115,
		DiastolicBP:            75,
		RestingHeartRate:       65,
		GlucoseFasting:         85,
		TotalCholesterol:       180,
		HDLCholesterol:         55,
		LDLCholesterol:         100,
		Triglycerides:          120,
		ExerciseMinutesPerWeek: 180,
		SleepHours:             7.5,
		StressLevel:            3,
		WeightKg:               68,
	}
}

func TestScoreLevels(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name      string
		mutate    func(m *model.Measurement)
		condition model.Condition
		level     model.RiskLevel
	}{
		{
			name:      "healthy profile scores low for pre-diabetes",
			mutate:    func(m *model.Measurement) {},
			condition: model.ConditionPreDiabetes,
			level:     model.RiskLow,
		},
		{
			name:      "healthy profile scores low for hypertension",
			mutate:    func(m *model.Measurement) {},
			condition: model.ConditionHypertension,
			level:     model.RiskLow,
		},
		{
			name:      "healthy profile scores low for metabolic syndrome",
			mutate:    func(m *model.Measurement) {},
			condition: model.ConditionMetabolicSyndrome,
			level:     model.RiskLow,
		},
		{
			name:      "diabetic-range glucose scores high for pre-diabetes",
			mutate:    func(m *model.Measurement) { m.GlucoseFasting = 130 },
			condition: model.ConditionPreDiabetes,
			level:     model.RiskHigh,
		},
		{
			name:      "borderline glucose scores medium for pre-diabetes",
			mutate:    func(m *model.Measurement) { m.GlucoseFasting = 107 },
			condition: model.ConditionPreDiabetes,
			level:     model.RiskMedium,
		},
		{
			name:      "stage 2 systolic scores high for hypertension",
			mutate:    func(m *model.Measurement) { m.SystolicBP = 160; m.DiastolicBP = 95 },
			condition: model.ConditionHypertension,
			level:     model.RiskHigh,
		},
		{
			name: "multiple syndrome criteria score high for metabolic syndrome",
			mutate: func(m *model.Measurement) {
				m.WaistCm = 100
				m.Triglycerides = 250
				m.HDLCholesterol = 30
				m.GlucoseFasting = 120
				m.SystolicBP = 150
			},
			condition: model.ConditionMetabolicSyndrome,
			level:     model.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := healthyMeasurement()
			tt.mutate(&m)

			scores := e.Score(&m)
			require.Len(t, scores, len(model.Conditions))

			found := false
			for _, s := range scores {
				assert.GreaterOrEqual(t, s.Score, 0.0)
				assert.LessOrEqual(t, s.Score, 1.0)
				if s.Condition == tt.condition {
					found = true
					assert.Equal(t, tt.level, s.Level, "score %v", s.Score)
				}
			}
			require.True(t, found)
		})
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, model.RiskHigh, Level(0.71))
	assert.Equal(t, model.RiskMedium, Level(0.7))
	assert.Equal(t, model.RiskMedium, Level(0.41))
	assert.Equal(t, model.RiskLow, Level(0.4))
	assert.Equal(t, model.RiskLow, Level(0))
}

func TestAnalyzeRiskFactors(t *testing.T) {
	e := NewEngine()

	m := healthyMeasurement()
	assert.Empty(t, e.AnalyzeRiskFactors(&m))

	m.BMI = 32
	m.SystolicBP = 145
	m.GlucoseFasting = 110
	m.HDLCholesterol = 35
	m.ExerciseMinutesPerWeek = 30
	m.SmokingStatus = 1

	factors := e.AnalyzeRiskFactors(&m)
	names := make([]string, 0, len(factors))
	for _, f := range factors {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Obesity",
		"High Blood Pressure",
		"Elevated Glucose",
		"Low HDL",
		"Insufficient Exercise",
		"Smoking",
	}, names)
}

func TestAnalyzeCondition(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()
	m.GlucoseFasting = 110
	m.Age = 50

	a, err := e.AnalyzeCondition(model.ConditionPreDiabetes, &m)
	require.NoError(t, err)
	require.Len(t, a.Findings, 3)
	assert.Equal(t, model.FindingHigh, a.Findings[0].Status)
	assert.Equal(t, model.FindingOK, a.Findings[1].Status)
	assert.Equal(t, "age", a.Findings[2].Metric)

	_, err = e.AnalyzeCondition(model.Condition("gout"), &m)
	assert.Error(t, err)
}

func TestAnalyzeMetabolicSyndromeCriteria(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()
	m.WaistCm = 95
	m.Triglycerides = 160
	m.HDLCholesterol = 35

	a, err := e.AnalyzeCondition(model.ConditionMetabolicSyndrome, &m)
	require.NoError(t, err)
	assert.Equal(t, 3, a.CriteriaMet)
	assert.Len(t, a.Findings, 3)
}

func TestDerived(t *testing.T) {
	e := NewEngine()
	m := healthyMeasurement()

	d := e.Derived(&m)
	assert.InDelta(t, 40.0, d.PulsePressure, 1e-9)
	assert.InDelta(t, 180.0/55.0, d.TotalHDLRatio, 1e-9)
	assert.InDelta(t, 100.0/55.0, d.LDLHDLRatio, 1e-9)
	// 35*0.1 + 22*0.2 + 115*0.05 + 180*0.01 + 0
	assert.InDelta(t, 15.45, d.CVRiskScore, 1e-9)

	m.HDLCholesterol = 0
	d = e.Derived(&m)
	assert.Zero(t, d.TotalHDLRatio)
	assert.Zero(t, d.LDLHDLRatio)
}

func TestHealthScore(t *testing.T) {
	e := NewEngine()

	m := healthyMeasurement()
	// 100 + exercise 5 + sleep 5 + stress 5
	assert.Equal(t, 100, e.HealthScore(&m))

	m.BMI = 32
	m.SystolicBP = 150
	m.GlucoseFasting = 130
	m.TotalCholesterol = 250
	m.HDLCholesterol = 35
	m.ExerciseMinutesPerWeek = 30
	m.SleepHours = 5
	m.StressLevel = 9
	m.SmokingStatus = 1
	assert.Equal(t, 0, e.HealthScore(&m))

	m = healthyMeasurement()
	m.BMI = 27
	// 100 - 10 + 5 + 5 + 5, clamped to 100
	assert.Equal(t, 100, e.HealthScore(&m))

	m.ExerciseMinutesPerWeek = 100
	m.SleepHours = 6.5
	m.StressLevel = 5
	assert.Equal(t, 90, e.HealthScore(&m))
}

func TestInsights(t *testing.T) {
	e := NewEngine()

	m := healthyMeasurement()
	assert.Empty(t, e.Insights(&m))

	m.BMI = 31
	m.SystolicBP = 145
	m.GlucoseFasting = 105

	insights := e.Insights(&m)
	require.Len(t, insights, 3)
	assert.Equal(t, "warning", insights[0].Type)
	assert.Equal(t, "warning", insights[1].Type)
	assert.Equal(t, "info", insights[2].Type)
}
