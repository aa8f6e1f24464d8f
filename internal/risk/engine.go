package risk

import (
	"fmt"
	"math"

	"healthtrack/internal/model"
)

// Engine scores chronic-condition risk from measurements. Scores are
// deterministic: each condition combines soft threshold activations of its
// clinical criteria with a noisy-OR, so any single criterion well past its
// cutoff drives the score high while a fully normal profile stays low.
type Engine struct{}

// NewEngine constructs a risk Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// factor is one soft criterion: a logistic activation centered past the
// clinical cutoff. invert flags "lower is worse" metrics (HDL).
type factor struct {
	value  func(m *model.Measurement) float64
	center float64
	scale  float64
	weight float64
	invert bool
}

func (f factor) activation(m *model.Measurement) float64 {
	x := (f.value(m) - f.center) / f.scale
	if f.invert {
		x = -x
	}
	return f.weight / (1 + math.Exp(-x))
}

var conditionFactors = map[model.Condition][]factor{
	model.ConditionPreDiabetes: {
		{value: func(m *model.Measurement) float64 { return m.GlucoseFasting }, center: 105, scale: 5, weight: 1},
		{value: func(m *model.Measurement) float64 { return m.BMI }, center: 31, scale: 2, weight: 1},
		{value: func(m *model.Measurement) float64 { return float64(m.Age) }, center: 47, scale: 4, weight: 0.5},
	},
	model.ConditionHypertension: {
		{value: func(m *model.Measurement) float64 { return m.SystolicBP }, center: 135, scale: 6, weight: 1},
		{value: func(m *model.Measurement) float64 { return m.DiastolicBP }, center: 85, scale: 4, weight: 0.7},
		{value: func(m *model.Measurement) float64 { return m.BMI }, center: 30, scale: 2.5, weight: 0.5},
	},
	model.ConditionMetabolicSyndrome: {
		{value: func(m *model.Measurement) float64 { return m.WaistCm }, center: 92, scale: 5, weight: 0.6},
		{value: func(m *model.Measurement) float64 { return m.Triglycerides }, center: 180, scale: 25, weight: 0.6},
		{value: func(m *model.Measurement) float64 { return m.HDLCholesterol }, center: 38, scale: 4, weight: 0.6, invert: true},
		{value: func(m *model.Measurement) float64 { return m.GlucoseFasting }, center: 105, scale: 8, weight: 0.6},
		{value: func(m *model.Measurement) float64 { return m.SystolicBP }, center: 135, scale: 8, weight: 0.6},
	},
}

// Score computes the risk score and level for every condition.
func (e *Engine) Score(m *model.Measurement) []model.RiskScore {
	scores := make([]model.RiskScore, 0, len(model.Conditions))
	for _, cond := range model.Conditions {
		p := e.scoreCondition(cond, m)
		scores = append(scores, model.RiskScore{
			Condition: cond,
			Score:     p,
			Level:     Level(p),
		})
	}
	return scores
}

func (e *Engine) scoreCondition(cond model.Condition, m *model.Measurement) float64 {
	survive := 1.0
	for _, f := range conditionFactors[cond] {
		survive *= 1 - f.activation(m)
	}
	return math.Round((1-survive)*1000) / 1000
}

// Level buckets a score: High > 0.7, Medium > 0.4, otherwise Low.
func Level(score float64) model.RiskLevel {
	switch {
	case score > 0.7:
		return model.RiskHigh
	case score > 0.4:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// AnalyzeRiskFactors names the individual contributors to overall risk.
func (e *Engine) AnalyzeRiskFactors(m *model.Measurement) []model.RiskFactor {
	var factors []model.RiskFactor
	add := func(name string, weight float64) {
		factors = append(factors, model.RiskFactor{Name: name, Weight: weight})
	}

	if m.BMI > 30 {
		add("Obesity", 0.8)
	} else if m.BMI > 25 {
		add("Overweight", 0.5)
	}

	if m.SystolicBP > 140 || m.DiastolicBP > 90 {
		add("High Blood Pressure", 0.9)
	} else if m.SystolicBP > 130 || m.DiastolicBP > 80 {
		add("Elevated Blood Pressure", 0.6)
	}

	if m.GlucoseFasting > 126 {
		add("High Glucose", 0.9)
	} else if m.GlucoseFasting > 100 {
		add("Elevated Glucose", 0.6)
	}

	if m.TotalCholesterol > 240 {
		add("High Cholesterol", 0.7)
	}
	if m.HDLCholesterol < 40 {
		add("Low HDL", 0.6)
	}

	if m.ExerciseMinutesPerWeek < 75 {
		add("Insufficient Exercise", 0.5)
	}
	if m.SmokingStatus == 1 {
		add("Smoking", 0.8)
	}

	return factors
}

// AnalyzeCondition produces the per-criterion breakdown for one condition.
func (e *Engine) AnalyzeCondition(cond model.Condition, m *model.Measurement) (*model.ConditionAnalysis, error) {
	switch cond {
	case model.ConditionPreDiabetes:
		return e.analyzePreDiabetes(m), nil
	case model.ConditionHypertension:
		return e.analyzeHypertension(m), nil
	case model.ConditionMetabolicSyndrome:
		return e.analyzeMetabolicSyndrome(m), nil
	default:
		return nil, fmt.Errorf("unknown condition: %s", cond)
	}
}

func (e *Engine) analyzePreDiabetes(m *model.Measurement) *model.ConditionAnalysis {
	a := &model.ConditionAnalysis{Condition: model.ConditionPreDiabetes}

	glucose := model.Finding{Metric: "glucose_fasting", Value: m.GlucoseFasting, Status: model.FindingOK, Reference: "<100 mg/dL"}
	if m.GlucoseFasting >= 100 {
		glucose.Status = model.FindingHigh
		glucose.Reference = "pre-diabetic range 100-125 mg/dL"
	}
	a.Findings = append(a.Findings, glucose)

	bmi := model.Finding{Metric: "bmi", Value: m.BMI, Status: model.FindingOK, Reference: "<25"}
	if m.BMI >= 30 {
		bmi.Status = model.FindingHigh
		bmi.Reference = "obesity >=30"
	} else if m.BMI >= 25 {
		bmi.Status = model.FindingElevated
		bmi.Reference = "overweight 25-29.9"
	}
	a.Findings = append(a.Findings, bmi)

	if m.Age >= 45 {
		a.Findings = append(a.Findings, model.Finding{
			Metric: "age", Value: float64(m.Age), Status: model.FindingElevated, Reference: "risk factor >=45 years",
		})
	}
	return a
}

func (e *Engine) analyzeHypertension(m *model.Measurement) *model.ConditionAnalysis {
	a := &model.ConditionAnalysis{Condition: model.ConditionHypertension}

	bp := model.Finding{Metric: "blood_pressure", Value: m.SystolicBP, Status: model.FindingOK, Reference: "<130/80 mmHg"}
	if m.SystolicBP >= 140 || m.DiastolicBP >= 90 {
		bp.Status = model.FindingHigh
		bp.Reference = "hypertensive >=140/90 mmHg"
	} else if m.SystolicBP >= 130 || m.DiastolicBP >= 80 {
		bp.Status = model.FindingElevated
		bp.Reference = "elevated >=130/80 mmHg"
	}
	a.Findings = append(a.Findings, bp)
	return a
}

func (e *Engine) analyzeMetabolicSyndrome(m *model.Measurement) *model.ConditionAnalysis {
	a := &model.ConditionAnalysis{Condition: model.ConditionMetabolicSyndrome}

	// 3 of 5 criteria defines metabolic syndrome; the remaining two
	// (blood pressure, glucose) are covered by their own analyses.
	if m.WaistCm > 88 {
		a.Findings = append(a.Findings, model.Finding{
			Metric: "waist_cm", Value: m.WaistCm, Status: model.FindingHigh, Reference: ">88 cm",
		})
		a.CriteriaMet++
	}
	if m.Triglycerides >= 150 {
		a.Findings = append(a.Findings, model.Finding{
			Metric: "triglycerides", Value: m.Triglycerides, Status: model.FindingHigh, Reference: ">=150 mg/dL",
		})
		a.CriteriaMet++
	}
	if m.HDLCholesterol < 40 {
		a.Findings = append(a.Findings, model.Finding{
			Metric: "hdl_cholesterol", Value: m.HDLCholesterol, Status: model.FindingHigh, Reference: "<40 mg/dL",
		})
		a.CriteriaMet++
	}
	return a
}

// Derived computes metrics that are a pure function of one measurement.
func (e *Engine) Derived(m *model.Measurement) model.DerivedMetrics {
	d := model.DerivedMetrics{
		PulsePressure: m.SystolicBP - m.DiastolicBP,
		CVRiskScore: float64(m.Age)*0.1 +
			m.BMI*0.2 +
			m.SystolicBP*0.05 +
			m.TotalCholesterol*0.01 +
			float64(m.SmokingStatus)*10,
	}
	if m.HDLCholesterol > 0 {
		d.TotalHDLRatio = m.TotalCholesterol / m.HDLCholesterol
		d.LDLHDLRatio = m.LDLCholesterol / m.HDLCholesterol
	}
	return d
}

// HealthScore grades a measurement 0-100. Starts at 100 and applies fixed
// penalties and bonuses per metric band.
func (e *Engine) HealthScore(m *model.Measurement) int {
	score := 100

	switch {
	case m.BMI > 30:
		score -= 20
	case m.BMI > 25:
		score -= 10
	case m.BMI < 18.5:
		score -= 15
	}

	if m.SystolicBP > 140 || m.DiastolicBP > 90 {
		score -= 25
	} else if m.SystolicBP > 130 || m.DiastolicBP > 80 {
		score -= 15
	}

	if m.GlucoseFasting > 126 {
		score -= 30
	} else if m.GlucoseFasting > 100 {
		score -= 15
	}

	if m.TotalCholesterol > 240 {
		score -= 15
	}
	if m.HDLCholesterol < 40 {
		score -= 10
	}

	if m.ExerciseMinutesPerWeek >= 150 {
		score += 5
	} else if m.ExerciseMinutesPerWeek < 75 {
		score -= 10
	}

	if m.SleepHours >= 7 && m.SleepHours <= 8 {
		score += 5
	} else if m.SleepHours < 6 || m.SleepHours > 9 {
		score -= 10
	}

	if m.StressLevel <= 3 {
		score += 5
	} else if m.StressLevel >= 8 {
		score -= 15
	}

	if m.SmokingStatus == 1 {
		score -= 20
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Insights derives warning/info messages from the latest measurement.
func (e *Engine) Insights(m *model.Measurement) []model.Insight {
	var insights []model.Insight

	if m.BMI > 30 {
		insights = append(insights, model.Insight{
			Type:           "warning",
			Message:        fmt.Sprintf("BMI (%.1f) indicates obesity.", m.BMI),
			Recommendation: "Focus on balanced diet and regular exercise; consider consulting a healthcare provider.",
		})
	} else if m.BMI > 25 {
		insights = append(insights, model.Insight{
			Type:           "info",
			Message:        fmt.Sprintf("BMI (%.1f) indicates overweight status.", m.BMI),
			Recommendation: "Consider lifestyle modifications to reach healthy weight.",
		})
	}

	if m.SystolicBP > 140 || m.DiastolicBP > 90 {
		insights = append(insights, model.Insight{
			Type:           "warning",
			Message:        fmt.Sprintf("Blood pressure (%.0f/%.0f) is in hypertensive range.", m.SystolicBP, m.DiastolicBP),
			Recommendation: "Consult healthcare provider immediately.",
		})
	} else if m.SystolicBP > 130 || m.DiastolicBP > 80 {
		insights = append(insights, model.Insight{
			Type:           "info",
			Message:        fmt.Sprintf("Blood pressure (%.0f/%.0f) is elevated.", m.SystolicBP, m.DiastolicBP),
			Recommendation: "Monitor closely and consider lifestyle changes.",
		})
	}

	if m.GlucoseFasting > 126 {
		insights = append(insights, model.Insight{
			Type:           "warning",
			Message:        fmt.Sprintf("Fasting glucose (%.0f mg/dL) is in diabetic range.", m.GlucoseFasting),
			Recommendation: "Consult healthcare provider for diabetes management.",
		})
	} else if m.GlucoseFasting > 100 {
		insights = append(insights, model.Insight{
			Type:           "info",
			Message:        fmt.Sprintf("Fasting glucose (%.0f mg/dL) is in pre-diabetic range.", m.GlucoseFasting),
			Recommendation: "Consider diet and exercise modifications.",
		})
	}

	return insights
}
