package model

import "time"

// Condition is a chronic condition the risk engine scores.
type Condition string

const (
	ConditionPreDiabetes       Condition = "pre_diabetes"
	ConditionHypertension      Condition = "hypertension"
	ConditionMetabolicSyndrome Condition = "metabolic_syndrome"
)

// Conditions lists every scored condition in a stable order.
var Conditions = []Condition{
	ConditionPreDiabetes,
	ConditionHypertension,
	ConditionMetabolicSyndrome,
}

// RiskLevel buckets a risk score: High > 0.7, Medium > 0.4, otherwise Low.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// RiskScore is the scored probability for a single condition.
type RiskScore struct {
	Condition Condition `json:"condition"`
	Score     float64   `json:"score"`
	Level     RiskLevel `json:"level"`
}

// RiskFactor is a named contributor to overall risk with a fixed weight.
type RiskFactor struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// FindingStatus grades a single criterion within a condition analysis.
type FindingStatus string

const (
	FindingOK       FindingStatus = "ok"
	FindingElevated FindingStatus = "elevated"
	FindingHigh     FindingStatus = "high"
)

// Finding is one criterion checked during a condition analysis.
type Finding struct {
	Metric    string        `json:"metric"`
	Value     float64       `json:"value"`
	Status    FindingStatus `json:"status"`
	Reference string        `json:"reference"`
}

// ConditionAnalysis holds the per-criterion breakdown for one condition.
// CriteriaMet is only populated for metabolic syndrome (3 of 5 defines it).
type ConditionAnalysis struct {
	Condition   Condition `json:"condition"`
	Findings    []Finding `json:"findings"`
	CriteriaMet int       `json:"criteria_met,omitempty"`
}

// Insight is an actionable observation derived from the latest measurement.
type Insight struct {
	Type           string `json:"type"` // warning | info
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

// Assessment is the full risk picture built from the measurement history.
type Assessment struct {
	Scores      []RiskScore    `json:"scores"`
	Factors     []RiskFactor   `json:"factors"`
	HealthScore int            `json:"health_score"`
	Derived     DerivedMetrics `json:"derived"`
	Insights    []Insight      `json:"insights"`
	AssessedAt  time.Time      `json:"assessed_at"`
}
