package model

import "time"

// Measurement is one recorded set of health biomarkers. All metric fields are
// fully populated: missing values are filled with reference defaults before a
// measurement reaches the repository.
type Measurement struct {
	ID                     string    `json:"id"`
	RecordedAt             time.Time `json:"recorded_at"`
	Age                    int       `json:"age"`
	Gender                 string    `json:"gender,omitempty"`
	HeightCm               float64   `json:"height_cm,omitempty"`
	WeightKg               float64   `json:"weight_kg,omitempty"`
	BMI                    float64   `json:"bmi"`
	WaistCm                float64   `json:"waist_cm"`
	SystolicBP             float64   `json:"systolic_bp"`
	DiastolicBP            float64   `json:"diastolic_bp"`
	RestingHeartRate       float64   `json:"resting_heart_rate,omitempty"`
	GlucoseFasting         float64   `json:"glucose_fasting"`
	HbA1c                  float64   `json:"hba1c,omitempty"`
	TotalCholesterol       float64   `json:"total_cholesterol"`
	HDLCholesterol         float64   `json:"hdl_cholesterol"`
	LDLCholesterol         float64   `json:"ldl_cholesterol"`
	Triglycerides          float64   `json:"triglycerides"`
	ExerciseMinutesPerWeek float64   `json:"exercise_minutes_per_week"`
	SleepHours             float64   `json:"sleep_hours"`
	StressLevel            int       `json:"stress_level"`
	SmokingStatus          int       `json:"smoking_status"`
	AlcoholConsumption     int       `json:"alcohol_consumption"`
	CreatedAt              time.Time `json:"created_at"`
}

// MeasurementInput is the write payload for a measurement. Pointer fields
// distinguish "not provided" from zero; absent metrics get reference defaults.
type MeasurementInput struct {
	RecordedAt             *time.Time `json:"recorded_at"`
	Age                    *int       `json:"age"`
	Gender                 string     `json:"gender"`
	HeightCm               *float64   `json:"height_cm"`
	WeightKg               *float64   `json:"weight_kg"`
	BMI                    *float64   `json:"bmi"`
	WaistCm                *float64   `json:"waist_cm"`
	SystolicBP             *float64   `json:"systolic_bp"`
	DiastolicBP            *float64   `json:"diastolic_bp"`
	RestingHeartRate       *float64   `json:"resting_heart_rate"`
	GlucoseFasting         *float64   `json:"glucose_fasting"`
	HbA1c                  *float64   `json:"hba1c"`
	TotalCholesterol       *float64   `json:"total_cholesterol"`
	HDLCholesterol         *float64   `json:"hdl_cholesterol"`
	LDLCholesterol         *float64   `json:"ldl_cholesterol"`
	Triglycerides          *float64   `json:"triglycerides"`
	ExerciseMinutesPerWeek *float64   `json:"exercise_minutes_per_week"`
	SleepHours             *float64   `json:"sleep_hours"`
	StressLevel            *int       `json:"stress_level"`
	SmokingStatus          *int       `json:"smoking_status"`
	AlcoholConsumption     *int       `json:"alcohol_consumption"`
}

// DerivedMetrics are values computed from a single measurement rather than stored.
type DerivedMetrics struct {
	PulsePressure float64 `json:"pulse_pressure"`
	TotalHDLRatio float64 `json:"total_hdl_ratio"`
	LDLHDLRatio   float64 `json:"ldl_hdl_ratio"`
	CVRiskScore   float64 `json:"cv_risk_score"`
}

// MetricStats summarizes one metric across the measurement history.
type MetricStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Latest float64 `json:"latest"`
}

// Trend describes how a metric moved between early and recent measurements.
type Trend struct {
	Metric        string  `json:"metric"`
	Direction     string  `json:"direction"` // increasing | decreasing
	MagnitudePct  float64 `json:"magnitude_pct"`
	RecentAvg     float64 `json:"recent_avg"`
	HistoricalAvg float64 `json:"historical_avg"`
}

// HealthStatistics bundles per-metric statistics with trend information.
type HealthStatistics struct {
	Metrics map[string]MetricStats `json:"metrics"`
	Trends  []Trend                `json:"trends"`
	Count   int                    `json:"count"`
}
