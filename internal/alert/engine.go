package alert

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"healthtrack/internal/model"
)

// Engine evaluates the measurement history against fixed clinical thresholds
// and pattern checks. It holds no state; the caller supplies "now" so trend
// and gap checks stay deterministic under test.
type Engine struct{}

// NewEngine constructs an alert Engine.
func NewEngine() *Engine {
	return &Engine{}
}

type threshold struct {
	metric string
	value  func(m *model.Measurement) float64
	limit  float64
	below  bool // fire when value is at or below the limit instead of at or above
}

var criticalThresholds = []threshold{
	{metric: "systolic_bp", value: func(m *model.Measurement) float64 { return m.SystolicBP }, limit: 180},
	{metric: "diastolic_bp", value: func(m *model.Measurement) float64 { return m.DiastolicBP }, limit: 120},
	{metric: "glucose_fasting", value: func(m *model.Measurement) float64 { return m.GlucoseFasting }, limit: 250},
	{metric: "total_cholesterol", value: func(m *model.Measurement) float64 { return m.TotalCholesterol }, limit: 300},
	{metric: "bmi", value: func(m *model.Measurement) float64 { return m.BMI }, limit: 40},
	{metric: "resting_heart_rate", value: func(m *model.Measurement) float64 { return m.RestingHeartRate }, limit: 120},
}

var warningThresholds = []threshold{
	{metric: "systolic_bp", value: func(m *model.Measurement) float64 { return m.SystolicBP }, limit: 140},
	{metric: "diastolic_bp", value: func(m *model.Measurement) float64 { return m.DiastolicBP }, limit: 90},
	{metric: "glucose_fasting", value: func(m *model.Measurement) float64 { return m.GlucoseFasting }, limit: 126},
	{metric: "total_cholesterol", value: func(m *model.Measurement) float64 { return m.TotalCholesterol }, limit: 240},
	{metric: "bmi", value: func(m *model.Measurement) float64 { return m.BMI }, limit: 30},
	{metric: "resting_heart_rate", value: func(m *model.Measurement) float64 { return m.RestingHeartRate }, limit: 100},
	{metric: "hdl_cholesterol", value: func(m *model.Measurement) float64 { return m.HDLCholesterol }, limit: 40, below: true},
	{metric: "triglycerides", value: func(m *model.Measurement) float64 { return m.Triglycerides }, limit: 200},
}

var infoThresholds = []threshold{
	{metric: "systolic_bp", value: func(m *model.Measurement) float64 { return m.SystolicBP }, limit: 130},
	{metric: "diastolic_bp", value: func(m *model.Measurement) float64 { return m.DiastolicBP }, limit: 80},
	{metric: "glucose_fasting", value: func(m *model.Measurement) float64 { return m.GlucoseFasting }, limit: 100},
	{metric: "total_cholesterol", value: func(m *model.Measurement) float64 { return m.TotalCholesterol }, limit: 200},
	{metric: "bmi", value: func(m *model.Measurement) float64 { return m.BMI }, limit: 25},
	{metric: "exercise_minutes_per_week", value: func(m *model.Measurement) float64 { return m.ExerciseMinutesPerWeek }, limit: 150, below: true},
	{metric: "sleep_hours", value: func(m *model.Measurement) float64 { return m.SleepHours }, limit: 6, below: true},
	{metric: "stress_level", value: func(m *model.Measurement) float64 { return float64(m.StressLevel) }, limit: 7},
}

// sleepHighLimit fires separately: oversleeping gets its own message.
const sleepHighLimit = 9

type trendThreshold struct {
	metric string
	value  func(m *model.Measurement) float64
	limit  float64 // absolute increase within the trend window
}

var rapidIncreaseThresholds = []trendThreshold{
	{metric: "bmi", value: func(m *model.Measurement) float64 { return m.BMI }, limit: 2.0},
	{metric: "systolic_bp", value: func(m *model.Measurement) float64 { return m.SystolicBP }, limit: 20},
	{metric: "glucose_fasting", value: func(m *model.Measurement) float64 { return m.GlucoseFasting }, limit: 30},
	{metric: "total_cholesterol", value: func(m *model.Measurement) float64 { return m.TotalCholesterol }, limit: 50},
}

const (
	trendWindowDays       = 30
	missedMeasurementDays = 30
	maxAvgGapDays         = 14
	systolicCVLimit       = 0.2

	// Completeness is only judged once a habit could have formed.
	minCompletenessReadings = 5
)

// optionalMetrics have no ingestion default: they stay zero across the whole
// history when the user never supplies them.
var optionalMetrics = []struct {
	metric string
	value  func(m *model.Measurement) float64
}{
	{metric: "weight_kg", value: func(m *model.Measurement) float64 { return m.WeightKg }},
	{metric: "resting_heart_rate", value: func(m *model.Measurement) float64 { return m.RestingHeartRate }},
	{metric: "hba1c", value: func(m *model.Measurement) float64 { return m.HbA1c }},
}

// Check runs every alert category over the history (oldest first) and
// returns alerts sorted Critical, Warning, Info.
func (e *Engine) Check(history []model.Measurement, now time.Time) []model.Alert {
	if len(history) == 0 {
		return nil
	}

	var alerts []model.Alert
	alerts = append(alerts, e.checkValues(&history[len(history)-1])...)
	alerts = append(alerts, e.checkTrends(history)...)
	alerts = append(alerts, e.checkPatterns(history, now)...)
	alerts = append(alerts, e.checkAdherence(history)...)

	order := map[model.AlertSeverity]int{
		model.SeverityCritical: 0,
		model.SeverityWarning:  1,
		model.SeverityInfo:     2,
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return order[alerts[i].Severity] < order[alerts[j].Severity]
	})
	return alerts
}

func (e *Engine) checkValues(m *model.Measurement) []model.Alert {
	var alerts []model.Alert

	for _, t := range criticalThresholds {
		if v := t.value(m); v >= t.limit {
			alerts = append(alerts, model.Alert{
				Severity:       model.SeverityCritical,
				Message:        fmt.Sprintf("%s is critically high: %g", metricLabel(t.metric), v),
				Recommendation: "Seek immediate medical attention",
				Metric:         t.metric,
				Value:          v,
				Threshold:      t.limit,
			})
		}
	}

	for _, t := range warningThresholds {
		v := t.value(m)
		if t.below {
			if v <= t.limit {
				alerts = append(alerts, model.Alert{
					Severity:       model.SeverityWarning,
					Message:        fmt.Sprintf("%s is low: %g mg/dL", metricLabel(t.metric), v),
					Recommendation: "Consider lifestyle changes to increase HDL",
					Metric:         t.metric,
					Value:          v,
					Threshold:      t.limit,
				})
			}
			continue
		}
		if v >= t.limit {
			alerts = append(alerts, model.Alert{
				Severity:       model.SeverityWarning,
				Message:        fmt.Sprintf("%s is elevated: %g", metricLabel(t.metric), v),
				Recommendation: "Monitor closely and consider intervention",
				Metric:         t.metric,
				Value:          v,
				Threshold:      t.limit,
			})
		}
	}

	for _, t := range infoThresholds {
		v := t.value(m)
		switch {
		case t.below:
			if v <= t.limit {
				alerts = append(alerts, model.Alert{
					Severity:       model.SeverityInfo,
					Message:        fmt.Sprintf("%s is below recommended: %g", metricLabel(t.metric), v),
					Recommendation: "Consider increasing to meet recommended levels",
					Metric:         t.metric,
					Value:          v,
					Threshold:      t.limit,
				})
			}
		case t.metric == "stress_level":
			if v >= t.limit {
				alerts = append(alerts, model.Alert{
					Severity:       model.SeverityInfo,
					Message:        fmt.Sprintf("Stress level is high: %g/10", v),
					Recommendation: "Consider stress management techniques",
					Metric:         t.metric,
					Value:          v,
					Threshold:      t.limit,
				})
			}
		default:
			if v >= t.limit {
				alerts = append(alerts, model.Alert{
					Severity:       model.SeverityInfo,
					Message:        fmt.Sprintf("%s is above optimal: %g", metricLabel(t.metric), v),
					Recommendation: "Consider lifestyle modifications",
					Metric:         t.metric,
					Value:          v,
					Threshold:      t.limit,
				})
			}
		}
	}

	if m.SleepHours >= sleepHighLimit {
		alerts = append(alerts, model.Alert{
			Severity:       model.SeverityInfo,
			Message:        fmt.Sprintf("Sleep hours are above recommended: %g", m.SleepHours),
			Recommendation: "Excessive sleep may indicate underlying health issues",
			Metric:         "sleep_hours",
			Value:          m.SleepHours,
			Threshold:      sleepHighLimit,
		})
	}

	return alerts
}

func (e *Engine) checkTrends(history []model.Measurement) []model.Alert {
	if len(history) < 2 {
		return nil
	}

	var alerts []model.Alert

	// Rapid increases within the last 30 days of recordings.
	cutoff := history[len(history)-1].RecordedAt.AddDate(0, 0, -trendWindowDays)
	var recent []model.Measurement
	for _, m := range history {
		if m.RecordedAt.After(cutoff) {
			recent = append(recent, m)
		}
	}
	if len(recent) >= 2 {
		for _, t := range rapidIncreaseThresholds {
			change := t.value(&recent[len(recent)-1]) - t.value(&recent[0])
			if change >= t.limit {
				alerts = append(alerts, model.Alert{
					Severity:       model.SeverityWarning,
					Message:        fmt.Sprintf("%s has increased rapidly: +%.1f in %d days", metricLabel(t.metric), change, trendWindowDays),
					Recommendation: "Monitor closely and consider medical evaluation",
					Metric:         t.metric,
					Change:         change,
					Threshold:      t.limit,
				})
			}
		}
	}

	// Exercise activity declining by more than half.
	exercise := make([]float64, len(history))
	for i := range history {
		exercise[i] = history[i].ExerciseMinutesPerWeek
	}
	recentAvg := avg(tail(exercise, 5))
	historicalAvg := avg(exercise[:minInt(5, len(exercise))])
	if historicalAvg > 0 && recentAvg/historicalAvg < 0.5 {
		alerts = append(alerts, model.Alert{
			Severity:       model.SeverityInfo,
			Message:        "Exercise activity has declined significantly",
			Recommendation: "Consider factors affecting exercise routine and gradually increase activity",
			Metric:         "exercise_minutes_per_week",
			Change:         recentAvg - historicalAvg,
		})
	}

	return alerts
}

func (e *Engine) checkPatterns(history []model.Measurement, now time.Time) []model.Alert {
	var alerts []model.Alert

	last := history[len(history)-1].RecordedAt
	daysSince := int(now.Sub(last).Hours() / 24)
	if daysSince > missedMeasurementDays {
		alerts = append(alerts, model.Alert{
			Severity:       model.SeverityInfo,
			Message:        fmt.Sprintf("No health measurements recorded in %d days", daysSince),
			Recommendation: "Regular monitoring is important for tracking progress",
			Metric:         "measurement_frequency",
			Value:          float64(daysSince),
		})
	}

	if len(history) >= 2 {
		var totalGap float64
		for i := 1; i < len(history); i++ {
			totalGap += history[i].RecordedAt.Sub(history[i-1].RecordedAt).Hours() / 24
		}
		avgGap := totalGap / float64(len(history)-1)
		if avgGap > maxAvgGapDays {
			alerts = append(alerts, model.Alert{
				Severity:       model.SeverityInfo,
				Message:        fmt.Sprintf("Measurements are infrequent (average gap: %.1f days)", avgGap),
				Recommendation: "Consider more frequent monitoring for better trend analysis",
				Metric:         "measurement_consistency",
				Value:          avgGap,
			})
		}
	}

	if len(history) >= minCompletenessReadings {
		var missing []string
		for _, om := range optionalMetrics {
			recorded := false
			for i := range history {
				if om.value(&history[i]) != 0 {
					recorded = true
					break
				}
			}
			if !recorded {
				missing = append(missing, metricLabel(om.metric))
			}
		}
		if len(missing) > 0 {
			alerts = append(alerts, model.Alert{
				Severity:       model.SeverityInfo,
				Message:        fmt.Sprintf("Key metrics never recorded: %s", strings.Join(missing, ", ")),
				Recommendation: "Track these metrics for a more complete health picture",
				Metric:         "data_completeness",
			})
		}
	}

	return alerts
}

// checkAdherence flags highly variable blood pressure readings, a proxy for
// inconsistent measurement conditions or medication adherence.
func (e *Engine) checkAdherence(history []model.Measurement) []model.Alert {
	if len(history) < 5 {
		return nil
	}

	systolic := make([]float64, len(history))
	for i := range history {
		systolic[i] = history[i].SystolicBP
	}
	m := avg(systolic)
	if m == 0 {
		return nil
	}
	cv := stddev(systolic, m) / m
	if cv <= systolicCVLimit {
		return nil
	}

	return []model.Alert{{
		Severity:       model.SeverityInfo,
		Message:        "Blood pressure readings show high variability",
		Recommendation: "Ensure consistent measurement conditions and medication adherence",
		Metric:         "bp_variability",
		Value:          cv,
	}}
}

// Summary aggregates the current alert state.
func (e *Engine) Summary(history []model.Measurement, now time.Time) *model.AlertSummary {
	alerts := e.Check(history, now)

	s := &model.AlertSummary{Total: len(alerts)}
	for i := range alerts {
		switch alerts[i].Severity {
		case model.SeverityCritical:
			s.Critical++
		case model.SeverityWarning:
			s.Warning++
		case model.SeverityInfo:
			s.Info++
		}
	}
	if len(alerts) > 0 {
		s.MostSevere = &alerts[0]
	}
	return s
}

// Recommendations consolidates alerts into one recommendation per metric.
func (e *Engine) Recommendations(alerts []model.Alert) []model.AlertRecommendation {
	byMetric := make(map[string][]model.Alert)
	var order []string
	for _, a := range alerts {
		metric := a.Metric
		if metric == "" {
			metric = "general"
		}
		if _, seen := byMetric[metric]; !seen {
			order = append(order, metric)
		}
		byMetric[metric] = append(byMetric[metric], a)
	}

	var recs []model.AlertRecommendation
	for _, metric := range order {
		group := byMetric[metric]
		if len(group) > 1 {
			severities := make(map[model.AlertSeverity]bool, len(group))
			for _, a := range group {
				severities[a.Severity] = true
			}
			switch {
			case severities[model.SeverityCritical]:
				recs = append(recs, model.AlertRecommendation{
					Priority:       string(model.SeverityCritical),
					Metric:         metric,
					Recommendation: fmt.Sprintf("Immediate medical attention required for %s", metricLabel(metric)),
				})
			case severities[model.SeverityWarning]:
				recs = append(recs, model.AlertRecommendation{
					Priority:       model.PriorityHigh,
					Metric:         metric,
					Recommendation: fmt.Sprintf("Monitor %s closely and consider intervention", metricLabel(metric)),
				})
			}
			continue
		}
		recs = append(recs, model.AlertRecommendation{
			Priority:       string(group[0].Severity),
			Metric:         metric,
			Recommendation: group[0].Recommendation,
		})
	}
	return recs
}

func metricLabel(metric string) string {
	return strings.ReplaceAll(metric, "_", " ")
}

func avg(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64, mean float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

func tail(vals []float64, n int) []float64 {
	if len(vals) <= n {
		return vals
	}
	return vals[len(vals)-n:]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
