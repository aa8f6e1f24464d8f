package risk

import (
	"math"
	"sort"

	"healthtrack/internal/model"
)

// metricValues extracts every numeric metric from a measurement by name.
// The statistics and trend code iterates these in sorted key order.
var metricValues = map[string]func(m *model.Measurement) float64{
	"bmi":                       func(m *model.Measurement) float64 { return m.BMI },
	"waist_cm":                  func(m *model.Measurement) float64 { return m.WaistCm },
	"systolic_bp":               func(m *model.Measurement) float64 { return m.SystolicBP },
	"diastolic_bp":              func(m *model.Measurement) float64 { return m.DiastolicBP },
	"glucose_fasting":           func(m *model.Measurement) float64 { return m.GlucoseFasting },
	"total_cholesterol":         func(m *model.Measurement) float64 { return m.TotalCholesterol },
	"hdl_cholesterol":           func(m *model.Measurement) float64 { return m.HDLCholesterol },
	"ldl_cholesterol":           func(m *model.Measurement) float64 { return m.LDLCholesterol },
	"triglycerides":             func(m *model.Measurement) float64 { return m.Triglycerides },
	"exercise_minutes_per_week": func(m *model.Measurement) float64 { return m.ExerciseMinutesPerWeek },
	"sleep_hours":               func(m *model.Measurement) float64 { return m.SleepHours },
	"stress_level":              func(m *model.Measurement) float64 { return float64(m.StressLevel) },
	"weight_kg":                 func(m *model.Measurement) float64 { return m.WeightKg },
}

// trendMetrics are the metrics the trend detector follows.
var trendMetrics = []string{"bmi", "systolic_bp", "diastolic_bp", "glucose_fasting", "total_cholesterol"}

// Statistics summarizes the measurement history per metric.
// Measurements must be ordered oldest first.
func (e *Engine) Statistics(history []model.Measurement) *model.HealthStatistics {
	stats := &model.HealthStatistics{
		Metrics: make(map[string]model.MetricStats),
		Count:   len(history),
	}
	if len(history) == 0 {
		return stats
	}

	for name, value := range metricValues {
		vals := make([]float64, len(history))
		for i := range history {
			vals[i] = value(&history[i])
		}
		stats.Metrics[name] = summarize(vals)
	}

	if len(history) >= 2 {
		stats.Trends = e.Trends(history)
	}
	return stats
}

// Trends compares the mean of the last five measurements against the mean of
// the first five (or the overall mean when fewer than ten exist).
func (e *Engine) Trends(history []model.Measurement) []model.Trend {
	if len(history) < 2 {
		return nil
	}

	var trends []model.Trend
	for _, name := range trendMetrics {
		value := metricValues[name]
		vals := make([]float64, len(history))
		for i := range history {
			vals[i] = value(&history[i])
		}

		recent := mean(tail(vals, 5))
		var historical float64
		if len(vals) >= 10 {
			historical = mean(vals[:5])
		} else {
			historical = mean(vals)
		}
		if historical == 0 {
			continue
		}

		direction := "decreasing"
		if recent > historical {
			direction = "increasing"
		}
		trends = append(trends, model.Trend{
			Metric:        name,
			Direction:     direction,
			MagnitudePct:  math.Abs(recent-historical) / historical * 100,
			RecentAvg:     recent,
			HistoricalAvg: historical,
		})
	}
	return trends
}

func summarize(vals []float64) model.MetricStats {
	s := model.MetricStats{
		Mean:   mean(vals),
		Median: median(vals),
		Min:    vals[0],
		Max:    vals[0],
		Latest: vals[len(vals)-1],
	}
	for _, v := range vals {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Std = stddev(vals, s.Mean)
	return s
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// stddev is the sample standard deviation, matching pandas' default ddof=1.
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
