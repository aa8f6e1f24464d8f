package model

// AlertSeverity orders alerts from most to least urgent.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "Critical"
	SeverityWarning  AlertSeverity = "Warning"
	SeverityInfo     AlertSeverity = "Info"
)

// Alert is a single triggered alert. Value/Threshold/Change are populated
// depending on which kind of check fired.
type Alert struct {
	Severity       AlertSeverity `json:"severity"`
	Message        string        `json:"message"`
	Recommendation string        `json:"recommendation"`
	Metric         string        `json:"metric"`
	Value          float64       `json:"value,omitempty"`
	Threshold      float64       `json:"threshold,omitempty"`
	Change         float64       `json:"change,omitempty"`
}

// AlertSummary aggregates the current alert state.
type AlertSummary struct {
	Total      int    `json:"total_alerts"`
	Critical   int    `json:"critical"`
	Warning    int    `json:"warning"`
	Info       int    `json:"info"`
	MostSevere *Alert `json:"most_severe,omitempty"`
}

// AlertRecommendation is a consolidated per-metric recommendation.
type AlertRecommendation struct {
	Priority       string `json:"priority"`
	Metric         string `json:"metric"`
	Recommendation string `json:"recommendation"`
}
