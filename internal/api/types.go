package api

// Signal quality labels reported by the backend for sensor confidence.
const (
	SignalGood   = "good"
	SignalMedium = "medium"
	SignalPoor   = "poor"
)

// StudentInsights is the decoded payload of GET /student/insights.
// Metric values are raw floats in [0,1] as reported by the backend;
// no server-side validation is performed on ranges.
type StudentInsights struct {
	Focus         float64 `json:"focus"`
	Stress        float64 `json:"stress"`
	Engagement    float64 `json:"engagement"`
	Relaxation    float64 `json:"relaxation"`
	SignalQuality string  `json:"signal_quality"`
	Message       string  `json:"message,omitempty"`
}

// KnownSignalQuality reports whether the backend sent one of the
// documented labels. Unknown labels are still displayed as received.
func (s StudentInsights) KnownSignalQuality() bool {
	switch s.SignalQuality {
	case SignalGood, SignalMedium, SignalPoor:
		return true
	}
	return false
}

// InstructorSummary is the decoded payload of GET /instructor/summary.
type InstructorSummary struct {
	Module             string  `json:"module"`
	AvgFocus           float64 `json:"avg_focus"`
	AvgStress          float64 `json:"avg_stress"`
	AvgEngagement      float64 `json:"avg_engagement"`
	StudentsHighStress int     `json:"students_high_stress"`
	StudentsTotal      int     `json:"students_total"`
}

// Health is the decoded payload of GET /health.
type Health struct {
	Status string `json:"status"`
}
