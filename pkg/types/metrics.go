package types

type MetricName string

const (
	MetricPWAScore             MetricName = "pwa_score"
	MetricPerformanceScore     MetricName = "performance_score"
	MetricFirstContentfulPaint MetricName = "first_contentful_paint"
	MetricTimeToInteractive    MetricName = "time_to_interactive"
	MetricOfflineSuccessRate   MetricName = "offline_success_rate"
)

func MetricNames() []MetricName {
	return []MetricName{
		MetricPWAScore,
		MetricPerformanceScore,
		MetricFirstContentfulPaint,
		MetricTimeToInteractive,
		MetricOfflineSuccessRate,
	}
}

func (m MetricName) Valid() bool {
	switch m {
	case MetricPWAScore, MetricPerformanceScore, MetricFirstContentfulPaint,
		MetricTimeToInteractive, MetricOfflineSuccessRate:
		return true
	default:
		return false
	}
}

// MetricObservation is a single measured value paired with its fixed target.
// HigherIsBetter selects the comparison direction: score-style metrics must
// reach the target, latency-style metrics must stay under it.
type MetricObservation struct {
	Name           MetricName `json:"name" yaml:"name"`
	Actual         float64    `json:"actual" yaml:"actual"`
	Target         float64    `json:"target" yaml:"target"`
	HigherIsBetter bool       `json:"higher_is_better" yaml:"higher_is_better"`
}
