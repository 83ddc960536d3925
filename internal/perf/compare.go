package perf

import (
	"errors"
	"fmt"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// ErrZeroTarget is returned when variance against a zero target is requested.
// Targets are domain-defined and must be non-zero; there is no sensible
// substitute value for a relative variance.
var ErrZeroTarget = errors.New("variance undefined for zero target")

type Target struct {
	Value          float64
	HigherIsBetter bool
}

// DefaultTargets is the fixed target table for the ATLAS PWA evaluation.
// Paint and interactivity budgets are in seconds, the rest are scores or
// percentages.
func DefaultTargets() map[types.MetricName]Target {
	return map[types.MetricName]Target{
		types.MetricPWAScore:             {Value: 90, HigherIsBetter: true},
		types.MetricPerformanceScore:     {Value: 80, HigherIsBetter: true},
		types.MetricFirstContentfulPaint: {Value: 2.0, HigherIsBetter: false},
		types.MetricTimeToInteractive:    {Value: 3.0, HigherIsBetter: false},
		types.MetricOfflineSuccessRate:   {Value: 95, HigherIsBetter: true},
	}
}

type Comparison struct {
	Actual          float64 `json:"actual"`
	Target          float64 `json:"target"`
	MeetsTarget     bool    `json:"meets_target"`
	VariancePercent float64 `json:"variance_percent"`
}

type Summary struct {
	TotalMetrics int     `json:"total_metrics"`
	TargetsMet   int     `json:"targets_met"`
	OverallScore float64 `json:"overall_score"`
}

type Report struct {
	Metrics map[types.MetricName]Comparison `json:"metrics_analysis"`
	Summary Summary                         `json:"summary"`
}

// Compare checks one observation against its target and reports the signed
// variance in percent.
func Compare(obs types.MetricObservation) (Comparison, error) {
	if obs.Target == 0 {
		return Comparison{}, fmt.Errorf("metric %s: %w", obs.Name, ErrZeroTarget)
	}
	meets := obs.Actual >= obs.Target
	if !obs.HigherIsBetter {
		meets = obs.Actual <= obs.Target
	}
	return Comparison{
		Actual:          obs.Actual,
		Target:          obs.Target,
		MeetsTarget:     meets,
		VariancePercent: (obs.Actual - obs.Target) / obs.Target * 100,
	}, nil
}

// Analyze compares a batch of observations and summarizes how many targets
// were met. OverallScore is the percentage of metrics meeting their target;
// an empty batch yields a zeroed summary rather than an error.
func Analyze(observations []types.MetricObservation) (Report, error) {
	report := Report{Metrics: make(map[types.MetricName]Comparison, len(observations))}
	for _, obs := range observations {
		if !obs.Name.Valid() {
			return Report{}, fmt.Errorf("unknown metric name %q", obs.Name)
		}
		c, err := Compare(obs)
		if err != nil {
			return Report{}, err
		}
		report.Metrics[obs.Name] = c
		report.Summary.TotalMetrics++
		if c.MeetsTarget {
			report.Summary.TargetsMet++
		}
	}
	if report.Summary.TotalMetrics > 0 {
		report.Summary.OverallScore = float64(report.Summary.TargetsMet) / float64(report.Summary.TotalMetrics) * 100
	}
	return report, nil
}

// Observe builds observations from measured values using the fixed target
// table. Metrics without a measurement are omitted, never defaulted.
func Observe(measured map[types.MetricName]float64) []types.MetricObservation {
	targets := DefaultTargets()
	out := make([]types.MetricObservation, 0, len(measured))
	for _, name := range types.MetricNames() {
		actual, ok := measured[name]
		if !ok {
			continue
		}
		t := targets[name]
		out = append(out, types.MetricObservation{
			Name:           name,
			Actual:         actual,
			Target:         t.Value,
			HigherIsBetter: t.HigherIsBetter,
		})
	}
	return out
}
