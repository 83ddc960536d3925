package clinical

import (
	"fmt"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// CategoryAlignment summarizes how one clinical category performed against
// WHO protocols.
type CategoryAlignment struct {
	TotalCases                 int     `json:"total_cases"`
	WHOAligned                 int     `json:"who_aligned"`
	AlignmentPercent           float64 `json:"alignment_percentage"`
	AppropriateRecommendations int     `json:"appropriate_recommendations"`
	AppropriatenessPercent     float64 `json:"appropriateness_percentage"`
	ResourceAware              int     `json:"resource_aware"`
	ResourceAwarenessPercent   float64 `json:"resource_awareness_percentage"`
}

// Report carries the per-category alignment breakdown together with the
// confusion-matrix metrics, overall and per category.
type Report struct {
	Alignment         map[types.ClinicalCategory]CategoryAlignment `json:"alignment_analysis"`
	OverallMetrics    Metrics                                      `json:"overall_metrics"`
	MetricsByCategory map[types.ClinicalCategory]Metrics           `json:"metrics_by_category"`
}

// AnalyzeAlignment partitions outcomes by category and computes alignment
// percentages. Categories without outcomes are absent from the result.
func AnalyzeAlignment(outcomes []types.ScenarioOutcome) (map[types.ClinicalCategory]CategoryAlignment, error) {
	grouped := make(map[types.ClinicalCategory][]types.ScenarioOutcome)
	for _, o := range outcomes {
		if !o.Category.Valid() {
			return nil, fmt.Errorf("outcome %s has unknown category %q", o.ScenarioID, o.Category)
		}
		grouped[o.Category] = append(grouped[o.Category], o)
	}

	out := make(map[types.ClinicalCategory]CategoryAlignment, len(grouped))
	for _, c := range types.ClinicalCategories() {
		group, ok := grouped[c]
		if !ok {
			continue
		}
		a := CategoryAlignment{TotalCases: len(group)}
		for _, o := range group {
			if o.WHOAligned {
				a.WHOAligned++
			}
			if o.AppropriateRecommendation {
				a.AppropriateRecommendations++
			}
			if o.ResourceAware {
				a.ResourceAware++
			}
		}
		total := float64(a.TotalCases)
		a.AlignmentPercent = float64(a.WHOAligned) / total * 100
		a.AppropriatenessPercent = float64(a.AppropriateRecommendations) / total * 100
		a.ResourceAwarenessPercent = float64(a.ResourceAware) / total * 100
		out[c] = a
	}
	return out, nil
}

// Analyze produces the full clinical validation report for a batch of
// outcomes.
func Analyze(outcomes []types.ScenarioOutcome) (Report, error) {
	alignment, err := AnalyzeAlignment(outcomes)
	if err != nil {
		return Report{}, err
	}
	overall, err := Score(outcomes)
	if err != nil {
		return Report{}, err
	}
	byCategory, err := ScoreByCategory(outcomes)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Alignment:         alignment,
		OverallMetrics:    overall,
		MetricsByCategory: byCategory,
	}, nil
}
