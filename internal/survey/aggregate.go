package survey

import (
	"math"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

type ResponseSummary struct {
	TotalExperts                 int            `json:"total_experts"`
	ExpertTypes                  map[string]int `json:"expert_types"`
	AvgYearsExperience           float64        `json:"avg_years_experience"`
	ResourceLimitedExperiencePct float64        `json:"resource_limited_experience_pct"`
	Note                         string         `json:"note,omitempty"`
}

type SUSAnalysis struct {
	MeanSUS         float64 `json:"mean_sus"`
	StdSUS          float64 `json:"std_sus"`
	Grade           string  `json:"sus_grade"`
	AboveAveragePct float64 `json:"above_average"`
	Note            string  `json:"note,omitempty"`
}

type Analysis struct {
	ResponseSummary ResponseSummary `json:"response_summary"`
	SUS             SUSAnalysis     `json:"sus_analysis"`
}

// Summarize reduces a batch of expert responses to a demographic summary and
// a SUS usability analysis. An empty batch is a valid, reportable state: the
// result carries explicit zeros and grade "N/A" instead of an error.
func Summarize(responses []types.SurveyResponse) Analysis {
	if len(responses) == 0 {
		return Analysis{
			ResponseSummary: ResponseSummary{
				ExpertTypes: map[string]int{},
				Note:        "no expert evaluation data collected yet",
			},
			SUS: SUSAnalysis{Grade: "N/A", Note: "expert evaluation pending"},
		}
	}

	summary := ResponseSummary{
		TotalExperts: len(responses),
		ExpertTypes:  make(map[string]int),
	}
	var yearsTotal float64
	var resourceLimited int
	var susScores []float64
	for _, r := range responses {
		summary.ExpertTypes[r.ExpertType]++
		yearsTotal += r.YearsExperience
		if r.ResourceLimitedExperience {
			resourceLimited++
		}
		if r.UsabilityScore != nil {
			susScores = append(susScores, *r.UsabilityScore)
		}
	}
	n := float64(len(responses))
	summary.AvgYearsExperience = yearsTotal / n
	summary.ResourceLimitedExperiencePct = float64(resourceLimited) / n * 100

	return Analysis{
		ResponseSummary: summary,
		SUS:             AnalyzeSUS(susScores),
	}
}

// AnalyzeSUS summarizes 0-100 usability scores. The standard deviation is the
// population form. AboveAveragePct is the share of scores strictly above 70.
// With no scores the grade is "N/A" and every figure is zero.
func AnalyzeSUS(scores []float64) SUSAnalysis {
	if len(scores) == 0 {
		return SUSAnalysis{Grade: "N/A", Note: "SUS data not available"}
	}
	n := float64(len(scores))
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / n

	var sqDiff float64
	var above int
	for _, s := range scores {
		sqDiff += (s - mean) * (s - mean)
		if s > 70 {
			above++
		}
	}
	return SUSAnalysis{
		MeanSUS:         mean,
		StdSUS:          math.Sqrt(sqDiff / n),
		Grade:           Grade(mean),
		AboveAveragePct: float64(above) / n * 100,
	}
}

// Grade maps a mean SUS score to its letter band. Band lower bounds are
// inclusive.
func Grade(mean float64) string {
	switch {
	case mean >= 85:
		return "A"
	case mean >= 80:
		return "B"
	case mean >= 70:
		return "C"
	case mean >= 50:
		return "D"
	default:
		return "F"
	}
}
