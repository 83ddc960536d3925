package framework

import (
	"fmt"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// Decide combines the two overall framework scores into the ternary
// deployment recommendation. Rules are checked in order, first match wins.
func Decide(overallComplexity, overallReadiness float64) types.ReadinessDecision {
	switch {
	case overallComplexity <= 3 && overallReadiness >= 6:
		return types.DecisionReady
	case overallComplexity <= 4 && overallReadiness >= 4:
		return types.DecisionWithModifications
	default:
		return types.DecisionNeedsDevelopment
	}
}

// Recommendations flags NASSS domains scoring at or above 4 and RE-AIM
// dimensions scoring at or below 4, in vocabulary order. The overall entries
// are never flagged.
func Recommendations(nasss NASSSAssessment, reaim REAIMAssessment) []string {
	out := make([]string, 0)
	for _, domain := range types.NASSSDomains() {
		ds, ok := nasss.Domains[domain]
		if !ok {
			continue
		}
		if ds.Score >= 4 {
			out = append(out, fmt.Sprintf("Address high complexity in %s: requires significant attention before deployment", domain))
		}
	}
	for _, dimension := range types.REAIMDimensions() {
		ds, ok := reaim.Dimensions[dimension]
		if !ok {
			continue
		}
		if ds.Score <= 4 {
			out = append(out, fmt.Sprintf("Improve %s dimension: score below implementation threshold", dimension))
		}
	}
	return out
}

// Report is the combined framework assessment section of the integrated
// report.
type Report struct {
	NASSS           NASSSAssessment         `json:"nasss_assessment"`
	REAIM           REAIMAssessment         `json:"reaim_assessment"`
	Recommendations []string                `json:"implementation_recommendations"`
	Decision        types.ReadinessDecision `json:"readiness_decision"`
}

// Assess scores both frameworks and derives recommendations plus the
// readiness decision.
func Assess(nasssRaw map[types.NASSSDomain]float64, reaimRaw map[types.REAIMDimension]float64) (Report, error) {
	nasss, err := ScoreNASSS(nasssRaw)
	if err != nil {
		return Report{}, fmt.Errorf("nasss: %w", err)
	}
	reaim, err := ScoreREAIM(reaimRaw)
	if err != nil {
		return Report{}, fmt.Errorf("reaim: %w", err)
	}
	return Report{
		NASSS:           nasss,
		REAIM:           reaim,
		Recommendations: Recommendations(nasss, reaim),
		Decision:        Decide(nasss.Overall.Score, reaim.Overall.Score),
	}, nil
}
