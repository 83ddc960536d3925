package framework

import (
	"errors"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

type DimensionScore struct {
	Score float64              `json:"score"`
	Level types.ReadinessLevel `json:"readiness_level"`
}

type REAIMAssessment struct {
	Dimensions map[types.REAIMDimension]DimensionScore `json:"dimensions"`
	Overall    DimensionScore                          `json:"overall"`
}

// ReadinessLevelFor maps a 0-10 RE-AIM score to its readiness band.
// Thresholds are inclusive and checked descending, first match wins.
func ReadinessLevelFor(score float64) types.ReadinessLevel {
	switch {
	case score >= 8:
		return types.ReadinessHigh
	case score >= 6:
		return types.ReadinessModerate
	case score >= 4:
		return types.ReadinessLow
	default:
		return types.ReadinessNotReady
	}
}

// ScoreREAIM labels each present dimension and derives the overall entry as
// the unweighted mean of present scores. Absent dimensions are excluded,
// never treated as zero.
func ScoreREAIM(raw map[types.REAIMDimension]float64) (REAIMAssessment, error) {
	if len(raw) == 0 {
		return REAIMAssessment{}, ErrEmptyAssessment
	}
	out := REAIMAssessment{Dimensions: make(map[types.REAIMDimension]DimensionScore, len(raw))}
	for dimension := range raw {
		if !dimension.Valid() {
			return REAIMAssessment{}, errors.New("unknown RE-AIM dimension " + string(dimension))
		}
	}
	var sum float64
	var count int
	for _, dimension := range types.REAIMDimensions() {
		score, ok := raw[dimension]
		if !ok {
			continue
		}
		out.Dimensions[dimension] = DimensionScore{Score: score, Level: ReadinessLevelFor(score)}
		sum += score
		count++
	}
	avg := sum / float64(count)
	out.Overall = DimensionScore{Score: avg, Level: ReadinessLevelFor(avg)}
	return out, nil
}
