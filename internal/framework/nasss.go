package framework

import (
	"errors"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// ErrEmptyAssessment is returned when a framework assessment has no entries
// at all. A defaulted overall score of 0 would read as "Simple" or "Not
// Ready" and silently skew the readiness decision, so this fails fast.
var ErrEmptyAssessment = errors.New("assessment has no scored entries")

type DomainScore struct {
	Score float64               `json:"score"`
	Level types.ComplexityLevel `json:"complexity_level"`
}

type NASSSAssessment struct {
	Domains map[types.NASSSDomain]DomainScore `json:"domains"`
	Overall DomainScore                       `json:"overall"`
}

// ComplexityLevelFor maps a 1-5 NASSS score to its complexity band.
// Thresholds are inclusive and checked ascending, first match wins.
func ComplexityLevelFor(score float64) types.ComplexityLevel {
	switch {
	case score <= 2:
		return types.ComplexitySimple
	case score <= 3:
		return types.ComplexityComplicated
	case score <= 4:
		return types.ComplexityComplex
	default:
		return types.ComplexityChaotic
	}
}

// ScoreNASSS labels each present domain and derives the overall entry as the
// unweighted mean of present scores. Absent domains are excluded, never
// treated as zero. Unknown domain keys are rejected at the boundary.
func ScoreNASSS(raw map[types.NASSSDomain]float64) (NASSSAssessment, error) {
	if len(raw) == 0 {
		return NASSSAssessment{}, ErrEmptyAssessment
	}
	out := NASSSAssessment{Domains: make(map[types.NASSSDomain]DomainScore, len(raw))}
	var sum float64
	var count int
	for domain := range raw {
		if !domain.Valid() {
			return NASSSAssessment{}, errors.New("unknown NASSS domain " + string(domain))
		}
	}
	for _, domain := range types.NASSSDomains() {
		score, ok := raw[domain]
		if !ok {
			continue
		}
		out.Domains[domain] = DomainScore{Score: score, Level: ComplexityLevelFor(score)}
		sum += score
		count++
	}
	avg := sum / float64(count)
	out.Overall = DomainScore{Score: avg, Level: ComplexityLevelFor(avg)}
	return out, nil
}
