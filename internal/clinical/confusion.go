package clinical

import (
	"errors"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// ErrNoOutcomes is returned when accuracy is requested over an empty outcome
// set; the other ratios default to zero on empty denominators, but accuracy
// over nothing has no meaningful substitute.
var ErrNoOutcomes = errors.New("no scenario outcomes to score")

// Matrix is the TP/FP/TN/FN cross-tabulation of WHO alignment. Predicted is
// the observed alignment label, expected the label the scenario was generated
// with.
type Matrix struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

func Tabulate(outcomes []types.ScenarioOutcome) Matrix {
	var m Matrix
	for _, o := range outcomes {
		switch {
		case o.WHOAligned && o.ExpectedAlignment:
			m.TP++
		case o.WHOAligned && !o.ExpectedAlignment:
			m.FP++
		case !o.WHOAligned && !o.ExpectedAlignment:
			m.TN++
		default:
			m.FN++
		}
	}
	return m
}

func (m Matrix) Total() int {
	return m.TP + m.FP + m.TN + m.FN
}

type Metrics struct {
	Accuracy    float64 `json:"accuracy"`
	Precision   float64 `json:"precision"`
	Recall      float64 `json:"recall"`
	Specificity float64 `json:"specificity"`
	F1          float64 `json:"f1_score"`
}

// Score derives classification metrics from a matrix. Precision, recall and
// specificity fall back to 0 when their denominator is zero. F1 is 0 whenever
// TP is 0 and the plain harmonic mean otherwise; the TP guard is the only
// zero guard applied.
func (m Matrix) Score() (Metrics, error) {
	total := m.Total()
	if total == 0 {
		return Metrics{}, ErrNoOutcomes
	}
	out := Metrics{
		Accuracy: float64(m.TP+m.TN) / float64(total),
	}
	if m.TP+m.FP > 0 {
		out.Precision = float64(m.TP) / float64(m.TP+m.FP)
	}
	if m.TP+m.FN > 0 {
		out.Recall = float64(m.TP) / float64(m.TP+m.FN)
	}
	if m.TN+m.FP > 0 {
		out.Specificity = float64(m.TN) / float64(m.TN+m.FP)
	}
	if m.TP > 0 {
		out.F1 = 2 * out.Precision * out.Recall / (out.Precision + out.Recall)
	}
	return out, nil
}

// Score tabulates and scores a whole outcome set.
func Score(outcomes []types.ScenarioOutcome) (Metrics, error) {
	return Tabulate(outcomes).Score()
}

// ScoreByCategory scores each clinical category independently. Categories
// with no outcomes are omitted from the result.
func ScoreByCategory(outcomes []types.ScenarioOutcome) (map[types.ClinicalCategory]Metrics, error) {
	byCategory := make(map[types.ClinicalCategory][]types.ScenarioOutcome)
	for _, o := range outcomes {
		if !o.Category.Valid() {
			return nil, errors.New("outcome " + o.ScenarioID + " has unknown category " + string(o.Category))
		}
		byCategory[o.Category] = append(byCategory[o.Category], o)
	}
	out := make(map[types.ClinicalCategory]Metrics, len(byCategory))
	for _, c := range types.ClinicalCategories() {
		group, ok := byCategory[c]
		if !ok {
			continue
		}
		m, err := Score(group)
		if err != nil {
			return nil, err
		}
		out[c] = m
	}
	return out, nil
}
