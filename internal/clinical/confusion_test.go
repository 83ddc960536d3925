package clinical

import (
	"errors"
	"math"
	"testing"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

func outcome(category types.ClinicalCategory, predicted, expected bool) types.ScenarioOutcome {
	return types.ScenarioOutcome{
		ScenarioID:        "s",
		Category:          category,
		ResourceLevel:     types.ResourceBasic,
		WHOAligned:        predicted,
		ExpectedAlignment: expected,
	}
}

func TestTabulate_PartitionsAllCells(t *testing.T) {
	outcomes := []types.ScenarioOutcome{
		outcome(types.CategoryWHOIMCI, true, true),
		outcome(types.CategoryWHOIMCI, true, true),
		outcome(types.CategoryWHOIMCI, true, false),
		outcome(types.CategoryWHOIMCI, false, false),
		outcome(types.CategoryWHOIMCI, false, false),
		outcome(types.CategoryWHOIMCI, false, false),
		outcome(types.CategoryWHOIMCI, false, true),
	}
	m := Tabulate(outcomes)
	if m.TP != 2 || m.FP != 1 || m.TN != 3 || m.FN != 1 {
		t.Errorf("matrix = %+v, want TP=2 FP=1 TN=3 FN=1", m)
	}
	if m.Total() != len(outcomes) {
		t.Errorf("total = %d, want %d", m.Total(), len(outcomes))
	}
}

func TestScore_Metrics(t *testing.T) {
	m := Matrix{TP: 8, FP: 2, TN: 7, FN: 3}
	got, err := m.Score()
	if err != nil {
		t.Fatal(err)
	}
	check := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %.6f, want %.6f", name, got, want)
		}
	}
	check("accuracy", got.Accuracy, 15.0/20.0)
	check("precision", got.Precision, 8.0/10.0)
	check("recall", got.Recall, 8.0/11.0)
	check("specificity", got.Specificity, 7.0/9.0)
	check("f1", got.F1, 2*(8.0/10.0)*(8.0/11.0)/((8.0/10.0)+(8.0/11.0)))
	if got.Accuracy < 0 || got.Accuracy > 1 {
		t.Errorf("accuracy out of range: %f", got.Accuracy)
	}
}

func TestScore_F1ZeroWhenNoTruePositives(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"all true negatives", Matrix{TN: 10}},
		{"false positives only", Matrix{FP: 5, TN: 5}},
		{"false negatives only", Matrix{FN: 5, TN: 5}},
		{"mixed without TP", Matrix{FP: 3, FN: 4, TN: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.m.Score()
			if err != nil {
				t.Fatal(err)
			}
			if got.F1 != 0 {
				t.Errorf("f1 = %f, want 0 when TP=0", got.F1)
			}
		})
	}
}

func TestScore_ZeroDenominatorsDefaultToZero(t *testing.T) {
	got, err := Matrix{FN: 4}.Score()
	if err != nil {
		t.Fatal(err)
	}
	if got.Precision != 0 || got.Specificity != 0 {
		t.Errorf("precision/specificity should default to 0, got %+v", got)
	}
	if got.Recall != 0 {
		t.Errorf("recall = %f, want 0", got.Recall)
	}
}

func TestScore_EmptyIsError(t *testing.T) {
	_, err := Score(nil)
	if !errors.Is(err, ErrNoOutcomes) {
		t.Fatalf("err = %v, want ErrNoOutcomes", err)
	}
}

func TestScoreByCategory_OmitsEmptyCategories(t *testing.T) {
	outcomes := []types.ScenarioOutcome{
		outcome(types.CategoryEmergency, true, true),
		outcome(types.CategoryEmergency, false, true),
		outcome(types.CategoryWHOIMCI, true, true),
	}
	byCategory, err := ScoreByCategory(outcomes)
	if err != nil {
		t.Fatal(err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("got %d categories, want 2", len(byCategory))
	}
	if _, ok := byCategory[types.CategoryMaternalHealth]; ok {
		t.Error("empty category must be omitted, not zero-filled")
	}
	if byCategory[types.CategoryEmergency].Accuracy != 0.5 {
		t.Errorf("emergency accuracy = %f, want 0.5", byCategory[types.CategoryEmergency].Accuracy)
	}
	if byCategory[types.CategoryWHOIMCI].Accuracy != 1 {
		t.Errorf("who_imci accuracy = %f, want 1", byCategory[types.CategoryWHOIMCI].Accuracy)
	}
}

func TestScoreByCategory_RejectsUnknownCategory(t *testing.T) {
	_, err := ScoreByCategory([]types.ScenarioOutcome{outcome("Radiology", true, true)})
	if err == nil {
		t.Fatal("unknown category must fail fast")
	}
}
