package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lambdabypi/atlas-eval/internal/clinical"
	"github.com/lambdabypi/atlas-eval/internal/framework"
	"github.com/lambdabypi/atlas-eval/internal/perf"
	"github.com/lambdabypi/atlas-eval/internal/survey"
	"github.com/lambdabypi/atlas-eval/pkg/types"
)

func sampleReport(t *testing.T) Report {
	t.Helper()

	technical, err := perf.Analyze(perf.Observe(map[types.MetricName]float64{
		types.MetricPWAScore:             85,
		types.MetricPerformanceScore:     78,
		types.MetricFirstContentfulPaint: 1.8,
		types.MetricTimeToInteractive:    2.4,
	}))
	if err != nil {
		t.Fatal(err)
	}

	outcomes := []types.ScenarioOutcome{
		{ScenarioID: "s1", Category: types.CategoryWHOIMCI, WHOAligned: true, ExpectedAlignment: true, AppropriateRecommendation: true, ResourceAware: true},
		{ScenarioID: "s2", Category: types.CategoryWHOIMCI, WHOAligned: true, ExpectedAlignment: true},
		{ScenarioID: "s3", Category: types.CategoryEmergency, WHOAligned: true, ExpectedAlignment: true},
		{ScenarioID: "s4", Category: types.CategoryEmergency, WHOAligned: false, ExpectedAlignment: true},
	}
	clinicalR, err := clinical.Analyze(outcomes)
	if err != nil {
		t.Fatal(err)
	}

	susA, susB := 78.0, 82.0
	responses := []types.SurveyResponse{
		{ExpertID: "e1", ExpertType: "Clinical", YearsExperience: 10, UsabilityScore: &susA,
			Comments: map[types.SurveySection]string{types.SectionOverallAssessment: "Intuitive but slow on older devices"}},
		{ExpertID: "e2", ExpertType: "Global Health", YearsExperience: 8, UsabilityScore: &susB},
	}
	expert := survey.Summarize(responses)
	themes := survey.Tag(survey.CollectComments(responses))

	frameworks, err := framework.Assess(
		map[types.NASSSDomain]float64{
			types.DomainTechnology:   2.5,
			types.DomainOrganization: 4.0,
			types.DomainAdaptation:   2.0,
		},
		map[types.REAIMDimension]float64{
			types.DimensionReach:          7.0,
			types.DimensionAdoption:       4.0,
			types.DimensionImplementation: 5.0,
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	meta := Metadata{
		RunID:       "run-1",
		EvaluatedAt: "2026-02-11T10:00:00Z",
		AppURL:      "https://atlas-clinical.example.org/",
	}
	return Build(meta, technical, clinicalR, expert, themes, frameworks)
}

func TestBuild_Conclusions(t *testing.T) {
	r := sampleReport(t)

	achievements := strings.Join(r.Conclusions.KeyAchievements, "\n")
	if !strings.Contains(achievements, "usability") {
		t.Errorf("mean SUS 80 should register a usability achievement: %v", r.Conclusions.KeyAchievements)
	}
	// only 2 of 4 targets met, overall 50 < 75
	limitations := strings.Join(r.Conclusions.PrimaryLimitations, "\n")
	if !strings.Contains(limitations, "Technical performance") {
		t.Errorf("expected technical limitation, got %v", r.Conclusions.PrimaryLimitations)
	}
	if r.Conclusions.ReadinessIndicators["framework_decision"] != string(r.FrameworkAssessment.Decision) {
		t.Error("framework decision not surfaced in readiness indicators")
	}
}

func TestBuild_ClinicalAchievementThreshold(t *testing.T) {
	r := sampleReport(t)
	// accuracy is exactly 0.75, below the 0.8 bar
	if r.ClinicalValidation.OverallMetrics.Accuracy != 0.75 {
		t.Fatalf("fixture accuracy = %f", r.ClinicalValidation.OverallMetrics.Accuracy)
	}
	for _, a := range r.Conclusions.KeyAchievements {
		if strings.Contains(a, "WHO protocols") {
			t.Error("clinical achievement should require accuracy >= 0.8")
		}
	}
}

func TestBuild_EmptySurveyStillReports(t *testing.T) {
	r := sampleReport(t)
	r.ExpertEvaluation = survey.Summarize(nil)
	c := deriveConclusions(r)
	for _, item := range append(c.KeyAchievements, c.PrimaryLimitations...) {
		if strings.Contains(item, "sability") {
			t.Errorf("no usability conclusion should be drawn without SUS data: %q", item)
		}
	}
}

func TestBuildMarkdown_Sections(t *testing.T) {
	md := BuildMarkdown(sampleReport(t))

	for _, want := range []string{
		"# ATLAS Evaluation Report",
		"Run ID: `run-1`",
		"## Technical Performance",
		"pwa_score",
		"## Clinical Validation",
		"WHO_IMCI",
		"## Expert Evaluation",
		"Mean SUS: `80.0` (grade **B**)",
		"## Framework Assessment",
		"organization",
		"## Recommendations",
		"Address high complexity in organization",
		"## Conclusions",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if !strings.Contains(md, "Readiness Decision: **"+string(types.DecisionWithModifications)+"**") {
		t.Errorf("markdown missing decision header")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "atlas_evaluation_report.json")
	r := sampleReport(t)
	if err := WriteJSON(path, r); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Report
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Metadata.RunID != "run-1" {
		t.Errorf("run_id = %q", back.Metadata.RunID)
	}
	if back.FrameworkAssessment.Decision != r.FrameworkAssessment.Decision {
		t.Error("decision lost in round trip")
	}
}

func TestWriteCSVs(t *testing.T) {
	tmp := t.TempDir()
	paths, err := WriteCSVs(tmp, sampleReport(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 4 {
		t.Fatalf("wrote %d files, want 4: %v", len(paths), paths)
	}
	raw, err := os.ReadFile(filepath.Join(tmp, "nasss_assessment.csv"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	if !strings.HasPrefix(content, "domain,score,complexity_level") {
		t.Errorf("missing header: %s", content)
	}
	if !strings.Contains(content, "organization,4,Complex") {
		t.Errorf("missing organization row: %s", content)
	}
	if !strings.Contains(content, "overall,") {
		t.Errorf("missing overall row: %s", content)
	}
}

func TestWriteCSVs_SkipsEmptySections(t *testing.T) {
	r := sampleReport(t)
	r.TechnicalPerformance = perf.Report{}
	paths, err := WriteCSVs(t.TempDir(), r)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range paths {
		if strings.Contains(p, "performance_metrics") {
			t.Error("empty performance section should not produce a CSV")
		}
	}
}
