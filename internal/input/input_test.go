package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleConfig = `app_url: https://atlas-clinical.example.org/
performance_metrics:
  pwa_score: 85
  performance_score: 78
scenario_outcomes: outcomes.yaml
survey_responses: surveys.yaml
nasss:
  technology: 2.5
  organization: 4.0
reaim:
  reach: 7.0
  adoption: 5.0
`

func TestLoadEvaluationConfig_ResolvesPaths(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "evaluation.yaml", sampleConfig)

	cfg, err := LoadEvaluationConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AppURL != "https://atlas-clinical.example.org/" {
		t.Errorf("app_url = %q", cfg.AppURL)
	}
	if cfg.ScenarioOutcomes != filepath.Join(tmp, "outcomes.yaml") {
		t.Errorf("outcomes path = %q, want resolved relative to config", cfg.ScenarioOutcomes)
	}

	metrics, err := cfg.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	if metrics[types.MetricPWAScore] != 85 {
		t.Errorf("pwa_score = %f", metrics[types.MetricPWAScore])
	}
	nasss, err := cfg.NASSSScores()
	if err != nil {
		t.Fatal(err)
	}
	if nasss[types.DomainOrganization] != 4.0 {
		t.Errorf("organization = %f", nasss[types.DomainOrganization])
	}
	reaim, err := cfg.REAIMScores()
	if err != nil {
		t.Fatal(err)
	}
	if reaim[types.DimensionReach] != 7.0 {
		t.Errorf("reach = %f", reaim[types.DimensionReach])
	}
}

func TestEvaluationConfig_RejectsUnknownVocabulary(t *testing.T) {
	cfg := EvaluationConfig{
		PerformanceMetrics: map[string]float64{"seo_score": 90},
		NASSS:              map[string]float64{"velocity": 3},
		REAIM:              map[string]float64{"virality": 5},
	}
	if _, err := cfg.Metrics(); err == nil {
		t.Error("unknown metric must be rejected")
	}
	if _, err := cfg.NASSSScores(); err == nil {
		t.Error("unknown NASSS domain must be rejected")
	}
	if _, err := cfg.REAIMScores(); err == nil {
		t.Error("unknown RE-AIM dimension must be rejected")
	}
}

const sampleOutcomes = `- scenario_id: s-1
  category: WHO_IMCI
  resource_level: basic
  who_aligned: true
  expected_alignment: true
  appropriate_recommendation: true
  resource_aware: true
- scenario_id: s-2
  category: Emergency
  resource_level: advanced
  who_aligned: false
  expected_alignment: true
`

func TestLoadScenarioOutcomes(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "outcomes.yaml", sampleOutcomes)
	outcomes, err := LoadScenarioOutcomes(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("len = %d, want 2", len(outcomes))
	}
	if outcomes[0].Category != types.CategoryWHOIMCI || !outcomes[0].WHOAligned {
		t.Errorf("first outcome = %+v", outcomes[0])
	}
	if outcomes[1].WHOAligned || !outcomes[1].ExpectedAlignment {
		t.Errorf("second outcome = %+v", outcomes[1])
	}
}

func TestLoadScenarioOutcomes_RejectsMalformedLabel(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "outcomes.yaml", `- scenario_id: s-1
  category: WHO_IMCI
  resource_level: basic
  who_aligned: "yes"
  expected_alignment: true
`)
	_, err := LoadScenarioOutcomes(path)
	if err == nil {
		t.Fatal("string label must fail the load")
	}
	if !strings.Contains(err.Error(), "record 0") {
		t.Errorf("error should identify the record: %v", err)
	}
}

const sampleSurveys = `- expert_id: e1
  expert_type: Clinical
  years_experience: 12
  resource_limited_experience: true
  usability_score: 82.5
  comments:
    overall_assessment: Intuitive but slow on older devices
- expert_id: e2
  expert_type: Digital Health
  years_experience: 6
  resource_limited_experience: false
`

func TestLoadSurveyResponses(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "surveys.yaml", sampleSurveys)
	responses, err := LoadSurveyResponses(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(responses) != 2 {
		t.Fatalf("len = %d, want 2", len(responses))
	}
	if responses[0].UsabilityScore == nil || *responses[0].UsabilityScore != 82.5 {
		t.Errorf("usability = %v", responses[0].UsabilityScore)
	}
	if responses[1].UsabilityScore != nil {
		t.Error("absent usability score must decode as nil")
	}
	if responses[0].Comments[types.SectionOverallAssessment] == "" {
		t.Error("comment missing")
	}
}

func TestLoadSurveyResponses_RejectsOutOfRangeSUS(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "surveys.yaml", `- expert_id: e1
  expert_type: Clinical
  usability_score: 140
`)
	if _, err := LoadSurveyResponses(path); err == nil {
		t.Fatal("out-of-range SUS score must fail the load")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg EvaluationConfig
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Fatal("missing file must error")
	}
}
