package input

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lambdabypi/atlas-eval/pkg/types"
	"gopkg.in/yaml.v3"
)

// EvaluationConfig is the top-level input file for one evaluation run.
// Performance metrics and framework assessments are inline; scenario outcomes
// and survey responses are referenced by path and may be empty.
type EvaluationConfig struct {
	AppURL             string             `yaml:"app_url"`
	PerformanceMetrics map[string]float64 `yaml:"performance_metrics"`
	ScenarioOutcomes   string             `yaml:"scenario_outcomes"`
	SurveyResponses    string             `yaml:"survey_responses"`
	NASSS              map[string]float64 `yaml:"nasss"`
	REAIM              map[string]float64 `yaml:"reaim"`
}

func Load(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse input %s: %w", path, err)
	}
	return nil
}

// LoadEvaluationConfig reads the run config and resolves referenced files
// relative to the config's directory.
func LoadEvaluationConfig(path string) (EvaluationConfig, error) {
	var cfg EvaluationConfig
	if err := Load(path, &cfg); err != nil {
		return EvaluationConfig{}, err
	}
	cfg.ScenarioOutcomes = resolvePath(path, cfg.ScenarioOutcomes)
	cfg.SurveyResponses = resolvePath(path, cfg.SurveyResponses)
	return cfg, nil
}

func resolvePath(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

// Metrics converts the string-keyed metric map to the closed vocabulary,
// rejecting unknown names instead of dropping them downstream.
func (c EvaluationConfig) Metrics() (map[types.MetricName]float64, error) {
	out := make(map[types.MetricName]float64, len(c.PerformanceMetrics))
	for name, value := range c.PerformanceMetrics {
		m := types.MetricName(name)
		if !m.Valid() {
			return nil, fmt.Errorf("unknown performance metric %q", name)
		}
		out[m] = value
	}
	return out, nil
}

// NASSSScores converts the string-keyed assessment to the closed domain
// vocabulary.
func (c EvaluationConfig) NASSSScores() (map[types.NASSSDomain]float64, error) {
	out := make(map[types.NASSSDomain]float64, len(c.NASSS))
	for name, value := range c.NASSS {
		d := types.NASSSDomain(name)
		if !d.Valid() {
			return nil, fmt.Errorf("unknown NASSS domain %q", name)
		}
		out[d] = value
	}
	return out, nil
}

// REAIMScores converts the string-keyed assessment to the closed dimension
// vocabulary.
func (c EvaluationConfig) REAIMScores() (map[types.REAIMDimension]float64, error) {
	out := make(map[types.REAIMDimension]float64, len(c.REAIM))
	for name, value := range c.REAIM {
		d := types.REAIMDimension(name)
		if !d.Valid() {
			return nil, fmt.Errorf("unknown RE-AIM dimension %q", name)
		}
		out[d] = value
	}
	return out, nil
}
