package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/lambdabypi/atlas-eval/pkg/schema"
	"github.com/lambdabypi/atlas-eval/pkg/types"
	"gopkg.in/yaml.v3"
)

// LoadScenarioOutcomes reads a YAML list of outcome records. Every record is
// schema-checked before decoding; a malformed record fails the whole load
// since silently coercing clinical labels would mask errors.
func LoadScenarioOutcomes(path string) ([]types.ScenarioOutcome, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outcomes %s: %w", path, err)
	}
	var docs []map[string]any
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse outcomes %s: %w", path, err)
	}
	for i, doc := range docs {
		violations, err := schema.ValidateScenarioOutcome(doc)
		if err != nil {
			return nil, err
		}
		if len(violations) > 0 {
			return nil, fmt.Errorf("outcomes %s: record %d: %s", path, i, strings.Join(violations, "; "))
		}
	}
	var out []types.ScenarioOutcome
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode outcomes %s: %w", path, err)
	}
	return out, nil
}

// LoadSurveyResponses reads a YAML list of survey records with the same
// validate-then-decode policy.
func LoadSurveyResponses(path string) ([]types.SurveyResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read surveys %s: %w", path, err)
	}
	var docs []map[string]any
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse surveys %s: %w", path, err)
	}
	for i, doc := range docs {
		violations, err := schema.ValidateSurveyResponse(doc)
		if err != nil {
			return nil, err
		}
		if len(violations) > 0 {
			return nil, fmt.Errorf("surveys %s: record %d: %s", path, i, strings.Join(violations, "; "))
		}
	}
	var out []types.SurveyResponse
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode surveys %s: %w", path, err)
	}
	return out, nil
}
