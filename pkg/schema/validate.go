package schema

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed scenario_outcome.schema.json
var scenarioOutcomeSchema []byte

//go:embed survey_response.schema.json
var surveyResponseSchema []byte

// ValidateScenarioOutcome checks a decoded outcome record against its schema.
// A non-nil string slice lists the violations; nil means the record is valid.
func ValidateScenarioOutcome(doc any) ([]string, error) {
	return validate("scenario_outcome", scenarioOutcomeSchema, doc)
}

// ValidateSurveyResponse checks a decoded survey record against its schema.
func ValidateSurveyResponse(doc any) ([]string, error) {
	return validate("survey_response", surveyResponseSchema, doc)
}

func validate(name string, schemaRaw []byte, doc any) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaRaw)
	docLoader := gojsonschema.NewGoLoader(doc)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", name, err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return errs, nil
}
