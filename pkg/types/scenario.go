package types

type ClinicalCategory string

const (
	CategoryWHOIMCI         ClinicalCategory = "WHO_IMCI"
	CategoryMaternalHealth  ClinicalCategory = "Maternal_Health"
	CategoryGeneralMedicine ClinicalCategory = "General_Medicine"
	CategoryEmergency       ClinicalCategory = "Emergency"
)

func ClinicalCategories() []ClinicalCategory {
	return []ClinicalCategory{
		CategoryWHOIMCI,
		CategoryMaternalHealth,
		CategoryGeneralMedicine,
		CategoryEmergency,
	}
}

func (c ClinicalCategory) Valid() bool {
	switch c {
	case CategoryWHOIMCI, CategoryMaternalHealth, CategoryGeneralMedicine, CategoryEmergency:
		return true
	default:
		return false
	}
}

type ResourceLevel string

const (
	ResourceBasic        ResourceLevel = "basic"
	ResourceIntermediate ResourceLevel = "intermediate"
	ResourceAdvanced     ResourceLevel = "advanced"
)

func ResourceLevels() []ResourceLevel {
	return []ResourceLevel{ResourceBasic, ResourceIntermediate, ResourceAdvanced}
}

func (r ResourceLevel) Valid() bool {
	switch r {
	case ResourceBasic, ResourceIntermediate, ResourceAdvanced:
		return true
	default:
		return false
	}
}

// Scenario is a synthetic clinical test case before it has been run against
// the application.
type Scenario struct {
	ID               string           `json:"id" yaml:"id"`
	Category         ClinicalCategory `json:"category" yaml:"category"`
	PatientAge       string           `json:"patient_age" yaml:"patient_age"`
	Symptoms         string           `json:"symptoms" yaml:"symptoms"`
	ExpectedProtocol string           `json:"expected_protocol" yaml:"expected_protocol"`
	ResourceLevel    ResourceLevel    `json:"resource_level" yaml:"resource_level"`
	CreatedAt        string           `json:"created_at" yaml:"created_at"`
}

// ScenarioOutcome records the result of running one scenario. WHOAligned is
// the predicted label, ExpectedAlignment the expected one; both must be set
// before scoring. Outcomes are immutable once collected.
type ScenarioOutcome struct {
	ScenarioID                string           `json:"scenario_id" yaml:"scenario_id"`
	Category                  ClinicalCategory `json:"category" yaml:"category"`
	ResourceLevel             ResourceLevel    `json:"resource_level" yaml:"resource_level"`
	WHOAligned                bool             `json:"who_aligned" yaml:"who_aligned"`
	ExpectedAlignment         bool             `json:"expected_alignment" yaml:"expected_alignment"`
	AppropriateRecommendation bool             `json:"appropriate_recommendation" yaml:"appropriate_recommendation"`
	ResourceAware             bool             `json:"resource_aware" yaml:"resource_aware"`
	ResponseTimeMS            float64          `json:"response_time_ms,omitempty" yaml:"response_time_ms,omitempty"`
}
