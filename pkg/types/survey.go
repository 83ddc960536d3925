package types

type SurveySection string

const (
	SectionClinicalAppropriateness   SurveySection = "clinical_appropriateness"
	SectionTechnicalImplementation   SurveySection = "technical_implementation"
	SectionImplementationFeasibility SurveySection = "implementation_feasibility"
	SectionOverallAssessment         SurveySection = "overall_assessment"
)

func SurveySections() []SurveySection {
	return []SurveySection{
		SectionClinicalAppropriateness,
		SectionTechnicalImplementation,
		SectionImplementationFeasibility,
		SectionOverallAssessment,
	}
}

func (s SurveySection) Valid() bool {
	switch s {
	case SectionClinicalAppropriateness, SectionTechnicalImplementation,
		SectionImplementationFeasibility, SectionOverallAssessment:
		return true
	default:
		return false
	}
}

// SurveyResponse is one expert's structured evaluation. SectionScores are
// 1-10 Likert items keyed by section. UsabilityScore is the 0-100 SUS score;
// nil means the expert skipped the SUS instrument, which is excluded from the
// usability aggregate rather than counted as zero.
type SurveyResponse struct {
	ExpertID                  string                   `json:"expert_id" yaml:"expert_id"`
	ExpertType                string                   `json:"expert_type" yaml:"expert_type"`
	YearsExperience           float64                  `json:"years_experience" yaml:"years_experience"`
	ResourceLimitedExperience bool                     `json:"resource_limited_experience" yaml:"resource_limited_experience"`
	SectionScores             map[SurveySection]int    `json:"section_scores,omitempty" yaml:"section_scores,omitempty"`
	UsabilityScore            *float64                 `json:"usability_score,omitempty" yaml:"usability_score,omitempty"`
	Comments                  map[SurveySection]string `json:"comments,omitempty" yaml:"comments,omitempty"`
}
