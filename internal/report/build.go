package report

import (
	"github.com/lambdabypi/atlas-eval/internal/clinical"
	"github.com/lambdabypi/atlas-eval/internal/framework"
	"github.com/lambdabypi/atlas-eval/internal/perf"
	"github.com/lambdabypi/atlas-eval/internal/survey"
)

// Metadata identifies one evaluation run. InputDigests maps input names to
// sha256 digests of the files the run consumed.
type Metadata struct {
	RunID        string            `json:"run_id"`
	EvaluatedAt  string            `json:"evaluated_at"`
	AppURL       string            `json:"app_url"`
	InputDigests map[string]string `json:"input_digests,omitempty"`
}

type Conclusions struct {
	OverallAssessment   string            `json:"overall_assessment"`
	KeyAchievements     []string          `json:"key_achievements"`
	PrimaryLimitations  []string          `json:"primary_limitations"`
	ReadinessIndicators map[string]string `json:"readiness_indicators"`
}

type Report struct {
	Metadata             Metadata                             `json:"evaluation_summary"`
	Components           []string                             `json:"evaluation_components"`
	TechnicalPerformance perf.Report                          `json:"technical_performance"`
	ClinicalValidation   clinical.Report                      `json:"clinical_validation"`
	ExpertEvaluation     survey.Analysis                      `json:"expert_evaluation"`
	ThematicAnalysis     map[survey.Theme]survey.ThemeSummary `json:"thematic_analysis"`
	FrameworkAssessment  framework.Report                     `json:"framework_assessment"`
	Conclusions          Conclusions                          `json:"integrated_conclusions"`
}

// Thresholds for deriving qualitative conclusions from already-computed
// scores.
const (
	technicalAchievementScore = 75
	usabilityAchievementMean  = 70
	clinicalAchievementRate   = 0.8
)

// Build composes all scored sections into the integrated report and derives
// conclusions. It performs no new scoring.
func Build(meta Metadata, technical perf.Report, clinicalR clinical.Report, expert survey.Analysis,
	themes map[survey.Theme]survey.ThemeSummary, frameworks framework.Report) Report {
	r := Report{
		Metadata: meta,
		Components: []string{
			"Technical Performance",
			"Clinical Validation",
			"Expert Evaluation",
			"Framework Assessment",
		},
		TechnicalPerformance: technical,
		ClinicalValidation:   clinicalR,
		ExpertEvaluation:     expert,
		ThematicAnalysis:     themes,
		FrameworkAssessment:  frameworks,
	}
	r.Conclusions = deriveConclusions(r)
	return r
}

func deriveConclusions(r Report) Conclusions {
	c := Conclusions{
		KeyAchievements:     []string{},
		PrimaryLimitations:  []string{},
		ReadinessIndicators: map[string]string{},
	}

	if r.TechnicalPerformance.Summary.TotalMetrics > 0 {
		if r.TechnicalPerformance.Summary.OverallScore >= technicalAchievementScore {
			c.KeyAchievements = append(c.KeyAchievements, "Strong technical performance across PWA metrics")
		} else {
			c.PrimaryLimitations = append(c.PrimaryLimitations, "Technical performance below target on one or more PWA metrics")
		}
	}

	if r.ClinicalValidation.OverallMetrics.Accuracy >= clinicalAchievementRate {
		c.KeyAchievements = append(c.KeyAchievements, "Clinical recommendations align with WHO protocols across scenario categories")
	}

	if r.ExpertEvaluation.SUS.Grade != "N/A" {
		if r.ExpertEvaluation.SUS.MeanSUS >= usabilityAchievementMean {
			c.KeyAchievements = append(c.KeyAchievements, "Above-average usability scores from expert evaluation")
		} else {
			c.PrimaryLimitations = append(c.PrimaryLimitations, "Usability scores below the SUS above-average benchmark")
		}
	}

	c.ReadinessIndicators["framework_decision"] = string(r.FrameworkAssessment.Decision)
	c.OverallAssessment = string(r.FrameworkAssessment.Decision)
	return c
}
