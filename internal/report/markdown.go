package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

func BuildMarkdown(r Report) string {
	var b strings.Builder
	b.WriteString("# ATLAS Evaluation Report\n\n")
	b.WriteString(fmt.Sprintf("- Run ID: `%s`\n", r.Metadata.RunID))
	b.WriteString(fmt.Sprintf("- Evaluated At: `%s`\n", r.Metadata.EvaluatedAt))
	b.WriteString(fmt.Sprintf("- App: %s\n", r.Metadata.AppURL))
	b.WriteString(fmt.Sprintf("- Readiness Decision: **%s**\n\n", r.FrameworkAssessment.Decision))

	b.WriteString("## Technical Performance\n\n")
	b.WriteString(fmt.Sprintf("Targets met: `%d/%d` (overall score %.1f)\n\n",
		r.TechnicalPerformance.Summary.TargetsMet,
		r.TechnicalPerformance.Summary.TotalMetrics,
		r.TechnicalPerformance.Summary.OverallScore))
	b.WriteString("| Metric | Actual | Target | Meets | Variance % |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, name := range types.MetricNames() {
		c, ok := r.TechnicalPerformance.Metrics[name]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %t | %.2f |\n",
			name, c.Actual, c.Target, c.MeetsTarget, c.VariancePercent))
	}

	b.WriteString("\n## Clinical Validation\n\n")
	m := r.ClinicalValidation.OverallMetrics
	b.WriteString(fmt.Sprintf("Accuracy `%.3f`, precision `%.3f`, recall `%.3f`, specificity `%.3f`, F1 `%.3f`\n\n",
		m.Accuracy, m.Precision, m.Recall, m.Specificity, m.F1))
	b.WriteString("| Category | Cases | WHO Aligned % | Appropriate % | Resource Aware % |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, category := range types.ClinicalCategories() {
		a, ok := r.ClinicalValidation.Alignment[category]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("| %s | %d | %.1f | %.1f | %.1f |\n",
			category, a.TotalCases, a.AlignmentPercent, a.AppropriatenessPercent, a.ResourceAwarenessPercent))
	}

	b.WriteString("\n## Expert Evaluation\n\n")
	b.WriteString(fmt.Sprintf("- Experts: `%d`\n", r.ExpertEvaluation.ResponseSummary.TotalExperts))
	b.WriteString(fmt.Sprintf("- Mean SUS: `%.1f` (grade **%s**)\n", r.ExpertEvaluation.SUS.MeanSUS, r.ExpertEvaluation.SUS.Grade))
	if note := r.ExpertEvaluation.ResponseSummary.Note; note != "" {
		b.WriteString(fmt.Sprintf("- Note: %s\n", note))
	}

	b.WriteString("\n## Framework Assessment\n\n")
	b.WriteString("| NASSS Domain | Score | Complexity |\n")
	b.WriteString("|---|---:|---|\n")
	for _, domain := range types.NASSSDomains() {
		ds, ok := r.FrameworkAssessment.NASSS.Domains[domain]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n", domain, ds.Score, ds.Level))
	}
	overallN := r.FrameworkAssessment.NASSS.Overall
	b.WriteString(fmt.Sprintf("| overall | %.2f | %s |\n", overallN.Score, overallN.Level))

	b.WriteString("\n| RE-AIM Dimension | Score | Readiness |\n")
	b.WriteString("|---|---:|---|\n")
	for _, dimension := range types.REAIMDimensions() {
		ds, ok := r.FrameworkAssessment.REAIM.Dimensions[dimension]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n", dimension, ds.Score, ds.Level))
	}
	overallR := r.FrameworkAssessment.REAIM.Overall
	b.WriteString(fmt.Sprintf("| overall | %.2f | %s |\n", overallR.Score, overallR.Level))

	if len(r.FrameworkAssessment.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, rec := range r.FrameworkAssessment.Recommendations {
			b.WriteString("- " + rec + "\n")
		}
	}

	b.WriteString("\n## Conclusions\n\n")
	if len(r.Conclusions.KeyAchievements) > 0 {
		b.WriteString("Key achievements:\n")
		for _, a := range r.Conclusions.KeyAchievements {
			b.WriteString("- " + a + "\n")
		}
	}
	if len(r.Conclusions.PrimaryLimitations) > 0 {
		b.WriteString("\nPrimary limitations:\n")
		for _, l := range r.Conclusions.PrimaryLimitations {
			b.WriteString("- " + l + "\n")
		}
	}

	return b.String()
}

func WriteMarkdown(path string, r Report) error {
	return os.WriteFile(path, []byte(BuildMarkdown(r)), 0o644)
}
