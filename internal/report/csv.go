package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// WriteCSVs exports one flat table per scored section into dir and returns
// the written paths. Sections without data are skipped.
func WriteCSVs(dir string, r Report) ([]string, error) {
	written := make([]string, 0, 4)

	if len(r.TechnicalPerformance.Metrics) > 0 {
		rows := [][]string{{"metric", "actual", "target", "meets_target", "variance_percent"}}
		for _, name := range types.MetricNames() {
			c, ok := r.TechnicalPerformance.Metrics[name]
			if !ok {
				continue
			}
			rows = append(rows, []string{
				string(name),
				fmt.Sprintf("%g", c.Actual),
				fmt.Sprintf("%g", c.Target),
				fmt.Sprintf("%t", c.MeetsTarget),
				fmt.Sprintf("%.4f", c.VariancePercent),
			})
		}
		path, err := writeCSV(dir, "performance_metrics.csv", rows)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	if len(r.ClinicalValidation.Alignment) > 0 {
		rows := [][]string{{"category", "total_cases", "alignment_percentage", "appropriateness_percentage", "resource_awareness_percentage"}}
		for _, category := range types.ClinicalCategories() {
			a, ok := r.ClinicalValidation.Alignment[category]
			if !ok {
				continue
			}
			rows = append(rows, []string{
				string(category),
				fmt.Sprintf("%d", a.TotalCases),
				fmt.Sprintf("%.2f", a.AlignmentPercent),
				fmt.Sprintf("%.2f", a.AppropriatenessPercent),
				fmt.Sprintf("%.2f", a.ResourceAwarenessPercent),
			})
		}
		path, err := writeCSV(dir, "clinical_validation_results.csv", rows)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	if len(r.FrameworkAssessment.NASSS.Domains) > 0 {
		rows := [][]string{{"domain", "score", "complexity_level"}}
		for _, domain := range types.NASSSDomains() {
			ds, ok := r.FrameworkAssessment.NASSS.Domains[domain]
			if !ok {
				continue
			}
			rows = append(rows, []string{string(domain), fmt.Sprintf("%g", ds.Score), string(ds.Level)})
		}
		overall := r.FrameworkAssessment.NASSS.Overall
		rows = append(rows, []string{"overall", fmt.Sprintf("%.4f", overall.Score), string(overall.Level)})
		path, err := writeCSV(dir, "nasss_assessment.csv", rows)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	if len(r.FrameworkAssessment.REAIM.Dimensions) > 0 {
		rows := [][]string{{"dimension", "score", "readiness_level"}}
		for _, dimension := range types.REAIMDimensions() {
			ds, ok := r.FrameworkAssessment.REAIM.Dimensions[dimension]
			if !ok {
				continue
			}
			rows = append(rows, []string{string(dimension), fmt.Sprintf("%g", ds.Score), string(ds.Level)})
		}
		overall := r.FrameworkAssessment.REAIM.Overall
		rows = append(rows, []string{"overall", fmt.Sprintf("%.4f", overall.Score), string(overall.Level)})
		path, err := writeCSV(dir, "reaim_assessment.csv", rows)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeCSV(dir, name string, rows [][]string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
