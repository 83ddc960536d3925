package survey

import (
	"strings"

	"github.com/lambdabypi/atlas-eval/pkg/types"
)

type Theme string

const (
	ThemeUsability          Theme = "usability"
	ThemeClinicalSafety     Theme = "clinical_safety"
	ThemeTechnicalIssues    Theme = "technical_issues"
	ThemeDeploymentConcerns Theme = "deployment_concerns"
	ThemePositiveFeedback   Theme = "positive_feedback"
	ThemeNegativeFeedback   Theme = "negative_feedback"
)

func Themes() []Theme {
	return []Theme{
		ThemeUsability,
		ThemeClinicalSafety,
		ThemeTechnicalIssues,
		ThemeDeploymentConcerns,
		ThemePositiveFeedback,
		ThemeNegativeFeedback,
	}
}

var themeKeywords = map[Theme][]string{
	ThemeUsability:          {"easy", "intuitive", "user-friendly", "simple", "complex", "difficult"},
	ThemeClinicalSafety:     {"safe", "dangerous", "risk", "accurate", "error", "mistake"},
	ThemeTechnicalIssues:    {"bug", "crash", "slow", "fast", "reliable", "unstable"},
	ThemeDeploymentConcerns: {"training", "cost", "infrastructure", "support", "maintenance"},
	ThemePositiveFeedback:   {"excellent", "good", "helpful", "useful", "valuable"},
	ThemeNegativeFeedback:   {"poor", "bad", "problematic", "concerning", "inadequate"},
}

const maxExamples = 3
const exampleRunes = 100

type ThemeSummary struct {
	Mentions int      `json:"mentions"`
	Examples []string `json:"examples"`
}

// Tag classifies free-text comments into the fixed theme taxonomy by
// case-insensitive keyword match. A comment counts at most once per theme but
// may land in several themes. Empty comments are skipped. The first three
// matching comments per theme are kept as truncated examples, in encounter
// order.
func Tag(comments []string) map[Theme]ThemeSummary {
	out := make(map[Theme]ThemeSummary, len(themeKeywords))
	for _, theme := range Themes() {
		summary := ThemeSummary{Examples: []string{}}
		keywords := themeKeywords[theme]
		for _, comment := range comments {
			if comment == "" {
				continue
			}
			lower := strings.ToLower(comment)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					summary.Mentions++
					if len(summary.Examples) < maxExamples {
						summary.Examples = append(summary.Examples, excerpt(comment))
					}
					break
				}
			}
		}
		out[theme] = summary
	}
	return out
}

// CollectComments flattens expert comments in response order, then section
// order within each response. Absent sections are skipped.
func CollectComments(responses []types.SurveyResponse) []string {
	out := make([]string, 0)
	for _, r := range responses {
		for _, section := range types.SurveySections() {
			if c, ok := r.Comments[section]; ok && c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

func excerpt(comment string) string {
	runes := []rune(comment)
	if len(runes) > exampleRunes {
		runes = runes[:exampleRunes]
	}
	return string(runes) + "..."
}
