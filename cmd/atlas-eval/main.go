package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lambdabypi/atlas-eval/internal/clinical"
	"github.com/lambdabypi/atlas-eval/internal/framework"
	"github.com/lambdabypi/atlas-eval/internal/hash"
	"github.com/lambdabypi/atlas-eval/internal/input"
	"github.com/lambdabypi/atlas-eval/internal/perf"
	"github.com/lambdabypi/atlas-eval/internal/report"
	"github.com/lambdabypi/atlas-eval/internal/store"
	"github.com/lambdabypi/atlas-eval/internal/survey"
	"github.com/lambdabypi/atlas-eval/pkg/types"
)

// Gate exit codes when --gate is set.
const (
	exitWithModifications = 3
	exitNeedsDevelopment  = 4
)

type cliError struct {
	code int
	err  error
}

func (e cliError) Error() string { return e.err.Error() }

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		var ce cliError
		if errors.As(err, &ce) {
			fmt.Fprintln(os.Stderr, ce.err)
			os.Exit(ce.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "atlas-eval",
		Short: "ATLAS evaluation scoring and readiness CLI",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// optional .env for ATLAS_APP_URL / ATLAS_RESULTS_DIR
			_ = godotenv.Load()
		},
	}
	root.AddCommand(newInitCommand())
	root.AddCommand(newScenariosCommand())
	root.AddCommand(newEvaluateCommand())
	return root
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed an evaluation config and example inputs",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := store.EnsureResultsDir(os.Getenv("ATLAS_RESULTS_DIR")); err != nil {
				return err
			}
			seeds := []struct {
				name    string
				content string
			}{
				{"evaluation.yaml", defaultEvaluationYAML},
				{"outcomes.yaml", defaultOutcomesYAML},
				{"surveys.yaml", defaultSurveysYAML},
			}
			for _, s := range seeds {
				if fileExists(s.name) {
					continue
				}
				if err := os.WriteFile(s.name, []byte(s.content), 0o644); err != nil {
					return err
				}
			}
			fmt.Println("initialized evaluation config and example inputs")
			return nil
		},
	}
}

func newScenariosCommand() *cobra.Command {
	scenariosCmd := &cobra.Command{Use: "scenarios", Short: "Synthetic clinical scenarios"}

	var count int
	var seed int64
	var outPath string

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic clinical test scenarios",
		RunE: func(_ *cobra.Command, _ []string) error {
			scenarios := clinical.GenerateScenarios(count, seed)
			raw, err := yaml.Marshal(scenarios)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return err
			}
			fmt.Printf("generated %d scenarios in %s\n", len(scenarios), outPath)
			return nil
		},
	}
	generateCmd.Flags().IntVar(&count, "count", 25, "scenarios per clinical category")
	generateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for resource level assignment")
	generateCmd.Flags().StringVar(&outPath, "out", "test_scenarios.yaml", "output file")

	scenariosCmd.AddCommand(generateCmd)
	return scenariosCmd
}

func newEvaluateCommand() *cobra.Command {
	var configPath, outDir string
	var gate bool

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the full scoring pipeline and write the readiness report",
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger()

			cfg, err := input.LoadEvaluationConfig(configPath)
			if err != nil {
				return err
			}
			appURL := cfg.AppURL
			if appURL == "" {
				appURL = os.Getenv("ATLAS_APP_URL")
			}

			digests, err := hash.DigestInputs(map[string]string{
				"evaluation_config": configPath,
				"scenario_outcomes": cfg.ScenarioOutcomes,
				"survey_responses":  cfg.SurveyResponses,
			})
			if err != nil {
				return err
			}

			log.Info().Str("config", configPath).Msg("scoring technical performance")
			measured, err := cfg.Metrics()
			if err != nil {
				return err
			}
			technical, err := perf.Analyze(perf.Observe(measured))
			if err != nil {
				return err
			}

			log.Info().Msg("scoring clinical validation")
			clinicalR, err := loadAndScoreOutcomes(log, cfg.ScenarioOutcomes)
			if err != nil {
				return err
			}

			log.Info().Msg("aggregating expert evaluation")
			surveyRecords, err := loadSurveys(log, cfg.SurveyResponses)
			if err != nil {
				return err
			}
			expert := survey.Summarize(surveyRecords)
			themes := survey.Tag(survey.CollectComments(surveyRecords))

			log.Info().Msg("assessing implementation frameworks")
			nasss, err := cfg.NASSSScores()
			if err != nil {
				return err
			}
			reaim, err := cfg.REAIMScores()
			if err != nil {
				return err
			}
			frameworks, err := framework.Assess(nasss, reaim)
			if err != nil {
				return err
			}

			meta := report.Metadata{
				RunID:        uuid.NewString(),
				EvaluatedAt:  time.Now().UTC().Format(time.RFC3339),
				AppURL:       appURL,
				InputDigests: digests,
			}
			integrated := report.Build(meta, technical, clinicalR, expert, themes, frameworks)

			dir, err := store.EnsureResultsDir(outDir)
			if err != nil {
				return err
			}
			if err := report.WriteJSON(filepath.Join(dir, "atlas_evaluation_report.json"), integrated); err != nil {
				return err
			}
			if err := report.WriteMarkdown(filepath.Join(dir, "atlas_evaluation_report.md"), integrated); err != nil {
				return err
			}
			if _, err := report.WriteCSVs(dir, integrated); err != nil {
				return err
			}
			log.Info().Str("dir", dir).Msg("evaluation report written")

			fmt.Println(frameworks.Decision)
			if gate {
				switch frameworks.Decision {
				case types.DecisionWithModifications:
					return cliError{code: exitWithModifications, err: errors.New("gate: ready with modifications")}
				case types.DecisionNeedsDevelopment:
					return cliError{code: exitNeedsDevelopment, err: errors.New("gate: requires significant development")}
				}
			}
			return nil
		},
	}
	evaluateCmd.Flags().StringVar(&configPath, "config", "evaluation.yaml", "evaluation input file")
	evaluateCmd.Flags().StringVar(&outDir, "out-dir", os.Getenv("ATLAS_RESULTS_DIR"), "results directory")
	evaluateCmd.Flags().BoolVar(&gate, "gate", false, "exit nonzero unless ready for pilot")
	return evaluateCmd
}

func loadAndScoreOutcomes(log zerolog.Logger, path string) (clinical.Report, error) {
	if path == "" {
		log.Warn().Msg("no scenario outcomes provided, clinical section will be empty")
		return emptyClinicalReport(), nil
	}
	outcomes, err := input.LoadScenarioOutcomes(path)
	if err != nil {
		return clinical.Report{}, err
	}
	if len(outcomes) == 0 {
		log.Warn().Str("path", path).Msg("outcome file is empty, clinical section will be empty")
		return emptyClinicalReport(), nil
	}
	return clinical.Analyze(outcomes)
}

func emptyClinicalReport() clinical.Report {
	return clinical.Report{
		Alignment:         map[types.ClinicalCategory]clinical.CategoryAlignment{},
		MetricsByCategory: map[types.ClinicalCategory]clinical.Metrics{},
	}
}

func loadSurveys(log zerolog.Logger, path string) ([]types.SurveyResponse, error) {
	if path == "" {
		log.Warn().Msg("no survey responses provided, expert section will use the empty-data summary")
		return nil, nil
	}
	return input.LoadSurveyResponses(path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
