package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Cases  int      `json:"cases"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run conformance scenarios",
		Long: `Run YAML query scenarios and check every case against its expected
matches, restatement or error.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  cardsearch test ./scenarios
  cardsearch test ./scenarios --filter "numeric_*"
  cardsearch test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		msg := fmt.Sprintf("scenarios directory not found: %s", scenariosDir)
		formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	files, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	result := TestResult{Scenarios: make([]ScenarioResult, 0, len(files)), Total: len(files)}
	for _, file := range files {
		sr := runScenario(file)
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		writeTestText(cmd, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

// findScenarioFiles returns the .yaml and .yml files under dir, in lexical order.
func findScenarioFiles(dir, filter string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	return files, err
}

func runScenario(file string) ScenarioResult {
	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return ScenarioResult{
			Name:   filepath.Base(file),
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return ScenarioResult{
			Name:   scenario.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	return ScenarioResult{
		Name:   scenario.Name,
		Pass:   result.Pass,
		Cases:  len(result.Cases),
		Errors: result.Errors,
	}
}

func writeTestText(cmd *cobra.Command, result TestResult) {
	w := cmd.OutOrStdout()
	if result.Total == 0 {
		fmt.Fprintln(w, "No scenarios found.")
		return
	}

	for _, sr := range result.Scenarios {
		if sr.Pass {
			fmt.Fprintf(w, "✓ %s (%d cases)\n", sr.Name, sr.Cases)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", sr.Name)
		for _, e := range sr.Errors {
			for _, line := range strings.Split(e, "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
}
