package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Error kinds a case may expect.
const (
	ErrorParse   = "parse"
	ErrorCompile = "compile"
)

// Scenario is a named set of queries run against one corpus.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario covers.
	Description string `yaml:"description"`

	// Cards and Sets locate the corpus documents, relative to the scenario file.
	Cards string `yaml:"cards"`
	Sets  string `yaml:"sets"`

	// Workers sets the scan parallelism. Zero scans inline.
	Workers int `yaml:"workers,omitempty"`

	// QueryToken is the correlation token attached to every logged query.
	// Defaults to "test-query-default".
	QueryToken string `yaml:"query_token,omitempty"`

	Cases []Case `yaml:"cases"`
}

// Case is one query and its expected outcome.
type Case struct {
	Query string `yaml:"query"`

	// Expect lists matching ids in corpus order.
	Expect []int `yaml:"expect,omitempty"`

	// Describe is the expected restatement. Not checked when empty.
	Describe string `yaml:"describe,omitempty"`

	// Error is "parse" or "compile" when the query must be rejected.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and validates a scenario file.
// Unknown keys are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	scenario.Cards = resolve(base, scenario.Cards)
	scenario.Sets = resolve(base, scenario.Sets)

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Cards == "" {
		return fmt.Errorf("cards path is required")
	}
	if s.Sets == "" {
		return fmt.Errorf("sets path is required")
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		switch c.Error {
		case "", ErrorParse, ErrorCompile:
		default:
			return fmt.Errorf("cases[%d]: unknown error kind %q (want %q or %q)", i, c.Error, ErrorParse, ErrorCompile)
		}
		if c.Error != "" && len(c.Expect) > 0 {
			return fmt.Errorf("cases[%d]: expect and error are mutually exclusive", i)
		}
	}
	return nil
}
