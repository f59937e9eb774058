package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/engine"
	"github.com/roach88/cardsearch/internal/query"
)

// ExplainedClause is one clause of a compiled query in evaluation order.
type ExplainedClause struct {
	Field     string `json:"field"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
	Clause    string `json:"clause"`
	Predicate string `json:"predicate"`
}

// Explanation is the explain command payload.
type Explanation struct {
	Query       string            `json:"query"`
	Description string            `json:"description"`
	Clauses     []ExplainedClause `json:"clauses"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <query...>",
		Short: "Show how a query is parsed and compiled",
		Long: `Parse and compile a query without loading the corpus. Clauses are
listed in evaluation order, cheapest field first, with the predicate each
one compiles to.

Examples:
  cardsearch explain 'dark magician atk>=2000'
  cardsearch explain 't=/dragon|wyrm/' --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(rootOpts, strings.Join(args, " "), cmd)
		},
	}
	return cmd
}

func runExplain(opts *RootOptions, raw string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	raw = strings.TrimSpace(raw)
	q, err := engine.Compile(raw)
	if err != nil {
		return reportQueryError(formatter, err)
	}

	explanation := Explanation{
		Query:       raw,
		Description: q.Describe(),
		Clauses:     make([]ExplainedClause, len(q.Clauses)),
	}
	for i, c := range q.Clauses {
		explanation.Clauses[i] = ExplainedClause{
			Field:     c.Field.String(),
			Operator:  c.Op.String(),
			Value:     query.FormatValue(c.Value, false),
			Clause:    c.String(),
			Predicate: engine.DescribePredicate(q.Predicates[i]),
		}
	}

	if opts.Format == "json" {
		return formatter.Success(explanation)
	}
	writeExplainText(cmd.OutOrStdout(), explanation, q.Explain())
	return nil
}

func writeExplainText(w io.Writer, e Explanation, lines []string) {
	fmt.Fprintf(w, "Query: %s\n", e.Query)
	fmt.Fprintf(w, "Restated: %s\n", e.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clauses (evaluation order):")
	for i, line := range lines {
		fmt.Fprintf(w, "  %d. %s\n", i+1, line)
	}
}
