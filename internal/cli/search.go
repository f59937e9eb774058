package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/app"
	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/metrics"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Limit   int
	Offset  int
	Metrics bool // dump search metrics to stderr afterwards

	appOpts []app.Option // test hooks
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return newSearchCommand(&SearchOptions{RootOptions: rootOpts})
}

func newSearchCommand(opts *SearchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the corpus",
		Long: `Search the corpus and print matching cards in corpus order.

Arguments are joined with spaces into one query. Each word is either a
field comparison (atk>=2000, a:dark, t=/dragon|wyrm/, l=4|5) or a bare
word matched against card names.

Exit codes:
  0 - Search ran (including searches with no matches)
  1 - Query rejected
  2 - Command error (missing corpus, etc.)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of cards to print (0 = configured cap)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "number of matching cards to skip")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "print search metrics to stderr")

	return cmd
}

func runSearch(opts *SearchOptions, raw string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Limit < 0 || opts.Offset < 0 {
		formatter.Error(ErrCodeInvalidArg, "--limit and --offset must not be negative", nil)
		return NewExitError(ExitCommandError, "invalid paging flags")
	}

	a, err := openApp(cmd, opts.RootOptions, opts.appOpts...)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	defer a.Close()

	formatter.VerboseLog("Loaded %d cards", a.Snapshot().Len())

	resp, err := a.HandleQuery(commandContext(cmd), raw, app.Page{Offset: opts.Offset, Limit: opts.Limit})
	if err != nil {
		return reportQueryError(formatter, err)
	}

	if opts.Format == "json" {
		err = formatter.SuccessWithToken(resp, resp.Token)
	} else {
		writeSearchText(cmd.OutOrStdout(), resp)
	}

	if opts.Metrics {
		if mErr := metrics.WriteText(cmd.ErrOrStderr(), a.Gatherer()); mErr != nil {
			formatter.VerboseLog("failed to write metrics: %v", mErr)
		}
	}
	return err
}

func writeSearchText(w io.Writer, resp *app.Response) {
	fmt.Fprintf(w, "Showing %d of %d results where %s\n", len(resp.Cards), resp.Total, resp.Description)
	if len(resp.Cards) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, c := range resp.Cards {
		fmt.Fprintf(w, "%-10d %s (%s)\n", c.ID, c.Name, typeLine(c))
	}
}

// typeLine is the descriptive type of a card, rebuilt from its kinds when
// the record has no type phrase.
func typeLine(c card.Card) string {
	if c.Type != "" {
		return c.Type
	}
	return strings.Join(c.Kinds, " ")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
