package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/config"
	"github.com/roach88/cardsearch/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Corpus location overrides. Empty means the configured value.
	CardsPath string
	SetsPath  string
	DBPath    string

	// Config is the base configuration. Nil means read it from the environment.
	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cardsearch CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cardsearch",
		Short: "Search trading cards with a compact query language",
		Long: `Search a trading card corpus with field comparisons, text matching,
numeric ranges and value alternation.

Examples:
  cardsearch search 'atk>=2000 a:dark'
  cardsearch search 'c:spell legal=0' --format json
  cardsearch explain 'l=4|5 t=/dragon|wyrm/'
  cardsearch card 46986414
  cardsearch import --db cards.db`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.CardsPath, "cards", "", "card document path (default $CARDSEARCH_CARDS_PATH or cards.json)")
	cmd.PersistentFlags().StringVar(&opts.SetsPath, "sets", "", "release catalog path (default $CARDSEARCH_SETS_PATH or sets.json)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "read the corpus from this SQLite snapshot instead of JSON")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewCardCommand(opts))
	cmd.AddCommand(NewExplainCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// settings returns the effective configuration: the base config with flag
// overrides applied. The base config is never modified.
func (o *RootOptions) settings() (*config.Config, error) {
	base := o.Config
	if base == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		base = loaded
	}

	cfg := *base
	if o.CardsPath != "" {
		cfg.Data.CardsPath = o.CardsPath
	}
	if o.SetsPath != "" {
		cfg.Data.SetsPath = o.SetsPath
	}
	if o.DBPath != "" {
		cfg.Data.DBPath = o.DBPath
	}
	if o.Verbose {
		cfg.Logging.Level = logger.LogLevelDebug
	}
	return &cfg, nil
}

// formatter builds the output formatter for a command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
