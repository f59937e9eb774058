package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/store"
)

// ImportResult is the import command payload.
type ImportResult struct {
	Database      string `json:"database"`
	Cards         int    `json:"cards"`
	Sets          int    `json:"sets"`
	SchemaVersion int    `json:"schema_version"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write the JSON corpus into a SQLite snapshot",
		Long: `Read the card document and the release catalog and store them in a
SQLite snapshot. Later commands read the snapshot when given --db.

An existing snapshot at the same path is replaced.

Examples:
  cardsearch import --db cards.db
  cardsearch import --cards cardinfo.json --sets cardsets.json --db cards.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, cmd)
		},
	}
	return cmd
}

func runImport(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cfg, err := opts.settings()
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	dbPath := cfg.Data.DBPath
	if dbPath == "" {
		formatter.Error(ErrCodeInvalidArg, "--db is required", nil)
		return NewExitError(ExitCommandError, "--db is required")
	}

	// Read from JSON even though a database path is configured.
	source := cfg.Data
	source.DBPath = ""
	ctx := commandContext(cmd)
	cards, catalog, err := LoadCorpus(ctx, source)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	formatter.VerboseLog("Read %d cards and %d sets", len(cards), catalog.Len())

	st, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if err := st.Import(ctx, cards, catalog.Sets()); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}

	result, err := verifyImport(ctx, st, dbPath, cards)
	if err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to verify import", err)
	}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards and %d sets into %s\n", result.Cards, result.Sets, dbPath)
	return nil
}

// verifyImport reads the written snapshot back: its schema version, its
// counts, and the first imported card.
func verifyImport(ctx context.Context, st *store.Store, dbPath string, cards []card.Card) (ImportResult, error) {
	version, err := st.SchemaVersion(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	if version != store.CurrentSchemaVersion {
		return ImportResult{}, fmt.Errorf("snapshot schema version %d, want %d", version, store.CurrentSchemaVersion)
	}

	nCards, nSets, err := st.Counts(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	if nCards != len(cards) {
		return ImportResult{}, fmt.Errorf("snapshot holds %d cards, imported %d", nCards, len(cards))
	}

	if len(cards) > 0 {
		first, ok, err := st.ReadCard(ctx, cards[0].ID)
		if err != nil {
			return ImportResult{}, err
		}
		if !ok || first.Name != cards[0].Name {
			return ImportResult{}, fmt.Errorf("card %d did not round-trip", cards[0].ID)
		}
	}

	return ImportResult{Database: dbPath, Cards: nCards, Sets: nSets, SchemaVersion: version}, nil
}
