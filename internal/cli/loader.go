package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/app"
	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/config"
	"github.com/roach88/cardsearch/internal/engine"
	"github.com/roach88/cardsearch/internal/filter"
	"github.com/roach88/cardsearch/internal/logger"
	"github.com/roach88/cardsearch/internal/query"
	"github.com/roach88/cardsearch/internal/store"
)

// LoadError is a corpus loading failure with its CLI error code.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadCorpus reads the records and the release catalog, from the SQLite
// snapshot when data.DBPath is set and from the JSON documents otherwise.
func LoadCorpus(ctx context.Context, data config.Data) ([]card.Card, card.Catalog, error) {
	if data.DBPath != "" {
		return loadFromStore(ctx, data.DBPath)
	}

	for _, path := range []string{data.CardsPath, data.SetsPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, card.Catalog{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("corpus file not found: %s", path), Err: err}
		}
	}

	cards, err := card.LoadCardsFile(data.CardsPath)
	if err != nil {
		return nil, card.Catalog{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to load cards", Err: err}
	}
	sets, err := card.LoadSetsFile(data.SetsPath)
	if err != nil {
		return nil, card.Catalog{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to load sets", Err: err}
	}
	return cards, card.NewCatalog(sets), nil
}

func loadFromStore(ctx context.Context, path string) ([]card.Card, card.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, card.Catalog{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path), Err: err}
	}

	st, err := store.OpenReadOnly(path)
	if err != nil {
		return nil, card.Catalog{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to open database", Err: err}
	}
	defer st.Close()

	cards, err := st.LoadCards(ctx)
	if err != nil {
		return nil, card.Catalog{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to read cards", Err: err}
	}
	sets, err := st.LoadSets(ctx)
	if err != nil {
		return nil, card.Catalog{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to read sets", Err: err}
	}
	return cards, card.NewCatalog(sets), nil
}

// openApp loads the corpus and builds the application for a command.
// Logs go to the command's error stream.
func openApp(cmd *cobra.Command, opts *RootOptions, extra ...app.Option) (*app.App, error) {
	cfg, err := opts.settings()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: "invalid configuration", Err: err}
	}

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

	cards, catalog, err := LoadCorpus(commandContext(cmd), cfg.Data)
	if err != nil {
		return nil, err
	}

	appOpts := append([]app.Option{app.WithLogger(log)}, extra...)
	return app.New(engine.NewSnapshot(cards, catalog), cfg, appOpts...)
}

// reportLoadError prints a corpus failure and converts it into a command error.
func reportLoadError(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
	}
	f.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load corpus", err)
}

// reportQueryError prints a rejected query. Parse errors carry the offending
// fragment as details.
func reportQueryError(f *OutputFormatter, err error) error {
	if !app.IsUserError(err) {
		f.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "search failed", err)
	}

	code := ErrCodeParse
	var details any
	var parseErr *query.ParseError
	switch {
	case errors.As(err, &parseErr):
		if parseErr.Fragment != "" {
			details = map[string]string{"fragment": parseErr.Fragment}
		}
	case filter.IsCompileError(err):
		code = ErrCodeCompile
	}

	f.Error(code, err.Error(), details)
	return WrapExitError(ExitFailure, "query rejected", err)
}
