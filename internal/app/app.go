// Package app is the query-handling entry point.
//
// An App owns the frozen corpus snapshot, the engine that searches it, and
// the ambient services around a search: logging, metrics and query tokens.
// It is constructed once at startup and passed by reference to whatever
// front end handles queries; there is no package-level state.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/config"
	"github.com/roach88/cardsearch/internal/engine"
	"github.com/roach88/cardsearch/internal/filter"
	"github.com/roach88/cardsearch/internal/logger"
	"github.com/roach88/cardsearch/internal/metrics"
	"github.com/roach88/cardsearch/internal/query"
)

// Page selects a window of the result list.
// A Limit of zero or above the configured cap means the cap.
type Page struct {
	Offset int
	Limit  int
}

// Response is the answer to one query.
type Response struct {
	Token       string        `json:"token"`
	Query       string        `json:"query"`
	Description string        `json:"description"`
	Total       int           `json:"total"`
	Offset      int           `json:"offset"`
	Cards       []card.Card   `json:"cards"`
	Elapsed     time.Duration `json:"-"`
}

// App holds the application state.
type App struct {
	engine      *engine.Engine
	log         logger.Logger
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	tokens      TokenGenerator
	now         func() time.Time
	resultLimit int
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithTokenGenerator sets the query token generator.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(a *App) {
		a.tokens = gen
	}
}

// WithClock sets the time source used to measure searches.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New builds an App over snap. Scan parallelism and the result cap come from
// cfg.Search.
func New(snap *engine.Snapshot, cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{
		log:         logger.NewTestLogger(),
		registry:    prometheus.NewRegistry(),
		tokens:      UUIDv7Generator{},
		now:         time.Now,
		resultLimit: cfg.Search.ResultLimit,
	}
	for _, opt := range opts {
		opt(a)
	}

	eng, err := engine.New(snap,
		engine.WithWorkers(cfg.Search.ScanWorkers),
		engine.WithPartitionSize(cfg.Search.PartitionSize),
		engine.WithLogger(a.log),
	)
	if err != nil {
		return nil, err
	}
	a.engine = eng

	a.metrics = metrics.New(a.registry)
	a.metrics.CorpusRecords.Set(float64(snap.Len()))

	a.log.Debug().
		Int("records", snap.Len()).
		Int("sets", snap.Catalog().Len()).
		Int("workers", eng.Scanner().Workers()).
		Msg("corpus loaded")

	return a, nil
}

// HandleQuery searches the corpus and returns one page of matching records.
//
// raw is trimmed first. Grammar errors are returned as *query.ParseError and
// meaningless clauses as *filter.CompileError; both are safe to show to the
// user. A scan, once started, always runs to completion.
func (a *App) HandleQuery(ctx context.Context, raw string, page Page) (*Response, error) {
	token := a.tokens.Generate()
	log := a.log.WithContext(logger.WithQueryToken(ctx, token))

	raw = strings.TrimSpace(raw)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := a.now()
	res, err := a.engine.Search(raw)
	elapsed := a.now().Sub(start)

	if err != nil {
		outcome := metrics.OutcomeParseError
		if filter.IsCompileError(err) {
			outcome = metrics.OutcomeCompileError
		}
		a.metrics.ObserveSearch(outcome, 0, elapsed)
		log.Info().Str("query", raw).Str("outcome", outcome).Err(err).Msg("query rejected")
		return nil, err
	}

	total := len(res.IDs)
	a.metrics.ObserveSearch(metrics.OutcomeOK, total, elapsed)

	offset := min(max(page.Offset, 0), total)
	limit := page.Limit
	if limit <= 0 || limit > a.resultLimit {
		limit = a.resultLimit
	}
	window := res.IDs[offset:min(offset+limit, total)]

	snap := a.engine.Snapshot()
	cards := make([]card.Card, 0, len(window))
	for _, id := range window {
		if c, ok := snap.Record(id); ok {
			cards = append(cards, c)
		}
	}

	log.Info().
		Str("query", raw).
		Str("description", res.Query.Describe()).
		Int("total", total).
		Dur("elapsed", elapsed).
		Msg("search completed")

	return &Response{
		Token:       token,
		Query:       raw,
		Description: res.Query.Describe(),
		Total:       total,
		Offset:      offset,
		Cards:       cards,
		Elapsed:     elapsed,
	}, nil
}

// Explain compiles a query without scanning.
func (a *App) Explain(raw string) (*engine.Query, error) {
	return engine.Compile(strings.TrimSpace(raw))
}

// Card returns one record by id.
func (a *App) Card(id int) (card.Card, bool) {
	return a.engine.Snapshot().Record(id)
}

// Snapshot returns the corpus snapshot.
func (a *App) Snapshot() *engine.Snapshot {
	return a.engine.Snapshot()
}

// Metrics returns the search instruments.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Gatherer exposes the App's private metrics registry.
func (a *App) Gatherer() prometheus.Gatherer {
	return a.registry
}

// Close releases the engine's worker pool.
func (a *App) Close() error {
	return a.engine.Close()
}

// IsUserError reports whether err describes a problem with the query text
// rather than with the application.
func IsUserError(err error) bool {
	return query.IsParseError(err) || filter.IsCompileError(err)
}
