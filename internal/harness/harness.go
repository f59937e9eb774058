package harness

import (
	"context"
	"fmt"

	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/engine"
	"github.com/roach88/cardsearch/internal/filter"
	"github.com/roach88/cardsearch/internal/logger"
	"github.com/roach88/cardsearch/internal/query"
	"github.com/roach88/cardsearch/internal/testutil"
)

// Harness runs the cases of one scenario against a loaded corpus.
type Harness struct {
	engine *engine.Engine
	tokens *testutil.FixedTokenGenerator
	log    logger.Logger
}

// Run loads the scenario corpus and evaluates every case.
// Logs are discarded.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, logger.NewTestLogger())
}

// RunWithLogger is Run with per-case debug logging.
func RunWithLogger(scenario *Scenario, log logger.Logger) (*Result, error) {
	cards, err := card.LoadCardsFile(scenario.Cards)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	sets, err := card.LoadSetsFile(scenario.Sets)
	if err != nil {
		return nil, fmt.Errorf("failed to load sets: %w", err)
	}

	eng, err := engine.New(
		engine.NewSnapshot(cards, card.NewCatalog(sets)),
		engine.WithWorkers(scenario.Workers),
		engine.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	defer eng.Close()

	h := &Harness{
		engine: eng,
		tokens: testutil.NewFixedTokenGenerator(scenario.QueryToken),
		log:    log,
	}

	result := NewResult()
	for i, c := range scenario.Cases {
		got := h.runCase(c)
		if failure := checkCase(i, c, got); failure != nil {
			result.AddError(failure.Error())
		} else {
			got.Pass = true
		}
		result.Cases = append(result.Cases, got)
	}
	return result, nil
}

func (h *Harness) runCase(c Case) CaseResult {
	ctx := logger.WithQueryToken(context.Background(), h.tokens.Generate())
	log := h.log.WithContext(ctx)

	got := CaseResult{Query: c.Query}
	res, err := h.engine.Search(c.Query)
	switch {
	case err == nil:
		got.Description = res.Query.Describe()
		got.IDs = res.IDs
	case query.IsParseError(err):
		got.Error = ErrorParse
		got.Message = err.Error()
	case filter.IsCompileError(err):
		got.Error = ErrorCompile
		got.Message = err.Error()
	default:
		got.Error = "unexpected"
		got.Message = err.Error()
	}

	log.Debug().Str("query", c.Query).Int("matches", len(got.IDs)).Str("error", got.Error).Msg("case evaluated")
	return got
}
