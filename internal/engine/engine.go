package engine

import (
	"fmt"
	"strings"
)

// Result is the outcome of a search.
type Result struct {
	Query *Query
	IDs   []int // matching record ids in corpus order
}

// Engine answers queries against one snapshot.
//
// Thread-safety: Search is safe for concurrent use.
type Engine struct {
	snap    *Snapshot
	scanner *Scanner
}

// New creates an engine over snap. Options configure its scanner.
func New(snap *Snapshot, opts ...Option) (*Engine, error) {
	scanner, err := NewScanner(opts...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{snap: snap, scanner: scanner}, nil
}

// Search compiles raw and scans the snapshot with it.
// Leading and trailing whitespace is ignored.
func (e *Engine) Search(raw string) (*Result, error) {
	q, err := Compile(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return &Result{Query: q, IDs: e.scanner.Scan(e.snap, q)}, nil
}

// Snapshot returns the snapshot the engine searches.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap
}

// Scanner returns the engine's scanner.
func (e *Engine) Scanner() *Scanner {
	return e.scanner
}

// Close releases the scanner's worker pool.
func (e *Engine) Close() error {
	return e.scanner.Close()
}
