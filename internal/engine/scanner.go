package engine

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/roach88/cardsearch/internal/logger"
	"github.com/roach88/cardsearch/internal/projection"
)

// DefaultPartitionSize is the number of projections one scan task covers.
const DefaultPartitionSize = 2048

// Scanner runs compiled queries over a snapshot.
//
// With one worker (the default) a scan is a single linear pass. With more,
// the corpus is split into partitions that are scanned on a bounded ants
// pool and concatenated in corpus order.
//
// Thread-safety: Scan is safe for concurrent use. Close must be called once
// no scans are running.
type Scanner struct {
	pool          *ants.Pool
	partitionSize int
	log           logger.Logger
}

type scannerConfig struct {
	workers       int
	partitionSize int
	log           logger.Logger
}

// Option configures a Scanner.
type Option func(*scannerConfig)

// WithWorkers sets the number of pool workers. Values below 2 disable the pool.
func WithWorkers(n int) Option {
	return func(c *scannerConfig) {
		c.workers = n
	}
}

// WithPartitionSize sets how many projections one scan task covers.
// Values below 1 are ignored.
func WithPartitionSize(n int) Option {
	return func(c *scannerConfig) {
		if n > 0 {
			c.partitionSize = n
		}
	}
}

// WithLogger sets the logger used to report worker panics.
func WithLogger(log logger.Logger) Option {
	return func(c *scannerConfig) {
		c.log = log
	}
}

// NewScanner creates a scanner.
func NewScanner(opts ...Option) (*Scanner, error) {
	cfg := scannerConfig{
		workers:       1,
		partitionSize: DefaultPartitionSize,
		log:           logger.NewTestLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scanner{partitionSize: cfg.partitionSize, log: cfg.log}
	if cfg.workers > 1 {
		pool, err := ants.NewPool(cfg.workers, ants.WithPanicHandler(func(v any) {
			s.log.Error().Interface("panic", v).Msg("scan worker panic")
		}))
		if err != nil {
			return nil, fmt.Errorf("create scan pool: %w", err)
		}
		s.pool = pool
	}
	return s, nil
}

// Scan returns the ids of all projections matching q, in corpus order.
func (s *Scanner) Scan(snap *Snapshot, q *Query) []int {
	projections := snap.Projections()
	if s.pool == nil || len(projections) <= s.partitionSize {
		return scanRange(projections, q)
	}

	n := (len(projections) + s.partitionSize - 1) / s.partitionSize
	parts := make([][]int, n)

	var wg sync.WaitGroup
	for i := range n {
		lo := i * s.partitionSize
		hi := min(lo+s.partitionSize, len(projections))

		wg.Add(1)
		task := func() {
			defer wg.Done()
			parts[i] = scanRange(projections[lo:hi], q)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool closed or overloaded: scan this partition on the caller.
			task()
		}
	}
	wg.Wait()

	return slices.Concat(parts...)
}

// Workers returns the pool capacity, or 1 when scans run inline.
func (s *Scanner) Workers() int {
	if s.pool == nil {
		return 1
	}
	return s.pool.Cap()
}

// Close releases the worker pool.
func (s *Scanner) Close() error {
	if s.pool == nil {
		return nil
	}
	return s.pool.ReleaseTimeout(3 * time.Second)
}

func scanRange(projections []projection.Projection, q *Query) []int {
	var ids []int
	for i := range projections {
		if q.Matches(&projections[i]) {
			ids = append(ids, projections[i].ID)
		}
	}
	return ids
}
