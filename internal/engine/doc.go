// Package engine plans and evaluates card queries.
//
// A query string is compiled in three steps: query.Parse splits it into
// clauses, query.Normalize orders them cheapest-first and merges adjacent name
// words, and filter.Build turns each clause into a predicate. A card matches
// when every predicate holds for its projection; evaluation stops at the first
// predicate that fails.
//
// The corpus lives in a Snapshot, built once and never modified. Scans only
// read the snapshot, so any number of them may run concurrently without
// locking. A Scanner may split a single scan over partitions of the corpus
// and run them on a bounded worker pool; partition results are concatenated
// in corpus order, so the result is identical to a sequential scan.
//
// Scans have no cancellation: they always run to completion over the bounded
// corpus. Result caps and offsets are applied by the caller.
package engine
