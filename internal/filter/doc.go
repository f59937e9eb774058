// Package filter compiles parsed clauses into predicates over card projections.
//
// A Predicate is plain, inspectable data: a closed set of variants
// (NumericCompare, SentinelCompare, TextMatch, SetMatch, RegexMatch, AnyOf)
// evaluated by a single exhaustive switch in Eval. Build validates the
// field-operator-value combination of a clause once, before any card is
// scanned; combinations without a meaning are reported as a CompileError.
//
// Match is the reference comparison between one field value and one query
// value. Every predicate produced by Build agrees with Match on every
// projection.
package filter
