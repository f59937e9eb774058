// Package projection flattens card records into the normalized form queries
// are evaluated against.
//
// A Projection holds one query.Value per query.Field. Text is folded (NFC,
// lowercase), inapplicable stats are query.Absent, and unknown stats are the
// present sentinel -1. Projections are pure functions of their record and the
// release catalog; they are built once when the corpus is loaded and never
// change afterwards.
package projection
