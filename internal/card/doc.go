// Package card provides the source record types for the card search engine.
//
// This package contains the upstream document shapes only: cards as published
// by the card database and the release catalog used to date printings. All
// other internal packages import card; card imports nothing internal.
//
// Key constraints:
//   - Records are treated as already validated input; decoding never fills defaults
//   - ATK/DEF of -1 is the upstream marker for "?" and is preserved as-is
//   - Release catalog lookups are keyed by lowercased set name
package card
