// Package query implements the card query language: the Field/Operator/Value
// vocabulary, the clause grammar, and clause normalization.
//
// A query is a whitespace separated list of 1..MaxClauses clauses. Each clause
// is either a structured triple or a bare word:
//
//	atk>=2000          structured: field, operator, value
//	t:dragon|warrior   alternation, any alternative may match
//	o:"draw 1 card"    quoted value, taken verbatim
//	o:/(draw|add) \d/  regex value, case-insensitive, never split on '|'
//	magician           bare word, shorthand for name:magician
//
// Parse produces clauses in input order. Normalize orders them by field cost
// rank and merges adjacent bare name words into one phrase, which is the form
// the filter compiler expects.
package query
