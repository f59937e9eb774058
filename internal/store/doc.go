// Package store persists a corpus snapshot in SQLite.
//
// The store is a record source, not a database the engine queries: the
// import command writes the card documents and the release catalog once, and
// search commands read them back in corpus order at startup. Queries are
// always evaluated in memory.
//
// Schema:
//   - cards: position (corpus order), id, name, doc (the upstream JSON record)
//   - sets: lowercased set name, doc (the catalog entry)
//
// Writers use WAL mode; readers open the file read-only and refuse databases
// written by a newer schema version.
package store
