// Package sqlite provides a SQLite implementation of the ChunkStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files. Chunk metadata is stored as the flat string map handed to the
// indexing layer, so chunks of one document may carry different key sets.
// Quadrant and ring are also kept in their own columns for filtering.
//
// # Data Location
//
// By default, the database is stored at ~/.radarchunk/data/radar.db
package sqlite
