// Package persistence provides storage for the job board.
// Jobs, applications and messages live in a single SQLite database in WAL mode,
// every operation is one SQL statement with no transaction spanning tables.
package persistence
