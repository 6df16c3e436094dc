// Package database provides the SQLite store handle for the questions forum.
//
// This package manages:
//   - Opening the store file by path (WAL, busy timeout, foreign keys, read-only mode)
//   - The query executor used by the forum package: DB.Query runs one
//     parameterised statement and returns every row as a column→value map
//   - Schema migrations from an explicitly supplied MigrationSource
//
// Values in a Row are int64, string or nil. Anything else the driver
// produces (REAL, time.Time) is rejected with ErrUnsupportedValue,
// because the forum schema only declares integer and text columns.
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: "questions.db", BusyTimeout: 5})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx, migrations.Source()); err != nil {
//	    return err
//	}
//
// The handle is owned by whoever opened it; there is no process-wide
// instance. Concurrent reads are safe at the database/sql level, but the
// pool is capped at one connection, so statements are serialised.
package database
