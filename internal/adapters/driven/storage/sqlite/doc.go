// Package sqlite persists indexed documents and serves reference verses
// from SQLite databases.
//
// It uses modernc.org/sqlite, a pure Go driver, so binaries cross-compile
// without CGO. Two databases are involved:
//
//   - the index database (index.db in the data directory), owned by Store
//     and versioned through the embedded migrations/ files
//   - the verse database, opened read-mostly by VerseStore with either the
//     legacy layout or the layout carrying a text_normalized column
//
// Both are opened in WAL mode with a busy timeout so the search server can
// read while an ingest run writes.
package sqlite
