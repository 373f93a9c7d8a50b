package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

const createVersesLegacy = `
	CREATE TABLE IF NOT EXISTS verses (
		version TEXT NOT NULL,
		book    INTEGER NOT NULL,
		chapter INTEGER NOT NULL,
		verse   INTEGER NOT NULL,
		text    TEXT NOT NULL,
		PRIMARY KEY (version, book, chapter, verse)
	)
`

const createVersesNormalized = `
	CREATE TABLE IF NOT EXISTS verses (
		version         TEXT NOT NULL,
		book            INTEGER NOT NULL,
		chapter         INTEGER NOT NULL,
		verse           INTEGER NOT NULL,
		text            TEXT NOT NULL,
		text_normalized TEXT NOT NULL,
		PRIMARY KEY (version, book, chapter, verse)
	)
`

// likeEscaper escapes LIKE wildcards; pair with ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// VerseStore reads reference verses from a SQLite database.
type VerseStore struct {
	db     *sql.DB
	path   string
	schema domain.VerseSchema
}

var _ driven.VerseStore = (*VerseStore)(nil)

// OpenVerseStore opens the verse database at path using the given layout.
// The verses table is created when absent so an empty database is usable.
func OpenVerseStore(path string, schema domain.VerseSchema) (*VerseStore, error) {
	ddl := createVersesLegacy
	switch schema {
	case domain.VerseSchemaLegacy:
	case domain.VerseSchemaNormalized:
		ddl = createVersesNormalized
	default:
		return nil, fmt.Errorf("%w: verse schema %q", domain.ErrUnsupportedType, schema)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating verses table: %w", err)
	}
	return &VerseStore{db: db, path: path, schema: schema}, nil
}

// Close closes the database connection.
func (s *VerseStore) Close() error {
	return s.db.Close()
}

// Schema reports the configured layout.
func (s *VerseStore) Schema() domain.VerseSchema {
	return s.schema
}

// Insert loads verses, replacing rows with the same key. Under the
// normalized layout NormalizedText must already be filled in.
func (s *VerseStore) Insert(ctx context.Context, verses ...domain.VerseRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `INSERT OR REPLACE INTO verses (version, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)`
	if s.schema == domain.VerseSchemaNormalized {
		query = `INSERT OR REPLACE INTO verses (version, book, chapter, verse, text, text_normalized)
			VALUES (?, ?, ?, ?, ?, ?)`
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range verses {
		args := []any{v.Version, v.Book, v.Chapter, v.Verse, v.Text}
		if s.schema == domain.VerseSchemaNormalized {
			args = append(args, v.NormalizedText)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting verse %s %s: %w", v.Version, v.Reference(), err)
		}
	}
	return tx.Commit()
}

// Versions lists translations present in the table.
func (s *VerseStore) Versions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT version FROM verses ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// SearchRaw ANDs a LIKE '%fragment%' predicate per fragment over the raw text.
func (s *VerseStore) SearchRaw(
	ctx context.Context, version string, fragments []string, limit int,
) ([]domain.VerseRecord, error) {
	return s.search(ctx, version, "text", fragments, limit)
}

// SearchNormalized ANDs a LIKE predicate per fragment over text_normalized.
func (s *VerseStore) SearchNormalized(
	ctx context.Context, version string, fragments []string,
) ([]domain.VerseRecord, error) {
	if s.schema != domain.VerseSchemaNormalized {
		return nil, fmt.Errorf("%w: normalized search on %s schema", domain.ErrUnsupportedType, s.schema)
	}
	return s.search(ctx, version, "text_normalized", fragments, 0)
}

func (s *VerseStore) search(
	ctx context.Context, version, column string, fragments []string, limit int,
) ([]domain.VerseRecord, error) {
	if err := s.checkVersion(ctx, version); err != nil {
		return nil, err
	}

	columns := "version, book, chapter, verse, text"
	if s.schema == domain.VerseSchemaNormalized {
		columns += ", text_normalized"
	}

	var b strings.Builder
	b.WriteString("SELECT " + columns + " FROM verses WHERE version = ?")
	args := []any{version}
	for _, f := range fragments {
		b.WriteString(" AND " + column + ` LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(f)+"%")
	}
	b.WriteString(" ORDER BY book, chapter, verse")
	if limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("searching verses: %w", err)
	}
	defer rows.Close()

	var verses []domain.VerseRecord
	for rows.Next() {
		var v domain.VerseRecord
		dest := []any{&v.Version, &v.Book, &v.Chapter, &v.Verse, &v.Text}
		if s.schema == domain.VerseSchemaNormalized {
			dest = append(dest, &v.NormalizedText)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning verse: %w", err)
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

func (s *VerseStore) checkVersion(ctx context.Context, version string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM verses WHERE version = ? LIMIT 1`, version).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: version %q", domain.ErrNotFound, version)
	}
	if err != nil {
		return fmt.Errorf("checking version: %w", err)
	}
	return nil
}
