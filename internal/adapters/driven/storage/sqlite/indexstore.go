package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// MaxBatchOps bounds the number of writes in one transaction.
const MaxBatchOps = 500

const upsertDocument = `
	INSERT INTO indexed_documents (id, content_text, tokens, content_hash, token_version, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		content_text = excluded.content_text,
		tokens = excluded.tokens,
		content_hash = excluded.content_hash,
		token_version = excluded.token_version,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at
`

const selectDocument = `
	SELECT id, content_text, tokens, content_hash, token_version, created_at, updated_at
	FROM indexed_documents
`

// indexStore implements driven.IndexStore.
type indexStore struct {
	store *Store
}

var _ driven.IndexStore = (*indexStore)(nil)

// Get retrieves a document by ID.
func (s *indexStore) Get(ctx context.Context, id string) (*domain.IndexedDocument, error) {
	row := s.store.db.QueryRowContext(ctx, selectDocument+" WHERE id = ?", id)
	doc, err := scanIndexed(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document %s: %w", id, err)
	}
	return doc, nil
}

// Put upserts a single document.
func (s *indexStore) Put(ctx context.Context, doc *domain.IndexedDocument) error {
	args, err := documentArgs(doc)
	if err != nil {
		return err
	}
	if _, err := s.store.db.ExecContext(ctx, upsertDocument, args...); err != nil {
		return fmt.Errorf("%w: saving document %s: %v", domain.ErrPersistenceFailed, doc.ID, err)
	}
	return nil
}

// NewBatch starts a transactional group of writes.
func (s *indexStore) NewBatch() driven.IndexBatch {
	return &indexBatch{store: s.store}
}

// List returns every document ordered by ID.
func (s *indexStore) List(ctx context.Context) ([]domain.IndexedDocument, error) {
	rows, err := s.store.db.QueryContext(ctx, selectDocument+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.IndexedDocument
	for rows.Next() {
		doc, err := scanIndexed(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// MaxBatchOps is the per-batch write ceiling.
func (s *indexStore) MaxBatchOps() int {
	return MaxBatchOps
}

// indexBatch buffers writes until Commit runs them in one transaction.
type indexBatch struct {
	store *Store
	ops   []domain.IndexedDocument
}

func (b *indexBatch) Put(doc *domain.IndexedDocument) {
	b.ops = append(b.ops, *doc)
}

func (b *indexBatch) Len() int {
	return len(b.ops)
}

func (b *indexBatch) Commit(ctx context.Context) error {
	if len(b.ops) > MaxBatchOps {
		return fmt.Errorf("%w: batch of %d exceeds %d operations",
			domain.ErrPersistenceFailed, len(b.ops), MaxBatchOps)
	}

	tx, err := b.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrPersistenceFailed, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, upsertDocument)
	if err != nil {
		return fmt.Errorf("%w: preparing statement: %v", domain.ErrPersistenceFailed, err)
	}
	defer stmt.Close()

	for i := range b.ops {
		args, err := documentArgs(&b.ops[i])
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("%w: saving document %s: %v", domain.ErrPersistenceFailed, b.ops[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", domain.ErrPersistenceFailed, err)
	}
	b.ops = nil
	return nil
}

func documentArgs(doc *domain.IndexedDocument) ([]any, error) {
	tokens := doc.Tokens
	if tokens == nil {
		tokens = []string{}
	}
	tokensJSON, err := json.Marshal(tokens)
	if err != nil {
		return nil, fmt.Errorf("marshalling tokens: %w", err)
	}
	return []any{
		doc.ID, doc.ContentText, string(tokensJSON), doc.ContentHash,
		doc.TokenVersion, doc.CreatedAt.UTC(), doc.UpdatedAt.UTC(),
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIndexed(row rowScanner) (*domain.IndexedDocument, error) {
	var doc domain.IndexedDocument
	var tokensJSON string
	if err := row.Scan(&doc.ID, &doc.ContentText, &tokensJSON, &doc.ContentHash,
		&doc.TokenVersion, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}
	if tokensJSON != "" {
		if err := json.Unmarshal([]byte(tokensJSON), &doc.Tokens); err != nil {
			return nil, fmt.Errorf("unmarshalling tokens: %w", err)
		}
	}
	return &doc, nil
}
