package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-captions/internal/analysis"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

// DefaultBatchSize is the re-index write batch size.
const DefaultBatchSize = 400

// Ensure IngestOrchestrator implements the interface.
var _ driving.IngestOrchestrator = (*IngestOrchestrator)(nil)

// IngestConfig tunes an IngestOrchestrator.
type IngestConfig struct {
	// BatchSize is the number of re-index writes per commit. It must be
	// below the store's MaxBatchOps. Zero uses DefaultBatchSize.
	BatchSize int

	// Now is the clock. Nil uses time.Now.
	Now func() time.Time

	// NewRunID generates run identifiers. Nil uses random UUIDs.
	NewRunID func() string
}

// IngestOrchestrator runs the import, update and re-index workflows.
type IngestOrchestrator struct {
	catalog   driven.SourceCatalog
	store     driven.IndexStore
	fetcher   driven.ContentFetcher
	converter driven.SubtitleConverter
	observer  driven.IngestObserver

	batchSize int
	now       func() time.Time
	newRunID  func() string

	// Status tracking
	mu     sync.RWMutex
	active *driving.IngestStatus
}

// NewIngestOrchestrator creates an orchestrator. A nil observer is silent.
// catalog, fetcher and converter may be nil when only Reindex is used.
func NewIngestOrchestrator(
	catalog driven.SourceCatalog,
	store driven.IndexStore,
	fetcher driven.ContentFetcher,
	converter driven.SubtitleConverter,
	observer driven.IngestObserver,
	cfg IngestConfig,
) (*IngestOrchestrator, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: index store is required", domain.ErrInvalidInput)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if limit := store.MaxBatchOps(); cfg.BatchSize >= limit {
		return nil, fmt.Errorf("%w: batch size %d must be below the store limit of %d",
			domain.ErrInvalidInput, cfg.BatchSize, limit)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewRunID == nil {
		cfg.NewRunID = uuid.NewString
	}
	if observer == nil {
		observer = NopObserver{}
	}

	return &IngestOrchestrator{
		catalog:   catalog,
		store:     store,
		fetcher:   fetcher,
		converter: converter,
		observer:  observer,
		batchSize: cfg.BatchSize,
		now:       cfg.Now,
		newRunID:  cfg.NewRunID,
	}, nil
}

// Import creates a record for every catalog source that has none.
// Existing records are never touched.
func (o *IngestOrchestrator) Import(ctx context.Context) (*domain.IngestReport, error) {
	return o.runSources(ctx, domain.IngestImport, o.importOne)
}

// Update refreshes records whose subtitle content hash changed.
// Sources without a record are skipped.
func (o *IngestOrchestrator) Update(ctx context.Context) (*domain.IngestReport, error) {
	return o.runSources(ctx, domain.IngestUpdate, o.updateOne)
}

// Reindex brings every record's tokens up to analysis.CurrentVersion from
// its stored text, committing in batches. A commit failure ends the run.
func (o *IngestOrchestrator) Reindex(ctx context.Context, opts domain.ReindexOptions) (*domain.IngestReport, error) {
	r, err := o.begin(domain.IngestReindex)
	if err != nil {
		return nil, err
	}
	defer func() { o.finish(r, err) }()

	logger.Section("Reindex")
	docs, err := o.store.List(ctx)
	if err != nil {
		err = fmt.Errorf("list documents: %w", err)
		return r.report, err
	}
	o.start(r, len(docs))

	batch := o.store.NewBatch()
	var pending []string

	commit := func() error {
		if batch.Len() == 0 {
			return nil
		}
		size := batch.Len()
		if err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch %d: %w", r.report.Batches+1, err)
		}
		r.report.Batches++
		r.report.Updated += size
		for _, id := range pending {
			r.emit(domain.IngestEvent{Kind: domain.EventUpdated, DocumentID: id})
		}
		r.emit(domain.IngestEvent{Kind: domain.EventBatchCommitted, Batch: r.report.Batches, Count: size})
		batch = o.store.NewBatch()
		pending = pending[:0]
		return nil
	}

	for i := range docs {
		if err = ctx.Err(); err != nil {
			return r.report, err
		}
		doc := docs[i]
		r.report.Scanned++

		updated, ok := o.reindexOne(r, &doc, opts)
		o.advance(!ok)
		if updated == nil {
			continue
		}

		batch.Put(updated)
		pending = append(pending, updated.ID)
		if batch.Len() >= o.batchSize {
			if err = commit(); err != nil {
				return r.report, err
			}
		}
	}

	err = commit()
	return r.report, err
}

// Status returns the state of the active run, or an idle status.
func (o *IngestOrchestrator) Status(_ context.Context) (*driving.IngestStatus, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.active == nil {
		return &driving.IngestStatus{Running: false}, nil
	}
	status := *o.active
	return &status, nil
}

// reindexOne computes the migrated record, or nil when nothing is written.
// ok is false when the record failed.
func (o *IngestOrchestrator) reindexOne(r *run, doc *domain.IndexedDocument, opts domain.ReindexOptions) (*domain.IndexedDocument, bool) {
	if !doc.HasContent() {
		r.report.Warnings++
		r.emit(domain.IngestEvent{
			Kind:       domain.EventWarning,
			DocumentID: doc.ID,
			Message:    "record has no content text, skipped",
		})
		return nil, true
	}

	var tokens []string
	switch {
	case doc.TokenVersion == analysis.CurrentVersion && !opts.Force:
		r.report.Skipped++
		r.emit(domain.IngestEvent{Kind: domain.EventSkipped, DocumentID: doc.ID, Message: "already current"})
		return nil, true
	case doc.TokenVersion == analysis.CurrentVersion:
		tokens = analysis.Tokenize(doc.ContentText)
	default:
		steps, err := analysis.MigrationPath(doc.TokenVersion)
		if err != nil {
			r.fail(doc.ID, err)
			return nil, false
		}
		for _, step := range steps {
			logger.Debug("reindex %s: tokenizer v%d -> v%d", doc.ID, step.From, step.To)
			tokens = step.Apply(doc.ContentText)
		}
	}

	doc.Tokens = tokens
	doc.TokenVersion = analysis.CurrentVersion
	doc.ContentHash = analysis.Fingerprint(doc.ContentText)
	doc.UpdatedAt = o.now()
	return doc, true
}

// runSources drives Import and Update over the catalog in order.
func (o *IngestOrchestrator) runSources(
	ctx context.Context,
	mode domain.IngestMode,
	handle func(context.Context, *run, domain.SourceDocument) bool,
) (report *domain.IngestReport, err error) {
	if o.catalog == nil || o.fetcher == nil || o.converter == nil {
		return nil, fmt.Errorf("%w: %s needs a catalog, fetcher and converter", domain.ErrInvalidInput, mode)
	}

	r, err := o.begin(mode)
	if err != nil {
		return nil, err
	}
	defer func() { o.finish(r, err) }()

	logger.Section(string(mode))
	sources, err := o.catalog.List(ctx)
	if err != nil {
		err = fmt.Errorf("list sources from %s: %w", o.catalog.Name(), err)
		return r.report, err
	}
	o.start(r, len(sources))

	for _, src := range sources {
		if err = ctx.Err(); err != nil {
			return r.report, err
		}
		r.report.Scanned++
		ok := handle(ctx, r, src)
		o.advance(!ok)
	}
	err = ctx.Err()
	return r.report, err
}

func (o *IngestOrchestrator) importOne(ctx context.Context, r *run, src domain.SourceDocument) bool {
	_, err := o.store.Get(ctx, src.ID)
	switch {
	case err == nil:
		r.report.Skipped++
		r.emit(domain.IngestEvent{Kind: domain.EventSkipped, DocumentID: src.ID, Message: "already indexed"})
		return true
	case !errors.Is(err, domain.ErrNotFound):
		r.fail(src.ID, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err))
		return false
	}

	text, err := o.extract(ctx, src)
	if err != nil {
		r.fail(src.ID, err)
		return false
	}

	now := o.now()
	doc := &domain.IndexedDocument{
		ID:           src.ID,
		ContentText:  text,
		Tokens:       analysis.Tokenize(text),
		ContentHash:  analysis.Fingerprint(text),
		TokenVersion: analysis.CurrentVersion,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := o.store.Put(ctx, doc); err != nil {
		r.fail(src.ID, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err))
		return false
	}

	r.report.Created++
	r.emit(domain.IngestEvent{Kind: domain.EventCreated, DocumentID: src.ID})
	return true
}

func (o *IngestOrchestrator) updateOne(ctx context.Context, r *run, src domain.SourceDocument) bool {
	existing, err := o.store.Get(ctx, src.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		r.report.Skipped++
		r.emit(domain.IngestEvent{Kind: domain.EventSkipped, DocumentID: src.ID, Message: "not indexed"})
		return true
	case err != nil:
		r.fail(src.ID, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err))
		return false
	}

	text, err := o.extract(ctx, src)
	if err != nil {
		r.fail(src.ID, err)
		return false
	}

	hash := analysis.Fingerprint(text)
	if hash == existing.ContentHash {
		r.report.Unchanged++
		r.emit(domain.IngestEvent{Kind: domain.EventUnchanged, DocumentID: src.ID})
		return true
	}

	existing.ContentText = text
	existing.Tokens = analysis.Tokenize(text)
	existing.ContentHash = hash
	existing.TokenVersion = analysis.CurrentVersion
	existing.UpdatedAt = o.now()
	if err := o.store.Put(ctx, existing); err != nil {
		r.fail(src.ID, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err))
		return false
	}

	r.report.Updated++
	r.emit(domain.IngestEvent{Kind: domain.EventUpdated, DocumentID: src.ID})
	return true
}

// extract fetches a source's track and converts it to plain text.
func (o *IngestOrchestrator) extract(ctx context.Context, src domain.SourceDocument) (string, error) {
	logger.Debug("fetch %s from %s", src.ID, src.SubtitleURL)
	sub, err := o.fetcher.Fetch(ctx, src.SubtitleURL)
	if err != nil {
		if !errors.Is(err, domain.ErrFetchFailed) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		return "", err
	}
	text, err := o.converter.Convert(ctx, sub)
	if err != nil {
		if !errors.Is(err, domain.ErrConversionFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrConversionFailed, err)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text in track", domain.ErrConversionFailed)
	}
	return text, nil
}

// run carries the per-run report and event stamping.
type run struct {
	id       string
	mode     domain.IngestMode
	report   *domain.IngestReport
	observer driven.IngestObserver
}

func (r *run) emit(e domain.IngestEvent) {
	e.RunID = r.id
	e.Mode = r.mode
	r.observer.Observe(e)
}

func (r *run) fail(id string, err error) {
	r.report.Failed++
	r.emit(domain.IngestEvent{Kind: domain.EventFailed, DocumentID: id, Err: err})
}

// begin claims the orchestrator for one run.
func (o *IngestOrchestrator) begin(mode domain.IngestMode) (*run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active != nil {
		return nil, fmt.Errorf("%w: %s run active", domain.ErrIngestInProgress, o.active.Mode)
	}
	o.active = &driving.IngestStatus{Mode: mode, Running: true}

	id := o.newRunID()
	return &run{
		id:   id,
		mode: mode,
		report: &domain.IngestReport{
			RunID:     id,
			Mode:      mode,
			StartedAt: o.now(),
		},
		observer: o.observer,
	}, nil
}

func (o *IngestOrchestrator) start(r *run, total int) {
	o.mu.Lock()
	o.active.Total = total
	o.mu.Unlock()
	r.emit(domain.IngestEvent{Kind: domain.EventStarted, Count: total})
}

func (o *IngestOrchestrator) advance(failed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active.Processed++
	if failed {
		o.active.ErrorCount++
	}
}

func (o *IngestOrchestrator) finish(r *run, err error) {
	r.report.FinishedAt = o.now()
	r.emit(domain.IngestEvent{Kind: domain.EventFinished, Count: r.report.Writes(), Err: err})

	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = nil
}
