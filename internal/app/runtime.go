// Package app assembles adapters and services from the configured
// settings. It is the composition root used by the command line.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sercha-captions/internal/connectors/httpfetch"
	"github.com/custodia-labs/sercha-captions/internal/connectors/manifest"
	"github.com/custodia-labs/sercha-captions/internal/connectors/youtube"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/core/services"
	"github.com/custodia-labs/sercha-captions/internal/logger"
	"github.com/custodia-labs/sercha-captions/internal/normalisers"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/plaintext"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/srt"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/ttml"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/webvtt"
	"github.com/custodia-labs/sercha-captions/internal/query"
)

// LockFileName is the ingest lock inside the data directory.
const LockFileName = "ingest.lock"

// Option customises a Runtime.
type Option func(*Runtime)

// WithHTTPClient sets the client used to download subtitle tracks.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Runtime) { r.httpClient = c }
}

// Runtime owns the stores and services for one process. Stores open on
// first use and stay open until Close.
type Runtime struct {
	settings   *services.SettingsService
	httpClient *http.Client

	mu      sync.Mutex
	store   *sqlite.Store
	verses  *sqlite.VerseStore
	search  *services.SearchService
	library *services.LibraryService
	ingest  *services.IngestOrchestrator
}

// New loads config.toml from configDir (default ~/.sercha-captions).
func New(configDir string, opts ...Option) (*Runtime, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	r := &Runtime{settings: services.NewSettingsService(configStore)}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Settings returns the settings service.
func (r *Runtime) Settings() driving.SettingsService {
	return r.settings
}

// Search returns the search service, opening the index and verse
// database on first use.
func (r *Runtime) Search(context.Context) (driving.SearchService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.search != nil {
		return r.search, nil
	}
	settings, err := r.settings.Get()
	if err != nil {
		return nil, err
	}
	if err := settings.ValidateSearch(); err != nil {
		return nil, err
	}
	index, verses, err := r.openStores(settings)
	if err != nil {
		return nil, err
	}
	matcher, err := query.NewMatcher(0)
	if err != nil {
		return nil, err
	}
	r.search = services.NewSearchService(index, verses, matcher, services.SearchConfig{
		MaxResults:     settings.Search.MaxResults,
		DefaultVersion: settings.Verses.DefaultVersion,
	})
	return r.search, nil
}

// Library returns the document browsing service.
func (r *Runtime) Library(context.Context) (driving.LibraryService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.library != nil {
		return r.library, nil
	}
	settings, err := r.settings.Get()
	if err != nil {
		return nil, err
	}
	index, verses, err := r.openStores(settings)
	if err != nil {
		return nil, err
	}
	r.library = services.NewLibraryService(index, verses)
	return r.library, nil
}

// Ingest returns the orchestrator. The full settings must be valid.
func (r *Runtime) Ingest(ctx context.Context) (driving.IngestOrchestrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ingest != nil {
		return r.ingest, nil
	}
	settings, err := r.settings.Get()
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	index, _, err := r.openStores(settings)
	if err != nil {
		return nil, err
	}
	catalog, err := newCatalog(ctx, settings)
	if err != nil {
		return nil, err
	}

	fetcher := httpfetch.New(httpfetch.Config{
		RatePerSecond: settings.Fetch.RatePerSecond,
		Burst:         settings.Fetch.Burst,
		Timeout:       settings.Fetch.Timeout,
		MaxRetries:    settings.Fetch.MaxRetries,
		UserAgent:     settings.Fetch.UserAgent,
	}, r.httpClient)
	converter := normalisers.NewRegistry(webvtt.New(), srt.New(), ttml.New(), plaintext.New())

	orch, err := services.NewIngestOrchestrator(catalog, index, fetcher, converter, services.LogObserver{},
		services.IngestConfig{BatchSize: settings.Ingest.BatchSize})
	if err != nil {
		return nil, err
	}
	r.ingest = orch
	return r.ingest, nil
}

// LockPath is the ingest lock file in the data directory.
func (r *Runtime) LockPath() (string, error) {
	settings, err := r.settings.Get()
	if err != nil {
		return "", err
	}
	dir, err := sqlite.ResolveDataDir(settings.Store.DataDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LockFileName), nil
}

// Close releases the open databases.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.store != nil {
		errs = append(errs, r.store.Close())
		r.store = nil
	}
	if r.verses != nil {
		errs = append(errs, r.verses.Close())
		r.verses = nil
	}
	r.search, r.library, r.ingest = nil, nil, nil
	return errors.Join(errs...)
}

// openStores opens the index and, when configured, the verse database.
// A missing verse file disables verse search instead of failing.
// Callers hold r.mu.
func (r *Runtime) openStores(settings *domain.Settings) (driven.IndexStore, driven.VerseStore, error) {
	if r.store == nil {
		store, err := sqlite.NewStore(settings.Store.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: opening index: %w", domain.ErrPersistenceFailed, err)
		}
		r.store = store
	}

	if r.verses == nil && settings.Verses.Database != "" {
		if _, err := os.Stat(settings.Verses.Database); err != nil {
			logger.Warn("verse database unavailable: %v", err)
		} else {
			verses, err := sqlite.OpenVerseStore(settings.Verses.Database, settings.Verses.Schema)
			if err != nil {
				return nil, nil, fmt.Errorf("opening verse database: %w", err)
			}
			r.verses = verses
		}
	}

	if r.verses == nil {
		return r.store.IndexStore(), nil, nil
	}
	return r.store.IndexStore(), r.verses, nil
}

func newCatalog(ctx context.Context, settings *domain.Settings) (driven.SourceCatalog, error) {
	switch settings.Ingest.Catalog {
	case domain.CatalogManifest:
		return manifest.NewCatalog(settings.Ingest.ManifestPath), nil
	case domain.CatalogYouTube:
		return youtube.NewCatalog(ctx, youtube.Config{
			APIKey:              settings.YouTube.APIKey,
			PlaylistID:          settings.YouTube.PlaylistID,
			SubtitleURLTemplate: settings.YouTube.SubtitleURLTemplate,
			Endpoint:            settings.YouTube.Endpoint,
		})
	default:
		return nil, fmt.Errorf("%w: catalog %q", domain.ErrUnsupportedType, settings.Ingest.Catalog)
	}
}
