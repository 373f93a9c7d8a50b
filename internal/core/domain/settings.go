package domain

import (
	"fmt"
	"strings"
	"time"
)

// BatchOpsLimit is the per-batch write ceiling of the document store.
// Configured batch sizes must stay below it.
const BatchOpsLimit = 500

// CatalogKind selects where the ingest source list comes from.
type CatalogKind string

const (
	// CatalogManifest reads sources from a YAML manifest file.
	CatalogManifest CatalogKind = "manifest"

	// CatalogYouTube lists the items of a YouTube playlist.
	CatalogYouTube CatalogKind = "youtube"
)

// IsValid returns true if the catalog kind is recognised.
func (k CatalogKind) IsValid() bool {
	return k == CatalogManifest || k == CatalogYouTube
}

// Settings is the full application configuration.
type Settings struct {
	Store   StoreSettings
	Ingest  IngestSettings
	Fetch   FetchSettings
	YouTube YouTubeSettings
	Verses  VerseSettings
	Search  SearchSettings
	Server  ServerSettings
}

// StoreSettings locates the document index.
type StoreSettings struct {
	// DataDir holds the index database. Empty uses the default location.
	DataDir string
}

// IngestSettings configures ingest runs.
type IngestSettings struct {
	BatchSize    int
	Catalog      CatalogKind
	ManifestPath string
}

// FetchSettings configures subtitle downloads.
type FetchSettings struct {
	RatePerSecond float64
	Burst         int
	Timeout       time.Duration
	MaxRetries    int
	UserAgent     string
}

// YouTubeSettings configures the playlist catalog.
type YouTubeSettings struct {
	APIKey              string
	PlaylistID          string
	SubtitleURLTemplate string

	// Endpoint overrides the API base URL.
	Endpoint string
}

// VerseSettings configures the verse reference database.
type VerseSettings struct {
	// Database is the path of the verse database. Empty disables verse search.
	Database       string
	Schema         VerseSchema
	DefaultVersion string
}

// SearchSettings configures query execution.
type SearchSettings struct {
	MaxResults int
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Ingest: IngestSettings{
			BatchSize: 400,
			Catalog:   CatalogManifest,
		},
		Fetch: FetchSettings{
			RatePerSecond: 2,
			Burst:         4,
			Timeout:       30 * time.Second,
			MaxRetries:    3,
			UserAgent:     "sercha-captions",
		},
		Verses: VerseSettings{
			Schema: VerseSchemaNormalized,
		},
		Search: SearchSettings{
			MaxResults: DefaultMaxResults,
		},
		Server: ServerSettings{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Validate checks the settings for values no component can run with.
// Catalog-specific fields are checked only for the selected catalog.
func (s *Settings) Validate() error {
	var problems []string

	if s.Ingest.BatchSize <= 0 || s.Ingest.BatchSize >= BatchOpsLimit {
		problems = append(problems,
			fmt.Sprintf("ingest.batch_size must be between 1 and %d", BatchOpsLimit-1))
	}
	switch s.Ingest.Catalog {
	case CatalogManifest:
		if strings.TrimSpace(s.Ingest.ManifestPath) == "" {
			problems = append(problems, "ingest.manifest_path is required for the manifest catalog")
		}
	case CatalogYouTube:
		if s.YouTube.APIKey == "" || s.YouTube.PlaylistID == "" || s.YouTube.SubtitleURLTemplate == "" {
			problems = append(problems,
				"youtube.api_key, youtube.playlist_id and youtube.subtitle_url_template are required")
		}
	default:
		problems = append(problems, fmt.Sprintf("ingest.catalog %q is not one of manifest, youtube", s.Ingest.Catalog))
	}
	if s.Fetch.RatePerSecond <= 0 {
		problems = append(problems, "fetch.rate_per_second must be positive")
	}
	if s.Fetch.Burst <= 0 {
		problems = append(problems, "fetch.burst must be positive")
	}
	if s.Fetch.MaxRetries < 0 {
		problems = append(problems, "fetch.max_retries must not be negative")
	}
	if s.Verses.Database != "" {
		if _, err := ParseVerseSchema(string(s.Verses.Schema)); err != nil {
			problems = append(problems, fmt.Sprintf("verses.schema %q is not one of legacy, normalized", s.Verses.Schema))
		}
	}
	if s.Search.MaxResults <= 0 {
		problems = append(problems, "search.max_results must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// ValidateSearch checks only the settings needed to serve queries.
func (s *Settings) ValidateSearch() error {
	if s.Search.MaxResults <= 0 {
		return fmt.Errorf("%w: search.max_results must be positive", ErrInvalidInput)
	}
	if s.Verses.Database != "" {
		if _, err := ParseVerseSchema(string(s.Verses.Schema)); err != nil {
			return err
		}
	}
	return nil
}
