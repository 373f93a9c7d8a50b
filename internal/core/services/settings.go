package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDataDir          = "store.data_dir"
	keyBatchSize        = "ingest.batch_size"
	keyCatalog          = "ingest.catalog"
	keyManifestPath     = "ingest.manifest_path"
	keyFetchRate        = "fetch.rate_per_second"
	keyFetchBurst       = "fetch.burst"
	keyFetchTimeout     = "fetch.timeout"
	keyFetchMaxRetries  = "fetch.max_retries"
	keyFetchUserAgent   = "fetch.user_agent"
	keyYouTubeAPIKey    = "youtube.api_key"
	keyYouTubePlaylist  = "youtube.playlist_id"
	keyYouTubeTemplate  = "youtube.subtitle_url_template"
	keyYouTubeEndpoint  = "youtube.endpoint"
	keyVerseDatabase    = "verses.database"
	keyVerseSchema      = "verses.schema"
	keyVerseDefault     = "verses.default_version"
	keySearchMaxResults = "search.max_results"
	keyServerAddr       = "server.addr"
)

// SettingsService reads and writes typed settings over a key-value ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or malformed values fall back
// to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	d := domain.DefaultSettings()

	settings := &domain.Settings{
		Store: domain.StoreSettings{
			DataDir: s.getString(keyDataDir, d.Store.DataDir),
		},
		Ingest: domain.IngestSettings{
			BatchSize:    s.getInt(keyBatchSize, d.Ingest.BatchSize),
			Catalog:      s.getCatalog(d.Ingest.Catalog),
			ManifestPath: s.getString(keyManifestPath, d.Ingest.ManifestPath),
		},
		Fetch: domain.FetchSettings{
			RatePerSecond: s.getFloat(keyFetchRate, d.Fetch.RatePerSecond),
			Burst:         s.getInt(keyFetchBurst, d.Fetch.Burst),
			Timeout:       s.getDuration(keyFetchTimeout, d.Fetch.Timeout),
			MaxRetries:    s.getInt(keyFetchMaxRetries, d.Fetch.MaxRetries),
			UserAgent:     s.getString(keyFetchUserAgent, d.Fetch.UserAgent),
		},
		YouTube: domain.YouTubeSettings{
			APIKey:              s.configStore.GetString(keyYouTubeAPIKey),
			PlaylistID:          s.configStore.GetString(keyYouTubePlaylist),
			SubtitleURLTemplate: s.configStore.GetString(keyYouTubeTemplate),
			Endpoint:            s.configStore.GetString(keyYouTubeEndpoint),
		},
		Verses: domain.VerseSettings{
			Database:       s.configStore.GetString(keyVerseDatabase),
			Schema:         s.getSchema(d.Verses.Schema),
			DefaultVersion: s.configStore.GetString(keyVerseDefault),
		},
		Search: domain.SearchSettings{
			MaxResults: s.getInt(keySearchMaxResults, d.Search.MaxResults),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, d.Server.Addr),
		},
	}

	return settings, nil
}

// Save persists settings and flushes the store.
func (s *SettingsService) Save(settings *domain.Settings) error {
	values := []struct {
		key string
		val any
	}{
		{keyDataDir, settings.Store.DataDir},
		{keyBatchSize, settings.Ingest.BatchSize},
		{keyCatalog, string(settings.Ingest.Catalog)},
		{keyManifestPath, settings.Ingest.ManifestPath},
		{keyFetchRate, settings.Fetch.RatePerSecond},
		{keyFetchBurst, settings.Fetch.Burst},
		{keyFetchTimeout, settings.Fetch.Timeout.String()},
		{keyFetchMaxRetries, settings.Fetch.MaxRetries},
		{keyFetchUserAgent, settings.Fetch.UserAgent},
		{keyYouTubePlaylist, settings.YouTube.PlaylistID},
		{keyYouTubeTemplate, settings.YouTube.SubtitleURLTemplate},
		{keyYouTubeEndpoint, settings.YouTube.Endpoint},
		{keyVerseDatabase, settings.Verses.Database},
		{keyVerseSchema, string(settings.Verses.Schema)},
		{keyVerseDefault, settings.Verses.DefaultVersion},
		{keySearchMaxResults, settings.Search.MaxResults},
		{keyServerAddr, settings.Server.Addr},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.val); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	// Only persist the API key when one is given.
	if settings.YouTube.APIKey != "" {
		if err := s.configStore.Set(keyYouTubeAPIKey, settings.YouTube.APIKey); err != nil {
			return fmt.Errorf("save %s: %w", keyYouTubeAPIKey, err)
		}
	}

	return s.configStore.Save()
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the config store location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s.configStore.GetString(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getCatalog(defaultVal domain.CatalogKind) domain.CatalogKind {
	kind := domain.CatalogKind(s.configStore.GetString(keyCatalog))
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}

func (s *SettingsService) getSchema(defaultVal domain.VerseSchema) domain.VerseSchema {
	raw := s.configStore.GetString(keyVerseSchema)
	if raw == "" {
		return defaultVal
	}
	schema, err := domain.ParseVerseSchema(raw)
	if err != nil {
		// Keep the unknown value so Validate can report it.
		return domain.VerseSchema(raw)
	}
	return schema
}
