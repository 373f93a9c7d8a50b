package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-captions/internal/analysis"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/core/services"
	"github.com/custodia-labs/sercha-captions/internal/query"
)

// testRuntime wires real services over in-memory stores.
type testRuntime struct {
	settings *services.SettingsService
	config   *memory.ConfigStore
	index    *memory.IndexStore
	verses   *memory.VerseStore
	catalog  *memory.SourceCatalog
	lockPath string
	ingest   *services.IngestOrchestrator
}

func (r *testRuntime) Settings() driving.SettingsService { return r.settings }

func (r *testRuntime) Search(context.Context) (driving.SearchService, error) {
	matcher, err := query.NewMatcher(0)
	if err != nil {
		return nil, err
	}
	return services.NewSearchService(r.index, r.verses, matcher, services.SearchConfig{DefaultVersion: "ARA"}), nil
}

func (r *testRuntime) Library(context.Context) (driving.LibraryService, error) {
	return services.NewLibraryService(r.index, r.verses), nil
}

func (r *testRuntime) Ingest(context.Context) (driving.IngestOrchestrator, error) {
	return r.ingest, nil
}

func (r *testRuntime) LockPath() (string, error) { return r.lockPath, nil }

func (r *testRuntime) Close() error { return nil }

// staticFetcher returns the URL itself as the subtitle body.
type staticFetcher struct{}

func (staticFetcher) Fetch(_ context.Context, url string) (*domain.Subtitle, error) {
	return &domain.Subtitle{URL: url, Content: []byte("legenda de " + url)}, nil
}

type textConverter struct{}

func (textConverter) Convert(_ context.Context, sub *domain.Subtitle) (string, error) {
	return string(sub.Content), nil
}

func newTestRuntime(t *testing.T) *testRuntime {
	t.Helper()
	ctx := context.Background()

	rt := &testRuntime{
		config:   memory.NewConfigStore(nil),
		index:    memory.NewIndexStore(),
		verses:   memory.NewVerseStore(domain.VerseSchemaNormalized),
		catalog:  memory.NewSourceCatalog(),
		lockPath: filepath.Join(t.TempDir(), "ingest.lock"),
	}
	rt.settings = services.NewSettingsService(rt.config)

	for id, text := range map[string]string{
		"vid-1": "Gosto de sal na comida",
		"vid-2": "A salvação é importante",
	} {
		require.NoError(t, rt.index.Put(ctx, &domain.IndexedDocument{
			ID: id, ContentText: text, Tokens: analysis.Tokenize(text), TokenVersion: analysis.CurrentVersion,
		}))
	}
	verse := "Vós sois o sal da terra"
	rt.verses.Add(domain.VerseRecord{
		Version: "ARA", Book: 40, Chapter: 5, Verse: 13, Text: verse, NormalizedText: analysis.Normalize(verse),
	})

	orch, err := services.NewIngestOrchestrator(rt.catalog, rt.index, staticFetcher{}, textConverter{}, nil, services.IngestConfig{})
	require.NoError(t, err)
	rt.ingest = orch
	return rt
}

// setupTestRuntime installs a runtime and returns a cleanup func.
func setupTestRuntime(t *testing.T) *testRuntime {
	t.Helper()
	rt := newTestRuntime(t)
	old := app
	app = rt
	t.Cleanup(func() {
		app = old
		resetFlags(rootCmd)
	})
	return rt
}

// resetFlags restores every flag to its default between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
