// Package cli provides the cobra command tree for sercha-captions.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

// version is set at build time.
var version = "dev"

// Runtime supplies services to commands. Stores are opened on first use,
// so commands that only read settings never touch the index.
type Runtime interface {
	Settings() driving.SettingsService
	Search(ctx context.Context) (driving.SearchService, error)
	Library(ctx context.Context) (driving.LibraryService, error)
	Ingest(ctx context.Context) (driving.IngestOrchestrator, error)

	// LockPath is the file that serialises ingest runs across processes.
	LockPath() (string, error)

	Close() error
}

// RuntimeFactory builds a Runtime from the config directory flag.
type RuntimeFactory func(configDir string) (Runtime, error)

var (
	verbose   bool
	configDir string

	newRuntime RuntimeFactory
	app        Runtime
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "sercha-captions",
	Short: "Index and search subtitle text",
	Long: `sercha-captions imports subtitle tracks from a catalog, keeps a
tokenised index of their text, and searches it alongside a verse
reference database.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.sercha-captions)")
}

func setupRuntime(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if app != nil || newRuntime == nil {
		return nil
	}
	rt, err := newRuntime(configDir)
	if err != nil {
		return err
	}
	app = rt
	return nil
}

// Execute runs the command tree until it finishes or the process is interrupted.
func Execute(buildVersion string, factory RuntimeFactory) error {
	if buildVersion != "" {
		version = buildVersion
	}
	newRuntime = factory
	defer func() {
		if app != nil {
			if err := app.Close(); err != nil {
				logger.Error("closing: %v", err)
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// commandContext returns the command's context, or Background outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func requireRuntime() (Runtime, error) {
	if app == nil {
		return nil, errNotConfigured
	}
	return app, nil
}
