package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and initialise settings stored in config.toml.

Settings not present in the file use their defaults.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Long: `Writes every setting with its default value so the file can be edited.
An existing file is left alone unless --force is given.`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the current settings",
	RunE:  runConfigValidate,
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Store the YouTube Data API key",
	Long: `Prompts for the YouTube Data API key and saves it to config.toml.
The key is not echoed when read from a terminal.`,
	Args: cobra.NoArgs,
	RunE: runConfigSetAPIKey,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configInitCmd.Flags().String("manifest", "", "manifest path to record in the new file")
	configCmd.AddCommand(configShowCmd, configInitCmd, configValidateCmd, configSetAPIKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func settingsService() (driving.SettingsService, error) {
	rt, err := requireRuntime()
	if err != nil {
		return nil, err
	}
	svc := rt.Settings()
	if svc == nil {
		return nil, errors.New("settings service not configured")
	}
	return svc, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("File: %s\n", svc.Path())
	cmd.Println()
	printSettings(cmd, settings)
	return nil
}

func printSettings(cmd *cobra.Command, s *domain.Settings) {
	cmd.Println("[Store]")
	cmd.Printf("  Data dir: %s\n", orDefault(s.Store.DataDir, "(default)"))
	cmd.Println()

	cmd.Println("[Ingest]")
	cmd.Printf("  Catalog: %s\n", s.Ingest.Catalog)
	cmd.Printf("  Manifest: %s\n", orDefault(s.Ingest.ManifestPath, "(not set)"))
	cmd.Printf("  Batch size: %d\n", s.Ingest.BatchSize)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Rate: %.2f/s (burst %d)\n", s.Fetch.RatePerSecond, s.Fetch.Burst)
	cmd.Printf("  Timeout: %s\n", s.Fetch.Timeout)
	cmd.Printf("  Max retries: %d\n", s.Fetch.MaxRetries)
	cmd.Printf("  User agent: %s\n", s.Fetch.UserAgent)
	cmd.Println()

	if s.Ingest.Catalog == domain.CatalogYouTube {
		cmd.Println("[YouTube]")
		if s.YouTube.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(s.YouTube.APIKey))
		} else {
			cmd.Println("  API Key: (not set)")
		}
		cmd.Printf("  Playlist: %s\n", orDefault(s.YouTube.PlaylistID, "(not set)"))
		cmd.Printf("  Subtitle URL: %s\n", orDefault(s.YouTube.SubtitleURLTemplate, "(not set)"))
		cmd.Println()
	}

	cmd.Println("[Verses]")
	if s.Verses.Database == "" {
		cmd.Println("  Database: (not set, verse search disabled)")
	} else {
		cmd.Printf("  Database: %s\n", s.Verses.Database)
		cmd.Printf("  Schema: %s\n", s.Verses.Schema)
		cmd.Printf("  Default version: %s\n", orDefault(s.Verses.DefaultVersion, "(not set)"))
	}
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Max results: %d\n", s.Search.MaxResults)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", s.Server.Addr)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")
	manifest, _ := cmd.Flags().GetString("manifest")

	path := svc.Path()
	if _, statErr := os.Stat(path); statErr == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	settings := svc.GetDefaults()
	settings.Ingest.ManifestPath = manifest
	if err := svc.Save(&settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Wrote default settings to %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	if err := svc.Validate(); err != nil {
		return err
	}
	cmd.Println("Settings are valid.")
	return nil
}

func runConfigSetAPIKey(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Print("YouTube API key: ")
	key, err := readSecret(cmd.InOrStdin())
	cmd.Println()
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}
	if key == "" {
		return fmt.Errorf("%w: API key is empty", domain.ErrInvalidInput)
	}

	settings.YouTube.APIKey = key
	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Saved API key %s\n", maskAPIKey(key))
	return nil
}

// readSecret reads one line without echo when in is a terminal.
func readSecret(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// maskAPIKey masks an API key for display, showing first and last 4 chars.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
