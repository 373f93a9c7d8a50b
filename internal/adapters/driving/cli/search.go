package cli

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// snippetRunes bounds the text shown per result in table output.
const snippetRunes = 160

var (
	searchLimit   int
	searchJSON    bool
	searchCorpus  string
	searchVersion string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search subtitles or verses",
	Long: `Finds records containing every term of the query.

Unquoted terms match anywhere, ignoring case and accents. Terms in single
or double quotes must match as whole words. Commas and periods separate
terms.

Examples:
  sercha-captions search "sal" terra
  sercha-captions search --corpus verses --version ARA 'luz do mundo'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured maximum)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVarP(&searchCorpus, "corpus", "c", "subtitles", "record set to search: subtitles or verses")
	searchCmd.Flags().StringVar(&searchVersion, "version", "", "verse translation (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	rt, err := requireRuntime()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	corpus, err := domain.ParseCorpus(searchCorpus)
	if err != nil {
		return err
	}

	svc, err := rt.Search(ctx)
	if err != nil {
		return err
	}

	results, err := svc.Search(ctx, args[0], domain.SearchOptions{
		Corpus:  corpus,
		Version: searchVersion,
		Limit:   searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	if results == nil {
		results = []domain.SearchResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		ref := results[i].Reference
		if v := results[i].Verse; v != nil {
			ref = v.Version + " " + ref
		}
		cmd.Printf("  [%d] %s\n", i+1, ref)
		cmd.Printf("      %s\n", snippet(results[i].Text, snippetRunes))
		cmd.Println()
	}
}

// snippet shortens text to at most n runes.
func snippet(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}
