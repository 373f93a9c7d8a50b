package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-captions/internal/analysis"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and tokenizer version",
	Long: `Prints the build version. The tokenizer version is the one new and
reindexed documents are written with; documents below it are upgraded by
'ingest reindex'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("sercha-captions %s\n", version)
		cmd.Printf("tokenizer v%d\n", analysis.CurrentVersion)
		cmd.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
