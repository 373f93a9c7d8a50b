package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search interactively in the terminal",
	Long: `Opens a full-screen search interface.

Type a query and press enter. Tab switches between subtitles and verses;
d lists indexed documents; enter on a subtitle result shows its text.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	search, library, err := openServices(ctx)
	if err != nil {
		return err
	}
	ui, err := tui.NewApp(&tui.Ports{Search: search, Library: library})
	if err != nil {
		return err
	}

	// Log lines would corrupt the alternate screen.
	logger.SetVerbose(false)
	return ui.WithContext(ctx).Run()
}
