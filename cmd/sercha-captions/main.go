// Command sercha-captions indexes subtitle tracks and searches them.
package main

import (
	"os"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-captions/internal/app"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	err := cli.Execute(version, func(configDir string) (cli.Runtime, error) {
		return app.New(configDir)
	})
	// cobra has already printed the error.
	if err != nil {
		os.Exit(1)
	}
}
