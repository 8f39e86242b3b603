package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/witanlabs/cellref/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:           "cellref",
	Short:         "Cellref CLI — convert spreadsheet cell references between A1 and R1C1",
	Version:       Version,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-formatted text (env: CELLREF_JSON)")
}

// resolveJSON reports whether output should be JSON: the --json flag,
// then the CELLREF_JSON environment variable, then the saved config.
func resolveJSON() bool {
	if jsonOutput {
		return true
	}
	v := os.Getenv("CELLREF_JSON")
	if v == "1" || v == "true" {
		return true
	}
	cfg, err := config.Load()
	if err != nil {
		return false
	}
	return cfg.Output == config.OutputJSON
}

func Execute() error {
	return rootCmd.Execute()
}
