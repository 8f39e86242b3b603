package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/witanlabs/cellref/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved CLI preferences",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the saved default output mode",
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <text|json>",
	Short: "Save the default output mode",
	Long: `Save the default output mode for all commands.

The saved mode applies when neither the --json flag nor the
CELLREF_JSON environment variable is set.

Examples:
  cellref config set json
  cellref config set text`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSet,
}

var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove saved preferences",
	RunE:  runConfigClear,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configClearCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mode := cfg.Output
	if mode == "" {
		mode = config.OutputText
	}
	fmt.Println(mode)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	mode := args[0]
	if mode != config.OutputText && mode != config.OutputJSON {
		return fmt.Errorf("invalid output mode %q: must be %q or %q", mode, config.OutputText, config.OutputJSON)
	}
	if err := config.Save(config.Config{Output: mode}); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Default output set to %s\n", mode)
	return nil
}

func runConfigClear(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if err := config.Delete(); err != nil {
		return fmt.Errorf("deleting config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "✓ Preferences cleared")
	return nil
}
