// Tagfield is the command line companion of the tagfield library.
//
// It runs an interactive terminal demo of the tag field, prints flow layouts
// for arbitrary item sizes, and writes the default configuration file.
//
// Usage:
//
//	tagfield [command] [flags]
//
// Running without arguments launches the demo.
// See 'tagfield --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tagfield",
	Short: "Tag input field demo and layout tool",
	Long: `Tagfield turns comma separated input into chips that wrap into rows.

If no command is specified, the interactive demo will launch automatically.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tagfield version %s\n", version)
	},
}
