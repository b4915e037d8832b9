package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/assetgen/internal/log"
)

// version is overridden at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "assetgen",
	Short: "Generate typed Swift accessors for Xcode asset catalogs",
	Long: `assetgen scans an asset catalog (*.xcassets) and emits Swift code with one
static accessor per image set, nested by group, so images are referenced by
compile-checked names instead of strings.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.Init(level, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log verbosity: debug, info, warn or error")
}

// Main runs the command line and returns the process exit code.
func Main() int {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits.
func Execute() {
	os.Exit(Main())
}
