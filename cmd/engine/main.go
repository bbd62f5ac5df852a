// Command engine serves the job portal core over a local HTTP API.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"jobportal-engine/internal/config"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

const appName = "jobportal-engine"

func main() {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataDir  string
	logLevel string
}

func rootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "engine",
		Short:         "Job portal engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Job portal engine keeps the job catalog and one applicant's session:
browsing postings, viewing one, submitting the application form and
exporting the application summary.`,
	}
	cmd.PersistentFlags().StringVar(&f.dataDir, "data-dir", "", "Data directory (default $"+config.EnvDataDir+" or .)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(&f),
		jobsCmd(&f),
		configCmd(&f),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
			},
		},
	)
	return cmd
}
