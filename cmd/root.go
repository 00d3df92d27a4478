// Package cmd holds the logistics command line: configuration, wiring and the serve and
// menu subcommands.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "logistics",
	Short:        "Order dispatch simulator",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", defaultEnvFile, "dotenv file with configuration")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig(cmd *cobra.Command) (Config, error) {
	return LoadConfig(envFile, cmd.Flags().Changed("env-file"))
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
