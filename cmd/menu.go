package cmd

import (
	"errors"
	"fmt"
	"io"

	"logistics/internal/adapters/in/menu"

	"github.com/spf13/cobra"
)

var noClear bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive console menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the screen between actions")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	console := menu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), !noClear)
	fleet, err := menu.AskInitialFleet(console)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	app, err := NewCompositionRoot(config, fleet, newLogger(cmd.ErrOrStderr(), config.LogLevel))
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	return app.CreateMenu(console).Run(cmd.Context())
}
