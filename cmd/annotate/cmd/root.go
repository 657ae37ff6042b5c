package cmd

import (
	"fmt"
	"os"

	"measurement-annotation-service/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "annotate",
		Short: "Render measurement labels from the command line",
		Long: `annotate renders distance and area measurement labels without running the HTTP service.

It reads measurements from a JSON file, formats each value in metric or imperial units,
and prints the resulting markers as text, JSON, HTML, or GeoJSON.
Configuration is read from .env and the environment, the same as the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			return nil
		},
	}

	root.AddCommand(newRenderCmd(), newFormatCmd(), newStylesheetCmd())
	return root
}

// Execute builds the command tree and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
