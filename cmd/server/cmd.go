package main

import (
	"log/slog"

	"github.com/ferdiebergado/notes/internal/app"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	serve := func(cmd *cobra.Command, _ []string) error {
		slog.Info("Starting server...")
		if err := app.Run(cmd.Context(), opts); err != nil {
			return err
		}
		slog.Info("Server shutdown gracefully.")
		return nil
	}

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Notes API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  serve,
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Create the notes table if it does not exist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.RunSchema(cmd.Context(), opts); err != nil {
					return err
				}
				slog.Info("Schema is up to date.")
				return nil
			},
		},
	)

	return root
}
