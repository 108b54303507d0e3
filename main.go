package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/app"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "failed-logs-report",
		Short:        "Summarize failed query logs from Drive into a PDF report",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the HTTP trigger and the optional schedule",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(configPath)
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Generate the report once and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runOnce(cmd.Context(), configPath)
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(configPath string) error {
	application := app.New(configPath) // Initialize the application
	wait := application.Start()        // Start the application and wait for the termination signal
	<-wait                             // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx) // Stop the application gracefully
	return nil
}

func runOnce(ctx context.Context, configPath string) error {
	application := app.New(configPath)

	err := application.RunOnce(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(stopCtx)

	return err
}
