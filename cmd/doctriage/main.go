package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doctriage",
	Short: "Classify business documents and extract structured fields",
	Long: `doctriage ingests a directory of documents (PDF, image, plain text),
classifies each into a known business-document category and extracts
category-specific fields, writing an aggregated batch result.`,
	SilenceUsage: true,
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
