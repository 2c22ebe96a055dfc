package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adeyemi-oso/doctriage/internal/acquire"
	"github.com/adeyemi-oso/doctriage/internal/classify"
	"github.com/adeyemi-oso/doctriage/internal/common"
	"github.com/adeyemi-oso/doctriage/internal/ingest"
	"github.com/adeyemi-oso/doctriage/internal/pipeline"
	"github.com/adeyemi-oso/doctriage/internal/store"
)

var (
	processDir      string
	processOut      string
	processXLSX     string
	processSQLite   string
	processProfiles string
	processKeepText bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a directory of documents into a batch result",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processDir, "dir", "", "directory to process (required)")
	processCmd.Flags().StringVar(&processOut, "out", "", "output JSON path (default <dir>/../results.json)")
	processCmd.Flags().StringVar(&processXLSX, "xlsx", "", "also export an XLSX workbook to this path")
	processCmd.Flags().StringVar(&processSQLite, "sqlite", "", "also persist results to this SQLite database")
	processCmd.Flags().StringVar(&processProfiles, "profiles", "", "keyword-profile override JSON file")
	processCmd.Flags().BoolVar(&processKeepText, "keep-text", false, "carry acquired text on results for auditing")
	_ = processCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()
	cfg := common.LoadConfig()
	ctx := context.Background()

	if processOut == "" {
		processOut = filepath.Join(filepath.Dir(processDir), "results.json")
	}
	if processProfiles == "" {
		processProfiles = cfg.Pipeline.ProfilePath
	}
	keepText := processKeepText || cfg.Pipeline.KeepText

	// keyword tables: built-in unless an override file is given
	profiles := classify.DefaultProfiles()
	if processProfiles != "" {
		loaded, err := classify.LoadProfiles(processProfiles)
		if err != nil {
			return err
		}
		profiles = loaded
		logger.Info("loaded keyword profiles", "path", processProfiles, "categories", len(profiles))
	}
	classifier := classify.NewClassifier(profiles, logger)

	acquirer := acquire.NewService(acquire.Config{
		OCR: acquire.OCRConfig{
			Pdftoppm:      cfg.OCR.Pdftoppm,
			Tesseract:     cfg.OCR.Tesseract,
			TesseractLang: cfg.OCR.TesseractLang,
			TessdataDir:   cfg.OCR.TessdataDir,
			DPI:           cfg.OCR.DPI,
			MaxPages:      cfg.OCR.MaxPages,
		},
		MinTextLength: cfg.Pipeline.MinTextLength,
		Timeout:       cfg.Pipeline.AcquireTimeout,
	}, logger)

	processor := pipeline.NewProcessor(acquirer, classifier, keepText, logger)

	docs, err := ingest.Discover(processDir)
	if err != nil {
		if errors.Is(err, common.ErrRootNotFound) || errors.Is(err, common.ErrNotDirectory) {
			return err
		}
		return fmt.Errorf("discover documents: %w", err)
	}
	logger.Info("discovered documents", "dir", processDir, "count", len(docs))

	batch := processor.ProcessBatch(ctx, processDir, docs)

	if err := store.SaveJSON(batch, processOut); err != nil {
		return err
	}
	logger.Info("batch result written", "path", processOut)

	if processXLSX != "" {
		xlsxBytes, err := store.ExportXLSX(batch)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		if err := os.WriteFile(processXLSX, xlsxBytes, 0o644); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		logger.Info("xlsx export written", "path", processXLSX)
	}

	var stores []store.BatchStore
	if processSQLite != "" || cfg.Store.SQLitePath != "" {
		path := processSQLite
		if path == "" {
			path = cfg.Store.SQLitePath
		}
		s, err := store.NewSQLiteStore(path)
		if err != nil {
			return err
		}
		stores = append(stores, s)
	}
	if cfg.Store.PostgresDSN != "" {
		s, err := store.NewPostgresStore(ctx, cfg.Store.PostgresDSN, logger)
		if err != nil {
			return err
		}
		stores = append(stores, s)
	}
	for _, s := range stores {
		if err := s.SaveBatch(ctx, batch); err != nil {
			_ = s.Close()
			return fmt.Errorf("persist batch: %w", err)
		}
		_ = s.Close()
	}

	cmd.Printf("Processed %d documents (%d failed, %d unknown) -> %s\n",
		len(batch.Documents), batch.Stats.Failed, batch.Stats.Unknown, processOut)
	return nil
}
