package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/adeyemi-oso/doctriage/constants"
	"github.com/adeyemi-oso/doctriage/internal/common"
)

// Config configures the acquisition service.
type Config struct {
	OCR           OCRConfig
	MinTextLength int           // OCR-need gate threshold; <=0 -> DefaultMinTextLength
	Timeout       time.Duration // per-document bound on acquisition; <=0 -> none
}

// Service picks a text-acquisition strategy per document: native decode for
// text-bearing formats, OCR for images, direct read for plain text. A
// native PDF layer that trips the OCR-need gate is re-acquired through OCR
// exactly once.
type Service struct {
	cfg    Config
	logger *slog.Logger
	runner Runner

	// native decode hook, swappable in tests
	native func(path string) (string, int, error)

	ocrOnce sync.Once
	engine  *Engine
}

func NewService(cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = DefaultMinTextLength
	}
	return &Service{
		cfg:    cfg,
		logger: logger,
		runner: execRunner{},
		native: readPDFText,
	}
}

// ocrEngine initializes the OCR engine at most once per Service and reuses
// it across calls.
func (s *Service) ocrEngine() *Engine {
	s.ocrOnce.Do(func() {
		s.engine = NewEngine(s.cfg.OCR, s.runner, s.logger)
	})
	return s.engine
}

// Acquire obtains text for the document at path. With a configured Timeout
// the whole acquisition, external OCR commands included, is bounded per
// document.
func (s *Service) Acquire(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ext := constants.NormalizeExt(filepath.Ext(path))

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := s.acquirePDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		txt, warns, err := s.ocrEngine().Image(ctx, path)
		if err != nil {
			return Result{SourceType: constants.IMAGE, Warnings: warns},
				fmt.Errorf("%w: %s: %v", common.ErrAcquisition, filepath.Base(path), err)
		}
		return Result{
			Text:       txt,
			Pages:      1,
			SourceType: constants.IMAGE,
			Method:     constants.MethodImageOCR,
			Duration:   time.Since(start),
			Warnings:   warns,
		}, nil
	case constants.TXT:
		txt, err := readPlainText(path)
		if err != nil {
			return Result{SourceType: constants.TXT},
				fmt.Errorf("%w: %v", common.ErrAcquisition, err)
		}
		return Result{
			Text:       txt,
			Pages:      1,
			SourceType: constants.TXT,
			Method:     constants.MethodPlainText,
			Duration:   time.Since(start),
		}, nil
	default:
		s.logger.Error("unsupported extension", "path", path, "ext", ext)
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedType, ext)
	}
}

func (s *Service) acquirePDF(ctx context.Context, path string) (Result, error) {
	var warns []string

	text, pages, err := s.native(path)
	if err != nil {
		warns = append(warns, err.Error())
		text = ""
	}

	if !NeedsOCR(text, s.cfg.MinTextLength) {
		return Result{
			Text:       text,
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     constants.MethodPDFText,
			Warnings:   warns,
		}, nil
	}

	// sparse or missing text layer: one OCR retry, no further escalation
	s.logger.Info("native text layer too sparse, falling back to ocr",
		"path", path, "native_len", len(text))
	ocrText, ocrPages, ocrWarns, ocrErr := s.ocrEngine().PDF(ctx, path)
	warns = append(warns, ocrWarns...)
	if ocrErr != nil {
		if err != nil {
			// neither strategy produced text
			return Result{SourceType: constants.PDF, Warnings: warns},
				fmt.Errorf("%w: %s: %v", common.ErrAcquisition, filepath.Base(path), ocrErr)
		}
		// keep the sparse native text rather than fail the document
		s.logger.Warn("ocr fallback failed, keeping native text", "path", path, "error", ocrErr)
		return Result{
			Text:       text,
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     constants.MethodPDFText,
			Warnings:   append(warns, ocrErr.Error()),
		}, nil
	}

	return Result{
		Text:       cleanOCRText(ocrText),
		Pages:      ocrPages,
		SourceType: constants.PDF,
		Method:     constants.MethodPDFOCR,
		Warnings:   warns,
	}, nil
}
