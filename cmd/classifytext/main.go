// classifytext classifies a single plain-text file and prints the result
// record as JSON. Handy for eyeballing keyword tables without a full batch
// run.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/adeyemi-oso/doctriage/internal/classify"
	"github.com/adeyemi-oso/doctriage/internal/fields"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: classifytext <file.txt>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	classifier := classify.NewClassifier(nil, logger)
	category := classifier.Classify(string(raw))
	fieldMap := fields.Route(category, string(raw))

	out := struct {
		Category string           `json:"category"`
		Fields   *fields.FieldMap `json:"fields"`
	}{string(category), fieldMap}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
