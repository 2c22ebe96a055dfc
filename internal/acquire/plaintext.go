package acquire

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// readPlainText reads a .txt document directly.
func readPlainText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("not valid UTF-8 text: %s", filepath.Base(path))
	}
	return string(raw), nil
}
