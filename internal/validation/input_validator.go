// Package validation performs pre-flight checks on input files before the
// pipeline commits to loading them.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// supportedExtensions lists the input formats the loader accepts.
var supportedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// InputValidator checks sales input files before loading.
type InputValidator struct {
	logger *slog.Logger
}

// NewInputValidator creates an input validator. A nil logger falls back to
// slog.Default.
func NewInputValidator(logger *slog.Logger) *InputValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &InputValidator{logger: logger}
}

// ValidateInputFile checks that the path exists, is a regular non-empty
// file and has a loadable extension.
func (v *InputValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("input path is a directory, not a file: %s", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("input file is empty: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return fmt.Errorf("unsupported input format %q (want .csv, .xlsx or .xls)", ext)
	}

	v.logger.Debug("Input file validated",
		slog.String("path", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}
