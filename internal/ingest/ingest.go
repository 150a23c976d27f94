// Package ingest turns candidate documents and the job description into plain
// text for the scoring core. Per-document extraction failures are downgraded
// to empty text: the engine must never observe an ingest failure, and a broken
// file must never abort the batch.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tsawler/tabula"
	"go.uber.org/zap"
)

// Reader extracts plain text from candidate documents.
type Reader struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Reader {
	return &Reader{logger: logger}
}

// Extract returns the text of every page of the PDF at path, pages separated
// by blank lines. Corrupt, empty or unreadable files yield an empty string;
// the failure is logged and the caller screens the candidate out later.
func (r *Reader) Extract(path string) string {
	content, warnings, err := tabula.Open(path).Text()
	if err != nil {
		r.logger.Warn("extracting document text",
			zap.String("file", path),
			zap.Error(err),
		)
		return ""
	}

	if len(warnings) > 0 {
		r.logger.Debug("document extraction warnings",
			zap.String("file", path),
			zap.String("warnings", tabula.FormatWarnings(warnings)),
		)
	}

	return content
}

// ListDocuments returns the PDF files in dir, sorted by name.
func (r *Reader) ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resumes directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// ReadTextFile reads the whole file at path. Unlike candidate extraction this
// can fail: a missing job description is a caller error, not a per-candidate
// one.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}
