// Package store is the JSON persistence gateway. The in-memory document is
// the source of truth; the file on disk is a mirror, rewritten whole on
// every save and sanitized on every read.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"daylog/internal/model"
	"daylog/internal/sanitize"
)

type Store struct {
	path   string
	logger *slog.Logger
}

func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads and sanitizes the data file. A missing file yields a freshly
// written default document. A file that does not parse (truncated write,
// hand-edited junk) is replaced by a fresh default rather than failing:
// the data is user-owned and the application must always come up.
func (s *Store) Load() (*model.Document, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := model.NewDocument()
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		s.logger.Warn("data file is not valid JSON; starting fresh", "path", s.path, "error", err)
		doc := model.NewDocument()
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return sanitize.Document(parsed), nil
}

// Save writes the document as pretty-printed JSON via a temp file and
// rename, so a crash mid-write cannot truncate the previous good copy.
func (s *Store) Save(doc *model.Document) error {
	return writeDocument(doc, s.path)
}

// Import parses and sanitizes a user-selected JSON file. A parse failure
// is an error and leaves the current document untouched; the caller
// replaces and persists the document only on success.
func (s *Store) Import(path string) (*model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", path, err)
	}
	return sanitize.Document(parsed), nil
}

// Export serializes a document (the full current one, or a caller-filtered
// subset for backup-then-delete flows) to the given path.
func (s *Store) Export(doc *model.Document, path string) error {
	return writeDocument(doc, path)
}

// DefaultExportName suggests a backup filename embedding the given date.
func DefaultExportName(now time.Time) string {
	return fmt.Sprintf("daylog-backup-%s.json", now.Format("2006-01-02"))
}

func writeDocument(doc *model.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
