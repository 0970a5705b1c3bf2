package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/compozy/minmax/pkg/logger"
)

const (
	// DefaultFileName is the name of the persisted report inside the target directory.
	DefaultFileName = "reporte_normalizacion.json"
	// DefaultDir is the directory used when the caller does not pick one.
	DefaultDir = "data"
	// DefaultIndent is the number of spaces per JSON indent level.
	DefaultIndent = 4
)

// Store persists reports on an afero filesystem.
type Store struct {
	fs       afero.Fs
	fileName string
	indent   int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

func WithFileName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.fileName = name
		}
	}
}

func WithIndent(indent int) StoreOption {
	return func(s *Store) {
		if indent >= 0 {
			s.indent = indent
		}
	}
}

// NewStore returns a Store writing to fs, or to the OS filesystem when fs is nil.
func NewStore(fs afero.Fs, opts ...StoreOption) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Store{
		fs:       fs,
		fileName: DefaultFileName,
		indent:   DefaultIndent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes r as JSON into dir, creating dir if needed, and returns the file path.
// The file is replaced atomically so readers never observe a partial report.
func (s *Store) Save(ctx context.Context, r *Report, dir string) (string, error) {
	log := logger.FromContext(ctx)
	if r == nil {
		return "", fmt.Errorf("report cannot be nil")
	}
	if dir == "" {
		dir = DefaultDir
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	data, err := r.JSON(s.indent)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	path := filepath.Join(dir, s.fileName)
	if err := s.writeAtomic(path, data); err != nil {
		return "", err
	}
	log.Debug("report saved", "path", path, "bytes", len(data))
	return path, nil
}

func (s *Store) writeAtomic(path string, data []byte) error {
	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to close report %s: %w", path, err)
	}
	if err := s.fs.Chmod(tmpName, 0o644); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to move report into place at %s: %w", path, err)
	}
	return nil
}

// Load reads a report previously written by Save.
func (s *Store) Load(ctx context.Context, path string) (*Report, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	logger.FromContext(ctx).Debug("report loaded", "path", path)
	return &r, nil
}
