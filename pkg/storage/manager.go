package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gifsaver/pkg/errors"
)

// Manager owns the output directory: the numbered GIF files and the manifest
type Manager struct {
	outputDir string
	extension string
}

// NewManager creates a storage manager for outputDir. Files written by the
// exporter and listed by the reader carry extension (for example ".gif").
// The directory is not created until EnsureDir is called.
func NewManager(outputDir, extension string) *Manager {
	return &Manager{
		outputDir: outputDir,
		extension: extension,
	}
}

// EnsureDir creates the output directory if it doesn't exist
func (m *Manager) EnsureDir() error {
	if err := os.MkdirAll(m.outputDir, 0755); err != nil {
		return errors.FileSystem("failed to create output directory", err)
	}
	return nil
}

// GetOutputDir returns the output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}

// FileName returns the name of the file saved at position index
func (m *Manager) FileName(index int) string {
	return fmt.Sprintf("%d%s", index, m.extension)
}

// Path joins name onto the output directory
func (m *Manager) Path(name string) string {
	return filepath.Join(m.outputDir, name)
}

// ListFiles returns the names of non-directory entries ending in the
// configured extension, in directory-listing order. Symlinks are listed
// without being followed.
func (m *Manager) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(m.outputDir)
	if err != nil {
		return nil, errors.FileSystem("failed to read output directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), m.extension) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// WriteFileAtomic streams r into path through a temporary file in the same
// directory, syncs it and renames it into place. On failure the temporary
// file is removed and path is left untouched.
func WriteFileAtomic(path string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, errors.FileSystem("failed to create temporary file", err)
	}
	tempFile := tmp.Name()

	written, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tempFile)
		return written, err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tempFile)
		return written, errors.FileSystem("failed to sync file", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tempFile)
		return written, errors.FileSystem("failed to close file", err)
	}

	if err := os.Chmod(tempFile, 0644); err != nil {
		os.Remove(tempFile)
		return written, errors.FileSystem("failed to set file mode", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return written, errors.FileSystem("failed to rename temporary file", err)
	}

	return written, nil
}
