package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSystem is the Backend implementation used when object_store.provider
// is FileSystem: a local directory tree rooted at Root, written via a
// temporary file that is atomically renamed into place on Finalize so a
// reader never observes a partially-written object.
type FileSystem struct {
	Root string
}

func NewFileSystem(root string) *FileSystem {
	return &FileSystem{Root: root}
}

func (f *FileSystem) OpenMultipart(ctx context.Context, path string) (Writer, error) {
	full := filepath.Join(f.Root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &fileSystemWriter{finalPath: full, tmp: tmp}, nil
}

func (f *FileSystem) ReadStream(ctx context.Context, path string) (io.ReadCloser, error) {
	full := filepath.Join(f.Root, path)
	file, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open object %q: %w", path, err)
	}
	return file, nil
}

type fileSystemWriter struct {
	finalPath string
	tmp       *os.File
}

func (w *fileSystemWriter) Write(ctx context.Context, p []byte) error {
	if _, err := w.tmp.Write(p); err != nil {
		return fmt.Errorf("write chunk: %w", err)
	}
	return nil
}

func (w *fileSystemWriter) Flush(ctx context.Context) error {
	if err := w.tmp.Sync(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (w *fileSystemWriter) Finalize(ctx context.Context) error {
	if err := w.tmp.Close(); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(w.tmp.Name(), w.finalPath); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func (w *fileSystemWriter) Abort(ctx context.Context) error {
	w.tmp.Close()
	if err := os.Remove(w.tmp.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}
