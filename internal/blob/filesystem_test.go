package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystemFinalizeMakesObjectReadable(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	fs := NewFileSystem(root)

	path := ArtifactPath("exp-1", "file-1")

	w, err := fs.OpenMultipart(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(ctx, []byte("hello ")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(ctx, []byte("world")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, path)); err == nil {
		t.Fatalf("object should not exist before Finalize")
	}

	if err := w.Finalize(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := fs.ReadStream(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
}

func TestFileSystemAbortRemovesTempFile(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	fs := NewFileSystem(root)

	path := ArtifactPath("exp-1", "file-2")
	w, err := fs.OpenMultipart(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(ctx, []byte("partial")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Abort(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if e.Name() == "exp-1" {
			sub, _ := os.ReadDir(filepath.Join(root, "exp-1"))
			if len(sub) != 0 {
				t.Fatalf("expected no leftover files after abort, found %v", sub)
			}
		}
	}

	if _, err := fs.ReadStream(ctx, path); err == nil {
		t.Fatalf("expected object to not exist after abort")
	}
}
