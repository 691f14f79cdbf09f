package blob

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCS is the Backend implementation used when object_store.provider is Gcs.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS or the ambient
// workload identity, exactly as storage.NewClient resolves them by default.
//
// This is the one dependency in this build with no grounding repo in the
// retrieval pack (see DESIGN.md); the multipart shape still follows
// storj.io/uplink's Begin/Write/Commit/Abort pattern via GCS's own
// resumable Writer.
type GCS struct {
	client *storage.Client
	bucket string
}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) OpenMultipart(ctx context.Context, path string) (Writer, error) {
	w := g.client.Bucket(g.bucket).Object(path).NewWriter(ctx)
	return &gcsWriter{w: w}, nil
}

func (g *GCS) ReadStream(ctx context.Context, path string) (io.ReadCloser, error) {
	r, err := g.client.Bucket(g.bucket).Object(path).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %q: %w", path, err)
	}
	return r, nil
}

// gcsWriter wraps storage.Writer, whose resumable upload session plays the
// same role as S3's multipart upload ID: each Write call appends to the
// session, Finalize (Close) commits it, Abort (CloseWithError) discards it.
type gcsWriter struct {
	w *storage.Writer
}

func (w *gcsWriter) Write(ctx context.Context, p []byte) error {
	if _, err := w.w.Write(p); err != nil {
		return fmt.Errorf("write chunk: %w", err)
	}
	return nil
}

func (w *gcsWriter) Flush(ctx context.Context) error { return nil }

func (w *gcsWriter) Finalize(ctx context.Context) error {
	if err := w.w.Close(); err != nil {
		return fmt.Errorf("commit object: %w", err)
	}
	return nil
}

func (w *gcsWriter) Abort(ctx context.Context) error {
	return w.w.CloseWithError(fmt.Errorf("upload aborted"))
}
