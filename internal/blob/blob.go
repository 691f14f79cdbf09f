// Package blob is the polymorphic object-store backend the upload RPC
// writes through. One interface, three providers (local filesystem, S3,
// GCS), modeled uniformly on storj.io/uplink's Begin/UploadPart/Commit/
// Abort multipart shape: open a write handle, stream chunks into it, then
// either finalize or abort.
package blob

import (
	"context"
	"io"
)

// Writer is a handle to one in-progress multipart object write. Write may
// be called any number of times with successive chunks; Flush gives the
// backend a chance to push buffered data without closing the object;
// Finalize commits the write and makes the object durable and readable;
// Abort discards it. Exactly one of Finalize or Abort must be called.
type Writer interface {
	Write(ctx context.Context, p []byte) error
	Flush(ctx context.Context) error
	Finalize(ctx context.Context) error
	Abort(ctx context.Context) error
}

// Backend is the uniform interface over the configured object-store
// provider. Paths are the full key including prefix, e.g.
// "modelbox/artifacts/{parent_id}/{file_id}".
type Backend interface {
	OpenMultipart(ctx context.Context, path string) (Writer, error)
	ReadStream(ctx context.Context, path string) (io.ReadCloser, error)
}

// ArtifactPath builds the object key an uploaded file is stored under:
// modelbox/artifacts/{parent_id}/{file_id}.
func ArtifactPath(parentID, fileID string) string {
	return "modelbox/artifacts/" + parentID + "/" + fileID
}
