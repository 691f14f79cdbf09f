package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 is the Backend implementation used when object_store.provider is S3.
// Credentials and region come from the standard AWS environment variables
// and shared config files via config.LoadDefaultConfig; nothing here reads
// them directly.
type S3 struct {
	client *s3.Client
	bucket string
}

func NewS3(ctx context.Context, bucket string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (b *S3) OpenMultipart(ctx context.Context, path string) (Writer, error) {
	out, err := b.client.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("begin multipart upload %q: %w", path, err)
	}
	return &s3Writer{client: b.client, bucket: b.bucket, key: path, uploadID: aws.ToString(out.UploadId)}, nil
}

func (b *S3) ReadStream(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", path, err)
	}
	return out.Body, nil
}

// s3Writer buffers Write calls into parts and tracks the completed-part
// list CompleteMultipartUpload needs. S3 requires every part but the last
// to be at least 5 MiB; Flush is a no-op since each Write call already
// uploads a complete part.
type s3Writer struct {
	client   *s3.Client
	bucket   string
	key      string
	uploadID string

	partNumber int32
	parts      []types.CompletedPart
}

func (w *s3Writer) Write(ctx context.Context, p []byte) error {
	w.partNumber++
	out, err := w.client.UploadPart(ctx, &s3.UploadPartInput{
		Bucket:     aws.String(w.bucket),
		Key:        aws.String(w.key),
		UploadId:   aws.String(w.uploadID),
		PartNumber: aws.Int32(w.partNumber),
		Body:       bytes.NewReader(p),
	})
	if err != nil {
		return fmt.Errorf("upload part %d: %w", w.partNumber, err)
	}
	w.parts = append(w.parts, types.CompletedPart{ETag: out.ETag, PartNumber: aws.Int32(w.partNumber)})
	return nil
}

func (w *s3Writer) Flush(ctx context.Context) error { return nil }

func (w *s3Writer) Finalize(ctx context.Context) error {
	_, err := w.client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:          aws.String(w.bucket),
		Key:             aws.String(w.key),
		UploadId:        aws.String(w.uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{Parts: w.parts},
	})
	if err != nil {
		return fmt.Errorf("complete multipart upload %q: %w", w.key, err)
	}
	return nil
}

func (w *s3Writer) Abort(ctx context.Context) error {
	_, err := w.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(w.bucket),
		Key:      aws.String(w.key),
		UploadId: aws.String(w.uploadID),
	})
	if err != nil {
		return fmt.Errorf("abort multipart upload %q: %w", w.key, err)
	}
	return nil
}
