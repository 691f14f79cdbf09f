package rpcserver

import (
	"context"
	"io"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/blob"
	"github.com/tensorland/modelbox/internal/modelboxpb"
	"github.com/tensorland/modelbox/internal/store/memstore"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	return New(memstore.New(), blob.NewFileSystem(root)), root
}

func TestCreateExperimentThenGet(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	createRes, err := s.CreateExperiment(ctx, &modelboxpb.CreateExperimentRequest{
		Experiment: modelboxpb.Experiment{Name: "exp-1", Owner: "alice", Namespace: "ns"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createRes.Exists {
		t.Fatalf("expected first create to report exists=false")
	}

	dup, err := s.CreateExperiment(ctx, &modelboxpb.CreateExperimentRequest{
		Experiment: modelboxpb.Experiment{Name: "exp-1", Owner: "alice", Namespace: "ns"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dup.Exists || dup.ID != createRes.ID {
		t.Fatalf("expected idempotent create to report exists=true with the same id")
	}

	got, err := s.GetExperiment(ctx, &modelboxpb.GetExperimentRequest{ID: createRes.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Experiment.Name != "exp-1" {
		t.Fatalf("expected name exp-1, got %q", got.Experiment.Name)
	}
}

func TestGetExperimentNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	_, err := s.GetExperiment(context.Background(), &modelboxpb.GetExperimentRequest{ID: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCreateExperimentRejectsEmptyName(t *testing.T) {
	s, _ := newTestServer(t)
	_, err := s.CreateExperiment(context.Background(), &modelboxpb.CreateExperimentRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

// fakeUploadStream implements modelboxpb.ModelStore_UploadFileServer without
// a real network connection, feeding a canned list of client frames.
type fakeUploadStream struct {
	ctx    context.Context
	frames []*modelboxpb.UploadFileRequest
	idx    int
	resp   *modelboxpb.UploadFileResponse
}

func (f *fakeUploadStream) Recv() (*modelboxpb.UploadFileRequest, error) {
	if f.idx >= len(f.frames) {
		return nil, io.EOF
	}
	r := f.frames[f.idx]
	f.idx++
	return r, nil
}

func (f *fakeUploadStream) SendAndClose(r *modelboxpb.UploadFileResponse) error {
	f.resp = r
	return nil
}

func (f *fakeUploadStream) Context() context.Context          { return f.ctx }
func (f *fakeUploadStream) SetHeader(metadata.MD) error       { return nil }
func (f *fakeUploadStream) SendHeader(metadata.MD) error      { return nil }
func (f *fakeUploadStream) SetTrailer(metadata.MD)            {}
func (f *fakeUploadStream) SendMsg(m any) error               { return nil }
func (f *fakeUploadStream) RecvMsg(m any) error               { return nil }

// TestUploadFileScenarioS4 exercises spec scenario S4: metadata frame plus
// three chunk frames assembles into one blob and surfaces through
// ListArtifacts as a single artifact with one file.
func TestUploadFileScenarioS4(t *testing.T) {
	s, root := newTestServer(t)
	ctx := context.Background()

	stream := &fakeUploadStream{
		ctx: ctx,
		frames: []*modelboxpb.UploadFileRequest{
			{Metadata: &modelboxpb.UploadFileMetadata{
				ParentID:     "p",
				SrcPath:      "a.bin",
				Checksum:     "abc",
				FileType:     modelboxpb.FileTypeModel,
				ArtifactName: "weights",
			}},
			{Chunks: []byte("AA")},
			{Chunks: []byte("BB")},
			{Chunks: []byte("CC")},
		},
	}

	if err := s.UploadFile(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stream.resp == nil || stream.resp.FileID == "" {
		t.Fatalf("expected a response with a file id")
	}

	path := blob.ArtifactPath("p", stream.resp.FileID)
	r, err := blob.NewFileSystem(root).ReadStream(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error reading blob: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "AABBCC" {
		t.Fatalf("expected %q, got %q", "AABBCC", got)
	}

	list, err := s.ListArtifacts(ctx, &modelboxpb.ListArtifactsRequest{ParentID: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Artifacts) != 1 || list.Artifacts[0].Name != "weights" || len(list.Artifacts[0].Files) != 1 {
		t.Fatalf("expected one artifact named weights with one file, got %+v", list.Artifacts)
	}
}

func TestUploadFileRejectsMissingMetadataFirstFrame(t *testing.T) {
	s, _ := newTestServer(t)
	stream := &fakeUploadStream{
		ctx: context.Background(),
		frames: []*modelboxpb.UploadFileRequest{
			{Chunks: []byte("oops")},
		},
	}
	err := s.UploadFile(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestGetMetricsBucketsByName(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.LogMetrics(ctx, &modelboxpb.LogMetricsRequest{
		ObjectID: "run-1",
		Samples: []modelboxpb.MetricsSample{
			{Name: "loss", Value: modelboxpb.MetricsValue{FVal: 0.5}},
			{Name: "accuracy", Value: modelboxpb.MetricsValue{FVal: 0.9}},
			{Name: "loss", Value: modelboxpb.MetricsValue{FVal: 0.4}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetMetrics(ctx, &modelboxpb.GetMetricsRequest{ObjectID: "run-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Metrics["loss"].Values) != 2 {
		t.Fatalf("expected 2 loss samples, got %d", len(got.Metrics["loss"].Values))
	}
	if len(got.Metrics["accuracy"].Values) != 1 {
		t.Fatalf("expected 1 accuracy sample, got %d", len(got.Metrics["accuracy"].Values))
	}
	if got.Metrics["loss"].Values[0].FVal != 0.5 || got.Metrics["loss"].Values[1].FVal != 0.4 {
		t.Fatalf("expected insertion order preserved within bucket, got %+v", got.Metrics["loss"].Values)
	}
}

func TestDownloadFileAndWatchNamespaceUnimplemented(t *testing.T) {
	s, _ := newTestServer(t)
	if status.Code(s.DownloadFile(&modelboxpb.DownloadFileRequest{}, nil)) != codes.Unimplemented {
		t.Fatalf("expected Unimplemented from DownloadFile")
	}
	if status.Code(s.WatchNamespace(&modelboxpb.WatchNamespaceRequest{}, nil)) != codes.Unimplemented {
		t.Fatalf("expected Unimplemented from WatchNamespace")
	}
}
