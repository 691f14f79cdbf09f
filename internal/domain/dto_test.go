package domain

import (
	"testing"
	"time"

	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func TestExperimentRoundTrip(t *testing.T) {
	w := modelboxpb.Experiment{
		Name:        "resnet",
		Owner:       "alice",
		Namespace:   "vision",
		MlFramework: modelboxpb.MlFrameworkPytorch,
	}
	e := ExperimentFromWire(w)
	if e.ID == "" {
		t.Fatalf("expected derived id")
	}
	if e.CreatedAt != e.UpdatedAt {
		t.Fatalf("expected created_at == updated_at on create")
	}
	back := ExperimentToWire(e)
	if back.Name != w.Name || back.Owner != w.Owner || back.Namespace != w.Namespace {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestTimestampToWireUsesUnixEpoch(t *testing.T) {
	tm := time.Date(2026, 7, 30, 12, 34, 56, 789, time.UTC)
	got := TimestampToWire(tm)
	if got.Seconds != tm.Unix() {
		t.Fatalf("expected seconds = unix epoch seconds, got %d want %d", got.Seconds, tm.Unix())
	}
	if got.Nanos != int32(tm.Nanosecond()) {
		t.Fatalf("expected nanos = %d, got %d", tm.Nanosecond(), got.Nanos)
	}
	// second-of-minute for this instant is 56, which must NOT appear here
	// unless it coincidentally matches unix seconds mod 60.
	if got.Seconds == int64(tm.Second()) && tm.Unix() != int64(tm.Second()) {
		t.Fatalf("timestamp regressed to second-of-minute encoding")
	}
}

func TestModelVersionTagsPreserveOrder(t *testing.T) {
	w := modelboxpb.ModelVersion{
		ModelID:    "m-1",
		Version:    "v1",
		UniqueTags: []string{"beta", "alpha", "beta"},
	}
	v, err := ModelVersionFromWire(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"beta", "alpha", "beta"}
	if len(v.UniqueTags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(v.UniqueTags))
	}
	for i := range want {
		if v.UniqueTags[i] != want[i] {
			t.Fatalf("tag order mismatch at %d: got %q want %q", i, v.UniqueTags[i], want[i])
		}
	}
}

func TestFileFromUploadMetadataChecksumRoundTrip(t *testing.T) {
	f, err := FileFromUploadMetadata(modelboxpb.UploadFileMetadata{
		ParentID: "exp-1",
		SrcPath:  "/tmp/model.pt",
		Checksum: "abc123",
		FileType: modelboxpb.FileTypeModel,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Checksum() != "abc123" {
		t.Fatalf("expected checksum abc123, got %q", f.Checksum())
	}
	if f.UploadPath != "" {
		t.Fatalf("expected empty upload_path before finalize")
	}
	w := FileToWire(f)
	if w.Checksum != "abc123" || w.FileType != modelboxpb.FileTypeModel {
		t.Fatalf("round trip mismatch: %+v", w)
	}
}

func TestEventFromWireDefaultsWallClock(t *testing.T) {
	e, err := EventFromWire("exp-1", modelboxpb.Event{Name: "epoch_end"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.WallClock.IsZero() {
		t.Fatalf("expected wall_clock to default to now")
	}
	if e.ID == "" {
		t.Fatalf("expected derived id")
	}
}
