package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/tensorland/modelbox/internal/domain"
)

func TestCreateExperimentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := New()

	e := domain.Experiment{ID: "exp-1", Name: "resnet", Owner: "alice", Namespace: "vision", CreatedAt: time.Now()}

	first, err := m.CreateExperiment(ctx, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Exists {
		t.Fatalf("expected first create to report exists=false")
	}

	second, err := m.CreateExperiment(ctx, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Exists {
		t.Fatalf("expected second create to report exists=true")
	}
	if first.ID != second.ID {
		t.Fatalf("expected stable id across creates, got %q and %q", first.ID, second.ID)
	}

	all, err := m.ListExperiments(ctx, "vision")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one experiment row, got %d", len(all))
	}
}

func TestUpdateMetadataLaterValueWins(t *testing.T) {
	ctx := context.Background()
	m := New()

	entries := []domain.MetadataEntry{
		{ID: "md-1", ParentID: "exp-1", Name: "lr", Meta: []byte(`0.1`)},
		{ID: "md-1", ParentID: "exp-1", Name: "lr", Meta: []byte(`0.01`)},
	}
	if err := m.UpdateMetadata(ctx, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.GetMetadata(ctx, "exp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one metadata row, got %d", len(got))
	}
	if string(got[0].Meta) != `0.01` {
		t.Fatalf("expected later value to win, got %s", got[0].Meta)
	}
}

func TestCreateFilesUpsertsOnID(t *testing.T) {
	ctx := context.Background()
	m := New()

	f := domain.File{ID: "file-1", ParentID: "exp-1", SrcPath: "/tmp/model.pt"}
	if err := m.CreateFiles(ctx, []domain.File{f}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.UploadPath = "modelbox/artifacts/exp-1/file-1"
	if err := m.CreateFiles(ctx, []domain.File{f}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files, err := m.GetFiles(ctx, "exp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected exactly one file row after upsert, got %d", len(files))
	}
	if files[0].UploadPath == "" {
		t.Fatalf("expected upload_path to be set after second write")
	}
}

func TestEventsForObjectOrderedByWallClock(t *testing.T) {
	ctx := context.Background()
	m := New()

	base := time.Now()
	events := []domain.Event{
		{ID: "e2", ParentID: "exp-1", Name: "b", WallClock: base.Add(time.Second)},
		{ID: "e1", ParentID: "exp-1", Name: "a", WallClock: base},
	}
	if err := m.CreateEvents(ctx, events); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.EventsForObject(ctx, "exp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Fatalf("expected events ordered by wall_clock, got %+v", got)
	}
}

func TestLogMetricsAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	m := New()

	samples := []domain.MetricSample{
		{ObjectID: "exp-1", Name: "loss", DoubleValue: 1.0, HasDouble: true},
		{ObjectID: "exp-1", Name: "loss", DoubleValue: 0.5, HasDouble: true},
	}
	if err := m.LogMetrics(ctx, samples); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.Metrics(ctx, "exp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two samples, got %d", len(got))
	}
	if got[0].ID >= got[1].ID {
		t.Fatalf("expected increasing ids, got %d then %d", got[0].ID, got[1].ID)
	}
}
