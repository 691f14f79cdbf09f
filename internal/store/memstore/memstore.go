// Package memstore is an in-memory Repository implementation for tests and
// local experimentation. Data does not survive process restarts.
package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

// Memstore is an in-memory implementation of store.Repository.
type Memstore struct {
	mu sync.RWMutex

	experiments   map[string]domain.Experiment
	models        map[string]domain.Model
	modelVersions map[string]domain.ModelVersion
	metadata      map[string]domain.MetadataEntry // keyed by metadataKey(parent_id, name)
	files         map[string]domain.File
	events        map[string][]domain.Event // keyed by parent_id
	metrics       map[string][]domain.MetricSample
	nextMetricID  int64
}

func New() *Memstore {
	slog.Info("using in-memory store (data will not persist across restarts)")

	return &Memstore{
		experiments:   make(map[string]domain.Experiment),
		models:        make(map[string]domain.Model),
		modelVersions: make(map[string]domain.ModelVersion),
		metadata:      make(map[string]domain.MetadataEntry),
		files:         make(map[string]domain.File),
		events:        make(map[string][]domain.Event),
		metrics:       make(map[string][]domain.MetricSample),
	}
}

func (m *Memstore) Close() error { return nil }

func metadataKey(parentID, name string) string { return parentID + "\x1f" + name }

// ─── Experiments ───

func (m *Memstore) CreateExperiment(_ context.Context, e domain.Experiment) (store.CreateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.experiments[e.ID]; ok {
		return store.CreateResult{ID: e.ID, Exists: true}, nil
	}
	m.experiments[e.ID] = e
	return store.CreateResult{ID: e.ID, Exists: false}, nil
}

func (m *Memstore) GetExperiment(_ context.Context, id string) (*domain.Experiment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.experiments[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *Memstore) ListExperiments(_ context.Context, namespace string) ([]domain.Experiment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Experiment
	for _, e := range m.experiments {
		if namespace == "" || e.Namespace == namespace {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b domain.Experiment) int {
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		return 0
	})
	return out, nil
}

// ─── Models ───

func (m *Memstore) CreateModel(_ context.Context, model domain.Model) (store.CreateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.models[model.ID]; ok {
		return store.CreateResult{ID: model.ID, Exists: true}, nil
	}
	m.models[model.ID] = model
	return store.CreateResult{ID: model.ID, Exists: false}, nil
}

func (m *Memstore) ModelsByNamespace(_ context.Context, namespace string) ([]domain.Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Model
	for _, mo := range m.models {
		if namespace == "" || mo.Namespace == namespace {
			out = append(out, mo)
		}
	}
	slices.SortFunc(out, func(a, b domain.Model) int {
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		return 0
	})
	return out, nil
}

// ─── Model versions ───

func (m *Memstore) CreateModelVersion(_ context.Context, v domain.ModelVersion) (store.CreateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.modelVersions[v.ID]; ok {
		return store.CreateResult{ID: v.ID, Exists: true}, nil
	}
	m.modelVersions[v.ID] = v
	return store.CreateResult{ID: v.ID, Exists: false}, nil
}

func (m *Memstore) ModelVersionsForModel(_ context.Context, modelID string) ([]domain.ModelVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.ModelVersion
	for _, v := range m.modelVersions {
		if v.ModelID == modelID {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b domain.ModelVersion) int {
		if a.Version != b.Version {
			if a.Version < b.Version {
				return -1
			}
			return 1
		}
		return 0
	})
	return out, nil
}

// ─── Metadata ───

func (m *Memstore) UpdateMetadata(_ context.Context, entries []domain.MetadataEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range entries {
		m.metadata[metadataKey(e.ParentID, e.Name)] = e
	}
	return nil
}

func (m *Memstore) GetMetadata(_ context.Context, parentID string) ([]domain.MetadataEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.MetadataEntry
	for _, e := range m.metadata {
		if e.ParentID == parentID {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b domain.MetadataEntry) int {
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		return 0
	})
	return out, nil
}

// ─── Files ───

func (m *Memstore) CreateFiles(_ context.Context, files []domain.File) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range files {
		if existing, ok := m.files[f.ID]; ok {
			existing.UploadPath = f.UploadPath
			existing.Metadata = f.Metadata
			existing.UpdatedAt = f.UpdatedAt
			m.files[f.ID] = existing
			continue
		}
		m.files[f.ID] = f
	}
	return nil
}

func (m *Memstore) GetFiles(_ context.Context, parentID string) ([]domain.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.File
	for _, f := range m.files {
		if f.ParentID == parentID {
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, b domain.File) int {
		if a.SrcPath != b.SrcPath {
			if a.SrcPath < b.SrcPath {
				return -1
			}
			return 1
		}
		return 0
	})
	return out, nil
}

// ─── Events ───

func (m *Memstore) CreateEvents(_ context.Context, events []domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range events {
		m.events[e.ParentID] = append(m.events[e.ParentID], e)
	}
	return nil
}

func (m *Memstore) EventsForObject(_ context.Context, parentID string) ([]domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := slices.Clone(m.events[parentID])
	slices.SortFunc(out, func(a, b domain.Event) int {
		if a.WallClock.Before(b.WallClock) {
			return -1
		}
		if a.WallClock.After(b.WallClock) {
			return 1
		}
		return 0
	})
	return out, nil
}

// ─── Metrics ───

func (m *Memstore) LogMetrics(_ context.Context, samples []domain.MetricSample) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range samples {
		m.nextMetricID++
		s.ID = m.nextMetricID
		m.metrics[s.ObjectID] = append(m.metrics[s.ObjectID], s)
	}
	return nil
}

func (m *Memstore) Metrics(_ context.Context, objectID string) ([]domain.MetricSample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.metrics[objectID]), nil
}
