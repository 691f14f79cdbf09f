// Package domain holds the in-memory entity types the repository persists
// and the conversions to and from their wire representation in
// internal/modelboxpb. Entities carry UTC wall-clock timestamps with
// nanosecond precision rather than the wire's split seconds/nanos pair.
package domain

import "time"

type Experiment struct {
	ID          string
	Name        string
	ExternalID  string
	Owner       string
	Namespace   string
	MlFramework int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Model struct {
	ID          string
	Name        string
	Owner       string
	Namespace   string
	Task        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ModelVersion struct {
	ID           string
	Name         string
	ModelID      string
	ExperimentID string
	Namespace    string
	Version      string
	Description  string
	MlFramework  int32
	// UniqueTags is JSON-encoded on write and decoded on read; see dto.go.
	UniqueTags []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type MetadataEntry struct {
	ID   string
	ParentID string
	Name string
	// Meta holds the opaque JSON-encoded scalar or object exactly as given.
	Meta      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type File struct {
	ID       string
	ParentID string
	SrcPath  string
	// UploadPath is empty until UploadFile persists this row, which it does
	// with the path already set, before any chunk is written.
	UploadPath string
	FileType   string
	// Metadata is a JSON object; it currently only ever carries "checksum".
	Metadata     []byte
	ArtifactName string
	ArtifactID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Checksum extracts the "checksum" key from Metadata, returning "" if the
// key is absent or Metadata doesn't decode.
func (f File) Checksum() string {
	m, err := decodeStringMap(f.Metadata)
	if err != nil {
		return ""
	}
	return m["checksum"]
}

type Artifact struct {
	ID       string
	Name     string
	ParentID string
	Files    []File
}

type Event struct {
	ID       string
	ParentID string
	Name     string
	Source   string
	Metadata []byte
	WallClock time.Time
}

type MetricSample struct {
	ID            int64
	ObjectID      string
	Name          string
	Tensor        string
	HasTensor     bool
	DoubleValue   float64
	HasDouble     bool
	Step          int64
	HasStep       bool
	WallClock     time.Time
	HasWallClock  bool
	CreatedAt     time.Time
}

// ObjectType enumerates which entity kind a MutationEvent describes.
type ObjectType int32

const (
	ObjectTypeUndefined ObjectType = iota
	ObjectTypeExperiment
	ObjectTypeModel
	ObjectTypeModelVersion
)

// MutationType enumerates the kind of change a MutationEvent records.
type MutationType int32

const (
	MutationTypeUndefined MutationType = iota
	MutationTypeCreate
	MutationTypeModify
	MutationTypeUpdate
	MutationTypeDelete
)

// MutationEvent is the append-only change-log row written alongside every
// Experiment/Model/ModelVersion create, in the same transaction.
type MutationEvent struct {
	ID           int64
	ObjectID     string
	ObjectType   ObjectType
	MutationType MutationType
	Namespace    string
	// Payload is the JSON-encoded Experiment, Model, or ModelVersion this
	// mutation describes; exactly one of the three payload columns is
	// populated in storage, selected by ObjectType.
	Payload     []byte
	CreatedAt   time.Time
	ProcessedAt time.Time
	HasProcessedAt bool
}
