// Package modelboxpb holds the Go bindings for proto/modelbox/service.proto.
//
// These types are authored by hand rather than emitted by protoc, since this
// build never invokes the Go toolchain. They mirror service.proto field for
// field and enum value for enum value, and travel over the wire through the
// JSON codec registered in codec.go rather than binary protobuf encoding —
// see that file's doc comment for why that is a reasonable trade in this
// setting and what it costs.
package modelboxpb

// FileType enumerates the kind of binary blob a File row points at. Values
// are fixed on the wire; do not renumber.
type FileType int32

const (
	FileTypeUndefined  FileType = 0
	FileTypeModel      FileType = 1
	FileTypeCheckpoint FileType = 2
	FileTypeText       FileType = 3
	FileTypeImage      FileType = 4
	FileTypeAudio      FileType = 5
	FileTypeVideo      FileType = 6
)

func (f FileType) String() string {
	switch f {
	case FileTypeModel:
		return "Model"
	case FileTypeCheckpoint:
		return "Checkpoint"
	case FileTypeText:
		return "Text"
	case FileTypeImage:
		return "Image"
	case FileTypeAudio:
		return "Audio"
	case FileTypeVideo:
		return "Video"
	default:
		return "Undefined"
	}
}

// MlFramework is the client's declared training framework. Servers accept
// any integer and treat values outside this set as Unknown.
type MlFramework int32

const (
	MlFrameworkUnknown MlFramework = 0
	MlFrameworkPytorch MlFramework = 1
	MlFrameworkKeras   MlFramework = 2
)

// NormalizeMlFramework maps an arbitrary wire integer to a known framework, collapsing
// anything the server doesn't recognize to Unknown per spec.
func NormalizeMlFramework(v int32) MlFramework {
	switch MlFramework(v) {
	case MlFrameworkPytorch:
		return MlFrameworkPytorch
	case MlFrameworkKeras:
		return MlFrameworkKeras
	default:
		return MlFrameworkUnknown
	}
}

// ChangeEvent is the kind of change a mutation-event row represents, used by
// the (future) namespace watcher.
type ChangeEvent int32

const (
	ChangeEventUndefined      ChangeEvent = 0
	ChangeEventObjectCreated  ChangeEvent = 1
	ChangeEventObjectUpdated  ChangeEvent = 2
)

// ObjectType identifies which entity kind a mutation row describes.
type ObjectType int32

const (
	ObjectTypeUndefined    ObjectType = 0
	ObjectTypeExperiment   ObjectType = 1
	ObjectTypeModel        ObjectType = 2
	ObjectTypeModelVersion ObjectType = 3
)

// MutationType identifies the kind of mutation a change-log row records.
type MutationType int32

const (
	MutationTypeUndefined MutationType = 0
	MutationTypeCreate    MutationType = 1
	MutationTypeModify    MutationType = 2
	MutationTypeUpdate    MutationType = 3
	MutationTypeDelete    MutationType = 4
)

// Timestamp is the wire representation of an instant: Unix-epoch seconds
// plus the nanosecond remainder. Never second-of-minute — see DESIGN.md for
// the defect this fixes relative to the original source.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

type Experiment struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ExternalID  string      `json:"external_id"`
	Owner       string      `json:"owner"`
	Namespace   string      `json:"namespace"`
	MlFramework MlFramework `json:"ml_framework"`
	CreatedAt   *Timestamp  `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp  `json:"updated_at,omitempty"`
}

type Model struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Owner       string     `json:"owner"`
	Namespace   string     `json:"namespace"`
	Task        string     `json:"task"`
	Description string     `json:"description"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

type ModelVersion struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ModelID     string      `json:"model_id"`
	ExperimentID string     `json:"experiment_id"`
	Namespace   string      `json:"namespace"`
	Version     string      `json:"version"`
	Description string      `json:"description"`
	MlFramework MlFramework `json:"ml_framework"`
	UniqueTags  []string    `json:"unique_tags"`
	CreatedAt   *Timestamp  `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp  `json:"updated_at,omitempty"`
}

type MetadataEntry struct {
	ID        string     `json:"id"`
	ParentID  string     `json:"parent_id"`
	Name      string     `json:"name"`
	Meta      []byte     `json:"meta"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty"`
}

type File struct {
	ID           string     `json:"id"`
	ParentID     string     `json:"parent_id"`
	SrcPath      string     `json:"src_path"`
	UploadPath   string     `json:"upload_path"`
	FileType     FileType   `json:"file_type"`
	Checksum     string     `json:"checksum"`
	ArtifactName string     `json:"artifact_name"`
	ArtifactID   string     `json:"artifact_id"`
	CreatedAt    *Timestamp `json:"created_at,omitempty"`
	UpdatedAt    *Timestamp `json:"updated_at,omitempty"`
}

type Artifact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Files    []File `json:"files"`
}

type EventSource struct {
	Name string `json:"name"`
}

type Event struct {
	ID        string       `json:"id"`
	ParentID  string       `json:"parent_id"`
	Name      string       `json:"name"`
	Source    *EventSource `json:"source,omitempty"`
	Metadata  []byte       `json:"metadata"`
	WallClock *Timestamp   `json:"wall_clock,omitempty"`
}

type MetricsValue struct {
	Tensor        string     `json:"tensor"`
	FVal          float64    `json:"f_val"`
	Step          int64      `json:"step"`
	WallclockTime *Timestamp `json:"wallclock_time,omitempty"`
}

type MetricsSample struct {
	Name  string       `json:"name"`
	Value MetricsValue `json:"value"`
}

// ─── Request / response messages ───

type CreateExperimentRequest struct {
	Experiment Experiment `json:"experiment"`
}

type CreateExperimentResponse struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}

type ListExperimentsRequest struct {
	Namespace string `json:"namespace"`
}

type ListExperimentsResponse struct {
	Experiments []Experiment `json:"experiments"`
}

type GetExperimentRequest struct {
	ID string `json:"id"`
}

type GetExperimentResponse struct {
	Experiment Experiment `json:"experiment"`
}

type CreateModelRequest struct {
	Model Model `json:"model"`
}

type CreateModelResponse struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}

type ListModelsRequest struct {
	Namespace string `json:"namespace"`
}

type ListModelsResponse struct {
	Models []Model `json:"models"`
}

type CreateModelVersionRequest struct {
	ModelVersion ModelVersion `json:"model_version"`
}

type CreateModelVersionResponse struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}

type ListModelVersionsRequest struct {
	ModelID string `json:"model_id"`
}

type ListModelVersionsResponse struct {
	ModelVersions []ModelVersion `json:"model_versions"`
}

type UpdateMetadataRequest struct {
	ParentID string          `json:"parent_id"`
	Metadata []MetadataEntry `json:"metadata"`
}

type UpdateMetadataResponse struct{}

type ListMetadataRequest struct {
	ParentID string `json:"parent_id"`
}

type ListMetadataResponse struct {
	Metadata []MetadataEntry `json:"metadata"`
}

type TrackArtifactsRequest struct {
	ParentID     string `json:"parent_id"`
	ArtifactName string `json:"artifact_name"`
	Files        []File `json:"files"`
}

type TrackArtifactsResponse struct {
	ID string `json:"id"`
}

type ListArtifactsRequest struct {
	ParentID string `json:"parent_id"`
}

type ListArtifactsResponse struct {
	Artifacts []Artifact `json:"artifacts"`
}

type LogMetricsRequest struct {
	ObjectID string          `json:"object_id"`
	Samples  []MetricsSample `json:"samples"`
}

type LogMetricsResponse struct{}

type GetMetricsRequest struct {
	ObjectID string `json:"object_id"`
}

type GetMetricsResponse struct {
	Metrics map[string]MetricsSampleList `json:"metrics"`
}

type MetricsSampleList struct {
	Values []MetricsValue `json:"values"`
}

type LogEventRequest struct {
	ParentID string `json:"parent_id"`
	Event    Event  `json:"event"`
}

type LogEventResponse struct{}

type ListEventsRequest struct {
	ParentID string `json:"parent_id"`
}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type UploadFileMetadata struct {
	ParentID     string   `json:"parent_id"`
	SrcPath      string   `json:"src_path"`
	Checksum     string   `json:"checksum"`
	FileType     FileType `json:"file_type"`
	ArtifactName string   `json:"artifact_name"`
}

// UploadFileRequest is a oneof frame: exactly one of Metadata or Chunks is
// set. The zero value (both nil) is the InvalidArgument case.
type UploadFileRequest struct {
	Metadata *UploadFileMetadata `json:"metadata,omitempty"`
	Chunks   []byte              `json:"chunks,omitempty"`
}

type UploadFileResponse struct {
	FileID     string `json:"file_id"`
	ArtifactID string `json:"artifact_id"`
}

type DownloadFileRequest struct {
	FileID string `json:"file_id"`
}

type DownloadFileResponse struct {
	Chunks []byte `json:"chunks"`
}

type WatchNamespaceRequest struct {
	Namespace string `json:"namespace"`
}

type WatchNamespaceResponse struct {
	Event      ChangeEvent `json:"event"`
	ObjectType ObjectType  `json:"object_type"`
	ObjectID   string      `json:"object_id"`
}
