package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tensorland/modelbox/internal/identity"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func decodeStringMap(b []byte) (map[string]string, error) {
	if len(b) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode json object: %w", err)
	}
	return m, nil
}

func encodeStringMap(m map[string]string) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode json object: %w", err)
	}
	return b, nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode unique_tags: %w", err)
	}
	return b, nil
}

func decodeTags(b []byte) ([]string, error) {
	if len(b) == 0 {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal(b, &tags); err != nil {
		return nil, fmt.Errorf("decode unique_tags: %w", err)
	}
	return tags, nil
}

// ExperimentFromWire derives the ID and stamps created_at/updated_at for a
// newly-submitted experiment.
func ExperimentFromWire(w modelboxpb.Experiment) Experiment {
	now := time.Now().UTC()
	return Experiment{
		ID:          identity.Experiment(w.Name, w.Owner, w.Namespace),
		Name:        w.Name,
		ExternalID:  w.ExternalID,
		Owner:       w.Owner,
		Namespace:   w.Namespace,
		MlFramework: int32(modelboxpb.NormalizeMlFramework(w.MlFramework)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ExperimentToWire(e Experiment) modelboxpb.Experiment {
	return modelboxpb.Experiment{
		ID:          e.ID,
		Name:        e.Name,
		ExternalID:  e.ExternalID,
		Owner:       e.Owner,
		Namespace:   e.Namespace,
		MlFramework: modelboxpb.MlFramework(e.MlFramework),
		CreatedAt:   TimestampToWire(e.CreatedAt),
		UpdatedAt:   TimestampToWire(e.UpdatedAt),
	}
}

func ModelFromWire(w modelboxpb.Model) Model {
	now := time.Now().UTC()
	return Model{
		ID:          identity.Model(w.Name, w.Namespace),
		Name:        w.Name,
		Owner:       w.Owner,
		Namespace:   w.Namespace,
		Task:        w.Task,
		Description: w.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ModelToWire(m Model) modelboxpb.Model {
	return modelboxpb.Model{
		ID:          m.ID,
		Name:        m.Name,
		Owner:       m.Owner,
		Namespace:   m.Namespace,
		Task:        m.Task,
		Description: m.Description,
		CreatedAt:   TimestampToWire(m.CreatedAt),
		UpdatedAt:   TimestampToWire(m.UpdatedAt),
	}
}

func ModelVersionFromWire(w modelboxpb.ModelVersion) (ModelVersion, error) {
	now := time.Now().UTC()
	tags := w.UniqueTags
	if tags == nil {
		tags = []string{}
	}
	// Encode the tags once here so an encoding failure (should be impossible
	// for a []string) surfaces at create time, not when the row is persisted.
	if _, err := encodeTags(tags); err != nil {
		return ModelVersion{}, err
	}
	return ModelVersion{
		ID:           identity.ModelVersion(w.ModelID, w.Version),
		Name:         w.Name,
		ModelID:      w.ModelID,
		ExperimentID: "", // always empty on create; see DESIGN.md
		Namespace:    w.Namespace,
		Version:      w.Version,
		Description:  w.Description,
		MlFramework:  int32(modelboxpb.NormalizeMlFramework(w.MlFramework)),
		UniqueTags:   tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func ModelVersionToWire(v ModelVersion) modelboxpb.ModelVersion {
	return modelboxpb.ModelVersion{
		ID:           v.ID,
		Name:         v.Name,
		ModelID:      v.ModelID,
		ExperimentID: v.ExperimentID,
		Namespace:    v.Namespace,
		Version:      v.Version,
		Description:  v.Description,
		MlFramework:  modelboxpb.MlFramework(v.MlFramework),
		UniqueTags:   v.UniqueTags,
		CreatedAt:    TimestampToWire(v.CreatedAt),
		UpdatedAt:    TimestampToWire(v.UpdatedAt),
	}
}

// EncodeModelVersionTags is exposed for the postgres store, which persists
// UniqueTags as a JSON column rather than a native array.
func EncodeModelVersionTags(tags []string) ([]byte, error) { return encodeTags(tags) }

// DecodeModelVersionTags is the read-side counterpart of EncodeModelVersionTags.
func DecodeModelVersionTags(b []byte) ([]string, error) { return decodeTags(b) }

// MetadataEntriesFromWire converts the metadata list of an UpdateMetadataRequest
// into rows ready for upsert. A later entry for the same name shadows an
// earlier one in the same call, matching the "later value wins" upsert rule.
func MetadataEntriesFromWire(parentID string, entries []modelboxpb.MetadataEntry) []MetadataEntry {
	now := time.Now().UTC()
	out := make([]MetadataEntry, 0, len(entries))
	for _, e := range entries {
		meta := e.Meta
		if meta == nil {
			meta = []byte("null")
		}
		out = append(out, MetadataEntry{
			ID:        identity.MetadataEntry(e.Name, parentID),
			ParentID:  parentID,
			Name:      e.Name,
			Meta:      meta,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}

func MetadataEntryToWire(m MetadataEntry) modelboxpb.MetadataEntry {
	return modelboxpb.MetadataEntry{
		ID:        m.ID,
		ParentID:  m.ParentID,
		Name:      m.Name,
		Meta:      m.Meta,
		CreatedAt: TimestampToWire(m.CreatedAt),
		UpdatedAt: TimestampToWire(m.UpdatedAt),
	}
}

// FileFromUploadMetadata builds the File row for an UploadFile RPC's first
// frame. UploadPath is left empty; the caller sets it before persisting the
// row and opening the blob writer.
func FileFromUploadMetadata(meta modelboxpb.UploadFileMetadata) (File, error) {
	now := time.Now().UTC()
	metaJSON, err := encodeStringMap(map[string]string{"checksum": meta.Checksum})
	if err != nil {
		return File{}, err
	}
	ftype := modelboxpb.FileType(meta.FileType).String()
	return File{
		ID: identity.File(meta.ParentID, meta.SrcPath, meta.Checksum, ftype,
			now.Unix(), int64(now.Nanosecond()), now.Unix(), int64(now.Nanosecond())),
		ParentID:     meta.ParentID,
		SrcPath:      meta.SrcPath,
		UploadPath:   "",
		FileType:     ftype,
		Metadata:     metaJSON,
		ArtifactName: meta.ArtifactName,
		ArtifactID:   identity.Artifact(meta.ParentID, meta.ArtifactName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// FileFromWire converts a fully-specified wire File (used by TrackArtifacts,
// where the caller already uploaded the blob out of band) into a row.
func FileFromWire(parentID, artifactName string, w modelboxpb.File) (File, error) {
	now := time.Now().UTC()
	created := TimestampFromWire(w.CreatedAt)
	if created.IsZero() {
		created = now
	}
	updated := TimestampFromWire(w.UpdatedAt)
	if updated.IsZero() {
		updated = now
	}
	checksum := w.Checksum
	metaJSON, err := encodeStringMap(map[string]string{"checksum": checksum})
	if err != nil {
		return File{}, err
	}
	ftype := modelboxpb.FileType(w.FileType).String()
	return File{
		ID: identity.File(parentID, w.SrcPath, checksum, ftype,
			created.Unix(), int64(created.Nanosecond()), updated.Unix(), int64(updated.Nanosecond())),
		ParentID:     parentID,
		SrcPath:      w.SrcPath,
		UploadPath:   w.UploadPath,
		FileType:     ftype,
		Metadata:     metaJSON,
		ArtifactName: artifactName,
		ArtifactID:   identity.Artifact(parentID, artifactName),
		CreatedAt:    created,
		UpdatedAt:    updated,
	}, nil
}

func FileToWire(f File) modelboxpb.File {
	return modelboxpb.File{
		ID:           f.ID,
		ParentID:     f.ParentID,
		SrcPath:      f.SrcPath,
		UploadPath:   f.UploadPath,
		FileType:     modelboxpb.FileType(fileTypeFromString(f.FileType)),
		Checksum:     f.Checksum(),
		ArtifactName: f.ArtifactName,
		ArtifactID:   f.ArtifactID,
		CreatedAt:    TimestampToWire(f.CreatedAt),
		UpdatedAt:    TimestampToWire(f.UpdatedAt),
	}
}

func fileTypeFromString(s string) modelboxpb.FileType {
	switch s {
	case "Model":
		return modelboxpb.FileTypeModel
	case "Checkpoint":
		return modelboxpb.FileTypeCheckpoint
	case "Text":
		return modelboxpb.FileTypeText
	case "Image":
		return modelboxpb.FileTypeImage
	case "Audio":
		return modelboxpb.FileTypeAudio
	case "Video":
		return modelboxpb.FileTypeVideo
	default:
		return modelboxpb.FileTypeUndefined
	}
}

// EventFromWire converts a LogEventRequest's embedded Event into a row. If
// the wire event omits wall_clock_time, now() is stamped and used for both
// the row and the ID derivation.
func EventFromWire(parentID string, w modelboxpb.Event) (Event, error) {
	metaJSON := w.Metadata
	if metaJSON == nil {
		metaJSON = []byte("null")
	}
	wallClock := TimestampFromWire(w.WallClock)
	if wallClock.IsZero() {
		wallClock = time.Now().UTC()
	}
	sourceName := ""
	if w.Source != nil {
		sourceName = w.Source.Name
	}
	return Event{
		ID:        identity.Event(parentID, w.Name, wallClock.Unix(), int64(wallClock.Nanosecond()), sourceName),
		ParentID:  parentID,
		Name:      w.Name,
		Source:    sourceName,
		Metadata:  metaJSON,
		WallClock: wallClock,
	}, nil
}

func EventToWire(e Event) modelboxpb.Event {
	return modelboxpb.Event{
		ID:       e.ID,
		ParentID: e.ParentID,
		Name:     e.Name,
		Source:   &modelboxpb.EventSource{Name: e.Source},
		Metadata: e.Metadata,
		WallClock: TimestampToWire(e.WallClock),
	}
}

// MetricSampleFromWire converts one sample of a LogMetricsRequest into a row
// ready for append; ID is assigned by the store on insert (auto-increment).
func MetricSampleFromWire(objectID string, s modelboxpb.MetricsSample) MetricSample {
	row := MetricSample{
		ObjectID:  objectID,
		Name:      s.Name,
		CreatedAt: time.Now().UTC(),
	}
	if s.Value.Tensor != "" {
		row.Tensor = s.Value.Tensor
		row.HasTensor = true
	}
	if s.Value.FVal != 0 {
		row.DoubleValue = s.Value.FVal
		row.HasDouble = true
	}
	if s.Value.Step != 0 {
		row.Step = s.Value.Step
		row.HasStep = true
	}
	if wc := TimestampFromWire(s.Value.WallclockTime); !wc.IsZero() {
		row.WallClock = wc
		row.HasWallClock = true
	}
	return row
}

func MetricSampleToWire(s MetricSample) modelboxpb.MetricsValue {
	v := modelboxpb.MetricsValue{Step: s.Step}
	if s.HasTensor {
		v.Tensor = s.Tensor
	}
	if s.HasDouble {
		v.FVal = s.DoubleValue
	}
	if s.HasWallClock {
		v.WallclockTime = TimestampToWire(s.WallClock)
	}
	return v
}
