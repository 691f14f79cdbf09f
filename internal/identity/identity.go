// Package identity derives the deterministic string IDs used for every
// entity in the store. An ID is the decimal string of a 64-bit xxhash of the
// entity's semantic fields, concatenated in a fixed order and separated by a
// byte that cannot appear in any input field. The same inputs always hash to
// the same ID, across processes and across machines; that is the only
// property callers may rely on. See DESIGN.md for why xxhash64 was chosen
// over the source's unstable default hasher.
package identity

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// sep separates concatenated fields. 0x1f (unit separator) does not occur in
// any of the strings the repository stores.
const sep = byte(0x1f)

func digest(fields ...string) string {
	h := xxhash.New()
	for i, f := range fields {
		if i > 0 {
			h.Write([]byte{sep})
		}
		h.Write([]byte(f))
	}
	return strconv.FormatUint(h.Sum64(), 10)
}

// Experiment derives an Experiment ID from (name, owner, namespace).
func Experiment(name, owner, namespace string) string {
	return digest(name, owner, namespace)
}

// Model derives a Model ID from (name, namespace).
func Model(name, namespace string) string {
	return digest(name, namespace)
}

// ModelVersion derives a ModelVersion ID from (model_id, version).
func ModelVersion(modelID, version string) string {
	return digest(modelID, version)
}

// MetadataEntry derives a metadata-row ID from (key, parent_id).
func MetadataEntry(key, parentID string) string {
	return digest(key, parentID)
}

// File derives a File ID from the parent, source path, checksum, file type,
// and both timestamp pairs, per §4.2's File tuple.
func File(parentID, srcPath, checksum, fileTypeString string, createdAtSeconds, createdAtNanos, updatedAtSeconds, updatedAtNanos int64) string {
	return digest(
		parentID,
		srcPath,
		checksum,
		fileTypeString,
		strconv.FormatInt(createdAtSeconds, 10),
		strconv.FormatInt(createdAtNanos, 10),
		strconv.FormatInt(updatedAtSeconds, 10),
		strconv.FormatInt(updatedAtNanos, 10),
	)
}

// Artifact derives an artifact-group ID from (parent_id, artifact_name).
func Artifact(parentID, artifactName string) string {
	return digest(parentID, artifactName)
}

// Event derives an Event ID from (parent_id, event.name, wall_clock_seconds,
// wall_clock_nanos, source.name).
func Event(parentID, name string, wallClockSeconds, wallClockNanos int64, sourceName string) string {
	return digest(
		parentID,
		name,
		strconv.FormatInt(wallClockSeconds, 10),
		strconv.FormatInt(wallClockNanos, 10),
		sourceName,
	)
}
