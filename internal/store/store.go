// Package store defines the repository contract ModelBox's RPC handlers run
// against, and the error taxonomy every implementation must surface.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/tensorland/modelbox/internal/domain"
)

// CreateResult is returned by every create_* operation: the entity's
// (possibly pre-existing) ID, and whether it already existed.
type CreateResult struct {
	ID     string
	Exists bool
}

// Repository is the persistence contract. Every method either returns a
// result or one of the error kinds in this package; callers map those kinds
// to gRPC status codes (see internal/rpcserver).
type Repository interface {
	CreateExperiment(ctx context.Context, e domain.Experiment) (CreateResult, error)
	CreateModel(ctx context.Context, m domain.Model) (CreateResult, error)
	CreateModelVersion(ctx context.Context, v domain.ModelVersion) (CreateResult, error)

	GetExperiment(ctx context.Context, id string) (*domain.Experiment, error)
	ListExperiments(ctx context.Context, namespace string) ([]domain.Experiment, error)

	ModelsByNamespace(ctx context.Context, namespace string) ([]domain.Model, error)
	ModelVersionsForModel(ctx context.Context, modelID string) ([]domain.ModelVersion, error)

	UpdateMetadata(ctx context.Context, entries []domain.MetadataEntry) error
	GetMetadata(ctx context.Context, parentID string) ([]domain.MetadataEntry, error)

	CreateFiles(ctx context.Context, files []domain.File) error
	GetFiles(ctx context.Context, parentID string) ([]domain.File, error)

	CreateEvents(ctx context.Context, events []domain.Event) error
	EventsForObject(ctx context.Context, parentID string) ([]domain.Event, error)

	LogMetrics(ctx context.Context, samples []domain.MetricSample) error
	Metrics(ctx context.Context, objectID string) ([]domain.MetricSample, error)

	Close() error
}

// ─── Error taxonomy ───

// DatabaseError wraps any failure from the underlying store, including the
// RecordNotInserted sentinel used internally for idempotent creates.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}
func (e *DatabaseError) Unwrap() error { return e.Err }

func NewDatabaseError(op string, err error) error {
	return &DatabaseError{Op: op, Err: err}
}

// RecordNotInserted is the sentinel a create-with-change-log transaction
// returns when ON CONFLICT DO NOTHING affected zero rows. It is recovered
// locally inside the create path and converted to {exists: true}; it must
// never escape a Repository.Create* call.
var RecordNotInserted = errors.New("record not inserted: id already exists")

// JsonError wraps a JSON marshal/unmarshal failure on a stored field.
type JsonError struct {
	Op  string
	Err error
}

func (e *JsonError) Error() string { return fmt.Sprintf("json error during %s: %v", e.Op, e.Err) }
func (e *JsonError) Unwrap() error { return e.Err }

func NewJsonError(op string, err error) error {
	return &JsonError{Op: op, Err: err}
}

// InvalidRequestKind distinguishes the ways a request can be malformed
// before it ever reaches the store.
type InvalidRequestKind int

const (
	InvalidTime InvalidRequestKind = iota
	DeserializationError
	MissingField
)

type InvalidRequestError struct {
	Kind  InvalidRequestKind
	Field string
	Err   error
}

func (e *InvalidRequestError) Error() string {
	switch e.Kind {
	case InvalidTime:
		return fmt.Sprintf("invalid time: %v", e.Err)
	case DeserializationError:
		return fmt.Sprintf("deserialization error: %v", e.Err)
	case MissingField:
		return fmt.Sprintf("missing field: %s", e.Field)
	default:
		return "invalid request"
	}
}

func (e *InvalidRequestError) Unwrap() error { return e.Err }

func NewMissingFieldError(field string) error {
	return &InvalidRequestError{Kind: MissingField, Field: field}
}

func NewInvalidTimeError(err error) error {
	return &InvalidRequestError{Kind: InvalidTime, Err: err}
}

func NewDeserializationError(err error) error {
	return &InvalidRequestError{Kind: DeserializationError, Err: err}
}

// NotFoundError marks a lookup that found nothing, distinct from "found
// zero rows" list results which are not errors.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found: %s", e.Kind, e.ID) }

func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
