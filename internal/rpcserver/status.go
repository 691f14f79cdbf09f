package rpcserver

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/store"
)

// toStatus maps the error taxonomy in internal/store onto gRPC status
// codes, per SPEC_FULL.md §7.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	var invalid *store.InvalidRequestError
	if errors.As(err, &invalid) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	var dbErr *store.DatabaseError
	if errors.As(err, &dbErr) {
		return status.Error(codes.Internal, err.Error())
	}

	var jsonErr *store.JsonError
	if errors.As(err, &jsonErr) {
		return status.Error(codes.Internal, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
