package rpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func (s *Server) UpdateMetadata(ctx context.Context, req *modelboxpb.UpdateMetadataRequest) (*modelboxpb.UpdateMetadataResponse, error) {
	if req.ParentID == "" {
		return nil, status.Error(codes.InvalidArgument, "parent_id is required")
	}
	entries := domain.MetadataEntriesFromWire(req.ParentID, req.Metadata)
	if err := s.repo.UpdateMetadata(ctx, entries); err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.UpdateMetadataResponse{}, nil
}

func (s *Server) ListMetadata(ctx context.Context, req *modelboxpb.ListMetadataRequest) (*modelboxpb.ListMetadataResponse, error) {
	if req.ParentID == "" {
		return nil, status.Error(codes.InvalidArgument, "parent_id is required")
	}
	rows, err := s.repo.GetMetadata(ctx, req.ParentID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]modelboxpb.MetadataEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.MetadataEntryToWire(r))
	}
	return &modelboxpb.ListMetadataResponse{Metadata: out}, nil
}
