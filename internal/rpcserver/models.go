package rpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func (s *Server) CreateModel(ctx context.Context, req *modelboxpb.CreateModelRequest) (*modelboxpb.CreateModelResponse, error) {
	if req.Model.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "model name is required")
	}
	row := domain.ModelFromWire(req.Model)
	res, err := s.repo.CreateModel(ctx, row)
	if err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.CreateModelResponse{ID: res.ID, Exists: res.Exists}, nil
}

func (s *Server) ListModels(ctx context.Context, req *modelboxpb.ListModelsRequest) (*modelboxpb.ListModelsResponse, error) {
	rows, err := s.repo.ModelsByNamespace(ctx, req.Namespace)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]modelboxpb.Model, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ModelToWire(r))
	}
	return &modelboxpb.ListModelsResponse{Models: out}, nil
}

func (s *Server) CreateModelVersion(ctx context.Context, req *modelboxpb.CreateModelVersionRequest) (*modelboxpb.CreateModelVersionResponse, error) {
	if req.ModelVersion.ModelID == "" {
		return nil, status.Error(codes.InvalidArgument, "model_id is required")
	}
	if req.ModelVersion.Version == "" {
		return nil, status.Error(codes.InvalidArgument, "version is required")
	}
	row, err := domain.ModelVersionFromWire(req.ModelVersion)
	if err != nil {
		return nil, toStatus(err)
	}
	res, err := s.repo.CreateModelVersion(ctx, row)
	if err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.CreateModelVersionResponse{ID: res.ID, Exists: res.Exists}, nil
}

func (s *Server) ListModelVersions(ctx context.Context, req *modelboxpb.ListModelVersionsRequest) (*modelboxpb.ListModelVersionsResponse, error) {
	rows, err := s.repo.ModelVersionsForModel(ctx, req.ModelID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]modelboxpb.ModelVersion, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ModelVersionToWire(r))
	}
	return &modelboxpb.ListModelVersionsResponse{ModelVersions: out}, nil
}
