package rpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func (s *Server) CreateExperiment(ctx context.Context, req *modelboxpb.CreateExperimentRequest) (*modelboxpb.CreateExperimentResponse, error) {
	if req.Experiment.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "experiment name is required")
	}
	row := domain.ExperimentFromWire(req.Experiment)
	res, err := s.repo.CreateExperiment(ctx, row)
	if err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.CreateExperimentResponse{ID: res.ID, Exists: res.Exists}, nil
}

func (s *Server) ListExperiments(ctx context.Context, req *modelboxpb.ListExperimentsRequest) (*modelboxpb.ListExperimentsResponse, error) {
	rows, err := s.repo.ListExperiments(ctx, req.Namespace)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]modelboxpb.Experiment, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ExperimentToWire(r))
	}
	return &modelboxpb.ListExperimentsResponse{Experiments: out}, nil
}

func (s *Server) GetExperiment(ctx context.Context, req *modelboxpb.GetExperimentRequest) (*modelboxpb.GetExperimentResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	row, err := s.repo.GetExperiment(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	if row == nil {
		return nil, status.Error(codes.NotFound, "experiment not found: "+req.ID)
	}
	return &modelboxpb.GetExperimentResponse{Experiment: domain.ExperimentToWire(*row)}, nil
}
