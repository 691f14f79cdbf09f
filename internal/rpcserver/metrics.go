package rpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func (s *Server) LogMetrics(ctx context.Context, req *modelboxpb.LogMetricsRequest) (*modelboxpb.LogMetricsResponse, error) {
	if req.ObjectID == "" {
		return nil, status.Error(codes.InvalidArgument, "object_id is required")
	}
	rows := make([]domain.MetricSample, 0, len(req.Samples))
	for _, sample := range req.Samples {
		rows = append(rows, domain.MetricSampleFromWire(req.ObjectID, sample))
	}
	if err := s.repo.LogMetrics(ctx, rows); err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.LogMetricsResponse{}, nil
}

// GetMetrics buckets the object's samples by name, preserving the insertion
// order of values within each name. The result is a map, so it carries no
// order between names.
func (s *Server) GetMetrics(ctx context.Context, req *modelboxpb.GetMetricsRequest) (*modelboxpb.GetMetricsResponse, error) {
	if req.ObjectID == "" {
		return nil, status.Error(codes.InvalidArgument, "object_id is required")
	}
	samples, err := s.repo.Metrics(ctx, req.ObjectID)
	if err != nil {
		return nil, toStatus(err)
	}

	order := make([]string, 0)
	buckets := make(map[string]*modelboxpb.MetricsSampleList)
	for _, sample := range samples {
		bucket, ok := buckets[sample.Name]
		if !ok {
			bucket = &modelboxpb.MetricsSampleList{}
			buckets[sample.Name] = bucket
			order = append(order, sample.Name)
		}
		bucket.Values = append(bucket.Values, domain.MetricSampleToWire(sample))
	}

	out := make(map[string]modelboxpb.MetricsSampleList, len(order))
	for _, name := range order {
		out[name] = *buckets[name]
	}
	return &modelboxpb.GetMetricsResponse{Metrics: out}, nil
}
