package rpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

func (s *Server) LogEvent(ctx context.Context, req *modelboxpb.LogEventRequest) (*modelboxpb.LogEventResponse, error) {
	if req.ParentID == "" {
		return nil, status.Error(codes.InvalidArgument, "parent_id is required")
	}
	row, err := domain.EventFromWire(req.ParentID, req.Event)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.repo.CreateEvents(ctx, []domain.Event{row}); err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.LogEventResponse{}, nil
}

func (s *Server) ListEvents(ctx context.Context, req *modelboxpb.ListEventsRequest) (*modelboxpb.ListEventsResponse, error) {
	if req.ParentID == "" {
		return nil, status.Error(codes.InvalidArgument, "parent_id is required")
	}
	rows, err := s.repo.EventsForObject(ctx, req.ParentID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]modelboxpb.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.EventToWire(r))
	}
	return &modelboxpb.ListEventsResponse{Events: out}, nil
}
