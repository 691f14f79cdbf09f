package rpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

// TrackArtifacts records files a client uploaded out of band (the blob
// already exists at the given upload_path). The response's id is always
// empty; see DESIGN.md's note on the open question this resolves.
func (s *Server) TrackArtifacts(ctx context.Context, req *modelboxpb.TrackArtifactsRequest) (*modelboxpb.TrackArtifactsResponse, error) {
	if req.ParentID == "" {
		return nil, status.Error(codes.InvalidArgument, "parent_id is required")
	}
	rows := make([]domain.File, 0, len(req.Files))
	for _, f := range req.Files {
		row, err := domain.FileFromWire(req.ParentID, req.ArtifactName, f)
		if err != nil {
			return nil, toStatus(err)
		}
		rows = append(rows, row)
	}
	if err := s.repo.CreateFiles(ctx, rows); err != nil {
		return nil, toStatus(err)
	}
	return &modelboxpb.TrackArtifactsResponse{ID: ""}, nil
}

// ListArtifacts groups the parent's File rows by (artifact_id,
// artifact_name, parent_id), the three-tuple that keeps artifact names
// scoped to their parent even across an id collision.
func (s *Server) ListArtifacts(ctx context.Context, req *modelboxpb.ListArtifactsRequest) (*modelboxpb.ListArtifactsResponse, error) {
	if req.ParentID == "" {
		return nil, status.Error(codes.InvalidArgument, "parent_id is required")
	}
	files, err := s.repo.GetFiles(ctx, req.ParentID)
	if err != nil {
		return nil, toStatus(err)
	}

	type key struct{ artifactID, artifactName, parentID string }
	order := make([]key, 0)
	groups := make(map[key][]domain.File)
	for _, f := range files {
		k := key{f.ArtifactID, f.ArtifactName, f.ParentID}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], f)
	}

	out := make([]modelboxpb.Artifact, 0, len(order))
	for _, k := range order {
		grouped := groups[k]
		wireFiles := make([]modelboxpb.File, 0, len(grouped))
		for _, f := range grouped {
			wireFiles = append(wireFiles, domain.FileToWire(f))
		}
		out = append(out, modelboxpb.Artifact{
			ID:       k.artifactID,
			Name:     k.artifactName,
			ParentID: k.parentID,
			Files:    wireFiles,
		})
	}
	return &modelboxpb.ListArtifactsResponse{Artifacts: out}, nil
}
