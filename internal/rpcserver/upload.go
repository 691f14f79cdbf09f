package rpcserver

import (
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/internal/blob"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/modelboxpb"
)

// UploadFile implements the client-streaming upload state machine: the
// first frame must carry Metadata, every frame after it carries Chunks.
// The File row, with its upload_path, is persisted before the blob write
// begins. The file id includes the creation timestamp, so every call
// derives a new id and writes a new row and blob path; a retried upload does
// not land on the row of an earlier attempt.
func (s *Server) UploadFile(stream modelboxpb.ModelStore_UploadFileServer) error {
	ctx := stream.Context()

	first, err := stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return status.Error(codes.InvalidArgument, "no metadata provided")
		}
		return status.Error(codes.Internal, err.Error())
	}
	if first.Metadata == nil {
		return status.Error(codes.InvalidArgument, "no metadata provided")
	}

	row, err := domain.FileFromUploadMetadata(*first.Metadata)
	if err != nil {
		return toStatus(err)
	}
	row.UploadPath = blob.ArtifactPath(row.ParentID, row.ID)

	if err := s.repo.CreateFiles(ctx, []domain.File{row}); err != nil {
		return toStatus(err)
	}

	writer, err := s.blob.OpenMultipart(ctx, row.UploadPath)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	for {
		frame, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			if ferr := writer.Flush(ctx); ferr != nil {
				_ = writer.Abort(ctx)
				return status.Error(codes.Internal, ferr.Error())
			}
			if ferr := writer.Finalize(ctx); ferr != nil {
				_ = writer.Abort(ctx)
				return status.Error(codes.Internal, ferr.Error())
			}
			return stream.SendAndClose(&modelboxpb.UploadFileResponse{
				FileID:     row.ID,
				ArtifactID: row.ArtifactID,
			})
		}
		if err != nil {
			_ = writer.Abort(ctx)
			return status.Error(codes.Internal, err.Error())
		}
		if len(frame.Chunks) == 0 {
			continue
		}
		if err := writer.Write(ctx, frame.Chunks); err != nil {
			_ = writer.Abort(ctx)
			return status.Error(codes.Internal, err.Error())
		}
	}
}

func (s *Server) DownloadFile(req *modelboxpb.DownloadFileRequest, stream modelboxpb.ModelStore_DownloadFileServer) error {
	return status.Error(codes.Unimplemented, "download_file is not implemented")
}

func (s *Server) WatchNamespace(req *modelboxpb.WatchNamespaceRequest, stream modelboxpb.ModelStore_WatchNamespaceServer) error {
	return status.Error(codes.Unimplemented, "watch_namespace is not implemented")
}
