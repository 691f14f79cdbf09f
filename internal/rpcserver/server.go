// Package rpcserver implements the ModelStore gRPC service against an
// internal/store.Repository and an internal/blob.Backend.
package rpcserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/tensorland/modelbox/internal/blob"
	"github.com/tensorland/modelbox/internal/modelboxpb"
	"github.com/tensorland/modelbox/internal/store"
)

// Server is the ModelStoreServer implementation. It holds no state of its
// own beyond the repository and blob backend it was built with.
type Server struct {
	repo store.Repository
	blob blob.Backend

	grpcServer *grpc.Server
	listener   net.Listener
}

// New builds a Server ready to be handed to Start. It does not bind a
// listener; that happens in Start so the address can come from config at
// call time.
func New(repo store.Repository, blobBackend blob.Backend) *Server {
	s := &Server{repo: repo, blob: blobBackend}
	// modelboxpb's init() registers a JSON codec under the "proto" name, so
	// NewServer picks it up as the default codec without needing
	// ForceServerCodec.
	s.grpcServer = grpc.NewServer()
	modelboxpb.RegisterModelStoreServer(s.grpcServer, s)
	// Reflection lets grpcurl and similar tools discover the service. Since
	// this build has no protoc-generated file descriptor set, reflection
	// only advertises the service/method names grpc.ServiceDesc carries —
	// see DESIGN.md for what that does and doesn't give a client.
	reflection.Register(s.grpcServer)
	return s
}

// Start binds addr and serves until ctx is canceled, at which point it
// drains in-flight RPCs via GracefulStop before returning.
func (s *Server) Start(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = lis

	errCh := make(chan error, 1)
	go func() {
		slog.Info("modelbox rpc server listening", "addr", addr)
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		slog.Info("modelbox rpc server shutting down")
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

// Stop forces an immediate shutdown, for use outside the Start/ctx flow
// (e.g. tests that never cancel a context).
func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
}
