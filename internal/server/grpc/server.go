package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/svortega/authms/internal/logging"
	pb "github.com/svortega/authms/internal/proto"
	"github.com/svortega/authms/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    *services.AuthService
	logger  logging.Logger
}

func NewGRPCServer(addr string, l logging.Logger, as *services.AuthService) *GRPCServer {
	return &GRPCServer{
		address: addr,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
