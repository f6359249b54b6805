package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/svortega/authms/internal/common"
	pb "github.com/svortega/authms/internal/proto"
	"github.com/svortega/authms/internal/server/services"
)

// Register creates a new identity and returns it with its first token.
// A duplicate email is a client error, mirroring the upstream contract.
func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	result, err := s.auth.Register(ctx, req.Email, req.Name, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("user with email:%s already exists", req.Email))
		}
		s.logger.Error(ctx, "registration failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return authResponse(result), nil
}

// Login verifies credentials. An unknown email and a wrong password are
// reported distinctly (the original service does the same); both are
// client errors, not unauthorized.
func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.auth.Login(ctx, req.Email, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrIdentityNotFound):
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("user with email:%s does not exist", req.Email))
		case errors.Is(err, common.ErrInvalidCredentials):
			return nil, status.Error(codes.InvalidArgument, "invalid credentials")
		}
		s.logger.Error(ctx, "login failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return authResponse(result), nil
}

// Refresh trades a valid token for a freshly issued one.
func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.AuthResponse, error) {

	result, err := s.auth.Refresh(ctx, req.Token)

	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		s.logger.Error(ctx, "refresh failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return authResponse(result), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func authResponse(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		User: &pb.User{
			Id:    r.User.ID,
			Email: r.User.Email,
			Name:  r.User.Name,
		},
		Token: r.Token,
	}
}
