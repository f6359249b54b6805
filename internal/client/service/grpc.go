// Package service wraps the gRPC auth client: it owns the connection and
// remembers the bearer token from the last successful call.
package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/svortega/authms/internal/proto"
)

// Identity mirrors the user attributes asserted by the server.
type Identity struct {
	ID    string
	Email string
	Name  string
}

type AuthClientService struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	token       string
	identity    Identity
}

func NewAuthClientService(endpointURL string) *AuthClientService {
	return &AuthClientService{endpointURL: endpointURL}
}

func (s *AuthClientService) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

// Token returns the bearer token from the last successful call, or "".
func (s *AuthClientService) Token() string { return s.token }

// Identity returns the identity asserted by the last successful call.
func (s *AuthClientService) Identity() Identity { return s.identity }

func (s *AuthClientService) Register(ctx context.Context, email, name string, password []byte) error {

	req := &pb.RegisterRequest{Email: email, Name: name, Password: string(password)}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}

	s.remember(resp)
	return nil
}

func (s *AuthClientService) Login(ctx context.Context, email string, password []byte) error {

	req := &pb.LoginRequest{Email: email, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return err
	}

	s.remember(resp)
	return nil
}

func (s *AuthClientService) Refresh(ctx context.Context) error {

	resp, err := s.client.Refresh(ctx, &pb.RefreshRequest{Token: s.token})
	if err != nil {
		return err
	}

	s.remember(resp)
	return nil
}

func (s *AuthClientService) Ping(ctx context.Context) (string, error) {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (s *AuthClientService) remember(resp *pb.AuthResponse) {
	s.token = resp.Token
	if u := resp.User; u != nil {
		s.identity = Identity{ID: u.Id, Email: u.Email, Name: u.Name}
	}
}

func (s *AuthClientService) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
