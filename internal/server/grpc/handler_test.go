package grpc

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/svortega/authms/internal/common"
	"github.com/svortega/authms/internal/logging"
	pb "github.com/svortega/authms/internal/proto"
	"github.com/svortega/authms/internal/server/auth"
	"github.com/svortega/authms/internal/server/models"
	"github.com/svortega/authms/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type memUsersRepo struct {
	byEmail map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byEmail: make(map[string]*models.User)}
}

func (m *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, common.ErrConflict
	}
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func newTestServer(t *testing.T) *GRPCServer {
	t.Helper()
	svc := services.NewAuthService(
		newMemUsersRepo(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewTokenCodec([]byte("secret"), time.Hour),
	)
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, svc)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("want code %v, got %v (%s)", code, st.Code(), st.Message())
	}
}

func TestRegister_ReturnsUserAndToken(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@x.com", Name: "Ana", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.User.Email != "a@x.com" || resp.User.Name != "Ana" || resp.User.Id == "" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
}

func TestRegister_DuplicateIsInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, &pb.RegisterRequest{Email: "a@x.com", Name: "Ana", Password: "secret1"}); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, err := s.Register(ctx, &pb.RegisterRequest{Email: "a@x.com", Name: "Ana", Password: "secret1"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestLogin_WrongPasswordIsInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, &pb.RegisterRequest{Email: "a@x.com", Name: "Ana", Password: "secret1"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, err := s.Login(ctx, &pb.LoginRequest{Email: "a@x.com", Password: "wrongpass"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestLogin_UnknownEmailIsInvalidArgument(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "missing@x.com", Password: "x"})
	wantCode(t, err, codes.InvalidArgument)

	st, _ := status.FromError(err)
	if want := "user with email:missing@x.com does not exist"; st.Message() != want {
		t.Fatalf("want message %q, got %q", want, st.Message())
	}
}

func TestRefresh_RoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	first, err := s.Register(ctx, &pb.RegisterRequest{Email: "a@x.com", Name: "Ana", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	resp, err := s.Refresh(ctx, &pb.RefreshRequest{Token: first.Token})
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if resp.Token == first.Token {
		t.Fatal("refreshed token must differ")
	}
	if resp.User.Email != "a@x.com" || resp.User.Name != "Ana" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestRefresh_GarbageIsUnauthenticated(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Refresh(context.Background(), &pb.RefreshRequest{Token: "garbage-string"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}
