package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/logging"
	"github.com/freshdeal/account-service/internal/server/auth"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newTestServer(secret string, svc AuthService) *GRPCServer {
	return &GRPCServer{
		logger:             nopLogger{},
		serviceTokenSecret: []byte(secret),
		auth:               svc,
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret", nil)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/account.v1.AccountAuth/Login"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.serviceTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing service token" {
		t.Fatalf("expected 'missing service token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret", nil)

	md := metadata.New(map[string]string{
		common.ServiceTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/account.v1.AccountAuth/Login"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.serviceTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_ValidToken_SetsCaller(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret, nil)

	token, err := auth.GenerateServiceToken("gateway", []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateServiceToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.ServiceTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/account.v1.AccountAuth/Login"}

	var gotFromCtx any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx = ctx.Value(CallerKey)
		return "ok", nil
	}

	resp, err := s.serviceTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotFromCtx != "gateway" {
		t.Fatalf("caller not propagated in context: got %v want %v", gotFromCtx, "gateway")
	}
}
