// Package grpc exposes the authentication workflows over the AccountAuth
// gRPC service. Handlers translate between proto messages and the service
// layer's structured results; a unary interceptor authenticates the calling
// service before any handler runs.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/freshdeal/account-service/internal/logging"
	pb "github.com/freshdeal/account-service/internal/proto"
	"github.com/freshdeal/account-service/internal/server/services"
)

// AuthService is the service-layer surface the handlers call. Implemented by
// services.AuthService; faked in tests.
type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) *services.AuthResult
	Login(ctx context.Context, email, password string) *services.AuthResult
	VerifyOtp(ctx context.Context, in services.VerifyOTPInput) *services.AuthResult
	Logout(ctx context.Context, sessionUUID, userUUID string) *services.Status
}

type GRPCServer struct {
	pb.UnimplementedAccountAuthServer
	address            string
	auth               AuthService
	logger             logging.Logger
	serviceTokenSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, auth AuthService, serviceTokenSecret string) (*GRPCServer, error) {
	return &GRPCServer{
		address:            address,
		logger:             l.With("module", "grpc_server"),
		auth:               auth,
		serviceTokenSecret: []byte(serviceTokenSecret),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.serviceTokenInterceptor))

	pb.RegisterAccountAuthServer(srv, s)

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
