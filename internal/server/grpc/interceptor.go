package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/server/auth"
)

type ctxKey string

// CallerKey holds the name of the service that made the call, as asserted by
// its service token.
const CallerKey ctxKey = "caller"

// serviceTokenInterceptor authenticates the calling service on every method.
// The token is a short-lived JWT in the service_token metadata entry.
func (s *GRPCServer) serviceTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var serviceToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.ServiceTokenHeaderName)
		if len(values) > 0 {
			serviceToken = values[0]
		}
	}
	if len(serviceToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing service token")
	}

	caller, err := auth.GetServiceFromToken(serviceToken, s.serviceTokenSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid service token")
	}

	ctx = context.WithValue(ctx, CallerKey, caller)

	return handler(ctx, req)
}
