package rpc

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// CallError describes a failed call to the account service. All transport
// failures surface as values of this type; callers branch on Code or
// Retryable to decide how to answer the end user.
type CallError struct {
	Code      codes.Code
	Retryable bool
	Attempts  int
	Message   string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("account rpc: %s (code=%s, attempts=%d)", e.Message, e.Code, e.Attempts)
}

// describe maps a gRPC status code to the operator-facing message carried
// in the CallError.
func describe(code codes.Code) string {
	switch code {
	case codes.Unavailable:
		return "service unavailable"
	case codes.Internal:
		return "internal service error"
	case codes.DeadlineExceeded:
		return "request deadline exceeded"
	case codes.Unauthenticated:
		return "credential or certificate problem"
	case codes.InvalidArgument:
		return "malformed request"
	case codes.Unimplemented:
		return "unknown method"
	case codes.ResourceExhausted:
		return "request payload too large"
	default:
		return "internal transport error"
	}
}

// retryable reports whether a failed call with this status code is worth
// reconnecting and trying again.
func retryable(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.Internal, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}
