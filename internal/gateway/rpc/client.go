// Package rpc is the gateway's client for the account service. Every call
// carries a freshly minted service token, and transient failures trigger a
// full reconnect plus an exponential backoff retry. Failures never escape
// as panics; callers always receive a *CallError value.
package rpc

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/logging"
	pb "github.com/freshdeal/account-service/internal/proto"
	"github.com/freshdeal/account-service/internal/server/auth"
)

type dialFunc func(target string) (pb.AccountAuthClient, io.Closer, error)

// Options configures a Client.
type Options struct {
	Target      string
	ServiceName string
	TokenSecret string
	TokenTTL    time.Duration
	MaxRetries  int
	BackoffBase time.Duration
}

// Client wraps the generated stub with token injection, reconnect and
// retry behavior. Safe for concurrent use.
type Client struct {
	target      string
	serviceName string
	tokenSecret []byte
	tokenTTL    time.Duration
	maxRetries  uint64
	backoffBase time.Duration
	log         logging.Logger

	dial dialFunc

	mu     sync.Mutex
	stub   pb.AccountAuthClient
	closer io.Closer
}

func grpcDial(target string) (pb.AccountAuthClient, io.Closer, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewAccountAuthClient(conn), conn, nil
}

// NewClient dials the account service and returns a ready client.
func NewClient(opts Options, l logging.Logger) (*Client, error) {
	c := &Client{
		target:      opts.Target,
		serviceName: opts.ServiceName,
		tokenSecret: []byte(opts.TokenSecret),
		tokenTTL:    opts.TokenTTL,
		maxRetries:  uint64(opts.MaxRetries),
		backoffBase: opts.BackoffBase,
		log:         l,
		dial:        grpcDial,
	}
	if err := c.reconnect(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *Client) current() pb.AccountAuthClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stub
}

// reconnect tears down the current connection and dials a new one. If the
// dial fails the old stub stays in place so the next attempt can try again.
func (c *Client) reconnect(ctx context.Context) error {
	stub, closer, err := c.dial(c.target)
	if err != nil {
		c.log.Warn(ctx, "account service redial failed", "error", err)
		return err
	}
	c.mu.Lock()
	old := c.closer
	c.stub = stub
	c.closer = closer
	c.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// authorize mints a fresh service token and attaches it to the outgoing
// metadata.
func (c *Client) authorize(ctx context.Context) (context.Context, error) {
	token, err := auth.GenerateServiceToken(c.serviceName, c.tokenSecret, c.tokenTTL)
	if err != nil {
		return nil, err
	}
	return metadata.AppendToOutgoingContext(ctx, common.ServiceTokenHeaderName, token), nil
}

// invoke runs fn against the current stub, reconnecting and retrying on
// transient status codes and converting any failure to a *CallError.
func (c *Client) invoke(ctx context.Context, method string, fn func(ctx context.Context, stub pb.AccountAuthClient) error) *CallError {
	attempts := 0
	var terminal *CallError

	backoff := retry.WithMaxRetries(c.maxRetries,
		retry.WithJitter(100*time.Millisecond, retry.NewExponential(c.backoffBase)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++

		callCtx, err := c.authorize(ctx)
		if err != nil {
			terminal = &CallError{Code: codes.Unauthenticated, Attempts: attempts, Message: describe(codes.Unauthenticated)}
			return err
		}

		if err := fn(callCtx, c.current()); err != nil {
			st, _ := status.FromError(err)
			if retryable(st.Code()) {
				c.log.Warn(ctx, "account call failed, reconnecting",
					"method", method, "code", st.Code().String(), "attempt", attempts)
				_ = c.reconnect(ctx)
				return retry.RetryableError(err)
			}
			terminal = &CallError{Code: st.Code(), Attempts: attempts, Message: describe(st.Code())}
			return err
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if terminal != nil {
		return terminal
	}

	// retry budget exhausted on a transient code
	st, _ := status.FromError(err)
	c.log.Error(ctx, "account call exhausted retries",
		"method", method, "code", st.Code().String(), "attempts", attempts)
	return &CallError{Code: st.Code(), Retryable: true, Attempts: attempts, Message: describe(st.Code())}
}

func (c *Client) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, *CallError) {
	var resp *pb.RegisterResponse
	if cerr := c.invoke(ctx, "Register", func(ctx context.Context, stub pb.AccountAuthClient) error {
		var err error
		resp, err = stub.Register(ctx, req)
		return err
	}); cerr != nil {
		return nil, cerr
	}
	return resp, nil
}

func (c *Client) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, *CallError) {
	var resp *pb.LoginResponse
	if cerr := c.invoke(ctx, "Login", func(ctx context.Context, stub pb.AccountAuthClient) error {
		var err error
		resp, err = stub.Login(ctx, req)
		return err
	}); cerr != nil {
		return nil, cerr
	}
	return resp, nil
}

func (c *Client) VerifyOtp(ctx context.Context, req *pb.VerifyOtpRequest) (*pb.LoginResponse, *CallError) {
	var resp *pb.LoginResponse
	if cerr := c.invoke(ctx, "VerifyOtp", func(ctx context.Context, stub pb.AccountAuthClient) error {
		var err error
		resp, err = stub.VerifyOtp(ctx, req)
		return err
	}); cerr != nil {
		return nil, cerr
	}
	return resp, nil
}

func (c *Client) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, *CallError) {
	var resp *pb.LogoutResponse
	if cerr := c.invoke(ctx, "Logout", func(ctx context.Context, stub pb.AccountAuthClient) error {
		var err error
		resp, err = stub.Logout(ctx, req)
		return err
	}); cerr != nil {
		return nil, cerr
	}
	return resp, nil
}
