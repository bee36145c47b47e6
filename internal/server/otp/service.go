// Package otp issues and verifies the 6-digit one-time codes used for email
// verification. Each issued code is bound to a random ticket id stored under
// the user's email with a short TTL; verification recomputes the expected
// code from the stored ticket, so the code itself never touches the cache.
//
// A ticket is not consumed by a successful verification: repeated valid
// submissions inside the TTL window keep succeeding. Account state makes the
// transition idempotent (an already-verified account is rejected upstream),
// so replay is harmless, but single-use enforcement would have to be added
// here if that changes.
package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/freshdeal/account-service/internal/common"
)

const digits = 6

// DefaultTTL is how long an issued ticket stays verifiable.
const DefaultTTL = 10 * time.Minute

func ticketKey(email string) string {
	return "verification:otp:" + email
}

// Service issues and verifies one-time codes against a Redis-backed ticket
// cache.
type Service struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

// NewService builds a Service sharing secret with every other issuer of
// codes. A non-positive ttl falls back to DefaultTTL.
func NewService(rdb *redis.Client, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{rdb: rdb, secret: decodeSecret(secret), ttl: ttl}
}

// Issue creates a fresh ticket for email, replacing any previous one, and
// returns the code to dispatch. At most one live ticket exists per email.
func (s *Service) Issue(ctx context.Context, email string) (string, error) {
	ticket := uuid.New()

	if err := s.rdb.Set(ctx, ticketKey(email), ticket.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("storing otp ticket: %w", err)
	}

	return hotp(s.secret, ticket[:], digits), nil
}

// Verify checks code against the live ticket for email. A missing ticket is
// reported as common.ErrorOTPExpired, which callers answer by issuing a new
// code; a mismatch is common.ErrorOTPInvalid.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	stored, err := s.rdb.Get(ctx, ticketKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return common.ErrorOTPExpired
		}
		return fmt.Errorf("fetching otp ticket: %w", err)
	}

	ticket, err := uuid.Parse(stored)
	if err != nil {
		return fmt.Errorf("corrupt otp ticket for %s: %w", email, err)
	}

	if !codesEqual(hotp(s.secret, ticket[:], digits), code) {
		return common.ErrorOTPInvalid
	}

	return nil
}
