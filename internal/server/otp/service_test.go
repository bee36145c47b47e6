package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/freshdeal/account-service/internal/common"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewService(rdb, "otpSecret", time.Minute), mr
}

func TestIssueThenVerify(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	code, err := s.Issue(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	if err := s.Verify(ctx, "jane@example.com", code); err != nil {
		t.Fatalf("expected code to verify: %v", err)
	}
}

func TestVerify_SuccessDoesNotConsumeTicket(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	code, err := s.Issue(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.Verify(ctx, "jane@example.com", code); err != nil {
			t.Fatalf("verification %d failed: %v", i+1, err)
		}
	}
}

func TestVerify_WrongCode(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	code, err := s.Issue(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	if err := s.Verify(ctx, "jane@example.com", wrong); !errors.Is(err, common.ErrorOTPInvalid) {
		t.Fatalf("expected ErrorOTPInvalid, got %v", err)
	}
}

func TestVerify_NoTicket(t *testing.T) {
	s, _ := newTestService(t)

	err := s.Verify(context.Background(), "nobody@example.com", "123456")
	if !errors.Is(err, common.ErrorOTPExpired) {
		t.Fatalf("expected ErrorOTPExpired, got %v", err)
	}
}

func TestVerify_ExpiredTicket(t *testing.T) {
	s, mr := newTestService(t)
	ctx := context.Background()

	code, err := s.Issue(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if err := s.Verify(ctx, "jane@example.com", code); !errors.Is(err, common.ErrorOTPExpired) {
		t.Fatalf("expected ErrorOTPExpired, got %v", err)
	}
}

func TestIssue_ReplacesPreviousTicket(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	first, err := s.Issue(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	second, err := s.Issue(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	if err := s.Verify(ctx, "jane@example.com", second); err != nil {
		t.Fatalf("expected fresh code to verify: %v", err)
	}
	if first != second {
		if err := s.Verify(ctx, "jane@example.com", first); !errors.Is(err, common.ErrorOTPInvalid) {
			t.Fatalf("expected stale code to be rejected, got %v", err)
		}
	}
}

func TestCodesAreDeterministicPerTicket(t *testing.T) {
	secret := decodeSecret("otpSecret")
	ticket := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	a := hotp(secret, ticket, 6)
	b := hotp(secret, ticket, 6)
	if a != b {
		t.Fatalf("expected deterministic code, got %q and %q", a, b)
	}

	other := hotp(secret, []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, 6)
	if a == other {
		t.Fatalf("different tickets produced the same code %q", a)
	}
}

func TestDecodeSecret_Base32AndRaw(t *testing.T) {
	// valid base32 decodes
	if got := decodeSecret("JBSWY3DPEHPK3PXP"); len(got) == 0 {
		t.Fatal("expected decoded bytes for base32 secret")
	}
	// arbitrary strings fall back to raw bytes
	if got := decodeSecret("not base32!"); string(got) != "not base32!" {
		t.Fatalf("expected raw fallback, got %v", got)
	}
}
