// Package lockout implements progressive account lockout. Every failed login
// inserts a decaying record; the count of still-valid records drives an
// exponential lock window. All methods mutate the passed user in place and
// persist through repositories the caller has bound to its transaction —
// the sweep-then-insert sequence is only safe inside one transactional
// boundary.
package lockout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/freshdeal/account-service/internal/server/models"
	"github.com/freshdeal/account-service/internal/server/repositories/accounts"
	"github.com/freshdeal/account-service/internal/server/repositories/attempts"
)

// Tracker computes and applies lock windows.
type Tracker struct {
	maxAttempts int
	now         func() time.Time
}

// NewTracker builds a Tracker locking accounts once the count of valid
// failures, counting the one being recorded, exceeds maxAttempts.
func NewTracker(maxAttempts int) *Tracker {
	return &Tracker{maxAttempts: maxAttempts, now: time.Now}
}

// maxLockWindowSeconds caps the computed window so that expiry arithmetic
// on unix timestamps cannot overflow for large failure counts.
const maxLockWindowSeconds = int64(1) << 40

// lockWindow returns floor(2^(count^1.1)) minutes, in seconds.
func lockWindow(count int) int64 {
	minutes := math.Pow(2, math.Pow(float64(count), 1.1))
	if minutes*60 >= float64(maxLockWindowSeconds) {
		return maxLockWindowSeconds
	}
	return int64(minutes) * 60
}

// sweep deletes every failed-attempt record whose expiry has passed,
// decrementing the user's failure counter alongside, and returns the number
// of records still valid. The user row is not persisted here; callers fold
// the decrement into their own Update.
func (t *Tracker) sweep(ctx context.Context, repo attempts.Repository, user *models.User) (int, error) {
	records, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("listing failed attempts: %w", err)
	}

	valid := len(records)
	now := t.now().Unix()

	for _, record := range records {
		if record.ExpiresAt < now {
			if err := repo.Delete(ctx, record.ID); err != nil {
				return 0, fmt.Errorf("deleting expired attempt: %w", err)
			}
			valid--
			if user.FailedLoginAttempts > 0 {
				user.FailedLoginAttempts--
			}
		}
	}

	return valid, nil
}

// RecordFailure registers one failed login: it sweeps expired records,
// inserts a fresh one that outlives its own lock window eightfold, bumps the
// user's counter and, past the threshold, locks the account for the computed
// window.
func (t *Tracker) RecordFailure(ctx context.Context, accountRepo accounts.Repository, attemptRepo attempts.Repository, user *models.User) error {
	valid, err := t.sweep(ctx, attemptRepo, user)
	if err != nil {
		return err
	}

	now := t.now().Unix()
	window := lockWindow(valid)

	err = attemptRepo.Create(ctx, &models.FailedAttempt{
		UserID:    user.ID,
		FailedAt:  now,
		ExpiresAt: now + window*8,
	})
	if err != nil {
		return fmt.Errorf("recording failed attempt: %w", err)
	}

	user.FailedLoginAttempts++

	// the failure being recorded counts toward the threshold
	if valid+1 > t.maxAttempts {
		user.AccountLockedUntil = now + window
		user.Status = models.StatusLocked
	}

	if err := accountRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating account after failure: %w", err)
	}

	return nil
}

// Unlock re-sweeps the user's records and lifts the lock if its window has
// passed, transitioning Locked back to Inactive. It reports whether the
// account is now unlocked; a sweep alone never clears Locked status.
func (t *Tracker) Unlock(ctx context.Context, accountRepo accounts.Repository, attemptRepo attempts.Repository, user *models.User) (bool, error) {
	if _, err := t.sweep(ctx, attemptRepo, user); err != nil {
		return false, err
	}

	unlocked := true

	if user.AccountLockedUntil < t.now().Unix() {
		if user.Status == models.StatusLocked {
			user.Status = models.StatusInactive
		}
	} else {
		unlocked = false
	}

	if err := accountRepo.Update(ctx, user); err != nil {
		return false, fmt.Errorf("updating account after unlock: %w", err)
	}

	return unlocked, nil
}
