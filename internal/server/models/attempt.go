package models

// FailedAttempt records one failed login for a user. Records are swept lazily:
// any record observed with ExpiresAt in the past is deleted and stops counting
// toward the lockout threshold.
type FailedAttempt struct {
	ID        int64
	UserID    int64
	FailedAt  int64
	ExpiresAt int64
}
