package models

// User is one row of the user table. Timestamps are unix seconds (UTC), the
// same representation the wire format and the session snapshot use.
type User struct {
	ID                    int64
	UUID                  string
	Email                 string
	PasswordHash          string
	PasswordLastChangedAt int64
	FailedLoginAttempts   int
	AccountLockedUntil    int64
	FirstName             string
	LastName              string
	Gender                string
	DateOfBirth           string
	CreatedAt             int64
	UpdatedAt             int64
	LastLogin             int64
	LastActivityAt        int64
	EmailVerified         bool
	Status                Status
}

// IsAccessible reports whether the account may attempt to log in at all.
// Locked, Terminated and Closed accounts are not accessible.
func (u *User) IsAccessible() bool {
	switch u.Status {
	case StatusActive, StatusInactive, StatusUnverified:
		return true
	}
	return false
}

// IsVerified reports whether the account's email address has been confirmed.
func (u *User) IsVerified() bool {
	return u.EmailVerified
}

// Public returns the snapshot of user fields that may leave the service:
// the session payload and the wire response carry exactly this.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		UUID:          u.UUID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Gender:        u.Gender,
		DateOfBirth:   u.DateOfBirth,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		LastLogin:     u.LastLogin,
		EmailVerified: u.EmailVerified,
		Status:        string(u.Status),
	}
}

// PublicUser is the public projection of a User. It is what gets serialized
// into the session store and into RPC responses.
type PublicUser struct {
	UUID          string `json:"uuid"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
	LastLogin     int64  `json:"last_login"`
	EmailVerified bool   `json:"email_verified"`
	Status        string `json:"user_status"`
}
