package models

// Status is the lifecycle state of a user account.
//
// Transitions: Unverified -> Inactive on OTP success, Inactive <-> Active
// with session lifecycle, any accessible state -> Locked when the failure
// threshold is exceeded, Locked -> Inactive on unlock. Terminated and Closed
// are terminal.
type Status string

const (
	StatusUnverified Status = "Unverified"
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusLocked     Status = "Locked"
	StatusTerminated Status = "Terminated"
	StatusClosed     Status = "Closed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnverified, StatusActive, StatusInactive, StatusLocked, StatusTerminated, StatusClosed:
		return true
	}
	return false
}
