// Package schema holds the static validation templates for each RPC entry
// point. Templates are built per request from a fixed restriction set plus
// the request values; date-of-birth bounds are recomputed against "today" on
// every call so the allowed window tracks the current date.
package schema

import (
	"time"

	"github.com/freshdeal/account-service/internal/verify"
)

// Password policy applied at registration.
const (
	passwordMinLen = 12
	passwordMaxLen = 64
)

// Set vends request schemas. One Set is built at startup and shared.
type Set struct {
	now func() time.Time
}

func NewSet() *Set {
	return &Set{now: time.Now}
}

func intp(v int) *int { return &v }

// Registration validates the full sign-up payload. Date of birth must place
// the user between 9 and 110 years old.
func (s *Set) Registration(email, password, firstName, lastName, gender, dateOfBirth string) verify.Schema {
	today := s.now()
	nameRestrictions := verify.Restrictions{
		MinLen:  intp(1),
		MaxLen:  intp(50),
		Numbers: verify.TriNone,
		Symbols: verify.TriNone,
	}

	return verify.Schema{
		{Name: "email", Kind: verify.KindEmail, Value: email, Check: true},
		{
			Name:  "password",
			Kind:  verify.KindString,
			Value: password,
			Check: true,
			Restrictions: verify.Restrictions{
				MinLen:    intp(passwordMinLen),
				MaxLen:    intp(passwordMaxLen),
				LowerCase: verify.TriMust,
				UpperCase: verify.TriMust,
				Numbers:   verify.TriMust,
				Symbols:   verify.TriMust,
			},
		},
		{Name: "first_name", Kind: verify.KindString, Value: firstName, Check: true, Restrictions: nameRestrictions},
		{Name: "last_name", Kind: verify.KindString, Value: lastName, Check: true, Restrictions: nameRestrictions},
		{
			Name:  "gender",
			Kind:  verify.KindString,
			Value: gender,
			Check: true,
			Restrictions: verify.Restrictions{
				MinLen:  intp(1),
				MaxLen:  intp(20),
				Numbers: verify.TriNone,
			},
		},
		{
			Name:  "date_of_birth",
			Kind:  verify.KindDateTime,
			Value: dateOfBirth,
			Check: true,
			Restrictions: verify.Restrictions{
				Date: &verify.DateTimeRange{
					Min: today.AddDate(-110, 0, 0).Format("2006-01-02"),
					Max: today.AddDate(-9, 0, 0).Format("2006-01-02"),
				},
			},
		},
	}
}

// Login validates credentials only. The password restriction stops at length
// here: older accounts may predate the current character-class policy.
func (s *Set) Login(email, password string) verify.Schema {
	return verify.Schema{
		{Name: "email", Kind: verify.KindEmail, Value: email, Check: true},
		{
			Name:  "password",
			Kind:  verify.KindString,
			Value: password,
			Check: true,
			Restrictions: verify.Restrictions{
				MinLen: intp(1),
				MaxLen: intp(passwordMaxLen),
			},
		},
	}
}

// OTP validates a verification submission. The session uuid is only present
// when the verification continues a login, so it is skipped when empty.
func (s *Set) OTP(email, code, sessionUUID, action string) verify.Schema {
	return verify.Schema{
		{Name: "email", Kind: verify.KindEmail, Value: email, Check: true},
		{
			Name:  "otp_code",
			Kind:  verify.KindString,
			Value: code,
			Check: true,
			Restrictions: verify.Restrictions{
				MinLen:    intp(6),
				MaxLen:    intp(6),
				Numbers:   verify.TriMust,
				LowerCase: verify.TriNone,
				UpperCase: verify.TriNone,
				Symbols:   verify.TriNone,
			},
		},
		{Name: "session_uuid", Kind: verify.KindUUID4, Value: sessionUUID, Check: true, SkipEmpty: true},
		{
			Name:  "return_action",
			Kind:  verify.KindString,
			Value: action,
			Check: true,
			Restrictions: verify.Restrictions{
				MinLen:    intp(1),
				MaxLen:    intp(20),
				LowerCase: verify.TriNone,
				Numbers:   verify.TriNone,
				Symbols:   verify.TriNone,
			},
		},
	}
}

// Logout validates the session coordinates.
func (s *Set) Logout(sessionUUID, userUUID string) verify.Schema {
	return verify.Schema{
		{Name: "session_uuid", Kind: verify.KindUUID4, Value: sessionUUID, Check: true},
		{Name: "user_uuid", Kind: verify.KindUUID4, Value: userUUID, Check: true},
	}
}
