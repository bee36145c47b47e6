// Package verify implements the declarative input-validation engine used by
// every RPC entry point. Callers build a Schema describing each incoming
// field (its kind, value and restriction set) and run it through an Engine;
// the result separates hard failures from advisory errors on optional
// fields.
//
// Restriction mistakes (an unrecognized enum value, max below min, a bound
// without a unit) are reported with a "DEV ERROR:" prefix: they indicate a
// broken schema template, not bad user input, and short-circuit further
// checks on that field.
package verify

import (
	"context"
	"net"
	"strings"
	"time"
)

const devErrPrefix = "DEV ERROR: "

// IsDevError reports whether a verification error describes a broken
// restriction rather than bad input. Callers escalate these instead of
// blaming the client.
func IsDevError(msg string) bool {
	return strings.HasPrefix(msg, devErrPrefix)
}

// Kind selects the type-specific verifier for a schema field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindEmail
	KindUUID4
	KindUnix
	KindDateTime
)

// Field is one entry of a validation schema.
type Field struct {
	Name         string
	Kind         Kind
	Value        any
	Restrictions Restrictions
	// Optional routes this field's errors to the advisory list; they are
	// reported but never fail the schema.
	Optional bool
	// SkipEmpty skips the field entirely when the value is an empty string.
	SkipEmpty bool
	// Check gates whether the field is verified at all. Schema builders set
	// it for fields that were present on the request.
	Check bool
}

// Schema is an ordered list of fields; verification runs in declaration
// order and errors keep that order.
type Schema []Field

// Restrictions carries every supported restriction; each verifier reads only
// the subset that applies to its kind. Nil pointers and zero-valued enums
// mean "library default".
type Restrictions struct {
	// Strings.
	MinLen    *int
	MaxLen    *int
	LowerCase TriState
	UpperCase TriState
	Numbers   TriState
	Symbols   TriState

	// Numbers.
	MinNum *float64
	MaxNum *float64

	// Unix timestamps.
	AllowFuture NullBool
	AllowPast   NullBool
	MinTime     *TimeBound
	MaxTime     *TimeBound

	// Date/time strings.
	Date *DateTimeRange
	Time *DateTimeRange
}

// TimeBound derives an absolute unix-time bound from "now": now plus or minus
// Value Units, direction chosen by the Future/Past flags. CurrentTime pins
// the bound to "now" itself and makes Unit/Value optional.
type TimeBound struct {
	CurrentTime bool
	Future      NullBool
	Past        NullBool
	Unit        Unit
	Value       *int64
}

// DateTimeRange bounds a date or time string; empty strings take the library
// defaults (a century either side for dates, the full day for times).
type DateTimeRange struct {
	Min string
	Max string
}

// Result is the outcome of verifying a schema. Errors holds hard failures
// first, then advisory errors from optional fields; OK is false only when a
// hard failure occurred.
type Result struct {
	OK     bool
	Errors []string
}

// MXResolver resolves MX records for email domain validation. It is
// satisfied by *net.Resolver and stubbed in tests.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// Engine runs schemas. It is stateless apart from its collaborators and is
// safe for concurrent use.
type Engine struct {
	resolver MXResolver
	now      func() time.Time
}

// NewEngine returns an Engine resolving MX records through resolver;
// a nil resolver falls back to net.DefaultResolver.
func NewEngine(resolver MXResolver) *Engine {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &Engine{resolver: resolver, now: time.Now}
}

// Verify runs every checked field of the schema through its kind-specific
// verifier and folds the outcomes into a single Result.
func (e *Engine) Verify(ctx context.Context, schema Schema) Result {
	var hard, advisory []string

	for _, f := range schema {
		if !f.Check {
			continue
		}

		if f.SkipEmpty {
			if s, ok := f.Value.(string); ok && s == "" {
				continue
			}
		}

		var (
			ok   bool
			errs []string
		)

		switch f.Kind {
		case KindString:
			ok, errs = e.VerifyString(f.Name, f.Value, f.Restrictions)
		case KindInt, KindFloat:
			ok, errs = e.VerifyNumber(f.Name, f.Kind, f.Value, f.Restrictions)
		case KindEmail:
			ok, errs = e.VerifyEmail(ctx, f.Name, f.Value)
		case KindUUID4:
			ok, errs = e.VerifyUUID4(f.Name, f.Value)
		case KindUnix:
			ok, errs = e.VerifyUnix(f.Name, f.Value, f.Restrictions)
		case KindDateTime:
			ok, errs = e.VerifyDateTime(f.Name, f.Value, f.Restrictions)
		default:
			ok, errs = false, []string{devErrPrefix + f.Name + " has an unrecognized schema kind"}
		}

		if f.Optional {
			advisory = append(advisory, errs...)
			continue
		}

		if !ok && len(errs) != 0 {
			hard = append(hard, errs...)
		}
	}

	if len(hard) != 0 {
		return Result{OK: false, Errors: append(hard, advisory...)}
	}

	return Result{OK: true, Errors: advisory}
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "str"
	case int, int32, int64:
		return "int"
	case float32, float64:
		return "float"
	case bool:
		return "bool"
	case nil:
		return "nil"
	}
	return "unknown"
}
