package verify

// TriState controls whether a condition must hold, may hold, or must not
// hold. The zero value is treated as TriDefault so schema templates only
// spell out the requirements they care about.
type TriState string

const (
	TriMust    TriState = "MUST"
	TriDefault TriState = "DEFAULT"
	TriNone    TriState = "NONE"
)

// resolve normalizes the zero value to TriDefault and reports whether the
// value is a recognized member. An unrecognized value is a developer error,
// not a data error.
func (t TriState) resolve() (TriState, bool) {
	switch t {
	case "":
		return TriDefault, true
	case TriMust, TriDefault, TriNone:
		return t, true
	}
	return t, false
}

// NullBool is a tri-valued boolean restriction: explicitly true, explicitly
// false, or not applicable. The zero value resolves to the default supplied
// by the caller, which differs per restriction.
type NullBool string

const (
	BoolTrue  NullBool = "TRUE"
	BoolFalse NullBool = "FALSE"
	BoolNone  NullBool = "NONE"
)

func (b NullBool) resolve(def NullBool) (NullBool, bool) {
	switch b {
	case "":
		return def, true
	case BoolTrue, BoolFalse, BoolNone:
		return b, true
	}
	return b, false
}

// Unit is the time unit of a unix-time bound restriction.
type Unit string

const (
	UnitSeconds Unit = "SECONDS"
	UnitMinutes Unit = "MINUTES"
	UnitHours   Unit = "HOURS"
	UnitDays    Unit = "DAYS"
	UnitYears   Unit = "YEARS"
)

// seconds returns the multiplier for one unit. Years use the Julian average
// of 365.25 days.
func (u Unit) seconds() (int64, bool) {
	switch u {
	case UnitSeconds:
		return 1, true
	case UnitMinutes:
		return 60, true
	case UnitHours:
		return 60 * 60, true
	case UnitDays:
		return 60 * 60 * 24, true
	case UnitYears:
		// 365.25 days
		return 60 * 60 * 24 * 1461 / 4, true
	}
	return 0, false
}
