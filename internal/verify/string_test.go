package verify

import (
	"strings"
	"testing"
)

func TestVerifyString_LengthBounds(t *testing.T) {
	e := newTestEngine(nil)
	r := Restrictions{MinLen: intp(3), MaxLen: intp(5)}

	tests := []struct {
		name  string
		value string
		ok    bool
		want  string
	}{
		{"at min", "abc", true, ""},
		{"at max", "abcde", true, ""},
		{"too short", "ab", false, "field string length of 2 is too short. Minimum expected length is 3 characters"},
		{"too long", "abcdef", false, "field string length of 6 is too long. Maximum expected length is 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := e.VerifyString("field", tt.value, r)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v (%v)", tt.ok, ok, errs)
			}
			if !tt.ok {
				requireErrors(t, errs, tt.want)
			}
		})
	}
}

func TestVerifyString_LengthCountsRunes(t *testing.T) {
	e := newTestEngine(nil)

	// four runes, more than four bytes
	ok, errs := e.VerifyString("field", "日本語字", Restrictions{MinLen: intp(4), MaxLen: intp(4)})
	if !ok {
		t.Fatalf("expected rune-based length to pass: %v", errs)
	}
}

func TestVerifyString_CharacterClasses(t *testing.T) {
	e := newTestEngine(nil)

	tests := []struct {
		name  string
		value string
		r     Restrictions
		ok    bool
		want  string
	}{
		{"must lower ok", "abc", Restrictions{LowerCase: TriMust}, true, ""},
		{"must lower missing", "ABC", Restrictions{LowerCase: TriMust}, false, "field must contain at least one lower_case"},
		{"must upper missing", "abc", Restrictions{UpperCase: TriMust}, false, "field must contain at least one upper_case"},
		{"must number missing", "abc", Restrictions{Numbers: TriMust}, false, "field must contain at least one number"},
		{"must symbol missing", "abc1", Restrictions{Symbols: TriMust}, false, "field must contain at least one symbol"},
		{"none digits violated", "abc1", Restrictions{Numbers: TriNone}, false, "field must not contain number"},
		{"none symbols violated", "a b", Restrictions{Symbols: TriNone}, false, "field must not contain symbol"},
		{"default ignores everything", "a1!B", Restrictions{}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := e.VerifyString("field", tt.value, tt.r)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v (%v)", tt.ok, ok, errs)
			}
			if !tt.ok {
				requireErrors(t, errs, tt.want)
			}
		})
	}
}

func TestVerifyString_CollectsEveryDataError(t *testing.T) {
	e := newTestEngine(nil)

	ok, errs := e.VerifyString("password", "ab", Restrictions{
		MinLen:  intp(12),
		Numbers: TriMust,
		Symbols: TriMust,
	})
	if ok {
		t.Fatal("expected failure")
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
}

func TestVerifyString_TypeMismatch(t *testing.T) {
	e := newTestEngine(nil)

	ok, errs := e.VerifyString("field", 42, Restrictions{})
	if ok {
		t.Fatal("expected failure")
	}
	requireErrors(t, errs, "field type is invalid. Expected str but received int")
}

func TestVerifyString_RestrictionMistakesAreDevErrors(t *testing.T) {
	e := newTestEngine(nil)

	tests := []struct {
		name string
		r    Restrictions
	}{
		{"unknown tristate", Restrictions{LowerCase: "MAYBE"}},
		{"max below min", Restrictions{MinLen: intp(5), MaxLen: intp(3)}},
		{"negative min", Restrictions{MinLen: intp(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := e.VerifyString("field", "value", tt.r)
			if ok {
				t.Fatal("expected failure")
			}
			for _, msg := range errs {
				if !IsDevError(msg) {
					t.Fatalf("expected dev error, got %q", msg)
				}
			}
		})
	}
}

func TestVerifyString_DevErrorsShortCircuitDataChecks(t *testing.T) {
	e := newTestEngine(nil)

	// the value also violates MinLen, but only the restriction bug reports
	ok, errs := e.VerifyString("field", "x", Restrictions{MinLen: intp(5), MaxLen: intp(3)})
	if ok {
		t.Fatal("expected failure")
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "len_limits") {
		t.Fatalf("expected single restriction error, got %v", errs)
	}
}
