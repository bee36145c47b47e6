package verify

import (
	"testing"
)

func TestVerifyNumber_IntAcceptsIntegers(t *testing.T) {
	e := newTestEngine(nil)

	for _, v := range []any{int(7), int32(7), int64(7)} {
		ok, errs := e.VerifyNumber("field", KindInt, v, Restrictions{})
		if !ok {
			t.Fatalf("expected %T to pass: %v", v, errs)
		}
	}
}

func TestVerifyNumber_IntRejectsFloats(t *testing.T) {
	e := newTestEngine(nil)

	ok, errs := e.VerifyNumber("field", KindInt, 7.5, Restrictions{})
	if ok {
		t.Fatal("expected failure")
	}
	requireErrors(t, errs, "field type is invalid. Expected int but received float")
}

func TestVerifyNumber_FloatCoercesIntegers(t *testing.T) {
	e := newTestEngine(nil)

	ok, errs := e.VerifyNumber("field", KindFloat, int64(7), Restrictions{})
	if !ok {
		t.Fatalf("expected integer input to coerce: %v", errs)
	}
}

func TestVerifyNumber_Bounds(t *testing.T) {
	e := newTestEngine(nil)
	r := Restrictions{MinNum: floatp(10), MaxNum: floatp(20)}

	tests := []struct {
		name  string
		value any
		ok    bool
		want  string
	}{
		{"at min", 10, true, ""},
		{"at max", 20, true, ""},
		{"too small", 9, false, "field integer 9 is too small. Minimum expected number is 10"},
		{"too large", 21, false, "field integer 21 is too large. Maximum expected number is 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := e.VerifyNumber("field", KindInt, tt.value, r)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v (%v)", tt.ok, ok, errs)
			}
			if !tt.ok {
				requireErrors(t, errs, tt.want)
			}
		})
	}
}

func TestVerifyNumber_TypeMismatch(t *testing.T) {
	e := newTestEngine(nil)

	ok, errs := e.VerifyNumber("field", KindInt, "7", Restrictions{})
	if ok {
		t.Fatal("expected failure")
	}
	requireErrors(t, errs, "field type is invalid. Expected int but received str")
}

func TestVerifyNumber_MaxBelowMinIsDevError(t *testing.T) {
	e := newTestEngine(nil)

	ok, errs := e.VerifyNumber("field", KindInt, 15, Restrictions{MinNum: floatp(20), MaxNum: floatp(10)})
	if ok {
		t.Fatal("expected failure")
	}
	if len(errs) != 1 || !IsDevError(errs[0]) {
		t.Fatalf("expected single dev error, got %v", errs)
	}
}
