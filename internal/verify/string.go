package verify

import (
	"fmt"
	"math"
	"unicode"
)

type charClass struct {
	label string
	req   TriState
	pred  func(rune) bool
}

// VerifyString checks a string value against length limits and the four
// tri-state character-class requirements. Restriction mistakes are returned
// as developer errors before any data check runs.
func (e *Engine) VerifyString(name string, value any, r Restrictions) (bool, []string) {
	s, ok := value.(string)
	if !ok {
		return false, []string{fmt.Sprintf("%s type is invalid. Expected str but received %s", name, typeName(value))}
	}

	minLen := 0
	maxLen := math.MaxInt
	if r.MinLen != nil {
		minLen = *r.MinLen
	}
	if r.MaxLen != nil {
		maxLen = *r.MaxLen
	}

	var restErrors []string

	lower, ok := r.LowerCase.resolve()
	if !ok {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-lower_case is invalid. lower_case must be MUST, DEFAULT or NONE", devErrPrefix, name))
	}
	upper, ok := r.UpperCase.resolve()
	if !ok {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-upper_case is invalid. upper_case must be MUST, DEFAULT or NONE", devErrPrefix, name))
	}
	numbers, ok := r.Numbers.resolve()
	if !ok {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-numbers is invalid. numbers must be MUST, DEFAULT or NONE", devErrPrefix, name))
	}
	symbols, ok := r.Symbols.resolve()
	if !ok {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-symbols is invalid. symbols must be MUST, DEFAULT or NONE", devErrPrefix, name))
	}

	if maxLen < minLen {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-len_limits is invalid. max_len must be >= min_len", devErrPrefix, name))
	}
	if minLen < 0 {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-min_len is invalid. min_len must be a positive integer", devErrPrefix, name))
	}

	if len(restErrors) != 0 {
		return false, restErrors
	}

	var dataErrors []string

	runes := []rune(s)
	if len(runes) < minLen {
		dataErrors = append(dataErrors, fmt.Sprintf("%s string length of %d is too short. Minimum expected length is %d characters", name, len(runes), minLen))
	}
	if len(runes) > maxLen {
		dataErrors = append(dataErrors, fmt.Sprintf("%s string length of %d is too long. Maximum expected length is %d characters", name, len(runes), maxLen))
	}

	classes := []charClass{
		{"lower_case", lower, unicode.IsLower},
		{"upper_case", upper, unicode.IsUpper},
		{"number", numbers, unicode.IsDigit},
		{"symbol", symbols, func(c rune) bool { return !unicode.IsLetter(c) && !unicode.IsDigit(c) }},
	}

	for _, c := range classes {
		if c.req == TriDefault {
			continue
		}

		hasChar := false
		for _, ch := range runes {
			if c.pred(ch) {
				hasChar = true
				break
			}
		}

		if hasChar && c.req == TriNone {
			dataErrors = append(dataErrors, fmt.Sprintf("%s must not contain %s", name, c.label))
		} else if !hasChar && c.req == TriMust {
			dataErrors = append(dataErrors, fmt.Sprintf("%s must contain at least one %s", name, c.label))
		}
	}

	if len(dataErrors) != 0 {
		return false, dataErrors
	}

	return true, nil
}
