package verify

import (
	"fmt"

	"github.com/google/uuid"
)

// VerifyUUID4 accepts only canonical 36-character UUIDv4 strings: dashes at
// positions 8, 13, 18 and 23, version nibble '4', variant nibble in
// {8, 9, a, b}, and every other character a hex digit.
func (e *Engine) VerifyUUID4(name string, value any) (bool, []string) {
	s, ok := value.(string)
	if !ok {
		return false, []string{fmt.Sprintf("%s type is invalid. Expected str but received %s", name, typeName(value))}
	}

	if len(s) != 36 {
		return false, []string{fmt.Sprintf("uuid %s length is not 36", name)}
	}

	dashes := 0
	for _, c := range s {
		if c == '-' {
			dashes++
		}
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' || dashes != 4 {
		return false, []string{fmt.Sprintf("uuid %s incorrectly formatted", name)}
	}

	if s[14] != '4' {
		return false, []string{fmt.Sprintf("uuid %s received version uuid%c. Expected version uuid4", name, s[14])}
	}

	switch s[19] {
	case '8', '9', 'a', 'b':
	default:
		return false, []string{fmt.Sprintf("uuid %s variant invalid", name)}
	}

	if _, err := uuid.Parse(s); err != nil {
		return false, []string{fmt.Sprintf("uuid %s unable to convert to uuid", name)}
	}

	return true, nil
}
