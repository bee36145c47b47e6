package verify

import (
	"fmt"
	"math"
)

// VerifyNumber checks an int or float value against numeric bounds. The kind
// argument selects the required numeric type: KindFloat coerces integer
// input, KindInt rejects anything that is not an integer.
func (e *Engine) VerifyNumber(name string, kind Kind, value any, r Restrictions) (bool, []string) {
	minNum := math.Inf(-1)
	maxNum := math.Inf(1)
	if r.MinNum != nil {
		minNum = *r.MinNum
	}
	if r.MaxNum != nil {
		maxNum = *r.MaxNum
	}

	var restErrors []string

	if kind != KindInt && kind != KindFloat {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-type is invalid. Data type must be int or float", devErrPrefix, name))
		kind = KindInt
	}

	var n float64

	switch v := value.(type) {
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case float32:
		if kind == KindInt {
			return false, []string{fmt.Sprintf("%s type is invalid. Expected int but received float", name)}
		}
		n = float64(v)
	case float64:
		if kind == KindInt {
			return false, []string{fmt.Sprintf("%s type is invalid. Expected int but received float", name)}
		}
		n = v
	default:
		expected := "int"
		if kind == KindFloat {
			expected = "float"
		}
		return false, []string{fmt.Sprintf("%s type is invalid. Expected %s but received %s", name, expected, typeName(value))}
	}

	if maxNum < minNum {
		restErrors = append(restErrors, fmt.Sprintf("%s%s-restriction-num_limits is invalid. max_num must be >= min_num", devErrPrefix, name))
	}

	if len(restErrors) != 0 {
		return false, restErrors
	}

	var dataErrors []string

	if n < minNum {
		dataErrors = append(dataErrors, fmt.Sprintf("%s integer %v is too small. Minimum expected number is %v", name, value, minNum))
	}
	if n > maxNum {
		dataErrors = append(dataErrors, fmt.Sprintf("%s integer %v is too large. Maximum expected number is %v", name, value, maxNum))
	}

	if len(dataErrors) != 0 {
		return false, dataErrors
	}

	return true, nil
}
