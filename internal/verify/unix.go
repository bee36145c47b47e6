package verify

import (
	"fmt"
	"math"
)

// VerifyUnix checks a unix timestamp against "now". The allow_future and
// allow_past gates reject whole directions outright; when a direction is
// allowed, the optional min_time/max_time bounds are converted to absolute
// limits of now ± (value × unit) and checked independently per direction.
//
// The past branch intentionally mirrors the original behavior of this
// validator, including its inverted min/max comparison: past bounds grow
// downward from now, so the numerically greater limit is the minimum. Do not
// "fix" the comparison without revisiting every past-bounded schema.
func (e *Engine) VerifyUnix(name string, value any, r Restrictions) (bool, []string) {
	var data int64
	switch v := value.(type) {
	case int:
		data = int64(v)
	case int32:
		data = int64(v)
	case int64:
		data = v
	default:
		return false, []string{fmt.Sprintf("%s type is invalid. Expected int but received %s", name, typeName(value))}
	}

	now := e.now().Unix()

	allowFuture, ok := r.AllowFuture.resolve(BoolFalse)
	if !ok {
		return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
	}
	allowPast, ok := r.AllowPast.resolve(BoolFalse)
	if !ok {
		return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
	}

	if allowFuture == BoolFalse && allowPast == BoolFalse {
		return false, []string{devErrPrefix + "Filter must allow either past or future"}
	}

	if allowFuture == BoolFalse && data > now {
		return false, []string{fmt.Sprintf("%s unix time cannot be set in the future", name)}
	}
	if allowPast == BoolFalse && data < now {
		return false, []string{fmt.Sprintf("%s unix time cannot be set in the past", name)}
	}

	minCurrentTime := false
	minFuture, minPast := BoolNone, BoolNone
	minUnit := UnitSeconds
	var minValue int64

	maxFuture, maxPast := BoolNone, BoolNone
	maxUnit := UnitSeconds
	maxValue := math.Inf(1)

	if b := r.MinTime; b != nil {
		minCurrentTime = b.CurrentTime

		if minFuture, ok = b.Future.resolve(BoolNone); !ok {
			return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
		}
		if minPast, ok = b.Past.resolve(BoolNone); !ok {
			return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
		}

		if b.Unit != "" {
			if _, ok := b.Unit.seconds(); !ok {
				return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
			}
			minUnit = b.Unit
		} else if !minCurrentTime {
			return false, []string{fmt.Sprintf("%s%s unix min_time restriction must have a format if current time not set", devErrPrefix, name)}
		}

		if b.Value != nil {
			minValue = *b.Value
		} else if !minCurrentTime {
			return false, []string{fmt.Sprintf("%s%s unix min_time restriction must have a value if current time not set", devErrPrefix, name)}
		}
	}

	if b := r.MaxTime; b != nil {
		if maxFuture, ok = b.Future.resolve(BoolNone); !ok {
			return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
		}
		if maxPast, ok = b.Past.resolve(BoolNone); !ok {
			return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
		}

		if b.Unit != "" {
			if _, ok := b.Unit.seconds(); !ok {
				return false, []string{devErrPrefix + "Invalid Enum Value Provided"}
			}
			maxUnit = b.Unit
		} else {
			return false, []string{fmt.Sprintf("%s%s unix max_time restriction must have a format", devErrPrefix, name)}
		}

		if b.Value != nil {
			maxValue = float64(*b.Value)
		} else {
			return false, []string{fmt.Sprintf("%s%s unix max_time restriction must have a value", devErrPrefix, name)}
		}
	}

	toLimit := func(dir int64, unit Unit, value float64) float64 {
		mult, _ := unit.seconds()
		return float64(now) + value*float64(mult)*float64(dir)
	}

	if minFuture == BoolTrue || maxFuture == BoolTrue {
		if minFuture != maxFuture && !minCurrentTime {
			return false, []string{fmt.Sprintf("%s%s unix future restriction for min/max must both be set to TRUE", devErrPrefix, name)}
		}
		if minPast == BoolTrue || maxPast == BoolTrue {
			return false, []string{fmt.Sprintf("%s%s unix restriction for min/max past cannot be set to TRUE when min/max future is set to TRUE", devErrPrefix, name)}
		}
		if allowFuture == BoolFalse {
			return false, []string{fmt.Sprintf("%s%s unix restriction for min/max future cannot be set to TRUE when future unix is not allowed", devErrPrefix, name)}
		}

		minLimit := float64(now)
		if !minCurrentTime {
			minLimit = toLimit(1, minUnit, float64(minValue))
		}
		maxLimit := toLimit(1, maxUnit, maxValue)

		if minLimit >= maxLimit {
			return false, []string{fmt.Sprintf("%s%s unix future restriction min limit (%v) greater than max limit (%v)", devErrPrefix, name, minLimit, maxLimit)}
		}
		if minLimit > float64(data) {
			return false, []string{fmt.Sprintf("%s unix out of range (PAST)", name)}
		}
		if float64(data) > maxLimit {
			return false, []string{fmt.Sprintf("%s unix out of range (FUTURE)", name)}
		}
	}

	if minPast == BoolTrue || maxPast == BoolTrue {
		if minPast != maxPast && !minCurrentTime {
			return false, []string{fmt.Sprintf("%s%s unix past restriction for min/max must both be set to TRUE", devErrPrefix, name)}
		}
		if allowPast == BoolFalse {
			return false, []string{fmt.Sprintf("%s%s unix restriction for min/max past cannot be set to TRUE when past unix is not allowed", devErrPrefix, name)}
		}

		minLimit := float64(now)
		if !minCurrentTime {
			minLimit = toLimit(-1, minUnit, float64(minValue))
		}
		maxLimit := toLimit(-1, maxUnit, maxValue)

		// Past bounds run downward: the min limit sits closer to now than
		// the max limit, so the comparisons flip relative to the future
		// branch.
		if minLimit <= maxLimit {
			return false, []string{fmt.Sprintf("%s%s unix past restriction min limit (%v) greater than max limit (%v)", devErrPrefix, name, minLimit, maxLimit)}
		}
		if minLimit < float64(data) {
			return false, []string{fmt.Sprintf("%s unix out of range (PAST)", name)}
		}
		if float64(data) < maxLimit {
			return false, []string{fmt.Sprintf("%s unix out of range (FUTURE)", name)}
		}
	}

	return true, nil
}
