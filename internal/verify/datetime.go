package verify

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// VerifyDateTime parses a date, time or combined string depending on which
// range restrictions are present and checks it against the configured
// bounds. Dates default to a century either side of today; times default to
// the full day. A malformed bound string is a developer error.
func (e *Engine) VerifyDateTime(name string, value any, r Restrictions) (bool, []string) {
	s, ok := value.(string)
	if !ok {
		return false, []string{fmt.Sprintf("%s type is invalid. Expected str but received %s", name, typeName(value))}
	}

	today := e.now()

	minDate := today.AddDate(-100, 0, 0).Format(dateLayout)
	maxDate := today.AddDate(100, 0, 0).Format(dateLayout)
	minTime := "00:00:00"
	maxTime := "23:59:59"

	if r.Date != nil {
		if r.Date.Min != "" {
			minDate = r.Date.Min
		}
		if r.Date.Max != "" {
			maxDate = r.Date.Max
		}
	}
	if r.Time != nil {
		if r.Time.Min != "" {
			minTime = r.Time.Min
		}
		if r.Time.Max != "" {
			maxTime = r.Time.Max
		}
	}

	var layout, minRaw, maxRaw string

	switch {
	case r.Date != nil && r.Time != nil:
		layout = dateTimeLayout
		minRaw = minDate + " " + minTime
		maxRaw = maxDate + " " + maxTime
	case r.Date != nil:
		layout = dateLayout
		minRaw = minDate
		maxRaw = maxDate
	case r.Time != nil:
		layout = timeLayout
		minRaw = minTime
		maxRaw = maxTime
	default:
		return false, []string{fmt.Sprintf("%s%s datetime restriction must include a date or time range", devErrPrefix, name)}
	}

	minVal, err := time.Parse(layout, minRaw)
	if err != nil {
		return false, []string{fmt.Sprintf("%s%s-restriction-min is not a valid %s value", devErrPrefix, name, layout)}
	}
	maxVal, err := time.Parse(layout, maxRaw)
	if err != nil {
		return false, []string{fmt.Sprintf("%s%s-restriction-max is not a valid %s value", devErrPrefix, name, layout)}
	}

	parsed, err := time.Parse(layout, s)
	if err != nil {
		return false, []string{fmt.Sprintf("%s invalid datetime format. Expected %s", name, layout)}
	}

	if parsed.Before(minVal) || parsed.After(maxVal) {
		return false, []string{fmt.Sprintf("%s datetime out of range", name)}
	}

	return true, nil
}
