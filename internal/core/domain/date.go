package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the dd/mm/yyyy form used in confirmations and tables.
const DateLayout = "02/01/2006"

// DaysInclusive counts the days of a range including both endpoints. A reversed
// range yields zero or a negative count; callers pass it through unchanged.
func DaysInclusive(from, to civil.Date) int {
	return to.DaysSince(from) + 1
}

func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(DateLayout)
}

// ParseDate accepts ISO dates (2024-01-31) and the display form (31/01/2024).
func ParseDate(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return civil.Date{}, err
	}

	return civil.DateOf(t), nil
}
