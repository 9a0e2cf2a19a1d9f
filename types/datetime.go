package types

// DateTime pairs a Date and a Time. Comparison normalizes both sides to a (days, UTC-equivalent nanoseconds)
// pair, so a local time compares as if it were UTC (spec §3.1).
type DateTime struct {
	Date Date
	Time Time
}

// NewDateTime pairs d and t.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{Date: d, Time: t}
}

// IsUndefined reports whether both components are undefined.
func (dt DateTime) IsUndefined() bool {
	return dt.Date.IsUndefined() && dt.Time.IsUndefined()
}

// Compare returns -1, 0, or 1 as dt is before, equal to, or after other, normalizing to UTC-equivalent
// nanoseconds-within-day for the time component.
func (dt DateTime) Compare(other DateTime) int {
	key := func(x DateTime) (Date, int64) {
		n := x.Time.UTCEquivalentNanos() + NanosPerDay // an offset is under one day, so n lies in [0, 3 days)
		return FromDaysSinceEpoch(x.Date.DaysSinceEpoch() + n/NanosPerDay - 1), n % NanosPerDay
	}
	aDate, a := key(dt)
	bDate, b := key(other)
	if c := aDate.Compare(bDate); c != 0 {
		return c
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders as "YYYY-MM-DDTHH:MM:SS[.fraction][offset]".
func (dt DateTime) String() string {
	if dt.Time.IsUndefined() {
		return dt.Date.String()
	}
	if dt.Date.IsUndefined() {
		return dt.Time.String()
	}
	return dt.Date.String() + "T" + dt.Time.String()
}
