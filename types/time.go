package types

import (
	"fmt"
	"strconv"
	"strings"
)

// NanosPerDay is the number of nanoseconds in one day.
const NanosPerDay = int64(86400) * 1_000_000_000

// Time is a time-of-day value stored as nanoseconds since midnight, plus a TimeOffset. A negative nanosecond
// count means "undefined" (spec §3.1).
type Time struct {
	nanos  int64
	offset TimeOffset
}

// UndefinedTime is the zero-valued, undefined Time.
var UndefinedTime = Time{nanos: -1}

// NewTime validates hour/minute/second/nanosecond ranges and the offset, and returns the resulting Time.
func NewTime(hour, minute, second, nanosecond int, offset TimeOffset) (Time, error) {
	if hour < 0 || hour > 23 {
		return UndefinedTime, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return UndefinedTime, fmt.Errorf("minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return UndefinedTime, fmt.Errorf("second %d out of range", second)
	}
	if nanosecond < 0 || nanosecond >= 1_000_000_000 {
		return UndefinedTime, fmt.Errorf("nanosecond %d out of range", nanosecond)
	}
	total := int64(hour)*3600_000_000_000 + int64(minute)*60_000_000_000 + int64(second)*1_000_000_000 + int64(nanosecond)
	return Time{nanos: total, offset: offset}, nil
}

// FromNanosSinceMidnight constructs a Time directly from its nanosecond count and offset, without validation.
func FromNanosSinceMidnight(nanos int64, offset TimeOffset) Time {
	return Time{nanos: nanos, offset: offset}
}

// IsUndefined reports whether this Time carries no value.
func (t Time) IsUndefined() bool { return t.nanos < 0 }

// NanosSinceMidnight returns the raw nanosecond count backing this Time.
func (t Time) NanosSinceMidnight() int64 { return t.nanos }

// Offset returns this Time's UTC offset.
func (t Time) Offset() TimeOffset { return t.offset }

// Hour, Minute, Second, and Nanosecond decompose the stored nanosecond count.
func (t Time) Hour() int {
	if t.IsUndefined() {
		return 0
	}
	return int(t.nanos / 3600_000_000_000)
}

func (t Time) Minute() int {
	if t.IsUndefined() {
		return 0
	}
	return int((t.nanos / 60_000_000_000) % 60)
}

func (t Time) Second() int {
	if t.IsUndefined() {
		return 0
	}
	return int((t.nanos / 1_000_000_000) % 60)
}

func (t Time) Nanosecond() int {
	if t.IsUndefined() {
		return 0
	}
	return int(t.nanos % 1_000_000_000)
}

// UTCEquivalentNanos returns the nanosecond-of-day value normalized to UTC by subtracting the offset; this is
// the comparison key DateTime uses, per spec §3.1 ("local time compares as UTC").
func (t Time) UTCEquivalentNanos() int64 {
	if t.IsUndefined() {
		return 0
	}
	return t.nanos - int64(t.offset.TotalSeconds())*1_000_000_000
}

// String renders the time as "HH:MM:SS[.fraction][offset]", trimming trailing zero fraction digits.
func (t Time) String() string {
	if t.IsUndefined() {
		return "(undefined)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		frac := fmt.Sprintf("%09d", ns)
		frac = strings.TrimRight(frac, "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteString(t.offset.String())
	return b.String()
}

// ParseFraction converts a fractional-seconds digit string (after the decimal point, up to 9 digits) into
// nanoseconds, right-padding with zeros.
func ParseFraction(digits string) (int, error) {
	if len(digits) == 0 || len(digits) > 9 {
		return 0, fmt.Errorf("fractional seconds must have 1 to 9 digits, got %d", len(digits))
	}
	padded := digits + strings.Repeat("0", 9-len(digits))
	v, err := strconv.Atoi(padded)
	if err != nil {
		return 0, fmt.Errorf("invalid fractional seconds %q: %w", digits, err)
	}
	return v, nil
}
