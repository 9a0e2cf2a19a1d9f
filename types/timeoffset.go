package types

import "fmt"

// localOffsetSentinel is a magic value distinct from any valid offset in (-86399, 86399), marking "local time".
const localOffsetSentinel = 1 << 30

// OffsetPrecision controls how a TimeOffset renders: by hour, minute, or second resolution, or automatically
// picking the coarsest resolution that round-trips the stored value.
type OffsetPrecision int

const (
	OffsetAutomatic OffsetPrecision = iota
	OffsetHours
	OffsetMinutes
	OffsetSeconds
)

// TimeOffset represents a UTC offset attached to a Time: either local (no offset known), UTC (zero offset), or a
// fixed number of signed seconds in (-86399, 86399).
type TimeOffset struct {
	seconds int32
}

// LocalOffset is the sentinel TimeOffset meaning "local time, no offset recorded".
var LocalOffset = TimeOffset{seconds: localOffsetSentinel}

// UTCOffset is the zero TimeOffset.
var UTCOffset = TimeOffset{seconds: 0}

// NewOffset returns a fixed TimeOffset of the given number of seconds, which must be in (-86400, 86400).
func NewOffset(seconds int) (TimeOffset, error) {
	if seconds <= -86400 || seconds >= 86400 {
		return TimeOffset{}, fmt.Errorf("time offset %d seconds out of range", seconds)
	}
	return TimeOffset{seconds: int32(seconds)}, nil
}

// IsLocal reports whether this offset is the "local time" sentinel.
func (o TimeOffset) IsLocal() bool { return o.seconds == localOffsetSentinel }

// IsUTC reports whether this offset is exactly zero (and not local).
func (o TimeOffset) IsUTC() bool { return o.seconds == 0 }

// TotalSeconds returns the signed offset in seconds; local time yields 0.
func (o TimeOffset) TotalSeconds() int {
	if o.IsLocal() {
		return 0
	}
	return int(o.seconds)
}

// precisionFor picks the coarsest unit (hours/minutes/seconds) that exactly represents the offset.
func (o TimeOffset) precisionFor() OffsetPrecision {
	s := o.TotalSeconds()
	if s%3600 == 0 {
		return OffsetHours
	}
	if s%60 == 0 {
		return OffsetMinutes
	}
	return OffsetSeconds
}

// String renders the offset: "" for local, "z" for UTC, or "+HH[:MM[:SS]]"/"-HH[:MM[:SS]]" otherwise, using the
// minimal precision that exactly represents the value.
func (o TimeOffset) String() string {
	if o.IsLocal() {
		return ""
	}
	if o.IsUTC() {
		return "z"
	}
	s := o.TotalSeconds()
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	switch o.precisionFor() {
	case OffsetHours:
		return fmt.Sprintf("%s%02d", sign, h)
	case OffsetMinutes:
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	default:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	}
}
