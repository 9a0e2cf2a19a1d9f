package document

import (
	"strconv"

	"github.com/erbsland-dev/elcl-go/types"
)

// typeMismatch builds a KindTypeMismatch error describing the wanted kind versus v's actual kind.
func (v *Value) typeMismatch(want string) error {
	msg := "expected " + want + ", got " + v.kind.String()
	return types.NewError(types.KindTypeMismatch, msg).WithLocation(v.location).WithNamePath(types.NewNamePath(v.name))
}

// Integer returns the integer payload and true if v is a KindInteger leaf.
func (v *Value) Integer() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.integer, true
}

// IntegerOrThrow returns the integer payload or a KindTypeMismatch error.
func (v *Value) IntegerOrThrow() (int64, error) {
	if n, ok := v.Integer(); ok {
		return n, nil
	}
	return 0, v.typeMismatch("an integer")
}

// Boolean returns the boolean payload and true if v is a KindBoolean leaf.
func (v *Value) Boolean() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.boolean, true
}

func (v *Value) BooleanOrThrow() (bool, error) {
	if b, ok := v.Boolean(); ok {
		return b, nil
	}
	return false, v.typeMismatch("a boolean")
}

// Float returns the float payload and true if v is a KindFloat leaf. Per spec §4.1, an Integer value is also
// accepted and widened, since every integer is representable as a float.
func (v *Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.float, true
	case KindInteger:
		return float64(v.integer), true
	default:
		return 0, false
	}
}

func (v *Value) FloatOrThrow() (float64, error) {
	if f, ok := v.Float(); ok {
		return f, nil
	}
	return 0, v.typeMismatch("a float")
}

// Text returns the text payload and true if v is a KindText leaf.
func (v *Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

func (v *Value) TextOrThrow() (string, error) {
	if s, ok := v.Text(); ok {
		return s, nil
	}
	return "", v.typeMismatch("a text")
}

// Date returns the date payload and true if v is a KindDate leaf.
func (v *Value) Date() (types.Date, bool) {
	if v.kind != KindDate {
		return types.Date{}, false
	}
	return v.date, true
}

func (v *Value) DateOrThrow() (types.Date, error) {
	if d, ok := v.Date(); ok {
		return d, nil
	}
	return types.Date{}, v.typeMismatch("a date")
}

// Time returns the time payload and true if v is a KindTime leaf.
func (v *Value) Time() (types.Time, bool) {
	if v.kind != KindTime {
		return types.Time{}, false
	}
	return v.time, true
}

func (v *Value) TimeOrThrow() (types.Time, error) {
	if t, ok := v.Time(); ok {
		return t, nil
	}
	return types.Time{}, v.typeMismatch("a time")
}

// DateTime returns the date-time payload and true if v is a KindDateTime leaf.
func (v *Value) DateTime() (types.DateTime, bool) {
	if v.kind != KindDateTime {
		return types.DateTime{}, false
	}
	return v.dateTime, true
}

func (v *Value) DateTimeOrThrow() (types.DateTime, error) {
	if dt, ok := v.DateTime(); ok {
		return dt, nil
	}
	return types.DateTime{}, v.typeMismatch("a date-time")
}

// Bytes returns the byte-blob payload and true if v is a KindBytes leaf.
func (v *Value) Bytes() (types.Bytes, bool) {
	if v.kind != KindBytes {
		return types.Bytes{}, false
	}
	return v.bytes, true
}

func (v *Value) BytesOrThrow() (types.Bytes, error) {
	if b, ok := v.Bytes(); ok {
		return b, nil
	}
	return types.Bytes{}, v.typeMismatch("a byte-data value")
}

// TimeDelta returns the time-delta payload and true if v is a KindTimeDelta leaf.
func (v *Value) TimeDelta() (types.TimeDelta, bool) {
	if v.kind != KindTimeDelta {
		return types.TimeDelta{}, false
	}
	return v.timeDelta, true
}

func (v *Value) TimeDeltaOrThrow() (types.TimeDelta, error) {
	if td, ok := v.TimeDelta(); ok {
		return td, nil
	}
	return types.TimeDelta{}, v.typeMismatch("a time-delta")
}

// RegEx returns the regular-expression payload and true if v is a KindRegEx leaf.
func (v *Value) RegEx() (types.RegEx, bool) {
	if v.kind != KindRegEx {
		return types.RegEx{}, false
	}
	return v.regex, true
}

func (v *Value) RegExOrThrow() (types.RegEx, error) {
	if r, ok := v.RegEx(); ok {
		return r, nil
	}
	return types.RegEx{}, v.typeMismatch("a regular expression")
}

// ValueList returns the direct children of v and true if v is a KindValueList container.
func (v *Value) ValueList() ([]*Value, bool) {
	if v.kind != KindValueList {
		return nil, false
	}
	return v.Children(), true
}

func (v *Value) ValueListOrThrow() ([]*Value, error) {
	if vs, ok := v.ValueList(); ok {
		return vs, nil
	}
	return nil, v.typeMismatch("a value list")
}

// SectionList returns the direct children of v and true if v is a KindSectionList container.
func (v *Value) SectionList() ([]*Value, bool) {
	if v.kind != KindSectionList {
		return nil, false
	}
	return v.Children(), true
}

func (v *Value) SectionListOrThrow() ([]*Value, error) {
	if vs, ok := v.SectionList(); ok {
		return vs, nil
	}
	return nil, v.typeMismatch("a section list")
}

// ToValueList broadens v into a []*Value the way spec §4.5's matrix-construction rules do for a single row: a
// KindValueList yields its children, any scalar kind yields a single-element slice, and any other container kind
// fails.
func (v *Value) ToValueList() ([]*Value, bool) {
	switch {
	case v.kind == KindValueList:
		return v.Children(), true
	case v.kind.IsScalar():
		return []*Value{v}, true
	default:
		return nil, false
	}
}

func (v *Value) ToValueListOrThrow() ([]*Value, error) {
	if vs, ok := v.ToValueList(); ok {
		return vs, nil
	}
	return nil, v.typeMismatch("a value or value list")
}

// IntegerAt returns the integer payload of the i-th child, for convenient inline indexing.
func (v *Value) IntegerAt(i int) (int64, bool) {
	child, ok := v.children.atIndex(i)
	if !ok {
		return 0, false
	}
	return child.Integer()
}

// ToTextRepresentation renders v's value-specific format, matching the textual literal grammar of spec §4.1
// where one exists. Container kinds have no textual form and yield "".
func (v *Value) ToTextRepresentation() string {
	switch v.kind {
	case KindUndefined:
		return "(undefined)"
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindBoolean:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindText:
		return v.text
	case KindDate:
		return v.date.String()
	case KindTime:
		return v.time.String()
	case KindDateTime:
		return v.dateTime.String()
	case KindBytes:
		return v.bytes.String()
	case KindTimeDelta:
		return v.timeDelta.String()
	case KindRegEx:
		return v.regex.String()
	default:
		return ""
	}
}

// String implements fmt.Stringer in terms of ToTextRepresentation.
func (v *Value) String() string { return v.ToTextRepresentation() }
