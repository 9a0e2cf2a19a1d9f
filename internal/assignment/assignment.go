// Package assignment implements component F: the structural parser that turns a lexer.Token stream into a flat
// Generator<Assignment> sequence, assembling inline/multi-line value lists and multi-line literals along the way.
package assignment

import "github.com/erbsland-dev/elcl-go/types"

// Kind classifies one Assignment (spec §4.4).
type Kind int

const (
	SectionMap Kind = iota
	SectionList
	Value
	MetaValue
	EndOfDocument
)

func (k Kind) String() string {
	switch k {
	case SectionMap:
		return "SectionMap"
	case SectionList:
		return "SectionList"
	case Value:
		return "Value"
	case MetaValue:
		return "MetaValue"
	case EndOfDocument:
		return "EndOfDocument"
	default:
		return "Unknown"
	}
}

// ScalarKind tags what sits in an Item's typed fields; it mirrors document.Kind's scalar subset without importing
// the document package, keeping this component's only dependency the primitives in types.
type ScalarKind int

const (
	ScalarUndefined ScalarKind = iota
	ScalarInteger
	ScalarBoolean
	ScalarFloat
	ScalarText
	ScalarDate
	ScalarTime
	ScalarDateTime
	ScalarBytes
	ScalarTimeDelta
	ScalarRegEx
)

// Item is one value in a (possibly single-element) value list: exactly one of the typed fields is meaningful,
// selected by Kind.
type Item struct {
	Kind      ScalarKind
	Location  types.Location
	Integer   int64
	Boolean   bool
	Float     float64
	Text      string
	Date      types.Date
	Time      types.Time
	DateTime  types.DateTime
	Bytes     types.Bytes
	TimeDelta types.TimeDelta
	RegEx     types.RegEx
}

// Assignment is one structural unit of the document (spec §4.4). Items is non-empty only for Kind == Value, and
// holds one element for a plain scalar assignment or more for a comma/bullet-separated value list.
type Assignment struct {
	Kind     Kind
	Path     types.NamePath
	Location types.Location
	Items    []Item
	Text     string // raw meta-value text, only set when Kind == MetaValue
}
