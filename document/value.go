package document

import "github.com/erbsland-dev/elcl-go/types"

// Value is the single node type backing the whole tree (spec §3.3, §9: "prefer a tagged sum [...] over
// inheritance"). Exactly one of its scalar fields is meaningful, chosen by Kind, or it holds a *container for the
// container kinds. Every non-document node has exactly one owning parent; children keep only a weak (non-owning)
// backreference to it, set once by the builder at the moment the child is attached.
type Value struct {
	kind     Kind
	name     types.Name
	location types.Location
	parent   *Value

	integer   int64
	boolean   bool
	float     float64
	text      string
	date      types.Date
	time      types.Time
	dateTime  types.DateTime
	bytes     types.Bytes
	timeDelta types.TimeDelta
	regex     types.RegEx

	children *container
}

// Kind returns this node's type tag.
func (v *Value) Kind() Kind { return v.kind }

// Name returns this node's key within its parent container.
func (v *Value) Name() types.Name { return v.name }

// Location returns the source location this node was created at.
func (v *Value) Location() types.Location { return v.location }

// Parent returns the owning container node, or nil for the Document root.
func (v *Value) Parent() *Value { return v.parent }

func (v *Value) setParent(parent *Value) { v.parent = parent }

func newLeaf(kind Kind, name types.Name, loc types.Location) *Value {
	return &Value{kind: kind, name: name, location: loc}
}

func newContainerValue(kind Kind, name types.Name, loc types.Location) *Value {
	return &Value{kind: kind, name: name, location: loc, children: newContainer()}
}

// NewUndefined returns an Undefined-kind leaf, used as the zero result of best-effort lookups/accessors.
func NewUndefined() *Value {
	return &Value{kind: KindUndefined}
}

func NewInteger(name types.Name, loc types.Location, v int64) *Value {
	n := newLeaf(KindInteger, name, loc)
	n.integer = v
	return n
}

func NewBoolean(name types.Name, loc types.Location, v bool) *Value {
	n := newLeaf(KindBoolean, name, loc)
	n.boolean = v
	return n
}

func NewFloat(name types.Name, loc types.Location, v float64) *Value {
	n := newLeaf(KindFloat, name, loc)
	n.float = v
	return n
}

func NewText(name types.Name, loc types.Location, v string) *Value {
	n := newLeaf(KindText, name, loc)
	n.text = v
	return n
}

func NewDateValue(name types.Name, loc types.Location, v types.Date) *Value {
	n := newLeaf(KindDate, name, loc)
	n.date = v
	return n
}

func NewTimeValue(name types.Name, loc types.Location, v types.Time) *Value {
	n := newLeaf(KindTime, name, loc)
	n.time = v
	return n
}

func NewDateTimeValue(name types.Name, loc types.Location, v types.DateTime) *Value {
	n := newLeaf(KindDateTime, name, loc)
	n.dateTime = v
	return n
}

func NewBytesValue(name types.Name, loc types.Location, v types.Bytes) *Value {
	n := newLeaf(KindBytes, name, loc)
	n.bytes = v
	return n
}

func NewTimeDeltaValue(name types.Name, loc types.Location, v types.TimeDelta) *Value {
	n := newLeaf(KindTimeDelta, name, loc)
	n.timeDelta = v
	return n
}

func NewRegExValue(name types.Name, loc types.Location, v types.RegEx) *Value {
	n := newLeaf(KindRegEx, name, loc)
	n.regex = v
	return n
}

// NewValueList constructs an (initially empty) ValueList. Once built, a ValueList is immutable (spec §3.3).
func NewValueList(name types.Name, loc types.Location) *Value {
	return newContainerValue(KindValueList, name, loc)
}

// NewSectionList constructs an (initially empty) SectionList.
func NewSectionList(name types.Name, loc types.Location) *Value {
	return newContainerValue(KindSectionList, name, loc)
}

// NewIntermediateSection constructs a transient IntermediateSection.
func NewIntermediateSection(name types.Name, loc types.Location) *Value {
	return newContainerValue(KindIntermediateSection, name, loc)
}

// NewSectionWithNames constructs an (initially empty) SectionWithNames.
func NewSectionWithNames(name types.Name, loc types.Location) *Value {
	return newContainerValue(KindSectionWithNames, name, loc)
}

// NewSectionWithTexts constructs an (initially empty) SectionWithTexts.
func NewSectionWithTexts(name types.Name, loc types.Location) *Value {
	return newContainerValue(KindSectionWithTexts, name, loc)
}

// Size returns the number of direct children; it is 0 for scalar kinds.
func (v *Value) Size() int {
	if v.children == nil {
		return 0
	}
	return v.children.size()
}

// Children returns the direct children in insertion order; it is nil for scalar kinds.
func (v *Value) Children() []*Value {
	if v.children == nil {
		return nil
	}
	out := make([]*Value, v.children.size())
	copy(out, v.children.order)
	return out
}

// appendChild appends child to v's container, attaching its parent backreference. It does not check for name
// conflicts; the document builder is responsible for that.
func (v *Value) appendChild(child *Value) {
	child.setParent(v)
	v.children.add(child)
}

// promoteTo transforms an IntermediateSection in place into targetKind (SectionWithNames or SectionWithTexts).
func (v *Value) promoteTo(targetKind Kind) {
	v.kind = targetKind
}

// setLocation updates the node's recorded source location; used when an IntermediateSection is promoted and
// should take on the location of the assignment that concretized it.
func (v *Value) setLocation(loc types.Location) {
	v.location = loc
}
