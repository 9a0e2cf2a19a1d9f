package document

import "github.com/erbsland-dev/elcl-go/types"

// The methods in this file are the narrow surface the builder package (component H) needs to place nodes into the
// tree; nothing outside a DocumentBuilder should call them once a document has been built.

// ChildByName returns the direct child registered under n, if any.
func (v *Value) ChildByName(n types.Name) (*Value, bool) {
	if v.children == nil {
		return nil, false
	}
	return v.children.byKey(n)
}

// HasChildName reports whether a direct child is already registered under n.
func (v *Value) HasChildName(n types.Name) bool {
	if v.children == nil {
		return false
	}
	return v.children.hasName(n)
}

// AppendChild appends child to v, attaching its parent backreference. The caller (the builder) is responsible for
// checking name conflicts first; AppendChild itself performs no validation.
func (v *Value) AppendChild(child *Value) {
	v.appendChild(child)
}

// PromoteTo transforms an IntermediateSection in place into targetKind (SectionWithNames or SectionWithTexts),
// also updating its recorded location to loc (the location of the assignment that concretized it).
func (v *Value) PromoteTo(targetKind Kind, loc types.Location) {
	v.promoteTo(targetKind)
	v.setLocation(loc)
}

// LastChild returns the final direct child, and true, or nil and false if v has no children.
func (v *Value) LastChild() (*Value, bool) {
	if v.children == nil || v.children.size() == 0 {
		return nil, false
	}
	return v.children.at(v.children.size() - 1), true
}
