package document

import "github.com/erbsland-dev/elcl-go/types"

// FlatEntry is one row of a flattened document: a full name path paired with the node it resolves to.
type FlatEntry struct {
	Path  types.NamePath
	Value *Value
}

// ToFlatValueMap performs a depth-first traversal of d, producing one entry per non-document descendant keyed by
// its full name path from the root (spec §4.5: "a depth-first traversal producing { full_name_path -> value } for
// all non-document descendants"). Section lists contribute an index element for each of their SectionWithNames
// entries so every path in the result is unique.
func (d *Document) ToFlatValueMap() []FlatEntry {
	var out []FlatEntry
	flattenInto(d.Value, types.NamePath{}, &out)
	return out
}

func flattenInto(v *Value, prefix types.NamePath, out *[]FlatEntry) {
	for _, child := range v.Children() {
		path := prefix.Append(elementName(v, child))
		*out = append(*out, FlatEntry{Path: path, Value: child})
		if child.children != nil {
			flattenInto(child, path, out)
		}
	}
}

// elementName picks the NamePath element under which child should be addressed from parent: its own Name for
// named containers, or a positional index for the unnamed slots of a list.
func elementName(parent, child *Value) types.Name {
	switch parent.kind {
	case KindValueList:
		return types.NewIndexName(indexOf(parent, child))
	case KindSectionList:
		return types.NewIndexName(indexOf(parent, child))
	default:
		return child.name
	}
}

func indexOf(parent, child *Value) int {
	for i, c := range parent.Children() {
		if c == child {
			return i
		}
	}
	return -1
}
