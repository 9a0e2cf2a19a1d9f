package document

import (
	"sort"
	"strconv"
	"strings"
)

// TestTextFlag selects optional detail for ToTestText, matching the reference implementation's TestFormat bitset.
type TestTextFlag int

const (
	// ShowContainerSize appends "(size=N)" to every container kind's type tag.
	ShowContainerSize TestTextFlag = 1 << iota
	// ShowPosition appends the line:column of each value's location in square brackets.
	ShowPosition
	// ShowSourceIdentifier appends a single-letter source tag, with a legend line listing each source's name
	// after the tree.
	ShowSourceIdentifier
)

// TestTextOptions controls the output of ToTestText.
type TestTextOptions struct {
	Flags TestTextFlag
}

func (o TestTextOptions) has(f TestTextFlag) bool { return o.Flags&f != 0 }

// ToTestText renders d as a deterministic, diff-friendly dump: one line per non-document value, each showing its
// full name path, type tag, and formatted payload (spec FULL-ADD "TestFormat / test-text rendering"). It is meant
// for golden-file tests, not for round-tripping back into a document.
func (d *Document) ToTestText(opts TestTextOptions) string {
	var b strings.Builder
	sources := map[string]rune{}
	nextTag := 'A'
	for _, entry := range d.ToFlatValueMap() {
		b.WriteString(entry.Path.ToText())
		b.WriteString(" = ")
		b.WriteString(entry.Value.testTextTag(opts))
		if opts.has(ShowPosition) && !entry.Value.location.Undefined() {
			b.WriteString("[")
			b.WriteString(entry.Value.location.Position.String())
			b.WriteString("]")
		}
		if opts.has(ShowSourceIdentifier) && !entry.Value.location.Undefined() {
			key := entry.Value.location.Source.String()
			tag, ok := sources[key]
			if !ok {
				tag = nextTag
				sources[key] = tag
				nextTag++
			}
			b.WriteString("{")
			b.WriteRune(tag)
			b.WriteString("}")
		}
		b.WriteString("\n")
	}
	if opts.has(ShowSourceIdentifier) && len(sources) > 0 {
		b.WriteString("\n")
		tagged := make([]string, 0, len(sources))
		for key, tag := range sources {
			tagged = append(tagged, string(tag)+": "+key)
		}
		sort.Strings(tagged)
		for _, line := range tagged {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// testTextTag renders "Kind(payload)", with an optional "(size=N)" suffix for containers.
func (v *Value) testTextTag(opts TestTextOptions) string {
	tag := v.kind.String()
	if v.kind.IsContainer() && opts.has(ShowContainerSize) {
		tag += "(size=" + strconv.Itoa(v.Size()) + ")"
		return tag
	}
	if v.kind.IsScalar() {
		tag += "(" + v.String() + ")"
	}
	return tag
}

