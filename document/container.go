package document

import (
	"strconv"

	"github.com/erbsland-dev/elcl-go/types"
)

// container is the backing store for every container Kind: an insertion-ordered slice plus a name index, mirroring
// how the tokenizer/parser pair in the teacher keeps both a slice and a lookup map for its node children.
type container struct {
	order  []*Value
	byName map[string]*Value
}

func newContainer() *container {
	return &container{byName: make(map[string]*Value)}
}

// nameKey canonicalizes a types.Name into a map key, disambiguating the different Name kinds so a regular name
// "x" and a text name "x" never collide.
func nameKey(n types.Name) string {
	switch n.Kind() {
	case types.NameMeta:
		return "m:" + n.Text()
	case types.NameText:
		return "t:" + n.Text()
	case types.NameIndex, types.NameTextIndex:
		return "i:" + strconv.Itoa(n.Index())
	default:
		return "r:" + n.Text()
	}
}

func (c *container) size() int { return len(c.order) }

func (c *container) at(i int) *Value { return c.order[i] }

func (c *container) byKey(n types.Name) (*Value, bool) {
	v, ok := c.byName[nameKey(n)]
	return v, ok
}

func (c *container) atIndex(i int) (*Value, bool) {
	if i < 0 || i >= len(c.order) {
		return nil, false
	}
	return c.order[i], true
}

// add appends v to the container, indexing it by name. It does not check for name conflicts; the document
// builder performs that check before calling add, since it alone knows the section-name-merging rules.
func (c *container) add(v *Value) {
	c.order = append(c.order, v)
	c.byName[nameKey(v.name)] = v
}

// hasName reports whether a child is already registered under n.
func (c *container) hasName(n types.Name) bool {
	_, ok := c.byName[nameKey(n)]
	return ok
}

// replace swaps old for in at the same position and indexes in under its name. Promoting an IntermediateSection
// does not go through replace: promoteTo changes the existing *Value in place.
func (c *container) replace(old, in *Value) {
	for i, v := range c.order {
		if v == old {
			c.order[i] = in
			break
		}
	}
	c.byName[nameKey(in.name)] = in
}
