package document

import "github.com/erbsland-dev/elcl-go/types"

// Document is the unique root of a value tree. It has no parent and holds its top-level sections/values as an
// ordinary container (spec §3.3: "A Document is the unique root and has no parent").
type Document struct {
	*Value
}

// New creates an empty Document.
func New() *Document {
	return &Document{Value: newContainerValue(KindDocument, types.Name{}, types.Location{})}
}

// Root returns the underlying root Value, useful when a function is written generically over *Value.
func (d *Document) Root() *Value { return d.Value }
