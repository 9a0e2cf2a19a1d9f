// Package builder implements component H: it turns the flat assignment.Assignment sequence produced by component
// F into the document.Value tree (spec §4.6).
package builder

import (
	"github.com/erbsland-dev/elcl-go/document"
	"github.com/erbsland-dev/elcl-go/internal/assignment"
	"github.com/erbsland-dev/elcl-go/types"
)

// Builder holds the document under construction plus the two pieces of state the spec calls out: the current
// section and the last section name path.
type Builder struct {
	doc             *document.Document
	currentSection  *document.Value
	lastSectionPath types.NamePath
}

// New creates a Builder around a fresh, empty Document.
func New() *Builder {
	doc := document.New()
	return &Builder{doc: doc, currentSection: doc.Root()}
}

// Document returns the document built so far.
func (b *Builder) Document() *document.Document { return b.doc }

// Reset discards the current document and starts a fresh one, mirroring the driver's getDocumentAndReset call.
// Every IntermediateSection left in the returned document is promoted to a SectionWithNames first.
func (b *Builder) Reset() *document.Document {
	out := b.doc
	var promote func(v *document.Value)
	promote = func(v *document.Value) {
		for _, child := range v.Children() {
			if child.Kind() == document.KindIntermediateSection {
				child.PromoteTo(document.KindSectionWithNames, child.Location())
			}
			promote(child)
		}
	}
	promote(out.Root())
	b.doc = document.New()
	b.currentSection = b.doc.Root()
	b.lastSectionPath = types.NamePath{}
	return out
}

func nameConflict(loc types.Location, path types.NamePath, what string) error {
	return types.NewError(types.KindNameConflict, "conflicting "+what+" name").WithLocation(loc).WithNamePath(path)
}

func syntaxErr(loc types.Location, path types.NamePath, msg string) error {
	return types.NewError(types.KindSyntax, msg).WithLocation(loc).WithNamePath(path)
}

// resolveParentCreating walks path's prefix from the root, creating IntermediateSection nodes for missing
// elements. A SectionList encountered along the way is descended into its last element (spec §4.6 step 1).
func (b *Builder) resolveParentCreating(path types.NamePath, loc types.Location) (*document.Value, error) {
	cur := b.doc.Root()
	elems := path.Elements()
	for _, n := range elems[:len(elems)-1] {
		var err error
		cur, err = descendSectionList(cur, loc, path)
		if err != nil {
			return nil, err
		}
		child, ok := cur.ChildByName(n)
		if !ok {
			next := document.NewIntermediateSection(n, loc)
			cur.AppendChild(next)
			cur = next
			continue
		}
		switch child.Kind() {
		case document.KindIntermediateSection, document.KindSectionWithNames, document.KindSectionWithTexts, document.KindSectionList:
			cur = child
		default:
			return nil, nameConflict(loc, path, "section")
		}
	}
	return descendSectionList(cur, loc, path)
}

// resolveParentExisting is the non-creating counterpart used by addValue: a missing prefix element is a Syntax
// error, not something the builder should conjure up.
func (b *Builder) resolveParentExisting(path types.NamePath, loc types.Location) (*document.Value, error) {
	cur := b.doc.Root()
	elems := path.Elements()
	for _, n := range elems[:len(elems)-1] {
		var err error
		cur, err = descendSectionList(cur, loc, path)
		if err != nil {
			return nil, err
		}
		child, ok := cur.ChildByName(n)
		if !ok {
			return nil, syntaxErr(loc, path, "value assigned under a section that does not exist")
		}
		cur = child
	}
	return descendSectionList(cur, loc, path)
}

func descendSectionList(cur *document.Value, loc types.Location, path types.NamePath) (*document.Value, error) {
	if cur.Kind() != document.KindSectionList {
		return cur, nil
	}
	last, ok := cur.LastChild()
	if !ok {
		return nil, nameConflict(loc, path, "section")
	}
	return last, nil
}

// AddSectionMap implements `[a.b]` section headers (spec §4.6).
func (b *Builder) AddSectionMap(path types.NamePath, loc types.Location) error {
	parent, err := b.resolveParentCreating(path, loc)
	if err != nil {
		return err
	}
	last, _ := path.Last()
	existing, ok := parent.ChildByName(last)
	var target *document.Value
	switch {
	case !ok:
		target = document.NewSectionWithNames(last, loc)
		parent.AppendChild(target)
	case existing.Kind() == document.KindIntermediateSection:
		existing.PromoteTo(document.KindSectionWithNames, loc)
		target = existing
	default:
		return nameConflict(loc, path, "section")
	}
	b.currentSection = target
	b.lastSectionPath = path
	return nil
}

// AddSectionList implements `*[a.b]` section-list headers (spec §4.6).
func (b *Builder) AddSectionList(path types.NamePath, loc types.Location) error {
	last, _ := path.Last()
	if last.Kind() == types.NameText {
		return syntaxErr(loc, path, "a section-list name cannot be a text name")
	}
	parent, err := b.resolveParentCreating(path, loc)
	if err != nil {
		return err
	}
	existing, ok := parent.ChildByName(last)
	var list *document.Value
	switch {
	case !ok:
		list = document.NewSectionList(last, loc)
		parent.AppendChild(list)
	case existing.Kind() == document.KindSectionList:
		list = existing
	default:
		return nameConflict(loc, path, "section")
	}
	entry := document.NewSectionWithNames(types.NewIndexName(list.Size()), loc)
	list.AppendChild(entry)
	b.currentSection = entry
	b.lastSectionPath = path
	return nil
}

// AddValue implements `name: expr` value assignments, including the container-kind promotion/mixing rules of
// spec §4.6.
func (b *Builder) AddValue(path types.NamePath, items []assignment.Item, loc types.Location) error {
	var target *document.Value
	if path.Len() == 1 {
		target = b.currentSection
	} else {
		parent, err := b.resolveParentExisting(path, loc)
		if err != nil {
			return err
		}
		target = parent
	}
	last, _ := path.Last()

	if target.HasChildName(last) {
		return nameConflict(loc, path, "value")
	}

	switch target.Kind() {
	case document.KindIntermediateSection:
		if last.Kind() == types.NameText {
			if target.Size() > 0 {
				return nameConflict(loc, path, "value")
			}
			target.PromoteTo(document.KindSectionWithTexts, loc)
		} else {
			target.PromoteTo(document.KindSectionWithNames, loc)
		}
	case document.KindSectionWithNames:
		if target.Size() == 0 && last.Kind() == types.NameText {
			target.PromoteTo(document.KindSectionWithTexts, loc)
		} else if last.Kind() == types.NameText {
			return nameConflict(loc, path, "value")
		}
	case document.KindSectionWithTexts:
		if last.Kind() != types.NameText {
			return nameConflict(loc, path, "value")
		}
	}

	node, err := valueNode(last, loc, items)
	if err != nil {
		return err
	}
	target.AppendChild(node)
	return nil
}

// valueNode turns one or more assignment.Item values into the document node they describe: a single scalar leaf
// for a one-element list, or a ValueList container otherwise.
func valueNode(name types.Name, loc types.Location, items []assignment.Item) (*document.Value, error) {
	if len(items) == 1 {
		return scalarLeaf(name, items[0])
	}
	list := document.NewValueList(name, loc)
	for i, it := range items {
		leaf, err := scalarLeaf(types.NewIndexName(i), it)
		if err != nil {
			return nil, err
		}
		list.AppendChild(leaf)
	}
	return list, nil
}

func scalarLeaf(name types.Name, it assignment.Item) (*document.Value, error) {
	switch it.Kind {
	case assignment.ScalarInteger:
		return document.NewInteger(name, it.Location, it.Integer), nil
	case assignment.ScalarBoolean:
		return document.NewBoolean(name, it.Location, it.Boolean), nil
	case assignment.ScalarFloat:
		return document.NewFloat(name, it.Location, it.Float), nil
	case assignment.ScalarText:
		return document.NewText(name, it.Location, it.Text), nil
	case assignment.ScalarDate:
		return document.NewDateValue(name, it.Location, it.Date), nil
	case assignment.ScalarTime:
		return document.NewTimeValue(name, it.Location, it.Time), nil
	case assignment.ScalarDateTime:
		return document.NewDateTimeValue(name, it.Location, it.DateTime), nil
	case assignment.ScalarBytes:
		return document.NewBytesValue(name, it.Location, it.Bytes), nil
	case assignment.ScalarTimeDelta:
		return document.NewTimeDeltaValue(name, it.Location, it.TimeDelta), nil
	case assignment.ScalarRegEx:
		return document.NewRegExValue(name, it.Location, it.RegEx), nil
	default:
		return nil, types.NewError(types.KindInternal, "value item with no scalar kind").WithLocation(it.Location)
	}
}
