package document

import (
	"fmt"
	"strconv"

	"github.com/erbsland-dev/elcl-go/types"
)

// PathLike is the set of argument types the container navigation API accepts in place of a types.NamePath: a
// plain string parsed with the name-path lexer (component I), a single types.Name, or a ready-made types.NamePath.
// This mirrors the original implementation's StringConvertible constraint (see SPEC_FULL.md). It is a marker
// interface with no methods; toNamePath performs the actual conversion via a type switch, since Go cannot attach
// methods to the builtin string type.
type PathLike interface{}

// toNamePath converts a PathLike argument into a types.NamePath, or returns an error if path is not one of the
// supported concrete types or is a string that fails to parse.
func toNamePath(path PathLike) (types.NamePath, error) {
	switch p := path.(type) {
	case string:
		return types.ParseNamePath(p)
	case types.Name:
		return types.NewNamePath(p), nil
	case types.NamePath:
		return p, nil
	default:
		return types.NamePath{}, fmt.Errorf("unsupported path argument of type %T", path)
	}
}

// resolveOne resolves a single Name against a container value v, honoring Index/TextIndex positional lookup.
func resolveOne(v *Value, n types.Name) (*Value, bool) {
	if v.children == nil {
		return nil, false
	}
	switch n.Kind() {
	case types.NameIndex:
		return v.children.atIndex(n.Index())
	case types.NameTextIndex:
		if v.kind != KindSectionWithTexts {
			return nil, false
		}
		return v.children.atIndex(n.Index())
	default:
		return v.children.byKey(n)
	}
}

// resolve walks path from v, returning the final node or ok=false if any step is missing.
func resolve(v *Value, path types.NamePath) (*Value, bool) {
	cur := v
	for i := 0; i < path.Len(); i++ {
		next, ok := resolveOne(cur, path.At(i))
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// HasValue reports whether path resolves to a child of v.
func (v *Value) HasValue(path PathLike) bool {
	np, err := toNamePath(path)
	if err != nil {
		return false
	}
	_, ok := resolve(v, np)
	return ok
}

// Lookup resolves path against v, returning the child and true, or (nil, false) if nothing is found or the path
// text itself is malformed. This is the best-effort half of the two-track lookup API (spec §7).
func (v *Value) Lookup(path PathLike) (*Value, bool) {
	np, err := toNamePath(path)
	if err != nil {
		return nil, false
	}
	return resolve(v, np)
}

// LookupOrThrow resolves path against v, returning a KindSyntax error for a malformed path text or a
// KindValueNotFound error (carrying the path) when the path is well-formed but nothing matches.
func (v *Value) LookupOrThrow(path PathLike) (*Value, error) {
	np, err := toNamePath(path)
	if err != nil {
		return nil, types.WrapError(types.KindSyntax, err, "malformed name path")
	}
	child, ok := resolve(v, np)
	if !ok {
		msg := "no value at path " + strconv.Quote(np.ToText())
		return nil, types.NewError(types.KindValueNotFound, msg).WithNamePath(np)
	}
	return child, nil
}

// childByRegular fetches a direct child of v by an already-normalized regular name.
func (v *Value) childByRegular(text string) (*Value, bool) {
	n, err := types.NewRegularName(text)
	if err != nil {
		return nil, false
	}
	return resolveOne(v, n)
}
