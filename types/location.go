package types

// SourceIdentifier identifies a source document by a human name and a path, compared by exact byte-match.
type SourceIdentifier struct {
	Name string
	Path string
}

// String renders the identifier for diagnostics.
func (s SourceIdentifier) String() string {
	if s.Path == "" {
		return s.Name
	}
	return s.Name + ":" + s.Path
}

// Equal reports whether two identifiers refer to the same source by exact byte-match of name and path.
func (s SourceIdentifier) Equal(other SourceIdentifier) bool {
	return s.Name == other.Name && s.Path == other.Path
}

// Location pairs a source identifier with a position within that source.
type Location struct {
	Source   SourceIdentifier
	Position Position
}

// Undefined reports whether this location carries no usable position.
func (l Location) Undefined() bool {
	return l.Position.Undefined()
}

// String renders the location as "source:line:column".
func (l Location) String() string {
	if l.Undefined() {
		return l.Source.String()
	}
	return l.Source.String() + ":" + l.Position.String()
}
