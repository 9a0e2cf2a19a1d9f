package document

// Kind tags the single Value node type with its concrete type, replacing the inheritance hierarchy a more
// object-oriented design would use (spec §3.3, §9).
type Kind int

const (
	// KindUndefined is the zero value returned by best-effort lookups/accessors that found nothing.
	KindUndefined Kind = iota
	KindInteger
	KindBoolean
	KindFloat
	KindText
	KindDate
	KindTime
	KindDateTime
	KindBytes
	KindTimeDelta
	KindRegEx
	// KindValueList holds an ordered, immutable-once-built list of scalar values.
	KindValueList
	// KindSectionList holds an ordered list of SectionWithNames siblings sharing one name.
	KindSectionList
	// KindIntermediateSection is a transient placeholder created while a multi-element section name path is
	// being walked; the builder promotes it to SectionWithNames or SectionWithTexts once it receives content.
	KindIntermediateSection
	// KindSectionWithNames is a regular named section.
	KindSectionWithNames
	// KindSectionWithTexts is a section whose children are keyed by arbitrary text names rather than regular
	// names (spec §3.3, the "text section" form).
	KindSectionWithTexts
	// KindDocument is the unique root container.
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "Undefined"
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	case KindFloat:
		return "Float"
	case KindText:
		return "Text"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindDateTime:
		return "DateTime"
	case KindBytes:
		return "Bytes"
	case KindTimeDelta:
		return "TimeDelta"
	case KindRegEx:
		return "RegEx"
	case KindValueList:
		return "ValueList"
	case KindSectionList:
		return "SectionList"
	case KindIntermediateSection:
		return "IntermediateSection"
	case KindSectionWithNames:
		return "SectionWithNames"
	case KindSectionWithTexts:
		return "SectionWithTexts"
	case KindDocument:
		return "Document"
	default:
		return "Unknown"
	}
}

// IsContainer reports whether values of this kind hold children instead of a scalar payload.
func (k Kind) IsContainer() bool {
	switch k {
	case KindValueList, KindSectionList, KindIntermediateSection, KindSectionWithNames, KindSectionWithTexts, KindDocument:
		return true
	default:
		return false
	}
}

// IsScalar reports whether values of this kind hold a single typed payload.
func (k Kind) IsScalar() bool {
	return !k.IsContainer() && k != KindUndefined
}
