package assignment

import (
	"strings"

	"github.com/erbsland-dev/elcl-go/internal/lexer"
	"github.com/erbsland-dev/elcl-go/types"
)

// SupportedFeatures is the fixed allow-list for @features (spec §6.4).
var SupportedFeatures = map[string]bool{
	"core": true, "minimum": true, "standard": true, "advanced": true, "all": true,
	"float": true, "byte-count": true, "multi-line": true, "section-list": true,
	"value-list": true, "text-names": true, "date-time": true, "code": true,
	"byte-data": true, "include": true, "regex": true, "time-delta": true,
	"validation": true, "signature": true,
}

// Stream wraps a lexer.Lexer and produces the flat Assignment sequence of component F. Callers read it by
// repeatedly calling Next until it returns an Assignment with Kind == EndOfDocument.
type Stream struct {
	lex      *lexer.Lexer
	sourceID types.SourceIdentifier

	cur lexer.Token
	err error

	lastAbsolute    types.NamePath
	haveLastAbsolute bool
	current          types.NamePath

	seenSection  bool
	seenVersion  bool
	seenFeatures bool

	done bool
}

// New wraps lex, reading source-location metadata from sourceID for the Assignments it produces.
func New(lex *lexer.Lexer, sourceID types.SourceIdentifier) *Stream {
	s := &Stream{lex: lex, sourceID: sourceID}
	s.advance()
	return s
}

func (s *Stream) advance() {
	if s.err != nil {
		return
	}
	tok, err := s.lex.Next()
	if err != nil {
		s.err = err
		return
	}
	s.cur = tok
}

func (s *Stream) takeErr() error {
	err := s.err
	s.err = nil
	return err
}

func (s *Stream) loc(pos types.Position) types.Location {
	return types.Location{Source: s.sourceID, Position: pos}
}

func (s *Stream) errAt(pos types.Position, kind types.ErrorKind, msg string) error {
	return types.NewError(kind, msg).WithLocation(s.loc(pos))
}

func (s *Stream) wrapErr(pos types.Position, cause error) error {
	if e, ok := types.AsError(cause); ok {
		return e.WithLocation(s.loc(pos))
	}
	return s.errAt(pos, types.KindSyntax, cause.Error())
}

// Next returns the next Assignment in the document.
func (s *Stream) Next() (Assignment, error) {
	if s.done {
		return Assignment{Kind: EndOfDocument}, nil
	}
	for {
		if s.err != nil {
			return Assignment{}, s.takeErr()
		}
		switch s.cur.Kind {
		case lexer.EndOfData:
			s.done = true
			return Assignment{Kind: EndOfDocument}, nil
		case lexer.LineBreak, lexer.Indentation, lexer.Comment:
			s.advance()
			continue
		case lexer.SectionMapOpen:
			return s.readSectionHeader(lexer.SectionMapClose, false)
		case lexer.SectionListOpen:
			// The lexer emits SectionMapClose for every `]`, including the one closing a `*[...]` header.
			return s.readSectionHeader(lexer.SectionMapClose, true)
		case lexer.MetaName:
			return s.readMeta()
		case lexer.RegularName, lexer.Text:
			return s.readValue()
		default:
			return Assignment{}, s.errAt(s.cur.Begin, types.KindSyntax, "unexpected "+s.cur.Kind.String())
		}
	}
}

func (s *Stream) nameFromToken(tok lexer.Token) (types.Name, error) {
	switch tok.Kind {
	case lexer.RegularName:
		n, err := types.NewRegularName(tok.Content.(string))
		if err != nil {
			return types.Name{}, s.wrapErr(tok.Begin, err)
		}
		return n, nil
	case lexer.Text:
		return types.NewTextName(tok.Content.(string)), nil
	default:
		return types.Name{}, s.errAt(tok.Begin, types.KindSyntax, "expected a name, found "+tok.Kind.String())
	}
}

// readSectionHeader parses a `[path]` or `*[path]` header, resolving a leading `.path` relative to the last
// absolute section path (spec §4.4, §4.5).
func (s *Stream) readSectionHeader(closeKind lexer.TokenKind, isList bool) (Assignment, error) {
	begin := s.cur.Begin
	s.advance() // consume Open
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}
	relative := false
	if s.cur.Kind == lexer.NamePathSeparator {
		relative = true
		s.advance()
	}
	elems, err := s.readPathElements(closeKind)
	if err != nil {
		return Assignment{}, err
	}
	if s.cur.Kind != closeKind {
		return Assignment{}, s.errAt(s.cur.Begin, types.KindSyntax, "expected closing bracket in section header")
	}
	s.advance() // consume Close
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}

	tail := types.NewNamePath(elems...)
	var path types.NamePath
	if relative {
		if !s.haveLastAbsolute {
			return Assignment{}, s.errAt(begin, types.KindSyntax, "relative section path with no preceding absolute section")
		}
		path = s.lastAbsolute.Concat(tail)
	} else {
		path = tail
	}
	if path.Len() == 0 {
		return Assignment{}, s.errAt(begin, types.KindSyntax, "empty section path")
	}
	if path.Len() > types.MaxNamePathLength {
		return Assignment{}, s.errAt(begin, types.KindLimitExceeded, "section name path exceeds the maximum nesting depth")
	}
	if !relative {
		s.lastAbsolute = path
		s.haveLastAbsolute = true
	}
	s.current = path
	s.seenSection = true

	kind := SectionMap
	if isList {
		kind = SectionList
	}
	return Assignment{Kind: kind, Path: path, Location: s.loc(begin)}, nil
}

func (s *Stream) readPathElements(closeKind lexer.TokenKind) ([]types.Name, error) {
	var elems []types.Name
	for {
		if s.err != nil {
			return nil, s.takeErr()
		}
		n, err := s.nameFromToken(s.cur)
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
		if s.cur.Kind == closeKind {
			return elems, nil
		}
		if s.cur.Kind != lexer.NamePathSeparator {
			return nil, s.errAt(s.cur.Begin, types.KindSyntax, "expected '.' or a closing bracket in a name path")
		}
		s.advance()
	}
}

// readMeta parses one `@name: value` meta-assignment (spec §4.4, §6.4).
func (s *Stream) readMeta() (Assignment, error) {
	tok := s.cur
	name := tok.Content.(string)
	lower := strings.ToLower(name)

	metaName, err := types.NewMetaName(name)
	if err != nil {
		return Assignment{}, s.wrapErr(tok.Begin, err)
	}

	s.advance()
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}
	if s.cur.Kind != lexer.NameValueSeparator {
		return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "expected ':' after a meta name")
	}
	s.advance()
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}

	var text string
	switch s.cur.Kind {
	case lexer.Text:
		text = s.cur.Content.(string)
	default:
		text = strings.TrimSpace(s.cur.Raw)
	}
	s.advance()
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}

	switch lower {
	case "@version":
		if s.seenSection {
			return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "@version must appear before the first section")
		}
		if s.seenVersion {
			return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "@version must not appear more than once")
		}
		if text != "1.0" {
			return Assignment{}, s.errAt(tok.Begin, types.KindUnsupported, "unsupported document version "+text)
		}
		s.seenVersion = true
	case "@features":
		if s.seenSection {
			return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "@features must appear before the first section")
		}
		if s.seenFeatures {
			return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "@features must not appear more than once")
		}
		for _, f := range strings.Fields(text) {
			if !SupportedFeatures[strings.ToLower(f)] {
				return Assignment{}, s.errAt(tok.Begin, types.KindUnsupported, "unsupported feature "+f)
			}
		}
		s.seenFeatures = true
	case "@signature":
		if tok.Begin.Line != 1 {
			return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "@signature is only allowed on the first line of a document")
		}
	case "@include":
		s.lastAbsolute = types.NamePath{}
		s.haveLastAbsolute = false
		s.current = types.NamePath{}
		s.seenSection = false
	}

	return Assignment{Kind: MetaValue, Path: types.NewNamePath(metaName), Location: s.loc(tok.Begin), Text: text}, nil
}

// readValue parses one `name: value` (or value-list) assignment relative to the current section (spec §4.4, §4.6).
func (s *Stream) readValue() (Assignment, error) {
	tok := s.cur
	name, err := s.nameFromToken(tok)
	if err != nil {
		return Assignment{}, err
	}
	s.advance()
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}
	if s.cur.Kind != lexer.NameValueSeparator {
		return Assignment{}, s.errAt(tok.Begin, types.KindSyntax, "expected ':' after a name")
	}
	s.advance()
	if s.err != nil {
		return Assignment{}, s.takeErr()
	}

	items, err := s.readValueExpr()
	if err != nil {
		return Assignment{}, err
	}
	path := s.current.Append(name)
	return Assignment{Kind: Value, Path: path, Location: s.loc(tok.Begin), Items: items}, nil
}

func (s *Stream) itemFromToken(tok lexer.Token) (Item, error) {
	loc := s.loc(tok.Begin)
	switch tok.Kind {
	case lexer.Integer:
		return Item{Kind: ScalarInteger, Location: loc, Integer: tok.Content.(int64)}, nil
	case lexer.Float:
		return Item{Kind: ScalarFloat, Location: loc, Float: tok.Content.(float64)}, nil
	case lexer.Boolean:
		return Item{Kind: ScalarBoolean, Location: loc, Boolean: tok.Content.(bool)}, nil
	case lexer.Text, lexer.MultiLineTextClose:
		return Item{Kind: ScalarText, Location: loc, Text: tok.Content.(string)}, nil
	case lexer.Code, lexer.MultiLineCodeClose:
		return Item{Kind: ScalarText, Location: loc, Text: tok.Content.(string)}, nil
	case lexer.Date:
		return Item{Kind: ScalarDate, Location: loc, Date: tok.Content.(types.Date)}, nil
	case lexer.TimeTok:
		return Item{Kind: ScalarTime, Location: loc, Time: tok.Content.(types.Time)}, nil
	case lexer.DateTimeTok:
		return Item{Kind: ScalarDateTime, Location: loc, DateTime: tok.Content.(types.DateTime)}, nil
	case lexer.TimeDelta:
		return Item{Kind: ScalarTimeDelta, Location: loc, TimeDelta: tok.Content.(types.TimeDelta)}, nil
	case lexer.RegEx:
		return Item{Kind: ScalarRegEx, Location: loc, RegEx: tok.Content.(types.RegEx)}, nil
	case lexer.MultiLineRegexClose:
		return Item{Kind: ScalarRegEx, Location: loc, RegEx: types.NewRegEx(tok.Content.(string), true)}, nil
	case lexer.Bytes, lexer.MultiLineBytesClose:
		b, err := types.FromHex(tok.Content.(string))
		if err != nil {
			return Item{}, s.errAt(tok.Begin, types.KindSyntax, err.Error())
		}
		return Item{Kind: ScalarBytes, Location: loc, Bytes: b}, nil
	default:
		return Item{}, s.errAt(tok.Begin, types.KindSyntax, "expected a value, found "+tok.Kind.String())
	}
}

// readValueExpr reads everything after the ':' of a value assignment: a same-line scalar, a same-line
// comma-separated list, a single value indented on the following line, or a multi-line bullet list (spec §4.6).
func (s *Stream) readValueExpr() ([]Item, error) {
	if s.cur.Kind == lexer.LineBreak {
		return s.readIndentedValue()
	}
	first, err := s.itemFromToken(s.cur)
	if err != nil {
		return nil, err
	}
	s.advance()
	if s.err != nil {
		return nil, s.takeErr()
	}
	items := []Item{first}
	for s.cur.Kind == lexer.ValueListSeparator {
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
		for s.cur.Kind == lexer.LineBreak || s.cur.Kind == lexer.Indentation {
			s.advance()
			if s.err != nil {
				return nil, s.takeErr()
			}
		}
		it, err := s.itemFromToken(s.cur)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
	}
	return items, nil
}

func (s *Stream) readIndentedValue() ([]Item, error) {
	for s.cur.Kind == lexer.LineBreak {
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
	}
	if s.cur.Kind == lexer.Indentation {
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
	}
	if s.cur.Kind == lexer.ListBullet {
		return s.readBulletList()
	}
	it, err := s.itemFromToken(s.cur)
	if err != nil {
		return nil, err
	}
	s.advance()
	if s.err != nil {
		return nil, s.takeErr()
	}
	return []Item{it}, nil
}

// readBulletList reads a multi-line `*`-bulleted value list, one value per line, terminated by any line that does
// not itself begin with a bullet (spec §4.6, the "Text Value List" form).
func (s *Stream) readBulletList() ([]Item, error) {
	var items []Item
	for s.cur.Kind == lexer.ListBullet {
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
		it, err := s.itemFromToken(s.cur)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		s.advance()
		if s.err != nil {
			return nil, s.takeErr()
		}
		if s.cur.Kind == lexer.LineBreak {
			s.advance()
			if s.err != nil {
				return nil, s.takeErr()
			}
		}
		if s.cur.Kind == lexer.Indentation {
			s.advance()
			if s.err != nil {
				return nil, s.takeErr()
			}
		}
	}
	return items, nil
}
