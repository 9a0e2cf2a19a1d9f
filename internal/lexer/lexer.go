package lexer

import (
	"strconv"
	"strings"

	"github.com/erbsland-dev/elcl-go/internal/charstream"
	"github.com/erbsland-dev/elcl-go/types"
)

// MaxDecimalDigits, MaxHexDigits, MaxBinaryDigits bound literal length (spec §6.6).
const (
	MaxDecimalDigits = 19
	MaxHexDigits     = 16
	MaxBinaryDigits  = 64
)

// Lexer is component E: it turns a charstream.Stream into a Token sequence, ending with a sentinel EndOfData
// token even along error paths.
type Lexer struct {
	s          *charstream.Stream
	buf        []rune           // small rune-ahead buffer, since unit-suffix/date-shape disambiguation needs >1 lookahead
	bufPos     []types.Position // position of each buffered rune, since buffering runs the stream ahead of it
	fillErr    error            // set by fill when the underlying stream reports an error (invalid UTF-8, forbidden
	atLineHead bool             // control char, line-length overrun); surfaced the next time Next() checks it
	done       bool
}

// New wraps stream as a Lexer positioned at the start of the document.
func New(stream *charstream.Stream) *Lexer {
	return &Lexer{s: stream, atLineHead: true}
}

func (l *Lexer) err(kind types.ErrorKind, pos types.Position, msg string) error {
	return types.NewError(kind, msg).WithLocation(types.Location{Source: l.s.SourceIdentifier(), Position: pos})
}

// Next returns the next token. Once the stream is exhausted, or once a call has returned an error, it returns an
// EndOfData token indefinitely.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.next()
	if err != nil {
		l.done = true
	}
	return tok, err
}

func (l *Lexer) next() (Token, error) {
	if l.done {
		return Token{Kind: EndOfData, Begin: l.curPos(), End: l.curPos()}, nil
	}
	begin := l.curPos()
	r := l.peekRune()
	if l.fillErr != nil {
		err := l.fillErr
		l.fillErr = nil
		return Token{}, err
	}
	switch {
	case r == charstream.EndOfData:
		l.done = true
		return Token{Kind: EndOfData, Begin: begin, End: begin}, nil
	case r == '\r' || r == '\n':
		return l.lexLineBreak()
	case l.atLineHead && (r == ' ' || r == '\t'):
		return l.lexIndentation()
	case r == ' ' || r == '\t':
		l.skipSpacing()
		return l.Next()
	case r == '#':
		return l.lexComment()
	case r == '[':
		l.consume()
		l.atLineHead = false
		return Token{Kind: SectionMapOpen, Begin: begin, End: l.curPos(), Raw: "["}, nil
	case r == ']':
		l.consume()
		l.atLineHead = false
		return Token{Kind: SectionMapClose, Begin: begin, End: l.curPos(), Raw: "]"}, nil
	case r == ':':
		l.consume()
		l.atLineHead = false
		return Token{Kind: NameValueSeparator, Begin: begin, End: l.curPos(), Raw: ":"}, nil
	case r == ',':
		l.consume()
		l.atLineHead = false
		return Token{Kind: ValueListSeparator, Begin: begin, End: l.curPos(), Raw: ","}, nil
	case r == '.':
		l.consume()
		l.atLineHead = false
		return Token{Kind: NamePathSeparator, Begin: begin, End: l.curPos(), Raw: "."}, nil
	case r == '*':
		return l.lexStar()
	case r == '"':
		return l.lexQuotedOrMultiline(begin)
	case r == '`':
		return l.lexCode(begin)
	case r == '/':
		return l.lexRegex(begin)
	case r == '@':
		return l.lexMetaName(begin)
	case types.IsNameStart(r):
		return l.lexRegularNameOrValue(begin)
	case types.IsDigit(r) || r == '+' || r == '-':
		return l.lexNumberLike(begin)
	default:
		return Token{}, l.err(types.KindSyntax, begin, "unexpected character "+strconv.QuoteRune(r))
	}
}

// fill ensures at least n+1 runes are available in l.buf, pulling from the underlying stream. A stream error is
// recorded on l.fillErr (and surfaced by Next) rather than dropped, since peekAt itself cannot return an error
// without changing every call site.
func (l *Lexer) fill(n int) error {
	for len(l.buf) <= n {
		dc, err := l.s.Next()
		if err != nil {
			l.fillErr = err
			return err
		}
		l.buf = append(l.buf, dc.Rune)
		l.bufPos = append(l.bufPos, dc.Position)
		if dc.Rune == charstream.EndOfData {
			break
		}
	}
	return nil
}

// consume pops and returns the next rune, pulling from the stream if the buffer is empty.
func (l *Lexer) consume() rune {
	if len(l.buf) == 0 {
		if err := l.fill(0); err != nil {
			return charstream.EndOfData
		}
	}
	r := l.buf[0]
	l.buf = l.buf[1:]
	l.bufPos = l.bufPos[1:]
	return r
}

// peekRune returns the next rune without consuming it.
func (l *Lexer) peekRune() rune { return l.peekAt(0) }

// peekAt returns the rune n positions ahead (0 = next) without consuming anything.
func (l *Lexer) peekAt(n int) rune {
	if err := l.fill(n); err != nil {
		return charstream.EndOfData
	}
	if n >= len(l.buf) {
		return charstream.EndOfData
	}
	return l.buf[n]
}

// curPos returns the position of the rune peekRune would return: the buffered rune's recorded position when the
// lookahead buffer is non-empty (the underlying stream has already been read past it), or the stream's own current
// position otherwise.
func (l *Lexer) curPos() types.Position {
	if len(l.buf) > 0 {
		return l.bufPos[0]
	}
	return l.s.Position()
}

func (l *Lexer) skipSpacing() {
	for {
		r := l.peekRune()
		if r != ' ' && r != '\t' {
			return
		}
		l.consume()
	}
}

func (l *Lexer) lexLineBreak() (Token, error) {
	begin := l.curPos()
	r := l.consume()
	raw := string(r)
	if r == '\r' && l.peekRune() == '\n' {
		raw += string(l.consume())
	}
	l.atLineHead = true
	return Token{Kind: LineBreak, Begin: begin, End: l.curPos(), Raw: raw}, nil
}

func (l *Lexer) lexIndentation() (Token, error) {
	begin := l.curPos()
	var b strings.Builder
	for {
		r := l.peekRune()
		if r != ' ' && r != '\t' {
			break
		}
		b.WriteRune(l.consume())
	}
	l.atLineHead = false
	return Token{Kind: Indentation, Begin: begin, End: l.curPos(), Raw: b.String()}, nil
}

func (l *Lexer) lexComment() (Token, error) {
	begin := l.curPos()
	var b strings.Builder
	for {
		r := l.peekRune()
		if r == '\n' || r == '\r' || r == charstream.EndOfData {
			break
		}
		b.WriteRune(l.consume())
	}
	l.atLineHead = false
	return Token{Kind: Comment, Begin: begin, End: l.curPos(), Raw: b.String()}, nil
}

// lexStar disambiguates `*[` (SectionListOpen), a lone `*` list bullet, and `*]` / bare `*` at a list position.
func (l *Lexer) lexStar() (Token, error) {
	begin := l.curPos()
	l.consume()
	l.atLineHead = false
	if l.peekRune() == '[' {
		l.consume()
		return Token{Kind: SectionListOpen, Begin: begin, End: l.curPos(), Raw: "*["}, nil
	}
	return Token{Kind: ListBullet, Begin: begin, End: l.curPos(), Raw: "*"}, nil
}

func (l *Lexer) lexMetaName(begin types.Position) (Token, error) {
	l.consume() // '@'
	var b strings.Builder
	b.WriteByte('@')
	for types.IsNameContinuation(l.peekRune()) {
		b.WriteRune(l.consume())
	}
	raw := strings.TrimRight(b.String(), " \t")
	l.atLineHead = false
	return Token{Kind: MetaName, Begin: begin, End: l.curPos(), Raw: raw, Content: raw}, nil
}

func (l *Lexer) lexRegularNameOrValue(begin types.Position) (Token, error) {
	var b strings.Builder
	for types.IsNameContinuation(l.peekRune()) {
		b.WriteRune(l.consume())
	}
	raw := strings.TrimRight(b.String(), " \t")
	l.atLineHead = false
	switch strings.ToLower(raw) {
	case "true", "false", "yes", "no", "on", "off":
		return Token{Kind: Boolean, Begin: begin, End: l.curPos(), Raw: raw, Content: isTruthy(raw)}, nil
	case "inf", "nan", "+inf", "-inf":
		f, _ := strconv.ParseFloat(normalizeFloatWord(raw), 64)
		return Token{Kind: Float, Begin: begin, End: l.curPos(), Raw: raw, Content: f}, nil
	}
	return Token{Kind: RegularName, Begin: begin, End: l.curPos(), Raw: raw, Content: raw}, nil
}

func isTruthy(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "yes", "on":
		return true
	default:
		return false
	}
}

func normalizeFloatWord(raw string) string {
	lower := strings.ToLower(raw)
	switch lower {
	case "inf", "+inf":
		return "+Inf"
	case "-inf":
		return "-Inf"
	default:
		return "NaN"
	}
}

// lexQuotedOrMultiline lexes a `"..."` single-line text, or the opening delimiter of a `"""` multi-line text
// block. The assignment stream decides, from surrounding context, whether the token is a value or (when
// followed directly by `.`/`:`/`]`) a name.
func (l *Lexer) lexQuotedOrMultiline(begin types.Position) (Token, error) {
	l.consume() // opening '"'
	if l.peekRune() == '"' {
		l.consume()
		if l.peekRune() == '"' {
			l.consume()
			return l.lexMultiLineBlock(begin, MultiLineTextOpen, MultiLineTextContent, MultiLineTextClose, `"""`)
		}
		// empty text "" (possibly a text-index marker, left to the name-path/assignment layer)
		l.atLineHead = false
		return Token{Kind: Text, Begin: begin, End: l.curPos(), Raw: `""`, Content: ""}, nil
	}
	var raw strings.Builder
	for {
		r := l.peekRune()
		if r == '"' {
			l.consume()
			break
		}
		if r == charstream.EndOfData || r == '\n' || r == '\r' {
			return Token{}, l.err(types.KindUnexpectedEnd, l.curPos(), "unterminated text literal")
		}
		raw.WriteRune(l.consume())
		if r == '\\' {
			if esc := l.peekRune(); esc != charstream.EndOfData {
				raw.WriteRune(l.consume())
			}
		}
	}
	decoded, err := types.DecodeEscapedText(raw.String())
	if err != nil {
		return Token{}, l.err(types.KindSyntax, begin, err.Error())
	}
	l.atLineHead = false
	return Token{Kind: Text, Begin: begin, End: l.curPos(), Raw: `"` + raw.String() + `"`, Content: decoded}, nil
}

func (l *Lexer) lexCode(begin types.Position) (Token, error) {
	l.consume()
	if l.peekRune() == '`' {
		l.consume()
		if l.peekRune() == '`' {
			l.consume()
			return l.lexMultiLineBlock(begin, MultiLineCodeOpen, MultiLineCodeContent, MultiLineCodeClose, "```")
		}
		l.atLineHead = false
		return Token{Kind: Code, Begin: begin, End: l.curPos(), Raw: "``", Content: ""}, nil
	}
	var b strings.Builder
	for {
		r := l.peekRune()
		if r == '`' {
			l.consume()
			break
		}
		if r == charstream.EndOfData || r == '\n' || r == '\r' {
			return Token{}, l.err(types.KindUnexpectedEnd, l.curPos(), "unterminated code literal")
		}
		b.WriteRune(l.consume())
	}
	l.atLineHead = false
	return Token{Kind: Code, Begin: begin, End: l.curPos(), Raw: b.String(), Content: b.String()}, nil
}

func (l *Lexer) lexRegex(begin types.Position) (Token, error) {
	l.consume()
	var b strings.Builder
	for {
		r := l.peekRune()
		if r == '/' {
			l.consume()
			break
		}
		if r == charstream.EndOfData || r == '\n' || r == '\r' {
			return Token{}, l.err(types.KindUnexpectedEnd, l.curPos(), "unterminated regular expression")
		}
		if r == '\\' {
			b.WriteRune(l.consume())
			if l.peekRune() != charstream.EndOfData {
				b.WriteRune(l.consume())
			}
			continue
		}
		b.WriteRune(l.consume())
	}
	multiLine := false
	if l.peekRune() == 'm' {
		l.consume()
		multiLine = true
	}
	l.atLineHead = false
	return Token{Kind: RegEx, Begin: begin, End: l.curPos(), Raw: b.String(), Content: types.NewRegEx(b.String(), multiLine)}, nil
}

// lexMultiLineBlock assembles a whole multi-line literal (spec §4.3): it reads through the line break following
// the opening delimiter, then content lines sharing one indentation until a close marker at that same
// indentation, dropping the trailing newline of the final content line and emitting the fully assembled payload
// on the Close token's Content (simpler for the assignment stream than threading Open/Content/Close separately).
func (l *Lexer) lexMultiLineBlock(begin types.Position, _, _, closeKind TokenKind, marker string) (Token, error) {
	// consume rest of opening line (language tag for code/bytes, or trailing spacing) up to the line break
	var tag strings.Builder
	for {
		r := l.peekRune()
		if r == '\n' || r == '\r' || r == charstream.EndOfData {
			break
		}
		tag.WriteRune(l.consume())
	}
	if l.peekRune() == '\r' {
		l.consume()
	}
	if l.peekRune() == '\n' {
		l.consume()
	}
	indent := ""
	first := true
	var lines []string
	for {
		lineIndent, content, isClose, err := l.readMultiLineRow(marker)
		if err != nil {
			return Token{}, err
		}
		if isClose {
			if !first && lineIndent != indent {
				return Token{}, l.err(types.KindSyntax, l.curPos(), "the close marker of a multi-line literal must use the content indentation")
			}
			l.atLineHead = false
			return Token{
				Kind: closeKind, Begin: begin, End: l.curPos(),
				Raw: strings.Join(lines, "\n"), Content: strings.Join(lines, "\n"),
			}, nil
		}
		if content == "" {
			lines = append(lines, "")
			continue
		}
		if first {
			indent = lineIndent
			first = false
		} else if !strings.HasPrefix(lineIndent, indent) {
			return Token{}, l.err(types.KindSyntax, l.curPos(), "inconsistent indentation in a multi-line literal")
		}
		lines = append(lines, lineIndent[len(indent):]+content)
	}
}

// readMultiLineRow reads one physical line, returning its leading indentation and remaining content, or
// isClose=true if the line (after its own indentation) is exactly marker.
func (l *Lexer) readMultiLineRow(marker string) (indent string, content string, isClose bool, err error) {
	var ind, rest strings.Builder
	inIndent := true
	for {
		r := l.peekRune()
		if r == charstream.EndOfData {
			return "", "", false, l.err(types.KindUnexpectedEnd, l.curPos(), "unterminated multi-line literal")
		}
		if r == '\n' || r == '\r' {
			l.consume()
			if r == '\r' && l.peekRune() == '\n' {
				l.consume()
			}
			break
		}
		if inIndent && (r == ' ' || r == '\t') {
			ind.WriteRune(l.consume())
			continue
		}
		inIndent = false
		rest.WriteRune(l.consume())
	}
	if rest.String() == marker {
		return ind.String(), "", true, nil
	}
	return ind.String(), rest.String(), false, nil
}
