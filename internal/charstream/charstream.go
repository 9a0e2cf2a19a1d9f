// Package charstream implements component D: a lazy, position-tracking UTF-8 character stream over a
// source.Source, with an optional rolling document hash for the signature channel.
package charstream

import (
	"io"
	"unicode/utf8"

	"github.com/erbsland-dev/elcl-go/internal/hash"
	"github.com/erbsland-dev/elcl-go/source"
	"github.com/erbsland-dev/elcl-go/types"
)

// MaxLineLength is the hard per-line byte cap (spec §6.6), not counting the line terminator.
const MaxLineLength = 4000

const bomByte0, bomByte1, bomByte2 = 0xEF, 0xBB, 0xBF

// DecodedChar is one decoded code point plus its position and byte offset within the current line buffer.
type DecodedChar struct {
	Rune     rune
	Position types.Position
	LineByte int
}

// EndOfData is the sentinel rune Next/Peek return forever once the stream is exhausted.
const EndOfData rune = -1

// Stream is component D. Create it with New and drive it with Next/Peek until it reports EndOfData.
type Stream struct {
	src      source.Source
	sourceID types.SourceIdentifier

	line    []byte // current line's raw bytes, including its terminator
	lineNo  int
	byteOff int // read cursor into line
	col     int
	capture int // capture start offset into line

	done    bool
	pending *DecodedChar

	digest          *hash.Digest
	hashing         bool
	onFirstLine     bool
	excludeFromHash bool
}

// New starts a Stream over src, which must already be open. If algo is non-empty, a rolling digest accumulates
// every raw line except a first-line `@signature`/`@SIGNATURE` declaration (spec §4.2).
func New(src source.Source, algo hash.Algorithm) (*Stream, error) {
	s := &Stream{src: src, sourceID: src.Identifier(), lineNo: 1, col: 1, onFirstLine: true}
	if algo != "" {
		d, ok := hash.NewDigest(algo)
		if !ok {
			return nil, types.NewError(types.KindInternal, "unknown hash algorithm "+string(algo))
		}
		s.digest = d
		s.hashing = true
	}
	if err := s.loadLine(); err != nil {
		return nil, err
	}
	return s, nil
}

// Digest returns the finalized digest text, or ("", false) if hashing wasn't enabled or isn't finished yet.
func (s *Stream) Digest() (string, bool) {
	if !s.hashing || !s.done {
		return "", false
	}
	return s.digest.Finalize(), true
}

func (s *Stream) errAt(kind types.ErrorKind, msg string) error {
	return types.NewError(kind, msg).WithLocation(s.location())
}

func (s *Stream) location() types.Location {
	return types.Location{Source: s.sourceID, Position: types.NewPosition(s.lineNo, s.col)}
}

// loadLine pulls the next raw line from src, finalizing hashing/done state at end-of-data, applying BOM
// stripping and `@signature` detection on the first line, and feeding the previous line into the digest.
func (s *Stream) loadLine() error {
	if s.hashing && s.line != nil && !s.excludeFromHash {
		s.digest.Write(s.line)
	}
	raw, err := s.src.ReadLine()
	if err == io.EOF {
		s.line = nil
		s.done = true
		if s.hashing {
			s.digest.Finalize()
		}
		return nil
	}
	if err != nil {
		return types.WrapError(types.KindIO, err, "reading source line")
	}
	body := raw
	if body[len(body)-1] == '\n' {
		body = body[:len(body)-1]
	}
	if len(body) > 0 && body[len(body)-1] == '\r' {
		body = body[:len(body)-1]
	}
	if len(body) > MaxLineLength {
		return s.errAt(types.KindEncoding, "line exceeds the maximum length of 4000 bytes")
	}
	if s.onFirstLine {
		raw = stripBOM(raw)
		s.excludeFromHash = hasSignaturePrefix(raw)
	} else {
		s.excludeFromHash = false
		s.lineNo++
	}
	s.onFirstLine = false
	s.line = raw
	s.byteOff = 0
	s.capture = 0
	s.col = 1
	return nil
}

func stripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == bomByte0 && b[1] == bomByte1 && b[2] == bomByte2 {
		return b[3:]
	}
	return b
}

func hasSignaturePrefix(line []byte) bool {
	text := string(stripBOM(line))
	return hasPrefixFold(text, "@signature")
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// Next decodes and consumes the next code point, advancing position. It returns EndOfData forever once the
// stream is exhausted.
func (s *Stream) Next() (DecodedChar, error) {
	dc, err := s.Peek()
	if err != nil {
		return DecodedChar{}, err
	}
	s.pending = nil
	if dc.Rune == EndOfData {
		return dc, nil
	}
	width := utf8.RuneLen(dc.Rune)
	if dc.Rune == utf8.RuneError {
		width = 1
	}
	s.byteOff += width
	if dc.Rune == '\n' {
		s.col = 1
	} else {
		s.col++
	}
	if s.byteOff >= len(s.line) {
		if err := s.loadLine(); err != nil {
			return DecodedChar{}, err
		}
	}
	return dc, nil
}

// Peek returns the next code point without consuming it.
func (s *Stream) Peek() (DecodedChar, error) {
	if s.pending != nil {
		return *s.pending, nil
	}
	if s.done || s.line == nil {
		dc := DecodedChar{Rune: EndOfData, Position: s.location()}
		s.pending = &dc
		return dc, nil
	}
	r, width := utf8.DecodeRune(s.line[s.byteOff:])
	if r == utf8.RuneError && width <= 1 {
		return DecodedChar{}, s.errAt(types.KindEncoding, "invalid UTF-8 byte sequence")
	}
	if types.IsForbiddenControlRune(r) {
		return DecodedChar{}, s.errAt(types.KindCharacter, "forbidden control character")
	}
	if r == 0xFEFF {
		return DecodedChar{}, s.errAt(types.KindEncoding, "byte order mark is only allowed at the start of the document")
	}
	dc := DecodedChar{Rune: r, Position: types.NewPosition(s.lineNo, s.col), LineByte: s.byteOff}
	s.pending = &dc
	return dc, nil
}

// CaptureTo returns the raw bytes of the current line from the last capture point (the end of the previous
// CaptureTo call, or the start of the line) up to endByteIndex, then advances the capture point there.
func (s *Stream) CaptureTo(endByteIndex int) string {
	if endByteIndex > len(s.line) {
		endByteIndex = len(s.line)
	}
	if endByteIndex < s.capture {
		return ""
	}
	out := string(s.line[s.capture:endByteIndex])
	s.capture = endByteIndex
	return out
}

// CaptureToEndOfLine extends the capture through the rest of the current line.
func (s *Stream) CaptureToEndOfLine() string {
	return s.CaptureTo(len(s.line))
}

// Position returns the stream's current (line, column).
func (s *Stream) Position() types.Position { return types.NewPosition(s.lineNo, s.col) }

// SourceIdentifier returns the identifier of the underlying source.
func (s *Stream) SourceIdentifier() types.SourceIdentifier { return s.sourceID }
