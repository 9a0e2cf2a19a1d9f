// Package lexer implements component E: the token generator over a character stream.
package lexer

import "github.com/erbsland-dev/elcl-go/types"

// TokenKind classifies a lexical token (spec §4.3).
type TokenKind int

const (
	LineBreak TokenKind = iota
	Comment
	Indentation
	NameValueSeparator  // ':'
	NamePathSeparator   // '.'
	ValueListSeparator  // ','
	ListBullet          // '*' introducing a multi-line list entry
	RegularName
	TextName
	MetaName
	SectionMapOpen  // '['
	SectionMapClose // ']'
	SectionListOpen // '*['
	SectionListClose

	Integer
	Float
	Boolean
	Text
	Code
	RegEx
	Date
	DateTimeTok
	TimeTok
	TimeDelta
	Bytes

	MultiLineTextOpen
	MultiLineTextContent
	MultiLineTextClose
	MultiLineCodeOpen
	MultiLineCodeContent
	MultiLineCodeClose
	MultiLineRegexOpen
	MultiLineRegexContent
	MultiLineRegexClose
	MultiLineBytesOpen
	MultiLineBytesContent
	MultiLineBytesClose

	EndOfData
)

func (k TokenKind) String() string {
	names := map[TokenKind]string{
		LineBreak: "LineBreak", Comment: "Comment", Indentation: "Indentation",
		NameValueSeparator: "NameValueSeparator", NamePathSeparator: "NamePathSeparator",
		ValueListSeparator: "ValueListSeparator", ListBullet: "ListBullet",
		RegularName: "RegularName", TextName: "TextName", MetaName: "MetaName",
		SectionMapOpen: "SectionMapOpen", SectionMapClose: "SectionMapClose",
		SectionListOpen: "SectionListOpen", SectionListClose: "SectionListClose",
		Integer: "Integer", Float: "Float", Boolean: "Boolean", Text: "Text", Code: "Code",
		RegEx: "RegEx", Date: "Date", DateTimeTok: "DateTime", TimeTok: "Time",
		TimeDelta: "TimeDelta", Bytes: "Bytes",
		MultiLineTextOpen: "MultiLineTextOpen", MultiLineTextContent: "MultiLineTextContent",
		MultiLineTextClose: "MultiLineTextClose",
		MultiLineCodeOpen: "MultiLineCodeOpen", MultiLineCodeContent: "MultiLineCodeContent",
		MultiLineCodeClose: "MultiLineCodeClose",
		MultiLineRegexOpen: "MultiLineRegexOpen", MultiLineRegexContent: "MultiLineRegexContent",
		MultiLineRegexClose: "MultiLineRegexClose",
		MultiLineBytesOpen: "MultiLineBytesOpen", MultiLineBytesContent: "MultiLineBytesContent",
		MultiLineBytesClose: "MultiLineBytesClose",
		EndOfData: "EndOfData",
	}
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

// Token is one lexical unit (spec's LexerToken).
type Token struct {
	Kind     TokenKind
	Begin    types.Position
	End      types.Position
	Raw      string
	Content  any // typed payload for value tokens: int64, float64, bool, string, types.Date, ...
}
