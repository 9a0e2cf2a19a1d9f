package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/internal/charstream"
	"github.com/erbsland-dev/elcl-go/internal/hash"
	"github.com/erbsland-dev/elcl-go/internal/lexer"
	"github.com/erbsland-dev/elcl-go/source"
)

func tokensOf(t *testing.T, text string) []lexer.Token {
	t.Helper()
	src := source.NewMemorySource("test", []byte(text))
	require.NoError(t, src.Open())
	cs, err := charstream.New(src, hash.Algorithm(""))
	require.NoError(t, err)
	lx := lexer.New(cs)
	var out []lexer.Token
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		out = append(out, tok)
		if tok.Kind == lexer.EndOfData {
			return out
		}
	}
}

func kinds(toks []lexer.Token) []lexer.TokenKind {
	out := make([]lexer.TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestNameAndValue(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "name: 42")
	require.Len(t, toks, 4)
	assert.Equal(t, lexer.RegularName, toks[0].Kind)
	assert.Equal(t, "name", toks[0].Content)
	assert.Equal(t, lexer.NameValueSeparator, toks[1].Kind)
	assert.Equal(t, lexer.Integer, toks[2].Kind)
	assert.Equal(t, int64(42), toks[2].Content)
	assert.Equal(t, lexer.EndOfData, toks[3].Kind)
}

func TestBooleanWords(t *testing.T) {
	t.Parallel()
	for _, word := range []string{"true", "false", "yes", "no", "on", "off"} {
		toks := tokensOf(t, word)
		require.Equal(t, lexer.Boolean, toks[0].Kind, word)
	}
}

func TestHexAndBinaryIntegers(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "0xFF")
	require.Equal(t, lexer.Integer, toks[0].Kind)
	assert.EqualValues(t, 255, toks[0].Content)

	toks = tokensOf(t, "0b1010")
	require.Equal(t, lexer.Integer, toks[0].Kind)
	assert.EqualValues(t, 10, toks[0].Content)
}

func TestLeadingZeroIsNotMistakenForBasePrefix(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "0")
	require.Equal(t, lexer.Integer, toks[0].Kind)
	assert.EqualValues(t, 0, toks[0].Content)
}

func TestFloatLiteral(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "3.5")
	require.Equal(t, lexer.Float, toks[0].Kind)
	assert.InDelta(t, 3.5, toks[0].Content, 1e-9)
}

func TestTimeDeltaUnitSuffix(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "10s")
	require.Equal(t, lexer.TimeDelta, toks[0].Kind)
}

func TestDateLiteral(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "2024-01-31")
	require.Equal(t, lexer.Date, toks[0].Kind)
}

func TestDateTimeLiteral(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "2024-01-31T10:15:00")
	require.Equal(t, lexer.DateTimeTok, toks[0].Kind)
}

func TestSectionHeaderTokens(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "[a.b]")
	assert.Equal(t, []lexer.TokenKind{
		lexer.SectionMapOpen, lexer.RegularName, lexer.NamePathSeparator, lexer.RegularName,
		lexer.SectionMapClose, lexer.EndOfData,
	}, kinds(toks))
}

func TestSectionListHeaderToken(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "*[a]")
	assert.Equal(t, lexer.SectionListOpen, toks[0].Kind)
}

func TestListBulletVsSectionList(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "* 1")
	assert.Equal(t, lexer.ListBullet, toks[0].Kind)
}

func TestMultiLineTextLiteral(t *testing.T) {
	t.Parallel()
	text := "\"\"\"\n  hello\n  world\n  \"\"\"\n"
	toks := tokensOf(t, text)
	require.Equal(t, lexer.MultiLineTextClose, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Content)
}

func TestCommentAndIndentationAreEmittedAsTokens(t *testing.T) {
	t.Parallel()
	toks := tokensOf(t, "  # a comment\nname: 1")
	assert.Equal(t, lexer.Indentation, toks[0].Kind)
	assert.Equal(t, lexer.Comment, toks[1].Kind)
}

func TestUnterminatedTextIsUnexpectedEnd(t *testing.T) {
	t.Parallel()
	src := source.NewMemorySource("test", []byte(`"unterminated`))
	require.NoError(t, src.Open())
	cs, err := charstream.New(src, hash.Algorithm(""))
	require.NoError(t, err)
	lx := lexer.New(cs)
	_, err = lx.Next()
	require.Error(t, err)
}
