package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/internal/assignment"
	"github.com/erbsland-dev/elcl-go/internal/charstream"
	"github.com/erbsland-dev/elcl-go/internal/hash"
	"github.com/erbsland-dev/elcl-go/internal/lexer"
	"github.com/erbsland-dev/elcl-go/source"
	"github.com/erbsland-dev/elcl-go/types"
)

func streamOf(t *testing.T, text string) *assignment.Stream {
	t.Helper()
	src := source.NewMemorySource("test", []byte(text))
	require.NoError(t, src.Open())
	cs, err := charstream.New(src, hash.Algorithm(""))
	require.NoError(t, err)
	return assignment.New(lexer.New(cs), src.Identifier())
}

func collect(t *testing.T, text string) []assignment.Assignment {
	t.Helper()
	s := streamOf(t, text)
	var out []assignment.Assignment
	for {
		a, err := s.Next()
		require.NoError(t, err)
		out = append(out, a)
		if a.Kind == assignment.EndOfDocument {
			return out
		}
	}
}

func TestPlainValue(t *testing.T) {
	t.Parallel()
	as := collect(t, "name: 42\n")
	require.Len(t, as, 2)
	assert.Equal(t, assignment.Value, as[0].Kind)
	assert.Equal(t, "name", nameText(as[0].Path))
	require.Len(t, as[0].Items, 1)
	assert.Equal(t, int64(42), as[0].Items[0].Integer)
}

func TestSectionMapAndNestedValue(t *testing.T) {
	t.Parallel()
	as := collect(t, "[server]\nhost: \"localhost\"\n")
	require.Len(t, as, 3)
	assert.Equal(t, assignment.SectionMap, as[0].Kind)
	assert.Equal(t, assignment.Value, as[1].Kind)
	require.Equal(t, 2, as[1].Path.Len())
	assert.Equal(t, "localhost", as[1].Items[0].Text)
}

func TestRelativeSectionPath(t *testing.T) {
	t.Parallel()
	as := collect(t, "[a.b]\nx: 1\n[.c]\ny: 2\n")
	require.Len(t, as, 5)
	assert.Equal(t, "a.b.c", as[2].Path.ToText())
}

func TestInlineCommaValueList(t *testing.T) {
	t.Parallel()
	as := collect(t, "list: 1, 2, 3\n")
	require.Len(t, as[0].Items, 3)
	assert.Equal(t, int64(1), as[0].Items[0].Integer)
	assert.Equal(t, int64(2), as[0].Items[1].Integer)
	assert.Equal(t, int64(3), as[0].Items[2].Integer)
}

func TestBulletValueList(t *testing.T) {
	t.Parallel()
	text := "list:\n  * 1\n  * 2\n  * 3\n"
	as := collect(t, text)
	require.Len(t, as[0].Items, 3)
	assert.Equal(t, int64(2), as[0].Items[1].Integer)
}

func TestSectionListAppendsEntries(t *testing.T) {
	t.Parallel()
	as := collect(t, "*[item]\nname: \"a\"\n*[item]\nname: \"b\"\n")
	require.Len(t, as, 5)
	assert.Equal(t, assignment.SectionList, as[0].Kind)
	assert.Equal(t, assignment.SectionList, as[2].Kind)
}

func TestVersionMustPrecedeFirstSection(t *testing.T) {
	t.Parallel()
	s := streamOf(t, "[a]\n@version: \"1.0\"\n")
	_, err := s.Next()
	require.NoError(t, err)
	_, err = s.Next()
	require.Error(t, err)
	e, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindSyntax, e.Kind())
}

func TestUnsupportedVersionIsRejected(t *testing.T) {
	t.Parallel()
	s := streamOf(t, "@version: \"2.0\"\n")
	_, err := s.Next()
	require.Error(t, err)
	e, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindUnsupported, e.Kind())
}

func TestSignatureOnFirstLineIsAccepted(t *testing.T) {
	t.Parallel()
	s := streamOf(t, "@signature: \"sha3-256 ab\"\nx: 1\n")
	_, err := s.Next()
	require.NoError(t, err)
}

func TestSignatureAfterCommentLineIsSyntaxError(t *testing.T) {
	t.Parallel()
	s := streamOf(t, "# a leading comment\n@signature: \"sha3-256 ab\"\nx: 1\n")
	// Next skips the line-1 comment and line break internally, lands on @signature (line 2), and must reject it.
	_, err := s.Next()
	require.Error(t, err)
	e, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindSyntax, e.Kind())
}

func TestSignatureAfterBlankLineIsSyntaxError(t *testing.T) {
	t.Parallel()
	s := streamOf(t, "\n@signature: \"sha3-256 ab\"\nx: 1\n")
	// Next skips the line-1 blank line break internally, lands on @signature (line 2), and must reject it.
	_, err := s.Next()
	require.Error(t, err)
	e, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindSyntax, e.Kind())
}

func TestIncludeResetsSectionMemory(t *testing.T) {
	t.Parallel()
	s := streamOf(t, "[a]\nx: 1\n@include: \"other.elcl\"\n[.b]\n")
	_, err := s.Next() // section a
	require.NoError(t, err)
	_, err = s.Next() // value x
	require.NoError(t, err)
	_, err = s.Next() // @include
	require.NoError(t, err)
	_, err = s.Next() // relative [.b] with no preceding absolute section: Syntax
	require.Error(t, err)
}

func nameText(p types.NamePath) string {
	last, _ := p.Last()
	return last.Text()
}
