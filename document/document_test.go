package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elcl "github.com/erbsland-dev/elcl-go"
	"github.com/erbsland-dev/elcl-go/document"
)

func parse(t *testing.T, text string) *document.Document {
	t.Helper()
	doc, err := elcl.New(elcl.Settings{}).ParseText("test", text)
	require.NoError(t, err)
	return doc
}

func TestLookupResolvesNestedPath(t *testing.T) {
	t.Parallel()
	doc := parse(t, "[a.b]\nx: 42\n")
	v, ok := doc.Lookup("a.b.x")
	require.True(t, ok)
	n, ok := v.Integer()
	require.True(t, ok)
	assert.EqualValues(t, 42, n)
}

func TestLookupMissingPathReturnsFalse(t *testing.T) {
	t.Parallel()
	doc := parse(t, "x: 1\n")
	_, ok := doc.Lookup("y")
	assert.False(t, ok)
}

func TestLookupOrThrowReportsValueNotFound(t *testing.T) {
	t.Parallel()
	doc := parse(t, "x: 1\n")
	_, err := doc.LookupOrThrow("y")
	require.Error(t, err)
	e, ok := elcl.AsError(err)
	require.True(t, ok)
	assert.Equal(t, elcl.KindValueNotFound, e.Kind())
}

func TestSectionListIndexLookup(t *testing.T) {
	t.Parallel()
	doc := parse(t, "*[item]\nname: \"a\"\n*[item]\nname: \"b\"\n")
	v, ok := doc.Lookup("item[1].name")
	require.True(t, ok)
	text, ok := v.Text()
	require.True(t, ok)
	assert.Equal(t, "b", text)
}

func TestToValueMatrixFlatList(t *testing.T) {
	t.Parallel()
	doc := parse(t, "list: 1, 2, 3\n")
	v, ok := doc.Lookup("list")
	require.True(t, ok)
	m, ok := v.ToValueMatrix()
	require.True(t, ok)
	assert.Equal(t, 3, m.RowCount())
	assert.Equal(t, 1, m.ColumnCount())
	n, _ := m.At(1, 0, nil).Integer()
	assert.EqualValues(t, 2, n)
}

func TestToValueMatrixScalarIsOneByOne(t *testing.T) {
	t.Parallel()
	doc := parse(t, "x: 1\n")
	v, ok := doc.Lookup("x")
	require.True(t, ok)
	m, ok := v.ToValueMatrix()
	require.True(t, ok)
	assert.Equal(t, 1, m.RowCount())
	assert.Equal(t, 1, m.ColumnCount())
}

func TestToFlatValueMapVisitsEveryLeaf(t *testing.T) {
	t.Parallel()
	doc := parse(t, "[a]\nx: 1\ny: 2\n")
	entries := doc.ToFlatValueMap()
	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path.ToText())
	}
	assert.Contains(t, paths, "a")
	assert.Contains(t, paths, "a.x")
	assert.Contains(t, paths, "a.y")
}

func TestToTestTextIsDeterministicAndReadable(t *testing.T) {
	t.Parallel()
	doc := parse(t, "x: 1\ny: \"hi\"\n")
	out := doc.ToTestText(document.TestTextOptions{})
	assert.True(t, strings.Contains(out, "x = Integer(1)"))
	assert.True(t, strings.Contains(out, `y = Text(hi)`))
}

func TestToTextRepresentationIsEmptyForContainers(t *testing.T) {
	t.Parallel()
	doc := parse(t, "[a]\nx: 1\n")
	a, ok := doc.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionWithNames, a.Kind())
	assert.Equal(t, "", a.ToTextRepresentation())

	x, ok := doc.Lookup("a.x")
	require.True(t, ok)
	assert.Equal(t, "1", x.ToTextRepresentation())
}
