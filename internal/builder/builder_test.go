package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/document"
	"github.com/erbsland-dev/elcl-go/internal/assignment"
	"github.com/erbsland-dev/elcl-go/internal/builder"
	"github.com/erbsland-dev/elcl-go/types"
)

func path(t *testing.T, text string) types.NamePath {
	t.Helper()
	p, err := types.ParseNamePath(text)
	require.NoError(t, err)
	return p
}

func intItem(n int64) []assignment.Item {
	return []assignment.Item{{Kind: assignment.ScalarInteger, Integer: n}}
}

func TestAddValueAtRoot(t *testing.T) {
	t.Parallel()
	b := builder.New()
	require.NoError(t, b.AddValue(path(t, "x"), intItem(42), types.Location{}))
	v, ok := b.Document().Lookup("x")
	require.True(t, ok)
	n, ok := v.Integer()
	require.True(t, ok)
	assert.EqualValues(t, 42, n)
}

func TestAddSectionMapCreatesIntermediates(t *testing.T) {
	t.Parallel()
	b := builder.New()
	require.NoError(t, b.AddSectionMap(path(t, "a.b.c"), types.Location{}))
	a, ok := b.Document().Lookup("a")
	require.True(t, ok)
	assert.Equal(t, document.KindIntermediateSection, a.Kind())
	bv, ok := b.Document().Lookup("a.b")
	require.True(t, ok)
	assert.Equal(t, document.KindIntermediateSection, bv.Kind())
	c, ok := b.Document().Lookup("a.b.c")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionWithNames, c.Kind())
}

func TestAddValuePromotesIntermediateSection(t *testing.T) {
	t.Parallel()
	b := builder.New()
	require.NoError(t, b.AddSectionMap(path(t, "a.b"), types.Location{}))
	require.NoError(t, b.AddValue(path(t, "a.x"), intItem(1), types.Location{}))
	a, ok := b.Document().Lookup("a")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionWithNames, a.Kind())
}

func TestAddValueDuplicateNameConflicts(t *testing.T) {
	t.Parallel()
	b := builder.New()
	require.NoError(t, b.AddValue(path(t, "x"), intItem(1), types.Location{}))
	err := b.AddValue(path(t, "x"), intItem(2), types.Location{})
	require.Error(t, err)
	e, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindNameConflict, e.Kind())
}

func TestAddSectionListAppendsEntries(t *testing.T) {
	t.Parallel()
	b := builder.New()
	require.NoError(t, b.AddSectionList(path(t, "item"), types.Location{}))
	require.NoError(t, b.AddValue(path(t, "name"), []assignment.Item{{Kind: assignment.ScalarText, Text: "a"}}, types.Location{}))
	require.NoError(t, b.AddSectionList(path(t, "item"), types.Location{}))
	require.NoError(t, b.AddValue(path(t, "name"), []assignment.Item{{Kind: assignment.ScalarText, Text: "b"}}, types.Location{}))

	items, ok := b.Document().Lookup("item")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionList, items.Kind())
	assert.Equal(t, 2, items.Size())
}

func TestAddSectionListRejectsTextName(t *testing.T) {
	t.Parallel()
	b := builder.New()
	p, err := types.ParseNamePath(`"text name"`)
	require.NoError(t, err)
	err = b.AddSectionList(p, types.Location{})
	require.Error(t, err)
}

func TestValueListFromMultipleItems(t *testing.T) {
	t.Parallel()
	b := builder.New()
	items := []assignment.Item{
		{Kind: assignment.ScalarInteger, Integer: 1},
		{Kind: assignment.ScalarInteger, Integer: 2},
		{Kind: assignment.ScalarInteger, Integer: 3},
	}
	require.NoError(t, b.AddValue(path(t, "list"), items, types.Location{}))
	list, ok := b.Document().Lookup("list")
	require.True(t, ok)
	assert.Equal(t, document.KindValueList, list.Kind())
	assert.Equal(t, 3, list.Size())
}

func TestResetReturnsDocumentAndStartsFresh(t *testing.T) {
	t.Parallel()
	b := builder.New()
	require.NoError(t, b.AddValue(path(t, "x"), intItem(1), types.Location{}))
	doc := b.Reset()
	_, ok := doc.Lookup("x")
	assert.True(t, ok)
	_, ok = b.Document().Lookup("x")
	assert.False(t, ok)
}
