package elcl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elcl "github.com/erbsland-dev/elcl-go"
	"github.com/erbsland-dev/elcl-go/document"
	"github.com/erbsland-dev/elcl-go/signature"
	"github.com/erbsland-dev/elcl-go/source"
)

func parse(t *testing.T, text string) *document.Document {
	t.Helper()
	p := elcl.New(elcl.Settings{})
	doc, err := p.ParseText("test", text)
	require.NoError(t, err)
	return doc
}

func TestEndToEndBasicDocument(t *testing.T) {
	t.Parallel()
	doc := parse(t, "[server]\nhost: \"localhost\"\nport: 8080\n")
	section, ok := doc.Lookup("server")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionWithNames, section.Kind())

	host, ok := doc.Lookup("server.host")
	require.True(t, ok)
	text, ok := host.Text()
	require.True(t, ok)
	assert.Equal(t, "localhost", text)

	port, ok := doc.Lookup("server.port")
	require.True(t, ok)
	n, ok := port.Integer()
	require.True(t, ok)
	assert.EqualValues(t, 8080, n)
}

func TestEndToEndSectionList(t *testing.T) {
	t.Parallel()
	doc := parse(t, "*[item]\nname: \"a\"\n*[item]\nname: \"b\"\n")
	items, ok := doc.Lookup("item")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionList, items.Kind())
	assert.Equal(t, 2, items.Size())
}

func TestEndToEndValueList(t *testing.T) {
	t.Parallel()
	doc := parse(t, "numbers: 1, 2, 3\n")
	list, ok := doc.Lookup("numbers")
	require.True(t, ok)
	assert.Equal(t, document.KindValueList, list.Kind())
	assert.Equal(t, 3, list.Size())
}

func TestEndToEndIntermediateSectionPromotion(t *testing.T) {
	t.Parallel()
	doc := parse(t, "[a.b.c]\nx: 1\n")
	a, ok := doc.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionWithNames, a.Kind(), "every IntermediateSection on the path must be promoted")
	b, ok := doc.Lookup("a.b")
	require.True(t, ok)
	assert.Equal(t, document.KindSectionWithNames, b.Kind())
}

func TestDuplicateValueNameIsNameConflict(t *testing.T) {
	t.Parallel()
	p := elcl.New(elcl.Settings{})
	_, err := p.ParseText("test", "x: 1\nx: 2\n")
	require.Error(t, err)
	e, ok := elcl.AsError(err)
	require.True(t, ok)
	assert.Equal(t, elcl.KindNameConflict, e.Kind())
}

func TestBareSignatureIsRejectedWithoutValidator(t *testing.T) {
	t.Parallel()
	p := elcl.New(elcl.Settings{})
	_, err := p.ParseText("test", "@signature: \"unverified\"\nx: 1\n")
	require.Error(t, err)
	e, ok := elcl.AsError(err)
	require.True(t, ok)
	assert.Equal(t, elcl.KindSignature, e.Kind())
}

func TestSignatureAcceptedWithAcceptAllValidator(t *testing.T) {
	t.Parallel()
	p := elcl.New(elcl.Settings{SignatureValidator: signature.AcceptAll{}})
	_, err := p.ParseText("test", "@signature: \"unverified\"\nx: 1\n")
	require.NoError(t, err)
}

func TestIncludeWithoutResolverIsUnsupported(t *testing.T) {
	t.Parallel()
	p := elcl.New(elcl.Settings{})
	_, err := p.ParseText("test", "@include: \"other.elcl\"\n")
	require.Error(t, err)
	e, ok := elcl.AsError(err)
	require.True(t, ok)
	assert.Equal(t, elcl.KindUnsupported, e.Kind())
}

func TestParseFromMemorySource(t *testing.T) {
	t.Parallel()
	_, err := elcl.New(elcl.Settings{}).Parse(source.NewMemorySource("mem", []byte("x: 1\n")))
	require.NoError(t, err)
}
