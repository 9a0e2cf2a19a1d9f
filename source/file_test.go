package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/source"
	"github.com/erbsland-dev/elcl-go/types"
)

func TestFileSourceReadsLines(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.elcl")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb: 2\n"), 0o644))

	src := source.NewFileSource(path)
	require.NoError(t, src.Open())
	defer src.Close()

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(line))

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b: 2\n", string(line))

	assert.True(t, src.AtEnd())
}

func TestFileSourceIdentifierCarriesAbsolutePath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.elcl")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	src := source.NewFileSource(path)
	id := src.Identifier()
	assert.Equal(t, "file", id.Name)
	assert.True(t, filepath.IsAbs(id.Path))
}

func TestFileResolverResolvesSingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "other.elcl")
	require.NoError(t, os.WriteFile(target, []byte("x: 1\n"), 0o644))

	r := source.NewFileResolver(dir)
	from := types.SourceIdentifier{Name: "file", Path: filepath.Join(dir, "root.elcl")}
	sources, err := r.Resolve("other.elcl", from)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, target, sources[0].Identifier().Path)
}

func TestFileResolverExpandsGlob(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.elcl"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.elcl"), []byte("y: 2\n"), 0o644))

	r := source.NewFileResolver(dir)
	from := types.SourceIdentifier{Name: "file", Path: filepath.Join(dir, "root.elcl")}
	sources, err := r.Resolve("*.elcl", from)
	require.NoError(t, err)
	assert.Len(t, sources, 2)
}

func TestFileResolverNoMatchIsError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r := source.NewFileResolver(dir)
	from := types.SourceIdentifier{Name: "file", Path: filepath.Join(dir, "root.elcl")}
	_, err := r.Resolve("missing-*.elcl", from)
	require.Error(t, err)
}

func TestMemorySourceRoundTrip(t *testing.T) {
	t.Parallel()
	src := source.NewMemorySource("mem", []byte("a: 1\nb: 2"))
	require.NoError(t, src.Open())
	var lines []string
	for {
		line, err := src.ReadLine()
		if err != nil {
			break
		}
		lines = append(lines, string(line))
	}
	assert.Equal(t, []string{"a: 1\n", "b: 2"}, lines)
}
