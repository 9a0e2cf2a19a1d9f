package access_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/access"
	"github.com/erbsland-dev/elcl-go/types"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestFileCheckGrantsSameDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	parent := writeFile(t, dir, "root.elcl", 10)
	child := writeFile(t, dir, "child.elcl", 10)

	f := access.NewFileCheck()
	res, err := f.Check(access.Candidate{
		Source: types.SourceIdentifier{Name: "file", Path: child},
		Parent: types.SourceIdentifier{Name: "file", Path: parent},
		Root:   types.SourceIdentifier{Name: "file", Path: parent},
	})
	require.NoError(t, err)
	assert.Equal(t, access.Granted, res)
}

func TestFileCheckDeniesOutsideSandbox(t *testing.T) {
	t.Parallel()
	dirA := t.TempDir()
	dirB := t.TempDir()
	parent := writeFile(t, dirA, "root.elcl", 10)
	outside := writeFile(t, dirB, "other.elcl", 10)

	f := access.NewFileCheck()
	res, err := f.Check(access.Candidate{
		Source: types.SourceIdentifier{Name: "file", Path: outside},
		Parent: types.SourceIdentifier{Name: "file", Path: parent},
		Root:   types.SourceIdentifier{Name: "file", Path: parent},
	})
	require.NoError(t, err)
	assert.Equal(t, access.Denied, res)
}

func TestFileCheckDeniesOversizedFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	parent := writeFile(t, dir, "root.elcl", 10)
	big := writeFile(t, dir, "big.elcl", 1024)

	f := access.NewFileCheck()
	f.MaxSize = 100
	res, err := f.Check(access.Candidate{
		Source: types.SourceIdentifier{Name: "file", Path: big},
		Parent: types.SourceIdentifier{Name: "file", Path: parent},
		Root:   types.SourceIdentifier{Name: "file", Path: parent},
	})
	require.NoError(t, err)
	assert.Equal(t, access.Denied, res)
}

func TestFileCheckRequireSuffixDeniesWrongExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	parent := writeFile(t, dir, "root.elcl", 10)
	wrong := writeFile(t, dir, "other.txt", 10)

	f := access.NewFileCheck()
	f.Policy |= access.RequireSuffix
	res, err := f.Check(access.Candidate{
		Source: types.SourceIdentifier{Name: "file", Path: wrong},
		Parent: types.SourceIdentifier{Name: "file", Path: parent},
		Root:   types.SourceIdentifier{Name: "file", Path: parent},
	})
	require.NoError(t, err)
	assert.Equal(t, access.Denied, res)
}

func TestAllowAllGrantsEverything(t *testing.T) {
	t.Parallel()
	res, err := (access.AllowAll{}).Check(access.Candidate{})
	require.NoError(t, err)
	assert.Equal(t, access.Granted, res)
}
