package hash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/internal/hash"
)

func TestDigestFinalizeFormat(t *testing.T) {
	t.Parallel()
	d, ok := hash.NewDigest(hash.SHA3_256)
	require.True(t, ok)
	d.Write([]byte("hello"))
	text := d.Finalize()
	assert.True(t, strings.HasPrefix(text, "sha3-256 "))
}

func TestDigestFinalizeIsIdempotent(t *testing.T) {
	t.Parallel()
	d, ok := hash.NewDigest(hash.SHA3_256)
	require.True(t, ok)
	d.Write([]byte("hello"))
	first := d.Finalize()
	second := d.Finalize()
	assert.Equal(t, first, second)
}

func TestNewRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()
	_, ok := hash.New(hash.Algorithm("md5"))
	assert.False(t, ok)
}
