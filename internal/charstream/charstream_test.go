package charstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/elcl-go/internal/charstream"
	"github.com/erbsland-dev/elcl-go/internal/hash"
	"github.com/erbsland-dev/elcl-go/source"
)

func drain(t *testing.T, s *charstream.Stream) string {
	t.Helper()
	var out []rune
	for {
		dc, err := s.Next()
		require.NoError(t, err)
		if dc.Rune == charstream.EndOfData {
			return string(out)
		}
		out = append(out, dc.Rune)
	}
}

func TestStreamDecodesRunesAcrossLines(t *testing.T) {
	t.Parallel()
	src := source.NewMemorySource("test", []byte("ab\ncd\n"))
	require.NoError(t, src.Open())
	s, err := charstream.New(src, hash.Algorithm(""))
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", drain(t, s))
}

func TestStreamStripsLeadingBOM(t *testing.T) {
	t.Parallel()
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x: 1\n")...)
	src := source.NewMemorySource("test", data)
	require.NoError(t, src.Open())
	s, err := charstream.New(src, hash.Algorithm(""))
	require.NoError(t, err)
	assert.Equal(t, "x: 1\n", drain(t, s))
}

func TestStreamComputesDigestExcludingSignatureLine(t *testing.T) {
	t.Parallel()
	src := source.NewMemorySource("test", []byte("@signature: \"x\"\nvalue: 1\n"))
	require.NoError(t, src.Open())
	s, err := charstream.New(src, hash.SHA3_256)
	require.NoError(t, err)
	drain(t, s)
	digest, ok := s.Digest()
	require.True(t, ok)
	assert.Contains(t, digest, "sha3-256")

	src2 := source.NewMemorySource("test2", []byte("value: 1\n"))
	require.NoError(t, src2.Open())
	s2, err := charstream.New(src2, hash.SHA3_256)
	require.NoError(t, err)
	drain(t, s2)
	digest2, ok := s2.Digest()
	require.True(t, ok)
	assert.Equal(t, digest, digest2, "the @signature line itself must not feed the rolling digest")
}

func TestDigestUnavailableWithoutHashing(t *testing.T) {
	t.Parallel()
	src := source.NewMemorySource("test", []byte("x: 1\n"))
	require.NoError(t, src.Open())
	s, err := charstream.New(src, hash.Algorithm(""))
	require.NoError(t, err)
	drain(t, s)
	_, ok := s.Digest()
	assert.False(t, ok)
}
