// Package hash implements the rolling document digest used by the signature channel (component C).
package hash

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Algorithm names one of the three digest variants ELCL documents can be signed with.
type Algorithm string

const (
	SHA3_256 Algorithm = "sha3-256"
	SHA3_384 Algorithm = "sha3-384"
	SHA3_512 Algorithm = "sha3-512"
)

// New returns a fresh hash.Hash for algo, or false if algo isn't one of the three supported variants.
func New(algo Algorithm) (hash.Hash, bool) {
	switch algo {
	case SHA3_256:
		return sha3.New256(), true
	case SHA3_384:
		return sha3.New384(), true
	case SHA3_512:
		return sha3.New512(), true
	default:
		return nil, false
	}
}

// Digest accumulates raw source bytes into a rolling hash and finalizes it exactly once, matching the CharStream
// contract from spec §4.2 ("the Char hash object is finalized exactly once per stream").
type Digest struct {
	algo     Algorithm
	h        hash.Hash
	final    string
	finished bool
}

// NewDigest starts a new rolling digest using algo. It returns false if algo is not recognized.
func NewDigest(algo Algorithm) (*Digest, bool) {
	h, ok := New(algo)
	if !ok {
		return nil, false
	}
	return &Digest{algo: algo, h: h}, true
}

// Write feeds raw bytes into the digest. It panics if called after Finalize, which would indicate an internal
// ordering bug rather than a condition a caller can recover from.
func (d *Digest) Write(p []byte) {
	if d.finished {
		panic("hash: Write after Finalize")
	}
	d.h.Write(p)
}

// Finalize computes and caches the final "<algo> <hex-digest>" text (spec §6.9), safe to call more than once.
func (d *Digest) Finalize() string {
	if !d.finished {
		d.final = string(d.algo) + " " + hex.EncodeToString(d.h.Sum(nil))
		d.finished = true
	}
	return d.final
}

// Algorithm returns the algorithm this digest was created with.
func (d *Digest) Algorithm() Algorithm { return d.algo }
