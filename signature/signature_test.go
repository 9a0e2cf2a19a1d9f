package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erbsland-dev/elcl-go/signature"
)

func TestRejectAllAlwaysRejects(t *testing.T) {
	t.Parallel()
	assert.Equal(t, signature.Reject, (signature.RejectAll{}).Validate(signature.Info{}))
}

func TestAcceptAllAlwaysAccepts(t *testing.T) {
	t.Parallel()
	assert.Equal(t, signature.Accept, (signature.AcceptAll{}).Validate(signature.Info{}))
}

func TestTrustedDigestsMatchesAllowList(t *testing.T) {
	t.Parallel()
	v := signature.TrustedDigests{Digests: map[string]bool{"sha3-256 abcd": true}}
	assert.Equal(t, signature.Accept, v.Validate(signature.Info{DigestText: "sha3-256 abcd"}))
	assert.Equal(t, signature.Reject, v.Validate(signature.Info{DigestText: "sha3-256 ffff"}))
}
