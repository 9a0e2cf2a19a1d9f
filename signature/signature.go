// Package signature implements the pluggable document-signature validator collaborator from spec §4.10.
package signature

import "github.com/erbsland-dev/elcl-go/types"

// Result is the outcome of validating a document's signature.
type Result int

const (
	Accept Result = iota
	Reject
)

// Info bundles what a Validator needs to decide: the source identifier, the raw `@signature` value text, and the
// finalized "<algo> <hex-digest>" digest text computed over the document (spec §4.10, §6.8).
type Info struct {
	Source     types.SourceIdentifier
	Signature  string
	DigestText string
}

// Validator is the abstract collaborator (spec's SignatureValidator).
type Validator interface {
	Validate(info Info) Result
}

// RejectAll always rejects, so every document fails verification, whether or not it declares `@signature`. A
// parser with no configured validator differs: it rejects only documents that declare `@signature`.
type RejectAll struct{}

func (RejectAll) Validate(Info) Result { return Reject }

// AcceptAll accepts every signature without checking it; useful for tests exercising the rest of the pipeline.
type AcceptAll struct{}

func (AcceptAll) Validate(Info) Result { return Accept }

// TrustedDigests accepts a signature only when its digest text exactly matches one of a fixed allow-list, a
// minimal stand-in for a real cryptographic signature scheme.
type TrustedDigests struct {
	Digests map[string]bool
}

func (t TrustedDigests) Validate(info Info) Result {
	if t.Digests[info.DigestText] {
		return Accept
	}
	return Reject
}
