// Package elcl implements a parser and in-memory value tree for the Erbsland Configuration Language (ELCL).
package elcl

import (
	"strings"

	"github.com/erbsland-dev/elcl-go/access"
	"github.com/erbsland-dev/elcl-go/document"
	"github.com/erbsland-dev/elcl-go/internal/assignment"
	"github.com/erbsland-dev/elcl-go/internal/builder"
	"github.com/erbsland-dev/elcl-go/internal/charstream"
	"github.com/erbsland-dev/elcl-go/internal/hash"
	"github.com/erbsland-dev/elcl-go/internal/lexer"
	"github.com/erbsland-dev/elcl-go/signature"
	"github.com/erbsland-dev/elcl-go/source"
	"github.com/erbsland-dev/elcl-go/types"
)

// MaxDocumentNesting bounds @include recursion depth (spec §6.6).
const MaxDocumentNesting = 5

// Settings configures a Parser's optional collaborators (spec §4.8-§4.10). The zero Settings parses a single
// source with no includes, no access restrictions, and a bare `@signature` line failing verification.
type Settings struct {
	// AccessCheck gates every source before it is opened, including the root. Nil grants everything.
	AccessCheck access.Check
	// SourceResolver expands `@include` directives. Nil makes `@include` fail Unsupported.
	SourceResolver source.Resolver
	// SignatureValidator decides the outcome of a document's `@signature` line. Nil rejects any source that
	// declares one (spec S5: "Signature cannot be verified").
	SignatureValidator signature.Validator
	// HashAlgorithm selects the rolling digest algorithm for signature verification. Defaults to sha3-256 once a
	// SignatureValidator is configured; otherwise no digest is computed.
	HashAlgorithm hash.Algorithm
}

// Parser runs component J: it drives one or more source contexts, in `@include` order, through a single shared
// DocumentBuilder.
type Parser struct {
	settings Settings
}

// New returns a Parser configured with settings.
func New(settings Settings) *Parser {
	return &Parser{settings: settings}
}

// parserContext is one frame of the stack described in spec §4.8.
type parserContext struct {
	src          source.Source
	sourceID     types.SourceIdentifier
	parent       types.SourceIdentifier
	includeLevel int
	initialized  bool

	cs     *charstream.Stream
	stream *assignment.Stream

	hasSignature  bool
	signatureText string
}

// Parse runs the full driver loop of spec §4.8 over root (and anything it transitively `@include`s), returning the
// freshly built Document.
func (p *Parser) Parse(root source.Source) (*document.Document, error) {
	b := builder.New()
	rootID := root.Identifier()
	stack := []*parserContext{{src: root, sourceID: rootID}}

	closeAll := func() {
		for _, c := range stack {
			if c.initialized {
				_ = c.src.Close()
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if !top.initialized {
			if err := p.open(top, rootID); err != nil {
				closeAll()
				return nil, err
			}
		}

		a, err := top.stream.Next()
		if err != nil {
			closeAll()
			return nil, err
		}

		if a.Kind == assignment.EndOfDocument {
			if err := p.preLeave(top); err != nil {
				closeAll()
				return nil, err
			}
			_ = top.src.Close()
			stack = stack[:len(stack)-1]
			continue
		}

		switch a.Kind {
		case assignment.SectionMap:
			err = b.AddSectionMap(a.Path, a.Location)
		case assignment.SectionList:
			err = b.AddSectionList(a.Path, a.Location)
		case assignment.Value:
			err = b.AddValue(a.Path, a.Items, a.Location)
		case assignment.MetaValue:
			var pushed []*parserContext
			pushed, err = p.handleMeta(top, a, stack)
			if err == nil && len(pushed) > 0 {
				stack = append(stack, pushed...)
			}
		}
		if err != nil {
			closeAll()
			return nil, err
		}
	}
	return b.Reset(), nil
}

// ParseText is a convenience wrapper parsing an in-memory document named name.
func (p *Parser) ParseText(name string, text string) (*document.Document, error) {
	return p.Parse(source.NewMemorySource(name, []byte(text)))
}

func (p *Parser) open(ctx *parserContext, rootID types.SourceIdentifier) error {
	if p.settings.AccessCheck != nil {
		res, err := p.settings.AccessCheck.Check(access.Candidate{Source: ctx.sourceID, Parent: ctx.parent, Root: rootID})
		if err != nil {
			return err
		}
		if res != access.Granted {
			return types.NewError(types.KindAccess, "access denied for "+ctx.sourceID.String()).
				WithLocation(types.Location{Source: ctx.sourceID})
		}
	}
	if err := ctx.src.Open(); err != nil {
		return types.WrapError(types.KindIO, err, "opening "+ctx.sourceID.String())
	}

	algo := p.settings.HashAlgorithm
	if algo == "" && p.settings.SignatureValidator != nil {
		algo = hash.SHA3_256
	}
	cs, err := charstream.New(ctx.src, algo)
	if err != nil {
		return err
	}
	ctx.cs = cs
	ctx.stream = assignment.New(lexer.New(cs), ctx.sourceID)
	ctx.initialized = true
	return nil
}

// handleMeta implements spec §4.8's handle_meta for @signature and @include; all other meta names are recorded
// verbatim by the assignment stream but need no driver action.
func (p *Parser) handleMeta(top *parserContext, a assignment.Assignment, stack []*parserContext) ([]*parserContext, error) {
	name, ok := a.Path.Last()
	if !ok {
		return nil, nil
	}
	switch strings.ToLower(name.Text()) {
	case "signature":
		top.hasSignature = true
		top.signatureText = a.Text
		return nil, nil
	case "include":
		return p.handleInclude(top, a, stack)
	default:
		return nil, nil
	}
}

func (p *Parser) handleInclude(top *parserContext, a assignment.Assignment, stack []*parserContext) ([]*parserContext, error) {
	if p.settings.SourceResolver == nil {
		return nil, types.NewError(types.KindUnsupported, "@include requires a configured source resolver").
			WithLocation(a.Location)
	}
	newLevel := top.includeLevel + 1
	if newLevel >= MaxDocumentNesting {
		return nil, types.NewError(types.KindLimitExceeded, "@include nesting exceeds the maximum document depth").
			WithLocation(a.Location)
	}
	sources, err := p.settings.SourceResolver.Resolve(a.Text, top.sourceID)
	if err != nil {
		return nil, types.WrapError(types.KindSyntax, err, "resolving @include "+a.Text)
	}

	frames := make([]*parserContext, len(sources))
	for i, src := range sources {
		id := src.Identifier()
		for _, c := range stack {
			if c.sourceID.Equal(id) {
				return nil, types.NewError(types.KindSyntax, "include loop detected for "+id.String()).
					WithLocation(a.Location)
			}
		}
		frames[i] = &parserContext{src: src, sourceID: id, parent: top.sourceID, includeLevel: newLevel}
	}

	// Push in reverse so the first resolved source ends up on top of the (LIFO) stack, and is processed first.
	out := make([]*parserContext, len(frames))
	for i, f := range frames {
		out[len(frames)-1-i] = f
	}
	return out, nil
}

// preLeave implements spec §4.8's pre_leave: the signature check run once a context's assignments are exhausted.
func (p *Parser) preLeave(top *parserContext) error {
	if p.settings.SignatureValidator != nil {
		digestText, _ := top.cs.Digest()
		result := p.settings.SignatureValidator.Validate(signature.Info{
			Source:     top.sourceID,
			Signature:  top.signatureText,
			DigestText: digestText,
		})
		if result == signature.Reject {
			return types.NewError(types.KindSignature, "document signature rejected").
				WithLocation(types.Location{Source: top.sourceID})
		}
		return nil
	}
	if top.hasSignature {
		return types.NewError(types.KindSignature, "document declares @signature but no signature validator is configured").
			WithLocation(types.Location{Source: top.sourceID})
	}
	return nil
}
