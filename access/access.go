// Package access implements the pluggable access-check collaborator from spec §4.9: given a candidate source
// about to be opened, its parent, and the parse root, decide whether the parse may proceed.
package access

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/erbsland-dev/elcl-go/types"
)

// Result is the outcome of an access decision.
type Result int

const (
	Granted Result = iota
	Denied
)

// Candidate bundles the three source identifiers an AccessCheck decision needs (spec's AccessSources contract,
// ported from original_source's AccessSources.hpp).
type Candidate struct {
	Source types.SourceIdentifier
	Parent types.SourceIdentifier
	Root   types.SourceIdentifier
}

// Check is the abstract collaborator: it returns Granted/Denied, or a non-nil error for a hard failure (e.g. an
// I/O error while stat-ing the candidate for a size check).
type Check interface {
	Check(c Candidate) (Result, error)
}

// Policy is one bit of the default file access check's configurable policy set (spec §4.9).
type Policy int

const (
	// SameDirectory allows a source whose directory matches its parent's exactly.
	SameDirectory Policy = 1 << iota
	// Subdirectories allows a source nested anywhere under its parent's directory.
	Subdirectories
	// AnyDirectory allows a source anywhere on the filesystem, bypassing directory containment checks.
	AnyDirectory
	// OnlyFileSources rejects any candidate that isn't backed by a filesystem path.
	OnlyFileSources
	// LimitSize rejects a candidate file larger than MaxSize.
	LimitSize
	// RequireSuffix rejects a candidate whose filename doesn't end in one of RequiredSuffixes (case-insensitive).
	RequireSuffix
)

// DefaultPolicy is enabled by a freshly constructed FileCheck: SameDirectory, Subdirectories, LimitSize.
const DefaultPolicy = SameDirectory | Subdirectories | LimitSize

// MaxSize is the default LimitSize ceiling (spec §4.9: 100 MB).
const MaxSize = 100 * 1000 * 1000

// FileCheck is the default AccessCheck: a filesystem sandbox relative to each source's parent directory.
type FileCheck struct {
	Policy           Policy
	MaxSize          int64
	RequiredSuffixes []string
}

// NewFileCheck returns a FileCheck with the default-enabled policy bits and a 100 MB size limit.
func NewFileCheck() *FileCheck {
	return &FileCheck{Policy: DefaultPolicy, MaxSize: MaxSize, RequiredSuffixes: []string{".elcl"}}
}

func (p Policy) has(flag Policy) bool { return p&flag != 0 }

func (f *FileCheck) Check(c Candidate) (Result, error) {
	if f.Policy.has(OnlyFileSources) && (c.Source.Name != "file" || c.Source.Path == "") {
		return Denied, nil
	}
	if c.Source.Path != "" {
		if f.Policy.has(RequireSuffix) && !hasAnySuffix(c.Source.Path, f.RequiredSuffixes) {
			return Denied, nil
		}
		if !f.Policy.has(AnyDirectory) && c.Parent.Path != "" {
			sameDir := filepath.Dir(c.Source.Path) == filepath.Dir(c.Parent.Path)
			nested := isWithin(filepath.Dir(c.Parent.Path), c.Source.Path)
			allowed := (f.Policy.has(SameDirectory) && sameDir) || (f.Policy.has(Subdirectories) && nested)
			if !allowed {
				return Denied, nil
			}
		}
		if f.Policy.has(LimitSize) {
			info, err := os.Stat(c.Source.Path)
			if err != nil {
				return Denied, err
			}
			if info.Size() > f.MaxSize {
				return Denied, nil
			}
		}
	}
	return Granted, nil
}

func hasAnySuffix(path string, suffixes []string) bool {
	lower := strings.ToLower(path)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return !strings.HasPrefix(rel, "..")
}

// AllowAll is a Check that grants every candidate, useful for tests and embedded-config use cases with no
// filesystem sources.
type AllowAll struct{}

func (AllowAll) Check(Candidate) (Result, error) { return Granted, nil }
