package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies every error the core can raise (spec §7). It is never derived from a message string;
// callers should use Error.Kind() or errors.As to inspect it.
type ErrorKind int

const (
	// KindIO reports a failure to read from or open a Source.
	KindIO ErrorKind = iota
	// KindEncoding reports invalid UTF-8, an oversized line, or a BOM that isn't the first bytes of the document.
	KindEncoding
	// KindUnexpectedEnd reports input ending where a token, value, or document was still expected.
	KindUnexpectedEnd
	// KindCharacter reports a forbidden control character in the source.
	KindCharacter
	// KindSyntax reports any other structural or grammatical violation.
	KindSyntax
	// KindLimitExceeded reports a configured limit (include nesting, section name-path depth, ...) being exceeded.
	KindLimitExceeded
	// KindNameConflict reports two sibling values/sections claiming the same name.
	KindNameConflict
	// KindUnsupported reports a recognized but unsupported construct (unknown @version, unknown @features name, ...).
	KindUnsupported
	// KindSignature reports a signature that failed verification or was required but absent.
	KindSignature
	// KindAccess reports an AccessCheck denial or failure.
	KindAccess
	// KindValueNotFound reports a strict lookup that found nothing at the given path.
	KindValueNotFound
	// KindTypeMismatch reports a strict typed accessor call against a value of the wrong type.
	KindTypeMismatch
	// KindInternal reports a violated internal invariant; this should never surface from correct input.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IO"
	case KindEncoding:
		return "Encoding"
	case KindUnexpectedEnd:
		return "UnexpectedEnd"
	case KindCharacter:
		return "Character"
	case KindSyntax:
		return "Syntax"
	case KindLimitExceeded:
		return "LimitExceeded"
	case KindNameConflict:
		return "NameConflict"
	case KindUnsupported:
		return "Unsupported"
	case KindSignature:
		return "Signature"
	case KindAccess:
		return "Access"
	case KindValueNotFound:
		return "ValueNotFound"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the single error type the core raises. It carries enough context (location, name path, filesystem
// path, wrapped cause) for a caller to present a precise diagnostic, per spec §7. It lives in types (rather than
// the root package) so every internal package, including document, can raise it without an import cycle; the root
// package re-exports it as elcl.Error.
type Error struct {
	kind     ErrorKind
	message  string
	location Location
	hasLoc   bool
	namePath NamePath
	hasPath  bool
	fsPath   string
	cause    error
}

// NewError builds an Error of the given kind with message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{kind: kind, message: message, cause: errors.New(message)}
}

// WrapError builds an Error of the given kind, wrapping cause with pkg/errors so a stack trace is attached.
func WrapError(kind ErrorKind, cause error, message string) *Error {
	return &Error{kind: kind, message: message, cause: errors.Wrap(cause, message)}
}

// WithLocation returns a copy of e with its source location set.
func (e *Error) WithLocation(loc Location) *Error {
	cp := *e
	cp.location = loc
	cp.hasLoc = true
	return &cp
}

// WithNamePath returns a copy of e with its associated name path set.
func (e *Error) WithNamePath(path NamePath) *Error {
	cp := *e
	cp.namePath = path
	cp.hasPath = true
	return &cp
}

// WithFilesystemPath returns a copy of e with its associated filesystem path set.
func (e *Error) WithFilesystemPath(path string) *Error {
	cp := *e
	cp.fsPath = path
	return &cp
}

// Kind returns the classification of this error.
func (e *Error) Kind() ErrorKind { return e.kind }

// Location returns the error's source location and whether one was set.
func (e *Error) Location() (Location, bool) { return e.location, e.hasLoc }

// NamePath returns the error's associated name path and whether one was set.
func (e *Error) NamePath() (NamePath, bool) { return e.namePath, e.hasPath }

// FilesystemPath returns the error's associated filesystem path, if any.
func (e *Error) FilesystemPath() string { return e.fsPath }

// Unwrap exposes the wrapped cause so errors.Is/errors.As/%+v (stack traces) keep working.
func (e *Error) Unwrap() error { return e.cause }

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.kind, e.message)
	if e.hasLoc && !e.location.Undefined() {
		msg = fmt.Sprintf("%s (at %s)", msg, e.location)
	}
	if e.hasPath {
		msg = fmt.Sprintf("%s [%s]", msg, e.namePath.ToText())
	}
	return msg
}

// AsError extracts an *Error from err via errors.As, returning (nil, false) if err is not one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.kind == kind
}
