// Package elcl implements a parser and in-memory value tree for the Erbsland Configuration Language (ELCL).
package elcl

import "github.com/erbsland-dev/elcl-go/types"

// ErrorKind classifies every error the core can raise (spec §7). It is never derived from a message string;
// callers should use Error.Kind() or AsError to inspect it. The type itself lives in types so internal packages
// (document, source, access, signature, ...) can raise it without importing this package.
type ErrorKind = types.ErrorKind

const (
	KindIO             = types.KindIO
	KindEncoding       = types.KindEncoding
	KindUnexpectedEnd  = types.KindUnexpectedEnd
	KindCharacter      = types.KindCharacter
	KindSyntax         = types.KindSyntax
	KindLimitExceeded  = types.KindLimitExceeded
	KindNameConflict   = types.KindNameConflict
	KindUnsupported    = types.KindUnsupported
	KindSignature      = types.KindSignature
	KindAccess         = types.KindAccess
	KindValueNotFound  = types.KindValueNotFound
	KindTypeMismatch   = types.KindTypeMismatch
	KindInternal       = types.KindInternal
)

// Error is the single error type the core raises. See types.Error for field documentation.
type Error = types.Error

// NewError builds an Error of the given kind with message.
func NewError(kind ErrorKind, message string) *Error { return types.NewError(kind, message) }

// Wrap builds an Error of the given kind, wrapping cause with a stack trace.
func Wrap(kind ErrorKind, cause error, message string) *Error {
	return types.WrapError(kind, cause, message)
}

// AsError extracts an *Error from err, returning (nil, false) if err is not one.
func AsError(err error) (*Error, bool) { return types.AsError(err) }

// Is reports whether err is, or wraps, an *Error of the given kind.
func Is(err error, kind ErrorKind) bool { return types.IsKind(err, kind) }
