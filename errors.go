package jsontoken

import "errors"

// The core entry points (Parse, ParseBytes, ParseView) return a token count
// on success and one of these negative codes on failure. Callers that want
// ordinary Go errors instead of raw codes should use Error, below.
const (
	// BadFormat means a byte produced no valid transition, or finalization
	// left the state machine outside OK.
	BadFormat = -1
	// NoTokens means the token store was exhausted during a begin-action.
	NoTokens = -2
	// Incomplete means the input ended while still inside one or more
	// containers.
	Incomplete = -3
)

// Sentinel errors mirroring BadFormat/NoTokens/Incomplete, for callers that
// prefer idiomatic Go errors over raw codes.
var (
	ErrBadFormat  = errors.New("jsontoken: invalid JSON")
	ErrNoTokens   = errors.New("jsontoken: token store exhausted")
	ErrIncomplete = errors.New("jsontoken: unexpected end of input")
)

// Error converts a negative count returned by a Parse function into the
// matching sentinel error, or nil if count is non-negative.
func Error(count int) error {
	switch count {
	case BadFormat:
		return ErrBadFormat
	case NoTokens:
		return ErrNoTokens
	case Incomplete:
		return ErrIncomplete
	default:
		if count < 0 {
			return ErrBadFormat
		}
		return nil
	}
}
