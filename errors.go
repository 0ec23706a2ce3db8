package mathtex

import "fmt"

// ErrorCode classifies parse and rendering failures.
type ErrorCode string

const (
	// ErrUnexpectedToken marks a token with no symbol definition for the
	// current mode. The token is skipped, parsing continues.
	ErrUnexpectedToken ErrorCode = "unexpected-token"

	// ErrUnterminatedMathShift marks an opening $ or $$ with no matching
	// closer. The remainder of the input is consumed as the math span.
	ErrUnterminatedMathShift ErrorCode = "unterminated-math-shift"

	// ErrUnresolvedSizing marks a sized delimiter with no glyph available
	// at the requested size class.
	ErrUnresolvedSizing ErrorCode = "unresolved-sizing"
)

// ParseError describes one recoverable problem found in the source. Errors
// are pushed to the caller's sink instead of raised, so a single parse call
// can surface many independent errors from one span.
type ParseError struct {
	Code  ErrorCode
	Token string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return string(e.Code)
	}

	return fmt.Sprintf("%s: %q", e.Code, e.Token)
}

// ErrorSink receives recoverable parse errors. A nil sink discards them.
// The sink never halts parsing; a caller that wants fail-fast semantics
// records the first error and inspects it after the call.
type ErrorSink func(*ParseError)

func report(sink ErrorSink, code ErrorCode, token string) {
	if sink != nil {
		sink(&ParseError{Code: code, Token: token})
	}
}
