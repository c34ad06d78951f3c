package syntax

import (
	"errors"
	"fmt"
)

// ErrorCode is a closed taxonomy of pattern-compilation failures. Every
// error the parser raises carries one of these codes, and the Code field
// lets callers branch on the failure kind without string matching.
type ErrorCode int

const (
	UnexpectedEndOfInput ErrorCode = iota
	MissingCharacter
	InvalidEscapeSequence
	InvalidRangeQuantifier
	InvalidCharacterClass
	InvalidCaptureName
	RangeOutOfOrder
)

func (c ErrorCode) String() string {
	switch c {
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case MissingCharacter:
		return "MissingCharacter"
	case InvalidEscapeSequence:
		return "InvalidEscapeSequence"
	case InvalidRangeQuantifier:
		return "InvalidRangeQuantifier"
	case InvalidCharacterClass:
		return "InvalidCharacterClass"
	case InvalidCaptureName:
		return "InvalidCaptureName"
	case RangeOutOfOrder:
		return "RangeOutOfOrder"
	default:
		return "Unknown"
	}
}

// ParseError reports why Parse could not compile a pattern. Want is set for
// MissingCharacter (the character that was expected, e.g. ')' or ']') and is
// the zero rune otherwise.
type ParseError struct {
	Code    ErrorCode
	Pattern string
	Pos     int // byte offset into Pattern where the error was detected
	Want    rune
}

func (e *ParseError) Error() string {
	switch e.Code {
	case MissingCharacter:
		return fmt.Sprintf("gorx/syntax: missing %q at position %d in %q", e.Want, e.Pos, e.Pattern)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("gorx/syntax: unexpected end of input in %q", e.Pattern)
	default:
		return fmt.Sprintf("gorx/syntax: %s at position %d in %q", e.Code, e.Pos, e.Pattern)
	}
}

// Is allows errors.Is(err, syntax.ErrUnexpectedEndOfInput) style checks
// against the sentinel values below.
func (e *ParseError) Is(target error) bool {
	var other *ParseError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// Sentinel errors usable with errors.Is; compared only on Code, so the
// Pattern/Pos/Want fields are left zero.
var (
	ErrUnexpectedEndOfInput  = &ParseError{Code: UnexpectedEndOfInput}
	ErrInvalidEscapeSequence = &ParseError{Code: InvalidEscapeSequence}
	ErrInvalidRangeQuantifier = &ParseError{Code: InvalidRangeQuantifier}
	ErrInvalidCharacterClass = &ParseError{Code: InvalidCharacterClass}
	ErrInvalidCaptureName    = &ParseError{Code: InvalidCaptureName}
	ErrRangeOutOfOrder       = &ParseError{Code: RangeOutOfOrder}
)
