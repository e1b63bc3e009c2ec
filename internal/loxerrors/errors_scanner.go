package loxerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
	ErrScanUnterminatedComment = errors.New("Unterminated comment.")
	ErrScanFractionalNumber    = errors.New("Fractional numbers are not supported.")
	ErrScanNumberOutOfRange    = errors.New("Number literal out of range.")
)

type ScannerError struct {
	line  int
	cause error
}

func NewScanError(line int, cause error) error {
	return &ScannerError{line, cause}
}

// Error implements error.
func (s *ScannerError) Error() string {
	return s.Diagnostic().String()
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

// Diagnostic implements diagnostic.
func (s *ScannerError) Diagnostic() Diagnostic {
	return Diagnostic{Line: s.line, Message: fmt.Sprint(s.cause)}
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
var _ diagnostic = (*ScannerError)(nil)
