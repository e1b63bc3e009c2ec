package loxerrors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leonardinius/tinylox/internal/loxerrors"
	"github.com/leonardinius/tinylox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormats(t *testing.T) {
	semicolon := token.NewTokenHeap(token.SEMICOLON, ";", nil, 2)
	eof := token.NewTokenHeap(token.EOF, "", nil, 4)
	slash := token.NewTokenHeap(token.SLASH, "/", nil, 5)

	testcases := []struct {
		name  string
		err   error
		msg   string
		cause error
	}{
		{"scan", loxerrors.NewScanError(1, loxerrors.ErrScanUnterminatedString), "[line 1] Error: Unterminated string.", loxerrors.ErrScanUnterminatedString},
		{"parse at token", loxerrors.NewParseError(semicolon, loxerrors.ErrParseUnexpectedToken), "[line 2] Error at ';': Expect expression.", loxerrors.ErrParseUnexpectedToken},
		{"parse at end", loxerrors.NewParseError(eof, loxerrors.ErrParseExpectedSemicolonTokenAfterExpr), "[line 4] Error at end: Expect ';' after value.", loxerrors.ErrParseExpectedSemicolonTokenAfterExpr},
		{"runtime", loxerrors.NewRuntimeError(slash, loxerrors.ErrRuntimeDivisionByZero), "Division by zero.\n[line 5] in script", loxerrors.ErrRuntimeDivisionByZero},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.msg)
			assert.ErrorIs(t, tc.err, tc.cause)
		})
	}
}

func TestUndefinedVariableName(t *testing.T) {
	err := loxerrors.ErrRuntimeUndefinedVariableName("a")
	assert.EqualError(t, err, "Undefined variable 'a'.")
	assert.ErrorIs(t, err, loxerrors.ErrRuntimeUndefinedVariable)
}

func TestReporter(t *testing.T) {
	out := new(strings.Builder)
	r := loxerrors.NewErrReporter(out)

	r.Report(3, "", "Unexpected character.")
	r.Report(4, " at 'x'", "Expect ';' after value.")
	r.ReportError(loxerrors.NewScanError(5, loxerrors.ErrScanUnterminatedComment))

	assert.Equal(t, "[line 3] Error: Unexpected character.\n"+
		"[line 4] Error at 'x': Expect ';' after value.\n"+
		"[line 5] Error: Unterminated comment.\n", out.String())
}

func TestCollector(t *testing.T) {
	c := loxerrors.NewCollector()
	minus := token.NewTokenHeap(token.MINUS, "-", nil, 9)

	c.Report(1, "", "first")
	c.ReportError(fmt.Errorf("wrapped: %w", loxerrors.NewParseError(minus, loxerrors.ErrParseUnexpectedToken)))
	c.ReportPanic(errors.New("no position"))

	require.Len(t, c.Diagnostics, 3)
	assert.Equal(t, loxerrors.Diagnostic{Line: 1, Message: "first"}, c.Diagnostics[0])
	assert.Equal(t, loxerrors.Diagnostic{Line: 9, Where: " at '-'", Message: "Expect expression."}, c.Diagnostics[1])
	assert.Equal(t, loxerrors.Diagnostic{Line: 0, Message: "no position"}, c.Diagnostics[2])
}
