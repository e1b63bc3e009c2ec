package loxerrors

import (
	"errors"
	"fmt"
	"io"
)

// Diagnostic is a single line-tagged error report.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// AsDiagnostic extracts the line-tagged report carried by err.
// Errors without position information map to line 0.
func AsDiagnostic(err error) Diagnostic {
	var d diagnostic
	if errors.As(err, &d) {
		return d.Diagnostic()
	}
	return Diagnostic{Message: fmt.Sprint(err)}
}

type ErrReporter interface {
	Report(line int, where, message string)
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// Report implements ErrReporter.
func (e *errReporter) Report(line int, where, message string) {
	fmt.Fprintln(e.w, Diagnostic{Line: line, Where: where, Message: message})
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	fmt.Fprintf(w, "%v\n", err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%v\n", err)
}

// Collector is an ErrReporter that keeps reports in memory instead of
// writing them out.
type Collector struct {
	Diagnostics []Diagnostic
}

func NewCollector() *Collector {
	return &Collector{}
}

// Report implements ErrReporter.
func (c *Collector) Report(line int, where, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Line: line, Where: where, Message: message})
}

// ReportPanic implements ErrReporter.
func (c *Collector) ReportPanic(err error) {
	c.Diagnostics = append(c.Diagnostics, AsDiagnostic(err))
}

// ReportError implements ErrReporter.
func (c *Collector) ReportError(err error) {
	c.Diagnostics = append(c.Diagnostics, AsDiagnostic(err))
}

var _ ErrReporter = (*errReporter)(nil)
var _ ErrReporter = (*Collector)(nil)
var _ fmt.Stringer = Diagnostic{}
