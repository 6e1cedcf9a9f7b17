package safeprint

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"go.jacobcolvin.com/safeprint/sanitize"
)

// noContextDiagnostic is printed when ErrorInfo is called without an error.
const noContextDiagnostic = "No active exception to retrieve context from. " +
	"This function should be called within an error-handling scope."

// ErrorInfo prints a report for err in the error color: the line number of
// the reporting call site, the error message, and a full stack trace. Log
// file options are honored the same way as [Printer.Print].
//
// Call it from the scope handling the error, so the reported line points at
// the handler. A nil err is not a fault: it prints a fixed diagnostic
// explaining that no error context was available.
func (p *Printer) ErrorInfo(err error, opts ...Option) error {
	return p.errorInfo(err, 2, opts)
}

// errorInfo builds and prints the report. skip is the number of stack frames
// between runtime.Caller and the reporting scope.
func (p *Printer) errorInfo(err error, skip int, opts []Option) error {
	o := newOptions(opts)
	o.Error = true

	if err == nil {
		return p.print(sanitize.Text(noContextDiagnostic), o)
	}

	_, _, line, ok := runtime.Caller(skip)
	if !ok {
		line = 0
	}

	report := fmt.Sprintf(
		"Line #: %d causes the error. Error message: %s\nTraceback:\n%s",
		line, err, debug.Stack(),
	)

	return p.print(sanitize.Text(report), o)
}
