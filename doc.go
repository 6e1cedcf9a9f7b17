// Package safeprint writes arbitrary values to a console safely: input is
// sanitized to valid UTF-8, serialized, decorated with ANSI color and
// highlight escapes, prefixed with an optional timestamp and labels, and
// optionally mirrored (color-stripped) into a bounded newest-first log file.
//
// A print call never fails because of bad input encoding; that class of
// fault is absorbed by [go.jacobcolvin.com/safeprint/sanitize]. Filesystem
// and console write failures do propagate, since silently losing the log
// would defeat its purpose.
//
// The package-level functions write to [os.Stdout]:
//
//	err := safeprint.Print(sanitize.Text("Hello, World!"),
//	    safeprint.WithPrefix("worker"),
//	    safeprint.WithLogFile("logs/app.log"),
//	)
//
// A [Printer] binds the output writer and clock, which tests use to capture
// exact output:
//
//	var buf bytes.Buffer
//	p := safeprint.New(&buf)
//	err := p.Print(sanitize.Text("hi"), safeprint.WithoutTimestamp())
//
// [Printer.ErrorInfo] formats an error with its reporting call site and a
// stack trace, forcing the error color; a nil error takes the defined
// "no active exception" diagnostic branch.
//
// Console and log file are shared, unsynchronized resources: each call
// performs one buffered console write and one full read-modify-rewrite of
// the log file, with no cross-call caching and no locking.
package safeprint
