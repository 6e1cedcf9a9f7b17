package safeprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/safeprint/ansistyle"
	"go.jacobcolvin.com/safeprint/logfile"
	"go.jacobcolvin.com/safeprint/sanitize"
)

// ErrConsole indicates a failed console write.
var ErrConsole = errors.New("console write")

// timestampLayout renders the hour without a leading zero; month and day
// stay zero-padded.
const timestampLayout = "3:04 PM - 01/02/2006"

// Timestamp formats t the way the timestamp prefix segment does,
// for example "9:30 AM - 07/04/2026".
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Printer writes decorated output to a fixed console writer.
//
// Create instances with [New]. The package-level [Print] and [ErrorInfo]
// use a shared Printer on [os.Stdout].
type Printer struct {
	out io.Writer
	now func() time.Time
}

// PrinterOption configures a [Printer].
type PrinterOption func(*Printer)

// WithClock overrides the clock used for the timestamp prefix segment.
// Tests use this to pin exact output.
func WithClock(now func() time.Time) PrinterOption {
	return func(p *Printer) {
		p.now = now
	}
}

// New creates a [Printer] writing to out.
func New(out io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		out: out,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var std = New(os.Stdout)

// Print sanitizes, serializes, and decorates data, then writes it to
// [os.Stdout] with exactly one trailing newline. See [Printer.Print].
func Print(data sanitize.Value, opts ...Option) error {
	return std.Print(data, opts...)
}

// ErrorInfo reports err to [os.Stdout] in the error color.
// See [Printer.ErrorInfo].
func ErrorInfo(err error, opts ...Option) error {
	return std.errorInfo(err, 2, opts)
}

// Print sanitizes data, serializes it (structured values as 4-space-indented
// JSON, scalars as their natural text), applies decoration and the composed
// prefix, and writes the result to the console in a single buffered write
// ending with exactly one newline. When a log file is configured, a
// color-stripped copy of the full line is prepended to it.
//
// Bad encoding in data can never fail the call: a sanitization fault is
// reported through this printer and the original value is printed as-is.
// Unknown color names, console write failures, and log file I/O failures are
// returned to the caller.
func (p *Printer) Print(data sanitize.Value, opts ...Option) error {
	return p.print(data, newOptions(opts))
}

func (p *Printer) print(data sanitize.Value, o Options) error {
	if data == nil {
		data = sanitize.Null{}
	}

	clean, sanErr := sanitize.Try(data)
	if sanErr != nil {
		// Degraded path: report the fault, then keep printing the
		// original value. The report is plain text and cannot fault
		// again.
		_ = p.errorInfo(sanErr, 2, nil)

		clean = data
	}

	body, err := render(clean)
	if err != nil {
		return err
	}

	if o.Highlight {
		body = ansistyle.Highlight(body)
	}

	if o.SecondaryHighlight {
		body = ansistyle.SecondaryHighlight(body)
	}

	textColor := o.TextColor
	if o.Error {
		textColor = "RED"
	}

	if textColor != "" {
		c, err := ansistyle.Foreground(textColor)
		if err != nil {
			return err
		}

		body = ansistyle.Wrap(c, body)
	}

	prefix, err := p.prefix(o)
	if err != nil {
		return err
	}

	line := prefix + body

	_, err = io.WriteString(p.out, line+"\n")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConsole, err)
	}

	if o.FilePath != "" {
		lf := logfile.New(o.FilePath, o.FileLinesLimit)

		err := lf.Prepend(ansi.Strip(line))
		if err != nil {
			return err
		}
	}

	return nil
}

// prefix composes the timestamp, child-process, and custom label segments,
// in that order, each independently colored and followed by a single space.
func (p *Printer) prefix(o Options) (string, error) {
	var sb strings.Builder

	if o.ShowTime {
		sb.WriteString(ansistyle.Wrap(ansistyle.Green, "["+Timestamp(p.now())+"]"))
		sb.WriteByte(' ')
	}

	if o.ChildProcessLabel != "" {
		c, err := ansistyle.Foreground(o.LabelColor)
		if err != nil {
			return "", err
		}

		sb.WriteString(ansistyle.Wrap(c, "[Child "+o.ChildProcessLabel+" Process]"))
		sb.WriteByte(' ')
	}

	if o.Prefix != "" {
		c, err := ansistyle.Foreground(o.PrefixColor)
		if err != nil {
			return "", err
		}

		sb.WriteString(ansistyle.Wrap(c, "["+o.Prefix+"]"))
		sb.WriteByte(' ')
	}

	return sb.String(), nil
}
