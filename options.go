package safeprint

import "go.jacobcolvin.com/safeprint/logfile"

// DefaultFileLinesLimit bounds the log file when no explicit limit is given.
const DefaultFileLinesLimit = logfile.DefaultMaxLines

// Options holds the per-call settings of a print.
//
// The zero value is not the default configuration; construct instances
// through [Option] values passed to [Printer.Print] (the timestamp is on and
// the label colors are set unless overridden).
type Options struct {
	ChildProcessLabel  string
	LabelColor         string
	Prefix             string
	PrefixColor        string
	TextColor          string
	Highlight          bool
	SecondaryHighlight bool
	FilePath           string
	FileLinesLimit     int
	ShowTime           bool
	Error              bool
}

// Option configures a single print call.
type Option func(*Options)

func newOptions(opts []Option) Options {
	o := Options{
		LabelColor:     "RED",
		PrefixColor:    "GREEN",
		FileLinesLimit: DefaultFileLinesLimit,
		ShowTime:       true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithChildProcessLabel adds a "[Child <label> Process]" prefix segment.
func WithChildProcessLabel(label string) Option {
	return func(o *Options) {
		o.ChildProcessLabel = label
	}
}

// WithLabelColor sets the color of the child-process segment.
// The default is RED.
func WithLabelColor(name string) Option {
	return func(o *Options) {
		o.LabelColor = name
	}
}

// WithPrefix adds a bracketed custom label prefix segment.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithPrefixColor sets the color of the custom label segment.
// The default is GREEN.
func WithPrefixColor(name string) Option {
	return func(o *Options) {
		o.PrefixColor = name
	}
}

// WithTextColor sets the foreground color of the main text.
func WithTextColor(name string) Option {
	return func(o *Options) {
		o.TextColor = name
	}
}

// WithHighlight renders the text dark on a bright yellow background.
func WithHighlight() Option {
	return func(o *Options) {
		o.Highlight = true
	}
}

// WithSecondaryHighlight renders the text bright yellow on a black
// background. It combines with [WithHighlight]; the secondary wrap is the
// outer of the two.
func WithSecondaryHighlight() Option {
	return func(o *Options) {
		o.SecondaryHighlight = true
	}
}

// WithLogFile mirrors a color-stripped copy of the output into the
// newest-first log file at path.
func WithLogFile(path string) Option {
	return func(o *Options) {
		o.FilePath = path
	}
}

// WithFileLinesLimit bounds the log file to n physical lines.
// The default is [DefaultFileLinesLimit].
func WithFileLinesLimit(n int) Option {
	return func(o *Options) {
		o.FileLinesLimit = n
	}
}

// WithoutTimestamp omits the leading timestamp segment.
func WithoutTimestamp() Option {
	return func(o *Options) {
		o.ShowTime = false
	}
}

// WithError forces the text foreground to the error color (red), taking
// precedence over [WithTextColor].
func WithError() Option {
	return func(o *Options) {
		o.Error = true
	}
}
