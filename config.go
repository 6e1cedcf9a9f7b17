package safeprint

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/safeprint/ansistyle"
)

// ErrLoadConfig indicates a config file could not be read or parsed.
var ErrLoadConfig = errors.New("load config")

// Flags holds CLI flag names for print configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ChildProcessLabel  string
	LabelColor         string
	Prefix             string
	PrefixColor        string
	TextColor          string
	Highlight          string
	SecondaryHighlight string
	File               string
	FileLinesLimit     string
	ShowTime           string
	Error              string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:          f,
		LabelColor:     "RED",
		PrefixColor:    "GREEN",
		FileLinesLimit: DefaultFileLinesLimit,
		ShowTime:       true,
	}
}

// Config holds CLI flag and config-file values for print configuration.
//
// Create instances with [NewConfig], register CLI flags with
// [Config.RegisterFlags], and optionally layer a YAML file over the defaults
// with [Config.LoadFile]. Use [Config.Options] to convert the resolved
// values into print options.
type Config struct {
	Flags Flags `yaml:"-"`

	ChildProcessLabel  string `yaml:"child_process_label"`
	LabelColor         string `yaml:"label_color"`
	Prefix             string `yaml:"prefix"`
	PrefixColor        string `yaml:"prefix_color"`
	TextColor          string `yaml:"text_color"`
	Highlight          bool   `yaml:"highlight"`
	SecondaryHighlight bool   `yaml:"secondary_highlight"`
	File               string `yaml:"file"`
	FileLinesLimit     int    `yaml:"file_lines_limit"`
	ShowTime           bool   `yaml:"show_time"`
	Error              bool   `yaml:"error"`
}

// NewConfig returns a new [Config] with default flag names and default
// values (timestamp on, RED label, GREEN prefix, 10000 file lines).
func NewConfig() *Config {
	f := Flags{
		ChildProcessLabel:  "child-process-label",
		LabelColor:         "label-color",
		Prefix:             "prefix",
		PrefixColor:        "prefix-color",
		TextColor:          "color",
		Highlight:          "highlight",
		SecondaryHighlight: "secondary-highlight",
		File:               "file",
		FileLinesLimit:     "file-lines-limit",
		ShowTime:           "show-time",
		Error:              "error",
	}

	return f.NewConfig()
}

// RegisterFlags adds print flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ChildProcessLabel, c.Flags.ChildProcessLabel, c.ChildProcessLabel,
		"child process tag rendered as [Child <label> Process]")
	flags.StringVar(&c.LabelColor, c.Flags.LabelColor, c.LabelColor,
		"color of the child process tag")
	flags.StringVar(&c.Prefix, c.Flags.Prefix, c.Prefix,
		"custom bracketed prefix label")
	flags.StringVar(&c.PrefixColor, c.Flags.PrefixColor, c.PrefixColor,
		"color of the custom prefix label")
	flags.StringVar(&c.TextColor, c.Flags.TextColor, c.TextColor,
		"foreground color of the main text")
	flags.BoolVar(&c.Highlight, c.Flags.Highlight, c.Highlight,
		"highlight the text (dark on bright yellow)")
	flags.BoolVar(&c.SecondaryHighlight, c.Flags.SecondaryHighlight, c.SecondaryHighlight,
		"secondary highlight (bright yellow on black)")
	flags.StringVar(&c.File, c.Flags.File, c.File,
		"log file path (newest line first; empty disables logging)")
	flags.IntVar(&c.FileLinesLimit, c.Flags.FileLinesLimit, c.FileLinesLimit,
		"maximum number of lines kept in the log file")
	flags.BoolVar(&c.ShowTime, c.Flags.ShowTime, c.ShowTime,
		"prefix output with the current time")
	flags.BoolVar(&c.Error, c.Flags.Error, c.Error,
		"render the text in the error color (red)")
}

// RegisterCompletions registers color-name completions for the color flags
// on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	names := ansistyle.Names()

	for _, flag := range []string{c.Flags.LabelColor, c.Flags.PrefixColor, c.Flags.TextColor} {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(names, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// LoadFile layers the YAML config file at path over the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	return nil
}

// Options converts the resolved configuration into print options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithLabelColor(c.LabelColor),
		WithPrefixColor(c.PrefixColor),
		WithFileLinesLimit(c.FileLinesLimit),
	}

	if c.ChildProcessLabel != "" {
		opts = append(opts, WithChildProcessLabel(c.ChildProcessLabel))
	}

	if c.Prefix != "" {
		opts = append(opts, WithPrefix(c.Prefix))
	}

	if c.TextColor != "" {
		opts = append(opts, WithTextColor(c.TextColor))
	}

	if c.Highlight {
		opts = append(opts, WithHighlight())
	}

	if c.SecondaryHighlight {
		opts = append(opts, WithSecondaryHighlight())
	}

	if c.File != "" {
		opts = append(opts, WithLogFile(c.File))
	}

	if !c.ShowTime {
		opts = append(opts, WithoutTimestamp())
	}

	if c.Error {
		opts = append(opts, WithError())
	}

	return opts
}
