// Package main provides the CLI entry point for safeprint, a tool that
// prints arbitrary data safely with colored formatting and optional
// newest-first file logging.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"go.jacobcolvin.com/safeprint"
	xlog "go.jacobcolvin.com/safeprint/log"
	"go.jacobcolvin.com/safeprint/sanitize"
	"go.jacobcolvin.com/safeprint/version"
)

// ErrNoInput indicates that neither arguments nor piped stdin were provided.
var ErrNoInput = errors.New("no input: pass text as arguments or pipe it to stdin")

func main() {
	cfg := safeprint.NewConfig()
	logCfg := xlog.NewConfig()

	var (
		configPath string
		jsonInput  bool
	)

	rootCmd := &cobra.Command{
		Use:   "safeprint [flags] [text ...]",
		Short: "Print data safely with colored formatting and optional file logging",
		Long: `safeprint converts arbitrary, possibly malformed input into safely printable
text: invalid UTF-8 is repaired, structured data is pretty-printed, and the
output can be colorized, prefixed, and mirrored into a bounded newest-first
log file.`,
		Version:       version.Info(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, configPath, jsonInput, args)
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	cfg.RegisterFlags(rootCmd.Flags())

	rootCmd.Flags().StringVar(&configPath, "config", "",
		"YAML config file with default print settings")
	rootCmd.Flags().BoolVar(&jsonInput, "json", false,
		"parse the input as a JSON document and pretty-print it")

	completionErr := errors.Join(
		cfg.RegisterCompletions(rootCmd),
		logCfg.RegisterCompletions(rootCmd),
	)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(newTailCmd(), newSchemaCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *safeprint.Config, configPath string, jsonInput bool, args []string) error {
	if configPath != "" {
		fileCfg := safeprint.NewConfig()

		err := fileCfg.LoadFile(configPath)
		if err != nil {
			return err
		}

		applyConfigFile(cmd.Flags(), cfg, fileCfg)
		slog.Debug("loaded config file", "path", configPath)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var data sanitize.Value = sanitize.Text(text)

	if jsonInput {
		data, err = sanitize.DecodeJSON(strings.NewReader(text))
		if err != nil {
			return err
		}
	}

	return safeprint.Print(data, cfg.Options()...)
}

// readInput joins the arguments, or reads stdin when nothing was passed and
// stdin is a pipe rather than a terminal.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", ErrNoInput
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSuffix(string(data), "\n"), nil
}

// applyConfigFile copies file values into cfg for every flag the user did
// not set explicitly, so command-line flags take precedence over the file.
func applyConfigFile(flags *pflag.FlagSet, cfg, file *safeprint.Config) {
	if !flags.Changed(cfg.Flags.ChildProcessLabel) {
		cfg.ChildProcessLabel = file.ChildProcessLabel
	}

	if !flags.Changed(cfg.Flags.LabelColor) {
		cfg.LabelColor = file.LabelColor
	}

	if !flags.Changed(cfg.Flags.Prefix) {
		cfg.Prefix = file.Prefix
	}

	if !flags.Changed(cfg.Flags.PrefixColor) {
		cfg.PrefixColor = file.PrefixColor
	}

	if !flags.Changed(cfg.Flags.TextColor) {
		cfg.TextColor = file.TextColor
	}

	if !flags.Changed(cfg.Flags.Highlight) {
		cfg.Highlight = file.Highlight
	}

	if !flags.Changed(cfg.Flags.SecondaryHighlight) {
		cfg.SecondaryHighlight = file.SecondaryHighlight
	}

	if !flags.Changed(cfg.Flags.File) {
		cfg.File = file.File
	}

	if !flags.Changed(cfg.Flags.FileLinesLimit) {
		cfg.FileLinesLimit = file.FileLinesLimit
	}

	if !flags.Changed(cfg.Flags.ShowTime) {
		cfg.ShowTime = file.ShowTime
	}

	if !flags.Changed(cfg.Flags.Error) {
		cfg.Error = file.Error
	}
}
