package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxLines bounds a [Log] when no explicit limit is given.
const DefaultMaxLines = 10000

// Sentinel errors returned by [Log] operations.
var (
	ErrRead  = errors.New("read log")
	ErrWrite = errors.New("write log")
)

// Log is a newest-first bounded log file at a fixed path.
//
// The zero value is not usable; create instances with [New].
type Log struct {
	path     string
	maxLines int
}

// New creates a [Log] at path bounded to maxLines physical lines.
// A maxLines of zero or less falls back to [DefaultMaxLines]. No file is
// touched until the first [Log.Prepend].
func New(path string, maxLines int) *Log {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	return &Log{
		path:     path,
		maxLines: maxLines,
	}
}

// Path returns the file path the log writes to.
func (l *Log) Path() string {
	return l.path
}

// Prepend inserts message at the front of the file and truncates the stored
// content to the line limit, creating the file and any missing parent
// directories first. The file is rewritten in full; filesystem failures are
// wrapped with [ErrRead] or [ErrWrite].
func (l *Log) Prepend(message string) error {
	dir := filepath.Dir(l.path)
	if dir != "" && dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	lines, err := l.readLines()
	if err != nil {
		return err
	}

	lines = append([]string{message + "\n"}, lines...)
	if len(lines) > l.maxLines {
		lines = lines[:l.maxLines]
	}

	err = os.WriteFile(l.path, []byte(strings.Join(lines, "")), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Lines returns the stored physical lines, newest first, without trailing
// newlines. A missing file reads as empty.
func (l *Log) Lines() ([]string, error) {
	raw, err := l.readLines()
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}

	return lines, nil
}

// readLines reads the file split into newline-terminated segments, matching
// how the next rewrite joins them back.
func (l *Log) readLines() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
