package safeprint_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/safeprint"
	"go.jacobcolvin.com/safeprint/sanitize"
	"go.jacobcolvin.com/safeprint/stringtest"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := safeprint.NewConfig()

	assert.Equal(t, "RED", cfg.LabelColor)
	assert.Equal(t, "GREEN", cfg.PrefixColor)
	assert.Equal(t, safeprint.DefaultFileLinesLimit, cfg.FileLinesLimit)
	assert.True(t, cfg.ShowTime)
	assert.False(t, cfg.Error)
	assert.Empty(t, cfg.File)
}

func TestConfig_RegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := safeprint.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	cfg.RegisterFlags(flags)

	wantFlags := []string{
		"child-process-label",
		"label-color",
		"prefix",
		"prefix-color",
		"color",
		"highlight",
		"secondary-highlight",
		"file",
		"file-lines-limit",
		"show-time",
		"error",
	}

	for _, name := range wantFlags {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, "flag %s should be registered", name)
	}
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := safeprint.NewConfig()
	cmd := &cobra.Command{Use: "test"}

	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)
}

func TestConfig_LoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	content := stringtest.Input(`
		prefix: build
		prefix_color: CYAN
		show_time: false
		file: logs/out.log
		file_lines_limit: 50
	`)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := safeprint.NewConfig()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "build", cfg.Prefix)
	assert.Equal(t, "CYAN", cfg.PrefixColor)
	assert.False(t, cfg.ShowTime)
	assert.Equal(t, "logs/out.log", cfg.File)
	assert.Equal(t, 50, cfg.FileLinesLimit)

	// Values absent from the file keep their defaults.
	assert.Equal(t, "RED", cfg.LabelColor)
}

func TestConfig_LoadFile_Missing(t *testing.T) {
	t.Parallel()

	cfg := safeprint.NewConfig()

	err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, safeprint.ErrLoadConfig)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := safeprint.NewConfig()
	cfg.Prefix = "build"
	cfg.PrefixColor = "CYAN"
	cfg.TextColor = "GREEN"
	cfg.ShowTime = false

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(sanitize.Text("hi"), cfg.Options()...)
	require.NoError(t, err)

	want := "\x1b[36m[build]\x1b[0m \x1b[32mhi\x1b[0m\n"
	assert.Equal(t, want, buf.String())
}
