package safeprint_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/safeprint"
	"go.jacobcolvin.com/safeprint/ansistyle"
	"go.jacobcolvin.com/safeprint/sanitize"
	"go.jacobcolvin.com/safeprint/stringtest"
)

// fixedClock pins the timestamp prefix for exact-output assertions.
func fixedClock(t time.Time) safeprint.PrinterOption {
	return safeprint.WithClock(func() time.Time { return t })
}

func TestPrint_Basic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(sanitize.Text("Hello, World!"), safeprint.WithoutTimestamp())
	require.NoError(t, err)

	assert.Equal(t, "Hello, World!\n", buf.String())
}

func TestPrint_Decoration(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts []safeprint.Option
		want string
	}{
		"error forces red": {
			opts: []safeprint.Option{safeprint.WithError()},
			want: "\x1b[31mError Occurred!\x1b[0m\n",
		},
		"error overrides explicit color": {
			opts: []safeprint.Option{safeprint.WithTextColor("GREEN"), safeprint.WithError()},
			want: "\x1b[31mError Occurred!\x1b[0m\n",
		},
		"explicit text color": {
			opts: []safeprint.Option{safeprint.WithTextColor("GREEN")},
			want: "\x1b[32mError Occurred!\x1b[0m\n",
		},
		"highlight": {
			opts: []safeprint.Option{safeprint.WithHighlight()},
			want: "\x1b[30m\x1b[103mError Occurred!\x1b[0m\n",
		},
		"secondary highlight": {
			opts: []safeprint.Option{safeprint.WithSecondaryHighlight()},
			want: "\x1b[93m\x1b[40mError Occurred!\x1b[0m\n",
		},
		"both highlights nest secondary outside": {
			opts: []safeprint.Option{safeprint.WithHighlight(), safeprint.WithSecondaryHighlight()},
			want: "\x1b[93m\x1b[40m\x1b[30m\x1b[103mError Occurred!\x1b[0m\x1b[0m\n",
		},
		"color wraps outside highlight": {
			opts: []safeprint.Option{safeprint.WithHighlight(), safeprint.WithTextColor("GREEN")},
			want: "\x1b[32m\x1b[30m\x1b[103mError Occurred!\x1b[0m\x1b[0m\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := safeprint.New(&buf)

			opts := append([]safeprint.Option{safeprint.WithoutTimestamp()}, tc.opts...)

			err := p.Print(sanitize.Text("Error Occurred!"), opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrint_UnknownColorFailsFast(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(sanitize.Text("hi"),
		safeprint.WithoutTimestamp(),
		safeprint.WithTextColor("crimson"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ansistyle.ErrUnknownColor)
	assert.Empty(t, buf.String())
}

func TestPrint_TimestampPrefix(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 7, 4, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	p := safeprint.New(&buf, fixedClock(morning))

	err := p.Print(sanitize.Text("hi"))
	require.NoError(t, err)

	assert.Equal(t, "\x1b[32m[9:30 AM - 07/04/2026]\x1b[0m hi\n", buf.String())
}

func TestPrint_TimestampAfternoon(t *testing.T) {
	t.Parallel()

	afternoon := time.Date(2026, 12, 31, 23, 5, 0, 0, time.UTC)

	var buf bytes.Buffer
	p := safeprint.New(&buf, fixedClock(afternoon))

	err := p.Print(sanitize.Text("hi"))
	require.NoError(t, err)

	assert.Equal(t, "\x1b[32m[11:05 PM - 12/31/2026]\x1b[0m hi\n", buf.String())
}

func TestPrint_FullPrefixComposition(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 7, 4, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	p := safeprint.New(&buf, fixedClock(at))

	err := p.Print(sanitize.Text("hi"),
		safeprint.WithChildProcessLabel("worker"),
		safeprint.WithPrefix("build"),
	)
	require.NoError(t, err)

	want := "\x1b[32m[9:30 AM - 07/04/2026]\x1b[0m " +
		"\x1b[31m[Child worker Process]\x1b[0m " +
		"\x1b[32m[build]\x1b[0m hi\n"
	assert.Equal(t, want, buf.String())
}

func TestPrint_PrefixColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(sanitize.Text("hi"),
		safeprint.WithoutTimestamp(),
		safeprint.WithChildProcessLabel("w"),
		safeprint.WithLabelColor("YELLOW"),
		safeprint.WithPrefix("x"),
		safeprint.WithPrefixColor("CYAN"),
	)
	require.NoError(t, err)

	want := "\x1b[33m[Child w Process]\x1b[0m \x1b[36m[x]\x1b[0m hi\n"
	assert.Equal(t, want, buf.String())
}

func TestPrint_SanitizesInvalidUTF8(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(sanitize.Text("a\xff\xfeb"), safeprint.WithoutTimestamp())
	require.NoError(t, err)

	assert.Equal(t, "a b\n", buf.String())
}

func TestPrint_NilValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(nil, safeprint.WithoutTimestamp())
	require.NoError(t, err)

	assert.Equal(t, "null\n", buf.String())
}

func TestPrint_Scalars(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input sanitize.Value
		want  string
	}{
		"bool":                            {input: sanitize.Bool(true), want: "true\n"},
		"integer number":                  {input: sanitize.Number(42), want: "42\n"},
		"float number":                    {input: sanitize.Number(3.14), want: "3.14\n"},
		"large integer stays plain":       {input: sanitize.Number(1000000), want: "1000000\n"},
		"largest plain magnitude":         {input: sanitize.Number(1e20), want: "100000000000000000000\n"},
		"huge magnitude goes exponential": {input: sanitize.Number(1e21), want: "1e+21\n"},
		"tiny magnitude goes exponential": {input: sanitize.Number(1e-7), want: "1e-07\n"},
		"not a number":                    {input: sanitize.Number(math.NaN()), want: "NaN\n"},
		"infinity":                        {input: sanitize.Number(math.Inf(1)), want: "Infinity\n"},
		"null":                            {input: sanitize.Null{}, want: "null\n"},
		"bytes":                           {input: sanitize.Bytes("raw"), want: "raw\n"},
		"opaque":                          {input: sanitize.Opaque{V: 7}, want: "7\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := safeprint.New(&buf)

			err := p.Print(tc.input, safeprint.WithoutTimestamp())
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrint_NumberFormatStableAcrossNesting(t *testing.T) {
	t.Parallel()

	var top bytes.Buffer
	p := safeprint.New(&top)

	require.NoError(t, p.Print(sanitize.Number(1000000), safeprint.WithoutTimestamp()))
	assert.Equal(t, "1000000\n", top.String())

	var nested bytes.Buffer
	p = safeprint.New(&nested)

	require.NoError(t, p.Print(
		sanitize.Sequence{sanitize.Number(1000000)},
		safeprint.WithoutTimestamp(),
	))

	want := stringtest.JoinLF(
		`[`,
		`    1000000`,
		`]`,
	) + "\n"
	assert.Equal(t, want, nested.String())
}

func TestPrint_NonFiniteNumberInContainer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(
		sanitize.Mapping{{Key: "rate", Value: sanitize.Number(math.Inf(-1))}},
		safeprint.WithoutTimestamp(),
	)
	require.NoError(t, err)

	want := stringtest.JoinLF(
		`{`,
		`    "rate": "-Infinity"`,
		`}`,
	) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrint_StructuredValues(t *testing.T) {
	t.Parallel()

	value := sanitize.Mapping{
		{Key: "name", Value: sanitize.Text("café")},
		{Key: "tags", Value: sanitize.Sequence{sanitize.Text("a"), sanitize.Number(1)}},
	}

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	err := p.Print(value, safeprint.WithoutTimestamp())
	require.NoError(t, err)

	want := stringtest.JoinLF(
		`{`,
		`    "name": "café",`,
		`    "tags": [`,
		`        "a",`,
		`        1`,
		`    ]`,
		`}`,
	) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrint_LogFileStripsEscapes(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 7, 4, 9, 30, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "out.log")

	var buf bytes.Buffer
	p := safeprint.New(&buf, fixedClock(at))

	err := p.Print(sanitize.Text("boom"),
		safeprint.WithError(),
		safeprint.WithLogFile(path),
	)
	require.NoError(t, err)

	// Console keeps the escapes.
	assert.Contains(t, buf.String(), "\x1b[31m")

	// The file copy is plain text.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[9:30 AM - 07/04/2026] boom\n", string(data))
}

func TestPrint_LogFileRotation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.log")

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	for _, msg := range []string{"one", "two", "three", "four"} {
		err := p.Print(sanitize.Text(msg),
			safeprint.WithoutTimestamp(),
			safeprint.WithLogFile(path),
			safeprint.WithFileLinesLimit(3),
		)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.JoinLF("four", "three", "two") + "\n"
	assert.Equal(t, want, string(data))
}

func TestPrint_LogFileFailurePropagates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := safeprint.New(&buf)

	// The log path is a directory, so the rewrite must fail and surface.
	err := p.Print(sanitize.Text("hi"),
		safeprint.WithoutTimestamp(),
		safeprint.WithLogFile(t.TempDir()),
	)
	require.Error(t, err)

	// The console write still happened before the fault.
	assert.Equal(t, "hi\n", buf.String())
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input time.Time
		want  string
	}{
		"morning hour has no leading zero": {
			input: time.Date(2026, 7, 4, 9, 5, 0, 0, time.UTC),
			want:  "9:05 AM - 07/04/2026",
		},
		"noon": {
			input: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
			want:  "12:00 PM - 01/02/2026",
		},
		"midnight": {
			input: time.Date(2026, 1, 2, 0, 30, 0, 0, time.UTC),
			want:  "12:30 AM - 01/02/2026",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, safeprint.Timestamp(tc.input))
		})
	}
}
