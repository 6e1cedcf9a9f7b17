package safeprint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.jacobcolvin.com/safeprint/sanitize"
)

// ErrRender indicates a structured value could not be serialized.
var ErrRender = errors.New("render")

// render serializes v for display: sequences, sets, and mappings become
// pretty-printed JSON with a 4-space indent and insertion-ordered keys,
// scalars their natural text representation.
func render(v sanitize.Value) (string, error) {
	switch v := v.(type) {
	case sanitize.Sequence, sanitize.Set, sanitize.Mapping:
		return renderStructured(v)

	case sanitize.Null:
		return "null", nil

	case sanitize.Bool:
		return strconv.FormatBool(bool(v)), nil

	case sanitize.Number:
		return v.String(), nil

	case sanitize.Text:
		return string(v), nil

	case sanitize.Bytes:
		return string(v), nil

	case sanitize.Opaque:
		return fmt.Sprint(v.V), nil
	}

	return fmt.Sprint(v), nil
}

func renderStructured(v sanitize.Value) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	err := enc.Encode(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
