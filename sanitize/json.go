package sanitize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrDecode indicates a malformed JSON document passed to [DecodeJSON].
var ErrDecode = errors.New("decode json")

// marshalNoEscape marshals v without HTML escaping, matching the display
// policy of the whole package: non-ASCII text is emitted as-is.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON renders the null literal.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON renders the number in its [Number.String] form, so a value
// prints the same inside a container as it does at top level. Non-finite
// values have no JSON number form and become strings, keeping a document
// holding a NaN or an infinity printable.
func (n Number) MarshalJSON() ([]byte, error) {
	if f := float64(n); math.IsNaN(f) || math.IsInf(f, 0) {
		return marshalNoEscape(n.String())
	}

	return []byte(n.String()), nil
}

// MarshalJSON renders the text as a JSON string without HTML escaping.
func (t Text) MarshalJSON() ([]byte, error) {
	return marshalNoEscape(string(t))
}

// MarshalJSON renders the bytes as a JSON string rather than base64. Invalid
// UTF-8 should already have been repaired by [Sanitize]; anything left is
// subject to the encoder's own replacement.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return marshalNoEscape(string(b))
}

// MarshalJSON renders the sequence as a JSON array.
func (s Sequence) MarshalJSON() ([]byte, error) {
	return marshalNoEscape([]Value(s))
}

// MarshalJSON renders the set as a JSON array in element order.
func (s Set) MarshalJSON() ([]byte, error) {
	return marshalNoEscape([]Value(s))
}

// MarshalJSON renders the mapping as a JSON object with keys in insertion
// order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalNoEscape(e.Key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		val := e.Value
		if val == nil {
			val = Null{}
		}

		elem, err := marshalNoEscape(val)
		if err != nil {
			return nil, err
		}

		buf.Write(elem)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON renders the wrapped value with the encoding/json defaults.
// Values the encoder cannot represent fall back to their fmt rendering as a
// JSON string.
func (o Opaque) MarshalJSON() ([]byte, error) {
	b, err := marshalNoEscape(o.V)
	if err != nil {
		return marshalNoEscape(fmt.Sprint(o.V))
	}

	return b, nil
}

// DecodeJSON decodes a single JSON document from r into the [Value] union.
// Object keys keep their document order, which [json.Unmarshal] into a map
// would lose.
func DecodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}

		return nil, fmt.Errorf("unexpected delimiter %q", tok.String())

	case string:
		return Text(tok), nil

	case json.Number:
		f, err := tok.Float64()
		if err != nil {
			return nil, err
		}

		return Number(f), nil

	case bool:
		return Bool(tok), nil

	case nil:
		return Null{}, nil
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	seq := Sequence{}

	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		seq = append(seq, elem)
	}

	// Consume the closing bracket.
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return seq, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	m := Mapping{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		m = append(m, Entry{Key: key, Value: val})
	}

	// Consume the closing brace.
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return m, nil
}
