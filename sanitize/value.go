package sanitize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Value is the closed union of inputs accepted by the pipeline.
//
// The concrete variants are [Null], [Bool], [Number], [Text], [Bytes],
// [Sequence], [Set], [Mapping], and [Opaque]. No other implementations
// exist.
type Value interface {
	isValue()
}

// Null is the absent value. It renders as "null".
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Number is a numeric value.
type Number float64

// Text is a string value. It may contain invalid UTF-8 until sanitized.
type Text string

// Bytes is a raw byte sequence. Sanitization decodes it to [Text] with
// invalid-byte replacement; it never survives into output as bytes.
type Bytes []byte

// Sequence is an ordered sequence of values.
type Sequence []Value

// Set is a collection of unique values. Element order is not significant;
// reconstruction after sanitization may coalesce elements that become equal.
type Set []Value

// Mapping is a keyed mapping with insertion order preserved for display.
type Mapping []Entry

// Entry is a single key/value pair of a [Mapping].
type Entry struct {
	Key   string
	Value Value
}

// Opaque wraps a value whose internals this package does not inspect.
// Sanitization is a no-op for it: text fields inside V are not reachable, and
// that scope limit is deliberate.
type Opaque struct {
	V any
}

// String renders the number in its natural text form: plain digits until the
// magnitude leaves [1e-6, 1e21), matching the JSON encoding of a float64, with
// NaN, Infinity, and -Infinity spelled out.
func (n Number) String() string {
	f := float64(n)

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	format := byte('f')

	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	return strconv.FormatFloat(f, format, -1, 64)
}

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Number) isValue()   {}
func (Text) isValue()     {}
func (Bytes) isValue()    {}
func (Sequence) isValue() {}
func (Set) isValue()      {}
func (Mapping) isValue()  {}
func (Opaque) isValue()   {}

// FromAny converts an ordinary Go value into the [Value] union.
//
// Maps are keyed by string and sorted for determinism, so callers who care
// about display order should construct a [Mapping] directly. Values that are
// none of the supported kinds become [Opaque].
func FromAny(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case bool:
		return Bool(v)
	case int:
		return Number(v)
	case int8:
		return Number(v)
	case int16:
		return Number(v)
	case int32:
		return Number(v)
	case int64:
		return Number(v)
	case uint:
		return Number(v)
	case uint8:
		return Number(v)
	case uint16:
		return Number(v)
	case uint32:
		return Number(v)
	case uint64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	case string:
		return Text(v)
	case []byte:
		return Bytes(v)
	case []any:
		seq := make(Sequence, 0, len(v))
		for _, elem := range v {
			seq = append(seq, FromAny(elem))
		}

		return seq
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		m := make(Mapping, 0, len(keys))
		for _, k := range keys {
			m = append(m, Entry{Key: k, Value: FromAny(v[k])})
		}

		return m
	}

	return Opaque{V: v}
}

// canonical returns a stable textual identity for v, used to detect [Set]
// element collisions after sanitization.
func canonical(v Value) string {
	switch v := v.(type) {
	case nil, Null:
		return "null"
	case Opaque:
		return fmt.Sprintf("opaque:%T:%v", v.V, v.V)
	}

	b, err := marshalNoEscape(v)
	if err != nil {
		return fmt.Sprintf("unmarshalable:%v", v)
	}

	return string(b)
}
