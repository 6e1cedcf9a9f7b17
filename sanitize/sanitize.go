package sanitize

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultReplacement is substituted for invalid byte spans unless
// [WithReplacement] overrides it.
const DefaultReplacement = " "

// ErrFault indicates that an internal fault interrupted sanitization.
var ErrFault = errors.New("sanitize fault")

// Option configures a sanitization pass.
type Option func(*sanitizer)

// WithReplacement sets the text substituted for each invalid byte span.
func WithReplacement(r string) Option {
	return func(s *sanitizer) {
		s.replacement = r
	}
}

type sanitizer struct {
	replacement string
}

// Sanitize returns v with every text-bearing leaf repaired to valid UTF-8.
//
// It is total: it never fails and never panics. If an internal fault occurs
// mid-walk, the original value is returned unchanged as a degraded but
// non-fatal result. Callers who need to observe that fault should use [Try].
func Sanitize(v Value, opts ...Option) Value {
	out, err := Try(v, opts...)
	if err != nil {
		return v
	}

	return out
}

// Try sanitizes v and reports any internal fault instead of absorbing it.
// On fault the original value is returned alongside an error wrapping
// [ErrFault].
func Try(v Value, opts ...Option) (out Value, err error) {
	s := &sanitizer{replacement: DefaultReplacement}
	for _, opt := range opts {
		opt(s)
	}

	defer func() {
		if r := recover(); r != nil {
			out = v
			err = fmt.Errorf("%w: %v", ErrFault, r)
		}
	}()

	return s.value(v), nil
}

func (s *sanitizer) value(v Value) Value {
	switch v := v.(type) {
	case Text:
		return Text(s.text(string(v)))

	case Bytes:
		return Text(s.text(string(v)))

	case Sequence:
		out := make(Sequence, 0, len(v))
		for _, elem := range v {
			out = append(out, s.value(elem))
		}

		return out

	case Set:
		out := make(Set, 0, len(v))
		seen := make(map[string]struct{}, len(v))

		for _, elem := range v {
			clean := s.value(elem)

			key := canonical(clean)
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			out = append(out, clean)
		}

		return out

	case Mapping:
		out := make(Mapping, 0, len(v))
		for _, e := range v {
			out = append(out, Entry{Key: e.Key, Value: s.value(e.Value)})
		}

		return out
	}

	// Null, Bool, Number, Opaque, and a nil interface carry no reachable
	// text and pass through unchanged.
	return v
}

// text replaces every maximal invalid byte span in t with the replacement,
// and substitutes the replacement for any U+FFFD already present, so no
// replacement-character artifact survives.
func (s *sanitizer) text(t string) string {
	if utf8.ValidString(t) && !strings.ContainsRune(t, utf8.RuneError) {
		return t
	}

	clean := strings.ToValidUTF8(t, s.replacement)

	return strings.ReplaceAll(clean, string(utf8.RuneError), s.replacement)
}
