// Package sanitize repairs invalid UTF-8 anywhere inside an arbitrary value
// graph, so the result is guaranteed to be printable text.
//
// Values are modeled as a closed union over [Null], [Bool], [Number], [Text],
// [Bytes], [Sequence], [Set], [Mapping], and [Opaque]. [Sanitize] walks the
// union structurally: text leaves have every invalid byte span replaced with
// a replacement character (a space by default), byte sequences are decoded to
// text with the same repair, and containers are rebuilt with every element
// sanitized. Opaque values pass through untouched; their internal fields are
// deliberately not introspected.
//
// [Sanitize] is total. If an internal fault interrupts the walk, the original
// value is returned unchanged; use [Try] to observe the fault instead of
// absorbing it:
//
//	clean, err := sanitize.Try(v)
//	if err != nil {
//	    // clean == v, degraded but usable
//	}
//
// Structured values ([Sequence], [Set], [Mapping]) marshal to JSON with
// insertion order preserved, and [DecodeJSON] decodes JSON documents into the
// union without losing object key order.
package sanitize
