// Package ansistyle maps color names to ANSI SGR escape sequences and wraps
// text in escape/reset pairs.
//
// The mapping is a static table validated at call time; there is no global
// "current color" state and no reflective lookup, so concurrent callers
// cannot corrupt each other's decoration. Every wrapped region is terminated
// with [Reset].
//
// Recognized names are the colorama foreground set (case-insensitive):
// BLACK, RED, GREEN, YELLOW, BLUE, MAGENTA, CYAN, WHITE, and their bright
// LIGHT<name>_EX variants. [Foreground] returns [ErrUnknownColor] for
// anything else; callers are expected to fail fast rather than default.
package ansistyle
