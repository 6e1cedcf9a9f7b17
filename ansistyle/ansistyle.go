package ansistyle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// Color is a foreground SGR escape sequence.
type Color string

// Foreground colors, standard and bright.
const (
	Black   Color = "\x1b[30m"
	Red     Color = "\x1b[31m"
	Green   Color = "\x1b[32m"
	Yellow  Color = "\x1b[33m"
	Blue    Color = "\x1b[34m"
	Magenta Color = "\x1b[35m"
	Cyan    Color = "\x1b[36m"
	White   Color = "\x1b[37m"

	LightBlackEx   Color = "\x1b[90m"
	LightRedEx     Color = "\x1b[91m"
	LightGreenEx   Color = "\x1b[92m"
	LightYellowEx  Color = "\x1b[93m"
	LightBlueEx    Color = "\x1b[94m"
	LightMagentaEx Color = "\x1b[95m"
	LightCyanEx    Color = "\x1b[96m"
	LightWhiteEx   Color = "\x1b[97m"
)

// Background is a background SGR escape sequence.
type Background string

// Background colors used by the highlight modes.
const (
	BackBlack         Background = "\x1b[40m"
	BackLightYellowEx Background = "\x1b[103m"
)

// ErrUnknownColor indicates an unrecognized color name.
var ErrUnknownColor = errors.New("unknown color")

var foregrounds = map[string]Color{
	"BLACK":   Black,
	"RED":     Red,
	"GREEN":   Green,
	"YELLOW":  Yellow,
	"BLUE":    Blue,
	"MAGENTA": Magenta,
	"CYAN":    Cyan,
	"WHITE":   White,

	"LIGHTBLACK_EX":   LightBlackEx,
	"LIGHTRED_EX":     LightRedEx,
	"LIGHTGREEN_EX":   LightGreenEx,
	"LIGHTYELLOW_EX":  LightYellowEx,
	"LIGHTBLUE_EX":    LightBlueEx,
	"LIGHTMAGENTA_EX": LightMagentaEx,
	"LIGHTCYAN_EX":    LightCyanEx,
	"LIGHTWHITE_EX":   LightWhiteEx,
}

// Foreground resolves a case-insensitive color name to its escape sequence.
// It returns [ErrUnknownColor] for names outside the static table.
func Foreground(name string) (Color, error) {
	c, ok := foregrounds[strings.ToUpper(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return c, nil
}

// Names returns all recognized foreground color names, sorted.
func Names() []string {
	names := make([]string, 0, len(foregrounds))
	for name := range foregrounds {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Wrap surrounds s with the color's escape sequence and [Reset].
func Wrap(c Color, s string) string {
	return string(c) + s + Reset
}

// Highlight renders s as dark text on a bright yellow background.
func Highlight(s string) string {
	return string(Black) + string(BackLightYellowEx) + s + Reset
}

// SecondaryHighlight renders s as bright yellow text on a black background.
func SecondaryHighlight(s string) string {
	return string(LightYellowEx) + string(BackBlack) + s + Reset
}
