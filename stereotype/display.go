package stereotype

import (
	"fmt"
	"strconv"
	"strings"
)

// colorVariation is the brightness offset applied by [ColorVariant] when
// shading the role/phase/subkind display color.
const colorVariation = 10

// Display resolves the deterministic display color and symbol for an
// entity, given its class stereotype and the base restrictedTo[0] datatype
// property value (empty if the entity carries none).
//
// restrictedTo[0], when present, sets an initial color from a fixed
// mapping; the stereotype-based rule then runs and may overwrite it, except
// for role/phase/subkind which instead shades whatever color is currently
// set via [ColorVariant] — so a role restricted to "relator" keeps a
// shaded relator color rather than a shaded basic color.
func Display(c Class, restrictedTo0 string, colors Colors, symbols Symbols) (color, symbol string) {
	color = colors.Basic

	switch restrictedTo0 {
	case "relator":
		color = colors.Relator
	case "event":
		color = colors.Event
	case "functional-complex":
		color = colors.Object
	case "intrinsic-mode":
		color = colors.Mode
	}

	switch {
	case c == Relator:
		color = colors.Relator
	case c == Quality || c == Mode:
		color = colors.Mode
	case c == Enumeration || c == Datatype || c == Abstract:
		color = colors.Enumeration
	case c == Event || c == Situation:
		color = colors.Event
	case c == Kind || c == Category || c == Quantity || c == Collective:
		color = colors.Object
	case c == Role || c == Phase || c == Subkind:
		color = ColorVariant(color, colorVariation)
	default:
		color = colors.Basic
	}

	switch {
	case c == Relator:
		symbol = symbols.Relator
	case c == Quality || c == Mode:
		symbol = symbols.Mode
	case c == Enumeration || c == Datatype || c == Abstract:
		symbol = symbols.Enumeration
	case c == Event || c == Situation:
		symbol = symbols.Event
	default:
		symbol = symbols.Basic
	}

	return color, symbol
}

// Colors is the display color table consulted by [Display]. It mirrors
// config.Colors without importing the config package, keeping stereotype
// free of a dependency on process configuration.
type Colors struct {
	Basic       string
	Object      string
	Relator     string
	Mode        string
	Enumeration string
	Event       string
}

// Symbols is the display symbol table consulted by [Display].
type Symbols struct {
	Basic       string
	Relator     string
	Mode        string
	Enumeration string
	Event       string
}

// ColorVariant shades a "#RRGGBB" hex color by adding brightnessOffset to
// each channel, clamped to [0, 255].
func ColorVariant(hexColor string, brightnessOffset int) string {
	if len(hexColor) != 7 || hexColor[0] != '#' {
		return hexColor
	}
	var out strings.Builder
	out.WriteByte('#')
	for _, span := range [][2]int{{1, 3}, {3, 5}, {5, 7}} {
		v, err := strconv.ParseInt(hexColor[span[0]:span[1]], 16, 32)
		if err != nil {
			return hexColor
		}
		shaded := int(v) + brightnessOffset
		if shaded < 0 {
			shaded = 0
		}
		if shaded > 255 {
			shaded = 255
		}
		fmt.Fprintf(&out, "%02X", shaded)
	}
	return out.String()
}
