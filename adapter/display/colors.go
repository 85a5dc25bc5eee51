package display

import (
	"fmt"
	"strconv"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/ontology"
	"github.com/ontoverse/ontoforge/stereotype"
)

// colorAndSymbol derives an entity's display fill color and symbol per the
// deterministic color/symbol table (spec §6): restrictedTo[0] picks a base
// color first, the stereotype chain that follows then overrides it for
// every group except role/phase/subkind, which instead shades whatever
// base color restrictedTo (or the object color by default) already produced
// (entity.py's _set_colour/_set_symbol_type).
func colorAndSymbol(e *ontology.Entity, cfg *config.Config) (color, symbol string) {
	colors := cfg.Colors()
	symbols := cfg.Symbols()

	color = colors.Object
	if len(e.RestrictedTo) > 0 {
		switch e.RestrictedTo[0] {
		case "relator":
			color = colors.Relator
		case "event":
			color = colors.Event
		case "functional-complex":
			color = colors.Object
		case "intrinsic-mode":
			color = colors.Mode
		}
	}

	switch e.Stereotype {
	case stereotype.Relator:
		color, symbol = colors.Relator, symbols.Relator
	case stereotype.Quality, stereotype.Mode:
		color, symbol = colors.Mode, symbols.Mode
	case stereotype.Enumeration, stereotype.Datatype, stereotype.Abstract:
		color, symbol = colors.Enumeration, symbols.Enumeration
	case stereotype.Event, stereotype.Situation:
		color, symbol = colors.Event, symbols.Event
	case stereotype.Kind, stereotype.Category, stereotype.Quantity, stereotype.Collective:
		color, symbol = colors.Object, symbols.Basic
	case stereotype.Role, stereotype.Phase, stereotype.Subkind:
		color, symbol = colorVariant(color, cfg.ColorVariation()), symbols.Basic
	default:
		color, symbol = colors.Basic, symbols.Basic
	}

	return color, symbol
}

// colorVariant shifts every RGB channel of a "#RRGGBB" color by offset,
// clamped to [0, 255], producing the shaded fill used for role/phase/
// subkind entities (expose/project/__init__.py's color_variant).
func colorVariant(hexColor string, offset int) string {
	if len(hexColor) != 7 || hexColor[0] != '#' {
		return hexColor
	}
	out := "#"
	for _, span := range [][2]int{{1, 3}, {3, 5}, {5, 7}} {
		channel, err := strconv.ParseInt(hexColor[span[0]:span[1]], 16, 0)
		if err != nil {
			return hexColor
		}
		shifted := int(channel) + offset
		if shifted < 0 {
			shifted = 0
		}
		if shifted > 255 {
			shifted = 255
		}
		out += fmt.Sprintf("%02X", shifted)
	}
	return out
}
