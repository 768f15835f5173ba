package rectstream

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme is a named palette definition, loadable from a TOML file:
//
//	name = "hot"
//	colors = ["#ffffcc", "#fd8d3c", "#e31a1c", "#800026"]
type Theme struct {
	// Name identifies the theme.
	Name string `toml:"name"`

	// Colors are hex color strings ("RGB", "RGBA", "RRGGBB",
	// "RRGGBBAA", optional '#' prefix), in palette index order.
	Colors []string `toml:"colors"`
}

// Palette validates the theme's colors and builds a palette from them.
func (t Theme) Palette() (Palette, error) {
	if len(t.Colors) == 0 {
		return nil, fmt.Errorf("rectstream: theme %q has no colors", t.Name)
	}
	p := make(Palette, len(t.Colors))
	for i, s := range t.Colors {
		c, ok := parseHexColor(s)
		if !ok {
			return nil, fmt.Errorf("rectstream: theme %q: invalid color %q at index %d", t.Name, s, i)
		}
		p[i] = Solid(c)
	}
	return p, nil
}

// LoadTheme reads a TOML theme file and builds its palette.
func LoadTheme(path string) (Palette, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("rectstream: decode theme %s: %w", path, err)
	}
	p, err := t.Palette()
	if err != nil {
		return nil, err
	}
	Logger().Debug("theme loaded", "name", t.Name, "colors", p.Len())
	return p, nil
}

// ParseTheme builds a palette from TOML theme data.
func ParseTheme(data []byte) (Palette, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("rectstream: parse theme: %w", err)
	}
	return t.Palette()
}
