package session

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// ErrInvalidPalette is returned when a kid's colors cannot be parsed.
var ErrInvalidPalette = errors.New("invalid palette")

// PaletteSpec is a kid palette as authored: CSS color strings.
type PaletteSpec struct {
	Legs, Torso, Skin, Hair string
	LongHair                bool
}

// ParsePalette converts authored colors.
func ParsePalette(spec PaletteSpec) (Palette, error) {
	var (
		p   = Palette{LongHair: spec.LongHair}
		err error
	)
	parts := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"legs", spec.Legs, &p.Legs},
		{"torso", spec.Torso, &p.Torso},
		{"skin", spec.Skin, &p.Skin},
		{"hair", spec.Hair, &p.Hair},
	}
	for _, part := range parts {
		if *part.dst, err = parseColor(part.src); err != nil {
			return Palette{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidPalette, part.name, part.src, err)
		}
	}
	return p, nil
}

func parseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// LoadPalettes parses a palette for every kid in specs.
func (s *State) LoadPalettes(specs map[KidID]PaletteSpec) error {
	for k, spec := range specs {
		p, err := ParsePalette(spec)
		if err != nil {
			return fmt.Errorf("kid %s: %w", k, err)
		}
		s.KidColors[k] = p
	}
	return nil
}
