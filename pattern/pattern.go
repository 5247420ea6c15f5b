// Package pattern defines the drawable note palettes and the ordered registry they are cycled from.
package pattern

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/harmony-draw/constants"
)

// Sentinel errors
var (
	ErrEmptyPattern   = errors.New("pattern has no notes")
	ErrLengthMismatch = errors.New("characters and frequencies differ in length")
	ErrNoPatterns     = errors.New("registry needs at least one pattern")
	ErrInvalidGlyph   = errors.New("character must be one visible glyph that fits a cell")
)

// Pattern is a themed bundle of drawable characters, their pitches and display colors
// Characters[i] sounds at Frequencies[i]
type Pattern struct {
	Name            string    `toml:"name"`
	Characters      []string  `toml:"characters"`
	Frequencies     []float64 `toml:"frequencies"`
	BaseColor       string    `toml:"base_color"`       // #rrggbb, glyph foreground
	BackgroundColor string    `toml:"background_color"` // #rrggbb, screen background
}

// Len returns the number of notes in the pattern
func (p Pattern) Len() int {
	return len(p.Characters)
}

// Note returns the character and frequency at cycle index i
// Caller keeps i in [0, Len())
func (p Pattern) Note(i int) (string, float64) {
	return p.Characters[i], p.Frequencies[i]
}

// Validate checks the pairing invariant and that both theme colors parse
func (p Pattern) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pattern: missing name")
	}
	if len(p.Characters) == 0 {
		return fmt.Errorf("pattern %q: %w", p.Name, ErrEmptyPattern)
	}
	if len(p.Characters) != len(p.Frequencies) {
		return fmt.Errorf("pattern %q: %w (%d characters, %d frequencies)",
			p.Name, ErrLengthMismatch, len(p.Characters), len(p.Frequencies))
	}
	for i, ch := range p.Characters {
		if err := validateGlyph(ch); err != nil {
			return fmt.Errorf("pattern %q: character %d %q: %w", p.Name, i, ch, err)
		}
	}
	for i, f := range p.Frequencies {
		if f <= 0 {
			return fmt.Errorf("pattern %q: frequency %d must be positive, got %g", p.Name, i, f)
		}
	}
	if _, err := colorful.Hex(p.BaseColor); err != nil {
		return fmt.Errorf("pattern %q: base color: %w", p.Name, err)
	}
	if _, err := colorful.Hex(p.BackgroundColor); err != nil {
		return fmt.Errorf("pattern %q: background color: %w", p.Name, err)
	}
	return nil
}

// validateGlyph accepts exactly one grapheme cluster no wider than a grid cell
func validateGlyph(ch string) error {
	if uniseg.GraphemeClusterCount(ch) != 1 {
		return ErrInvalidGlyph
	}
	if w := runewidth.StringWidth(ch); w < 1 || w > constants.CellWidth {
		return ErrInvalidGlyph
	}
	return nil
}

// Colors returns the parsed base and background colors
// Invalid hex falls back to white on black; registry construction rejects those anyway
func (p Pattern) Colors() (base, background colorful.Color) {
	base, err := colorful.Hex(p.BaseColor)
	if err != nil {
		base = colorful.Color{R: 1, G: 1, B: 1}
	}
	background, err = colorful.Hex(p.BackgroundColor)
	if err != nil {
		background = colorful.Color{}
	}
	return base, background
}
