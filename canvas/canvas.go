package canvas

import (
	"fmt"
	"log"

	"github.com/lixenwraith/harmony-draw/pattern"
)

// Note is the result of one draw: the glyph written and the pitch to sound
type Note struct {
	Char      string
	Frequency float64
	Index     int // Cycle position the note was taken from
}

// Canvas is the drawing state: current grid, active pattern and cycle position
// Not safe for concurrent use; the engine loop owns it
type Canvas struct {
	grid     Grid
	patterns *pattern.Registry
	current  int
	cycle    int
}

// New creates an empty rows×cols canvas starting on the first pattern
func New(rows, cols int, patterns *pattern.Registry) *Canvas {
	return &Canvas{
		grid:     NewGrid(rows, cols),
		patterns: patterns,
	}
}

// Grid returns the current grid value
func (c *Canvas) Grid() Grid { return c.grid }

// Pattern returns the active pattern
func (c *Canvas) Pattern() pattern.Pattern { return c.patterns.At(c.current) }

// Patterns returns the registry the canvas cycles through
func (c *Canvas) Patterns() *pattern.Registry { return c.patterns }

// PatternIndex returns the active pattern's registry index
func (c *Canvas) PatternIndex() int { return c.current }

// Cycle returns the index of the note the next draw will use
func (c *Canvas) Cycle() int { return c.cycle }

// Draw writes the active pattern's current character at (row, col) and advances the cycle
// On error nothing changes
func (c *Canvas) Draw(row, col int) (Note, error) {
	p := c.Pattern()
	ch, freq := p.Note(c.cycle)

	next, err := c.grid.Draw(row, col, ch)
	if err != nil {
		return Note{}, err
	}

	note := Note{Char: ch, Frequency: freq, Index: c.cycle}
	c.grid = next
	c.cycle = (c.cycle + 1) % p.Len()
	return note, nil
}

// SwitchPattern activates the next pattern and resets the cycle
func (c *Canvas) SwitchPattern() pattern.Pattern {
	c.current = c.patterns.Next(c.current)
	c.cycle = 0
	p := c.Pattern()
	log.Printf("canvas: pattern -> %s", p.Name)
	return p
}

// SelectPattern activates the named pattern and resets the cycle
func (c *Canvas) SelectPattern(name string) error {
	idx := c.patterns.Index(name)
	if idx < 0 {
		return fmt.Errorf("unknown pattern %q (have %v)", name, c.patterns.Names())
	}
	c.current = idx
	c.cycle = 0
	return nil
}

// Clear empties the grid and resets the cycle
func (c *Canvas) Clear() {
	c.grid = c.grid.Clear()
	c.cycle = 0
}
