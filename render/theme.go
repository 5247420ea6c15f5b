package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/harmony-draw/constants"
	"github.com/lixenwraith/harmony-draw/pattern"
	"github.com/lucasb-eyer/go-colorful"
)

// borderDim is the blend factor from base toward background for the grid border
const borderDim = 0.6

// Theme holds the styles derived from one pattern's colors
type Theme struct {
	Base     tcell.Style // Glyphs, title, status text
	Subtitle tcell.Style
	Border   tcell.Style
	Button   tcell.Style // Inverted base on background
	Cursor   tcell.Style
	Fill     tcell.Style // Background only
}

// ToTcell converts a colorful color to a tcell truecolor value
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// NewTheme builds styles from a validated pattern
func NewTheme(p pattern.Pattern) Theme {
	base, bg := p.Colors()
	fg := ToTcell(base)
	back := ToTcell(bg)

	plain := tcell.StyleDefault.Background(back)
	return Theme{
		Base:     plain.Foreground(fg),
		Subtitle: plain.Foreground(ToTcell(base.BlendLab(bg, constants.SubtitleDim))),
		Border:   plain.Foreground(ToTcell(base.BlendLab(bg, borderDim))),
		Button:   tcell.StyleDefault.Foreground(back).Background(fg).Bold(true),
		Cursor:   plain.Foreground(fg).Reverse(true),
		Fill:     plain.Foreground(fg),
	}
}
