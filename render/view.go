package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/harmony-draw/audio"
	"github.com/lixenwraith/harmony-draw/canvas"
	"github.com/lixenwraith/harmony-draw/constants"
	"github.com/lixenwraith/harmony-draw/pattern"
	"github.com/mattn/go-runewidth"
)

// tooSmallText replaces the title when the layout is clipped
const tooSmallText = "enlarge terminal to see the whole canvas"

// Frame is a snapshot of everything the view draws
type Frame struct {
	Grid       canvas.Grid
	Pattern    pattern.Pattern
	Cycle      int
	AudioReady bool

	ShowCursor bool
	CursorRow  int
	CursorCol  int
}

// Draw paints one full frame and shows it
func Draw(s tcell.Screen, l Layout, f Frame) {
	theme := NewTheme(f.Pattern)
	s.Fill(' ', theme.Fill)

	title := constants.TitleText
	if !l.Fits() {
		title = tooSmallText
	}
	drawCentered(s, l.ScreenWidth, l.TitleY, title, theme.Base.Bold(true))
	drawCentered(s, l.ScreenWidth, l.SubtitleY, constants.SubtitleText, theme.Subtitle)

	drawBorder(s, l, theme.Border)
	drawCells(s, l, f, theme)

	for _, b := range l.Buttons {
		drawText(s, b.X, l.ButtonsY, b.Label, theme.Button)
	}

	drawCentered(s, l.ScreenWidth, l.StatusY, StatusLine(f), theme.Base)
	drawCentered(s, l.ScreenWidth, l.HelpY, constants.HelpText, theme.Subtitle)

	s.Show()
}

// StatusLine formats pattern name, audio state and the next note
func StatusLine(f Frame) string {
	audioText := constants.AudioStatusOff
	if f.AudioReady {
		audioText = constants.AudioStatusOn
	}
	next := ""
	if f.Pattern.Len() > 0 {
		ch, hz := f.Pattern.Note(f.Cycle)
		next = fmt.Sprintf("  next %s %s", ch, audio.NoteName(hz))
	}
	return fmt.Sprintf("%s  %s%s  %d cells", f.Pattern.Name, audioText, next, f.Grid.Filled())
}

func drawBorder(s tcell.Screen, l Layout, style tcell.Style) {
	x0, y0 := l.GridX, l.GridY
	x1, y1 := x0+l.GridWidth()-1, y0+l.GridHeight()-1

	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '─', nil, style)
		s.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '│', nil, style)
		s.SetContent(x1, y, '│', nil, style)
	}
	s.SetContent(x0, y0, '┌', nil, style)
	s.SetContent(x1, y0, '┐', nil, style)
	s.SetContent(x0, y1, '└', nil, style)
	s.SetContent(x1, y1, '┘', nil, style)
}

func drawCells(s tcell.Screen, l Layout, f Frame, theme Theme) {
	for row := 0; row < f.Grid.Rows(); row++ {
		for col := 0; col < f.Grid.Cols(); col++ {
			style := theme.Base
			onCursor := f.ShowCursor && row == f.CursorRow && col == f.CursorCol
			if onCursor {
				style = theme.Cursor
			}
			x, y := l.CellOrigin(row, col)
			value := f.Grid.Cell(row, col)
			if value == "" {
				if onCursor {
					for i := 0; i < constants.CellWidth; i++ {
						s.SetContent(x+i, y, ' ', nil, style)
					}
				}
				continue
			}

			runes := []rune(value)
			s.SetContent(x, y, runes[0], runes[1:], style)
			// Pad narrow glyphs so the cursor highlight spans the whole cell
			for i := runewidth.StringWidth(value); i < constants.CellWidth; i++ {
				s.SetContent(x+i, y, ' ', nil, style)
			}
		}
	}
}

// drawText writes s at (x, y) and returns the column after the last glyph
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

func drawCentered(s tcell.Screen, width, y int, text string, style tcell.Style) {
	x := max(0, (width-runewidth.StringWidth(text))/2)
	drawText(s, x, y, text, style)
}
