package render

import (
	"github.com/lixenwraith/harmony-draw/constants"
	"github.com/mattn/go-runewidth"
)

// Action identifies a control bar button
type Action int

const (
	ActionNone Action = iota
	ActionSwitchPattern
	ActionClear
	ActionEnableAudio
)

// String returns the button label
func (a Action) String() string {
	switch a {
	case ActionSwitchPattern:
		return constants.ButtonSwitchPattern
	case ActionClear:
		return constants.ButtonClear
	case ActionEnableAudio:
		return constants.ButtonEnableAudio
	default:
		return ""
	}
}

// Button is one clickable control on the buttons row
type Button struct {
	Action Action
	Label  string // Drawn text including padding
	X      int
	Width  int
}

// Layout maps the canvas and control bar onto screen coordinates
// Recomputed on every resize, never mutated afterwards
type Layout struct {
	ScreenWidth  int
	ScreenHeight int

	Rows int
	Cols int

	// Top-left corner of the grid border
	GridX int
	GridY int

	TitleY    int
	SubtitleY int
	ButtonsY  int
	StatusY   int
	HelpY     int

	Buttons []Button
}

// NewLayout centers a rows x cols grid with header above and controls below
// Coordinates may fall off-screen on tiny terminals; drawing clips them
func NewLayout(width, height, rows, cols int) Layout {
	l := Layout{
		ScreenWidth:  width,
		ScreenHeight: height,
		Rows:         rows,
		Cols:         cols,
	}

	total := constants.HeaderHeight + rows + 2 + constants.ControlsGap + 3
	top := max(0, (height-total)/2)

	l.GridX = max(0, (width-l.GridWidth())/2)
	l.GridY = top + constants.HeaderHeight
	l.TitleY = top
	l.SubtitleY = top + 1
	l.ButtonsY = l.GridY + rows + 2 + constants.ControlsGap
	l.StatusY = l.ButtonsY + 1
	l.HelpY = l.StatusY + 1

	actions := []Action{ActionSwitchPattern, ActionClear, ActionEnableAudio}
	labels := make([]string, len(actions))
	rowWidth := 0
	for i, a := range actions {
		labels[i] = "[ " + a.String() + " ]"
		rowWidth += runewidth.StringWidth(labels[i])
	}
	rowWidth += constants.ButtonGap * (len(actions) - 1)

	x := max(0, (width-rowWidth)/2)
	for i, a := range actions {
		w := runewidth.StringWidth(labels[i])
		l.Buttons = append(l.Buttons, Button{Action: a, Label: labels[i], X: x, Width: w})
		x += w + constants.ButtonGap
	}
	return l
}

// GridWidth returns the grid width in terminal columns including the border
func (l Layout) GridWidth() int {
	return l.Cols*constants.CellWidth + 2
}

// GridHeight returns the grid height in terminal rows including the border
func (l Layout) GridHeight() int {
	return l.Rows + 2
}

// CellOrigin returns the screen position of the first column of a cell
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return l.GridX + 1 + col*constants.CellWidth, l.GridY + 1 + row
}

// CellAt hit-tests a screen position against the grid interior
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	ix := x - l.GridX - 1
	iy := y - l.GridY - 1
	if ix < 0 || iy < 0 {
		return 0, 0, false
	}
	row, col = iy, ix/constants.CellWidth
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// ButtonAt hit-tests a screen position against the control buttons
func (l Layout) ButtonAt(x, y int) Action {
	if y != l.ButtonsY {
		return ActionNone
	}
	for _, b := range l.Buttons {
		if x >= b.X && x < b.X+b.Width {
			return b.Action
		}
	}
	return ActionNone
}

// Fits reports whether the whole layout is visible on screen
func (l Layout) Fits() bool {
	return l.GridX+l.GridWidth() <= l.ScreenWidth && l.HelpY < l.ScreenHeight
}
