package render

import (
	"testing"

	"github.com/lixenwraith/harmony-draw/constants"
)

func TestNewLayoutCentersGrid(t *testing.T) {
	l := NewLayout(80, 40, 24, 32)

	if l.GridWidth() != 66 {
		t.Errorf("Expected grid width 66, got %d", l.GridWidth())
	}
	if l.GridX != 7 || l.GridY != 6 {
		t.Errorf("Expected grid corner (7,6), got (%d,%d)", l.GridX, l.GridY)
	}
	if l.TitleY != 3 || l.SubtitleY != 4 {
		t.Errorf("Expected header rows 3,4, got %d,%d", l.TitleY, l.SubtitleY)
	}
	if l.ButtonsY != 33 || l.StatusY != 34 || l.HelpY != 35 {
		t.Errorf("Expected control rows 33,34,35, got %d,%d,%d", l.ButtonsY, l.StatusY, l.HelpY)
	}
	if !l.Fits() {
		t.Error("Expected layout to fit 80x40")
	}
}

func TestLayoutTooSmall(t *testing.T) {
	l := NewLayout(20, 10, 24, 32)
	if l.Fits() {
		t.Error("Expected layout not to fit 20x10")
	}
	if l.GridX != 0 || l.TitleY != 0 {
		t.Errorf("Expected clipped layout anchored at origin, got grid x %d title y %d", l.GridX, l.TitleY)
	}
}

func TestCellAt(t *testing.T) {
	l := NewLayout(80, 40, 24, 32)

	tests := []struct {
		name    string
		x, y    int
		wantRow int
		wantCol int
		wantOK  bool
	}{
		{"first cell left column", 8, 7, 0, 0, true},
		{"first cell right column", 9, 7, 0, 0, true},
		{"second cell", 10, 7, 0, 1, true},
		{"last column", 71, 7, 0, 31, true},
		{"last row", 8, 30, 23, 0, true},
		{"left border", 7, 7, 0, 0, false},
		{"top border", 8, 6, 0, 0, false},
		{"right border", 72, 7, 0, 0, false},
		{"bottom border", 8, 31, 0, 0, false},
		{"header", 40, 3, 0, 0, false},
		{"buttons row", 20, 33, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := l.CellAt(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v at (%d,%d), got %v", tt.wantOK, tt.x, tt.y, ok)
			}
			if ok && (row != tt.wantRow || col != tt.wantCol) {
				t.Errorf("Expected cell (%d,%d), got (%d,%d)", tt.wantRow, tt.wantCol, row, col)
			}
		})
	}
}

func TestCellOriginRoundTrip(t *testing.T) {
	l := NewLayout(100, 50, 24, 32)

	for row := 0; row < 24; row++ {
		for col := 0; col < 32; col++ {
			x, y := l.CellOrigin(row, col)
			for dx := 0; dx < constants.CellWidth; dx++ {
				r, c, ok := l.CellAt(x+dx, y)
				if !ok || r != row || c != col {
					t.Fatalf("Expected (%d,%d) at origin+%d, got (%d,%d) ok=%v", row, col, dx, r, c, ok)
				}
			}
		}
	}
}

func TestButtonAt(t *testing.T) {
	l := NewLayout(80, 40, 24, 32)

	if len(l.Buttons) != 3 {
		t.Fatalf("Expected 3 buttons, got %d", len(l.Buttons))
	}

	tests := []struct {
		name string
		x, y int
		want Action
	}{
		{"switch left edge", 16, 33, ActionSwitchPattern},
		{"switch right edge", 33, 33, ActionSwitchPattern},
		{"gap after switch", 34, 33, ActionNone},
		{"clear", 36, 33, ActionClear},
		{"enable audio left edge", 47, 33, ActionEnableAudio},
		{"enable audio right edge", 62, 33, ActionEnableAudio},
		{"past last button", 63, 33, ActionNone},
		{"status row", 16, 34, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ButtonAt(tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %v at (%d,%d), got %v", tt.want, tt.x, tt.y, got)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionSwitchPattern.String() != constants.ButtonSwitchPattern {
		t.Errorf("Expected %q, got %q", constants.ButtonSwitchPattern, ActionSwitchPattern.String())
	}
	if ActionNone.String() != "" {
		t.Errorf("Expected empty label for ActionNone, got %q", ActionNone.String())
	}
}
