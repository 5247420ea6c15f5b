package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/harmony-draw/audio"
	"github.com/lixenwraith/harmony-draw/canvas"
	"github.com/lixenwraith/harmony-draw/constants"
	"github.com/lixenwraith/harmony-draw/core"
	"github.com/lixenwraith/harmony-draw/render"
)

// eventBuffer is the capacity of the poller to loop channel
const eventBuffer = 64

// audioCheck is posted as an interrupt payload to refresh the audio-ready flag
type audioCheck struct{}

// gesture tracks one press, drag, release sequence
type gesture struct {
	active     bool
	drawing    bool // Press landed on the grid; otherwise drags are ignored
	inCell     bool // Last drawn cell is valid
	row, col   int
	audioTried bool // Initialize already attempted in this gesture
}

// cursor is the keyboard drawing position
type cursor struct {
	visible  bool
	row, col int
}

// Session turns terminal events into canvas and tone player operations
// All state is owned by the goroutine running Run; timers post events instead of mutating
type Session struct {
	screen tcell.Screen
	canvas *canvas.Canvas
	player audio.TonePlayer
	layout render.Layout

	audioReady bool
	gesture    gesture
	cursor     cursor
	settle     *time.Timer
}

// NewSession wires a screen, canvas and player together
func NewSession(screen tcell.Screen, c *canvas.Canvas, player audio.TonePlayer) *Session {
	s := &Session{
		screen: screen,
		canvas: c,
		player: player,
	}
	s.relayout()
	return s
}

// Canvas returns the drawing state
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// Layout returns the current screen layout
func (s *Session) Layout() render.Layout { return s.layout }

// AudioReady returns the UI-visible audio flag, refreshed by polling
func (s *Session) AudioReady() bool { return s.audioReady }

// Run processes events until quit is requested or ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() { s.pollEvents(events, done) })

	ticker := time.NewTicker(constants.AudioPollInterval)
	defer ticker.Stop()
	defer s.stopSettle()

	s.Render()
	for {
		select {
		case <-ctx.Done():
			log.Printf("session: %v", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.HandleEvent(ev) {
				return nil
			}
			s.Render()

		case <-ticker.C:
			if s.refreshAudio() {
				s.Render()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or the loop exits
func (s *Session) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one event; returns false when the user quits
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.relayout()
	case *tcell.EventFocus:
		if !ev.Focused {
			s.player.Suspend()
			s.refreshAudio()
		}
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(audioCheck); ok {
			s.refreshAudio()
		}
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return true
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		s.gesture = gesture{}
		return
	}

	if !s.gesture.active {
		s.gesture = gesture{active: true}
		if a := s.layout.ButtonAt(x, y); a != render.ActionNone {
			s.runAction(a)
			return
		}
		if row, col, ok := s.layout.CellAt(x, y); ok {
			s.gesture.drawing = true
			s.InteractionStart()
			s.drawGestureCell(row, col)
		}
		return
	}

	if !s.gesture.drawing {
		return
	}
	row, col, ok := s.layout.CellAt(x, y)
	if !ok {
		return
	}
	// Motion inside the same cell repeats; only entering a new cell draws
	if s.gesture.inCell && row == s.gesture.row && col == s.gesture.col {
		return
	}
	s.drawGestureCell(row, col)
}

func (s *Session) drawGestureCell(row, col int) {
	s.gesture.inCell = true
	s.gesture.row, s.gesture.col = row, col
	s.DrawCell(row, col)
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		s.runAction(render.ActionSwitchPattern)
	case tcell.KeyEnter:
		s.drawAtCursor()
	case tcell.KeyUp:
		s.moveCursor(-1, 0)
	case tcell.KeyDown:
		s.moveCursor(1, 0)
	case tcell.KeyLeft:
		s.moveCursor(0, -1)
	case tcell.KeyRight:
		s.moveCursor(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			s.runAction(render.ActionSwitchPattern)
		case 'c':
			s.runAction(render.ActionClear)
		case 'a':
			s.gesture = gesture{}
			s.runAction(render.ActionEnableAudio)
		case ' ':
			s.drawAtCursor()
		}
	}
	return true
}

func (s *Session) runAction(a render.Action) {
	switch a {
	case render.ActionSwitchPattern:
		s.SwitchPattern()
	case render.ActionClear:
		s.Clear()
	case render.ActionEnableAudio:
		s.InteractionStart()
	}
}

func (s *Session) moveCursor(dRow, dCol int) {
	grid := s.canvas.Grid()
	if !s.cursor.visible {
		s.cursor.visible = true
		return
	}
	s.cursor.row = min(max(s.cursor.row+dRow, 0), grid.Rows()-1)
	s.cursor.col = min(max(s.cursor.col+dCol, 0), grid.Cols()-1)
}

// drawAtCursor is a one-cell gesture from the keyboard
func (s *Session) drawAtCursor() {
	s.cursor.visible = true
	s.gesture = gesture{}
	s.InteractionStart()
	s.DrawCell(s.cursor.row, s.cursor.col)
	s.gesture = gesture{}
}

// InteractionStart initializes audio on the first user gesture
// At most one attempt is made per gesture
func (s *Session) InteractionStart() {
	if s.player.IsReady() || s.gesture.audioTried {
		return
	}
	s.gesture.audioTried = true

	if !s.player.Initialize() {
		log.Printf("session: audio unavailable")
		s.audioReady = false
		return
	}

	// Output may need a moment to start; the check lands on the loop as an event
	s.stopSettle()
	s.settle = time.AfterFunc(constants.AudioSettleDelay, func() {
		if err := s.screen.PostEvent(tcell.NewEventInterrupt(audioCheck{})); err != nil {
			log.Printf("session: audio check dropped: %v", err)
		}
	})
}

// DrawCell writes the next pattern glyph at (row, col) and sounds its note
func (s *Session) DrawCell(row, col int) {
	note, err := s.canvas.Draw(row, col)
	if err != nil {
		log.Printf("session: draw (%d,%d): %v", row, col, err)
		return
	}
	if !s.player.IsReady() {
		s.InteractionStart()
	}
	s.player.PlayNote(note.Frequency)
}

// SwitchPattern advances to the next pattern
func (s *Session) SwitchPattern() {
	s.canvas.SwitchPattern()
}

// Clear empties the canvas
func (s *Session) Clear() {
	s.canvas.Clear()
}

// Render draws the current state
func (s *Session) Render() {
	render.Draw(s.screen, s.layout, render.Frame{
		Grid:       s.canvas.Grid(),
		Pattern:    s.canvas.Pattern(),
		Cycle:      s.canvas.Cycle(),
		AudioReady: s.audioReady,
		ShowCursor: s.cursor.visible,
		CursorRow:  s.cursor.row,
		CursorCol:  s.cursor.col,
	})
}

// refreshAudio polls the player; returns true when the flag changed
func (s *Session) refreshAudio() bool {
	ready := s.player.IsReady()
	changed := ready != s.audioReady
	s.audioReady = ready
	return changed
}

func (s *Session) relayout() {
	w, h := s.screen.Size()
	grid := s.canvas.Grid()
	s.layout = render.NewLayout(w, h, grid.Rows(), grid.Cols())
}

func (s *Session) stopSettle() {
	if s.settle != nil {
		s.settle.Stop()
		s.settle = nil
	}
}
