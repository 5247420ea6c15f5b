package render

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScreenService owns the terminal screen as a service.Service
type ScreenService struct {
	mu      sync.Mutex
	screen  tcell.Screen
	started bool
}

// NewScreenService creates an unstarted screen service
func NewScreenService() *ScreenService {
	return &ScreenService{}
}

// Name implements Service
func (s *ScreenService) Name() string {
	return "screen"
}

// Dependencies implements Service
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: tcell.Screen - prebuilt screen (simulation in tests), default tcell.NewScreen
func (s *ScreenService) Init(args ...any) error {
	if len(args) > 0 {
		if scr, ok := args[0].(tcell.Screen); ok && scr != nil {
			s.screen = scr
			return nil
		}
	}
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	s.screen = scr
	return nil
}

// Start implements Service
// Enters raw mode with mouse drag reporting and focus events
func (s *ScreenService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen == nil {
		return fmt.Errorf("screen: not initialized")
	}
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()
	s.screen.Clear()
	s.started = true

	w, h := s.screen.Size()
	log.Printf("screen: started %dx%d", w, h)
	return nil
}

// Stop implements Service
// Restores the terminal; safe to call from a panic handler
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.started = false
	s.screen.DisableMouse()
	s.screen.DisableFocus()
	s.screen.Fini()
	return nil
}

// Screen returns the managed screen (nil before Init)
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}
