package audio

import (
	"log"
)

// AudioService wraps a TonePlayer as a service.Service
// Output is opened lazily on the first user gesture, not at Start
type AudioService struct {
	player TonePlayer
	cfg    *Config
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: *Config - tone output settings (default: LoadConfig())
// args[1]: TonePlayer - prebuilt player, replaces the one cfg would select
func (s *AudioService) Init(args ...any) error {
	cfg := LoadConfig()
	if len(args) > 0 {
		if c, ok := args[0].(*Config); ok && c != nil {
			cfg = c
		}
	}
	s.cfg = cfg

	if len(args) > 1 {
		if p, ok := args[1].(TonePlayer); ok && p != nil {
			s.player = p
			return nil
		}
	}

	if !cfg.Enabled {
		log.Printf("audio: %v", ErrAudioDisabled)
	}
	s.player = NewTonePlayer(cfg)
	return nil
}

// Start implements Service
func (s *AudioService) Start() error {
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Close()
	}
	return nil
}

// Player returns the tone player (nil before Init)
func (s *AudioService) Player() TonePlayer {
	return s.player
}
