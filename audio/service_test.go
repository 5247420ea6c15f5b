package audio

import (
	"testing"
)

// TestAudioServiceLifecycle verifies Init wiring and Stop closing the player
func TestAudioServiceLifecycle(t *testing.T) {
	dev := &fakeDevice{name: "fake"}
	player := NewPlayer(DefaultConfig(), dev)

	s := NewService()
	if s.Name() != "audio" || s.Dependencies() != nil {
		t.Errorf("Unexpected identity: %s %v", s.Name(), s.Dependencies())
	}

	if err := s.Init(DefaultConfig(), player); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Player() != player {
		t.Fatal("Expected injected player")
	}
	if dev.inits != 0 {
		t.Error("Start must not open the output")
	}

	s.Player().Initialize()
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if dev.closes != 1 {
		t.Errorf("Expected device closed once, got %d", dev.closes)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Expected idempotent Stop, got %v", err)
	}
}

// TestAudioServiceBuildsFromConfig verifies the player is chosen from config
func TestAudioServiceBuildsFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = OutputMIDI

	s := NewService()
	if err := s.Init(cfg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, ok := s.Player().(*MIDIPlayer); !ok {
		t.Errorf("Expected MIDIPlayer, got %T", s.Player())
	}
}
