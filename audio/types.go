package audio

import (
	"errors"
)

// State is the tone player lifecycle position
type State int

const (
	StateUninitialized State = iota // No output created yet, or closed
	StateReady                      // Output running, notes audible
	StateSuspended                  // Output paused by the host, Initialize resumes
)

// String returns human-readable state name
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateSuspended:
		return "Suspended"
	default:
		return "Uninitialized"
	}
}

// TonePlayer emits short notes for drawn cells
// Implementations are safe for concurrent use
type TonePlayer interface {
	// IsReady reports whether PlayNote is currently audible; no side effects
	IsReady() bool
	// Initialize creates or resumes the output; idempotent, failure is non-fatal
	Initialize() bool
	// PlayNote emits one tone at hz; no-op when not ready
	PlayNote(hz float64)
	// Suspend pauses a ready output (host lost focus)
	Suspend()
	// Close releases the output
	Close()
}

// BackendType identifies a CLI audio backend for pipe output
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrNoMIDIPort     = errors.New("no MIDI output port found")
	ErrAudioDisabled  = errors.New("audio disabled by configuration")
)
