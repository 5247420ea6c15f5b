package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.5
)

// Note Timing
// Every drawn cell plays one sine tone shaped by this fixed envelope
const (
	NoteDuration = 400 * time.Millisecond
	NoteAttack   = 10 * time.Millisecond
	NoteRelease  = 300 * time.Millisecond
)

// Readiness Polling
const (
	// AudioSettleDelay is how long after Initialize the ready flag is re-checked
	AudioSettleDelay = 100 * time.Millisecond

	// AudioPollInterval is the period of the background readiness poll
	AudioPollInterval = 1 * time.Second
)

// MIDI Output
const (
	// MIDIChannel is the zero-based channel notes are sent on
	MIDIChannel = 0

	// MIDIVelocity is the fixed NoteOn velocity
	MIDIVelocity = 100
)
