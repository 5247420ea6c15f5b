package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Device is an audio output a Player streams tones into
// Calls are serialized by the owning Player
type Device interface {
	Name() string
	// Init opens the output; must be a no-op once open
	Init(sr beep.SampleRate, bufferSize int) error
	// Play starts s immediately, mixed with anything already playing
	Play(s beep.Streamer)
	Suspend() error
	Resume() error
	// Running reports whether the output is still able to produce sound
	Running() bool
	Close()
}

// speakerDevice is the process-wide beep speaker (oto underneath)
type speakerDevice struct {
	initialized bool
}

// NewSpeakerDevice returns a Device backed by beep's speaker package
func NewSpeakerDevice() Device {
	return &speakerDevice{}
}

func (d *speakerDevice) Name() string { return "speaker" }

func (d *speakerDevice) Init(sr beep.SampleRate, bufferSize int) error {
	if d.initialized {
		return nil
	}
	if err := speaker.Init(sr, bufferSize); err != nil {
		return err
	}
	d.initialized = true
	return nil
}

func (d *speakerDevice) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (d *speakerDevice) Suspend() error { return speaker.Suspend() }

func (d *speakerDevice) Resume() error { return speaker.Resume() }

func (d *speakerDevice) Running() bool { return d.initialized }

// Close stops all tones and releases the speaker
func (d *speakerDevice) Close() {
	if !d.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	d.initialized = false
}
