package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/harmony-draw/constants"
)

// Player is a TonePlayer over one or more candidate output devices
// The first device that opens is used until Close
type Player struct {
	mu      sync.Mutex
	cfg     *Config
	rate    beep.SampleRate
	devices []Device
	active  Device
	state   State
}

// NewPlayer creates an uninitialized player; devices are tried in order on Initialize
func NewPlayer(cfg *Config, devices ...Device) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.Normalize()

	return &Player{
		cfg:     cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		devices: devices,
	}
}

// NewTonePlayer builds the player selected by cfg.Output
func NewTonePlayer(cfg *Config) TonePlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.Normalize()

	switch cfg.Output {
	case OutputMIDI:
		return NewMIDIPlayer(cfg)
	case OutputPipe:
		return NewPlayer(cfg, NewPipeDevice())
	case OutputNone:
		return NewPlayer(cfg)
	case OutputSpeaker:
		return NewPlayer(cfg, NewSpeakerDevice(), NewPipeDevice())
	default:
		log.Printf("audio: unknown output %q, using %s", cfg.Output, OutputSpeaker)
		return NewPlayer(cfg, NewSpeakerDevice(), NewPipeDevice())
	}
}

// State returns the current lifecycle state
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsReady reports whether the active device is open, running and not suspended
func (p *Player) IsReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readyLocked()
}

func (p *Player) readyLocked() bool {
	return p.state == StateReady && p.active != nil && p.active.Running()
}

// Initialize opens the first working device, or resumes a suspended one
func (p *Player) Initialize() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return false
	}

	switch p.state {
	case StateReady:
		if p.active.Running() {
			return true
		}
		log.Printf("audio: %s stopped, reopening", p.active.Name())
		p.active.Close()
		p.active = nil
		p.state = StateUninitialized

	case StateSuspended:
		if p.active.Running() {
			err := p.active.Resume()
			if err == nil {
				p.state = StateReady
				log.Printf("audio: %s resumed", p.active.Name())
				return true
			}
			log.Printf("audio: resume %s failed: %v, reopening", p.active.Name(), err)
		} else {
			log.Printf("audio: %s stopped while suspended, reopening", p.active.Name())
		}
		p.active.Close()
		p.active = nil
		p.state = StateUninitialized
	}

	if len(p.devices) == 0 {
		log.Printf("audio: %v", ErrNoAudioBackend)
		return false
	}

	bufferSize := p.rate.N(constants.AudioBufferDuration)
	for _, d := range p.devices {
		if err := d.Init(p.rate, bufferSize); err != nil {
			log.Printf("audio: %s init failed: %v", d.Name(), err)
			continue
		}
		p.active = d
		p.state = StateReady
		log.Printf("audio: %s ready at %d Hz", d.Name(), p.cfg.SampleRate)
		return true
	}

	return false
}

// PlayNote starts a tone at hz; silently ignored unless ready
func (p *Player) PlayNote(hz float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.readyLocked() {
		return
	}

	tone := NewTone(hz, p.rate, p.cfg.MasterVolume)
	if tone == nil {
		log.Printf("audio: cannot play %.2f Hz at %d Hz sample rate", hz, p.cfg.SampleRate)
		return
	}
	p.active.Play(tone)
}

// Suspend pauses a ready device; Initialize resumes it
func (p *Player) Suspend() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateReady {
		return
	}
	if err := p.active.Suspend(); err != nil {
		log.Printf("audio: suspend %s failed: %v", p.active.Name(), err)
	}
	p.state = StateSuspended
}

// Close releases the active device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil {
		p.active.Close()
		p.active = nil
	}
	p.state = StateUninitialized
}
