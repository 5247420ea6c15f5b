package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"github.com/lixenwraith/harmony-draw/constants"
)

// midiPort is an opened output: send plus close
type midiPort struct {
	name  string
	send  func(gomidi.Message) error
	close func() error
}

// MIDIPlayer plays each note as NoteOn followed by NoteOff after the note duration
// The frequency is rounded to the nearest equal-tempered MIDI key
type MIDIPlayer struct {
	mu    sync.Mutex
	cfg   *Config
	open  func(name string) (*midiPort, error)
	after func(d time.Duration, f func()) // time.AfterFunc, swapped in tests
	port  *midiPort
	state State

	sounding map[uint8]int // Keys with a pending NoteOff, by NoteOn count
}

// NewMIDIPlayer creates a player that opens cfg.MIDIPort (or the first port) on Initialize
func NewMIDIPlayer(cfg *Config) *MIDIPlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &MIDIPlayer{
		cfg:      cfg,
		open:     openMIDIPort,
		sounding: make(map[uint8]int),
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// openMIDIPort finds the named output port, or the first one when name is empty
func openMIDIPort(name string) (*midiPort, error) {
	var out drivers.Out
	if name != "" {
		port, err := gomidi.FindOutPort(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNoMIDIPort, name, err)
		}
		out = port
	} else {
		ports := gomidi.GetOutPorts()
		if len(ports) == 0 {
			return nil, ErrNoMIDIPort
		}
		out = ports[0]
	}

	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("open MIDI port %s: %w", out.String(), err)
	}
	return &midiPort{name: out.String(), send: send, close: out.Close}, nil
}

// State returns the current lifecycle state
func (m *MIDIPlayer) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MIDIPlayer) IsReady() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateReady
}

func (m *MIDIPlayer) Initialize() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cfg.Enabled {
		return false
	}

	switch m.state {
	case StateReady:
		return true
	case StateSuspended:
		m.state = StateReady
		return true
	}

	port, err := m.open(m.cfg.MIDIPort)
	if err != nil {
		log.Printf("audio: midi init failed: %v", err)
		return false
	}
	m.port = port
	m.state = StateReady
	log.Printf("audio: midi ready on %s", port.name)
	return true
}

func (m *MIDIPlayer) PlayNote(hz float64) {
	m.mu.Lock()
	if m.state != StateReady || hz <= 0 {
		m.mu.Unlock()
		return
	}

	key := uint8(FreqToMIDI(hz))
	port := m.port
	if err := port.send(gomidi.NoteOn(constants.MIDIChannel, key, constants.MIDIVelocity)); err != nil {
		m.mu.Unlock()
		log.Printf("audio: midi note on %d: %v", key, err)
		return
	}
	m.sounding[key]++
	m.mu.Unlock()

	m.after(constants.NoteDuration, func() { m.noteOff(port, key) })
}

// noteOff releases key unless Close already flushed it
func (m *MIDIPlayer) noteOff(port *midiPort, key uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.port != port || m.sounding[key] == 0 {
		return
	}
	m.sounding[key]--
	if m.sounding[key] == 0 {
		delete(m.sounding, key)
	}
	if err := port.send(gomidi.NoteOff(constants.MIDIChannel, key)); err != nil {
		log.Printf("audio: midi note off %d: %v", key, err)
	}
}

func (m *MIDIPlayer) Suspend() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateReady {
		m.state = StateSuspended
	}
}

func (m *MIDIPlayer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.port != nil {
		// Flush pending NoteOffs so nothing hangs on the synth
		for key := range m.sounding {
			if err := m.port.send(gomidi.NoteOff(constants.MIDIChannel, key)); err != nil {
				log.Printf("audio: midi note off %d: %v", key, err)
			}
		}
		clear(m.sounding)
		if err := m.port.close(); err != nil {
			log.Printf("audio: midi close: %v", err)
		}
		m.port = nil
	}
	m.state = StateUninitialized
}
