package audio

import (
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/harmony-draw/constants"
)

// Output names accepted by Config.Output
const (
	OutputSpeaker = "speaker" // beep speaker, falls back to pipe
	OutputPipe    = "pipe"    // raw PCM piped to pacat/aplay/...
	OutputMIDI    = "midi"    // notes sent to a MIDI port
	OutputNone    = "none"
)

// Config holds tone output settings
type Config struct {
	Enabled      bool    `toml:"enabled"`
	Output       string  `toml:"output"`
	MasterVolume float64 `toml:"volume"`
	SampleRate   int     `toml:"sample_rate"`
	MIDIPort     string  `toml:"midi_port"`
}

// DefaultConfig returns speaker output at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		Output:       OutputSpeaker,
		MasterVolume: constants.AudioMasterVolume,
		SampleRate:   constants.AudioSampleRate,
	}
}

// LoadConfig returns defaults with environment overrides applied
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from HARMONY_DRAW_* environment variables
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("HARMONY_DRAW_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("HARMONY_DRAW_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("HARMONY_DRAW_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}

	if output := os.Getenv("HARMONY_DRAW_AUDIO_OUTPUT"); output != "" {
		c.Output = strings.ToLower(output)
	}

	if port := os.Getenv("HARMONY_DRAW_MIDI_PORT"); port != "" {
		c.MIDIPort = port
	}
}

// Normalize clamps volume and fills zero values with defaults
func (c *Config) Normalize() {
	c.MasterVolume = clampVolume(c.MasterVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
	c.Output = strings.ToLower(c.Output)
	if c.Output == "" {
		c.Output = OutputSpeaker
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
