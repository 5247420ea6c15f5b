package audio

import (
	"testing"
)

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.Output != OutputSpeaker {
		t.Errorf("Expected speaker output, got %q", cfg.Output)
	}
}

// TestLoadConfigFromEnv verifies each environment override
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HARMONY_DRAW_AUDIO_ENABLED", "false")
	t.Setenv("HARMONY_DRAW_MASTER_VOLUME", "80")
	t.Setenv("HARMONY_DRAW_SAMPLE_RATE", "48000")
	t.Setenv("HARMONY_DRAW_AUDIO_OUTPUT", "MIDI")
	t.Setenv("HARMONY_DRAW_MIDI_PORT", "Synth 1")

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.Output != OutputMIDI {
		t.Errorf("Expected midi output, got %q", cfg.Output)
	}
	if cfg.MIDIPort != "Synth 1" {
		t.Errorf("Expected port Synth 1, got %q", cfg.MIDIPort)
	}
}

// TestLoadConfigInvalidEnv verifies bad values are ignored and volume is clamped
func TestLoadConfigInvalidEnv(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		verify func(t *testing.T, cfg *Config)
	}{
		{"Bad bool", "HARMONY_DRAW_AUDIO_ENABLED", "maybe", func(t *testing.T, cfg *Config) {
			if !cfg.Enabled {
				t.Error("Expected default Enabled kept")
			}
		}},
		{"Volume over", "HARMONY_DRAW_MASTER_VOLUME", "250", func(t *testing.T, cfg *Config) {
			if cfg.MasterVolume != 1 {
				t.Errorf("Expected clamp to 1, got %f", cfg.MasterVolume)
			}
		}},
		{"Volume under", "HARMONY_DRAW_MASTER_VOLUME", "-5", func(t *testing.T, cfg *Config) {
			if cfg.MasterVolume != 0 {
				t.Errorf("Expected clamp to 0, got %f", cfg.MasterVolume)
			}
		}},
		{"Zero rate", "HARMONY_DRAW_SAMPLE_RATE", "0", func(t *testing.T, cfg *Config) {
			if cfg.SampleRate != 44100 {
				t.Errorf("Expected default rate kept, got %d", cfg.SampleRate)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			tt.verify(t, LoadConfig())
		})
	}
}

// TestNormalize verifies zero values are filled
func TestNormalize(t *testing.T) {
	cfg := &Config{MasterVolume: 2, Output: "Pipe"}
	cfg.Normalize()

	if cfg.MasterVolume != 1 || cfg.SampleRate != 44100 || cfg.Output != OutputPipe {
		t.Errorf("Unexpected normalized config: %+v", cfg)
	}

	empty := &Config{}
	empty.Normalize()
	if empty.Output != OutputSpeaker {
		t.Errorf("Expected speaker for empty output, got %q", empty.Output)
	}
}
