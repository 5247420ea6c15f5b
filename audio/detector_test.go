package audio

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

// TestDetectBackendPriority verifies the first available candidate wins and gets the rate
func TestDetectBackendPriority(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	available := map[string]bool{"aplay": true, "ffplay": true}
	lookPath = func(bin string) (string, error) {
		if available[bin] {
			return "/usr/bin/" + bin, nil
		}
		return "", exec.ErrNotFound
	}

	b, err := DetectBackend(48000)
	if err != nil {
		t.Fatalf("DetectBackend failed: %v", err)
	}
	if b.Type != BackendALSA || b.Path != "/usr/bin/aplay" {
		t.Errorf("Expected aplay, got %s at %s", b.Name, b.Path)
	}
	if !slices.Contains(b.Args, "48000") {
		t.Errorf("Expected rate in args, got %v", b.Args)
	}
}

// TestDetectBackendNone verifies the sentinel when nothing is installed
func TestDetectBackendNone(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()
	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	if _, err := DetectBackend(44100); err != nil && !errors.Is(err, ErrNoAudioBackend) {
		t.Errorf("Expected ErrNoAudioBackend, got %v", err)
	}
}
