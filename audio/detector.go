package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// lookPath is exec.LookPath, swapped in tests
var lookPath = exec.LookPath

// backendCandidate is one CLI player that accepts raw s16le stereo on stdin
type backendCandidate struct {
	typ  BackendType
	name string
	bin  string
	args func(rate string) []string
}

// Priority: pacat > pw-cat > aplay > play (sox) > ffplay
var backendCandidates = []backendCandidate{
	{BackendPulse, "pacat", "pacat", func(rate string) []string {
		return []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"}
	}},
	{BackendPipeWire, "pw-cat", "pw-cat", func(rate string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"}
	}},
	{BackendALSA, "aplay", "aplay", func(rate string) []string {
		return []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"}
	}},
	{BackendSoX, "sox", "play", func(rate string) []string {
		return []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"}
	}},
	{BackendFFplay, "ffplay", "ffplay", func(rate string) []string {
		return []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate,
			"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet"}
	}},
}

// DetectBackend returns the first available CLI audio backend configured for rate
// FreeBSD falls back to writing /dev/dsp directly
func DetectBackend(rate int) (*BackendConfig, error) {
	r := strconv.Itoa(rate)
	for _, c := range backendCandidates {
		path, err := lookPath(c.bin)
		if err != nil {
			continue
		}
		return &BackendConfig{Type: c.typ, Name: c.name, Path: path, Args: c.args(r)}, nil
	}

	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
