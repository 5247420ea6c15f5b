package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// pipeDevice mixes tones in-process and writes s16le stereo PCM to a CLI player's stdin
// Used when the speaker cannot open a device directly
type pipeDevice struct {
	detect func(rate int) (*BackendConfig, error)
	open   func(b *BackendConfig) (io.WriteCloser, error)

	mu    sync.Mutex // Protects mixer
	mixer beep.Mixer

	backend *BackendConfig
	out     io.WriteCloser
	stop    chan struct{}
	wg      sync.WaitGroup

	running atomic.Bool
	paused  atomic.Bool
}

// NewPipeDevice returns a Device that pipes PCM to the first detected CLI backend
func NewPipeDevice() Device {
	return &pipeDevice{detect: DetectBackend, open: openBackend}
}

func (d *pipeDevice) Name() string {
	if d.backend != nil {
		return "pipe:" + d.backend.Name
	}
	return "pipe"
}

func (d *pipeDevice) Init(sr beep.SampleRate, bufferSize int) error {
	if d.running.Load() {
		return nil
	}
	// Previous output died; reap it before reopening
	if d.stop != nil {
		d.Close()
	}

	backend, err := d.detect(int(sr))
	if err != nil {
		return err
	}

	out, err := d.open(backend)
	if err != nil {
		return err
	}

	d.backend = backend
	d.out = out
	d.stop = make(chan struct{})
	d.paused.Store(false)
	d.running.Store(true)

	d.wg.Add(1)
	go d.loop(sr, bufferSize)
	return nil
}

// loop writes one buffer of mixed audio per buffer period until stopped or the pipe fails
func (d *pipeDevice) loop(sr beep.SampleRate, bufferSize int) {
	defer d.wg.Done()

	ticker := time.NewTicker(sr.D(bufferSize))
	defer ticker.Stop()

	buf := make([][2]float64, bufferSize)
	outBytes := make([]byte, bufferSize*4)

	for {
		select {
		case <-d.stop:
			return

		case <-ticker.C:
			if d.paused.Load() {
				// Silence keeps the pipe alive while suspended
				clear(buf)
			} else {
				d.mu.Lock()
				d.mixer.Stream(buf)
				d.mu.Unlock()
			}

			floatToBytes(buf, outBytes)

			if _, err := d.out.Write(outBytes); err != nil {
				log.Printf("audio: %s: %v", d.Name(), fmt.Errorf("%w: %v", ErrPipeClosed, err))
				d.running.Store(false)
				return
			}
		}
	}
}

func (d *pipeDevice) Play(s beep.Streamer) {
	d.mu.Lock()
	d.mixer.Add(s)
	d.mu.Unlock()
}

func (d *pipeDevice) Suspend() error {
	d.paused.Store(true)
	return nil
}

func (d *pipeDevice) Resume() error {
	if !d.running.Load() {
		return ErrPipeClosed
	}
	d.paused.Store(false)
	return nil
}

func (d *pipeDevice) Running() bool {
	return d.running.Load()
}

func (d *pipeDevice) Close() {
	if d.stop == nil {
		return
	}

	close(d.stop)
	d.out.Close()
	d.wg.Wait()

	d.stop = nil
	d.out = nil
	d.running.Store(false)

	d.mu.Lock()
	d.mixer.Clear()
	d.mu.Unlock()
}

// procWriter is a backend's stdin; Close also kills and reaps the process
type procWriter struct {
	io.WriteCloser
	cmd *exec.Cmd
}

func (p *procWriter) Close() error {
	err := p.WriteCloser.Close()
	if p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	p.cmd.Wait()
	return err
}

// openBackend starts the backend process, or opens the OSS device for direct writes
func openBackend(b *BackendConfig) (io.WriteCloser, error) {
	if b.Type == BackendOSS {
		f, err := os.OpenFile(b.Path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", b.Path, err)
		}
		return f, nil
	}

	cmd := exec.Command(b.Path, b.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%s stdin: %w", b.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start %s: %w", b.Name, err)
	}
	return &procWriter{WriteCloser: stdin, cmd: cmd}, nil
}

// floatToBytes converts stereo float samples to interleaved int16 LE bytes
// Applies soft limiting before hard clip since overlapping tones can sum past 1.0
func floatToBytes(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			if v > 0.8 {
				v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
			} else if v < -0.8 {
				v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
			}

			if v > 1.0 {
				v = 1.0
			} else if v < -1.0 {
				v = -1.0
			}

			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(int16(v*32767)))
		}
	}
}
