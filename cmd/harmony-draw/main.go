package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/harmony-draw/audio"
	"github.com/lixenwraith/harmony-draw/canvas"
	"github.com/lixenwraith/harmony-draw/config"
	"github.com/lixenwraith/harmony-draw/core"
	"github.com/lixenwraith/harmony-draw/engine"
	"github.com/lixenwraith/harmony-draw/render"
	"github.com/lixenwraith/harmony-draw/service"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// options are the command-line overrides applied on top of file and environment config
type options struct {
	configPath string
	debug      bool
	mute       bool
	output     string
	midiPort   string
	pattern    string
	list       bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.configPath, "config", "", "Config file (default "+config.DefaultPath+")")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to logs/"+logFileName)
	fs.BoolVar(&o.mute, "mute", false, "Start with audio disabled")
	fs.StringVar(&o.output, "output", "", "Audio output: speaker, pipe, midi, none")
	fs.StringVar(&o.midiPort, "midi-port", "", "MIDI output port name (substring match)")
	fs.StringVar(&o.pattern, "pattern", "", "Starting pattern name")
	fs.BoolVar(&o.list, "list", false, "List available patterns and exit")
	err := fs.Parse(args)
	return o, err
}

// apply folds flag overrides into cfg and revalidates
func (o options) apply(cfg *config.Config) error {
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.output != "" {
		cfg.Audio.Output = o.output
	}
	if o.midiPort != "" {
		cfg.Audio.MIDIPort = o.midiPort
	}
	if o.pattern != "" {
		cfg.Canvas.Pattern = o.pattern
	}
	cfg.Audio.Normalize()
	return cfg.Validate()
}

// loadConfig reads the config named by -config, or the default path when absent
func (o options) loadConfig() (*config.Config, error) {
	path, required := o.configPath, true
	if path == "" {
		path, required = config.DefaultPath, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	if err := o.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCanvas builds the drawing state positioned on the configured pattern
func newCanvas(cfg *config.Config) (*canvas.Canvas, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	c := canvas.New(cfg.Canvas.Rows, cfg.Canvas.Cols, reg)
	if cfg.Canvas.Pattern != "" {
		if err := c.SelectPattern(cfg.Canvas.Pattern); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// listPatterns prints the names of the patterns the canvas cycles through
func listPatterns(w io.Writer, c *canvas.Canvas) error {
	for _, name := range c.Patterns().Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "harmony-draw: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	c, err := newCanvas(cfg)
	if err != nil {
		return err
	}

	if opts.list {
		return listPatterns(os.Stdout, c)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	screenSvc := render.NewScreenService()
	audioSvc := audio.NewService()

	group := service.NewGroup()
	if err := group.Register(screenSvc); err != nil {
		return err
	}
	if err := group.Register(audioSvc, &cfg.Audio); err != nil {
		return err
	}
	if err := group.Start(); err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer group.Stop()

	// Crash handler restores the tcell screen instead of raw sequences
	core.SetCrashReset(func() { screenSvc.Stop() })
	defer core.SetCrashReset(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("harmony-draw: %dx%d canvas, pattern %q, audio %s",
		cfg.Canvas.Rows, cfg.Canvas.Cols, c.Pattern().Name, cfg.Audio.Output)

	session := engine.NewSession(screenSvc.Screen(), c, audioSvc.Player())
	return session.Run(ctx)
}
