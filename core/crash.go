package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Escape sequences written when no screen is registered to restore
var (
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiFocusOff      = []byte("\x1b[?1004l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

var (
	resetMu   sync.Mutex
	resetHook func()

	osExit = os.Exit
	// exit is replaced in tests
	exit = osExit
)

// SetCrashReset registers the function that restores the terminal on crash
// Typically the screen service Stop; nil clears it
func SetCrashReset(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// EmergencyReset writes raw restore sequences and re-enables cooked mode
// Used when the screen could not be finalized normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiFocusOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	resetTerminalMode()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	handleCrash(r, os.Stdout, os.Stderr)
	exit(1)
}

func handleCrash(r any, stdout, stderr io.Writer) {
	resetMu.Lock()
	fn := resetHook
	resetMu.Unlock()

	if fn != nil {
		fn()
	} else {
		EmergencyReset(stdout)
	}

	fmt.Fprintf(stderr, "\n\x1b[31mHARMONY-DRAW CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
