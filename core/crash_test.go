package core

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestHandleCrashRunsResetHook(t *testing.T) {
	called := false
	SetCrashReset(func() { called = true })
	defer SetCrashReset(nil)

	var stdout, stderr bytes.Buffer
	handleCrash("boom", &stdout, &stderr)

	if !called {
		t.Error("Expected reset hook to run")
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no raw sequences with a hook registered, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("Expected panic value in report, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Stack Trace") {
		t.Error("Expected stack trace in report")
	}
}

func TestHandleCrashFallsBackToEmergencyReset(t *testing.T) {
	SetCrashReset(nil)

	var stdout, stderr bytes.Buffer
	handleCrash("boom", &stdout, &stderr)

	out := stdout.String()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0} {
		if !strings.Contains(out, string(seq)) {
			t.Errorf("Expected reset sequence %q in output", seq)
		}
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	exited := false
	exit = func(int) { exited = true }
	defer func() { exit = osExit }()

	HandleCrash(nil)
	if exited {
		t.Error("Expected no exit for nil panic value")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	defer func() { exit = osExit }()

	SetCrashReset(func() {})
	defer SetCrashReset(nil)

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected crash handler to exit")
	}
}
