package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// restoreLogger puts the standard logger back after a test redirects it
func restoreLogger(t *testing.T) {
	t.Helper()
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	restoreLogger(t)
	t.Chdir(t.TempDir())

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	restoreLogger(t)
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file when debug=true")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Expected log output away from the terminal")
	}

	log.Println("canvas cleared")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "canvas cleared") {
		t.Errorf("Expected logged line in file, got %q", data)
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	restoreLogger(t)
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "harmony-draw-") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected 1 rotated file, got %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
