package service

import (
	"errors"
	"strings"
	"testing"
)

// recorder is a Service that logs lifecycle calls into a shared trace
type recorder struct {
	name     string
	deps     []string
	startErr error
	stopErr  error
	trace    *[]string
	initArgs []any
}

func (r *recorder) Name() string           { return r.name }
func (r *recorder) Dependencies() []string { return r.deps }

func (r *recorder) Init(args ...any) error {
	r.initArgs = args
	*r.trace = append(*r.trace, "init:"+r.name)
	return nil
}

func (r *recorder) Start() error {
	*r.trace = append(*r.trace, "start:"+r.name)
	return r.startErr
}

func (r *recorder) Stop() error {
	*r.trace = append(*r.trace, "stop:"+r.name)
	return r.stopErr
}

// TestGroupOrdering verifies dependencies init first and stop runs in reverse
func TestGroupOrdering(t *testing.T) {
	var trace []string
	g := NewGroup()
	g.Register(&recorder{name: "engine", deps: []string{"audio", "screen"}, trace: &trace})
	g.Register(&recorder{name: "screen", trace: &trace})
	g.Register(&recorder{name: "audio", trace: &trace}, "cfg")

	if err := g.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := g.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	want := "init:audio init:screen init:engine start:audio start:screen start:engine stop:engine stop:screen stop:audio"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
}

// TestGroupStartFailureStopsStarted verifies rollback on a failing Start
func TestGroupStartFailureStopsStarted(t *testing.T) {
	var trace []string
	g := NewGroup()
	g.Register(&recorder{name: "a", trace: &trace})
	g.Register(&recorder{name: "b", trace: &trace, startErr: errors.New("boom")})

	if err := g.Start(); err == nil {
		t.Fatal("Expected start error")
	}

	want := "init:a init:b start:a start:b stop:a"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

// TestGroupRejects covers duplicates, cycles and missing dependencies
func TestGroupRejects(t *testing.T) {
	var trace []string

	g := NewGroup()
	g.Register(&recorder{name: "a", trace: &trace})
	if err := g.Register(&recorder{name: "a", trace: &trace}); err == nil {
		t.Error("Expected duplicate registration error")
	}

	cyc := NewGroup()
	cyc.Register(&recorder{name: "x", deps: []string{"y"}, trace: &trace})
	cyc.Register(&recorder{name: "y", deps: []string{"x"}, trace: &trace})
	if err := cyc.Start(); err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("Expected cycle error, got %v", err)
	}

	missing := NewGroup()
	missing.Register(&recorder{name: "x", deps: []string{"ghost"}, trace: &trace})
	if err := missing.Start(); err == nil {
		t.Error("Expected missing dependency error")
	}
}

// TestGroupStopJoinsErrors verifies every service is stopped even when one fails
func TestGroupStopJoinsErrors(t *testing.T) {
	var trace []string
	g := NewGroup()
	g.Register(&recorder{name: "a", trace: &trace, stopErr: errors.New("a failed")})
	g.Register(&recorder{name: "b", trace: &trace})
	g.Start()

	err := g.Stop()
	if err == nil || !strings.Contains(err.Error(), "a failed") {
		t.Errorf("Expected joined error, got %v", err)
	}
	if trace[len(trace)-1] != "stop:a" {
		t.Errorf("Expected a stopped last, got %v", trace)
	}
	if err := g.Stop(); err != nil {
		t.Errorf("Expected second Stop to be a no-op, got %v", err)
	}
}
