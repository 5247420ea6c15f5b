package service

import (
	"errors"
	"fmt"
	"log"
)

// Group runs a set of services through their lifecycle in dependency order
// Stop runs in reverse start order
type Group struct {
	services map[string]Service
	args     map[string][]any
	order    []string
	started  []Service
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{
		services: make(map[string]Service),
		args:     make(map[string][]any),
	}
}

// Register adds a service with the args its Init receives
func (g *Group) Register(s Service, args ...any) error {
	name := s.Name()
	if _, dup := g.services[name]; dup {
		return fmt.Errorf("service %q already registered", name)
	}
	g.services[name] = s
	g.args[name] = args
	g.order = append(g.order, name)
	return nil
}

// Start inits every service in dependency order, then starts them in the same order
// On failure, services already started are stopped
func (g *Group) Start() error {
	order, err := g.resolve()
	if err != nil {
		return err
	}

	for _, name := range order {
		if err := g.services[name].Init(g.args[name]...); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
	}

	for _, name := range order {
		s := g.services[name]
		if err := s.Start(); err != nil {
			g.Stop()
			return fmt.Errorf("start %s: %w", name, err)
		}
		g.started = append(g.started, s)
		log.Printf("service: %s started", name)
	}
	return nil
}

// Stop stops started services in reverse order and joins their errors
func (g *Group) Stop() error {
	var errs []error
	for i := len(g.started) - 1; i >= 0; i-- {
		s := g.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
		}
	}
	g.started = nil
	return errors.Join(errs...)
}

// resolve orders services so dependencies come first, keeping registration order otherwise
func (g *Group) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	mark := make(map[string]int, len(g.order))
	out := make([]string, 0, len(g.order))

	var visit func(name string) error
	visit = func(name string) error {
		switch mark[name] {
		case visiting:
			return fmt.Errorf("service dependency cycle at %q", name)
		case done:
			return nil
		}
		s, ok := g.services[name]
		if !ok {
			return fmt.Errorf("unknown service dependency %q", name)
		}
		mark[name] = visiting
		for _, dep := range s.Dependencies() {
			if err := visit(dep); err != nil {
				return err
			}
		}
		mark[name] = done
		out = append(out, name)
		return nil
	}

	for _, name := range g.order {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return out, nil
}
