package pattern

import "fmt"

// Registry is the static ordered list of patterns, selected by index
type Registry struct {
	patterns []Pattern
}

// NewRegistry validates every pattern and rejects duplicate names
func NewRegistry(patterns ...Pattern) (*Registry, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	seen := make(map[string]struct{}, len(patterns))
	list := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("pattern %q: duplicate name", p.Name)
		}
		seen[p.Name] = struct{}{}
		list = append(list, p.clone())
	}

	return &Registry{patterns: list}, nil
}

// Len returns the number of registered patterns
func (r *Registry) Len() int {
	return len(r.patterns)
}

// At returns the pattern at index i (wrapped into range)
func (r *Registry) At(i int) Pattern {
	return r.patterns[r.wrap(i)]
}

// Next returns the index after current, wrapping to 0
func (r *Registry) Next(current int) int {
	return r.wrap(current + 1)
}

// Index returns the position of the named pattern, or -1
func (r *Registry) Index(name string) int {
	for i, p := range r.patterns {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Names returns pattern names in registry order
func (r *Registry) Names() []string {
	names := make([]string, len(r.patterns))
	for i, p := range r.patterns {
		names[i] = p.Name
	}
	return names
}

func (r *Registry) wrap(i int) int {
	n := len(r.patterns)
	return ((i % n) + n) % n
}

// clone copies the slices so callers cannot mutate registered patterns
func (p Pattern) clone() Pattern {
	c := p
	c.Characters = append([]string(nil), p.Characters...)
	c.Frequencies = append([]float64(nil), p.Frequencies...)
	return c
}
