package problem

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrProblemExists   = errors.New("problem already registered")
	ErrProblemNotFound = errors.New("problem not found")
)

type Registry struct {
	mu       sync.RWMutex
	problems map[string]Problem
}

func NewRegistry() *Registry {
	return &Registry{problems: make(map[string]Problem)}
}

func (r *Registry) Register(p Problem) error {
	if p == nil {
		return errors.New("problem is required")
	}
	name := strings.TrimSpace(p.Name())
	if name == "" {
		return errors.New("problem name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.problems[name]; exists {
		return fmt.Errorf("%w: %s", ErrProblemExists, name)
	}
	r.problems[name] = p
	return nil
}

func (r *Registry) Lookup(name string) (Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.problems[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, name)
	}
	return p, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with every built-in problem.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range []Problem{
		SphereProblem{},
		RastriginProblem{},
		NewTargetProblem([]float64{0, 1, 2, 3, 4}),
	} {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}
