package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

var (
	// ErrUnknownSolver is returned by Lookup for an unregistered name.
	ErrUnknownSolver = errors.New("seqkit: unknown solver")

	// ErrDuplicateSolver is returned by Register for a name already taken.
	ErrDuplicateSolver = errors.New("seqkit: solver already registered")
)

// Solver adapts one algorithm to a JSON payload.
type Solver struct {
	Name string
	Help string
	Run  func(in gjson.Result) (any, error)
}

// Registry maps solver names to solvers. It is built explicitly and passed
// to App; there is no package-level registry.
type Registry struct {
	solvers map[string]Solver
}

// NewRegistry returns a registry holding every built-in solver.
func NewRegistry() *Registry {
	r := &Registry{solvers: make(map[string]Solver)}
	for _, s := range builtinSolvers() {
		if err := r.Register(s); err != nil {
			panic(err) // built-in names are unique
		}
	}

	return r
}

// Register adds s. Errors: ErrDuplicateSolver if the name is taken.
func (r *Registry) Register(s Solver) error {
	if _, ok := r.solvers[s.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSolver, s.Name)
	}
	r.solvers[s.Name] = s

	return nil
}

// Lookup returns the solver registered under name.
func (r *Registry) Lookup(name string) (Solver, error) {
	s, ok := r.solvers[name]
	if !ok {
		return Solver{}, fmt.Errorf("%w: %s", ErrUnknownSolver, name)
	}

	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
