package domain

import (
	"fmt"
	"sort"
)

// Params holds the configuration-supplied parameters for one checker.
// Checkers must supply their own defaults for absent keys; the resolver
// never fails.
type Params map[string]any

// Checker is the contract every checker unit satisfies: check a single path
// and report a verdict with a reason. A failing verdict carries the reason
// for the failure; a passing one carries an empty string. A non-nil error
// signals a fault inside the checker and is converted by the dispatch engine
// into a failing result rather than aborting the run.
type Checker interface {
	Check(path string, params Params) (ok bool, reason string, err error)
}

// CheckFunc adapts a plain function to the Checker interface.
type CheckFunc func(path string, params Params) (bool, string, error)

func (f CheckFunc) Check(path string, params Params) (bool, string, error) {
	return f(path, params)
}

// LoadFailure records a checker unit that could not be loaded. Failed units
// are excluded from the registry and surfaced as warnings; they never abort
// the load.
type LoadFailure struct {
	Unit   string `json:"unit"`
	Reason string `json:"reason"`
}

// Registry holds the checker units from one load, keyed by name. Names are
// unique within a registry; checkers are immutable once registered.
type Registry struct {
	checkers map[string]Checker
	failures []LoadFailure
}

func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// Register adds a checker under the given name.
func (r *Registry) Register(name string, c Checker) error {
	if _, exists := r.checkers[name]; exists {
		return fmt.Errorf("checker %q already registered", name)
	}
	r.checkers[name] = c
	return nil
}

// RecordFailure notes a unit that failed to load.
func (r *Registry) RecordFailure(unit, reason string) {
	r.failures = append(r.failures, LoadFailure{Unit: unit, Reason: reason})
}

// Get returns the checker registered under name.
func (r *Registry) Get(name string) (Checker, bool) {
	c, ok := r.checkers[name]
	return c, ok
}

// Has reports whether a checker is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.checkers[name]
	return ok
}

// Names returns every registered checker name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered checkers.
func (r *Registry) Len() int { return len(r.checkers) }

// Failures returns the load failures recorded during the registry load.
func (r *Registry) Failures() []LoadFailure { return r.failures }
