// Package starlark implements the checker registry by loading checker units
// written as Starlark scripts. Every *.star file in the checker directory is
// one unit, named after its base filename; each must define a function
//
//	def check(path, params):
//	    ...
//	    return (ok, reason)
//
// Loading executes the top level of each unit. Checker scripts are trusted
// code; no sandboxing beyond what Starlark itself provides is attempted.
package starlark

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"

	"github.com/Figglewatts/sanity/internal/domain"
)

const unitExtension = ".star"

// Loader implements domain.CheckerSource for a directory of checker units.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader { return &Loader{dir: dir} }

// Load loads every eligible unit in the directory (flat, non-recursive).
// Files whose name starts with an underscore are skipped, so shared helper
// scripts can sit next to checkers. A unit that fails to load is recorded on
// the registry and excluded; only a missing or unreadable directory is
// fatal.
func (l *Loader) Load() (*domain.Registry, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		return nil, &domain.LoadError{Dir: l.dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.LoadError{Dir: l.dir, Err: errors.New("not a directory")}
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, &domain.LoadError{Dir: l.dir, Err: err}
	}

	registry := domain.NewRegistry()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, unitExtension) || strings.HasPrefix(name, "_") {
			continue
		}

		unit := strings.TrimSuffix(name, unitExtension)
		checker, err := l.loadUnit(filepath.Join(l.dir, name), unit)
		if err != nil {
			registry.RecordFailure(unit, err.Error())
			continue
		}
		if err := registry.Register(unit, checker); err != nil {
			registry.RecordFailure(unit, err.Error())
		}
	}
	return registry, nil
}

// loadUnit executes one unit and extracts its check function.
func (l *Loader) loadUnit(path, unit string) (domain.Checker, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading unit: %w", err)
	}

	thread := &starlark.Thread{
		Name: "load:" + unit,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
	}

	globals, err := starlark.ExecFile(thread, path, src, builtins())
	if err != nil {
		return nil, fmt.Errorf("executing unit: %w", err)
	}

	value, ok := globals["check"]
	if !ok {
		return nil, errors.New("unit does not define check(path, params)")
	}
	fn, ok := value.(*starlark.Function)
	if !ok || fn.NumParams() != 2 || fn.HasVarargs() || fn.HasKwargs() {
		return nil, errors.New("check must be a function of exactly (path, params)")
	}

	return &unitChecker{unit: unit, fn: fn}, nil
}
