package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Figglewatts/sanity/internal/domain"
)

// CheckService is the dispatch engine. It walks a target directory, resolves
// which checkers apply to each entry through the rule set, invokes them via
// the registry with their resolved parameters and aggregates the results
// into a RunReport.
type CheckService struct {
	registry *domain.Registry
}

func NewCheckService(registry *domain.Registry) *CheckService {
	return &CheckService{registry: registry}
}

// Run checks root and, when recursive is set, every directory below it.
// Results are appended in a fixed order: a directory's own checks first,
// then its files sorted by name, then its subdirectories sorted by name.
// Running twice against an unchanged tree yields an identical report.
//
// A missing or unreadable root fails fast with a *domain.PathError before
// any checks run. A fault inside a single checker invocation becomes a
// failing result and never aborts the run.
func (s *CheckService) Run(root string, rules *domain.RuleSet, params domain.ParameterTable, recursive bool) (*domain.RunReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &domain.PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.PathError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	report := &domain.RunReport{Root: root}
	if err := s.checkDirectory(root, rules, params, recursive, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *CheckService) checkDirectory(dir string, rules *domain.RuleSet, params domain.ParameterTable, recursive bool, report *domain.RunReport) error {
	names := s.registry.Names()

	for _, checker := range rules.CheckersForDirectory(names) {
		report.Results = append(report.Results, s.invoke(checker, dir, params.For(checker)))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return &domain.PathError{Path: dir, Err: err}
	}

	// ReadDir returns entries sorted by name; files are dispatched first,
	// subdirectories collected for the recursive pass.
	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		path := filepath.Join(dir, entry.Name())
		for _, checker := range rules.CheckersForFile(entry.Name(), names) {
			report.Results = append(report.Results, s.invoke(checker, path, params.For(checker)))
		}
	}

	if !recursive {
		return nil
	}
	for _, name := range subdirs {
		if err := s.checkDirectory(filepath.Join(dir, name), rules, params, recursive, report); err != nil {
			return err
		}
	}
	return nil
}

// invoke runs one checker against one path. A checker that returns an error
// or panics yields a failing result with the fault as the reason.
func (s *CheckService) invoke(name, path string, params domain.Params) (result domain.CheckResult) {
	result = domain.CheckResult{Path: path, Checker: name}

	checker, ok := s.registry.Get(name)
	if !ok {
		// CheckersFor* only return registered names, so this cannot happen
		// through the normal dispatch path.
		result.Reason = fmt.Sprintf("checker %q not found in registry", name)
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			result.Passed = false
			result.Reason = fmt.Sprintf("checker panicked: %v", r)
		}
	}()

	passed, reason, err := checker.Check(path, params)
	if err != nil {
		result.Reason = fmt.Sprintf("checker fault: %v", err)
		return result
	}

	result.Passed = passed
	result.Reason = reason
	return result
}
