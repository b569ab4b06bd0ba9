package domain

import "fmt"

// LoadError is fatal: the checker directory is missing or unreadable. It
// aborts the run before any checks execute. Individual units that fail to
// load are not LoadErrors; they are recorded as LoadFailures and skipped.
type LoadError struct {
	Dir string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading checkers from %s: %v", e.Dir, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PathError is fatal: the target directory is missing or unreadable. No
// partial report is produced.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("checking %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// RuleError reports a rule regex that failed to compile. Rule is the path
// pattern (or directory check pattern) of the offending config entry.
type RuleError struct {
	Rule string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("bad rule %q: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
