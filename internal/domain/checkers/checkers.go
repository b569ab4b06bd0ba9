// Package checkers provides the built-in checker units bundled with sanity.
// They satisfy the same contract as checkers loaded from a checker directory
// and can serve as reference implementations for checker authors. File
// checkers carry a file_ prefix and directory checkers a dir_ prefix, so
// rule patterns like `^file_.*$` select them as a group.
package checkers

import "github.com/Figglewatts/sanity/internal/domain"

var builtin = map[string]domain.Checker{
	"file_namechecker":        domain.CheckFunc(checkFileName),
	"file_sizechecker":        domain.CheckFunc(checkFileSize),
	"file_casechecker":        domain.CheckFunc(checkFileCase),
	"file_vertexcountchecker": domain.CheckFunc(checkVertexCount),
	"dir_filecountchecker":    domain.CheckFunc(checkFileCount),
	"dir_hasfilechecker":      domain.CheckFunc(checkHasFiles),
}

// Install registers every built-in checker whose name is still free in the
// registry. Checker units loaded from the checker directory shadow built-ins
// of the same name.
func Install(reg *domain.Registry) {
	for name, checker := range builtin {
		if reg.Has(name) {
			continue
		}
		_ = reg.Register(name, checker) // Has guards the only error case
	}
}

// Names returns the names of all built-in checkers.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	return names
}
