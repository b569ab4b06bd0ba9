package checkers

import (
	"fmt"
	"os"

	"github.com/Figglewatts/sanity/internal/domain"
)

// checkHasFiles verifies that a directory contains every file in a given
// list.
//
// Parameters:
//
//	files_list (list of string): file names that must be present.
func checkHasFiles(path string, params domain.Params) (bool, string, error) {
	wanted := stringSliceParam(params, "files_list")

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, "", err
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			present[entry.Name()] = true
		}
	}

	for _, name := range wanted {
		if !present[name] {
			return false, fmt.Sprintf("file '%s' was not in directory", name), nil
		}
	}
	return true, "", nil
}
