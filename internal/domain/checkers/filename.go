package checkers

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/Figglewatts/sanity/internal/domain"
)

const defaultFilenamePattern = "^.*$"

// checkFileName verifies that a file's basename matches a regex.
//
// Parameters:
//
//	filename_pattern (string): regex the basename must fully match.
func checkFileName(path string, params domain.Params) (bool, string, error) {
	pattern := stringParam(params, "filename_pattern", defaultFilenamePattern)
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return false, "", fmt.Errorf("bad filename_pattern %q: %w", pattern, err)
	}

	name := filepath.Base(path)
	if !re.MatchString(name) {
		return false, fmt.Sprintf("'%s' did not match pattern '%s'", name, pattern), nil
	}
	return true, "", nil
}
