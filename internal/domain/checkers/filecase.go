package checkers

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/Figglewatts/sanity/internal/domain"
	"github.com/fatih/camelcase"
)

var (
	snakeRe = regexp.MustCompile(`\A[a-z0-9]+(?:_[a-z0-9]+)*\z`)
	kebabRe = regexp.MustCompile(`\A[a-z0-9]+(?:-[a-z0-9]+)*\z`)
	wordRe  = regexp.MustCompile(`\A[A-Za-z][A-Za-z0-9]*\z`)
)

// checkFileCase verifies that a file's stem (basename without extension)
// follows a naming style.
//
// Parameters:
//
//	style (string): one of "snake", "kebab", "camel", "pascal".
//	                Defaults to "snake".
func checkFileCase(path string, params domain.Params) (bool, string, error) {
	style := stringParam(params, "style", "snake")

	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	var ok bool
	switch style {
	case "snake":
		ok = snakeRe.MatchString(stem)
	case "kebab":
		ok = kebabRe.MatchString(stem)
	case "camel":
		ok = isCamelStem(stem, false)
	case "pascal":
		ok = isCamelStem(stem, true)
	default:
		return false, "", fmt.Errorf("unknown style %q, want snake, kebab, camel or pascal", style)
	}

	if !ok {
		return false, fmt.Sprintf("file name '%s' is not %s case", stem, style), nil
	}
	return true, "", nil
}

// isCamelStem reports whether stem is camelCase (upper=false) or PascalCase
// (upper=true). camelcase.Split breaks the stem into words so acronyms like
// "HTTPServer" are accepted.
func isCamelStem(stem string, upper bool) bool {
	if !wordRe.MatchString(stem) {
		return false
	}
	words := camelcase.Split(stem)
	if len(words) == 0 {
		return false
	}
	first := []rune(words[0])[0]
	if upper {
		return unicode.IsUpper(first)
	}
	return unicode.IsLower(first)
}
