package starlark

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
)

// builtins returns the predeclared globals available to checker units.
// Starlark has no ambient filesystem access, so the helpers checkers need to
// inspect their target are provided here.
func builtins() starlark.StringDict {
	return starlark.StringDict{
		"file_size":   starlark.NewBuiltin("file_size", fileSizeBuiltin),
		"list_files":  starlark.NewBuiltin("list_files", listFilesBuiltin),
		"path_exists": starlark.NewBuiltin("path_exists", pathExistsBuiltin),
		"basename":    starlark.NewBuiltin("basename", basenameBuiltin),
		"splitext":    starlark.NewBuiltin("splitext", splitextBuiltin),
		"re_match":    starlark.NewBuiltin("re_match", reMatchBuiltin),
		"read_text":   starlark.NewBuiltin("read_text", readTextBuiltin),
	}
}

// file_size(path) -> int: size of the file at path in bytes.
func fileSizeBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &path); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.MakeInt64(info.Size()), nil
}

// list_files(path) -> list of string: names of the files directly inside a
// directory. Subdirectories are not included.
func listFilesBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &path); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	var names []starlark.Value
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, starlark.String(entry.Name()))
		}
	}
	return starlark.NewList(names), nil
}

// path_exists(path) -> bool.
func pathExistsBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &path); err != nil {
		return nil, err
	}
	_, err := os.Stat(path)
	return starlark.Bool(err == nil), nil
}

// basename(path) -> string: last element of path.
func basenameBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &path); err != nil {
		return nil, err
	}
	return starlark.String(filepath.Base(path)), nil
}

// splitext(path) -> (stem, ext): basename split at the final extension.
func splitextBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &path); err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return starlark.Tuple{starlark.String(stem), starlark.String(ext)}, nil
}

// re_match(pattern, s) -> bool: whether s fully matches pattern, the same
// anchored semantics rule patterns use.
func reMatchBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pattern, s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &pattern, &s); err != nil {
		return nil, err
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%s: bad pattern %q: %w", b.Name(), pattern, err)
	}
	return starlark.Bool(re.MatchString(s)), nil
}

// read_text(path) -> string: entire file contents as text.
func readTextBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.String(data), nil
}
