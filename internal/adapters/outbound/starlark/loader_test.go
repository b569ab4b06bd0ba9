package starlark_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	starlarkadapter "github.com/Figglewatts/sanity/internal/adapters/outbound/starlark"
	"github.com/Figglewatts/sanity/internal/domain"
)

func writeUnit(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
}

func TestLoader_MissingDirectoryIsFatal(t *testing.T) {
	_, err := starlarkadapter.NewLoader(filepath.Join(t.TempDir(), "nope")).Load()
	require.Error(t, err)

	var loadErr *domain.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoader_PathMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "f.star", "")

	_, err := starlarkadapter.NewLoader(filepath.Join(dir, "f.star")).Load()

	var loadErr *domain.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoader_LoadsUnitsByBaseName(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "file_exists.star", `
def check(path, params):
    return (path_exists(path), "file did not exist")
`)
	writeUnit(t, dir, "dir_count.star", `
def check(path, params):
    return (True, "")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"dir_count", "file_exists"}, reg.Names())
	assert.Empty(t, reg.Failures())
}

func TestLoader_SkipsUnderscoreAndForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "_helpers.star", `def helper(): return 1`)
	writeUnit(t, dir, "notes.txt", "not a checker")
	writeUnit(t, dir, "real.star", `
def check(path, params):
    return (True, "")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"real"}, reg.Names())
	assert.Empty(t, reg.Failures())
}

func TestLoader_MalformedUnitIsExcludedNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "broken.star", `def check(path,`)
	writeUnit(t, dir, "good.star", `
def check(path, params):
    return (True, "")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"good"}, reg.Names())
	require.Len(t, reg.Failures(), 1)
	assert.Equal(t, "broken", reg.Failures()[0].Unit)
}

func TestLoader_MissingCheckFunctionIsExcluded(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "nocheck.star", `x = 1`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Empty(t, reg.Names())
	require.Len(t, reg.Failures(), 1)
	assert.Contains(t, reg.Failures()[0].Reason, "does not define check")
}

func TestLoader_WrongSignatureIsExcluded(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "onearg.star", `
def check(path):
    return (True, "")
`)
	writeUnit(t, dir, "notafunc.star", `check = 42`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Empty(t, reg.Names())
	assert.Len(t, reg.Failures(), 2)
}

func TestUnitChecker_VerdictAndReason(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "sizecheck.star", `
def check(path, params):
    max_size = params.get("max_size", -1)
    if max_size != -1 and file_size(path) > max_size:
        return (False, "file too big")
    return (True, "")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)
	checker, ok := reg.Get("sizecheck")
	require.True(t, ok)

	target := filepath.Join(dir, "asset.bin")
	require.NoError(t, os.WriteFile(target, []byte("0123456789"), 0644))

	passed, reason, err := checker.Check(target, domain.Params{"max_size": 100})
	require.NoError(t, err)
	assert.True(t, passed)
	assert.Empty(t, reason)

	passed, reason, err = checker.Check(target, domain.Params{"max_size": 5})
	require.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, "file too big", reason)
}

func TestUnitChecker_ParamsConvert(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "paramcheck.star", `
def check(path, params):
    names = params.get("names", [])
    nested = params.get("nested", {})
    ok = "a" in names and nested.get("flag", False)
    return (ok, "missing expected params")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)
	checker, ok := reg.Get("paramcheck")
	require.True(t, ok)

	passed, _, err := checker.Check("x", domain.Params{
		"names":  []any{"a", "b"},
		"nested": map[string]any{"flag": true},
	})
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestUnitChecker_ScriptFailureIsInvocationFault(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "faulty.star", `
def check(path, params):
    fail("boom")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)
	checker, ok := reg.Get("faulty")
	require.True(t, ok)

	_, _, err = checker.Check("x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestUnitChecker_BadReturnShapeIsInvocationFault(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "badshape.star", `
def check(path, params):
    return True
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)
	checker, ok := reg.Get("badshape")
	require.True(t, ok)

	_, _, err = checker.Check("x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want a (bool, string) tuple")
}

func TestBuiltins_AvailableToUnits(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "helpers.star", `
def check(path, params):
    stem, ext = splitext(basename(path))
    if not re_match("^asset-[0-9]+$", stem):
        return (False, "bad stem: " + stem)
    if ext != ".png":
        return (False, "bad extension: " + ext)
    return (True, "")
`)

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)
	checker, ok := reg.Get("helpers")
	require.True(t, ok)

	passed, _, err := checker.Check("some/dir/asset-12.png", nil)
	require.NoError(t, err)
	assert.True(t, passed)

	passed, reason, err := checker.Check("some/dir/asset-xx.png", nil)
	require.NoError(t, err)
	assert.False(t, passed)
	assert.Contains(t, reason, "bad stem")
}

func TestBuiltins_ListFiles(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "dir_hasreadme.star", `
def check(path, params):
    if "README.md" in list_files(path):
        return (True, "")
    return (False, "README.md missing")
`)

	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "README.md"), []byte("# hi"), 0644))

	reg, err := starlarkadapter.NewLoader(dir).Load()
	require.NoError(t, err)
	checker, ok := reg.Get("dir_hasreadme")
	require.True(t, ok)

	passed, _, err := checker.Check(target, nil)
	require.NoError(t, err)
	assert.True(t, passed)
}
