package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Figglewatts/sanity/internal/domain"
)

func passingChecker() domain.Checker {
	return domain.CheckFunc(func(string, domain.Params) (bool, string, error) {
		return true, "", nil
	})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.Register("file_exists", passingChecker()))

	c, ok := reg.Get("file_exists")
	assert.True(t, ok)
	assert.NotNil(t, c)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_DuplicateNameRejected(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.Register("file_exists", passingChecker()))

	err := reg.Register("file_exists", passingChecker())
	assert.Error(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.Register("file_size", passingChecker()))
	require.NoError(t, reg.Register("dir_count", passingChecker()))
	require.NoError(t, reg.Register("file_exists", passingChecker()))

	assert.Equal(t, []string{"dir_count", "file_exists", "file_size"}, reg.Names())
}

func TestRegistry_Failures(t *testing.T) {
	reg := domain.NewRegistry()
	assert.Empty(t, reg.Failures())

	reg.RecordFailure("broken", "no check function")
	require.Len(t, reg.Failures(), 1)
	assert.Equal(t, "broken", reg.Failures()[0].Unit)
}

func TestRunReport_EmptyPasses(t *testing.T) {
	report := &domain.RunReport{}
	assert.True(t, report.Passed())
	assert.Zero(t, report.Failed())
}

func TestRunReport_SingleFailureFailsOverall(t *testing.T) {
	report := &domain.RunReport{Results: []domain.CheckResult{
		{Path: "a", Checker: "x", Passed: true},
		{Path: "b", Checker: "y", Passed: false, Reason: "bad"},
		{Path: "c", Checker: "z", Passed: true},
	}}

	assert.False(t, report.Passed())
	assert.Equal(t, 1, report.Failed())
}
