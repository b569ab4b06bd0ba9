package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Figglewatts/sanity/internal/adapters/outbound/tui"
	"github.com/Figglewatts/sanity/internal/domain"
)

func TestRenderRunReport_AllPassed(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		Root: "/assets",
		Results: []domain.CheckResult{
			{Path: "/assets/a.png", Checker: "file_namechecker", Passed: true},
			{Path: "/assets/b.png", Checker: "file_sizechecker", Passed: true},
		},
	})

	assert.Contains(t, out, "sanity")
	assert.Contains(t, out, "/assets")
	assert.Contains(t, out, "All checks PASSED")
	assert.Contains(t, out, "file_namechecker")
	assert.Contains(t, out, "2 passed")
	assert.NotContains(t, out, "failed")
}

func TestRenderRunReport_FailuresShowReasons(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		Root: "/assets",
		Results: []domain.CheckResult{
			{Path: "/assets/a.png", Checker: "file_namechecker", Passed: true},
			{Path: "/assets/b.png", Checker: "file_sizechecker", Passed: false,
				Reason: "file size '99' byte(s) was bigger than maximum '10'"},
		},
	})

	assert.Contains(t, out, "1 of 2 checks FAILED")
	assert.Contains(t, out, "bigger than maximum")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
}

func TestRenderRunReport_CommitHashShortened(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		Root:       "/assets",
		CommitHash: "0123456789abcdef0123456789abcdef01234567",
	})

	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789abcdef")
}

func TestRenderRunReport_EmptyReport(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{Root: "/assets"})

	assert.Contains(t, out, "All checks PASSED")
	assert.Contains(t, out, "No checks matched anything")
	assert.NotContains(t, out, "Summary")
}

func TestRenderLoadFailures(t *testing.T) {
	out := tui.RenderLoadFailures([]domain.LoadFailure{
		{Unit: "broken", Reason: "unit does not define check(path, params)"},
	})

	assert.Contains(t, out, "1 checker unit(s) failed to load")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "does not define check")
}

func TestRenderLoadFailures_EmptyIsSilent(t *testing.T) {
	assert.Empty(t, tui.RenderLoadFailures(nil))
}
