package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Figglewatts/sanity/internal/adapters/outbound/config"
	"github.com/Figglewatts/sanity/internal/adapters/outbound/gitinfo"
	starlarkadapter "github.com/Figglewatts/sanity/internal/adapters/outbound/starlark"
	"github.com/Figglewatts/sanity/internal/adapters/outbound/tui"
	"github.com/Figglewatts/sanity/internal/application"
	"github.com/Figglewatts/sanity/internal/domain"
)

// newRunner wires the standard set of outbound adapters.
func newRunner() *application.Runner {
	return application.NewRunner(
		config.New(),
		func(dir string) domain.CheckerSource { return starlarkadapter.NewLoader(dir) },
		gitinfo.New(),
	)
}

// resolveConfigPath applies the default config location: .sanity.yaml inside
// the target directory.
func resolveConfigPath(directory, configPath string) string {
	if configPath == "" {
		return filepath.Join(directory, config.DefaultFileName)
	}
	return configPath
}

func runCheck(cmd *cobra.Command, directory, configPath string, jsonOutput bool) error {
	report, failures, err := newRunner().Run(directory, resolveConfigPath(directory, configPath))

	if len(failures) > 0 && !jsonOutput {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderLoadFailures(failures))
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report))
	}

	if !report.Passed() {
		return fmt.Errorf("%d of %d checks failed", report.Failed(), len(report.Results))
	}
	return nil
}
