package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	starlarkadapter "github.com/Figglewatts/sanity/internal/adapters/outbound/starlark"
	"github.com/Figglewatts/sanity/internal/adapters/outbound/tui"
	"github.com/Figglewatts/sanity/internal/domain/checkers"
)

func newCheckersCmd() *cobra.Command {
	var builtins bool

	cmd := &cobra.Command{
		Use:   "checkers CHECKER_DIR",
		Short: "List the checker units loadable from a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := starlarkadapter.NewLoader(args[0]).Load()
			if err != nil {
				return err
			}
			if builtins {
				checkers.Install(registry)
			}

			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			if failures := registry.Failures(); len(failures) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), tui.RenderLoadFailures(failures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtins, "builtins", false, "Include the built-in checkers in the listing")
	return cmd
}
