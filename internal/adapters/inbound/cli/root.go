package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sanity [flags] DIRECTORY",
		Short: "Perform sanity checks on directories of files",
		Long: "Sanity loads checker units from a directory and runs them against a directory " +
			"of assets, based on regex rules from a YAML config file. The exit code is zero " +
			"only when every check passes.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file (default: .sanity.yaml inside DIRECTORY)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckersCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
