package domain

import "fmt"

// RunConfig holds run configuration parsed from the YAML config file.
//
//	checker_dir: checkers            # required
//	file_checker_associations:       # optional, default: every checker on every file
//	  '^.*\.png$': ['^file_.*$']
//	directory_checks: []             # optional, default: no directory checks
//	parameters:                      # optional, default: empty
//	  file_sizechecker: {max_size: 1048576}
//	recursive: false                 # optional
//	builtin_checkers: false          # optional, enables the bundled checkers
type RunConfig struct {
	CheckerDir      string          `yaml:"checker_dir"               json:"checker_dir"`
	Associations    AssociationList `yaml:"file_checker_associations" json:"file_checker_associations,omitempty"`
	DirectoryChecks []string        `yaml:"directory_checks"          json:"directory_checks,omitempty"`
	Parameters      ParameterTable  `yaml:"parameters"                json:"parameters,omitempty"`
	Recursive       bool            `yaml:"recursive"                 json:"recursive,omitempty"`
	BuiltinCheckers bool            `yaml:"builtin_checkers"          json:"builtin_checkers,omitempty"`
}

// Validate checks that all required keys are present.
func (c RunConfig) Validate() error {
	if c.CheckerDir == "" {
		return fmt.Errorf("missing required key: checker_dir")
	}
	return nil
}

// Rules compiles the configured rule tables into a RuleSet.
func (c RunConfig) Rules() (*RuleSet, error) {
	return CompileRules(c.Associations, c.DirectoryChecks)
}
