package domain

import (
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Association pairs a path pattern with the checker-name patterns that apply
// to files matching it. Patterns are regexes with full-match semantics; path
// patterns match the file's basename so rules stay portable across
// directories.
type Association struct {
	Pattern  string
	Checkers []string
}

// AssociationList preserves the declaration order of
// file_checker_associations entries from the config file.
type AssociationList []Association

// UnmarshalYAML decodes a YAML mapping while keeping document order, which a
// plain map would lose.
func (l *AssociationList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("file_checker_associations must be a mapping of path pattern to checker patterns")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var checkers []string
		if err := val.Decode(&checkers); err != nil {
			return fmt.Errorf("association %q: %w", key.Value, err)
		}
		*l = append(*l, Association{Pattern: key.Value, Checkers: checkers})
	}
	return nil
}

// DefaultAssociations runs every checker against every file. Used when the
// config supplies no associations.
func DefaultAssociations() AssociationList {
	return AssociationList{{Pattern: "^.*$", Checkers: []string{"^.*$"}}}
}

// FileRule is one compiled file association.
type FileRule struct {
	Path     *regexp.Regexp
	Checkers []*regexp.Regexp
}

// RuleSet holds the compiled rule tables for one run: file rules applied per
// file, and a single list of directory checks applied to every visited
// directory.
type RuleSet struct {
	FileRules      []FileRule
	DirectoryRules []*regexp.Regexp
}

// CompileRules compiles associations and directory checks into a RuleSet.
// Empty associations fall back to DefaultAssociations. All patterns are
// anchored to match the full string, so a pattern like `file_` never matches
// `my_file_checker` by substring.
func CompileRules(assocs AssociationList, dirChecks []string) (*RuleSet, error) {
	if len(assocs) == 0 {
		assocs = DefaultAssociations()
	}

	rs := &RuleSet{}
	for _, a := range assocs {
		path, err := compileAnchored(a.Pattern)
		if err != nil {
			return nil, &RuleError{Rule: a.Pattern, Err: err}
		}
		rule := FileRule{Path: path}
		for _, c := range a.Checkers {
			re, err := compileAnchored(c)
			if err != nil {
				return nil, &RuleError{Rule: a.Pattern, Err: err}
			}
			rule.Checkers = append(rule.Checkers, re)
		}
		rs.FileRules = append(rs.FileRules, rule)
	}

	for _, d := range dirChecks {
		re, err := compileAnchored(d)
		if err != nil {
			return nil, &RuleError{Rule: d, Err: err}
		}
		rs.DirectoryRules = append(rs.DirectoryRules, re)
	}

	return rs, nil
}

func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)\z`)
}

// CheckersForFile resolves which of the registered checkers run against a
// file. name is the file's basename. Every matching association contributes
// to the result (union, not first match); duplicates collapse, and the
// result is sorted by checker name so repeated runs on an unchanged tree
// produce identical reports. No match means the file is skipped.
func (rs *RuleSet) CheckersForFile(name string, all []string) []string {
	matched := make(map[string]bool)
	for _, rule := range rs.FileRules {
		if !rule.Path.MatchString(name) {
			continue
		}
		for _, re := range rule.Checkers {
			for _, checker := range all {
				if re.MatchString(checker) {
					matched[checker] = true
				}
			}
		}
	}
	return sortedKeys(matched)
}

// CheckersForDirectory resolves which of the registered checkers run against
// a visited directory. Directories never match file rules.
func (rs *RuleSet) CheckersForDirectory(all []string) []string {
	matched := make(map[string]bool)
	for _, re := range rs.DirectoryRules {
		for _, checker := range all {
			if re.MatchString(checker) {
				matched[checker] = true
			}
		}
	}
	return sortedKeys(matched)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
