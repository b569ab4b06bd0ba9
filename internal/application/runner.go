package application

import (
	"github.com/Figglewatts/sanity/internal/domain"
	"github.com/Figglewatts/sanity/internal/domain/checkers"
)

// Runner wires the full pipeline behind one entry point: load config, load
// checker units, compile rules, dispatch. Both the CLI and the MCP server
// drive runs through it.
type Runner struct {
	configs domain.ConfigLoader
	sources domain.CheckerSourceFactory
	git     domain.GitInfo
}

func NewRunner(configs domain.ConfigLoader, sources domain.CheckerSourceFactory, git domain.GitInfo) *Runner {
	return &Runner{configs: configs, sources: sources, git: git}
}

// Run checks directory using the config at configPath. Load failures of
// individual checker units are returned alongside the report so the caller
// can surface them as warnings; they do not abort the run.
func (r *Runner) Run(directory, configPath string) (*domain.RunReport, []domain.LoadFailure, error) {
	cfg, err := r.configs.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	registry, err := r.loadRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}

	rules, err := cfg.Rules()
	if err != nil {
		return nil, registry.Failures(), err
	}

	report, err := NewCheckService(registry).Run(directory, rules, cfg.Parameters, cfg.Recursive)
	if err != nil {
		return nil, registry.Failures(), err
	}

	r.stampCommit(report, directory)
	return report, registry.Failures(), nil
}

// LoadCheckers loads the checker registry for the config at configPath
// without running any checks.
func (r *Runner) LoadCheckers(configPath string) (*domain.Registry, error) {
	cfg, err := r.configs.Load(configPath)
	if err != nil {
		return nil, err
	}
	return r.loadRegistry(cfg)
}

func (r *Runner) loadRegistry(cfg domain.RunConfig) (*domain.Registry, error) {
	registry, err := r.sources(cfg.CheckerDir).Load()
	if err != nil {
		return nil, err
	}
	if cfg.BuiltinCheckers {
		checkers.Install(registry)
	}
	return registry, nil
}

// stampCommit records the target's HEAD hash when it is a git repository.
// Purely informational; failures leave the report unstamped.
func (r *Runner) stampCommit(report *domain.RunReport, directory string) {
	if r.git == nil || !r.git.IsGitRepo(directory) {
		return
	}
	if hash, err := r.git.CommitHash(directory); err == nil {
		report.CommitHash = hash
	}
}
