package domain

// CheckerSource loads a registry of checker units from a fixed location.
type CheckerSource interface {
	Load() (*Registry, error)
}

// CheckerSourceFactory builds a CheckerSource for a checker directory.
type CheckerSourceFactory func(dir string) CheckerSource

// ConfigLoader loads a RunConfig from a config file path.
type ConfigLoader interface {
	Load(path string) (RunConfig, error)
}

// GitInfo reports version-control metadata for a checked directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
