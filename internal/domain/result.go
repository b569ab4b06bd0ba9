package domain

// CheckResult records the outcome of a single checker invocation against a
// single path. Results are immutable once produced.
type CheckResult struct {
	Path    string `json:"path"`
	Checker string `json:"checker"`
	Passed  bool   `json:"passed"`
	Reason  string `json:"reason,omitempty"`
}

// RunReport is the ordered sequence of results produced by one dispatch run.
// The order is deterministic: a directory's own checks come first, then its
// files sorted by name, then its subdirectories sorted by name.
type RunReport struct {
	Root       string        `json:"root"`
	CommitHash string        `json:"commit_hash,omitempty"`
	Results    []CheckResult `json:"results"`
}

// Passed reports the overall verdict: the logical AND of every individual
// verdict. An empty report passes, since no check failed.
func (r *RunReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failed returns the number of failing results.
func (r *RunReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}
