// Package version provides shared version information and a reusable version
// command, eliminating duplicated version boilerplate.
package version

import "fmt"

// Info holds version information for a binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	Name      string `json:"name" yaml:"name"`
}

// New creates a new Info with default values. Version, BuildDate, GitCommit
// are expected to be set via ldflags at build time.
func New(name string) *Info {
	return &Info{
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
		Name:      name,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
