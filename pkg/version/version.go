// Package version holds the build information of the pkgvault binary.
// main records it once with Set; everything else reads it with Get.
package version

import "fmt"

// Info is the build information.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

var info = Info{
	Version:   "dev",
	Commit:    "unknown",
	BuildDate: "unknown",
}

// Set records the build information. Empty values keep their defaults.
func Set(v, commit, date string) {
	if v != "" {
		info.Version = v
	}
	if commit != "" {
		info.Commit = commit
	}
	if date != "" {
		info.BuildDate = date
	}
}

// Get returns the recorded build information.
func Get() Info { return info }

// String renders the build information on one line.
func (i Info) String() string {
	return fmt.Sprintf("pkgvault %s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}
