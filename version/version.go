// Package version reports build metadata for the typeconfig binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is a snapshot of build metadata.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the current [Info]. When Version was not set at link time, the
// main module version from the build info is used, then "devel".
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		info.Revision = revision(bi.Settings)
	}

	if info.Version == "" {
		info.Version = "devel"
	}

	return info
}

// String renders the info as a single line.
func (i Info) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "typeconfig %s (revision %s", i.Version, i.Revision)

	if i.BuildDate != "" {
		fmt.Fprintf(&sb, ", built %s", i.BuildDate)
	}

	fmt.Fprintf(&sb, ") %s %s", i.GoVersion, i.Platform)

	return sb.String()
}

func revision(settings []debug.BuildSetting) string {
	rev := "unknown"
	modified := false

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
