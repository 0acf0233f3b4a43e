// Package buildinfo describes the running cheatsheet binary.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Version is the release version, set with -ldflags at release time.
var Version = "0.1.0-DEV"

// Dependency is a module the binary was built with.
type Dependency struct {
	// The module path, e.g. "github.com/spf13/cobra".
	Path string

	// The module version.
	Version string

	// Replaced by this dependency.
	Replace *Dependency
}

// Info contains information about the current binary.
type Info struct {
	Version    string
	CommitHash string
	BuildDate  time.Time

	// Whether the working tree had local changes at build time.
	Modified bool

	// version of go that the binary was built with
	GoVersion string

	Deps []*Dependency
}

// Get returns the Info of the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return fromBuildInfo(info, bi)
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.CommitHash = s.Value
		case "vcs.time":
			info.BuildDate, _ = time.Parse(time.RFC3339, s.Value)
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	for _, m := range bi.Deps {
		info.Deps = append(info.Deps, toDependency(m))
	}

	return info
}

func toDependency(m *debug.Module) *Dependency {
	d := &Dependency{Path: m.Path, Version: m.Version}
	if m.Replace != nil {
		d.Replace = toDependency(m.Replace)
	}
	return d
}

// String returns the one line version string printed by the version command.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cheatsheet v%s", i.Version)
	if i.CommitHash != "" {
		hash := i.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		fmt.Fprintf(&b, "-%s", hash)
		if i.Modified {
			b.WriteString("+dirty")
		}
	}
	fmt.Fprintf(&b, " %s/%s", runtime.GOOS, runtime.GOARCH)
	if !i.BuildDate.IsZero() {
		fmt.Fprintf(&b, " BuildDate=%s", i.BuildDate.Format(time.RFC3339))
	}
	return b.String()
}
