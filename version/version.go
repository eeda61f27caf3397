package version

import (
	"fmt"
	"runtime"
)

// Build information, set at build time via ldflags:
//
//	go build -ldflags "-X github.com/teranos/lad/version.Version=0.2.0 \
//	  -X github.com/teranos/lad/version.CommitHash=$(git rev-parse HEAD)"
var (
	CommitHash = "dev"
	BuildTime  = "unknown"

	// Version of the ladgen binary
	Version = "0.1.0"

	// LADVersion is stamped into LAD files that do not set a version
	LADVersion = "0.1.0"
)

// Info describes the running ladgen build
type Info struct {
	Version    string `json:"version"`
	LADVersion string `json:"lad_version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:    Version,
		LADVersion: LADVersion,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line banner printed by `ladgen version`
func (i Info) String() string {
	s := fmt.Sprintf("ladgen %s (%s), writes LAD %s", i.Version, i.Short(), i.LADVersion)
	if i.BuildTime != "unknown" {
		s += ", built " + i.BuildTime
	}
	return s
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
