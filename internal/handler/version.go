package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
	"sync"
)

// VersionInfo describes the running binary
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Version can be set with -ldflags "-X .../internal/handler.Version=1.2.3"
var Version = ""

var (
	buildInfoOnce sync.Once
	buildInfo     VersionInfo
)

// HandleVersion returns the build information of the binary
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, currentVersion())
	}
}

// currentVersion reads the module version and VCS stamp the toolchain embeds
func currentVersion() VersionInfo {
	buildInfoOnce.Do(func() {
		buildInfo = VersionInfo{Version: "dev", GoVersion: runtime.Version()}
		if info, ok := debug.ReadBuildInfo(); ok {
			if v := info.Main.Version; v != "" && v != "(devel)" {
				buildInfo.Version = v
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					buildInfo.Revision = s.Value
				case "vcs.time":
					buildInfo.BuildTime = s.Value
				case "vcs.modified":
					buildInfo.Modified = s.Value == "true"
				}
			}
		}
		if Version != "" {
			buildInfo.Version = Version
		}
	})
	return buildInfo
}
