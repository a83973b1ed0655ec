package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/GildedRose_Go/internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

var buildSettings = sync.OnceValue(func() map[string]string {
	settings := map[string]string{}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
})

// HandleVersion reports the running build. Ldflags win, then $VERSION, then
// the VCS stamp the Go toolchain embeds.
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, currentVersion())
	}
}

func currentVersion() VersionInfo {
	vcs := buildSettings()
	info := VersionInfo{
		Version:   firstNonEmpty(Version, os.Getenv("VERSION"), "dev"),
		GoVersion: runtime.Version(),
		BuildTime: firstNonEmpty(BuildTime, vcs["vcs.time"]),
		GitCommit: firstNonEmpty(GitCommit, vcs["vcs.revision"]),
	}
	if GitCommit == "" {
		info.Modified = vcs["vcs.modified"] == "true"
	}
	return info
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
