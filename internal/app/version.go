package app

import (
	"runtime/debug"
	"strings"
)

// Release metadata. Version is stamped with
// -ldflags "-X github.com/heartmarshall/calorie-backend/internal/app.Version=v1.4.0";
// commit and build time fall back to the VCS stamp of the Go toolchain.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for logs and /health.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, vcsSettings())
}

func vcsSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	out := make(map[string]string)
	for _, s := range info.Settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			out[s.Key] = s.Value
		}
	}
	return out
}

func formatVersion(version, commit, built string, vcs map[string]string) string {
	if commit == "" {
		commit = vcs["vcs.revision"]
	}
	if built == "" {
		built = vcs["vcs.time"]
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit != "" && vcs["vcs.modified"] == "true" {
		commit += "-dirty"
	}

	var b strings.Builder
	b.WriteString(version)
	if commit != "" {
		b.WriteString(" (" + commit)
		if built != "" {
			b.WriteString(", " + built)
		}
		b.WriteString(")")
	}
	return b.String()
}
