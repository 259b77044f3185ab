package main

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/magnusbaeck/shunit-runner/internal/app"
)

// version describes the binary. Released builds (go install ...@vX)
// carry a module version; local builds are described by their VCS
// state.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(unknown)"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, kv := range info.Settings {
		settings[kv.Key] = kv.Value
	}

	var vcsinfo []string
	if vcs, found := settings["vcs"]; found {
		vcsinfo = append(vcsinfo, vcs)
	}
	if revision, found := settings["vcs.revision"]; found {
		if len(revision) > 7 {
			revision = revision[0:7]
		}
		vcsinfo = append(vcsinfo, revision)
	}
	if time, found := settings["vcs.time"]; found {
		vcsinfo = append(vcsinfo, time)
	}
	if settings["vcs.modified"] == "true" {
		vcsinfo = append(vcsinfo, "dirty")
	}
	if len(vcsinfo) == 0 {
		return "(unknown)"
	}
	return strings.Join(vcsinfo, " ")
}

func main() {
	os.Exit(app.Execute(version(), os.Stdout, os.Stderr))
}
