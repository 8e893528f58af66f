package config

import "runtime/debug"

// Version is the git revision the binary was built from, or "devel".
var Version = "devel"

func init() {
	// https://pkg.go.dev/runtime/debug#ReadBuildInfo
	if info, ok := debug.ReadBuildInfo(); ok {
		Version = revision(info.Settings)
	}
}

// revision formats the short vcs revision with a "-dirty" marker for modified
// trees.
func revision(settings []debug.BuildSetting) string {
	rev, dirty := "", ""
	for _, setting := range settings {
		switch {
		case setting.Key == "vcs.revision":
			rev = setting.Value
		case setting.Key == "vcs.modified" && setting.Value == "true":
			dirty = "-dirty"
		}
	}
	if rev == "" {
		return "devel"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev + dirty
}
