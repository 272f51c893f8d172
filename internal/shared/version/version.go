// Package version exposes the build version set through -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/opolancoh/employee-permissions/internal/shared/version.Version=1.2.0"
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String renders the build version; non-semver values such as "dev" pass through unchanged.
func String() string {
	v := Version
	if n := Normalize(v); semver.IsValid(n) {
		v = n
	}
	if Commit != "" {
		v += " (" + Commit + ")"
	}
	return v
}
