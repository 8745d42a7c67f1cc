// Package version holds build metadata of the prelex CLI.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Parsed returns Version as a semantic version, nil when it is not one.
func Parsed() *semver.Version {
	v, err := semver.NewVersion(strings.TrimSpace(Version))
	if err != nil {
		return nil
	}
	return v
}

// Colored renders Version with major, minor and patch in distinct colors.
// Color output follows color.NoColor.
func Colored() string {
	v := Parsed()
	if v == nil {
		return Version
	}
	s := versionMajorColor.Sprint(v.Major()) + "." +
		versionMinorColor.Sprint(v.Minor()) + "." +
		versionPatchColor.Sprint(v.Patch())
	if pre := v.Prerelease(); pre != "" {
		s += "-" + pre
	}
	if meta := v.Metadata(); meta != "" {
		s += "+" + meta
	}
	return s
}
