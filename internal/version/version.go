// Package version exposes build metadata for the reshape CLI. The variables
// are plain strings so release builds can override them via -ldflags.
package version

import "github.com/fatih/color"

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var segmentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Pretty returns the version with each dotted segment colorized for
// terminal output.
func Pretty() string {
	out := ""
	segment := 0
	for i := 0; i < len(Version); i++ {
		if Version[i] == '.' {
			out += "."
			segment++
			continue
		}
		c := segmentColors[segment%len(segmentColors)]
		out += c.Sprint(string(Version[i]))
	}
	return out
}
