package output

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns the unified diff between the current and proposed strings.
func Diff(currRaw, newRaw string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(currRaw),
		B:        difflib.SplitLines(newRaw),
		FromFile: "Current",
		ToFile:   "Proposed",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// Colorize colors additions in the given diff green, and deletions red.
func Colorize(toColorize string) string {
	var colorized bytes.Buffer
	for _, line := range strings.SplitAfter(toColorize, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			colorized.WriteString(color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			colorized.WriteString(color.RedString("%s", line))
		default:
			colorized.WriteString(line)
		}
	}

	return colorized.String()
}
