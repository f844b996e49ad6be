package gen

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	removedColor = color.New(color.FgRed)
	addedColor   = color.New(color.FgGreen)
)

// Diff returns a line diff of <before> against <after> labeled with <name>, and true if they differ. Only changed lines
// are listed, prefixed with '-' or '+'.
func Diff(name, before, after string) (string, bool) {
	if before == after {
		return "", false
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("--- " + name + "\n+++ " + name + " (generated)\n")
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", removedColor
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", addedColor
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			sb.WriteString(c.Sprint(prefix+line) + "\n")
		}
	}
	return sb.String(), true
}
