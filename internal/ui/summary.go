package ui

import (
	"cmp"
	"slices"
	"strings"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/units"
)

// Summary describes how much faster the fastest command was than each of
// the others, slowest last. It returns "" for an empty comparison.
func Summary(s Styles, entries []benchmark.RelativeSpeed) string {
	fastest, ok := benchmark.Fastest(entries)
	if !ok {
		return ""
	}

	others := make([]benchmark.RelativeSpeed, 0, len(entries)-1)
	for _, e := range entries {
		if !e.IsFastest {
			others = append(others, e)
		}
	}
	slices.SortStableFunc(others, func(a, b benchmark.RelativeSpeed) int {
		return cmp.Compare(a.Relative, b.Relative)
	})

	var b strings.Builder
	b.WriteString(s.Title.Render("Summary") + "\n")
	b.WriteString("  " + s.Command.Render(fastest.Result.Command) + " ran\n")
	for _, e := range others {
		ratio := units.FormatFixed(e.Relative, 2)
		if e.RelativeStddev != nil {
			ratio += " ± " + units.FormatFixed(*e.RelativeStddev, 2)
		}
		b.WriteString("    " + s.Ratio.Render(ratio) + " times faster than " + s.Command.Render(e.Result.Command) + "\n")
	}
	return b.String()
}
