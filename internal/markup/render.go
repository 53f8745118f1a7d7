package markup

import (
	"strings"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/units"
)

// FormatTime renders a duration in the given unit, followed by its stddev
// when one is known.
func FormatTime(seconds float64, stddev *float64, unit units.Unit) string {
	s := unit.Format(seconds)
	if stddev != nil {
		s += " ± " + unit.Format(*stddev)
	}
	return s
}

// FormatRelative renders a speed ratio with two decimals.
func FormatRelative(relative float64, stddev *float64) string {
	s := units.FormatFixed(relative, 2)
	if stddev != nil {
		s += " ± " + units.FormatFixed(*stddev, 2)
	}
	return s
}

// Cells returns the formatted table cells for one entry.
func Cells(d Dialect, e benchmark.RelativeSpeed, unit units.Unit) []string {
	relStddev := e.RelativeStddev
	if e.IsFastest {
		relStddev = nil
	}
	return []string{
		d.Command(e.Result.Command),
		FormatTime(e.Result.Mean, e.Result.Stddev, unit),
		FormatTime(e.Result.Min, nil, unit),
		FormatTime(e.Result.Max, nil, unit),
		FormatRelative(e.Relative, relStddev),
	}
}

// Render builds the complete table, one row per entry in input order.
func Render(d Dialect, entries []benchmark.RelativeSpeed, unit units.Unit) string {
	var b strings.Builder
	b.WriteString(d.TableHeader(unit.ShortName()))
	b.WriteString(d.TableDivider())
	for _, e := range entries {
		b.WriteString(d.TableRow(Cells(d, e, unit)))
	}
	b.WriteString(d.TableFooter())
	return b.String()
}
