package benchmark

import (
	"fmt"
	"math"

	"hyperbench/internal/units"
)

// RelativeSpeed pairs a result with its standing against the fastest result.
type RelativeSpeed struct {
	Result *Result

	// Relative is Result.Mean divided by the fastest mean.
	Relative float64
	// RelativeStddev is the propagated uncertainty of Relative. It is nil
	// unless both this result and the fastest one report a stddev.
	RelativeStddev *float64

	IsFastest bool
}

// ComputeRelative compares every result against the one with the smallest
// mean. The first of several equal means wins. Entries keep input order.
// It returns nil when results is empty.
func ComputeRelative(results []Result) []RelativeSpeed {
	if len(results) == 0 {
		return nil
	}

	fastest := 0
	for i := 1; i < len(results); i++ {
		if results[i].Mean < results[fastest].Mean {
			fastest = i
		}
	}
	base := &results[fastest]

	entries := make([]RelativeSpeed, len(results))
	for i := range results {
		r := &results[i]
		ratio := r.Mean / base.Mean

		entry := RelativeSpeed{
			Result:    r,
			Relative:  ratio,
			IsFastest: i == fastest,
		}
		// Independent variables, so relative errors add in quadrature.
		if r.Stddev != nil && base.Stddev != nil {
			stddev := ratio * math.Sqrt(
				math.Pow(*r.Stddev/r.Mean, 2)+math.Pow(*base.Stddev/base.Mean, 2),
			)
			entry.RelativeStddev = &stddev
		}
		entries[i] = entry
	}
	return entries
}

// Fastest returns the baseline entry of a computed comparison.
func Fastest(entries []RelativeSpeed) (RelativeSpeed, bool) {
	for _, e := range entries {
		if e.IsFastest {
			return e, true
		}
	}
	return RelativeSpeed{}, false
}

// ResolveUnit picks the display unit for a table. A forced unit always wins;
// otherwise the first result's mean decides for every row.
func ResolveUnit(results []Result, forced *units.Unit) units.Unit {
	if forced != nil {
		return *forced
	}
	if len(results) == 0 {
		return units.Second
	}
	return units.ForDuration(results[0].Mean)
}

func (e RelativeSpeed) String() string {
	if e.RelativeStddev != nil {
		return fmt.Sprintf("%s: %.2f ± %.2f", e.Result.Command, e.Relative, *e.RelativeStddev)
	}
	return fmt.Sprintf("%s: %.2f", e.Result.Command, e.Relative)
}
