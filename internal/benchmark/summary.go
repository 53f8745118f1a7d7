package benchmark

import (
	"maps"

	"github.com/aclements/go-moremath/stats"
)

// Summarize builds a Result from raw per-run durations in seconds.
// Stddev is left unset when fewer than two samples are available.
func Summarize(command string, times []float64, exitCodes []*int, params map[string]string) Result {
	res := Result{
		Command:    command,
		Times:      append([]float64(nil), times...),
		ExitCodes:  append([]*int(nil), exitCodes...),
		Parameters: maps.Clone(params),
	}
	if len(times) == 0 {
		return res
	}

	sample := stats.Sample{Xs: append([]float64(nil), times...)}
	sample.Sort()

	res.Mean = sample.Mean()
	res.Median = sample.Quantile(0.5)
	res.Min, res.Max = sample.Bounds()
	if len(times) > 1 {
		res.Stddev = Float(sample.StdDev())
	}
	return res
}
