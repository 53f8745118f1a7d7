package benchmark

import (
	"maps"
	"slices"
	"time"
)

// Result is the measurement record for one benchmarked command.
// All durations are in seconds.
type Result struct {
	Command string   `json:"command"`
	Mean    float64  `json:"mean"`
	Stddev  *float64 `json:"stddev"` // nil when uncertainty was not reported
	Median  float64  `json:"median"`
	User    float64  `json:"user"`
	System  float64  `json:"system"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`

	Times      []float64         `json:"times,omitempty"`
	ExitCodes  []*int            `json:"exit_codes"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// ParameterNames returns the result's parameter names in lexicographic order.
func (r Result) ParameterNames() []string {
	return slices.Sorted(maps.Keys(r.Parameters))
}

// Run is a set of results produced by a single execution of the tool.
type Run struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Commit    string    `json:"commit,omitempty"` // Git commit hash
	Results   []Result  `json:"results"`
}

// Float returns a pointer to v, for populating optional fields.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
