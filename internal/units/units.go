// Package units defines the time units used to display benchmark durations.
package units

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Unit is a display magnitude for durations measured in seconds.
type Unit int

const (
	Second Unit = iota
	MilliSecond
	MicroSecond
)

// All lists the known units from largest to smallest.
var All = []Unit{Second, MilliSecond, MicroSecond}

type unitInfo struct {
	name      string
	short     string
	factor    float64 // display value per second
	precision int
	threshold float64 // smallest mean (seconds) for which this unit is chosen
}

var table = map[Unit]unitInfo{
	Second:      {name: "second", short: "s", factor: 1, precision: 3, threshold: 1},
	MilliSecond: {name: "millisecond", short: "ms", factor: 1e3, precision: 1, threshold: 1e-3},
	MicroSecond: {name: "microsecond", short: "µs", factor: 1e6, precision: 1, threshold: 0},
}

// String returns the long name of the unit.
func (u Unit) String() string {
	if info, ok := table[u]; ok {
		return info.name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ShortName returns the abbreviation used in table headers.
func (u Unit) ShortName() string {
	return table[u].short
}

// Precision returns the number of fractional digits rendered for the unit.
func (u Unit) Precision() int {
	return table[u].precision
}

// FromSeconds converts a value in seconds to this unit.
func (u Unit) FromSeconds(seconds float64) float64 {
	return seconds * table[u].factor
}

// ToSeconds converts a value in this unit back to seconds.
func (u Unit) ToSeconds(value float64) float64 {
	return value / table[u].factor
}

// Format renders a duration given in seconds in this unit, without suffix.
func (u Unit) Format(seconds float64) string {
	return FormatFixed(u.FromSeconds(seconds), u.Precision())
}

// ForDuration picks the largest unit whose threshold the duration reaches.
func ForDuration(seconds float64) Unit {
	for _, u := range All {
		if seconds >= table[u].threshold {
			return u
		}
	}
	return MicroSecond
}

// ParseUnit resolves a user supplied unit name.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "second", "seconds", "s":
		return Second, nil
	case "millisecond", "milliseconds", "ms":
		return MilliSecond, nil
	case "microsecond", "microseconds", "us", "µs":
		return MicroSecond, nil
	}
	return 0, fmt.Errorf("unknown time unit %q (expected second, millisecond or microsecond)", s)
}

// FormatFixed renders v with the given number of decimals. Rounding is
// half away from zero on the exact binary value, so 1.45 (stored as
// 1.4499...) renders as "1.4" while an exact tie such as 0.25 renders as "0.3".
func FormatFixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}

	// A float64 has at most 1074 fractional decimal digits.
	exact := new(big.Float).SetFloat64(v).Text('f', 1074+decimals)
	neg := strings.HasPrefix(exact, "-")
	intPart, frac, _ := strings.Cut(strings.TrimPrefix(exact, "-"), ".")

	digits := []byte(intPart + frac[:decimals])
	if frac[decimals] >= '5' {
		digits = incrementDigits(digits)
	}

	intLen := len(digits) - decimals
	out := string(digits[:intLen])
	if decimals > 0 {
		out += "." + string(digits[intLen:])
	}
	if neg && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}
	return out
}

// incrementDigits adds one to a string of decimal digits.
func incrementDigits(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
