// Package export serializes benchmark results into report formats.
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/markup"
	"hyperbench/internal/units"
)

// ErrRelativeComparisonUnavailable is returned by exporters that need a
// fastest result to compare against when none exists.
var ErrRelativeComparisonUnavailable = errors.New("relative speed comparison is not available")

// ExportError reports a failure to serialize results in a given format.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%v for %s export", e.Err, e.Format)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Exporter turns a result set into an output document. A nil unit lets the
// exporter choose one.
type Exporter interface {
	Serialize(results []benchmark.Result, unit *units.Unit) ([]byte, error)
}

// MarkupExporter renders a relative-speed table in a markup dialect.
type MarkupExporter struct {
	Dialect markup.Dialect
}

// NewMarkdownExporter returns an exporter for Markdown tables.
func NewMarkdownExporter() *MarkupExporter {
	return &MarkupExporter{Dialect: markup.Markdown{}}
}

func (e *MarkupExporter) Serialize(results []benchmark.Result, unit *units.Unit) ([]byte, error) {
	resolved := benchmark.ResolveUnit(results, unit)

	entries := benchmark.ComputeRelative(results)
	if entries == nil {
		return nil, &ExportError{Format: e.Dialect.Name(), Err: ErrRelativeComparisonUnavailable}
	}

	return []byte(markup.Render(e.Dialect, entries, resolved)), nil
}

var factories = map[string]func() Exporter{
	"markdown": func() Exporter { return NewMarkdownExporter() },
	"asciidoc": func() Exporter { return &MarkupExporter{Dialect: markup.AsciiDoc{}} },
	"orgmode":  func() Exporter { return &MarkupExporter{Dialect: markup.OrgMode{}} },
	"csv":      func() Exporter { return &CSVExporter{} },
	"json":     func() Exporter { return &JSONExporter{} },
}

var aliases = map[string]string{
	"md":   "markdown",
	"adoc": "asciidoc",
	"org":  "orgmode",
}

// CanonicalFormat maps a user supplied format name to its canonical form.
func CanonicalFormat(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	if _, ok := factories[name]; !ok {
		return "", fmt.Errorf("unsupported export format %q (supported: %s)", name, strings.Join(Formats(), ", "))
	}
	return name, nil
}

// ForFormat returns a fresh exporter for the named format.
func ForFormat(name string) (Exporter, error) {
	canonical, err := CanonicalFormat(name)
	if err != nil {
		return nil, err
	}
	return factories[canonical](), nil
}

// Formats lists the canonical format names.
func Formats() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
