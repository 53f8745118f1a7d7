// Package markup renders relative-speed comparisons as text tables in a
// markup dialect such as Markdown.
package markup

import (
	"fmt"
	"strings"
)

// Dialect owns the table framing and escaping rules of one markup language.
type Dialect interface {
	Name() string
	TableHeader(unitShortName string) string
	TableDivider() string
	TableRow(cells []string) string
	TableFooter() string
	Command(cmd string) string
}

var columnTitles = []string{"Command", "Mean [%s]", "Min [%s]", "Max [%s]", "Relative"}

func headerCells(unitShortName string) []string {
	cells := make([]string, len(columnTitles))
	for i, title := range columnTitles {
		if strings.Contains(title, "%s") {
			title = fmt.Sprintf(title, unitShortName)
		}
		cells[i] = title
	}
	return cells
}

// Markdown renders GitHub-flavored Markdown tables.
type Markdown struct{}

func (Markdown) Name() string { return "markdown" }

func (d Markdown) TableHeader(unitShortName string) string {
	return d.TableRow(headerCells(unitShortName))
}

func (Markdown) TableDivider() string {
	return "|:---" + strings.Repeat("|---:", len(columnTitles)-1) + "|\n"
}

func (Markdown) TableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

func (Markdown) TableFooter() string { return "" }

// Command wraps the command in a code span. Pipes would end the cell early.
func (Markdown) Command(cmd string) string {
	return "`" + strings.ReplaceAll(cmd, "|", `\|`) + "`"
}

// AsciiDoc renders AsciiDoc tables with one cell per line.
type AsciiDoc struct{}

func (AsciiDoc) Name() string { return "asciidoc" }

func (AsciiDoc) TableHeader(unitShortName string) string {
	var b strings.Builder
	b.WriteString(`[cols="<` + strings.Repeat(",>", len(columnTitles)-1) + `"]` + "\n")
	b.WriteString("|===\n")
	for _, cell := range headerCells(unitShortName) {
		b.WriteString("| " + cell + " \n")
	}
	return b.String()
}

func (AsciiDoc) TableDivider() string { return "" }

func (AsciiDoc) TableRow(cells []string) string {
	return "\n| " + strings.Join(cells, " \n| ") + " \n"
}

func (AsciiDoc) TableFooter() string { return "|===\n" }

func (AsciiDoc) Command(cmd string) string {
	return "`" + strings.ReplaceAll(cmd, "|", `\|`) + "`"
}

// OrgMode renders Emacs Org-mode tables.
type OrgMode struct{}

func (OrgMode) Name() string { return "orgmode" }

func (d OrgMode) TableHeader(unitShortName string) string {
	return d.TableRow(headerCells(unitShortName))
}

func (OrgMode) TableDivider() string {
	return "|" + strings.Repeat("--+", len(columnTitles)-1) + "--|\n"
}

func (OrgMode) TableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

func (OrgMode) TableFooter() string { return "" }

func (OrgMode) Command(cmd string) string {
	return "=" + strings.ReplaceAll(cmd, "|", `\vert{}`) + "="
}
