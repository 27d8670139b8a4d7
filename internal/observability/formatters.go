// Package observability provides logging, metrics and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/impact-search/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a line to fit inside the box, counting runes
func truncate(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		return string(runes[:boxWidth-7]) + "..."
	}
	return line
}

// PrintSearchFilters outputs a human-readable summary of compiled filters.
func (p *Printer) PrintSearchFilters(query, method string, filters *types.SearchFilters) {
	if filters == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query:   %s\n", query))
	sb.WriteString(fmt.Sprintf("Method:  %s\n", method))
	sb.WriteString("\n")

	writeList(&sb, "Skills", filters.Skills)
	writeList(&sb, "Causes", filters.Causes)

	if filters.WorkMode != "" {
		sb.WriteString(fmt.Sprintf("Work mode:       %s\n", filters.WorkMode))
	}
	if filters.VolunteerType != "" {
		sb.WriteString(fmt.Sprintf("Volunteer type:  %s\n", filters.VolunteerType))
	}
	if filters.Location != nil {
		sb.WriteString(fmt.Sprintf("Location:        %s\n", *filters.Location))
	}
	if filters.MinRating != nil {
		sb.WriteString(fmt.Sprintf("Min rating:      %.1f\n", *filters.MinRating))
	}
	if filters.MaxHourlyRate != nil {
		sb.WriteString(fmt.Sprintf("Max hourly rate: %.2f\n", *filters.MaxHourlyRate))
	}
	if n := len(filters.MatchedVolunteerIDs); n > 0 {
		sb.WriteString(fmt.Sprintf("Matched profiles: %d\n", n))
	}

	p.printBox("COMPILED SEARCH FILTERS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("%s: none\n", label))
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintError outputs a failed compilation
func (p *Printer) PrintError(query string, err error) {
	if err == nil {
		return
	}
	p.printBox("COMPILE FAILED", fmt.Sprintf("Query:  %s\nError:  %v", query, err))
}
