package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Color scheme for operator-facing output
var (
	Error = color.New(color.FgRed, color.Bold)

	CrossMark = color.RedString("✗")
)

// InitColors initializes color settings based on environment
func InitColors() {
	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	// Respect TERM environment variable
	if os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	FprintError(os.Stderr, format, args...)
}

// FprintError prints an error message to an explicit writer
func FprintError(w io.Writer, format string, args ...interface{}) {
	Error.Fprintf(w, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintSearchTable renders the searched locations in priority order, for
// display after a failed resolution.
func PrintSearchTable(w io.Writer, locations []string) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Priority", "Searched Location"}),
		tablewriter.WithAlignment(tw.MakeAlign(2, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	for i, loc := range locations {
		table.Append(fmt.Sprintf("%d", i+1), loc)
	}

	table.Render()
}
