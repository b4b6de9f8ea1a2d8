package diagnostics

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
)

// ToPrettyString formats all errors and warnings as a colored report for
// terminal output. fileName names the shapes document being reported on.
func (d *Diagnostics) ToPrettyString(fileName string) string {
	var buf bytes.Buffer

	errorTitle := color.New(color.FgRed, color.Bold)
	warningTitle := color.New(color.FgYellow, color.Bold)
	desc := color.New(color.Bold)
	arrow := color.New(color.FgCyan, color.Bold)
	filePath := color.New(color.Underline)

	for _, err := range d.errors {
		errorTitle.Fprintf(&buf, "error")
		fmt.Fprintf(&buf, ": ")
		desc.Fprintf(&buf, "%s\n", err.Message())
		arrow.Fprintf(&buf, "  --> ")
		filePath.Fprintf(&buf, "%s", fileName)
		if err.Subject() != nil {
			fmt.Fprintf(&buf, " (%s)", err.Subject())
		}
		fmt.Fprintln(&buf)
	}
	for _, warn := range d.warnings {
		warningTitle.Fprintf(&buf, "warning")
		fmt.Fprintf(&buf, ": ")
		desc.Fprintf(&buf, "%s\n", warn.Message())
		arrow.Fprintf(&buf, "  --> ")
		filePath.Fprintf(&buf, "%s", fileName)
		if warn.Subject() != nil {
			fmt.Fprintf(&buf, " (%s)", warn.Subject())
		}
		fmt.Fprintln(&buf)
	}
	return buf.String()
}
