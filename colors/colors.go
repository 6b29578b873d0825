// Package colors holds the terminal colours used by the addressbook CLI.
// Output is plain when stdout is not a terminal.
package colors

import "github.com/fatih/color"

var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()

	// Label colours property names when printing an entry
	Label = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Disable turns colour off for every func in this package.
func Disable() {
	color.NoColor = true
}
