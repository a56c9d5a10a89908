// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// HeaderLines covers the title line and the search input line.
	HeaderLines = 2
	// DropdownTop is the first screen row of the suggestion dropdown.
	DropdownTop = HeaderLines
	// MaxSuggestions caps the dropdown height.
	MaxSuggestions = 6

	CardLines   = 3
	CardSpacing = 1

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
	DaysColumnWidth   = 10
)
