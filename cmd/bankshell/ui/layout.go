// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the card and page chrome
const (
	// Card dimensions
	CardWidth        = 48
	CardBorderWidth  = 2
	CardPaddingH     = 3
	InputWidth       = CardWidth - CardBorderWidth - (CardPaddingH * 2) - FieldChromeWidth
	FieldChromeWidth = 4 // field border plus inner padding

	// Page chrome
	HeaderHeight = 1
	HelpHeight   = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 60
	MinimumTerminalHeight = 20
)

// CardContentWidth returns the usable width inside the card border
func CardContentWidth() int {
	return CardWidth - CardBorderWidth - (CardPaddingH * 2)
}

// PageContentHeight returns the height left for page content once the
// header and help lines are reserved
func PageContentHeight(terminalHeight int) int {
	h := terminalHeight - HeaderHeight - HelpHeight
	if h < 1 {
		return 1
	}
	return h
}

// DocWidth clamps a terminal width to something readable for the
// rendered stack document
func DocWidth(terminalWidth int) int {
	switch {
	case terminalWidth <= 0:
		return 80
	case terminalWidth < 40:
		return 40
	case terminalWidth > 100:
		return 100
	}
	return terminalWidth
}
