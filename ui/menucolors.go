package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the shared palette for the menu screens.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	Title       tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(60),  // muted blue-gray
	BorderFocus: tcell.PaletteColor(109), // brighter blue
	Title:       tcell.PaletteColor(255), // bright white
	Label:       tcell.PaletteColor(250), // light gray
	Hint:        tcell.PaletteColor(245), // dim gray
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
