package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomokuterm/config"
)

// ColorConfigUI is the theme editor: pick board, line, and stone colors
// from curated palettes with a live board preview. Tab cycles which
// element is being edited.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	mode     colorMode
	selected map[colorMode]int // palette codes picked so far
}

type colorMode int

const (
	modeBoard colorMode = iota
	modeLine
	modeBlackStone
	modeWhiteStone
	modeCount
)

type paletteEntry struct {
	code int
	name string
}

var modeTitles = map[colorMode]string{
	modeBoard:      " Board Color (Tab: next) ",
	modeLine:       " Line Color (Tab: next) ",
	modeBlackStone: " Black Stone Color (Tab: next) ",
	modeWhiteStone: " White Stone Color (Tab: next) ",
}

// palettes holds the selectable colors per mode: warm tones for the
// board, darker contrasting tones for lines, grayscale for stones.
var palettes = map[colorMode][]paletteEntry{
	modeBoard: {
		{230, "Light Cream"},
		{229, "Pale Yellow"},
		{222, "Gold"},
		{214, "Orange Gold"},
		{180, "Tan"},
		{179, "Light Brown"},
		{172, "Brown"},
		{136, "Dark Brown"},
		{252, "Light Gray"},
		{248, "Medium Gray"},
		{188, "Light Beige"},
		{223, "Peach"},
	},
	modeLine: {
		{94, "Saddle Brown"},
		{130, "Dark Orange"},
		{88, "Dark Red"},
		{22, "Dark Green"},
		{24, "Dark Cyan"},
		{17, "Navy Blue"},
		{54, "Purple"},
		{232, "Black"},
		{236, "Dark Gray"},
		{240, "Gray"},
	},
	modeBlackStone: {
		{232, "True Black"},
		{234, "Near Black"},
		{237, "Charcoal"},
		{17, "Navy Blue"},
		{52, "Dark Maroon"},
	},
	modeWhiteStone: {
		{255, "Bright White"},
		{253, "Off White"},
		{250, "Gray"},
		{230, "Cream"},
		{195, "Pale Blue"},
	},
}

// NewColorConfig creates the theme editor screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		onDone: onDone,
		mode:   modeBoard,
		selected: map[colorMode]int{
			modeBoard:      cfg.Theme.Colors.BoardColor,
			modeLine:       cfg.Theme.Colors.LineColor,
			modeBlackStone: cfg.Theme.Colors.BlackColor,
			modeWhiteStone: cfg.Theme.Colors.WhiteColor,
		},
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Moving through the list previews the color immediately.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		palette := palettes[cc.mode]
		if index >= 0 && index < len(palette) {
			cc.selected[cc.mode] = palette[index].code
		}
	})

	// Enter applies the color and saves the theme.
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply()
		if cc.mode == modeWhiteStone {
			// Last element confirmed, leave the editor.
			if cc.onDone != nil {
				cc.onDone()
			}
			return
		}
		cc.mode = (cc.mode + 1) % modeCount
		cc.populateColorList()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// apply copies the current selections into the config.
func (cc *ColorConfigUI) apply() {
	cc.cfg.Theme.Colors.BoardColor = cc.selected[modeBoard]
	cc.cfg.Theme.Colors.LineColor = cc.selected[modeLine]
	cc.cfg.Theme.Colors.BlackColor = cc.selected[modeBlackStone]
	cc.cfg.Theme.Colors.WhiteColor = cc.selected[modeWhiteStone]
	cc.cfg.Save()
}

// populateColorList fills the list for the current editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()
	cc.colorList.SetTitle(modeTitles[cc.mode])

	palette := palettes[cc.mode]
	for i, c := range palette {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range palette {
		if c.code == cc.selected[cc.mode] {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// drawPreview renders a small board with a finished five-in-a-row so
// every themed element is visible at once.
func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	boardColor := tcell.PaletteColor(cc.selected[modeBoard])
	lineColor := tcell.PaletteColor(cc.selected[modeLine])
	blackColor := tcell.PaletteColor(cc.selected[modeBlackStone])
	whiteColor := tcell.PaletteColor(cc.selected[modeWhiteStone])

	boardStyle := tcell.StyleDefault.Background(boardColor).Foreground(lineColor)
	blackStyle := tcell.StyleDefault.Background(boardColor).Foreground(blackColor)
	whiteStyle := tcell.StyleDefault.Background(boardColor).Foreground(whiteColor)

	startX := x + 2
	startY := y + 1
	size := 7

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	// A won position: Black's diagonal five against White's row.
	stones := map[[2]int]int{
		{1, 1}: 1, {2, 2}: 1, {3, 3}: 1, {4, 4}: 1, {5, 5}: 1,
		{1, 3}: 2, {2, 3}: 2, {4, 3}: 2, {5, 3}: 2,
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			screenX := startX + col*2
			screenY := startY + row

			char := gridRune(row, col, size)
			style := boardStyle
			if stone, ok := stones[[2]int{row, col}]; ok {
				if stone == 1 {
					char = cc.cfg.Theme.Symbols.BlackStone
					style = blackStyle
				} else {
					char = cc.cfg.Theme.Symbols.WhiteStone
					style = whiteStyle
				}
			}

			screen.SetContent(screenX, screenY, char, nil, style)

			if col < size-1 {
				connector := '─'
				_, hasStone := stones[[2]int{row, col}]
				_, hasStoneRight := stones[[2]int{row, col + 1}]
				if hasStone || hasStoneRight {
					connector = ' '
				}
				screen.SetContent(screenX+1, screenY, connector, nil, boardStyle)
			}
		}
	}

	info := fmt.Sprintf("Board %d  Line %d  B %d  W %d",
		cc.selected[modeBoard], cc.selected[modeLine],
		cc.selected[modeBlackStone], cc.selected[modeWhiteStone])
	drawText(screen, startX, startY+size+1, info, tcell.StyleDefault)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode cycles to the next themed element.
func (cc *ColorConfigUI) ToggleMode() {
	cc.mode = (cc.mode + 1) % modeCount
	cc.populateColorList()
}
