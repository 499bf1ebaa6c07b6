package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MainMenuUI is the start screen: new game, resume a saved record,
// theme settings, quit.
type MainMenuUI struct {
	form *tview.Form
	flex *tview.Flex
}

// NewMainMenu creates the menu with one callback per entry.
func NewMainMenu(onNew, onLoad, onColors, onQuit func()) *MainMenuUI {
	form := tview.NewForm()

	form.AddButton("New Game", onNew)
	form.AddButton("Load Game", onLoad)
	form.AddButton("Board Colors", onColors)
	form.AddButton("Quit", onQuit)

	form.SetBorder(true)
	form.SetTitle(" Gomoku · five in a row ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	return &MainMenuUI{form: form, flex: flex}
}

// Form returns the flex container with the menu and help text.
func (m *MainMenuUI) Form() *tview.Flex {
	return m.flex
}

// SetInputCapture sets the input capture function for the menu.
func (m *MainMenuUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	m.form.SetInputCapture(capture)
}
