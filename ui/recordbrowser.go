package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomokuterm/game"
	"gomokuterm/sgf"
)

// RecordBrowserUI lists saved game records with a final-position
// preview. Enter resumes the selected record, d deletes it.
type RecordBrowserUI struct {
	flex       *tview.Flex
	recordList *tview.List
	preview    *tview.Box
	hint       *tview.TextView
	records    []sgf.RecordInfo
	boards     map[int]game.Board // cached final positions
	selected   int
	recordsDir string
	onOpen     func(sgf.RecordInfo)
	onDone     func()
}

// NewRecordBrowser creates the browser over recordsDir.
func NewRecordBrowser(recordsDir string, onOpen func(sgf.RecordInfo), onDone func()) *RecordBrowserUI {
	rb := &RecordBrowserUI{
		recordsDir: recordsDir,
		onOpen:     onOpen,
		onDone:     onDone,
		boards:     make(map[int]game.Board),
	}

	rb.recordList = tview.NewList()
	rb.recordList.SetBorder(true)
	rb.recordList.SetTitle(" Saved Games ")
	rb.recordList.ShowSecondaryText(false)
	rb.recordList.SetHighlightFullLine(true)
	rb.recordList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	rb.recordList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	rb.preview = tview.NewBox()
	rb.preview.SetBorder(true)
	rb.preview.SetTitle(" Preview ")
	rb.preview.SetDrawFunc(rb.drawPreview)

	rb.hint = tview.NewTextView()
	rb.hint.SetDynamicColors(true)
	rb.hint.SetBorder(false)
	rb.hint.SetText("  [dimgray]⏎[-] resume  [dimgray]d[-] delete  [dimgray]q[-] back")

	rb.recordList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		rb.selected = index
	})
	rb.recordList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		rb.openSelected()
	})
	rb.recordList.SetInputCapture(rb.handleInput)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(rb.recordList, 38, 0, true).
		AddItem(rb.preview, 0, 1, false)

	rb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(rb.hint, 1, 0, false)

	rb.loadRecords()
	return rb
}

// Flex returns the flex container for this UI.
func (rb *RecordBrowserUI) Flex() *tview.Flex {
	return rb.flex
}

// Refresh reloads the record list from disk.
func (rb *RecordBrowserUI) Refresh() {
	rb.boards = make(map[int]game.Board)
	rb.loadRecords()
}

// resultLabel translates an SGF result into display text.
func resultLabel(result string) string {
	switch result {
	case "B+5":
		return "Black wins"
	case "W+5":
		return "White wins"
	case "0":
		return "Draw"
	}
	return "Unfinished"
}

// loadRecords scans the records directory.
func (rb *RecordBrowserUI) loadRecords() {
	rb.recordList.Clear()
	rb.records = nil
	rb.selected = 0

	records, err := sgf.ListRecords(rb.recordsDir)
	if err != nil || len(records) == 0 {
		rb.recordList.AddItem("[dimgray]No saved games[-]", "", 0, nil)
		return
	}

	rb.records = records
	for _, r := range records {
		label := fmt.Sprintf("%s  %3d moves  %s", r.Date, r.MoveCount, resultLabel(r.Result))
		rb.recordList.AddItem(label, "", 0, nil)
	}
}

// handleInput processes keyboard input for the browser.
func (rb *RecordBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if rb.onDone != nil {
			rb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if rb.onDone != nil {
				rb.onDone()
			}
			return nil
		case 'd':
			rb.deleteSelected()
			return nil
		}
	}
	return event
}

// openSelected hands the selected record to the open callback.
func (rb *RecordBrowserUI) openSelected() {
	if rb.selected < 0 || rb.selected >= len(rb.records) {
		return
	}
	if rb.onOpen != nil {
		rb.onOpen(rb.records[rb.selected])
	}
}

// deleteSelected removes the selected record file.
func (rb *RecordBrowserUI) deleteSelected() {
	if rb.selected < 0 || rb.selected >= len(rb.records) {
		return
	}

	os.Remove(rb.records[rb.selected].FilePath)
	rb.Refresh()
}

// drawPreview renders the final position and record metadata.
func (rb *RecordBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if rb.selected < 0 || rb.selected >= len(rb.records) {
		return x, y, width, height
	}

	record := rb.records[rb.selected]

	board, ok := rb.boards[rb.selected]
	if !ok {
		b, _, err := sgf.FinalPosition(record.FilePath)
		if err != nil {
			return x, y, width, height
		}
		board = b
		rb.boards[rb.selected] = board
	}

	size := game.BoardSize
	startX := x + 2
	startY := y + 1

	if width < size+4 || height < size+6 {
		return x, y, width, height
	}

	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
	whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			ch := '·'
			style := emptyStyle
			switch board[row][col] {
			case game.Black:
				ch = '●'
				style = blackStyle
			case game.White:
				ch = '○'
				style = whiteStyle
			}
			screen.SetContent(startX+col, startY+row, ch, nil, style)
		}
	}

	infoY := startY + size + 1
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	resultStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(109))

	drawText(screen, startX, infoY, fmt.Sprintf("%d moves", record.MoveCount), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("Result: %s", resultLabel(record.Result)), resultStyle)

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
