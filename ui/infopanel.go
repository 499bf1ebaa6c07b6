package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"gomokuterm/game"
)

// GameInfoPanel shows game status and the move history beside the board.
type GameInfoPanel struct {
	box  *tview.TextView
	snap game.Snapshot
	has  bool
}

// NewGameInfoPanel creates an empty info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSnapshot updates the panel with the latest engine state.
func (p *GameInfoPanel) SetSnapshot(snap game.Snapshot) {
	p.snap = snap
	p.has = true
	p.refresh()
}

// displayCoord formats a board position the way players read it:
// column letter then 1-based row number, e.g. "H8".
func displayCoord(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row+1)
}

func statusLabel(s game.Status) string {
	switch s {
	case game.StatusPlaying:
		return "Playing"
	case game.StatusPaused:
		return "Paused"
	case game.StatusBlackWin:
		return "Black wins"
	case game.StatusWhiteWin:
		return "White wins"
	case game.StatusDraw:
		return "Draw"
	}
	return "?"
}

func (p *GameInfoPanel) refresh() {
	if !p.has {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.snap.MoveCount())
	text += fmt.Sprintf("[white]Status:[-:-:-] %s\n", statusLabel(p.snap.Status))

	if len(p.snap.History) > 0 && p.snap.Status != game.StatusPaused {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := p.snap.History
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]

			colorStr := "[white]B[-]"
			if m.Player == game.White {
				colorStr = "[dimgray]W[-]"
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, displayCoord(m.Row, m.Col))
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout builds the main game screen: board beside the info
// panel, with a compact status bar underneath.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetSnapshot(board.Snapshot())

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 3, 0, false)

	return mainFlex
}
