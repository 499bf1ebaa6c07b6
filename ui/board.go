// Package ui provides the tview widgets for playing Gomoku in the terminal.
package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomokuterm/config"
	"gomokuterm/game"
	"gomokuterm/sgf"
)

// noticeDuration is how long a rejected-operation notice stays visible.
const noticeDuration = 2 * time.Second

// BoardUI renders the board and dispatches user actions into the game
// engine. After every dispatch it re-reads a full Snapshot; the widget
// never mutates game state directly.
type BoardUI struct {
	Box  *tview.Box
	app  *tview.Application
	cfg  *config.Config
	hint *tview.TextView

	game   *game.Game
	snap   game.Snapshot
	record *sgf.GameRecord

	infoPanel *GameInfoPanel

	selRow, selCol int
	notice         string
	noticeTimer    *time.Timer

	styles boardStyles
}

type boardStyles struct {
	board      tcell.Color
	line       tcell.Color
	black      tcell.Color
	white      tcell.Color
	cursorBG   tcell.Color
	lastMoveBG tcell.Color
}

// NewBoard creates the board widget backed by a fresh game.
func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:    tview.NewBox(),
		app:    app,
		hint:   hint,
		game:   game.New(),
		selRow: -1,
		selCol: -1,
	}
	board.snap = board.game.Snapshot()
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

// SetConfig applies theme colors. Safe to call while a game is running.
func (b *BoardUI) SetConfig(c *config.Config) {
	b.cfg = c
	b.styles = boardStyles{
		board:      tcell.PaletteColor(c.Theme.Colors.BoardColor),
		line:       tcell.PaletteColor(c.Theme.Colors.LineColor),
		black:      tcell.PaletteColor(c.Theme.Colors.BlackColor),
		white:      tcell.PaletteColor(c.Theme.Colors.WhiteColor),
		cursorBG:   tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		lastMoveBG: tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG),
	}
}

// Snapshot returns the state the widget is currently rendering.
func (b *BoardUI) Snapshot() game.Snapshot {
	return b.snap
}

// SelectedCell returns the cursor position, or nil if none.
func (b *BoardUI) SelectedCell() *game.Pos {
	if b.selRow == -1 && b.selCol == -1 {
		return nil
	}
	return &game.Pos{Row: b.selRow, Col: b.selCol}
}

// MoveSelection moves the cursor by (dRow, dCol), clamped to the board.
// The first movement seeds the cursor from the last move, or the board
// center on an empty board.
func (b *BoardUI) MoveSelection(dRow, dCol int) {
	if b.SelectedCell() == nil {
		if b.snap.HasLastMove {
			b.selRow = b.snap.LastMove.Row
			b.selCol = b.snap.LastMove.Col
		} else {
			b.selRow = game.BoardSize / 2
			b.selCol = game.BoardSize / 2
		}
		return
	}
	if b.selRow+dRow < 0 || b.selRow+dRow >= game.BoardSize {
		return
	}
	if b.selCol+dCol < 0 || b.selCol+dCol >= game.BoardSize {
		return
	}
	b.selRow += dRow
	b.selCol += dCol
}

// ResetSelection hides the cursor.
func (b *BoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
}

// PlaceAtCursor places the current player's stone under the cursor.
func (b *BoardUI) PlaceAtCursor() {
	sel := b.SelectedCell()
	if sel == nil {
		return
	}

	if err := b.game.PlaceStone(sel.Row, sel.Col); err != nil {
		b.notify(reasonText(err))
		return
	}

	b.refresh()
	if b.record != nil {
		placed := b.snap.History[len(b.snap.History)-1]
		b.record.AddMove(placed)
		if b.snap.Status.Terminal() {
			b.record.SetResult(b.snap.Status)
		}
	}
}

// Undo takes back the last move. It also reopens a decided game, both
// in the engine and in the record on disk.
func (b *BoardUI) Undo() {
	wasDecided := b.snap.Status.Terminal()

	if err := b.game.Undo(); err != nil {
		b.notify(reasonText(err))
		return
	}

	if b.record != nil {
		b.record.UndoMoves(1)
		if wasDecided {
			b.record.ClearResult()
		}
	}
	b.refresh()
}

// TogglePause pauses or resumes play.
func (b *BoardUI) TogglePause() {
	if err := b.game.TogglePause(); err != nil {
		b.notify(reasonText(err))
		return
	}
	b.refresh()
}

// NewGame starts over, replacing any active record with rec (which may
// be nil when recording is off).
func (b *BoardUI) NewGame(rec *sgf.GameRecord) {
	b.CloseRecord()
	b.game.Reset()
	b.record = rec
	b.ResetSelection()
	b.clearNotice()
	b.refresh()
}

// LoadGame resets the engine and replays moves through it, so turn
// order and legality are enforced on the way in. Each replayed move is
// also written to rec when recording.
func (b *BoardUI) LoadGame(moves []game.Move, rec *sgf.GameRecord) error {
	b.CloseRecord()
	b.game.Reset()

	for i, m := range moves {
		if m.Player != b.game.CurrentPlayer() {
			b.game.Reset()
			return fmt.Errorf("move %d: out of turn", i+1)
		}
		if err := b.game.PlaceStone(m.Row, m.Col); err != nil {
			b.game.Reset()
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if rec != nil {
			rec.AddMove(m)
		}
	}

	b.record = rec
	if rec != nil && b.game.Status().Terminal() {
		rec.SetResult(b.game.Status())
	}
	b.ResetSelection()
	b.clearNotice()
	b.refresh()
	return nil
}

// CloseRecord flushes and closes the active record, if any.
func (b *BoardUI) CloseRecord() {
	if b.record != nil {
		b.record.Close()
		b.record = nil
	}
}

// refresh re-reads the engine snapshot and repaints the side panels.
func (b *BoardUI) refresh() {
	b.snap = b.game.Snapshot()
	if b.infoPanel != nil {
		b.infoPanel.SetSnapshot(b.snap)
	}
	b.refreshHint()
}

// notify shows a transient message that auto-clears shortly after.
func (b *BoardUI) notify(msg string) {
	b.notice = msg
	if b.noticeTimer != nil {
		b.noticeTimer.Stop()
	}
	b.noticeTimer = time.AfterFunc(noticeDuration, func() {
		b.app.QueueUpdateDraw(func() {
			b.notice = ""
			b.refreshHint()
		})
	})
	b.refreshHint()
}

func (b *BoardUI) clearNotice() {
	if b.noticeTimer != nil {
		b.noticeTimer.Stop()
		b.noticeTimer = nil
	}
	b.notice = ""
}

// reasonText converts an engine rejection into a short user message.
func reasonText(err error) string {
	switch {
	case errors.Is(err, game.ErrCellOccupied):
		return "That point is already taken"
	case errors.Is(err, game.ErrOutOfBounds):
		return "That point is off the board"
	case errors.Is(err, game.ErrGameNotInProgress):
		return "The game is not in progress"
	case errors.Is(err, game.ErrNothingToUndo):
		return "Nothing to undo"
	case errors.Is(err, game.ErrInvalidTransition):
		return "A finished game cannot be paused"
	}
	return err.Error()
}

func (b *BoardUI) refreshHint() {
	var statusLine, turnLine, controlsLine string

	if b.notice != "" {
		statusLine = fmt.Sprintf("  [red]%s[-]\n", b.notice)
	}

	switch b.snap.Status {
	case game.StatusBlackWin, game.StatusWhiteWin:
		stone := "●"
		name := "Black"
		if b.snap.Status == game.StatusWhiteWin {
			stone = "○"
			name = "White"
		}
		turnLine = fmt.Sprintf("  %s %s wins!\n", stone, name)
		controlsLine = "  u undo   n new game   q menu"
	case game.StatusDraw:
		turnLine = "  Draw: the board is full\n"
		controlsLine = "  u undo   n new game   q menu"
	case game.StatusPaused:
		turnLine = "  ⏸ Paused\n"
		controlsLine = "  p resume   q menu"
	default:
		stone := "●"
		name := "Black"
		if b.snap.CurrentPlayer == game.White {
			stone = "○"
			name = "White"
		}
		turnLine = fmt.Sprintf("  %s %s to move\n", stone, name)
		controlsLine = `  hjkl/↑↓←→ move   ⏎ place
  u undo   p pause   n new   q menu`
	}

	b.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// draw paints the grid, stones, cursor, and coordinates. Cells are two
// characters wide for a square appearance. While paused, stones are
// hidden behind a banner so the position cannot be studied.
func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := game.BoardSize
	paused := b.snap.Status == game.StatusPaused

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := b.snap.Board[row][col]
			if paused {
				cell = game.Empty
			}

			bg := b.styles.board
			fg := b.styles.line

			var drawRune rune
			if cell == game.Empty {
				drawRune = gridRune(row, col, size)
			} else {
				if cell == game.Black {
					drawRune = b.cfg.Theme.Symbols.BlackStone
					fg = b.styles.black
				} else {
					drawRune = b.cfg.Theme.Symbols.WhiteStone
					fg = b.styles.white
				}
			}

			if !paused {
				if row == b.selRow && col == b.selCol {
					bg = b.styles.cursorBG
				} else if b.snap.HasLastMove && row == b.snap.LastMove.Row && col == b.snap.LastMove.Col {
					bg = b.styles.lastMoveBG
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)

			hasStoneRight := false
			if !paused && col < size-1 {
				hasStoneRight = b.snap.Board[row][col+1] != game.Empty
			}
			drawBoardCell(screen, style, drawRune, row, col, x+4, y, size, cell != game.Empty, hasStoneRight)
		}
	}

	if paused {
		drawPausedBanner(screen, x+4, y, size)
	}

	b.drawCoordinates(screen, x, y)

	return x, y, size*2 + 4, size + 2
}

// drawBoardCell draws one 2-character cell: the intersection rune plus
// a right connector that joins grid lines between empty points.
func drawBoardCell(s tcell.Screen, c tcell.Style, r rune, row, col, left, top, size int, hasStone, hasStoneRight bool) {
	s.SetContent(left+col*2, top+row, r, nil, c)

	rightConn := '─'
	if col == size-1 || hasStone || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(left+col*2+1, top+row, rightConn, nil, c)
}

// drawPausedBanner overwrites the board center with a pause notice.
func drawPausedBanner(s tcell.Screen, left, top, size int) {
	text := " P A U S E D "
	startX := left + (size*2-len(text))/2
	y := top + size/2
	style := tcell.StyleDefault.Bold(true)
	for i, ch := range text {
		s.SetContent(startX+i, y, ch, nil, style)
	}
}

// gridRune returns the box-drawing character for an empty intersection.
func gridRune(row, col, size int) rune {
	if isStarPoint(row, col) {
		return '◦'
	}

	isTop := row == 0
	isBottom := row == size-1
	isLeft := col == 0
	isRight := col == size-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// isStarPoint reports the nine traditional 15x15 reference points.
func isStarPoint(row, col int) bool {
	star := func(n int) bool { return n == 3 || n == 7 || n == 11 }
	return star(row) && star(col)
}

// drawCoordinates labels columns A-O below the board and rows 1-15 down
// the left edge, highlighting the cursor's row and column.
func (b *BoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	size := game.BoardSize
	colBase := 'A'
	if b.cfg.Theme.FullWidthLetters {
		colBase = 'Ａ'
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(b.styles.cursorBG)
	lpHighlight := tcell.StyleDefault.Background(b.styles.lastMoveBG)

	for col := 0; col < size; col++ {
		cs := style
		if col == b.selCol {
			cs = highlight
		} else if b.snap.HasLastMove && col == b.snap.LastMove.Col {
			cs = lpHighlight
		}
		s.SetContent(x+4+col*2, y+size+1, rune(int(colBase)+col), nil, cs)
		s.SetContent(x+4+col*2+1, y+size+1, ' ', nil, cs)
	}

	for row := 0; row < size; row++ {
		rs := style
		if row == b.selRow {
			rs = highlight
		} else if b.snap.HasLastMove && row == b.snap.LastMove.Row {
			rs = lpHighlight
		}
		displayNum := row + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+row, tensRune, nil, rs)
		s.SetContent(x+2, y+row, rune('0'+displayNum%10), nil, rs)
	}
	s.Show()
}
