// Package sgf reads and writes Gomoku game records as a small SGF FF[4]
// subset (GM[4], linear move list, no variations).
package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gomokuterm/game"
)

// GameRecord tracks a game in progress and mirrors it to an SGF file.
// The file is rewritten from scratch on every mutation, so the move list
// on disk is always exactly the engine's history.
type GameRecord struct {
	FilePath string
	Date     string
	Result   string
	moves    []string // ";B[hh]", ";W[ii]", ...
	file     *os.File
}

// NewGameRecord creates a timestamped SGF file in dir and writes the
// initial header.
func NewGameRecord(dir string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create records dir: %w", err)
	}

	now := time.Now()
	filename := now.Format("2006-01-02_150405") + ".sgf"
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create sgf file: %w", err)
	}

	rec := &GameRecord{
		FilePath: path,
		Date:     now.Format("2006-01-02"),
		Result:   "?",
		file:     f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// sgfCoord converts board coordinates to an SGF letter pair, column
// first. (row 0, col 0) -> "aa", (row 4, col 3) -> "de".
func sgfCoord(row, col int) string {
	return string(rune('a'+col)) + string(rune('a'+row))
}

// AddMove appends a move to the record.
func (r *GameRecord) AddMove(m game.Move) error {
	colorChar := "B"
	if m.Player == game.White {
		colorChar = "W"
	}

	r.moves = append(r.moves, fmt.Sprintf(";%s[%s]", colorChar, sgfCoord(m.Row, m.Col)))
	return r.flush()
}

// UndoMoves removes the last n moves from the record.
func (r *GameRecord) UndoMoves(n int) error {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
	return r.flush()
}

// SetResult records the game outcome as the SGF RE property.
func (r *GameRecord) SetResult(status game.Status) error {
	r.Result = resultFor(status)
	return r.flush()
}

// ClearResult marks the record as unfinished again, e.g. after an undo
// reopened a decided game.
func (r *GameRecord) ClearResult() error {
	r.Result = "?"
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() {
	if r.file == nil {
		return
	}
	r.flush()
	r.file.Close()
	r.file = nil
}

// resultFor converts an engine status to an SGF RE[] value. "B+5" is
// the conventional five-in-a-row win notation; "0" is a drawn game.
func resultFor(status game.Status) string {
	switch status {
	case game.StatusBlackWin:
		return "B+5"
	case game.StatusWhiteWin:
		return "W+5"
	case game.StatusDraw:
		return "0"
	}
	return "?"
}

// flush rewrites the complete SGF file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder

	// Root node. GM[4] is the SGF game type for Gomoku and Renju.
	b.WriteString("(;GM[4]FF[4]CA[UTF-8]")
	b.WriteString("AP[gomokuterm:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", game.BoardSize))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	return r.file.Sync()
}
