// Package game implements the Gomoku game-state engine: a fixed 15x15
// board, strict turn alternation, win/draw detection, and history-based
// undo. It has no knowledge of rendering or input devices; callers
// dispatch one operation at a time and read back a Snapshot.
package game

// Cell is the content of a single board intersection. Black and White
// double as player identifiers; Black always moves first.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other player. Opponent of Empty is Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Status is the engine's state-machine position. Exactly one holds at
// any time.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusBlackWin
	StatusWhiteWin
	StatusDraw
)

// Terminal reports whether no further placement is accepted without a
// reset or undo.
func (s Status) Terminal() bool {
	switch s {
	case StatusBlackWin, StatusWhiteWin, StatusDraw:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusBlackWin:
		return "black wins"
	case StatusWhiteWin:
		return "white wins"
	case StatusDraw:
		return "draw"
	}
	return "unknown"
}
