package game

import "errors"

const (
	// BoardSize is the number of intersections per side.
	BoardSize = 15
	// WinLength is the number of consecutive same-color stones that wins.
	WinLength = 5
)

// Rejected-operation signals. All are recoverable: the offending call
// leaves the engine untouched, and the caller surfaces the reason.
var (
	ErrOutOfBounds       = errors.New("position is outside the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrNothingToUndo     = errors.New("no moves to undo")
	ErrInvalidTransition = errors.New("game is already decided")
)

// Board holds one Cell per intersection, indexed [row][col]. It is a
// value type: assigning a Board copies the whole grid, so every state
// transition is an atomic swap rather than in-place patching.
type Board [BoardSize][BoardSize]Cell

// Move records one accepted placement. History entries are immutable.
type Move struct {
	Row, Col int
	Player   Cell
}

// Pos is a board coordinate.
type Pos struct {
	Row, Col int
}

// Snapshot is the read side of the engine: a copy of everything the
// presentation layer renders after a dispatch.
type Snapshot struct {
	Board         Board
	CurrentPlayer Cell
	Status        Status
	LastMove      Pos
	HasLastMove   bool
	History       []Move
}

// MoveCount returns the number of accepted moves so far.
func (s Snapshot) MoveCount() int { return len(s.History) }

// Game is a single engine instance. Operations are synchronous and
// single-threaded: one user action at a time, run to completion.
type Game struct {
	board   Board
	player  Cell
	status  Status
	history []Move
	last    Pos
	hasLast bool
}

// New returns a fresh game: empty board, Black to move.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset reinitializes the board, turn, status and history. It never fails.
func (g *Game) Reset() {
	g.board = Board{}
	g.player = Black
	g.status = StatusPlaying
	g.history = nil
	g.last = Pos{}
	g.hasLast = false
}

// Status returns the current state-machine position.
func (g *Game) Status() Status { return g.status }

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() Cell { return g.player }

// Snapshot returns a copy of the observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:         g.board,
		CurrentPlayer: g.player,
		Status:        g.status,
		LastMove:      g.last,
		HasLastMove:   g.hasLast,
		History:       append([]Move(nil), g.history...),
	}
}

// PlaceStone places the current player's stone at (row, col), then runs
// the post-move evaluation: a completed line ends the game, a full board
// draws it, otherwise the turn passes to the other side.
func (g *Game) PlaceStone(row, col int) error {
	if g.status != StatusPlaying {
		return ErrGameNotInProgress
	}
	if !inBounds(row, col) {
		return ErrOutOfBounds
	}
	if g.board[row][col] != Empty {
		return ErrCellOccupied
	}

	next := g.board
	next[row][col] = g.player
	g.board = next
	g.history = append(g.history, Move{Row: row, Col: col, Player: g.player})
	g.last = Pos{Row: row, Col: col}
	g.hasLast = true

	switch {
	case winsAt(&g.board, row, col, g.player):
		if g.player == Black {
			g.status = StatusBlackWin
		} else {
			g.status = StatusWhiteWin
		}
	case len(g.history) == BoardSize*BoardSize:
		g.status = StatusDraw
	default:
		g.player = g.player.Opponent()
	}
	return nil
}

// Undo removes the last move and rebuilds the board by replaying the
// remaining history from an empty grid, so the board always matches the
// history exactly. The undone move's player gets the turn back, and the
// status returns to playing even from a decided game.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrNothingToUndo
	}

	undone := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board = replay(g.history)

	if n := len(g.history); n > 0 {
		tail := g.history[n-1]
		g.last = Pos{Row: tail.Row, Col: tail.Col}
		g.hasLast = true
	} else {
		g.last = Pos{}
		g.hasLast = false
	}

	g.player = undone.Player
	g.status = StatusPlaying
	return nil
}

// TogglePause switches between playing and paused. A decided game can
// be neither paused nor resumed.
func (g *Game) TogglePause() error {
	switch g.status {
	case StatusPlaying:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusPlaying
	default:
		return ErrInvalidTransition
	}
	return nil
}

// lineDirs are the four orientations a winning line can lie on.
var lineDirs = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// winsAt reports whether the stone just placed at (row, col) completes a
// line of WinLength or more. Scanning only the four lines through the
// newest stone is sufficient because any new line must pass through it;
// this does not validate arbitrary positions.
func winsAt(b *Board, row, col int, player Cell) bool {
	for _, d := range lineDirs {
		count := 1
		for r, c := row+d[0], col+d[1]; inBounds(r, c) && b[r][c] == player; r, c = r+d[0], c+d[1] {
			count++
		}
		for r, c := row-d[0], col-d[1]; inBounds(r, c) && b[r][c] == player; r, c = r-d[0], c-d[1] {
			count++
		}
		if count >= WinLength {
			return true
		}
	}
	return false
}

// replay rebuilds a board from an ordered move list.
func replay(moves []Move) Board {
	var b Board
	for _, m := range moves {
		b[m.Row][m.Col] = m.Player
	}
	return b
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
