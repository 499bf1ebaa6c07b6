package sgf

import (
	"os"
	"path/filepath"
	"testing"

	"gomokuterm/game"
)

func writeRecord(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeRecord(t, dir, "sample.sgf",
		"(;GM[4]FF[4]CA[UTF-8]AP[gomokuterm:1.0]SZ[15]DT[2026-08-25]RE[B+5]\n;B[hh];W[ih];B[hi])\n")

	info, err := ParseHeader(path)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	if info.BoardSize != 15 {
		t.Errorf("BoardSize = %d, want 15", info.BoardSize)
	}
	if info.Date != "2026-08-25" {
		t.Errorf("Date = %q", info.Date)
	}
	if info.Result != "B+5" {
		t.Errorf("Result = %q", info.Result)
	}
	if info.MoveCount != 3 {
		t.Errorf("MoveCount = %d, want 3", info.MoveCount)
	}
	if !info.Finished() {
		t.Error("record with RE[B+5] should be finished")
	}
}

func TestParseHeader_Unfinished(t *testing.T) {
	dir := t.TempDir()
	path := writeRecord(t, dir, "open.sgf", "(;GM[4]FF[4]SZ[15]RE[?]\n;B[aa])\n")

	info, err := ParseHeader(path)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if info.Finished() {
		t.Error("record with RE[?] should not be finished")
	}
}

func TestReplayMoves(t *testing.T) {
	dir := t.TempDir()
	path := writeRecord(t, dir, "moves.sgf",
		"(;GM[4]FF[4]SZ[15]RE[?]\n;B[hh];W[ih];B[de])\n")

	moves, err := ReplayMoves(path)
	if err != nil {
		t.Fatalf("ReplayMoves: %v", err)
	}

	want := []game.Move{
		{Row: 7, Col: 7, Player: game.Black},
		{Row: 7, Col: 8, Player: game.White},
		{Row: 4, Col: 3, Player: game.Black},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestReplayMoves_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated node", "(;GM[4]SZ[15]\n;B[hh);W[ih])"},
		{"bad coordinate length", "(;GM[4]SZ[15]\n;B[h])"},
		{"coordinate off the board", "(;GM[4]SZ[15]\n;B[zz])"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeRecord(t, dir, "bad.sgf", tt.content)

			if _, err := ReplayMoves(path); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestWriteThenReplayRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	played := []game.Move{
		{Row: 7, Col: 7, Player: game.Black},
		{Row: 6, Col: 6, Player: game.White},
		{Row: 7, Col: 8, Player: game.Black},
		{Row: 0, Col: 14, Player: game.White},
	}
	for _, m := range played {
		if err := rec.AddMove(m); err != nil {
			t.Fatalf("AddMove: %v", err)
		}
	}

	moves, err := ReplayMoves(rec.FilePath)
	if err != nil {
		t.Fatalf("ReplayMoves: %v", err)
	}
	if len(moves) != len(played) {
		t.Fatalf("got %d moves, want %d", len(moves), len(played))
	}
	for i, m := range moves {
		if m != played[i] {
			t.Errorf("move %d = %+v, want %+v", i, m, played[i])
		}
	}
}

func TestFinalPosition(t *testing.T) {
	dir := t.TempDir()
	path := writeRecord(t, dir, "pos.sgf",
		"(;GM[4]FF[4]SZ[15]RE[?]\n;B[hh];W[ih])\n")

	board, count, err := FinalPosition(path)
	if err != nil {
		t.Fatalf("FinalPosition: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if board[7][7] != game.Black {
		t.Errorf("board[7][7] = %v, want black", board[7][7])
	}
	if board[7][8] != game.White {
		t.Errorf("board[7][8] = %v, want white", board[7][8])
	}
}

func TestListRecords(t *testing.T) {
	dir := t.TempDir()

	writeRecord(t, dir, "2026-08-20_120000.sgf", "(;GM[4]SZ[15]RE[B+5]\n;B[hh])\n")
	writeRecord(t, dir, "2026-08-25_090000.sgf", "(;GM[4]SZ[15]RE[?]\n;B[aa];W[bb])\n")
	writeRecord(t, dir, "notes.txt", "not a record")

	records, err := ListRecords(dir)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].FileName != "2026-08-25_090000.sgf" {
		t.Errorf("records[0] = %s, want the newer file", records[0].FileName)
	}
	if records[1].Result != "B+5" {
		t.Errorf("records[1].Result = %q, want B+5", records[1].Result)
	}
}

func TestListRecords_MissingDir(t *testing.T) {
	records, err := ListRecords(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListRecords on missing dir: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
