package sgf

import (
	"os"
	"strings"
	"testing"

	"gomokuterm/game"
)

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "aa"},
		{4, 3, "de"},
		{14, 14, "oo"},
		{7, 7, "hh"}, // center
		{0, 14, "oa"},
	}
	for _, tt := range tests {
		got := sgfCoord(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("sgfCoord(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestResultFor(t *testing.T) {
	tests := []struct {
		status game.Status
		want   string
	}{
		{game.StatusBlackWin, "B+5"},
		{game.StatusWhiteWin, "W+5"},
		{game.StatusDraw, "0"},
		{game.StatusPlaying, "?"},
		{game.StatusPaused, "?"},
	}
	for _, tt := range tests {
		got := resultFor(tt.status)
		if got != tt.want {
			t.Errorf("resultFor(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNewGameRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatal("record file not created")
	}

	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(content)

	for _, prop := range []string{"GM[4]", "FF[4]", "SZ[15]", "RE[?]"} {
		if !strings.Contains(s, prop) {
			t.Errorf("record missing property %s in:\n%s", prop, s)
		}
	}

	if !strings.HasPrefix(s, "(;") {
		t.Error("record should start with '(;'")
	}
	if !strings.Contains(s, ")") {
		t.Error("record should contain closing ')'")
	}
}

func TestGameRecord_AddAndUndoMoves(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	moves := []game.Move{
		{Row: 7, Col: 7, Player: game.Black},
		{Row: 7, Col: 8, Player: game.White},
		{Row: 8, Col: 7, Player: game.Black},
	}
	for _, m := range moves {
		if err := rec.AddMove(m); err != nil {
			t.Fatalf("AddMove: %v", err)
		}
	}

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)
	for _, node := range []string{";B[hh]", ";W[ih]", ";B[hi]"} {
		if !strings.Contains(s, node) {
			t.Errorf("record missing move node %s in:\n%s", node, s)
		}
	}

	// Undo the last move and check it disappeared from disk.
	if err := rec.UndoMoves(1); err != nil {
		t.Fatalf("UndoMoves: %v", err)
	}
	content, _ = os.ReadFile(rec.FilePath)
	if strings.Contains(string(content), ";B[hi]") {
		t.Error("undone move still present in record")
	}
	if !strings.Contains(string(content), ";W[ih]") {
		t.Error("earlier move lost by undo")
	}

	// Undoing more moves than exist truncates to empty without error.
	if err := rec.UndoMoves(10); err != nil {
		t.Fatalf("UndoMoves past start: %v", err)
	}
	content, _ = os.ReadFile(rec.FilePath)
	if strings.Contains(string(content), ";B[") || strings.Contains(string(content), ";W[") {
		t.Errorf("moves remain after full undo:\n%s", content)
	}
}

func TestGameRecord_SetResult(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	if err := rec.SetResult(game.StatusBlackWin); err != nil {
		t.Fatalf("SetResult: %v", err)
	}
	content, _ := os.ReadFile(rec.FilePath)
	if !strings.Contains(string(content), "RE[B+5]") {
		t.Errorf("expected RE[B+5] in:\n%s", content)
	}

	// Undo past the win reopens the record.
	if err := rec.ClearResult(); err != nil {
		t.Fatalf("ClearResult: %v", err)
	}
	content, _ = os.ReadFile(rec.FilePath)
	if !strings.Contains(string(content), "RE[?]") {
		t.Errorf("expected RE[?] after ClearResult in:\n%s", content)
	}
}

func TestGameRecord_WriteAfterClose(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	rec.Close()

	if err := rec.AddMove(game.Move{Row: 0, Col: 0, Player: game.Black}); err == nil {
		t.Error("AddMove after Close should fail")
	}
}
