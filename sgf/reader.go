package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gomokuterm/game"
)

// RecordInfo holds metadata parsed from a record file header.
type RecordInfo struct {
	FilePath  string
	FileName  string
	BoardSize int
	Date      string
	Result    string
	MoveCount int
}

// Finished reports whether the record carries a decided result.
func (i *RecordInfo) Finished() bool {
	return i.Result != "" && i.Result != "?"
}

// ParseHeader reads a record file and extracts metadata from the root node.
func ParseHeader(filePath string) (*RecordInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	content := string(data)
	props := parseProperties(content)

	boardSize := game.BoardSize
	if v, ok := props["SZ"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			boardSize = n
		}
	}

	moves, err := parseMoves(content)
	if err != nil {
		return nil, err
	}

	return &RecordInfo{
		FilePath:  filePath,
		FileName:  filepath.Base(filePath),
		BoardSize: boardSize,
		Date:      props["DT"],
		Result:    props["RE"],
		MoveCount: len(moves),
	}, nil
}

// ListRecords scans dir for record files, newest first. A missing
// directory is treated as an empty list.
func ListRecords(dir string) ([]RecordInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []RecordInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sgf") {
			continue
		}
		info, err := ParseHeader(filepath.Join(dir, e.Name()))
		if err != nil {
			continue // skip unreadable files
		}
		records = append(records, *info)
	}

	// Filenames are timestamped, so a name sort is a date sort.
	sort.Slice(records, func(i, j int) bool {
		return records[i].FileName > records[j].FileName
	})
	return records, nil
}

// ReplayMoves parses a record file into an ordered move list. Turn
// order and cell legality are not validated here; resuming a game
// re-dispatches every move through the engine, which enforces both.
func ReplayMoves(filePath string) ([]game.Move, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return parseMoves(string(data))
}

// FinalPosition replays a record onto a plain grid and returns the
// resulting board and move count. Used for previews; it does not run
// the engine, so the record's own move order is trusted.
func FinalPosition(filePath string) (game.Board, int, error) {
	var board game.Board

	moves, err := ReplayMoves(filePath)
	if err != nil {
		return board, 0, err
	}
	for _, m := range moves {
		board[m.Row][m.Col] = m.Player
	}
	return board, len(moves), nil
}

// parseMoves extracts ;B[xy] and ;W[xy] nodes in order.
func parseMoves(content string) ([]game.Move, error) {
	var moves []game.Move

	for i := 0; i+1 < len(content); i++ {
		if content[i] != ';' {
			continue
		}
		colorChar := content[i+1]
		if colorChar != 'B' && colorChar != 'W' {
			continue
		}
		if i+2 >= len(content) || content[i+2] != '[' {
			continue
		}
		end := strings.IndexByte(content[i+3:], ']')
		if end == -1 {
			return nil, fmt.Errorf("unterminated move node at offset %d", i)
		}
		coord := content[i+3 : i+3+end]
		if len(coord) != 2 {
			return nil, fmt.Errorf("bad coordinate %q", coord)
		}

		col := int(coord[0] - 'a')
		row := int(coord[1] - 'a')
		if row < 0 || row >= game.BoardSize || col < 0 || col >= game.BoardSize {
			return nil, fmt.Errorf("coordinate %q outside the board", coord)
		}

		player := game.Black
		if colorChar == 'W' {
			player = game.White
		}
		moves = append(moves, game.Move{Row: row, Col: col, Player: player})
		i += 2 + end
	}

	return moves, nil
}

// parseProperties extracts KEY[value] pairs from the root node.
func parseProperties(content string) map[string]string {
	props := make(map[string]string)

	start := strings.Index(content, "(;")
	if start == -1 {
		return props
	}
	start += 2

	// The root node ends at the next ";" or ")".
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == ';' || content[i] == ')' {
			end = i
			break
		}
	}

	extractProps(content[start:end], props)
	return props
}

// extractProps parses KEY[value] pairs from a node string into the map.
func extractProps(node string, props map[string]string) {
	i := 0
	for i < len(node) {
		for i < len(node) && (node[i] == ' ' || node[i] == '\n' || node[i] == '\r' || node[i] == '\t') {
			i++
		}
		if i >= len(node) {
			break
		}

		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		if i >= len(node) || node[i] != '[' {
			continue
		}
		valStart := i + 1
		valEnd := strings.IndexByte(node[valStart:], ']')
		if valEnd == -1 {
			break
		}
		props[key] = node[valStart : valStart+valEnd]
		i = valStart + valEnd + 1
	}
}
