// gomokuterm is a terminal Gomoku (five-in-a-row) game for two players
// sharing one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomokuterm/config"
	"gomokuterm/sgf"
	"gomokuterm/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlay     = flag.Bool("play", false, "Skip the menu and start a game immediately")
	flagLoad     = flag.String("load", "", "Resume a saved game record (path to .sgf)")
	flagNoRecord = flag.Bool("norecord", false, "Do not write a game record")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var board *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var recordBrowser *ui.RecordBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gomokuterm %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	quickStart := *flagPlay || *flagLoad != ""

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬡ gomoku ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	board = ui.NewBoard(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(board, gameHint)

	// Game board input handling
	board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			board.MoveSelection(-1, 0)
		case tcell.KeyDown:
			board.MoveSelection(1, 0)
		case tcell.KeyLeft:
			board.MoveSelection(0, -1)
		case tcell.KeyRight:
			board.MoveSelection(0, 1)
		case tcell.KeyEnter:
			board.PlaceAtCursor()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				board.MoveSelection(0, -1)
			case 'j':
				board.MoveSelection(1, 0)
			case 'k':
				board.MoveSelection(-1, 0)
			case 'l':
				board.MoveSelection(0, 1)
			case ' ':
				board.PlaceAtCursor()
			case 'u':
				board.Undo()
			case 'p':
				board.TogglePause()
			case 'n':
				startNewGame()
			case 'q':
				board.CloseRecord()
				recordBrowser.Refresh()
				rootPage.SwitchToPage("menu")
				return nil
			}
		}
		return event
	})

	// Main menu
	menu := ui.NewMainMenu(
		func() { startNewGame() },
		func() {
			recordBrowser.Refresh()
			rootPage.SwitchToPage("records")
		},
		func() { rootPage.SwitchToPage("colors") },
		func() { app.Stop() },
	)

	// Saved-games browser
	recordBrowser = ui.NewRecordBrowser(cfg.RecordsDir(),
		func(info sgf.RecordInfo) { loadGame(info.FilePath) },
		func() { rootPage.SwitchToPage("menu") },
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		board.SetConfig(cfg)
		rootPage.SwitchToPage("menu")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			board.SetConfig(cfg)
			rootPage.SwitchToPage("menu")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on the menu unless a quick start was requested
	rootPage.AddPage("menu", menu.Form(), true, !quickStart)
	rootPage.AddPage("game", gameFrame, true, quickStart)
	rootPage.AddPage("records", recordBrowser.Flex(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if *flagLoad != "" {
		loadGame(*flagLoad)
	} else if *flagPlay {
		startNewGame()
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startNewGame resets the board, attaches a fresh record, and shows the
// game view.
func startNewGame() {
	board.NewGame(newRecord())
	rootPage.SwitchToPage("game")
}

// newRecord creates a game record in the configured directory, or nil
// when recording is disabled.
func newRecord() *sgf.GameRecord {
	if *flagNoRecord || !cfg.Records.Autosave {
		return nil
	}
	rec, err := sgf.NewGameRecord(cfg.RecordsDir())
	if err != nil {
		showError(fmt.Sprintf("Could not create game record:\n%s", err.Error()))
		return nil
	}
	return rec
}

// loadGame resumes a saved record by replaying it through the engine.
func loadGame(path string) {
	moves, err := sgf.ReplayMoves(path)
	if err != nil {
		showError(fmt.Sprintf("Could not read game record:\n%s", err.Error()))
		return
	}
	if err := board.LoadGame(moves, newRecord()); err != nil {
		showError(fmt.Sprintf("Record is not a valid game:\n%s", err.Error()))
		return
	}
	rootPage.SwitchToPage("game")
}

// showError displays a dismissable error modal.
func showError(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.HidePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
