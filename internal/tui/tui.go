// Package tui is a terminal front end for chess.Game: an 8x8 table where
// Enter on a square is a click, plus a status line.
package tui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessboard/internal/chess"
	"chessboard/internal/render"
)

const helpText = "[::d]enter: select/move  u: undo  n: new game  q: quit"

var (
	lightBg  = tcell.NewRGBColor(0xf0, 0xd9, 0xb5)
	darkBg   = tcell.NewRGBColor(0xb5, 0x88, 0x63)
	selectBg = tcell.ColorGreen
	targetBg = tcell.ColorDarkCyan
)

type UI struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView
	root   *tview.Flex

	game  *chess.Game
	drawn uint64
}

// New builds the widgets around g. The UI owns g from here on: it must only
// be touched from the tview event loop.
func New(g *chess.Game) *UI {
	u := &UI{
		app:    tview.NewApplication(),
		table:  tview.NewTable(),
		status: tview.NewTextView().SetDynamicColors(true),
		game:   g,
	}

	u.table.SetSelectable(true, true).
		SetSelectedFunc(u.click).
		SetInputCapture(u.handleKey)
	u.table.SetBorder(true).SetTitle(" chess ")

	help := tview.NewTextView().SetDynamicColors(true).SetText(helpText)
	u.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.table, chess.Rows+2, 0, true).
		AddItem(u.status, 1, 0, false).
		AddItem(help, 1, 0, false)

	u.redraw(true)
	u.table.Select(chess.Rows-2, 4)
	return u
}

func (u *UI) Root() tview.Primitive { return u.root }

func (u *UI) Run() error {
	return u.app.SetRoot(u.root, true).EnableMouse(true).Run()
}

func (u *UI) Stop() { u.app.Stop() }

func (u *UI) click(row, col int) {
	sq := chess.Sq(row, col)
	res := u.game.Click(sq)
	if res == chess.ClickMoved {
		if mv, ok := u.game.LastMove(); ok {
			log.Printf("move %s-%s", mv.From, mv.To)
		}
		if out := u.game.Outcome(); out.Over {
			log.Printf("game over: %s", out)
		}
	}
	u.redraw(false)
}

func (u *UI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case 'u':
		if u.game.Undo() {
			log.Printf("undo, %d moves left in history", u.game.HistoryLen())
		}
	case 'n':
		u.game.Restart()
		log.Printf("new game")
	case 'q':
		u.app.Stop()
	default:
		return ev
	}
	u.redraw(false)
	return nil
}

// redraw refreshes the cells when the game changed since the last draw.
func (u *UI) redraw(force bool) {
	v := u.game.View()
	if !force && v.Version == u.drawn {
		return
	}
	u.drawn = v.Version

	targets := map[chess.Square]bool{}
	if v.Selection != nil {
		for _, sq := range chess.LegalMoves(v.Board, *v.Selection, v.Turn) {
			targets[sq] = true
		}
	}

	for r := 0; r < chess.Rows; r++ {
		for c := 0; c < chess.Cols; c++ {
			sq := chess.Sq(r, c)
			pc := v.Board.At(sq)
			text := " " + pc.String() + " "
			if pc == chess.NoPiece {
				text = "   "
			}
			bg := darkBg
			switch {
			case v.Selection != nil && *v.Selection == sq:
				bg = selectBg
			case targets[sq]:
				bg = targetBg
			case (r+c)%2 == 0:
				bg = lightBg
			}
			u.table.SetCell(r, c, tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetTextColor(tcell.ColorBlack).
				SetBackgroundColor(bg))
		}
	}

	u.status.SetText(fmt.Sprintf("%s  [::d](moves: %d)", render.Status(v), v.HistoryLen))
}
