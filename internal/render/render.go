// Package render draws a chess.View as plain or ANSI-coloured text.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"chessboard/internal/chess"
)

type Options struct {
	Color      bool // emit ANSI colours
	Glyphs     bool // Unicode pieces instead of FEN letters
	ShowStatus bool // append a turn/outcome line
}

var (
	lightSquare  = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare   = color.New(color.BgYellow, color.FgBlack)
	selectSquare = color.New(color.BgGreen, color.FgBlack)
	targetSquare = color.New(color.BgCyan, color.FgBlack)
	labelStyle   = color.New(color.FgHiBlack)
)

// Board renders the position with rank labels on the left and file labels
// underneath. Row 0 is printed first, so black sits at the top.
func Board(v chess.View, opts Options) string {
	targets := map[chess.Square]bool{}
	if v.Selection != nil {
		for _, sq := range chess.LegalMoves(v.Board, *v.Selection, v.Turn) {
			targets[sq] = true
		}
	}

	var sb strings.Builder
	for r := 0; r < chess.Rows; r++ {
		sb.WriteString(paint(labelStyle, opts.Color, fmt.Sprintf("%d ", chess.Rows-r)))
		for c := 0; c < chess.Cols; c++ {
			sq := chess.Sq(r, c)
			cell := " " + pieceText(v.Board.At(sq), opts.Glyphs) + " "
			sb.WriteString(paint(squareStyle(sq, v.Selection, targets), opts.Color, cell))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for c := 0; c < chess.Cols; c++ {
		sb.WriteString(paint(labelStyle, opts.Color, fmt.Sprintf(" %c ", 'a'+c)))
	}
	sb.WriteByte('\n')

	if opts.ShowStatus {
		sb.WriteString(Status(v))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Status is the one-line summary under the board.
func Status(v chess.View) string {
	if v.Outcome.Over {
		return fmt.Sprintf("game over, %s wins", v.Outcome.Winner)
	}
	s := fmt.Sprintf("%s to move", v.Turn)
	if v.Selection != nil {
		s += ", selected " + v.Selection.String()
	}
	return s
}

func pieceText(p chess.Piece, glyphs bool) string {
	if p == chess.NoPiece {
		if glyphs {
			return " "
		}
		return "."
	}
	if glyphs {
		return p.String()
	}
	return string(p.Letter())
}

func squareStyle(sq chess.Square, sel *chess.Square, targets map[chess.Square]bool) *color.Color {
	switch {
	case sel != nil && *sel == sq:
		return selectSquare
	case targets[sq]:
		return targetSquare
	case (sq.Row+sq.Col)%2 == 0:
		return lightSquare
	default:
		return darkSquare
	}
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	cc := *c
	cc.EnableColor()
	return cc.Sprint(s)
}
