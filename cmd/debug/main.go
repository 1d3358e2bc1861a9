package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"chessboard/internal/chess"
	"chessboard/internal/render"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: opening)")
	flag.Parse()

	g := chess.NewGame()
	if *fen != "" {
		var err error
		if g, err = chess.NewGameFromFEN(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	v := g.View()
	fmt.Print(render.Board(v, render.Options{
		Color:      isatty.IsTerminal(os.Stdout.Fd()),
		Glyphs:     true,
		ShowStatus: true,
	}))
	fmt.Println("FEN:", chess.FEN(v.Board, v.Turn, 1))

	total := 0
	for r := 0; r < chess.Rows; r++ {
		for c := 0; c < chess.Cols; c++ {
			total += len(chess.LegalMoves(v.Board, chess.Sq(r, c), v.Turn))
		}
	}
	fmt.Println("Legal moves:", total)
}
