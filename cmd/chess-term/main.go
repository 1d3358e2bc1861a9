package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"chessboard/internal/chess"
	"chessboard/internal/tui"
)

func initLog(dest, prefix string) {
	if dest == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}

func main() {
	logPath := flag.String("log", "", "path to log file (stdout is the screen)")
	fen := flag.String("fen", "", "start from this position instead of the opening")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "chess-term needs an interactive terminal")
		os.Exit(1)
	}
	initLog(*logPath, "chess-term: ")

	g := chess.NewGame()
	if *fen != "" {
		var err error
		if g, err = chess.NewGameFromFEN(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	log.Println("new client")
	if err := tui.New(g).Run(); err != nil {
		log.Printf("ui: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
