package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"chessboard/internal/server/game"
	httpserver "chessboard/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless machines have no browser; ignore
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", getenv("CHESS_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("CHESS_WEB", ""), "directory with static web assets (optional)")
	open := flag.Bool("open", false, "open the default browser after start")
	idle := flag.Duration("idle", 2*time.Hour, "drop games untouched for this long")
	flag.Parse()

	games := game.NewManager()
	go games.RunJanitor(context.Background(), time.Minute, *idle)

	mux := httpserver.NewRouter(httpserver.NewHandler(games), *webDir)

	if *webDir != "" {
		log.Printf("listening on %s, serving static from %s", *addr, *webDir)
	} else {
		log.Printf("listening on %s", *addr)
	}

	if *open {
		// give the listener a moment before the browser hits it
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
