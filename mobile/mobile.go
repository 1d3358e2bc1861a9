package mobile

import (
	"log"
	"net/http"

	"chessboard/internal/server/game"
	httpserver "chessboard/internal/server/http"
)

// StartServer starts the local HTTP server in the background.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	mux := httpserver.NewRouter(httpserver.NewHandler(game.NewManager()), webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
