package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chessboard/internal/server/ssh"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", getenv("CHESS_SSH_ADDR", ":2222"), "ssh listen address")
	bin := flag.String("bin", getenv("CHESS_TERM_BIN", "chess-term"), "path to the chess-term binary")
	hostKey := flag.String("hostkey", getenv("CHESS_SSH_HOSTKEY", ""), "host key file (default: ephemeral key)")
	idle := flag.Duration("idle", ssh.ServerIdleTimeout, "close idle connections after this long")
	flag.Parse()

	srv, err := ssh.New(ssh.Config{
		ListenAddress: *addr,
		Binary:        *bin,
		HostKeyFile:   *hostKey,
		IdleTimeout:   *idle,
	})
	if err != nil {
		log.Fatalf("ssh init: %v", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Fatal(err)
	}
}
