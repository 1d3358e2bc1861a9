// Package ssh hosts the terminal UI over SSH: every interactive session gets
// its own chess-term process running on a pseudo-terminal.
package ssh

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const ServerIdleTimeout = 5 * time.Minute

var (
	ErrNoAddress = errors.New("ssh: listen address must be specified")
	ErrNoBinary  = errors.New("ssh: terminal binary must be specified")

	// ErrServerClosed is returned by ListenAndServe after Shutdown.
	ErrServerClosed = ssh.ErrServerClosed
)

type Config struct {
	ListenAddress string
	Binary        string   // path to the chess-term executable
	Args          []string // extra arguments for Binary
	HostKeyFile   string   // empty: generate an ephemeral ed25519 key
	IdleTimeout   time.Duration
}

type Server struct {
	cfg Config
	srv *ssh.Server
}

func New(cfg Config) (*Server, error) {
	if cfg.ListenAddress == "" {
		return nil, ErrNoAddress
	}
	if cfg.Binary == "" {
		return nil, ErrNoBinary
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = ServerIdleTimeout
	}

	s := &Server{cfg: cfg}
	s.srv = &ssh.Server{
		Addr:        cfg.ListenAddress,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
	}

	if cfg.HostKeyFile != "" {
		if err := s.srv.SetOption(ssh.HostKeyFile(cfg.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("ssh: host key %s: %w", cfg.HostKeyFile, err)
		}
	} else {
		signer, err := ephemeralSigner()
		if err != nil {
			return nil, err
		}
		s.srv.AddHostKey(signer)
	}
	return s, nil
}

func ephemeralSigner() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ssh: generate host key: %w", err)
	}
	signer, err := gossh.NewSignerFromKey(priv)
	if err != nil {
		return nil, fmt.Errorf("ssh: host key signer: %w", err)
	}
	return signer, nil
}

func (s *Server) ListenAndServe() error {
	log.Printf("ssh listening on %s", s.cfg.ListenAddress)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// command builds the process for one session.
func (s *Server) command(ctx context.Context, term string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.cfg.Binary, s.cfg.Args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	cmd := s.command(ctx, ptyReq.Term)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()
	log.Printf("session from %s (%s)", sess.RemoteAddr(), sess.User())

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()
	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancel()
	if err := cmd.Wait(); err != nil {
		log.Printf("session %s ended: %v", sess.RemoteAddr(), err)
	}
}
