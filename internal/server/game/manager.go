package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"chessboard/internal/chess"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
	now   func() time.Time
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session), now: time.Now}
}

func (m *Manager) NewGame() *Session {
	return m.add(chess.NewGame())
}

// NewGameFromFEN hosts a game seeded from an encoded position.
func (m *Manager) NewGameFromFEN(fen string) (*Session, error) {
	g, err := chess.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *chess.Game) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Name:      petname.Generate(2, "-"),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
		now:       m.now,
	}
	m.games[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Sweep drops sessions that have not been touched for longer than idle and
// returns how many were removed.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.games {
		if s.UpdatedAt().Before(cutoff) {
			delete(m.games, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, every, idle time.Duration) {
	tick := time.NewTicker(every)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if n := m.Sweep(idle); n > 0 {
				log.Printf("removed %d idle games, %d left", n, m.Len())
			}
		}
	}
}
