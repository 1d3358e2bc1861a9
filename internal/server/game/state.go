package game

import (
	"sync"
	"time"

	"chessboard/internal/chess"
)

// Session is one hosted game. The chess.Game inside has a single writer, so
// every access goes through mu.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *chess.Game
	updatedAt time.Time
	now       func() time.Time
}

// Do runs fn with exclusive access to the game and marks the session as used.
func (s *Session) Do(fn func(g *chess.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
	s.updatedAt = s.now()
}

// View returns a copy of the observable game state.
func (s *Session) View() chess.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.View()
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
