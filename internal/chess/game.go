package chess

// Move is an applied move as shown to presentation layers.
type Move struct {
	From     Square `json:"from"`
	To       Square `json:"to"`
	Captured Piece  `json:"captured"`
}

type ClickResult int

const (
	ClickIgnored  ClickResult = iota // nothing changed
	ClickSelected                    // a piece of the active player is now selected
	ClickMoved                       // the selected piece moved
	ClickRejected                    // illegal destination; selection cleared
)

func (r ClickResult) String() string {
	switch r {
	case ClickSelected:
		return "selected"
	case ClickMoved:
		return "moved"
	case ClickRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Game is the full engine state: board, side to move, selection, undo
// history and outcome. It has a single writer; wrap it in a mutex to share it.
type Game struct {
	board     Board
	turn      Color
	history   History
	selected  Square
	selecting bool
	outcome   Outcome
	lastMove  *Move
	version   uint64
}

func NewGame() *Game {
	g := &Game{}
	g.Restart()
	return g
}

// NewGameFromPosition starts a game from an arbitrary board, with an empty
// history.
func NewGameFromPosition(b Board, turn Color) *Game {
	if turn != Black {
		turn = White
	}
	return &Game{
		board:   b,
		turn:    turn,
		outcome: Outcome{Winner: NoColor},
		version: 1,
	}
}

// Restart resets board, turn, history, selection and outcome together.
func (g *Game) Restart() {
	g.board = NewBoard()
	g.turn = White
	g.history.Reset()
	g.clearSelection()
	g.outcome = Outcome{Winner: NoColor}
	g.lastMove = nil
	g.version++
}

func (g *Game) Board() Board       { return g.board }
func (g *Game) Turn() Color        { return g.turn }
func (g *Game) Outcome() Outcome   { return g.outcome }
func (g *Game) HistoryLen() int    { return g.history.Len() }
func (g *Game) Version() uint64    { return g.version }
func (g *Game) Over() bool         { return g.outcome.Over }
func (g *Game) At(sq Square) Piece { return g.board.At(sq) }

func (g *Game) Selection() (Square, bool) {
	return g.selected, g.selecting
}

func (g *Game) LastMove() (Move, bool) {
	if g.lastMove == nil {
		return Move{}, false
	}
	return *g.lastMove, true
}

func (g *Game) clearSelection() {
	g.selected = Square{}
	g.selecting = false
}

// Select marks sq as the source of the next move. It only succeeds on a
// piece of the active player while the game is running.
func (g *Game) Select(sq Square) bool {
	if g.outcome.Over {
		return false
	}
	if !BelongsTo(g.board.At(sq), g.turn) {
		return false
	}
	if g.selecting && g.selected == sq {
		return true
	}
	g.selected = sq
	g.selecting = true
	g.version++
	return true
}

// AttemptMove tries to play from->to for the active player. A false return
// leaves the game untouched; an applied move also drops any selection.
func (g *Game) AttemptMove(from, to Square) bool {
	if g.outcome.Over {
		return false
	}
	if !BelongsTo(g.board.At(from), g.turn) {
		return false
	}
	if !isLegal(&g.board, from, to, g.turn) {
		return false
	}

	g.clearSelection()
	g.history.Record(g.board, g.turn)
	captured := g.board.move(from, to)
	g.lastMove = &Move{From: from, To: to, Captured: captured}

	opponent := Opposite(g.turn)
	if IsTerminal(g.board, opponent) {
		g.outcome = Outcome{Over: true, Winner: g.turn}
	} else {
		g.turn = opponent
	}
	g.version++
	return true
}

// Click drives the two-click interaction: the first click selects, the
// second attempts the move and always clears the selection.
func (g *Game) Click(sq Square) ClickResult {
	if g.outcome.Over {
		return ClickIgnored
	}
	if !g.selecting {
		if g.Select(sq) {
			return ClickSelected
		}
		return ClickIgnored
	}
	if g.AttemptMove(g.selected, sq) {
		return ClickMoved
	}
	g.clearSelection()
	g.version++
	return ClickRejected
}

// Undo restores the board and side to move from before the last move. It is
// refused once the game is over; only Restart reopens a finished game.
func (g *Game) Undo() bool {
	if g.outcome.Over {
		return false
	}
	snap, ok := g.history.Undo()
	if !ok {
		return false
	}
	g.board = snap.Board
	g.turn = snap.Turn
	g.clearSelection()
	g.lastMove = nil
	g.version++
	return true
}

// View is a copy of everything a presentation layer needs to draw the game.
type View struct {
	Board      Board
	Turn       Color
	Selection  *Square
	Outcome    Outcome
	HistoryLen int
	LastMove   *Move
	Version    uint64
}

func (g *Game) View() View {
	v := View{
		Board:      g.board,
		Turn:       g.turn,
		Outcome:    g.outcome,
		HistoryLen: g.history.Len(),
		Version:    g.version,
	}
	if g.selecting {
		sel := g.selected
		v.Selection = &sel
	}
	if g.lastMove != nil {
		lm := *g.lastMove
		v.LastMove = &lm
	}
	return v
}
