package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"chessboard/internal/chess"
	"chessboard/internal/server/game"
)

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/select":
		h.handleSelect(w, r)
	case "/api/click":
		h.handleClick(w, r)
	case "/api/move":
		h.handleMove(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/restart":
		h.handleRestart(w, r)
	case "/api/legal_moves":
		h.handleLegalMoves(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	// an empty body means the standard opening
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var s *game.Session
	if req.FEN == "" {
		s = h.games.NewGame()
	} else {
		var err error
		s, err = h.games.NewGameFromFEN(req.FEN)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	log.Printf("new game %s (%s)", s.ID, s.Name)
	writeJSON(w, viewToState(s.ID, s.Name, s.View()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	writeJSON(w, viewToState(s.ID, s.Name, s.View()))
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	sq, ok := validSquare(w, req.Square)
	if !ok {
		return
	}
	h.act(w, req.GameID, func(g *chess.Game) (bool, string) {
		return g.Select(sq), ""
	})
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	sq, ok := validSquare(w, req.Square)
	if !ok {
		return
	}
	h.act(w, req.GameID, func(g *chess.Game) (bool, string) {
		res := g.Click(sq)
		return res != chess.ClickIgnored, res.String()
	})
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decode(w, r, &req) {
		return
	}
	from, ok := validSquare(w, req.From)
	if !ok {
		return
	}
	to, ok := validSquare(w, req.To)
	if !ok {
		return
	}
	h.act(w, req.GameID, func(g *chess.Game) (bool, string) {
		return g.AttemptMove(from, to), ""
	})
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.act(w, req.GameID, func(g *chess.Game) (bool, string) {
		return g.Undo(), ""
	})
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.act(w, req.GameID, func(g *chess.Game) (bool, string) {
		g.Restart()
		return true, ""
	})
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	sq, ok := validSquare(w, req.Square)
	if !ok {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	v := s.View()
	targets := []chess.Square{}
	if !v.Outcome.Over {
		targets = append(targets, chess.LegalMoves(v.Board, sq, v.Turn)...)
	}
	writeJSON(w, LegalMovesResponse{From: req.Square, Targets: squaresToDTO(targets)})
}

// act runs op on the session's game and answers with the resulting state.
func (h *Handler) act(w http.ResponseWriter, id string, op func(g *chess.Game) (bool, string)) {
	s, ok := h.session(w, id)
	if !ok {
		return
	}
	var (
		accepted bool
		result   string
		view     chess.View
	)
	s.Do(func(g *chess.Game) {
		accepted, result = op(g)
		view = g.View()
	})
	writeJSON(w, ActionResponse{
		StateResponse: viewToState(s.ID, s.Name, view),
		Accepted:      accepted,
		Result:        result,
	})
}

func (h *Handler) session(w http.ResponseWriter, id string) (*game.Session, bool) {
	s, err := h.games.Get(id)
	if errors.Is(err, game.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func validSquare(w http.ResponseWriter, s SquareDTO) (chess.Square, bool) {
	sq := dtoToSquare(s)
	if !sq.Valid() {
		http.Error(w, "square off the board", http.StatusBadRequest)
		return sq, false
	}
	return sq, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
