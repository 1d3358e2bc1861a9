package httpserver

import "chessboard/internal/chess"

// NewGameRequest: empty FEN means the standard opening position.
type NewGameRequest struct {
	FEN string `json:"fen"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

// select / click / legal_moves
type SquareRequest struct {
	GameID string    `json:"game_id"`
	Square SquareDTO `json:"square"`
}

type MoveRequest struct {
	GameID string    `json:"game_id"`
	From   SquareDTO `json:"from"`
	To     SquareDTO `json:"to"`
}

type SquareDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type MoveDTO struct {
	From     SquareDTO `json:"from"`
	To       SquareDTO `json:"to"`
	Captured string    `json:"captured,omitempty"`
}

// StateResponse is the full observable state of one game.
type StateResponse struct {
	GameID     string      `json:"game_id"`
	Name       string      `json:"name"`
	Position   string      `json:"position"` // chess.Encode form
	Board      [8]string   `json:"board"`    // FEN letters per row, '.' = empty
	ToMove     int         `json:"to_move"`  // 0=white, 1=black
	Selection  *SquareDTO  `json:"selection,omitempty"`
	Targets    []SquareDTO `json:"targets,omitempty"` // legal destinations of the selection
	Status     string      `json:"status"`            // "ongoing" / "over"
	Winner     int         `json:"winner"`            // -1 while ongoing
	HistoryLen int         `json:"history_len"`
	LastMove   *MoveDTO    `json:"last_move,omitempty"`
	Version    uint64      `json:"version"`
}

// ActionResponse answers select / click / move / undo / restart.
type ActionResponse struct {
	StateResponse
	Accepted bool   `json:"accepted"`
	Result   string `json:"result,omitempty"` // click only
}

type LegalMovesResponse struct {
	From    SquareDTO   `json:"from"`
	Targets []SquareDTO `json:"targets"`
}

func sideToInt(c chess.Color) int {
	switch c {
	case chess.White:
		return 0
	case chess.Black:
		return 1
	default:
		return -1
	}
}

func dtoToSquare(s SquareDTO) chess.Square {
	return chess.Sq(s.Row, s.Col)
}

func squareToDTO(s chess.Square) SquareDTO {
	return SquareDTO{Row: s.Row, Col: s.Col}
}

func squaresToDTO(ss []chess.Square) []SquareDTO {
	out := make([]SquareDTO, len(ss))
	for i, s := range ss {
		out[i] = squareToDTO(s)
	}
	return out
}

func viewToState(id, name string, v chess.View) StateResponse {
	resp := StateResponse{
		GameID:     id,
		Name:       name,
		Position:   chess.Encode(v.Board, v.Turn),
		Board:      v.Board.Grid(),
		ToMove:     sideToInt(v.Turn),
		Status:     "ongoing",
		Winner:     -1,
		HistoryLen: v.HistoryLen,
		Version:    v.Version,
	}
	if v.Outcome.Over {
		resp.Status = "over"
		resp.Winner = sideToInt(v.Outcome.Winner)
	}
	if v.Selection != nil {
		sel := squareToDTO(*v.Selection)
		resp.Selection = &sel
		resp.Targets = squaresToDTO(chess.LegalMoves(v.Board, *v.Selection, v.Turn))
	}
	if v.LastMove != nil {
		resp.LastMove = &MoveDTO{
			From:     squareToDTO(v.LastMove.From),
			To:       squareToDTO(v.LastMove.To),
			Captured: v.LastMove.Captured.String(),
		}
	}
	return resp
}
