package chess

import (
	"errors"
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"
)

// Encode writes the board as FEN piece placement (row 0 first, digits for
// empty runs) followed by " w" or " b".
func Encode(b Board, turn Color) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.Squares[indexOf(r, c)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if turn == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// FEN returns the full six-field form. Castling and en passant do not exist
// here, so those fields are always "-".
func FEN(b Board, turn Color, fullMove int) string {
	if fullMove < 1 {
		fullMove = 1
	}
	return fmt.Sprintf("%s - - 0 %d", Encode(b, turn), fullMove)
}

var ErrInvalidFEN = errors.New("invalid FEN")

// Decode accepts either the short "<placement> <w|b>" form produced by Encode
// or a full FEN string. Castling, en passant and clock fields are ignored.
// Each side must have exactly one king.
func Decode(s string) (Board, Color, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 6 {
		return Board{}, NoColor, fmt.Errorf("%w: want 2 to 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	defaults := []string{"", "", "-", "-", "0", "1"}
	fields = append(fields, defaults[len(fields):]...)

	var pos nchess.Position
	if err := pos.UnmarshalText([]byte(strings.Join(fields, " "))); err != nil {
		return Board{}, NoColor, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	var b Board
	for sq, pc := range pos.Board().SquareMap() {
		p := fromNotnil(pc)
		if p == NoPiece {
			continue
		}
		row := Rows - 1 - int(sq.Rank())
		col := int(sq.File())
		b.Set(Sq(row, col), p)
	}
	for _, c := range []Color{White, Black} {
		if n := b.Count(c, King); n != 1 {
			return Board{}, NoColor, fmt.Errorf("%w: %s has %d kings, want 1", ErrInvalidFEN, c, n)
		}
	}
	turn := White
	if pos.Turn() == nchess.Black {
		turn = Black
	}
	return b, turn, nil
}

var notnilKinds = map[nchess.PieceType]PieceKind{
	nchess.King:   King,
	nchess.Queen:  Queen,
	nchess.Rook:   Rook,
	nchess.Bishop: Bishop,
	nchess.Knight: Knight,
	nchess.Pawn:   Pawn,
}

func fromNotnil(pc nchess.Piece) Piece {
	kind, ok := notnilKinds[pc.Type()]
	if !ok {
		return NoPiece
	}
	switch pc.Color() {
	case nchess.White:
		return MakePiece(White, kind)
	case nchess.Black:
		return MakePiece(Black, kind)
	}
	return NoPiece
}

// NewGameFromFEN starts a game from an encoded position.
func NewGameFromFEN(s string) (*Game, error) {
	b, turn, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return NewGameFromPosition(b, turn), nil
}
