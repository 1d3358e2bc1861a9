package chess

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

type PieceKind int8

const (
	KindNone PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k PieceKind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Piece: 0 = empty, >0 white, <0 black, abs = PieceKind.
type Piece int8

const NoPiece Piece = 0

func MakePiece(c Color, k PieceKind) Piece {
	if k <= KindNone || k > Pawn || c == NoColor {
		return NoPiece
	}
	if c == White {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

// Color reports the owner of p, NoColor for an empty square.
func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return White
	}
	return Black
}

func (p Piece) Empty() bool { return p == NoPiece }

// BelongsTo is true iff p is a piece of color c.
func BelongsTo(p Piece, c Color) bool {
	return p != NoPiece && p.Color() == c
}

var glyphs = [2][7]string{
	{"", "♔", "♕", "♖", "♗", "♘", "♙"},
	{"", "♚", "♛", "♜", "♝", "♞", "♟"},
}

// String returns the Unicode glyph of the piece, or "" for an empty square.
func (p Piece) String() string {
	k := p.Kind()
	if k <= KindNone || k > Pawn {
		return ""
	}
	return glyphs[p.Color()][k]
}

// Square is a (row, col) coordinate; row 0 is black's back rank.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

// String returns algebraic notation (row 7 = rank 1), "-" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('1' + (Rows - 1 - s.Row))})
}

type Board struct {
	Squares [NumSquares]Piece
}

// Snapshot is the pre-move state kept for undo.
type Snapshot struct {
	Board Board
	Turn  Color
}

type Outcome struct {
	Over   bool  `json:"over"`
	Winner Color `json:"winner"`
}

func (o Outcome) String() string {
	if !o.Over {
		return "ongoing"
	}
	return o.Winner.String() + " wins"
}
