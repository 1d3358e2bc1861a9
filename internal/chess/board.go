package chess

import (
	"strings"
	"unicode"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func Opposite(c Color) Color {
	if c == White {
		return Black
	}
	if c == Black {
		return White
	}
	return NoColor
}

// pawnDir: white moves toward row 0, black toward row 7.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	if c == Black {
		return +1
	}
	return 0
}

var letterToKind = map[rune]PieceKind{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

// Letter returns the FEN letter, uppercase for white, '.' when empty.
func (p Piece) Letter() rune {
	if p == NoPiece {
		return '.'
	}
	var base rune
	for k, v := range letterToKind {
		if v == p.Kind() {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Color() == White {
		return unicode.ToUpper(base)
	}
	return base
}

func pieceFromLetter(ch rune) (Piece, bool) {
	kind, ok := letterToKind[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	if unicode.IsUpper(ch) {
		return MakePiece(White, kind), true
	}
	return MakePiece(Black, kind), true
}

const initialBoardString = `rnbqkbnr
pppppppp
........
........
........
........
PPPPPPPP
RNBQKBNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString must have 8 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString must have 8 columns")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[indexOf(r, c)] = pc
		}
	}
	return b
}

var initialBoard = parseInitialBoard()

// NewBoard returns the standard starting layout. Callers reset turn, history
// and outcome alongside it.
func NewBoard() Board {
	return initialBoard
}

// At returns the piece on sq; off-board squares read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[indexOf(sq.Row, sq.Col)]
}

func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.Squares[indexOf(sq.Row, sq.Col)] = p
}

// move relocates the piece on from to to, overwriting any capture.
func (b *Board) move(from, to Square) Piece {
	captured := b.At(to)
	b.Set(to, b.At(from))
	b.Set(from, NoPiece)
	return captured
}

// Count returns how many pieces of color c and kind k are on the board.
func (b *Board) Count(c Color, k PieceKind) int {
	want := MakePiece(c, k)
	n := 0
	for _, pc := range b.Squares {
		if pc == want {
			n++
		}
	}
	return n
}

// Grid returns the board as rows of FEN letters, '.' for empty squares.
func (b *Board) Grid() [Rows]string {
	var out [Rows]string
	for r := 0; r < Rows; r++ {
		var sb strings.Builder
		for c := 0; c < Cols; c++ {
			sb.WriteRune(b.Squares[indexOf(r, c)].Letter())
		}
		out[r] = sb.String()
	}
	return out
}
