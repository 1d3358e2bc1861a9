package chess

import "testing"

func emptyBoardWith(pieces map[Square]Piece) Board {
	var b Board
	for sq, pc := range pieces {
		b.Set(sq, pc)
	}
	return b
}

func TestNoSelfCapture(t *testing.T) {
	b := NewBoard()
	for _, side := range []Color{White, Black} {
		for from := 0; from < NumSquares; from++ {
			fromSq := Sq(rowOf(from), colOf(from))
			if !BelongsTo(b.At(fromSq), side) {
				continue
			}
			for to := 0; to < NumSquares; to++ {
				toSq := Sq(rowOf(to), colOf(to))
				if BelongsTo(b.At(toSq), side) && IsLegal(b, fromSq, toSq, side) {
					t.Fatalf("%v %v -> %v captures own piece", side, fromSq, toSq)
				}
			}
		}
	}
}

func TestRookBlockedByOwnPawn(t *testing.T) {
	b := NewBoard()
	for r := 5; r >= 0; r-- {
		if IsLegal(b, Sq(7, 0), Sq(r, 0), White) {
			t.Fatalf("rook should be blocked moving to (%d,0)", r)
		}
	}
}

func TestRookPaths(t *testing.T) {
	rook := MakePiece(White, Rook)
	b := emptyBoardWith(map[Square]Piece{
		Sq(4, 4): rook,
		Sq(4, 1): MakePiece(Black, Pawn),
		Sq(2, 4): MakePiece(White, Pawn),
	})
	cases := []struct {
		to   Square
		want bool
	}{
		{Sq(4, 7), true},  // open file to the right
		{Sq(4, 1), true},  // capture enemy
		{Sq(4, 0), false}, // behind the enemy pawn
		{Sq(3, 4), true},
		{Sq(2, 4), false}, // own pawn
		{Sq(1, 4), false}, // behind own pawn
		{Sq(7, 4), true},
		{Sq(5, 5), false}, // not straight
	}
	for _, tc := range cases {
		if got := IsLegal(b, Sq(4, 4), tc.to, White); got != tc.want {
			t.Errorf("rook (4,4)->%v: got %v want %v", tc.to, got, tc.want)
		}
	}
}

func TestKnightJumps(t *testing.T) {
	b := NewBoard()
	for _, to := range []Square{Sq(5, 0), Sq(5, 2)} {
		if !IsLegal(b, Sq(7, 1), to, White) {
			t.Fatalf("knight (7,1)->%v should be legal", to)
		}
	}
	if IsLegal(b, Sq(7, 1), Sq(6, 3), White) {
		t.Fatalf("knight cannot land on own pawn")
	}
	if IsLegal(b, Sq(7, 1), Sq(5, 1), White) {
		t.Fatalf("knight cannot move straight")
	}
	if !IsLegal(b, Sq(0, 6), Sq(2, 5), Black) {
		t.Fatalf("black knight (0,6)->(2,5) should be legal")
	}
}

func TestPawnSingleStep(t *testing.T) {
	b := NewBoard()
	if !IsLegal(b, Sq(6, 3), Sq(5, 3), White) {
		t.Fatalf("white pawn single step should be legal")
	}
	if IsLegal(b, Sq(6, 3), Sq(4, 3), White) {
		t.Fatalf("white pawn double step should be illegal")
	}
	if IsLegal(b, Sq(6, 3), Sq(7, 3), White) {
		t.Fatalf("white pawn cannot move backwards")
	}
	if !IsLegal(b, Sq(1, 3), Sq(2, 3), Black) {
		t.Fatalf("black pawn single step should be legal")
	}
	if IsLegal(b, Sq(1, 3), Sq(0, 3), Black) {
		t.Fatalf("black pawn cannot move toward row 0")
	}
}

func TestPawnCannotCapture(t *testing.T) {
	b := emptyBoardWith(map[Square]Piece{
		Sq(4, 4): MakePiece(White, Pawn),
		Sq(3, 4): MakePiece(Black, Pawn),
		Sq(3, 3): MakePiece(Black, Knight),
	})
	if IsLegal(b, Sq(4, 4), Sq(3, 4), White) {
		t.Fatalf("pawn cannot capture straight ahead")
	}
	if IsLegal(b, Sq(4, 4), Sq(3, 3), White) {
		t.Fatalf("pawn diagonal capture is not supported")
	}
}

func TestBishopAndQueen(t *testing.T) {
	b := emptyBoardWith(map[Square]Piece{
		Sq(4, 4): MakePiece(Black, Bishop),
		Sq(4, 0): MakePiece(Black, Queen),
		Sq(6, 6): MakePiece(White, Knight),
		Sq(2, 2): MakePiece(Black, Pawn),
	})
	checks := []struct {
		name     string
		from, to Square
		want     bool
	}{
		{"bishop diagonal", Sq(4, 4), Sq(1, 7), true},
		{"bishop capture", Sq(4, 4), Sq(6, 6), true},
		{"bishop blocked", Sq(4, 4), Sq(1, 1), false},
		{"bishop straight", Sq(4, 4), Sq(4, 6), false},
		{"queen straight", Sq(4, 0), Sq(4, 3), true},
		{"queen blocked by bishop", Sq(4, 0), Sq(4, 5), false},
		{"queen diagonal", Sq(4, 0), Sq(7, 3), true},
		{"queen off-line", Sq(4, 0), Sq(6, 1), false},
	}
	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLegal(b, tc.from, tc.to, Black); got != tc.want {
				t.Fatalf("%v->%v: got %v want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestKingSingleStep(t *testing.T) {
	b := emptyBoardWith(map[Square]Piece{Sq(4, 4): MakePiece(White, King)})
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			to := Sq(4+dr, 4+dc)
			want := abs(dr) <= 1 && abs(dc) <= 1 && !(dr == 0 && dc == 0)
			if got := IsLegal(b, Sq(4, 4), to, White); got != want {
				t.Errorf("king -> %v: got %v want %v", to, got, want)
			}
		}
	}
}

func TestEmptySourceAndOffBoard(t *testing.T) {
	b := NewBoard()
	if IsLegal(b, Sq(4, 4), Sq(3, 4), White) {
		t.Fatalf("empty source must not be legal")
	}
	if IsLegal(b, Sq(7, 1), Sq(9, 0), White) {
		t.Fatalf("off-board destination must not be legal")
	}
	if IsLegal(b, Sq(-1, 0), Sq(0, 0), White) {
		t.Fatalf("off-board source must not be legal")
	}
}

func TestPathClear(t *testing.T) {
	b := emptyBoardWith(map[Square]Piece{Sq(3, 3): MakePiece(White, Pawn)})
	if pathClear(&b, Sq(0, 0), Sq(7, 7)) {
		t.Fatalf("diagonal through (3,3) should be blocked")
	}
	if !pathClear(&b, Sq(0, 0), Sq(3, 3)) {
		t.Fatalf("destination square is not part of the path")
	}
	if !pathClear(&b, Sq(0, 0), Sq(0, 1)) {
		t.Fatalf("adjacent squares have an empty path")
	}
	if !pathClear(&b, Sq(7, 0), Sq(0, 0)) {
		t.Fatalf("open file should be clear")
	}
}

func TestLegalMoves(t *testing.T) {
	b := NewBoard()
	got := LegalMoves(b, Sq(7, 1), White)
	if len(got) != 2 {
		t.Fatalf("knight on (7,1) should have 2 moves, got %v", got)
	}
	if moves := LegalMoves(b, Sq(7, 0), White); len(moves) != 0 {
		t.Fatalf("rook should be boxed in, got %v", moves)
	}
	if moves := LegalMoves(b, Sq(4, 4), White); moves != nil {
		t.Fatalf("empty square should have no moves")
	}
	total := 0
	for c := 0; c < Cols; c++ {
		total += len(LegalMoves(b, Sq(6, c), White))
		total += len(LegalMoves(b, Sq(7, c), White))
	}
	// 8 single pawn steps + 2 knights x 2
	if total != 12 {
		t.Fatalf("white should have 12 opening moves, got %d", total)
	}
}

func TestLegalMovesOnlyForActivePlayer(t *testing.T) {
	b := NewBoard()
	if moves := LegalMoves(b, Sq(0, 1), White); moves != nil {
		t.Fatalf("black knight has no moves on white's turn, got %v", moves)
	}
	if moves := LegalMoves(b, Sq(0, 1), Black); len(moves) != 2 {
		t.Fatalf("black knight on its turn: got %v", moves)
	}
}
