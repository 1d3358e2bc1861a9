package chess

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func deltas(from, to Square) (dr, dc int) {
	return to.Row - from.Row, to.Col - from.Col
}

func isStraight(from, to Square) bool {
	return from.Row == to.Row || from.Col == to.Col
}

func isDiagonal(from, to Square) bool {
	dr, dc := deltas(from, to)
	return abs(dr) == abs(dc)
}

// pathClear walks from the square next to from up to, but not including, to.
// Callers must have checked that from->to is a straight line or a diagonal.
func pathClear(b *Board, from, to Square) bool {
	dr, dc := deltas(from, to)
	stepR, stepC := sign(dr), sign(dc)

	r, c := from.Row+stepR, from.Col+stepC
	for r != to.Row || c != to.Col {
		if b.Squares[indexOf(r, c)] != NoPiece {
			return false
		}
		r += stepR
		c += stepC
	}
	return true
}

func rookLegal(b *Board, from, to Square) bool {
	return isStraight(from, to) && pathClear(b, from, to)
}

func knightLegal(from, to Square) bool {
	dr, dc := deltas(from, to)
	dr, dc = abs(dr), abs(dc)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func bishopLegal(b *Board, from, to Square) bool {
	return isDiagonal(from, to) && pathClear(b, from, to)
}

func queenLegal(b *Board, from, to Square) bool {
	return (isStraight(from, to) || isDiagonal(from, to)) && pathClear(b, from, to)
}

// No castling.
func kingLegal(from, to Square) bool {
	dr, dc := deltas(from, to)
	return abs(dr) <= 1 && abs(dc) <= 1
}
