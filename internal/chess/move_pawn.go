package chess

// Pawns step exactly one square straight ahead onto an empty square. There is
// no double step, no diagonal capture and no promotion.
func pawnLegal(b *Board, from, to Square, side Color) bool {
	if to.Col != from.Col {
		return false
	}
	if to.Row != from.Row+pawnDir(side) {
		return false
	}
	return b.At(to) == NoPiece
}
