package chess

// IsLegal reports whether the piece on from may move to to while active is
// the player to move. Capturing is folded in: an enemy piece on to is fine,
// an own piece never is. An empty source square is never legal.
func IsLegal(b Board, from, to Square, active Color) bool {
	return isLegal(&b, from, to, active)
}

func isLegal(b *Board, from, to Square, active Color) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	if BelongsTo(b.At(to), active) {
		return false
	}

	pc := b.At(from)
	switch pc.Kind() {
	case Pawn:
		return pawnLegal(b, from, to, pc.Color())
	case Rook:
		return rookLegal(b, from, to)
	case Knight:
		return knightLegal(from, to)
	case Bishop:
		return bishopLegal(b, from, to)
	case Queen:
		return queenLegal(b, from, to)
	case King:
		return kingLegal(from, to)
	default:
		return false
	}
}

// LegalMoves lists every destination the piece on from can legally reach.
// Only pieces of the active player have moves.
func LegalMoves(b Board, from Square, active Color) []Square {
	if !BelongsTo(b.At(from), active) {
		return nil
	}
	var out []Square
	for sq := 0; sq < NumSquares; sq++ {
		to := Sq(rowOf(sq), colOf(sq))
		if isLegal(&b, from, to, active) {
			out = append(out, to)
		}
	}
	return out
}
