package chess

func (b *Board) KingExists(c Color) bool {
	want := MakePiece(c, King)
	for _, pc := range b.Squares {
		if pc == want {
			return true
		}
	}
	return false
}

// IsTerminal reports whether c has lost its king. There is no check
// detection: a king is only gone once it has been captured.
func IsTerminal(b Board, c Color) bool {
	return !b.KingExists(c)
}
