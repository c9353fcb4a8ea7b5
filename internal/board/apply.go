package board

// rightsLostAt maps a square to the castling rights that disappear when a
// king or rook leaves it, or when the piece on it is captured. Rights are
// cleared transactionally here and never re-derived from board inspection,
// so a right, once gone, never returns.
func rightsLostAt(sq Square) CastlingRights {
	switch sq {
	case E1:
		return WhiteKingSideCastle | WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case E8:
		return BlackKingSideCastle | BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	}
	return NoCastling
}

// rookCastleSquares returns the rook relocation for a castling king move.
func rookCastleSquares(kingFrom, kingTo Square) (rookFrom, rookTo Square) {
	rank := kingFrom.Rank()
	if kingTo.File() > kingFrom.File() {
		return NewSquare(7, rank), NewSquare(5, rank) // kingside: h-file rook to f
	}
	return NewSquare(0, rank), NewSquare(3, rank) // queenside: a-file rook to d
}

// Apply mutates the position to reflect a move that already passed Check,
// and returns the captured piece (NoPiece if none). It updates every piece
// of derived state: the en-passant target, castling rights, halfmove clock,
// side to move and fullmove number.
//
// With simulate set, the fullmove number is left alone; board mutation is
// otherwise identical, which is why legality probing must restore a
// snapshot afterwards.
func (p *Position) Apply(m Move, simulate bool) Piece {
	from, to := m.From(), m.To()
	piece := p.Board[from]
	mover := piece.Color()
	captured := p.Board[to]

	// The en-passant window is exactly one ply; a double step below re-arms it.
	p.EnPassant = NoSquare

	p.movePiece(from, to)

	switch {
	case m.IsEnPassant():
		// The captured pawn sits behind the destination, not on it.
		captured = p.RemovePiece(to.offset(0, -pawnDir(mover)))
	case m.IsCastling():
		rookFrom, rookTo := rookCastleSquares(from, to)
		p.movePiece(rookFrom, rookTo)
	}

	if m.IsPromotion() {
		p.Board[to] = NewPiece(m.Promotion(), mover)
	}

	p.CastlingRights &^= rightsLostAt(from) | rightsLostAt(to)

	if piece.Type() == Pawn || captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if piece.Type() == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		p.EnPassant = NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	p.SideToMove = p.SideToMove.Other()
	if !simulate && mover == Black {
		p.FullMoveNumber++
	}

	return captured
}
