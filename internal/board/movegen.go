package board

// LegalMoves returns every legal move for the given color: the cross
// product of that color's occupied squares against all board squares,
// filtered through Check. Quadratic in board size, but the board is 64
// squares and this runs once per turn, not inside a search.
func (p *Position) LegalMoves(c Color) *MoveList {
	pos := p
	if p.SideToMove != c {
		pos = p.Copy()
		pos.SideToMove = c
	}

	ml := NewMoveList()
	for from := A1; from <= H8; from++ {
		piece := pos.Board[from]
		if piece == NoPiece || piece.Color() != c {
			continue
		}
		for to := A1; to <= H8; to++ {
			m, err := pos.Check(from, to, NoPieceType)
			if err != nil {
				continue
			}
			ml.Add(m)
			if m.IsPromotion() {
				// Check defaulted to a queen; the under-promotions are legal
				// exactly when the queen promotion is.
				ml.Add(NewPromotion(from, to, Rook))
				ml.Add(NewPromotion(from, to, Bishop))
				ml.Add(NewPromotion(from, to, Knight))
			}
		}
	}
	return ml
}

// HasLegalMove reports whether the given color has at least one legal move.
// Same filter as LegalMoves with an early return, for terminal detection.
func (p *Position) HasLegalMove(c Color) bool {
	pos := p
	if p.SideToMove != c {
		pos = p.Copy()
		pos.SideToMove = c
	}

	for from := A1; from <= H8; from++ {
		piece := pos.Board[from]
		if piece == NoPiece || piece.Color() != c {
			continue
		}
		for to := A1; to <= H8; to++ {
			if _, err := pos.Check(from, to, NoPieceType); err == nil {
				return true
			}
		}
	}
	return false
}

// IsCheckmate returns true if the given color has no legal moves and its
// king is attacked.
func (p *Position) IsCheckmate(c Color) bool {
	return !p.HasLegalMove(c) && p.InCheck(c)
}

// IsStalemate returns true if the given color has no legal moves and its
// king is not attacked.
func (p *Position) IsStalemate(c Color) bool {
	return !p.HasLegalMove(c) && !p.InCheck(c)
}
