package board

// Check validates a candidate move and returns it with its special-move
// flags resolved (promotion, en passant, castling). On rejection it returns
// an *IllegalMoveError with a specific reason and the position is unchanged.
//
// The promotion choice only matters when a pawn reaches the far rank; an
// absent or unusable choice falls back to a queen. Every accepted move has
// already passed the simulate-then-verify king safety step, so applying it
// can never leave the mover's own king attacked.
func (p *Position) Check(from, to Square, promo PieceType) (Move, error) {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return NoMove, illegal(from, to, NoPieceOnFrom)
	}
	if from == to {
		return NoMove, illegal(from, to, SameSquare)
	}
	if piece.Color() != p.SideToMove {
		return NoMove, illegal(from, to, WrongTurn)
	}
	if target := p.PieceAt(to); target != NoPiece && target.Color() == piece.Color() {
		return NoMove, illegal(from, to, OwnPieceOnTo)
	}

	var m Move
	var err error
	switch piece.Type() {
	case Pawn:
		m, err = p.checkPawn(from, to, promo)
	case Knight:
		m, err = p.checkKnight(from, to)
	case Bishop:
		m, err = p.checkSlider(from, to, true, false)
	case Rook:
		m, err = p.checkSlider(from, to, false, true)
	case Queen:
		m, err = p.checkSlider(from, to, true, true)
	case King:
		m, err = p.checkKing(from, to)
	}
	if err != nil {
		return NoMove, err
	}

	// Simulate-then-verify: apply the move on this position, ask the attack
	// oracle about the mover's king, then restore the snapshot. This one
	// mechanism covers pins, discovered checks and staying in check. Not
	// re-entrant: the snapshot is the single restore target.
	mover := piece.Color()
	snapshot := *p
	p.Apply(m, true)
	inCheck := p.InCheck(mover)
	*p = snapshot
	if inCheck {
		return NoMove, illegal(from, to, LeavesKingInCheck)
	}

	return m, nil
}

// checkPawn validates pawn pushes, captures, en passant and promotion.
func (p *Position) checkPawn(from, to Square, promo PieceType) (Move, error) {
	mover := p.Board[from].Color()
	dir := pawnDir(mover)
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	homeRank, lastRank := 1, 7
	if mover == Black {
		homeRank, lastRank = 6, 0
	}

	enPassant := false
	switch {
	case df == 0 && dr == dir:
		if p.Board[to] != NoPiece {
			return NoMove, illegal(from, to, BlockedPath)
		}
	case df == 0 && dr == 2*dir:
		if from.Rank() != homeRank {
			return NoMove, illegal(from, to, BadPieceVector)
		}
		if p.Board[from.offset(0, dir)] != NoPiece || p.Board[to] != NoPiece {
			return NoMove, illegal(from, to, BlockedPath)
		}
	case abs(df) == 1 && dr == dir:
		if p.Board[to] == NoPiece {
			if to != p.EnPassant {
				return NoMove, illegal(from, to, NoEnPassant)
			}
			enPassant = true
		}
		// A non-empty destination is an enemy piece: the own-piece guard
		// already ran.
	default:
		return NoMove, illegal(from, to, BadPieceVector)
	}

	if to.Rank() == lastRank {
		if promo < Knight || promo > Queen {
			promo = Queen
		}
		return NewPromotion(from, to, promo), nil
	}
	if enPassant {
		return NewEnPassant(from, to), nil
	}
	return NewMove(from, to), nil
}

// checkKnight validates the 8 fixed knight offsets; knights jump, so there
// is no path check.
func (p *Position) checkKnight(from, to Square) (Move, error) {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	if (df == 1 && dr == 2) || (df == 2 && dr == 1) {
		return NewMove(from, to), nil
	}
	return NoMove, illegal(from, to, BadPieceVector)
}

// checkSlider validates bishop, rook and queen moves: the vector must match
// the piece's movement axes and every intermediate square must be empty.
func (p *Position) checkSlider(from, to Square, diagonal, orthogonal bool) (Move, error) {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	switch {
	case df != 0 && dr != 0 && abs(df) == abs(dr):
		if !diagonal {
			return NoMove, illegal(from, to, BadPieceVector)
		}
	case df == 0 || dr == 0:
		if !orthogonal {
			return NoMove, illegal(from, to, BadPieceVector)
		}
	default:
		return NoMove, illegal(from, to, BadPieceVector)
	}

	stepF, stepR := sign(df), sign(dr)
	for cur := from.offset(stepF, stepR); cur != to; cur = cur.offset(stepF, stepR) {
		if p.Board[cur] != NoPiece {
			return NoMove, illegal(from, to, BlockedPath)
		}
	}
	return NewMove(from, to), nil
}

// checkKing validates single-step king moves and castling.
func (p *Position) checkKing(from, to Square) (Move, error) {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	if abs(df) <= 1 && abs(dr) <= 1 {
		return NewMove(from, to), nil
	}

	// Castling: a two-file horizontal move from the king's home square.
	home := E1
	if p.Board[from].Color() == Black {
		home = E8
	}
	if dr != 0 || abs(df) != 2 || from != home {
		return NoMove, illegal(from, to, BadPieceVector)
	}
	return p.checkCastling(from, to, df > 0)
}

// checkCastling validates the castling preconditions: the right still held
// and the rook in place, the squares between king and rook empty, and the
// king's origin, transit and destination squares all unattacked ("cannot
// castle out of, through, or into check").
func (p *Position) checkCastling(from, to Square, kingSide bool) (Move, error) {
	mover := p.Board[from].Color()
	if !p.CastlingRights.CanCastle(mover, kingSide) {
		return NoMove, illegal(from, to, NoCastlingRight)
	}

	rookSq := NewSquare(0, from.Rank())
	if kingSide {
		rookSq = NewSquare(7, from.Rank())
	}
	// Rights can outlive the rook in editor-built positions, which are never
	// validated against a game history.
	if p.Board[rookSq] != NewPiece(Rook, mover) {
		return NoMove, illegal(from, to, NoCastlingRight)
	}

	step := sign(rookSq.File() - from.File())
	for cur := from.offset(step, 0); cur != rookSq; cur = cur.offset(step, 0) {
		if p.Board[cur] != NoPiece {
			return NoMove, illegal(from, to, CastlingBlocked)
		}
	}

	kingStep := sign(to.File() - from.File())
	transit := from.offset(kingStep, 0)
	enemy := mover.Other()
	for _, sq := range [3]Square{from, transit, to} {
		if p.IsSquareAttacked(sq, enemy) {
			return NoMove, illegal(from, to, CastlingThroughCheck)
		}
	}

	return NewCastling(from, to), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
