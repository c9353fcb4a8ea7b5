package board

// Movement steps as (file, rank) deltas.
var (
	knightSteps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// pawnDir returns the forward rank direction for a color.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// IsSquareAttacked reports whether sq is attacked by any piece of byColor
// under pseudo-legal movement rules. It deliberately ignores whether the
// attacking side's own king would be left in check: castling validation
// calls this, and recursing into full legality checking would not terminate.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	// Pawns attack diagonally forward, so look one rank back toward the
	// attacker's side of the board.
	dir := pawnDir(byColor)
	pawn := NewPiece(Pawn, byColor)
	for _, df := range [2]int{-1, 1} {
		if from := sq.offset(df, -dir); from.IsValid() && p.Board[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, byColor)
	for _, step := range knightSteps {
		if from := sq.offset(step[0], step[1]); from.IsValid() && p.Board[from] == knight {
			return true
		}
	}

	king := NewPiece(King, byColor)
	for _, step := range kingSteps {
		if from := sq.offset(step[0], step[1]); from.IsValid() && p.Board[from] == king {
			return true
		}
	}

	if p.attackedAlongRays(sq, byColor, bishopDirs, Bishop) {
		return true
	}
	return p.attackedAlongRays(sq, byColor, rookDirs, Rook)
}

// attackedAlongRays walks each ray until a piece is found and reports
// whether that piece is a slider of the given kind (or a queen) of byColor.
func (p *Position) attackedAlongRays(sq Square, byColor Color, dirs [4][2]int, slider PieceType) bool {
	for _, dir := range dirs {
		cur := sq
		for {
			cur = cur.offset(dir[0], dir[1])
			if !cur.IsValid() {
				break
			}
			piece := p.Board[cur]
			if piece == NoPiece {
				continue
			}
			if piece.Color() == byColor {
				if pt := piece.Type(); pt == slider || pt == Queen {
					return true
				}
			}
			break // first piece on the ray blocks everything behind it
		}
	}
	return false
}
